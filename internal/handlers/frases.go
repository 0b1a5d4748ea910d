package handlers

import (
	"fmt"

	"github.com/gin-gonic/gin"

	"github.com/juanpcm/reconquista-backend/internal/services"
)

type FraseHandler struct {
	fraseService services.FraseService
}

func NewFraseHandler(fraseService services.FraseService) *FraseHandler {
	return &FraseHandler{fraseService: fraseService}
}

func (fh *FraseHandler) List(c *gin.Context) {
	categoria := c.Query("categoria")
	frases := fh.fraseService.List(categoria)
	RespondOK(c, frases, fmt.Sprintf("Se encontraron %d frases", len(frases)))
}

func (fh *FraseHandler) Aleatoria(c *gin.Context) {
	categoria := c.Query("categoria")
	frase, err := fh.fraseService.Aleatoria(categoria)
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, frase, "")
}

func (fh *FraseHandler) Get(c *gin.Context) {
	fraseID, ok := pathID(c, "frase_id")
	if !ok {
		return
	}
	frase, err := fh.fraseService.Get(fraseID)
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, frase, "")
}
