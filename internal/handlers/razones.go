package handlers

import (
	"fmt"

	"github.com/gin-gonic/gin"

	"github.com/juanpcm/reconquista-backend/internal/services"
)

type RazonHandler struct {
	razonService services.RazonService
}

func NewRazonHandler(razonService services.RazonService) *RazonHandler {
	return &RazonHandler{razonService: razonService}
}

func (rh *RazonHandler) List(c *gin.Context) {
	razones, err := rh.razonService.ListDesbloqueadas(c.Request.Context())
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	if len(razones) == 0 {
		RespondOK(c, razones, "No hay razones desbloqueadas aún")
		return
	}
	RespondOK(c, razones, fmt.Sprintf("Se encontraron %d razones desbloqueadas", len(razones)))
}
