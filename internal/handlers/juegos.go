package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/juanpcm/reconquista-backend/internal/services"
)

type JuegoHandler struct {
	juegoService services.JuegoService
}

func NewJuegoHandler(juegoService services.JuegoService) *JuegoHandler {
	return &JuegoHandler{juegoService: juegoService}
}

func (jh *JuegoHandler) Completar(c *gin.Context) {
	result, err := jh.juegoService.Completar(c.Request.Context())
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, result, "Bonus de juego otorgado exitosamente")
}
