package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/juanpcm/reconquista-backend/internal/services"
)

type EstadoHandler struct {
	estadoService services.EstadoService
}

func NewEstadoHandler(estadoService services.EstadoService) *EstadoHandler {
	return &EstadoHandler{estadoService: estadoService}
}

func (eh *EstadoHandler) GetEstado(c *gin.Context) {
	estado, err := eh.estadoService.GetEstado(c.Request.Context())
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, estado, "Estado obtenido exitosamente")
}

func (eh *EstadoHandler) DarPunto(c *gin.Context) {
	result, err := eh.estadoService.DarPunto(c.Request.Context())
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, result, "Punto de consideración agregado exitosamente")
}
