package handlers

import (
	"fmt"

	"github.com/gin-gonic/gin"

	"github.com/juanpcm/reconquista-backend/internal/services"
)

type CancionHandler struct {
	cancionService services.CancionService
}

func NewCancionHandler(cancionService services.CancionService) *CancionHandler {
	return &CancionHandler{cancionService: cancionService}
}

func (ch *CancionHandler) List(c *gin.Context) {
	canciones, err := ch.cancionService.List(c.Request.Context())
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, canciones, fmt.Sprintf("Se encontraron %d canciones", len(canciones)))
}

func (ch *CancionHandler) Get(c *gin.Context) {
	cancionID, ok := pathID(c, "cancion_id")
	if !ok {
		return
	}
	cancion, err := ch.cancionService.Get(c.Request.Context(), cancionID)
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, cancion, "")
}

func (ch *CancionHandler) Escuchar(c *gin.Context) {
	cancionID, ok := pathID(c, "cancion_id")
	if !ok {
		return
	}
	result, err := ch.cancionService.Escuchar(c.Request.Context(), cancionID)
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, result, "Canción procesada exitosamente")
}
