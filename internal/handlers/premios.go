package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/juanpcm/reconquista-backend/internal/services"
)

type ReclamarPremioRequest struct {
	PremioID int64 `json:"premio_id"`
}

type PremioHandler struct {
	premioService services.PremioService
}

func NewPremioHandler(premioService services.PremioService) *PremioHandler {
	return &PremioHandler{premioService: premioService}
}

func (ph *PremioHandler) List(c *gin.Context) {
	premios, err := ph.premioService.List(c.Request.Context())
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, premios, fmt.Sprintf("Se encontraron %d premios", len(premios)))
}

func (ph *PremioHandler) Reclamar(c *gin.Context) {
	var req ReclamarPremioRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_body", err)
		return
	}
	if req.PremioID <= 0 {
		RespondError(c, http.StatusBadRequest, "invalid_premio_id", fmt.Errorf("el ID del premio debe ser mayor a 0"))
		return
	}
	result, err := ph.premioService.Reclamar(c.Request.Context(), req.PremioID)
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, result, "Premio reclamado exitosamente")
}
