package handlers

import (
	"fmt"

	"github.com/gin-gonic/gin"

	"github.com/juanpcm/reconquista-backend/internal/services"
)

type CartaHandler struct {
	cartaService services.CartaService
}

func NewCartaHandler(cartaService services.CartaService) *CartaHandler {
	return &CartaHandler{cartaService: cartaService}
}

func (ch *CartaHandler) List(c *gin.Context) {
	cartas, err := ch.cartaService.List(c.Request.Context())
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, cartas, fmt.Sprintf("Se encontraron %d cartas", len(cartas)))
}

func (ch *CartaHandler) Leer(c *gin.Context) {
	cartaID, ok := pathID(c, "carta_id")
	if !ok {
		return
	}
	result, err := ch.cartaService.Leer(c.Request.Context(), cartaID)
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, result, "Carta procesada exitosamente")
}
