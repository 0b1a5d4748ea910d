package services

import (
	"context"
	"fmt"
	"net/http"

	"gorm.io/gorm"

	"github.com/juanpcm/reconquista-backend/internal/apierr"
	"github.com/juanpcm/reconquista-backend/internal/catalog"
	"github.com/juanpcm/reconquista-backend/internal/logger"
	"github.com/juanpcm/reconquista-backend/internal/repos"
)

type CartaView struct {
	ID         int64  `json:"id"`
	Titulo     string `json:"titulo"`
	Contenido  string `json:"contenido"`
	Leida      bool   `json:"leida"`
	Disponible bool   `json:"disponible"`
}

type LeerCartaResult struct {
	CartaID            int64  `json:"carta_id"`
	YaLeida            bool   `json:"ya_leida"`
	EstrellasOtorgadas int    `json:"estrellas_otorgadas"`
	NuevasEstrellas    int    `json:"nuevas_estrellas"`
	Mensaje            string `json:"mensaje"`
}

type CartaService interface {
	// List merges the card catalog with the read flags from the state.
	// Unread cards keep their full content.
	List(ctx context.Context) ([]CartaView, error)
	// Leer marks the card as read and credits its star reward. Reading an
	// already-read card is a no-op that awards nothing.
	Leer(ctx context.Context, cartaID int64) (*LeerCartaResult, error)
}

type cartaService struct {
	db         *gorm.DB
	log        *logger.Logger
	estadoRepo repos.EstadoRepo
	catalog    *catalog.Catalog
}

func NewCartaService(db *gorm.DB, log *logger.Logger, estadoRepo repos.EstadoRepo, cat *catalog.Catalog) CartaService {
	serviceLog := log.With("service", "CartaService")
	return &cartaService{db: db, log: serviceLog, estadoRepo: estadoRepo, catalog: cat}
}

func (cs *cartaService) List(ctx context.Context) ([]CartaView, error) {
	estado, err := cs.estadoRepo.Get(ctx, nil)
	if err != nil {
		return nil, err
	}

	cartas := cs.catalog.Cartas()
	views := make([]CartaView, 0, len(cartas))
	for _, carta := range cartas {
		views = append(views, CartaView{
			ID:         carta.ID,
			Titulo:     carta.Titulo,
			Contenido:  carta.Contenido,
			Leida:      estado.HaLeidoCarta(carta.ID),
			Disponible: true,
		})
	}
	return views, nil
}

func (cs *cartaService) Leer(ctx context.Context, cartaID int64) (*LeerCartaResult, error) {
	carta, ok := cs.catalog.CartaByID(cartaID)
	if !ok {
		return nil, apierr.New(http.StatusNotFound, "carta_not_found", fmt.Errorf("carta con ID %d no encontrada", cartaID))
	}

	var result *LeerCartaResult
	if err := cs.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		estado, err := cs.estadoRepo.Get(ctx, tx)
		if err != nil {
			return err
		}

		if estado.HaLeidoCarta(cartaID) {
			result = &LeerCartaResult{
				CartaID:         cartaID,
				YaLeida:         true,
				NuevasEstrellas: estado.Estrellas,
				Mensaje:         "Esta carta ya fue leída anteriormente",
			}
			return nil
		}

		estado.MarcarCartaLeida(cartaID)
		estado.Estrellas += carta.EstrellasRecompensa
		if err := cs.estadoRepo.Save(ctx, tx, estado); err != nil {
			return err
		}

		result = &LeerCartaResult{
			CartaID:            cartaID,
			EstrellasOtorgadas: carta.EstrellasRecompensa,
			NuevasEstrellas:    estado.Estrellas,
			Mensaje:            fmt.Sprintf("Ganaste %d estrellas", carta.EstrellasRecompensa),
		}
		return nil
	}); err != nil {
		cs.log.Warn("Leer transaction error", "carta_id", cartaID, "error", err)
		return nil, err
	}
	return result, nil
}
