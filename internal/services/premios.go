package services

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"gorm.io/gorm"

	"github.com/juanpcm/reconquista-backend/internal/apierr"
	"github.com/juanpcm/reconquista-backend/internal/catalog"
	"github.com/juanpcm/reconquista-backend/internal/logger"
	"github.com/juanpcm/reconquista-backend/internal/repos"
)

type PremioView struct {
	ID         int64  `json:"id"`
	Nombre     string `json:"nombre"`
	Costo      int    `json:"costo"`
	Emoji      string `json:"emoji"`
	Disponible bool   `json:"disponible"`
	Reclamado  bool   `json:"reclamado"`
}

type PremioInfo struct {
	ID     int64  `json:"id"`
	Nombre string `json:"nombre"`
	Emoji  string `json:"emoji"`
}

type ReclamarPremioResult struct {
	EstrellasRestantes int        `json:"estrellas_restantes"`
	Premio             PremioInfo `json:"premio"`
	Mensaje            string     `json:"mensaje"`
}

type PremioService interface {
	// List merges the reward catalog with claim flags, ordered by cost.
	List(ctx context.Context) ([]PremioView, error)
	// Reclamar claims a reward once: the reward must exist, must not have
	// been claimed before, and the current stars must cover its cost. On
	// success the cost is deducted and a claim record appended.
	Reclamar(ctx context.Context, premioID int64) (*ReclamarPremioResult, error)
}

type premioService struct {
	db         *gorm.DB
	log        *logger.Logger
	estadoRepo repos.EstadoRepo
	catalog    *catalog.Catalog
}

func NewPremioService(db *gorm.DB, log *logger.Logger, estadoRepo repos.EstadoRepo, cat *catalog.Catalog) PremioService {
	serviceLog := log.With("service", "PremioService")
	return &premioService{db: db, log: serviceLog, estadoRepo: estadoRepo, catalog: cat}
}

func (ps *premioService) List(ctx context.Context) ([]PremioView, error) {
	estado, err := ps.estadoRepo.Get(ctx, nil)
	if err != nil {
		return nil, err
	}

	premios := ps.catalog.Premios()
	views := make([]PremioView, 0, len(premios))
	for _, premio := range premios {
		views = append(views, PremioView{
			ID:         premio.ID,
			Nombre:     premio.Nombre,
			Costo:      premio.Costo,
			Emoji:      premio.Emoji,
			Disponible: premio.Disponible,
			Reclamado:  estado.HaReclamadoPremio(premio.ID),
		})
	}
	return views, nil
}

func (ps *premioService) Reclamar(ctx context.Context, premioID int64) (*ReclamarPremioResult, error) {
	premio, ok := ps.catalog.PremioByID(premioID)
	if !ok {
		return nil, apierr.New(http.StatusNotFound, "premio_not_found", fmt.Errorf("premio con ID %d no encontrado", premioID))
	}

	var result *ReclamarPremioResult
	if err := ps.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		estado, err := ps.estadoRepo.Get(ctx, tx)
		if err != nil {
			return err
		}

		if estado.HaReclamadoPremio(premioID) {
			return apierr.New(http.StatusConflict, "premio_ya_reclamado", fmt.Errorf("el premio '%s' ya fue reclamado", premio.Nombre))
		}
		if estado.Estrellas < premio.Costo {
			return apierr.New(http.StatusConflict, "estrellas_insuficientes", fmt.Errorf("no tienes suficientes estrellas para este premio (costo %d, tienes %d)", premio.Costo, estado.Estrellas))
		}

		estado.Estrellas -= premio.Costo
		estado.ReclamarPremio(premioID, time.Now().UTC())
		if err := ps.estadoRepo.Save(ctx, tx, estado); err != nil {
			return err
		}

		result = &ReclamarPremioResult{
			EstrellasRestantes: estado.Estrellas,
			Premio: PremioInfo{
				ID:     premio.ID,
				Nombre: premio.Nombre,
				Emoji:  premio.Emoji,
			},
			Mensaje: fmt.Sprintf("¡Premio '%s' reclamado exitosamente!", premio.Nombre),
		}
		return nil
	}); err != nil {
		return nil, err
	}
	return result, nil
}
