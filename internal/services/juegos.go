package services

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/juanpcm/reconquista-backend/internal/logger"
	"github.com/juanpcm/reconquista-backend/internal/repos"
)

// JuegoBonusEstrellas is the flat star bonus for completing any game.
const JuegoBonusEstrellas = 15

type CompletarJuegoResult struct {
	NuevasEstrellas int    `json:"nuevas_estrellas"`
	Mensaje         string `json:"mensaje"`
}

type JuegoService interface {
	// Completar credits the game bonus unconditionally.
	Completar(ctx context.Context) (*CompletarJuegoResult, error)
}

type juegoService struct {
	db         *gorm.DB
	log        *logger.Logger
	estadoRepo repos.EstadoRepo
}

func NewJuegoService(db *gorm.DB, log *logger.Logger, estadoRepo repos.EstadoRepo) JuegoService {
	serviceLog := log.With("service", "JuegoService")
	return &juegoService{db: db, log: serviceLog, estadoRepo: estadoRepo}
}

func (js *juegoService) Completar(ctx context.Context) (*CompletarJuegoResult, error) {
	var result *CompletarJuegoResult
	if err := js.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		estado, err := js.estadoRepo.Get(ctx, tx)
		if err != nil {
			return err
		}

		estado.Estrellas += JuegoBonusEstrellas
		if err := js.estadoRepo.Save(ctx, tx, estado); err != nil {
			return err
		}

		result = &CompletarJuegoResult{
			NuevasEstrellas: estado.Estrellas,
			Mensaje:         fmt.Sprintf("Ganaste %d estrellas por jugar", JuegoBonusEstrellas),
		}
		return nil
	}); err != nil {
		js.log.Warn("Completar transaction error", "error", err)
		return nil, err
	}
	return result, nil
}
