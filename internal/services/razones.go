package services

import (
	"context"

	"gorm.io/gorm"

	"github.com/juanpcm/reconquista-backend/internal/catalog"
	"github.com/juanpcm/reconquista-backend/internal/logger"
	"github.com/juanpcm/reconquista-backend/internal/repos"
)

type RazonService interface {
	// ListDesbloqueadas returns exactly the reasons whose unlock threshold
	// is at or below the current consideration points, ordered by
	// threshold. The unlock is derived from points, never stored.
	ListDesbloqueadas(ctx context.Context) ([]catalog.Razon, error)
}

type razonService struct {
	db         *gorm.DB
	log        *logger.Logger
	estadoRepo repos.EstadoRepo
	catalog    *catalog.Catalog
}

func NewRazonService(db *gorm.DB, log *logger.Logger, estadoRepo repos.EstadoRepo, cat *catalog.Catalog) RazonService {
	serviceLog := log.With("service", "RazonService")
	return &razonService{db: db, log: serviceLog, estadoRepo: estadoRepo, catalog: cat}
}

func (rs *razonService) ListDesbloqueadas(ctx context.Context) ([]catalog.Razon, error) {
	estado, err := rs.estadoRepo.Get(ctx, nil)
	if err != nil {
		return nil, err
	}

	desbloqueadas := []catalog.Razon{}
	for _, razon := range rs.catalog.Razones() {
		if razon.PuntosRequeridos <= estado.PuntosConsideracion {
			desbloqueadas = append(desbloqueadas, razon)
		}
	}
	return desbloqueadas, nil
}
