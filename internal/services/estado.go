package services

import (
	"context"

	"gorm.io/gorm"

	"github.com/juanpcm/reconquista-backend/internal/catalog"
	"github.com/juanpcm/reconquista-backend/internal/logger"
	"github.com/juanpcm/reconquista-backend/internal/repos"
	"github.com/juanpcm/reconquista-backend/internal/types"
)

// PuntoIncremento is how many consideration points a single /dar-punto adds.
const PuntoIncremento = 1

type DarPuntoResult struct {
	NuevoTotalPuntos           int             `json:"nuevo_total_puntos"`
	RazonesRecienDesbloqueadas []catalog.Razon `json:"razones_recien_desbloqueadas"`
}

type EstadoService interface {
	GetEstado(ctx context.Context) (*types.EstadoApp, error)
	// DarPunto increments the consideration points and records (and
	// returns) every reason whose threshold is newly met.
	DarPunto(ctx context.Context) (*DarPuntoResult, error)
}

type estadoService struct {
	db         *gorm.DB
	log        *logger.Logger
	estadoRepo repos.EstadoRepo
	catalog    *catalog.Catalog
}

func NewEstadoService(db *gorm.DB, log *logger.Logger, estadoRepo repos.EstadoRepo, cat *catalog.Catalog) EstadoService {
	serviceLog := log.With("service", "EstadoService")
	return &estadoService{db: db, log: serviceLog, estadoRepo: estadoRepo, catalog: cat}
}

func (es *estadoService) GetEstado(ctx context.Context) (*types.EstadoApp, error) {
	return es.estadoRepo.Get(ctx, nil)
}

func (es *estadoService) DarPunto(ctx context.Context) (*DarPuntoResult, error) {
	var result *DarPuntoResult
	if err := es.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		estado, err := es.estadoRepo.Get(ctx, tx)
		if err != nil {
			return err
		}

		estado.PuntosConsideracion += PuntoIncremento

		nuevas := []catalog.Razon{}
		for _, razon := range es.catalog.Razones() {
			if razon.PuntosRequeridos > estado.PuntosConsideracion {
				continue
			}
			if estado.HaDesbloqueadoRazon(razon.ID) {
				continue
			}
			estado.DesbloquearRazon(razon.ID)
			nuevas = append(nuevas, razon)
		}

		if err := es.estadoRepo.Save(ctx, tx, estado); err != nil {
			return err
		}

		result = &DarPuntoResult{
			NuevoTotalPuntos:           estado.PuntosConsideracion,
			RazonesRecienDesbloqueadas: nuevas,
		}
		return nil
	}); err != nil {
		es.log.Warn("DarPunto transaction error", "error", err)
		return nil, err
	}
	return result, nil
}
