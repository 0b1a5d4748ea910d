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

// EstrellasPorCancion is the one-time star reward for listening to a song.
const EstrellasPorCancion = 1

type CancionView struct {
	ID        int64  `json:"id"`
	Nombre    string `json:"nombre"`
	Artista   string `json:"artista"`
	Link      string `json:"link"`
	Motivo    string `json:"motivo"`
	Escuchada bool   `json:"escuchada"`
}

type EscucharCancionResult struct {
	CancionID          int64  `json:"cancion_id"`
	YaEscuchada        bool   `json:"ya_escuchada"`
	EstrellasOtorgadas int    `json:"estrellas_otorgadas"`
	NuevasEstrellas    int    `json:"nuevas_estrellas"`
	Mensaje            string `json:"mensaje"`
}

type CancionService interface {
	List(ctx context.Context) ([]CancionView, error)
	Get(ctx context.Context, cancionID int64) (*CancionView, error)
	// Escuchar records the song as listened and credits the star reward
	// once; repeat listens award nothing.
	Escuchar(ctx context.Context, cancionID int64) (*EscucharCancionResult, error)
}

type cancionService struct {
	db         *gorm.DB
	log        *logger.Logger
	estadoRepo repos.EstadoRepo
	catalog    *catalog.Catalog
}

func NewCancionService(db *gorm.DB, log *logger.Logger, estadoRepo repos.EstadoRepo, cat *catalog.Catalog) CancionService {
	serviceLog := log.With("service", "CancionService")
	return &cancionService{db: db, log: serviceLog, estadoRepo: estadoRepo, catalog: cat}
}

func (cs *cancionService) List(ctx context.Context) ([]CancionView, error) {
	estado, err := cs.estadoRepo.Get(ctx, nil)
	if err != nil {
		return nil, err
	}

	canciones := cs.catalog.Canciones()
	views := make([]CancionView, 0, len(canciones))
	for _, cancion := range canciones {
		views = append(views, cancionView(cancion, estado.HaEscuchadoCancion(cancion.ID)))
	}
	return views, nil
}

func (cs *cancionService) Get(ctx context.Context, cancionID int64) (*CancionView, error) {
	cancion, ok := cs.catalog.CancionByID(cancionID)
	if !ok {
		return nil, apierr.New(http.StatusNotFound, "cancion_not_found", fmt.Errorf("canción con ID %d no encontrada", cancionID))
	}
	estado, err := cs.estadoRepo.Get(ctx, nil)
	if err != nil {
		return nil, err
	}
	view := cancionView(cancion, estado.HaEscuchadoCancion(cancionID))
	return &view, nil
}

func (cs *cancionService) Escuchar(ctx context.Context, cancionID int64) (*EscucharCancionResult, error) {
	if _, ok := cs.catalog.CancionByID(cancionID); !ok {
		return nil, apierr.New(http.StatusNotFound, "cancion_not_found", fmt.Errorf("canción con ID %d no encontrada", cancionID))
	}

	var result *EscucharCancionResult
	if err := cs.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		estado, err := cs.estadoRepo.Get(ctx, tx)
		if err != nil {
			return err
		}

		if estado.HaEscuchadoCancion(cancionID) {
			result = &EscucharCancionResult{
				CancionID:       cancionID,
				YaEscuchada:     true,
				NuevasEstrellas: estado.Estrellas,
				Mensaje:         "Esta canción ya fue escuchada anteriormente",
			}
			return nil
		}

		estado.MarcarCancionEscuchada(cancionID)
		estado.Estrellas += EstrellasPorCancion
		if err := cs.estadoRepo.Save(ctx, tx, estado); err != nil {
			return err
		}

		result = &EscucharCancionResult{
			CancionID:          cancionID,
			EstrellasOtorgadas: EstrellasPorCancion,
			NuevasEstrellas:    estado.Estrellas,
			Mensaje:            fmt.Sprintf("Ganaste %d estrella", EstrellasPorCancion),
		}
		return nil
	}); err != nil {
		cs.log.Warn("Escuchar transaction error", "cancion_id", cancionID, "error", err)
		return nil, err
	}
	return result, nil
}

func cancionView(c catalog.Cancion, escuchada bool) CancionView {
	return CancionView{
		ID:        c.ID,
		Nombre:    c.Nombre,
		Artista:   c.Artista,
		Link:      c.Link,
		Motivo:    c.Motivo,
		Escuchada: escuchada,
	}
}
