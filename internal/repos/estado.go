package repos

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/juanpcm/reconquista-backend/internal/logger"
	"github.com/juanpcm/reconquista-backend/internal/types"
)

type EstadoRepo interface {
	// Get returns the singleton state row, creating the default row when
	// none exists yet.
	Get(ctx context.Context, tx *gorm.DB) (*types.EstadoApp, error)
	// Save replaces the whole singleton row. No partial updates.
	Save(ctx context.Context, tx *gorm.DB, estado *types.EstadoApp) error
}

type estadoRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewEstadoRepo(db *gorm.DB, baseLog *logger.Logger) EstadoRepo {
	repoLog := baseLog.With("repo", "EstadoRepo")
	return &estadoRepo{db: db, log: repoLog}
}

func (er *estadoRepo) Get(ctx context.Context, tx *gorm.DB) (*types.EstadoApp, error) {
	transaction := tx
	if transaction == nil {
		transaction = er.db
	}

	var estado types.EstadoApp
	err := transaction.WithContext(ctx).
		Order("id").
		First(&estado).Error
	if err == nil {
		return &estado, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	fresh := types.NewEstadoApp()
	now := time.Now().UTC()
	fresh.CreatedAt = now
	fresh.UpdatedAt = now
	if err := transaction.WithContext(ctx).Create(fresh).Error; err != nil {
		return nil, err
	}
	er.log.Info("Created default application state")
	return fresh, nil
}

func (er *estadoRepo) Save(ctx context.Context, tx *gorm.DB, estado *types.EstadoApp) error {
	transaction := tx
	if transaction == nil {
		transaction = er.db
	}

	estado.UpdatedAt = time.Now().UTC()
	return transaction.WithContext(ctx).Save(estado).Error
}
