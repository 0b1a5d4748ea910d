package db

import (
	"fmt"
	"strings"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/juanpcm/reconquista-backend/internal/logger"
	"github.com/juanpcm/reconquista-backend/internal/types"
	"github.com/juanpcm/reconquista-backend/internal/utils"
)

type Service struct {
	db  *gorm.DB
	log *logger.Logger
}

// New opens the store selected by DATABASE_URL: a postgres:// DSN uses the
// postgres driver, anything else is treated as a SQLite file path. The
// default is a local SQLite file next to the binary.
func New(log *logger.Logger) (*Service, error) {
	serviceLog := log.With("service", "DBService")

	databaseURL := utils.GetEnv("DATABASE_URL", "reconquista.db", log)

	var dialector gorm.Dialector
	if strings.HasPrefix(databaseURL, "postgres://") || strings.HasPrefix(databaseURL, "postgresql://") {
		serviceLog.Info("Connecting to Postgres...")
		dialector = postgres.Open(databaseURL)
	} else {
		serviceLog.Info("Opening SQLite database...", "path", databaseURL)
		dialector = sqlite.Open(databaseURL)
	}

	gormDB, err := gorm.Open(dialector, &gorm.Config{})
	if err != nil {
		serviceLog.Error("Failed to connect to database", "error", err)
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	return &Service{db: gormDB, log: serviceLog}, nil
}

func (s *Service) AutoMigrateAll() error {
	s.log.Info("Auto migrating tables...")
	if err := s.db.AutoMigrate(&types.EstadoApp{}); err != nil {
		s.log.Error("Auto migration failed", "error", err)
		return err
	}
	return nil
}

func (s *Service) DB() *gorm.DB {
	return s.db
}
