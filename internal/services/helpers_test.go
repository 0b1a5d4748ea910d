package services

import (
	"path/filepath"
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/juanpcm/reconquista-backend/internal/catalog"
	"github.com/juanpcm/reconquista-backend/internal/logger"
	"github.com/juanpcm/reconquista-backend/internal/repos"
	"github.com/juanpcm/reconquista-backend/internal/types"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	path := filepath.Join(t.TempDir(), "estado_test.db")
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	if err := db.AutoMigrate(&types.EstadoApp{}); err != nil {
		t.Fatalf("migrate test db: %v", err)
	}
	return db
}

func newTestCatalog(t *testing.T) *catalog.Catalog {
	t.Helper()
	cat, err := catalog.New(
		[]catalog.Carta{
			{ID: 1, Titulo: "Carta uno", Contenido: "contenido uno", EstrellasRecompensa: 5},
			{ID: 2, Titulo: "Carta dos", Contenido: "contenido dos", EstrellasRecompensa: 1},
			{ID: 3, Titulo: "Carta tres", Contenido: "contenido tres", EstrellasRecompensa: 10},
		},
		[]catalog.Razon{
			{ID: 1, PuntosRequeridos: 0, Categoria: "recuerdos", Texto: "razon cero"},
			{ID: 2, PuntosRequeridos: 1, Categoria: "recuerdos", Texto: "razon uno"},
			{ID: 3, PuntosRequeridos: 3, Categoria: "futuro", Texto: "razon tres"},
			{ID: 4, PuntosRequeridos: 10, Categoria: "amor", Texto: "razon diez"},
		},
		[]catalog.Premio{
			{ID: 1, Nombre: "Premio chico", Costo: 3, Disponible: true},
			{ID: 2, Nombre: "Premio mediano", Costo: 10, Disponible: true},
			{ID: 3, Nombre: "Premio grande", Costo: 100, Disponible: true},
		},
		[]catalog.Cancion{
			{ID: 1, Nombre: "Cancion uno", Artista: "Artista"},
			{ID: 2, Nombre: "Cancion dos", Artista: "Artista"},
		},
		[]catalog.Frase{
			{ID: 1, Texto: "frase romantica", Categoria: "romantica"},
			{ID: 2, Texto: "otra romantica", Categoria: "romantica"},
			{ID: 3, Texto: "chiste", Categoria: "chiste_malo"},
		},
	)
	if err != nil {
		t.Fatalf("build test catalog: %v", err)
	}
	return cat
}

type testEnv struct {
	db      *gorm.DB
	cat     *catalog.Catalog
	repo    repos.EstadoRepo
	estado  EstadoService
	cartas  CartaService
	razones RazonService
	premios PremioService
	juegos  JuegoService
	cancion CancionService
	frases  FraseService
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	db := newTestDB(t)
	cat := newTestCatalog(t)
	log := logger.NewNop()
	repo := repos.NewEstadoRepo(db, log)
	return &testEnv{
		db:      db,
		cat:     cat,
		repo:    repo,
		estado:  NewEstadoService(db, log, repo, cat),
		cartas:  NewCartaService(db, log, repo, cat),
		razones: NewRazonService(db, log, repo, cat),
		premios: NewPremioService(db, log, repo, cat),
		juegos:  NewJuegoService(db, log, repo),
		cancion: NewCancionService(db, log, repo, cat),
		frases:  NewFraseService(log, cat),
	}
}
