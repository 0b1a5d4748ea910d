package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/juanpcm/reconquista-backend/internal/catalog"
	"github.com/juanpcm/reconquista-backend/internal/db"
	"github.com/juanpcm/reconquista-backend/internal/handlers"
	"github.com/juanpcm/reconquista-backend/internal/logger"
	"github.com/juanpcm/reconquista-backend/internal/middleware"
	"github.com/juanpcm/reconquista-backend/internal/repos"
	"github.com/juanpcm/reconquista-backend/internal/server"
	"github.com/juanpcm/reconquista-backend/internal/services"
	"github.com/juanpcm/reconquista-backend/internal/utils"
)

func main() {
	// Logger
	logMode := os.Getenv("LOG_MODE")
	if logMode == "" {
		logMode = "development"
	}
	log, err := logger.New(logMode)
	if err != nil {
		fmt.Printf("Failed to init logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	// Catalogs (fatal when a fixture is missing or malformed)
	dataDir := utils.GetEnv("DATA_DIR", "data", log)
	log.Info("Loading catalogs...", "dir", dataDir)
	cat, err := catalog.Load(dataDir)
	if err != nil {
		log.Fatal("Failed to load catalogs", "error", err)
	}
	log.Info("Catalogs loaded",
		"cartas", len(cat.Cartas()),
		"razones", len(cat.Razones()),
		"premios", len(cat.Premios()),
		"canciones", len(cat.Canciones()),
		"frases", len(cat.Frases()),
	)

	// Store
	dbService, err := db.New(log)
	if err != nil {
		log.Fatal("Database init failed", "error", err)
	}
	if err := dbService.AutoMigrateAll(); err != nil {
		log.Fatal("Database auto migration failed", "error", err)
	}
	theDB := dbService.DB()

	// Repos
	log.Info("Setting up repos from main...")
	estadoRepo := repos.NewEstadoRepo(theDB, log)

	// Seed the singleton state row so the first request never races the
	// lazy create.
	estado, err := estadoRepo.Get(context.Background(), nil)
	if err != nil {
		log.Fatal("Failed to ensure initial state", "error", err)
	}
	log.Info("Initial state ready", "puntos", estado.PuntosConsideracion, "estrellas", estado.Estrellas)

	// Services
	log.Info("Setting up services from main...")
	estadoService := services.NewEstadoService(theDB, log, estadoRepo, cat)
	cartaService := services.NewCartaService(theDB, log, estadoRepo, cat)
	razonService := services.NewRazonService(theDB, log, estadoRepo, cat)
	premioService := services.NewPremioService(theDB, log, estadoRepo, cat)
	juegoService := services.NewJuegoService(theDB, log, estadoRepo)
	cancionService := services.NewCancionService(theDB, log, estadoRepo, cat)
	fraseService := services.NewFraseService(log, cat)

	// Handlers
	log.Info("Setting up handlers from main...")
	estadoHandler := handlers.NewEstadoHandler(estadoService)
	cartaHandler := handlers.NewCartaHandler(cartaService)
	razonHandler := handlers.NewRazonHandler(razonService)
	premioHandler := handlers.NewPremioHandler(premioService)
	juegoHandler := handlers.NewJuegoHandler(juegoService)
	cancionHandler := handlers.NewCancionHandler(cancionService)
	fraseHandler := handlers.NewFraseHandler(fraseService)

	// Middleware
	requestLog := middleware.NewRequestLogMiddleware(log)

	// Router
	log.Info("Setting up router from main...")
	corsOrigins := strings.Split(utils.GetEnv("CORS_ORIGINS", "http://localhost:5173", log), ",")
	for i := range corsOrigins {
		corsOrigins[i] = strings.TrimSpace(corsOrigins[i])
	}
	router := server.NewRouter(server.RouterConfig{
		RequestLog:     requestLog,
		CORSOrigins:    corsOrigins,
		EstadoHandler:  estadoHandler,
		CartaHandler:   cartaHandler,
		RazonHandler:   razonHandler,
		PremioHandler:  premioHandler,
		JuegoHandler:   juegoHandler,
		CancionHandler: cancionHandler,
		FraseHandler:   fraseHandler,
	})

	port := utils.GetEnv("PORT", "8000", log)
	log.Info("Server listening", "port", port)
	if err := router.Run(":" + port); err != nil {
		log.Error("Server failed", "error", err)
	}
}
