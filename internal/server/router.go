package server

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/juanpcm/reconquista-backend/internal/handlers"
	"github.com/juanpcm/reconquista-backend/internal/middleware"
)

type RouterConfig struct {
	RequestLog     *middleware.RequestLogMiddleware
	CORSOrigins    []string
	EstadoHandler  *handlers.EstadoHandler
	CartaHandler   *handlers.CartaHandler
	RazonHandler   *handlers.RazonHandler
	PremioHandler  *handlers.PremioHandler
	JuegoHandler   *handlers.JuegoHandler
	CancionHandler *handlers.CancionHandler
	FraseHandler   *handlers.FraseHandler
}

func NewRouter(cfg RouterConfig) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	if cfg.RequestLog != nil {
		router.Use(cfg.RequestLog.Handle())
	}

	// Cors
	router.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.CORSOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Authorization", "Content-Type", "X-Requested-With"},
		AllowCredentials: true,
	}))

	router.GET("/healthcheck", handlers.HealthCheck)

	api := router.Group("/api")
	{
		// Estado
		api.GET("/estado", cfg.EstadoHandler.GetEstado)
		api.POST("/dar-punto", cfg.EstadoHandler.DarPunto)
		// Cartas
		api.GET("/cartas", cfg.CartaHandler.List)
		api.POST("/leer-carta/:carta_id", cfg.CartaHandler.Leer)
		// Razones
		api.GET("/razones", cfg.RazonHandler.List)
		// Premios
		api.GET("/premios", cfg.PremioHandler.List)
		api.POST("/reclamar-premio", cfg.PremioHandler.Reclamar)
		// Juegos
		api.POST("/completar-juego", cfg.JuegoHandler.Completar)
		// Canciones
		api.GET("/canciones", cfg.CancionHandler.List)
		api.GET("/canciones/:cancion_id", cfg.CancionHandler.Get)
		api.POST("/escuchar-cancion/:cancion_id", cfg.CancionHandler.Escuchar)
		// Frases
		api.GET("/frases", cfg.FraseHandler.List)
		api.GET("/frases/aleatoria", cfg.FraseHandler.Aleatoria)
		api.GET("/frases/:frase_id", cfg.FraseHandler.Get)
	}

	return router
}
