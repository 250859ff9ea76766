package routes

import (
	"context"
	"os"
	"strings"

	_ "backpedidos/docs" // swag generated
	"backpedidos/internal/adapter/http/handlers"
	"backpedidos/internal/adapter/persistence/repository"
	"backpedidos/internal/infrastructure/database"
	"backpedidos/internal/usecase"
	"backpedidos/pkg/logger"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var router = gin.Default()

const defaultPort = "8000"
const defaultBucket = "pedidos"

// Run wires the whole service and starts the server.
func Run() {
	log, err := logger.New(os.Getenv("GIN_MODE"))
	if err != nil {
		panic(err)
	}
	defer log.Sync()

	setMiddlewares(log)

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	pool, err := database.ConnectPostgres(context.Background(), log)
	if err != nil {
		log.Fatal("database connection failed", "error", err)
	}

	getRoutes(pool, log)

	port := os.Getenv("PORT")
	if port == "" {
		port = defaultPort
	}
	if err := router.Run(":" + port); err != nil {
		log.Fatal("failed to start the application", "error", err)
	}
}

func getRoutes(pool *pgxpool.Pool, log *logger.Logger) {
	pedidoRepo := repository.NewPedidoPgRepository(pool, log)
	archivoRepo := repository.NewArchivoPgRepository(pool, log, envBool("ARCHIVOS_UPSERT", false))
	proveedorRepo := repository.NewProveedorPgRepository(pool, log)

	bucket := os.Getenv("SUPABASE_BUCKET")
	if bucket == "" {
		bucket = defaultBucket
	}

	pedidoUseCase := usecase.NewPedidoUseCase(pedidoRepo)
	workflowUseCase := usecase.NewPedidoWorkflowUseCase(pedidoRepo)
	archivoUseCase := usecase.NewArchivoUseCase(archivoRepo, pedidoRepo, bucket)
	proveedorUseCase := usecase.NewProveedorUseCase(proveedorRepo)

	pedidoHandler := handlers.NewPedidoHandler(pedidoUseCase)
	workflowHandler := handlers.NewWorkflowHandler(workflowUseCase)
	archivoHandler := handlers.NewArchivoHandler(archivoUseCase)
	proveedorHandler := handlers.NewProveedorHandler(proveedorUseCase)

	addRootRoutes(router, pool)

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addPedidoRoutes(v1, pedidoHandler, workflowHandler)
	addArchivoRoutes(v1, archivoHandler)
	addProveedorRoutes(v1, proveedorHandler)
}

func setMiddlewares(log *logger.Logger) {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Error("recovered from panic", "panic", recovered)
		c.AbortWithStatus(500)
	}))
	router.Use(cors.New(corsConfig()))
}

// corsConfig reads CORS_ORIGINS (comma separated); "*" or empty allows all.
func corsConfig() cors.Config {
	cfg := cors.DefaultConfig()
	cfg.AllowHeaders = append(cfg.AllowHeaders, "Authorization", "X-User", "X-Secretaria")

	raw := strings.TrimSpace(os.Getenv("CORS_ORIGINS"))
	if raw == "" || raw == "*" {
		cfg.AllowAllOrigins = true
		return cfg
	}
	for _, o := range strings.Split(raw, ",") {
		if o = strings.TrimSpace(o); o != "" {
			cfg.AllowOrigins = append(cfg.AllowOrigins, o)
		}
	}
	return cfg
}

func envBool(key string, def bool) bool {
	switch strings.ToLower(strings.TrimSpace(os.Getenv(key))) {
	case "1", "true", "yes", "on":
		return true
	case "0", "false", "no", "off":
		return false
	}
	return def
}
