package main

import (
	"os"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/hugohenrick/filial-service/docs"
	"github.com/hugohenrick/filial-service/internal/adapter/api/controller"
	"github.com/hugohenrick/filial-service/internal/adapter/api/route"
	"github.com/hugohenrick/filial-service/internal/adapter/repository"
	"github.com/hugohenrick/filial-service/internal/domain/filial"
	"github.com/hugohenrick/filial-service/internal/infrastructure/database"
	"github.com/hugohenrick/filial-service/pkg/logger"
)

// App representa a aplicação e suas dependências
type App struct {
	router           *gin.Engine
	db               *database.PostgresDB
	logger           logger.Logger
	filialController *controller.FilialController
}

// NewApp cria uma nova instância do aplicativo
func NewApp() (*App, error) {
	log := logger.NewLogger()

	// Configurar banco de dados
	config := database.NewPostgresConfigFromEnv()
	db, err := database.NewPostgresDB(config)
	if err != nil {
		return nil, err
	}

	// Criar repositórios
	filialRepo := repository.NewPostgresFilialRepository(db)
	userRepo := repository.NewPostgresUserRepository(db)

	// Criar o registro de filiais
	registry := filial.NewRegistry(filialRepo, userRepo)

	// Criar controllers
	filialController := controller.NewFilialController(registry, log)

	// Configurar router
	router := gin.Default()
	router.Use(cors.Default())

	app := &App{
		router:           router,
		db:               db,
		logger:           log,
		filialController: filialController,
	}

	app.setupRoutes("/api/v1")

	return app, nil
}

// setupRoutes configura as rotas da aplicação
func (a *App) setupRoutes(basePath string) {
	api := a.router.Group(basePath)

	// Health check
	api.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"version": "1.0.0",
		})
	})

	// Rotas para filiais
	route.SetupFilialRoutes(api, a.filialController)

	// Documentação Swagger
	a.router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}

// Start inicia o servidor HTTP
func (a *App) Start() error {
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	a.logger.Info("servidor iniciado", "port", port)
	return a.router.Run(":" + port)
}

// Close libera os recursos da aplicação
func (a *App) Close() {
	if a.db != nil {
		a.db.Close()
	}
}
