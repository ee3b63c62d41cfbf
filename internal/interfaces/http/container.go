// Package http wires the application together: repositories, use cases,
// handlers, middleware and routes.
package http

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"provisio/internal/application/production/usecases"
	"provisio/internal/infrastructure/auth"
	"provisio/internal/infrastructure/config"
	"provisio/internal/infrastructure/repository"
	"provisio/internal/infrastructure/services"
	productionHandlers "provisio/internal/interfaces/http/handlers/production"
	"provisio/internal/interfaces/http/middleware"
	"provisio/internal/shared/authorization"
	"provisio/internal/shared/db"
	"provisio/internal/shared/logger"
	"provisio/internal/shared/markdown"
)

// Container holds the wired HTTP stack.
type Container struct {
	engine *gin.Engine
	db     *gorm.DB
	cfg    *config.Config
	log    logger.Interface

	productionHandler *productionHandlers.ProductionHandler
	taskHandler       *productionHandlers.TaskHandler
	ledgerHandler     *productionHandlers.LedgerHandler

	authMiddleware *middleware.AuthMiddleware
}

func NewContainer(gormDB *gorm.DB, cfg *config.Config, log logger.Interface) *Container {
	c := &Container{
		db:  gormDB,
		cfg: cfg,
		log: log,
	}

	c.buildHandlers()
	c.buildEngine()
	return c
}

func (c *Container) buildHandlers() {
	productionRepo := repository.NewProductionRepository(c.db)
	taskRepo := repository.NewTaskRepository(c.db)
	ledgerRepo := repository.NewLedgerRepository(c.db)

	numberGen := services.NewProductionNumberGenerator(c.db)
	txManager := db.NewTransactionManager(c.db)
	markdownSvc := markdown.NewService()

	c.productionHandler = productionHandlers.NewProductionHandler(
		usecases.NewCreateProductionUseCase(productionRepo, taskRepo, numberGen, txManager, c.log),
		usecases.NewGetProductionUseCase(productionRepo, taskRepo, c.log),
		usecases.NewListProductionsUseCase(productionRepo, taskRepo, c.log),
		usecases.NewUpdateProductionUseCase(productionRepo, taskRepo, c.log),
		usecases.NewDeleteProductionUseCase(productionRepo, txManager, c.log),
	)

	c.taskHandler = productionHandlers.NewTaskHandler(
		usecases.NewListTasksUseCase(productionRepo, taskRepo, c.log),
		usecases.NewUpdateTaskUseCase(taskRepo, ledgerRepo, txManager, c.log),
	)

	c.ledgerHandler = productionHandlers.NewLedgerHandler(
		usecases.NewAddCommentUseCase(taskRepo, ledgerRepo, markdownSvc, c.log),
		usecases.NewListCommentsUseCase(taskRepo, ledgerRepo, markdownSvc, c.log),
		usecases.NewUploadFileUseCase(taskRepo, ledgerRepo, txManager, c.log),
		usecases.NewDeleteFileUseCase(ledgerRepo, txManager, c.log),
		usecases.NewListFilesUseCase(taskRepo, ledgerRepo, c.log),
		usecases.NewGetFileUseCase(ledgerRepo, c.log),
	)

	jwtSvc := auth.NewJWTService(c.cfg.Auth.JWT.Secret, c.cfg.Auth.JWT.AccessExpMinutes)
	c.authMiddleware = middleware.NewAuthMiddleware(jwtSvc, c.log)
}

func (c *Container) buildEngine() {
	gin.SetMode(c.cfg.Server.Mode)

	engine := gin.New()
	engine.Use(middleware.Recovery())
	engine.Use(middleware.Logger(c.log))
	engine.Use(middleware.CORS(c.cfg.Server.AllowedOrigins))

	c.registerRoutes(engine)
	c.engine = engine
}

func (c *Container) registerRoutes(engine *gin.Engine) {
	api := engine.Group("/api")
	api.Use(c.authMiddleware.RequireAuth())

	productions := api.Group("/productions")
	{
		productions.GET("", c.productionHandler.ListProductions)
		productions.POST("", c.productionHandler.CreateProduction)
		productions.GET("/:id", c.productionHandler.GetProduction)
		productions.PUT("/:id", authorization.RequireAgent(), c.productionHandler.UpdateProduction)
		productions.DELETE("/:id", authorization.RequireAgent(), c.productionHandler.DeleteProduction)
	}

	tasks := api.Group("/production-taches")
	{
		tasks.GET("", c.taskHandler.ListTasks)
		tasks.PUT("/:id", authorization.RequireAgent(), c.taskHandler.UpdateTask)
	}

	comments := api.Group("/production-tache-commentaires")
	{
		comments.GET("", c.ledgerHandler.ListComments)
		comments.POST("", c.ledgerHandler.AddComment)
	}

	files := api.Group("/production-tache-fichiers")
	{
		files.GET("", c.ledgerHandler.ListFiles)
		files.POST("", c.ledgerHandler.UploadFile)
		files.GET("/:id", c.ledgerHandler.GetFile)
		files.DELETE("/:id", c.ledgerHandler.DeleteFile)
	}
}

// Engine returns the configured gin engine.
func (c *Container) Engine() *gin.Engine {
	return c.engine
}
