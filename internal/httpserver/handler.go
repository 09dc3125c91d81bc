package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"daynix/internal/model"
)

func (srv *HTTPServer) mapHandlers() error {
	srv.registerMiddlewares()
	srv.registerSystemRoutes()

	if err := srv.registerDomainRoutes(); err != nil {
		return err
	}

	return nil
}

func (srv *HTTPServer) registerMiddlewares() {
	ctx := context.Background()

	srv.gin.Use(gin.Recovery())
	if srv.environment != string(model.EnvironmentProduction) {
		srv.gin.Use(gin.Logger())
	}
	srv.l.Infof(ctx, "Environment: %s", srv.environment)
}

func (srv *HTTPServer) registerSystemRoutes() {
	srv.gin.GET("/health", srv.healthCheck)
	srv.gin.GET("/ready", srv.readyCheck)
	srv.gin.GET("/live", srv.liveCheck)

	srv.gin.GET("/swagger/*any", ginSwagger.WrapHandler(
		swaggerFiles.Handler,
		ginSwagger.URL("doc.json"),
		ginSwagger.DefaultModelsExpandDepth(-1),
	))
}

// registerDomainRoutes registers all domain routes under /api/v1.
func (srv *HTTPServer) registerDomainRoutes() error {
	ctx := context.Background()
	api := srv.gin.Group("/api/v1")

	if err := srv.setupPlannerDomain(ctx, api); err != nil {
		return err
	}

	return nil
}
