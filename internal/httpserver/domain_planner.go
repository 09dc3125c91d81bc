package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	"daynix/internal/middleware"
	plannerHTTP "daynix/internal/planner/delivery/http"
)

// setupPlannerDomain wires the planner handler and registers its routes at
// /api/v1/planner.
func (srv *HTTPServer) setupPlannerDomain(ctx context.Context, api *gin.RouterGroup) error {
	mw := middleware.New(srv.l, middleware.Config{
		RateLimitPerMin: srv.rateLimitPerMin,
	})

	h := plannerHTTP.New(srv.l, srv.plannerUC, srv.clock)
	plannerHTTP.RegisterRoutes(api.Group("/planner"), h, mw)

	srv.l.Infof(ctx, "Planner domain registered")
	return nil
}
