package http

import (
	"github.com/gin-gonic/gin"

	"daynix/internal/planner"
	"daynix/pkg/clock"
	"daynix/pkg/log"
)

// Handler is the public interface for the planner HTTP delivery layer.
type Handler interface {
	Board(c *gin.Context)
	Create(c *gin.Context)
	List(c *gin.Context)
	Update(c *gin.Context)
	Delete(c *gin.Context)
	Complete(c *gin.Context)
	ToggleLock(c *gin.Context)
	Conflicts(c *gin.Context)
	AutoMove(c *gin.Context)
	GetPreferences(c *gin.Context)
	SavePreferences(c *gin.Context)
	ExportBackup(c *gin.Context)
	ImportBackup(c *gin.Context)
}

type handler struct {
	l     log.Logger
	uc    planner.UseCase
	clock clock.Clock
}

// New creates a new HTTP handler for the planner domain.
func New(l log.Logger, uc planner.UseCase, clk clock.Clock) *handler {
	if clk == nil {
		clk = clock.RealClock{}
	}
	return &handler{
		l:     l,
		uc:    uc,
		clock: clk,
	}
}
