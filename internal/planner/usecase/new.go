package usecase

import (
	"daynix/internal/planner"
	"daynix/internal/planner/repository"
	"daynix/pkg/clock"
	pkgLog "daynix/pkg/log"
)

// implUseCase is the private implementation of planner.UseCase.
type implUseCase struct {
	l     pkgLog.Logger
	repo  repository.Repository
	clock clock.Clock
}

var _ planner.UseCase = (*implUseCase)(nil)

// New creates a new planner UseCase instance.
func New(l pkgLog.Logger, repo repository.Repository, clk clock.Clock) planner.UseCase {
	if clk == nil {
		clk = clock.RealClock{}
	}
	return &implUseCase{
		l:     l,
		repo:  repo,
		clock: clk,
	}
}
