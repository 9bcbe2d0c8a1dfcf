package usecase

import (
	"time"

	"sehrimilan/internal/cache"
	planRepo "sehrimilan/internal/plan/repository"
	"sehrimilan/internal/planparser"
	"sehrimilan/internal/shopping"
	"sehrimilan/internal/shopping/repository"
	"sehrimilan/pkg/log"
)

// implUseCase is the private implementation of shopping.UseCase.
type implUseCase struct {
	repo     repository.Repository
	planRepo planRepo.Repository
	parser   planparser.Service
	cache    cache.Cache
	l        log.Logger
	clock    func() time.Time
}

// New creates a new shopping UseCase implementation.
func New(
	l log.Logger,
	repo repository.Repository,
	planRepo planRepo.Repository,
	parser planparser.Service,
	c cache.Cache,
) shopping.UseCase {
	return &implUseCase{
		repo:     repo,
		planRepo: planRepo,
		parser:   parser,
		cache:    c,
		l:        l,
		clock:    time.Now,
	}
}
