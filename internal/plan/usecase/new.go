package usecase

import (
	"sehrimilan/internal/cache"
	"sehrimilan/internal/generator"
	"sehrimilan/internal/plan"
	"sehrimilan/internal/plan/repository"
	"sehrimilan/internal/planparser"
	shoppingRepo "sehrimilan/internal/shopping/repository"
	"sehrimilan/pkg/log"
	"sehrimilan/pkg/markdown"
)

// implUseCase is the private implementation of plan.UseCase.
type implUseCase struct {
	repo         repository.Repository
	shoppingRepo shoppingRepo.Repository
	generator    generator.Generator
	parser       planparser.Service
	renderer     markdown.Renderer
	cache        cache.Cache
	l            log.Logger
}

// New creates a new plan UseCase implementation.
func New(
	l log.Logger,
	repo repository.Repository,
	shoppingRepo shoppingRepo.Repository,
	gen generator.Generator,
	parser planparser.Service,
	renderer markdown.Renderer,
	c cache.Cache,
) plan.UseCase {
	return &implUseCase{
		repo:         repo,
		shoppingRepo: shoppingRepo,
		generator:    gen,
		parser:       parser,
		renderer:     renderer,
		cache:        c,
		l:            l,
	}
}
