package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	chatHTTP "sehrimilan/internal/chat/delivery/http"
	chatUC "sehrimilan/internal/chat/usecase"
	"sehrimilan/internal/generator"
	"sehrimilan/internal/middleware"
	planHTTP "sehrimilan/internal/plan/delivery/http"
	planRepo "sehrimilan/internal/plan/repository/sqlite"
	planUC "sehrimilan/internal/plan/usecase"
	"sehrimilan/internal/planparser"
	shoppingHTTP "sehrimilan/internal/shopping/delivery/http"
	shoppingRepo "sehrimilan/internal/shopping/repository/sqlite"
	shoppingUC "sehrimilan/internal/shopping/usecase"
	"sehrimilan/pkg/markdown"
)

// setupDomains wires repositories, usecases and handlers of every domain.
//
// Pattern to follow when adding a new domain:
//  1. Create Repository:   repo := mydomainRepo.New(srv.db, srv.l)
//  2. Create UseCase:      uc := mydomainUC.New(srv.l, repo, ...)
//  3. Create HTTP Handler: h := mydomainHTTP.New(srv.l, uc)
//  4. Register Routes:     mydomainHTTP.RegisterRoutes(api, h, mw)
func (srv HTTPServer) setupDomains(ctx context.Context, api *gin.RouterGroup, mw middleware.Middleware) error {
	// 1. Repositories
	plans := planRepo.New(srv.db, srv.l)
	lists := shoppingRepo.New(srv.db, srv.l)

	// 2. Shared services
	parser := planparser.New(srv.parser)
	gen := generator.New(srv.l, srv.transport, srv.generator)
	renderer := markdown.New(srv.markdown)

	// 3. UseCases
	planUseCase := planUC.New(srv.l, plans, lists, gen, parser, renderer, srv.cache)
	shoppingUseCase := shoppingUC.New(srv.l, lists, plans, parser, srv.cache)
	chatUseCase := chatUC.New(srv.l, srv.transport)

	// 4. Routes: /api/v1/plans, /api/v1/shopping-list, /api/v1/chat
	planHTTP.RegisterRoutes(api, planHTTP.New(srv.l, planUseCase), mw)
	shoppingHTTP.RegisterRoutes(api, shoppingHTTP.New(srv.l, shoppingUseCase), mw)
	chatHTTP.RegisterRoutes(api, chatHTTP.New(srv.l, chatUseCase), mw)

	srv.l.Infof(ctx, "Plan, shopping and chat domains registered")
	return nil
}
