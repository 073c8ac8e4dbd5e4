package app

import (
	"context"
	"errors"
	"net/http"

	"github.com/orgball2608/crypto-blog/internal/backend"
	"github.com/orgball2608/crypto-blog/internal/backend/backendimpl"
	"github.com/orgball2608/crypto-blog/internal/blog"
	"github.com/orgball2608/crypto-blog/internal/blog/blogimpl"
	"github.com/orgball2608/crypto-blog/internal/web"
	"github.com/orgball2608/crypto-blog/pkg/config"
	"github.com/orgball2608/crypto-blog/pkg/logger"
	"go.uber.org/fx"
)

var Module = fx.Options(
	fx.Provide(
		config.New,
		logger.FxOption,
	),
	fx.Provide(
		fx.Annotate(
			backendimpl.New,
			fx.As(new(backend.Client)),
		),
		fx.Annotate(
			blogimpl.New,
			fx.As(new(blog.Controller)),
		),
		web.New,
	),
	fx.Invoke(run),
)

func run(lc fx.Lifecycle, log logger.Logger, srv *web.Server, ctrl blog.Controller) {
	lc.Append(fx.Hook{
		OnStart: func(context.Context) error {
			go startHttpServer(log, srv)

			// The page is mounted once per process; the start context ends
			// when OnStart returns, so the fetch gets its own.
			go ctrl.Mount(context.Background())

			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Info("Shutting down server")
			return srv.HTTP.Shutdown(ctx)
		},
	})
}

func startHttpServer(log logger.Logger, srv *web.Server) {
	log.Info("Starting server", "addr", srv.HTTP.Addr)

	if err := srv.HTTP.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Error("Server failed to start", "error", err)
	}
}
