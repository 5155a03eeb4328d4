package server

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/blkoutuk/ivor/internal/api"
	"github.com/blkoutuk/ivor/internal/api/handlers"
	"github.com/blkoutuk/ivor/internal/api/middleware"
)

type RouterConfig struct {
	ChatHandler   *handlers.ChatHandler
	SearchHandler *handlers.SearchHandler
}

func NewRouter(cfg RouterConfig) http.Handler {
	r := chi.NewRouter()

	const maxBodyBytes int64 = 64 * 1024

	r.Use(middleware.RequestID)
	r.Use(middleware.SentryMiddleware)
	r.Use(middleware.AccessLog)
	r.Use(middleware.MaxBodyBytes(maxBodyBytes))

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		api.Success(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	r.Post("/chat", cfg.ChatHandler.Chat)
	r.Post("/search", cfg.SearchHandler.Search)
	r.Post("/resources/search", cfg.SearchHandler.SearchResources)
	r.Get("/index/stats", cfg.SearchHandler.IndexStats)

	return r
}
