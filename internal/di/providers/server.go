package providers

import (
	"context"
	"net/http"

	"github.com/samber/do/v2"

	"github.com/rootsapp/roots-server/internal/api"
	"github.com/rootsapp/roots-server/internal/config"
	"github.com/rootsapp/roots-server/internal/logger"
	"github.com/rootsapp/roots-server/internal/service"
)

// HTTPServerHandle wraps http.Server with Shutdownable.
type HTTPServerHandle struct {
	*http.Server
}

// Shutdown implements do.Shutdownable.
func (h *HTTPServerHandle) Shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return h.Server.Shutdown(ctx)
}

// ProvideHTTPServer provides the HTTP server.
func ProvideHTTPServer(i do.Injector) (*HTTPServerHandle, error) {
	cfg := do.MustInvoke[*config.Config](i)
	log := do.MustInvoke[*logger.Logger](i)
	catalogHandle := do.MustInvoke[*CatalogClientHandle](i)

	libraryService := do.MustInvoke[*service.LibraryService](i)
	sessionService := do.MustInvoke[*service.SessionService](i)
	noteService := do.MustInvoke[*service.NoteService](i)
	statsService := do.MustInvoke[*service.StatsService](i)
	genreService := do.MustInvoke[*service.GenreService](i)

	handler := api.NewServer(catalogHandle.Client, libraryService, sessionService, noteService, statsService, genreService, log.Logger)

	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      handler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	// Start in background
	go func() {
		log.Info("HTTP server starting", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("HTTP server error", "error", err)
		}
	}()

	log.Info("Server running", "addr", srv.Addr)

	return &HTTPServerHandle{Server: srv}, nil
}
