package providers

import (
	"github.com/samber/do/v2"

	"github.com/rootsapp/roots-server/internal/catalog"
	"github.com/rootsapp/roots-server/internal/config"
	"github.com/rootsapp/roots-server/internal/logger"
)

// CatalogClientHandle wraps the catalog client with Shutdownable.
type CatalogClientHandle struct {
	*catalog.Client
}

// Shutdown implements do.Shutdownable.
func (h *CatalogClientHandle) Shutdown() error {
	h.Close()
	return nil
}

// ProvideCatalogClient provides the book catalog search client.
func ProvideCatalogClient(i do.Injector) (*CatalogClientHandle, error) {
	cfg := do.MustInvoke[*config.Config](i)
	log := do.MustInvoke[*logger.Logger](i)

	client := catalog.New(cfg.Catalog, log.Logger)

	log.Info("Catalog client ready",
		"language", cfg.Catalog.Language,
		"page_size", cfg.Catalog.PageSize,
	)

	return &CatalogClientHandle{Client: client}, nil
}
