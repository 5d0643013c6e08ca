package providers

import (
	"github.com/samber/do/v2"

	"github.com/rootsapp/roots-server/internal/logger"
	"github.com/rootsapp/roots-server/internal/service"
)

// ProvideLibraryService provides the library and progress service.
func ProvideLibraryService(i do.Injector) (*service.LibraryService, error) {
	storeHandle := do.MustInvoke[*StoreHandle](i)
	log := do.MustInvoke[*logger.Logger](i)
	return service.NewLibraryService(storeHandle.Store, log.Logger), nil
}

// ProvideSessionService provides the reading session ledger service.
func ProvideSessionService(i do.Injector) (*service.SessionService, error) {
	storeHandle := do.MustInvoke[*StoreHandle](i)
	log := do.MustInvoke[*logger.Logger](i)
	return service.NewSessionService(storeHandle.Store, log.Logger), nil
}

// ProvideNoteService provides the note service.
func ProvideNoteService(i do.Injector) (*service.NoteService, error) {
	storeHandle := do.MustInvoke[*StoreHandle](i)
	log := do.MustInvoke[*logger.Logger](i)
	return service.NewNoteService(storeHandle.Store, log.Logger), nil
}

// ProvideStatsService provides the weekly aggregation service.
func ProvideStatsService(i do.Injector) (*service.StatsService, error) {
	storeHandle := do.MustInvoke[*StoreHandle](i)
	log := do.MustInvoke[*logger.Logger](i)
	return service.NewStatsService(storeHandle.Store, log.Logger), nil
}

// ProvideGenreService provides the genre service.
func ProvideGenreService(i do.Injector) (*service.GenreService, error) {
	storeHandle := do.MustInvoke[*StoreHandle](i)
	log := do.MustInvoke[*logger.Logger](i)
	return service.NewGenreService(storeHandle.Store, log.Logger), nil
}
