package app

import (
	"errors"
	"io/fs"

	"go.uber.org/zap"

	"github.com/benjaauf/reservas-salasUSM/internal/config"
	"github.com/benjaauf/reservas-salasUSM/internal/dataset"
	"github.com/benjaauf/reservas-salasUSM/internal/model"
	"github.com/benjaauf/reservas-salasUSM/internal/store"
)

// ReferenceClock is the demo instant the availability hints are computed
// for: Monday during block 2 (09:40-10:50).
var ReferenceClock = dataset.Clock{Day: model.DayLunes, Block: 2}

// BuildStore loads the building catalog, generates the mock campus and
// seeds the session store.
func BuildStore(cfg *config.Config, logger *zap.Logger) (*store.Store, error) {
	catalog := dataset.DefaultCatalog()
	if cfg.CatalogPath != "" {
		loaded, err := dataset.LoadCatalog(cfg.CatalogPath)
		switch {
		case errors.Is(err, fs.ErrNotExist):
			logger.Warn("Catalog file missing, using built-in catalog",
				zap.String("path", cfg.CatalogPath))
		case err != nil:
			return nil, err
		default:
			catalog = loaded
		}
	}

	gen := dataset.NewGenerator(cfg.DatasetSeed, ReferenceClock)
	st := store.New(gen.Buildings(catalog), logger)

	for _, req := range dataset.SeedExceptionRequests() {
		st.AddExceptionRequest(req)
	}

	logger.Info("Dataset loaded",
		zap.Int("buildings", len(catalog)),
		zap.Int64("seed", cfg.DatasetSeed),
	)

	return st, nil
}
