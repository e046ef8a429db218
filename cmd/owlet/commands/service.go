package commands

import (
	"database/sql"

	"github.com/owlet-db/owlet/config"
	"github.com/owlet-db/owlet/db"
	"github.com/owlet-db/owlet/errors"
	"github.com/owlet-db/owlet/graphstore"
	"github.com/owlet-db/owlet/logger"
	"github.com/owlet-db/owlet/ontology"
)

// openService opens the configured database, applies migrations, and wires
// up an initialized ontology service. The caller closes the returned *sql.DB.
func openService() (*ontology.Service, *sql.DB, *config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, nil, errors.Wrap(err, "load configuration")
	}

	database, err := db.Open(cfg.Database.Path, logger.Logger)
	if err != nil {
		return nil, nil, nil, errors.Wrap(err, "open database")
	}

	if err := db.Migrate(database, logger.Logger); err != nil {
		database.Close()
		return nil, nil, nil, errors.Wrap(err, "migrate database")
	}

	store := graphstore.NewSQLStore(database, logger.Logger)
	svc := ontology.NewService(store, logger.Logger)
	if err := svc.Init(); err != nil {
		database.Close()
		return nil, nil, nil, errors.Wrap(err, "initialize ontology")
	}

	return svc, database, cfg, nil
}
