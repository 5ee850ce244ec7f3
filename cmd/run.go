package cmd

import (
	"fmt"
	"io"
	"log/slog"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/abhisek/spellit/internal/app"
	"github.com/abhisek/spellit/internal/config"
	"github.com/abhisek/spellit/internal/inventory"
	"github.com/abhisek/spellit/internal/logging"
	"github.com/abhisek/spellit/internal/store"
	"github.com/abhisek/spellit/internal/trainer"
)

// deps is what every command needs: config, an open store, a logger and
// the loaded word inventory.
type deps struct {
	cfg    *config.Config
	store  *store.Store
	logger *slog.Logger
	inv    *inventory.Inventory

	logCloser io.Closer
}

// setup loads config, opens the store and loads the word list.
func setup(cmd *cobra.Command) (*deps, error) {
	cfgPath, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return nil, err
	}

	dbPath, err := resolveDBPath(cmd, cfg.Store.Path)
	if err != nil {
		return nil, fmt.Errorf("resolve DB path: %w", err)
	}

	logger, logCloser, err := logging.New(cfg.Log, filepath.Join(filepath.Dir(dbPath), "spellit.log"))
	if err != nil {
		return nil, fmt.Errorf("open log: %w", err)
	}

	st, err := store.Open(dbPath)
	if err != nil {
		logCloser.Close()
		return nil, fmt.Errorf("open store: %w", err)
	}
	logger.Info("store opened", "path", dbPath)

	inv := inventory.New(
		inventory.WithPersister(st.WordListRepo()),
		inventory.WithDefaults(cfg.Practice.Defaults()),
		inventory.WithLogger(logger),
	)
	inv.Load(cmd.Context())

	return &deps{
		cfg:       cfg,
		store:     st,
		logger:    logger,
		inv:       inv,
		logCloser: logCloser,
	}, nil
}

func (d *deps) Close() {
	if err := d.store.Close(); err != nil {
		d.logger.Warn("close store", "error", err)
	}
	d.logCloser.Close()
}

// runApp opens the store, builds dependencies, and launches the TUI.
func runApp(cmd *cobra.Command) error {
	d, err := setup(cmd)
	if err != nil {
		return err
	}
	defer d.Close()

	eventRepo := d.store.EventRepo()
	tr := trainer.New(d.inv,
		trainer.WithRecorder(eventRepo),
		trainer.WithLogger(d.logger),
	)
	tr.Start()

	return app.Run(app.Options{
		Trainer:      tr,
		EventRepo:    eventRepo,
		AdvanceDelay: d.cfg.Practice.AdvanceDelay,
		Delimiter:    d.cfg.Practice.Delimiter,
		Logger:       d.logger,
	})
}
