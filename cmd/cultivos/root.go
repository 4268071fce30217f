package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"cultivos/config"
	"cultivos/database"
	"cultivos/logging"
	"cultivos/pkg/harvest"
)

// env is the state shared by subcommands. The database is opened on first
// use so that calc works without one.
type env struct {
	dbPath   string
	logLevel string

	cfg   config.AppConfig
	log   *zap.Logger
	rules *harvest.Table
	db    *gorm.DB
}

// newRootCmd returns the command tree and its env. Callers close the env
// after Execute; cobra skips post-run hooks when a command fails.
func newRootCmd() (*cobra.Command, *env) {
	e := &env{}
	root := &cobra.Command{
		Use:           "cultivos",
		Short:         "Plot registry and harvest date planner",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return e.setup()
		},
	}
	root.PersistentFlags().StringVar(&e.dbPath, "db", "", "SQLite database file (overrides DB_PATH)")
	root.PersistentFlags().StringVar(&e.logLevel, "log-level", "", "debug, info, warn or error (overrides LOG_LEVEL)")

	root.AddCommand(
		newServeCmd(e),
		newCalcCmd(e),
		newPlotsCmd(e),
		newExportCmd(e),
		newMigrateCmd(e),
	)
	return root, e
}

func (e *env) setup() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if e.dbPath != "" {
		cfg.DBPath = e.dbPath
	}
	if e.logLevel != "" {
		cfg.LogLevel = e.logLevel
	}
	e.cfg = cfg

	if e.log, err = logging.New(cfg.LogLevel, cfg.LogFormat); err != nil {
		return err
	}
	if loc, err := time.LoadLocation(cfg.Timezone); err != nil {
		e.log.Warn("unknown timezone, keeping local", zap.String("tz", cfg.Timezone), zap.Error(err))
	} else {
		time.Local = loc
	}

	if e.rules, err = harvest.LoadFromFiles(cfg.CropRulesCSV, cfg.CropRulesXLSX); err != nil {
		return fmt.Errorf("load crop rules: %w", err)
	}
	e.log.Debug("configuration loaded", zap.Any("config", cfg.Redacted()), zap.Int("crop_rules", e.rules.Len()))
	return nil
}

// store opens, migrates and seeds the database once.
func (e *env) store() (*gorm.DB, error) {
	if e.db != nil {
		return e.db, nil
	}
	db, err := database.Open(e.cfg.DBPath, e.log)
	if err != nil {
		return nil, err
	}
	if err := database.Migrate(db, e.log); err != nil {
		return nil, err
	}
	if err := database.Seed(db, e.log); err != nil {
		return nil, err
	}
	e.db = db
	if err := e.services().auth.EnsureAdmin(e.cfg.AdminPassword); err != nil {
		return nil, err
	}
	return db, nil
}

func (e *env) close() error {
	if e.log != nil {
		_ = e.log.Sync()
	}
	if e.db == nil {
		return nil
	}
	sqlDB, err := e.db.DB()
	if err != nil {
		return err
	}
	e.db = nil
	return sqlDB.Close()
}
