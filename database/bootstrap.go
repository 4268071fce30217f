package database

import (
	"fmt"
	"strings"

	sqlite "github.com/glebarez/sqlite" // CGO-free driver
	"github.com/go-gormigrate/gormigrate/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"cultivos/entities"
)

// Open connects to the SQLite file at path. Foreign keys stay off: legacy
// databases declare them on gestion_cultivo, but deleting a referenced
// catalog row must still succeed.
func Open(path string, log *zap.Logger) (*gorm.DB, error) {
	dsn := path
	if !strings.Contains(dsn, "?") {
		dsn += "?_pragma=foreign_keys(0)&_pragma=busy_timeout(5000)"
	}
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Warn),
		TranslateError: true,
	})
	if err != nil {
		return nil, fmt.Errorf("open sqlite %s: %w", path, err)
	}
	log.Debug("sqlite opened", zap.String("path", path))
	return db, nil
}

// Migrate brings the schema up to date. Safe to run on every start.
func Migrate(db *gorm.DB, log *zap.Logger) error {
	m := gormigrate.New(db, gormigrate.DefaultOptions, []*gormigrate.Migration{
		{
			// must run BEFORE the unique index on numero is created
			ID:      "20261017_legacy_hectareas_unique_numero",
			Migrate: renumberDuplicateHectareas,
		},
		{
			ID: "20261017_create_tables",
			Migrate: func(tx *gorm.DB) error {
				return tx.AutoMigrate(
					&entities.User{},
					&entities.Hectarea{},
					&entities.SoilType{},
					&entities.VegetableType{},
					&entities.Climate{},
					&entities.CropType{},
					&entities.CropManagement{},
				)
			},
		},
	})
	if err := m.Migrate(); err != nil {
		return fmt.Errorf("migrate: %w", err)
	}
	log.Info("schema up to date")
	return nil
}

// renumberDuplicateHectareas gives a fresh number to every plot whose numero
// is NULL or repeats an earlier row's. Older databases never enforced
// uniqueness.
func renumberDuplicateHectareas(db *gorm.DB) error {
	var tbl string
	if err := db.Raw(`SELECT name FROM sqlite_master WHERE type='table' AND name='hectareas'`).Scan(&tbl).Error; err != nil {
		return fmt.Errorf("check table exist: %w", err)
	}
	if tbl == "" {
		// fresh DB, nothing to do
		return nil
	}

	type row struct {
		ID     uint
		Numero *int
	}
	var rows []row
	if err := db.Raw(`SELECT id, numero FROM hectareas ORDER BY id`).Scan(&rows).Error; err != nil {
		return fmt.Errorf("scan hectareas: %w", err)
	}

	seen := map[int]bool{}
	next := 0
	for _, r := range rows {
		if r.Numero != nil && *r.Numero > next {
			next = *r.Numero
		}
	}
	var fix []row
	for _, r := range rows {
		if r.Numero == nil || seen[*r.Numero] {
			fix = append(fix, r)
			continue
		}
		seen[*r.Numero] = true
	}
	if len(fix) == 0 {
		return nil
	}

	return db.Transaction(func(tx *gorm.DB) error {
		for _, r := range fix {
			next++
			if err := tx.Exec(`UPDATE hectareas SET numero = ? WHERE id = ?`, next, r.ID).Error; err != nil {
				return fmt.Errorf("renumber hectarea id=%d: %w", r.ID, err)
			}
		}
		return nil
	})
}
