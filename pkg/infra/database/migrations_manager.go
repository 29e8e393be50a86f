package database

import (
	"fmt"
	"sort"
	"time"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type Migration struct {
	ID   string
	Name string
	Up   func(db *gorm.DB) error
	Down func(db *gorm.DB) error
}

var migrationsRegistry = make(map[string]Migration)

// RegisterMigration is called from init functions in the migrations
// package. IDs sort lexically, so they start with a date.
func RegisterMigration(m Migration) {
	if _, exists := migrationsRegistry[m.ID]; exists {
		panic(fmt.Sprintf("migration with ID %s already registered", m.ID))
	}
	migrationsRegistry[m.ID] = m
}

func registeredMigrations() []Migration {
	out := make([]Migration, 0, len(migrationsRegistry))
	for _, m := range migrationsRegistry {
		out = append(out, m)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

type MigrationsManager struct {
	db     *gorm.DB
	logger *logrus.Logger
}

func NewMigrationsManager(db *gorm.DB, logger *logrus.Logger) *MigrationsManager {
	return &MigrationsManager{db: db, logger: logger}
}

func (m *MigrationsManager) ensureMigrationsTable() error {
	const createTableSQL = `
CREATE TABLE IF NOT EXISTS public.migration_version (
    id TEXT PRIMARY KEY,
    name TEXT NOT NULL,
    applied_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);`
	return m.db.Exec(createTableSQL).Error
}

func (m *MigrationsManager) getAppliedMigrations() (map[string]struct{}, error) {
	type row struct{ ID string }
	var rows []row
	if err := m.db.Raw("SELECT id FROM public.migration_version").Scan(&rows).Error; err != nil {
		return nil, err
	}
	applied := make(map[string]struct{}, len(rows))
	for _, r := range rows {
		applied[r.ID] = struct{}{}
	}
	return applied, nil
}

// Pending lists registered migrations that have not been recorded yet, in
// the order they would run.
func (m *MigrationsManager) Pending() ([]Migration, error) {
	if err := m.ensureMigrationsTable(); err != nil {
		return nil, fmt.Errorf("ensure migrations table: %w", err)
	}
	applied, err := m.getAppliedMigrations()
	if err != nil {
		return nil, fmt.Errorf("load applied migrations: %w", err)
	}
	var pending []Migration
	for _, mig := range registeredMigrations() {
		if _, ok := applied[mig.ID]; !ok {
			pending = append(pending, mig)
		}
	}
	return pending, nil
}

// ApplyPending runs each pending migration in its own transaction together
// with its version row. It stops at the first failure and returns the IDs
// applied so far.
func (m *MigrationsManager) ApplyPending() ([]string, error) {
	pending, err := m.Pending()
	if err != nil {
		return nil, err
	}

	appliedIDs := make([]string, 0, len(pending))
	for _, mig := range pending {
		if mig.Up == nil {
			return appliedIDs, fmt.Errorf("migration %s has no Up function", mig.ID)
		}
		err := m.db.Transaction(func(tx *gorm.DB) error {
			if err := mig.Up(tx); err != nil {
				return err
			}
			return tx.Exec(
				"INSERT INTO public.migration_version (id, name, applied_at) VALUES (?, ?, ?)",
				mig.ID, mig.Name, time.Now(),
			).Error
		})
		if err != nil {
			return appliedIDs, fmt.Errorf("apply migration %s (%s): %w", mig.ID, mig.Name, err)
		}
		m.logger.WithFields(logrus.Fields{"id": mig.ID, "name": mig.Name}).Info("migration applied")
		appliedIDs = append(appliedIDs, mig.ID)
	}
	return appliedIDs, nil
}

// Rollback reverts a single applied migration and removes its version row.
func (m *MigrationsManager) Rollback(id string) error {
	mig, ok := migrationsRegistry[id]
	if !ok {
		return fmt.Errorf("migration %s is not registered", id)
	}
	if mig.Down == nil {
		return fmt.Errorf("migration %s has no Down function", id)
	}
	err := m.db.Transaction(func(tx *gorm.DB) error {
		if err := mig.Down(tx); err != nil {
			return err
		}
		return tx.Exec("DELETE FROM public.migration_version WHERE id = ?", mig.ID).Error
	})
	if err != nil {
		return fmt.Errorf("rollback migration %s (%s): %w", mig.ID, mig.Name, err)
	}
	m.logger.WithField("id", mig.ID).Warn("migration rolled back")
	return nil
}
