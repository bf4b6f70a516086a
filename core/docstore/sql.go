package docstore

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Document is the row layout of the SQL backend.
type Document struct {
	Name      string `gorm:"primaryKey;size:191"`
	Body      string `gorm:"type:longtext;not null"`
	Version   int64  `gorm:"not null;default:0"`
	UpdatedAt time.Time
}

// TableName pins the table name regardless of naming strategy.
func (Document) TableName() string {
	return "documents"
}

// SQLStore keeps documents as rows of a single table. Every write bumps the
// row version; Update only commits if the version it read is still current.
type SQLStore struct {
	db    *gorm.DB
	locks keyedMutex
}

// NewSQLStore wraps an open gorm connection. Call Migrate before first use.
func NewSQLStore(db *gorm.DB) *SQLStore {
	return &SQLStore{db: db}
}

// Migrate creates or updates the documents table.
func (s *SQLStore) Migrate() error {
	if err := s.db.AutoMigrate(&Document{}); err != nil {
		return fmt.Errorf("migrating documents table: %w", err)
	}
	return nil
}

// Import seeds the named document from data unless it already exists.
func (s *SQLStore) Import(ctx context.Context, name string, data []byte) (bool, error) {
	if err := validateName(name); err != nil {
		return false, err
	}
	res := s.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&Document{Name: name, Body: string(data), Version: 1, UpdatedAt: time.Now()})
	if res.Error != nil {
		return false, fmt.Errorf("importing %s: %w", name, res.Error)
	}
	return res.RowsAffected > 0, nil
}

// Load implements Store.
func (s *SQLStore) Load(ctx context.Context, name string) ([]byte, error) {
	doc, err := s.find(ctx, name)
	if err != nil {
		return nil, err
	}
	return []byte(doc.Body), nil
}

// Save implements Store.
func (s *SQLStore) Save(ctx context.Context, name string, data []byte) error {
	if err := validateName(name); err != nil {
		return err
	}
	unlock := s.locks.lock(name)
	defer unlock()

	now := time.Now()
	err := s.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "name"}},
			DoUpdates: clause.Assignments(map[string]any{
				"body":       string(data),
				"version":    gorm.Expr("version + 1"),
				"updated_at": now,
			}),
		}).
		Create(&Document{Name: name, Body: string(data), Version: 1, UpdatedAt: now}).Error
	if err != nil {
		return fmt.Errorf("saving %s: %w", name, err)
	}
	return nil
}

// Update implements Store.
func (s *SQLStore) Update(ctx context.Context, name string, fn func(current []byte) ([]byte, error)) error {
	if err := validateName(name); err != nil {
		return err
	}
	unlock := s.locks.lock(name)
	defer unlock()

	doc, err := s.find(ctx, name)
	if err != nil {
		return err
	}
	next, err := fn([]byte(doc.Body))
	if err != nil {
		return err
	}

	res := s.db.WithContext(ctx).
		Model(&Document{}).
		Where("name = ? AND version = ?", name, doc.Version).
		Updates(map[string]any{
			"body":       string(next),
			"version":    doc.Version + 1,
			"updated_at": time.Now(),
		})
	if res.Error != nil {
		return fmt.Errorf("saving %s: %w", name, res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("%w: %s", ErrConflict, name)
	}
	return nil
}

func (s *SQLStore) find(ctx context.Context, name string) (*Document, error) {
	if err := validateName(name); err != nil {
		return nil, err
	}
	var doc Document
	err := s.db.WithContext(ctx).Where("name = ?", name).Take(&doc).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, name)
		}
		return nil, fmt.Errorf("reading %s: %w", name, err)
	}
	return &doc, nil
}
