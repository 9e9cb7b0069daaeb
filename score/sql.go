package score

import (
	"context"
	"fmt"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// scoreRow is the persisted form of an Entry, Position keeps list order
type scoreRow struct {
	ID        uint `gorm:"primaryKey"`
	Position  int  `gorm:"index"`
	Score     int
	Timestamp string
}

func (scoreRow) TableName() string {
	return "high_scores"
}

// SQLStore keeps the leaderboard in a SQLite database through GORM
type SQLStore struct {
	db *gorm.DB
}

// OpenSQLStore opens or creates the database at path and migrates the schema
func OpenSQLStore(path string) (*SQLStore, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		PrepareStmt:            true,
		SkipDefaultTransaction: true,
		Logger:                 logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("open score db %s: %w", path, err)
	}
	if err := db.AutoMigrate(&scoreRow{}); err != nil {
		return nil, fmt.Errorf("migrate score db: %w", err)
	}
	return &SQLStore{db: db}, nil
}

func (s *SQLStore) Load(ctx context.Context) ([]Entry, error) {
	var rows []scoreRow
	if err := s.db.WithContext(ctx).Order("position asc").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("query scores: %w", err)
	}
	entries := make([]Entry, len(rows))
	for i, r := range rows {
		entries[i] = Entry{Score: r.Score, Timestamp: r.Timestamp}
	}
	return Normalize(entries), nil
}

// Save replaces the stored list in one transaction
func (s *SQLStore) Save(ctx context.Context, entries []Entry) error {
	entries = Normalize(entries)
	rows := make([]scoreRow, len(entries))
	for i, e := range entries {
		rows[i] = scoreRow{Position: i, Score: e.Score, Timestamp: e.Timestamp}
	}

	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(&scoreRow{}).Error; err != nil {
			return fmt.Errorf("clear scores: %w", err)
		}
		if len(rows) == 0 {
			return nil
		}
		if err := tx.Create(&rows).Error; err != nil {
			return fmt.Errorf("insert scores: %w", err)
		}
		return nil
	})
}

func (s *SQLStore) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
