package storage

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/lib/pq"
	"github.com/stephenafamo/bob"

	"github.com/carson-networks/finance-dashboard/internal/config"
)

type Storage struct {
	DB     *sql.DB
	Reader *Reader

	bobDB bob.DB
	loc   *time.Location
}

func NewStorage(env *config.Config) (*Storage, error) {
	db, err := sql.Open("postgres", env.PostgresURL())
	if err != nil {
		return nil, fmt.Errorf("open postgres: %w", err)
	}

	return New(db, env.Location()), nil
}

// New wraps an open database. loc is the zone calendar days are computed in.
func New(db *sql.DB, loc *time.Location) *Storage {
	bobDB := bob.NewDB(db)
	return &Storage{
		DB:     db,
		Reader: NewReader(bobDB, loc),
		bobDB:  bobDB,
		loc:    loc,
	}
}

// Write begins a database transaction and returns a Writer bound to it.
func (s *Storage) Write(ctx context.Context) (*Writer, error) {
	tx, err := s.bobDB.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin transaction: %w", err)
	}
	return NewWriter(tx, s.loc), nil
}

func (s *Storage) Ping(ctx context.Context) error {
	return s.DB.PingContext(ctx)
}

func (s *Storage) Close() error {
	return s.DB.Close()
}
