package storage

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

type Config struct {
	host     string
	user     string
	password string
	port     string
	dbname   string
	sslmode  string
}

func (c Config) ConnStr() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=%s", c.user, c.password, c.host, c.port, c.dbname, c.sslmode)
}

func NewConfig(host, user, password, port, dbname, sslmode string) Config {
	return Config{
		host:     host,
		user:     user,
		password: password,
		port:     port,
		dbname:   dbname,
		sslmode:  sslmode,
	}
}

func NewPool(ctx context.Context, config Config) (*pgxpool.Pool, error) {
	p, err := pgxpool.New(ctx, config.ConnStr())
	if err != nil {
		return nil, err
	}

	err = p.Ping(ctx)
	if err != nil {
		return nil, err
	}

	return p, nil
}

var (
	ErrNoRows       = errors.New("no rows in result set")
	ErrTooManyRows  = errors.New("too many rows in result set")
	ErrQueryRow     = errors.New("could not execute query")
	ErrStoreFailed  = errors.New("could not store data")
	ErrAlreadyExist = errors.New("incident already exists")
)

type Storage struct {
	pool *pgxpool.Pool
}

func NewWithPool(pool *pgxpool.Pool) *Storage {
	return &Storage{pool: pool}
}

func New(ctx context.Context, config Config) (*Storage, error) {
	pool, err := NewPool(ctx, config)
	if err != nil {
		return nil, err
	}

	return &Storage{pool: pool}, nil
}

func (s *Storage) Initialize(ctx context.Context) error {
	return s.createTables(ctx)
}

func (s *Storage) createTables(ctx context.Context) error {
	_, err := s.pool.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS logs (
			log_id		BIGSERIAL PRIMARY KEY,
			service_id	TEXT 	NOT NULL,
			time 		timestamp with time zone NOT NULL,
			level		TEXT 	NOT NULL,
			message		TEXT 	NOT NULL,
			metadata	JSONB	NULL,
			incident_id	VARCHAR(255) NULL,
			created_on  timestamp with time zone NOT NULL DEFAULT CURRENT_TIMESTAMP
		);

		CREATE TABLE IF NOT EXISTS incidents (
			incident_id	VARCHAR(255),
			title		TEXT NOT NULL,
			severity	VARCHAR(100) NOT NULL,
			status		VARCHAR(100) NOT NULL,
			created_on  timestamp with time zone NOT NULL DEFAULT CURRENT_TIMESTAMP,
			resolved_on timestamp with time zone NULL,
			modified_on	timestamp with time zone NOT NULL DEFAULT CURRENT_TIMESTAMP,
			CONSTRAINT pkey_incidents_unique PRIMARY KEY (incident_id)
		);

		CREATE TABLE IF NOT EXISTS leases (
			lock_id 		TEXT NOT NULL,
			holder_token	TEXT NOT NULL,
			acquired_at 	timestamp with time zone NOT NULL,
			expires_at 		timestamp with time zone NOT NULL,
			CONSTRAINT pkey_leases_unique PRIMARY KEY (lock_id)
		);

		CREATE INDEX IF NOT EXISTS logs_level_time_idx ON logs (level, time);
		CREATE INDEX IF NOT EXISTS logs_incident_idx ON logs (incident_id) WHERE incident_id IS NOT NULL;
		CREATE INDEX IF NOT EXISTS incidents_status_idx ON incidents (status);
	`)
	if err != nil {
		return err
	}

	return nil
}

func (s *Storage) Close() {
	s.pool.Close()
}
