// internal/storage/postgres.go
package storage

import (
	"database/sql"
	"fmt"
	"os"

	_ "github.com/lib/pq"
)

// PostgresStorage keeps the key-value entries in a single kv table.
// Useful when the tracker should share a managed database instead of
// a local file.
type PostgresStorage struct {
	DB *sql.DB
}

// OpenPostgres connects using the DB_* environment variables and
// creates the kv table if it does not exist yet.
func OpenPostgres() (*PostgresStorage, error) {
	user := os.Getenv("DB_USER")
	pass := os.Getenv("DB_PASSWORD")
	host := os.Getenv("DB_HOST")
	port := os.Getenv("DB_PORT")
	name := os.Getenv("DB_NAME")

	dsn := fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=disable",
		user, pass, host, port, name,
	)

	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to DB: %v", err)
	}
	if err = db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping DB: %v", err)
	}

	_, err = db.Exec(`CREATE TABLE IF NOT EXISTS kv (key TEXT PRIMARY KEY, value BYTEA NOT NULL)`)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create kv table: %v", err)
	}

	return &PostgresStorage{DB: db}, nil
}

func (s *PostgresStorage) Get(key string) ([]byte, error) {
	var value []byte
	err := s.DB.QueryRow(`SELECT value FROM kv WHERE key=$1`, key).Scan(&value)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return value, nil
}

func (s *PostgresStorage) Set(key string, value []byte) error {
	query := `
        INSERT INTO kv (key, value) VALUES ($1, $2)
        ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value
    `
	_, err := s.DB.Exec(query, key, value)
	return err
}

func (s *PostgresStorage) Delete(key string) error {
	_, err := s.DB.Exec(`DELETE FROM kv WHERE key=$1`, key)
	return err
}

func (s *PostgresStorage) Close() error {
	return s.DB.Close()
}

var _ Storage = (*PostgresStorage)(nil)
