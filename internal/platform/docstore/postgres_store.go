package docstore

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

const (
	createDocumentsTable = `CREATE TABLE IF NOT EXISTS documents (
	id         TEXT PRIMARY KEY,
	body       JSONB NOT NULL,
	updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
)`
	selectDocument = `SELECT body FROM documents WHERE id = $1`
	upsertDocument = `INSERT INTO documents (id, body, updated_at) VALUES ($1, $2, now())
ON CONFLICT (id) DO UPDATE SET body = EXCLUDED.body, updated_at = now()`
	countDocument = `SELECT count(*) FROM documents WHERE id = $1`
)

// PgxQuerier is the subset of *pgxpool.Pool used by PostgresStore.
type PgxQuerier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// PostgresStore keeps the document in one JSONB row of the documents table.
type PostgresStore struct {
	db PgxQuerier
	id string
}

func NewPostgresStore(db PgxQuerier, documentID string) *PostgresStore {
	if documentID == "" {
		documentID = "default"
	}
	return &PostgresStore{db: db, id: documentID}
}

// EnsureSchema creates the documents table when missing.
func (s *PostgresStore) EnsureSchema(ctx context.Context) error {
	if _, err := s.db.Exec(ctx, createDocumentsTable); err != nil {
		return fmt.Errorf("create documents table: %w", err)
	}
	return nil
}

func (s *PostgresStore) Load(ctx context.Context) (*Document, error) {
	var raw []byte
	err := s.db.QueryRow(ctx, selectDocument, s.id).Scan(&raw)
	if errors.Is(err, pgx.ErrNoRows) {
		return NewDocument(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("select document %s: %w", s.id, err)
	}
	return decodeDocument(raw)
}

func (s *PostgresStore) Save(ctx context.Context, doc *Document) error {
	raw, err := encodeDocument(doc)
	if err != nil {
		return err
	}
	if _, err := s.db.Exec(ctx, upsertDocument, s.id, raw); err != nil {
		return fmt.Errorf("upsert document %s: %w", s.id, err)
	}
	return nil
}

func (s *PostgresStore) Exists(ctx context.Context) (bool, error) {
	var n int
	if err := s.db.QueryRow(ctx, countDocument, s.id).Scan(&n); err != nil {
		return false, fmt.Errorf("count document %s: %w", s.id, err)
	}
	return n > 0, nil
}

var _ Store = (*PostgresStore)(nil)
