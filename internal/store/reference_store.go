package store

import (
	"context"
	"fmt"

	"langchecker/internal/parser"
	"langchecker/internal/worker"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog/log"
)

// upsertBatchSize bounds the number of statements sent in one pgx.Batch.
const upsertBatchSize = 500

const schemaSQL = `
CREATE TABLE IF NOT EXISTS reference_strings (
	hash        TEXT PRIMARY KEY,
	locale      TEXT NOT NULL,
	file        TEXT NOT NULL,
	reference   TEXT NOT NULL,
	translation TEXT NOT NULL,
	translated  BOOLEAN NOT NULL,
	tag         TEXT NOT NULL DEFAULT '',
	max_length  INTEGER,
	comment     TEXT NOT NULL DEFAULT '',
	updated_at  TIMESTAMPTZ NOT NULL DEFAULT now()
);
CREATE INDEX IF NOT EXISTS reference_strings_file_idx ON reference_strings (locale, file);
`

const upsertSQL = `
INSERT INTO reference_strings (hash, locale, file, reference, translation, translated, tag, max_length, comment)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
ON CONFLICT (hash) DO UPDATE
SET translation = EXCLUDED.translation,
    translated  = EXCLUDED.translated,
    tag         = EXCLUDED.tag,
    max_length  = EXCLUDED.max_length,
    comment     = EXCLUDED.comment,
    updated_at  = now()`

const deleteStaleSQL = `DELETE FROM reference_strings WHERE locale = $1 AND file = $2 AND NOT (hash = ANY($3))`

// ReferenceStore keeps snapshots of reference lang files in PostgreSQL.
type ReferenceStore struct {
	pool *pgxpool.Pool
}

// NewReferenceStore creates a new reference store.
func NewReferenceStore(pool *pgxpool.Pool) *ReferenceStore {
	return &ReferenceStore{pool: pool}
}

// EnsureSchema creates the reference_strings table if needed.
func (s *ReferenceStore) EnsureSchema(ctx context.Context) error {
	if _, err := s.pool.Exec(ctx, schemaSQL); err != nil {
		return fmt.Errorf("create reference schema: %w", err)
	}
	return nil
}

// Upsert replaces the stored strings of one reference file with those of
// lf. Strings no longer in the file are removed. It returns the number of
// rows written.
func (s *ReferenceStore) Upsert(ctx context.Context, locale, file string, lf *parser.LangFile) (int, error) {
	rows := Rows(locale, file, lf)
	hashes := make([]string, len(rows))
	for i, r := range rows {
		hashes[i] = r.Hash
	}

	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return 0, fmt.Errorf("begin upsert: %w", err)
	}
	defer tx.Rollback(ctx)

	written := 0
	for _, chunk := range worker.Batch(rows, upsertBatchSize) {
		batch := &pgx.Batch{}
		for _, r := range chunk {
			batch.Queue(upsertSQL,
				r.Hash, r.Locale, r.File, r.Reference, r.Translation, r.Translated, r.Tag, r.MaxLength, r.Comment,
			)
		}

		n, err := sendBatch(ctx, tx, batch)
		written += n
		if err != nil {
			return written, err
		}
	}

	if _, err := tx.Exec(ctx, deleteStaleSQL, locale, file, hashes); err != nil {
		return written, fmt.Errorf("delete stale strings: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return written, fmt.Errorf("commit upsert: %w", err)
	}

	log.Info().Str("locale", locale).Str("file", file).Int("strings", written).Msg("Stored reference strings")
	return written, nil
}

// sendBatch sends batch and counts affected rows.
func sendBatch(ctx context.Context, tx pgx.Tx, batch *pgx.Batch) (int, error) {
	results := tx.SendBatch(ctx, batch)
	defer results.Close()

	var affected int
	for n := batch.Len(); n > 0; n-- {
		tag, err := results.Exec()
		if err != nil {
			return affected, fmt.Errorf("upsert reference string: %w", err)
		}
		affected += int(tag.RowsAffected())
	}
	return affected, nil
}
