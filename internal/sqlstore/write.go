package sqlstore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/roach88/owlbench/internal/inference"
	"github.com/roach88/owlbench/internal/ontology"
	"github.com/roach88/owlbench/internal/rdf"
)

// InsertTriples writes a batch of triples in one transaction.
// Duplicates are silently ignored (INSERT OR IGNORE), so reloading the same
// ontology file is idempotent.
func (s *Store) InsertTriples(ctx context.Context, ts []rdf.Triple) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("insert triples: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx, `
		INSERT OR IGNORE INTO triples (subj, pred, obj, obj_lit)
		VALUES (?, ?, ?, ?)
	`)
	if err != nil {
		return fmt.Errorf("insert triples: %w", err)
	}
	defer stmt.Close()

	for _, t := range ts {
		objLit := 0
		if t.O.IsLiteral() {
			objLit = 1
		}
		if _, err := stmt.ExecContext(ctx, t.S.Value, t.P.Value, t.O.Value, objLit); err != nil {
			return fmt.Errorf("insert triple %s: %w", t, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("insert triples: %w", err)
	}
	return nil
}

// Materialize loads the full triple set, runs the inference engine, and
// writes the entailed delta back. Recorded in the meta table so a reopened
// database is not closed twice.
func (s *Store) Materialize(ctx context.Context) error {
	done, err := s.metaFlag(ctx, "materialized")
	if err != nil {
		return ontology.WrapBackend("materialize", err)
	}
	if done {
		return nil
	}

	ts, err := s.allTriples(ctx)
	if err != nil {
		return ontology.WrapBackend("materialize", err)
	}

	m := inference.New(ts)
	added, err := m.Run(ctx)
	if err != nil {
		return ontology.WrapBackend("materialize", err)
	}

	if err := s.InsertTriples(ctx, added); err != nil {
		return ontology.WrapBackend("materialize", err)
	}
	if err := s.setMetaFlag(ctx, "materialized"); err != nil {
		return ontology.WrapBackend("materialize", err)
	}
	return nil
}

func (s *Store) metaFlag(ctx context.Context, key string) (bool, error) {
	var v string
	err := s.db.QueryRowContext(ctx, `SELECT value FROM meta WHERE key = ?`, key).Scan(&v)
	switch {
	case err == nil:
		return v == "1", nil
	case errors.Is(err, sql.ErrNoRows):
		return false, nil
	default:
		return false, err
	}
}

func (s *Store) setMetaFlag(ctx context.Context, key string) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO meta (key, value) VALUES (?, '1')
		ON CONFLICT(key) DO UPDATE SET value = '1'
	`, key)
	return err
}
