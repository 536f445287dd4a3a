package sqlstore

import (
	"context"
	"fmt"

	"github.com/roach88/owlbench/internal/ontology"
	"github.com/roach88/owlbench/internal/rdf"
)

// builtinPrefix matches every RDF/RDFS/OWL/XSD namespace: they all live
// under the W3C host, and nothing in the benchmark vocabulary does.
const builtinPrefix = "http://www.w3.org/%"

// blankPrefix matches the synthetic IRIs minted for blank nodes.
const blankPrefix = rdf.NSBlank + "%"

// Individuals implements ontology.Handle: subjects typed with a non-builtin
// class, plus both IRI ends of non-schema property assertions.
// Deterministic ORDER BY, like every query in this package.
func (s *Store) Individuals() ([]rdf.Term, error) {
	rows, err := s.db.Query(`
		SELECT DISTINCT x FROM (
			SELECT subj AS x FROM triples
			WHERE pred = ? AND obj_lit = 0
			  AND obj NOT LIKE ? AND subj NOT LIKE ?
			UNION
			SELECT subj AS x FROM triples
			WHERE pred != ? AND pred NOT LIKE ? AND subj NOT LIKE ?
			UNION
			SELECT obj AS x FROM triples
			WHERE pred != ? AND pred NOT LIKE ? AND obj_lit = 0 AND obj NOT LIKE ?
		)
		WHERE x NOT LIKE ?
		ORDER BY x
	`,
		rdf.Type.Value, builtinPrefix, builtinPrefix,
		rdf.Type.Value, builtinPrefix, builtinPrefix,
		rdf.Type.Value, builtinPrefix, builtinPrefix,
		blankPrefix,
	)
	if err != nil {
		return nil, ontology.WrapBackend("individuals", err)
	}
	defer rows.Close()

	var out []rdf.Term
	for rows.Next() {
		var v string
		if err := rows.Scan(&v); err != nil {
			return nil, ontology.WrapBackend("individuals", err)
		}
		out = append(out, rdf.NewIRI(v))
	}
	if err := rows.Err(); err != nil {
		return nil, ontology.WrapBackend("individuals", err)
	}
	return out, nil
}

// Members implements ontology.Handle.
func (s *Store) Members(class rdf.Term) ([]rdf.Term, error) {
	known, err := s.mentioned(class)
	if err != nil {
		return nil, ontology.WrapBackend("members", err)
	}
	if !known {
		return nil, ontology.NewNotFound(ontology.KindClass, class.Value)
	}

	rows, err := s.db.Query(`
		SELECT DISTINCT subj FROM triples
		WHERE pred = ? AND obj = ? AND obj_lit = 0
		ORDER BY subj
	`, rdf.Type.Value, class.Value)
	if err != nil {
		return nil, ontology.WrapBackend("members", err)
	}
	defer rows.Close()

	var out []rdf.Term
	for rows.Next() {
		var v string
		if err := rows.Scan(&v); err != nil {
			return nil, ontology.WrapBackend("members", err)
		}
		out = append(out, rdf.NewIRI(v))
	}
	if err := rows.Err(); err != nil {
		return nil, ontology.WrapBackend("members", err)
	}
	return out, nil
}

// Related implements ontology.Handle. IRIs sort before literals, matching
// rdf.Term.Compare, so backends enumerate identically.
func (s *Store) Related(subject, property rdf.Term) ([]rdf.Term, error) {
	known, err := s.mentioned(property)
	if err != nil {
		return nil, ontology.WrapBackend("related", err)
	}
	if !known {
		return nil, ontology.NewNotFound(ontology.KindProperty, property.Value)
	}

	rows, err := s.db.Query(`
		SELECT DISTINCT obj, obj_lit FROM triples
		WHERE subj = ? AND pred = ?
		ORDER BY obj_lit, obj
	`, subject.Value, property.Value)
	if err != nil {
		return nil, ontology.WrapBackend("related", err)
	}
	defer rows.Close()

	var out []rdf.Term
	for rows.Next() {
		var v string
		var lit int
		if err := rows.Scan(&v, &lit); err != nil {
			return nil, ontology.WrapBackend("related", err)
		}
		if lit == 1 {
			out = append(out, rdf.NewLiteral(v))
		} else {
			out = append(out, rdf.NewIRI(v))
		}
	}
	if err := rows.Err(); err != nil {
		return nil, ontology.WrapBackend("related", err)
	}
	return out, nil
}

// PropertyPairs implements ontology.PropertyScanner with a single SELECT.
func (s *Store) PropertyPairs(property rdf.Term) ([]rdf.Tuple, error) {
	known, err := s.mentioned(property)
	if err != nil {
		return nil, ontology.WrapBackend("property scan", err)
	}
	if !known {
		return nil, ontology.NewNotFound(ontology.KindProperty, property.Value)
	}

	rows, err := s.db.Query(`
		SELECT DISTINCT subj, obj, obj_lit FROM triples
		WHERE pred = ?
		ORDER BY subj, obj_lit, obj
	`, property.Value)
	if err != nil {
		return nil, ontology.WrapBackend("property scan", err)
	}
	defer rows.Close()

	var out []rdf.Tuple
	for rows.Next() {
		var su, o string
		var lit int
		if err := rows.Scan(&su, &o, &lit); err != nil {
			return nil, ontology.WrapBackend("property scan", err)
		}
		obj := rdf.NewIRI(o)
		if lit == 1 {
			obj = rdf.NewLiteral(o)
		}
		out = append(out, rdf.T2(rdf.NewIRI(su), obj))
	}
	if err := rows.Err(); err != nil {
		return nil, ontology.WrapBackend("property scan", err)
	}
	return out, nil
}

// mentioned reports whether an IRI occurs anywhere in the store.
func (s *Store) mentioned(term rdf.Term) (bool, error) {
	var one int
	err := s.db.QueryRow(`
		SELECT EXISTS (SELECT 1 FROM triples WHERE subj = ?)
		    OR EXISTS (SELECT 1 FROM triples WHERE pred = ?)
		    OR EXISTS (SELECT 1 FROM triples WHERE obj = ? AND obj_lit = 0)
	`, term.Value, term.Value, term.Value).Scan(&one)
	if err != nil {
		return false, err
	}
	return one == 1, nil
}

// allTriples reads the full triple set for materialization.
func (s *Store) allTriples(ctx context.Context) ([]rdf.Triple, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT subj, pred, obj, obj_lit FROM triples
		ORDER BY subj, pred, obj_lit, obj
	`)
	if err != nil {
		return nil, fmt.Errorf("read triples: %w", err)
	}
	defer rows.Close()

	var out []rdf.Triple
	for rows.Next() {
		var su, p, o string
		var lit int
		if err := rows.Scan(&su, &p, &o, &lit); err != nil {
			return nil, fmt.Errorf("read triples: %w", err)
		}
		obj := rdf.NewIRI(o)
		if lit == 1 {
			obj = rdf.NewLiteral(o)
		}
		out = append(out, rdf.Triple{S: rdf.NewIRI(su), P: rdf.NewIRI(p), O: obj})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("read triples: %w", err)
	}
	return out, nil
}

// Count returns the number of stored triples.
func (s *Store) Count(ctx context.Context) (int, error) {
	var n int
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM triples`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count triples: %w", err)
	}
	return n, nil
}
