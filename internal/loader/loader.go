// Package loader opens persisted ontology resources and produces ready
// ontology handles.
//
// Parsing is delegated to github.com/knakk/rdf; this package only converts
// the decoded terms into the internal model and enforces the lifecycle:
// load once, materialize once, then the handle is read-only. No handle
// escapes before materialization completes.
package loader

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	krdf "github.com/knakk/rdf"

	"github.com/roach88/owlbench/internal/memstore"
	"github.com/roach88/owlbench/internal/rdf"
	"github.com/roach88/owlbench/internal/sqlstore"
)

// Format names an ontology serialization.
type Format string

const (
	// FormatAuto detects the format from the file extension.
	FormatAuto Format = ""

	// FormatNTriples is line-based N-Triples.
	FormatNTriples Format = "ntriples"

	// FormatTurtle is Turtle.
	FormatTurtle Format = "turtle"

	// FormatRDFXML is RDF/XML, the usual OWL publication format.
	FormatRDFXML Format = "rdfxml"
)

// ValidFormats lists the accepted --ontology-format flag values.
var ValidFormats = []string{string(FormatNTriples), string(FormatTurtle), string(FormatRDFXML)}

// DetectFormat maps a file extension to a Format. Unknown extensions
// default to RDF/XML, which is how OWL ontologies are usually shipped.
func DetectFormat(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".nt":
		return FormatNTriples
	case ".ttl":
		return FormatTurtle
	default:
		return FormatRDFXML
	}
}

func decoderFormat(f Format) (krdf.Format, error) {
	switch f {
	case FormatNTriples:
		return krdf.NTriples, nil
	case FormatTurtle:
		return krdf.Turtle, nil
	case FormatRDFXML:
		return krdf.RDFXML, nil
	default:
		return krdf.Format(0), fmt.Errorf("unsupported ontology format %q", f)
	}
}

// Sink receives parsed triples in batches.
type Sink interface {
	InsertTriples(ctx context.Context, ts []rdf.Triple) error
}

// batchSize bounds memory held between sink flushes.
const batchSize = 4096

// Parse decodes every triple from r.
func Parse(r io.Reader, format Format) ([]rdf.Triple, error) {
	kf, err := decoderFormat(format)
	if err != nil {
		return nil, err
	}

	dec := krdf.NewTripleDecoder(r, kf)
	var out []rdf.Triple
	for {
		kt, err := dec.Decode()
		if err == io.EOF {
			return out, nil
		}
		if err != nil {
			return nil, fmt.Errorf("parse ontology: %w", err)
		}
		t, ok := convertTriple(kt)
		if !ok {
			continue
		}
		out = append(out, t)
	}
}

// LoadFile streams an ontology file into a sink. Returns the triple count.
func LoadFile(ctx context.Context, path string, format Format, sink Sink) (int, error) {
	if format == FormatAuto {
		format = DetectFormat(path)
	}
	kf, err := decoderFormat(format)
	if err != nil {
		return 0, err
	}

	f, err := os.Open(path)
	if err != nil {
		return 0, fmt.Errorf("open ontology: %w", err)
	}
	defer f.Close()

	dec := krdf.NewTripleDecoder(f, kf)
	var (
		batch []rdf.Triple
		total int
	)
	for {
		if err := ctx.Err(); err != nil {
			return total, err
		}
		kt, err := dec.Decode()
		if err == io.EOF {
			break
		}
		if err != nil {
			return total, fmt.Errorf("parse %s: %w", path, err)
		}
		t, ok := convertTriple(kt)
		if !ok {
			continue
		}
		batch = append(batch, t)
		if len(batch) >= batchSize {
			if err := sink.InsertTriples(ctx, batch); err != nil {
				return total, err
			}
			total += len(batch)
			batch = batch[:0]
		}
	}
	if len(batch) > 0 {
		if err := sink.InsertTriples(ctx, batch); err != nil {
			return total, err
		}
		total += len(batch)
	}
	return total, nil
}

// OpenMemory loads an ontology file into a fresh in-memory store and
// materializes it. The returned handle is ready to query.
func OpenMemory(ctx context.Context, path string, format Format) (*memstore.Store, error) {
	store := memstore.New()
	n, err := LoadFile(ctx, path, format, store)
	if err != nil {
		return nil, err
	}
	slog.Info("ontology loaded", "path", path, "triples", n, "backend", "memory")

	if err := store.Materialize(ctx); err != nil {
		return nil, err
	}
	slog.Info("materialization complete", "triples", store.Len())
	return store, nil
}

// OpenSQLite opens (or creates) a SQLite triple database. An empty database
// is populated from the ontology file; a populated one is reused as-is, so
// repeated runs skip the load and the closure computation.
func OpenSQLite(ctx context.Context, path, dbPath string, format Format) (*sqlstore.Store, error) {
	store, err := sqlstore.Open(dbPath)
	if err != nil {
		return nil, err
	}

	n, err := store.Count(ctx)
	if err != nil {
		store.Close()
		return nil, err
	}
	if n == 0 {
		loaded, err := LoadFile(ctx, path, format, store)
		if err != nil {
			store.Close()
			return nil, err
		}
		slog.Info("ontology loaded", "path", path, "triples", loaded, "backend", "sqlite", "db", dbPath)
	} else {
		slog.Info("reusing populated triple database", "db", dbPath, "triples", n)
	}

	if err := store.Materialize(ctx); err != nil {
		store.Close()
		return nil, err
	}
	return store, nil
}

// convertTriple maps a knakk/rdf triple into the internal model. Blank
// nodes become IRIs in a synthetic namespace so schema expressions stay
// traversable; the second return is false for term kinds the model does not
// carry.
func convertTriple(kt krdf.Triple) (rdf.Triple, bool) {
	s, ok := convertTerm(kt.Subj)
	if !ok || !s.IsIRI() {
		return rdf.Triple{}, false
	}
	p, ok := convertTerm(kt.Pred)
	if !ok || !p.IsIRI() {
		return rdf.Triple{}, false
	}
	o, ok := convertTerm(kt.Obj)
	if !ok {
		return rdf.Triple{}, false
	}
	return rdf.Triple{S: s, P: p, O: o}, true
}

func convertTerm(kt krdf.Term) (rdf.Term, bool) {
	if kt == nil {
		return rdf.Term{}, false
	}
	switch kt.Type() {
	case krdf.TermIRI:
		return rdf.NewIRI(kt.String()), true
	case krdf.TermBlank:
		return rdf.NewBlank(strings.TrimPrefix(kt.String(), "_:")), true
	case krdf.TermLiteral:
		return rdf.NewLiteral(kt.String()), true
	default:
		return rdf.Term{}, false
	}
}
