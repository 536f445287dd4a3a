// Package suite loads benchmark run configuration from CUE files and opens
// the backend a configured run targets.
package suite

import (
	"context"
	_ "embed"
	"fmt"
	"os"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	cueerrors "cuelang.org/go/cue/errors"

	"github.com/roach88/owlbench/internal/loader"
	"github.com/roach88/owlbench/internal/ontology"
	"github.com/roach88/owlbench/internal/sparqlstore"
)

//go:embed schema.cue
var schemaCUE []byte

// Backend names.
const (
	BackendMemory = "memory"
	BackendSQLite = "sqlite"
	BackendSPARQL = "sparql"
)

// Suite is one decoded, validated benchmark configuration.
type Suite struct {
	Name     string   `json:"name"`
	Backend  string   `json:"backend"`
	Ontology string   `json:"ontology,omitempty"`
	Format   string   `json:"format,omitempty"`
	Database string   `json:"database,omitempty"`
	Endpoint string   `json:"endpoint,omitempty"`
	Queries  []string `json:"queries"`
	Policy   string   `json:"policy"`
	Baseline string   `json:"baseline,omitempty"`
}

// Load reads a suite file, validates it against the schema, and checks the
// cross-field requirements of the chosen backend.
func Load(path string) (*Suite, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read suite: %w", err)
	}
	return Parse(data, path)
}

// Parse validates raw CUE bytes as a suite. filename is used in error
// positions only.
func Parse(data []byte, filename string) (*Suite, error) {
	ctx := cuecontext.New()

	schema := ctx.CompileBytes(schemaCUE, cue.Filename("schema.cue"))
	if err := schema.Err(); err != nil {
		return nil, fmt.Errorf("suite schema: %w", err)
	}
	def := schema.LookupPath(cue.ParsePath("#Suite"))

	val := ctx.CompileBytes(data, cue.Filename(filename))
	if err := val.Err(); err != nil {
		return nil, fmt.Errorf("parse suite %s: %s", filename, cueerrors.Details(err, nil))
	}

	unified := def.Unify(val)
	if err := unified.Validate(cue.Concrete(true)); err != nil {
		return nil, fmt.Errorf("invalid suite %s: %s", filename, cueerrors.Details(err, nil))
	}

	var s Suite
	if err := unified.Decode(&s); err != nil {
		return nil, fmt.Errorf("decode suite %s: %w", filename, err)
	}
	if err := s.check(); err != nil {
		return nil, fmt.Errorf("invalid suite %s: %w", filename, err)
	}
	return &s, nil
}

// check enforces the per-backend field requirements the schema cannot
// express field-locally.
func (s *Suite) check() error {
	switch s.Backend {
	case BackendMemory:
		if s.Ontology == "" {
			return fmt.Errorf("memory backend requires an ontology file")
		}
	case BackendSQLite:
		if s.Database == "" {
			return fmt.Errorf("sqlite backend requires a database path")
		}
		if s.Ontology == "" {
			return fmt.Errorf("sqlite backend requires an ontology file to populate from")
		}
	case BackendSPARQL:
		if s.Endpoint == "" {
			return fmt.Errorf("sparql backend requires an endpoint URL")
		}
	default:
		return fmt.Errorf("unknown backend %q", s.Backend)
	}
	return nil
}

// format resolves the configured format, falling back to extension
// detection.
func (s *Suite) format() loader.Format {
	if s.Format != "" {
		return loader.Format(s.Format)
	}
	return loader.DetectFormat(s.Ontology)
}

// Open loads (and for local backends, materializes) the suite's backend and
// returns a queryable handle. Callers should type-assert ontology.Closer
// and close when done.
func (s *Suite) Open(ctx context.Context) (ontology.Handle, error) {
	switch s.Backend {
	case BackendMemory:
		return loader.OpenMemory(ctx, s.Ontology, s.format())
	case BackendSQLite:
		return loader.OpenSQLite(ctx, s.Ontology, s.Database, s.format())
	case BackendSPARQL:
		return sparqlstore.New(s.Endpoint)
	}
	return nil, fmt.Errorf("unknown backend %q", s.Backend)
}
