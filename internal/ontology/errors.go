package ontology

import (
	"errors"
	"fmt"
)

// NotFoundKind names what kind of identifier failed to resolve.
type NotFoundKind string

const (
	// KindQuery is a query name missing from the catalog.
	KindQuery NotFoundKind = "query"

	// KindClass is a class IRI absent from the ontology.
	KindClass NotFoundKind = "class"

	// KindProperty is a property IRI absent from the ontology.
	KindProperty NotFoundKind = "property"
)

// NotFoundError reports a name that does not resolve: an unknown query name,
// or a class/property IRI the ontology never mentions. Never retried;
// surfaced immediately with the offending name.
//
// An empty extension is NOT a NotFoundError: a declared class with zero
// members is a successful cardinality-0 answer.
type NotFoundError struct {
	Kind NotFoundKind
	Name string
}

// Error implements the error interface.
func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found: %s", e.Kind, e.Name)
}

// NewNotFound creates a NotFoundError.
func NewNotFound(kind NotFoundKind, name string) *NotFoundError {
	return &NotFoundError{Kind: kind, Name: name}
}

// IsNotFound reports whether err is (or wraps) a NotFoundError.
func IsNotFound(err error) bool {
	var nf *NotFoundError
	return errors.As(err, &nf)
}

// BackendError wraps a failure from an external collaborator (SQLite, the
// SPARQL endpoint, the parser) with enough context to attribute it: the
// query being evaluated, if any, and the backend operation that failed.
// The core never retries; retry policy belongs to the collaborator.
type BackendError struct {
	// Query is the catalog name being evaluated when the failure
	// occurred. Empty for failures outside a query (load, materialize).
	Query string

	// Op is the backend operation that failed ("members", "related",
	// "materialize", "sparql select", ...).
	Op string

	// Err is the underlying collaborator error.
	Err error
}

// Error implements the error interface.
func (e *BackendError) Error() string {
	if e.Query != "" {
		return fmt.Sprintf("backend %s failed (query=%s): %v", e.Op, e.Query, e.Err)
	}
	return fmt.Sprintf("backend %s failed: %v", e.Op, e.Err)
}

// Unwrap returns the underlying error.
func (e *BackendError) Unwrap() error { return e.Err }

// WrapBackend wraps err as a BackendError for the given operation.
// Returns nil if err is nil. NotFoundErrors pass through unwrapped so
// callers can still distinguish missing names from engine failures.
func WrapBackend(op string, err error) error {
	if err == nil {
		return nil
	}
	var nf *NotFoundError
	if errors.As(err, &nf) {
		return err
	}
	return &BackendError{Op: op, Err: err}
}

// AttributeQuery stamps a query name onto a BackendError so aggregation
// failures are attributable. Non-backend errors are returned unchanged.
func AttributeQuery(name string, err error) error {
	if err == nil {
		return nil
	}
	var be *BackendError
	if errors.As(err, &be) && be.Query == "" {
		be.Query = name
	}
	return err
}

// IsBackend reports whether err is (or wraps) a BackendError.
func IsBackend(err error) bool {
	var be *BackendError
	return errors.As(err, &be)
}
