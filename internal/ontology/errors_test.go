package ontology

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNotFoundError(t *testing.T) {
	err := NewNotFound(KindClass, "http://benchmark/OWL2Bench#NoSuchClass")

	assert.True(t, IsNotFound(err))
	assert.Contains(t, err.Error(), "class not found")
	assert.Contains(t, err.Error(), "NoSuchClass")

	wrapped := fmt.Errorf("evaluating: %w", err)
	assert.True(t, IsNotFound(wrapped), "IsNotFound must see through wrapping")
	assert.False(t, IsBackend(wrapped))
}

func TestBackendErrorAttribution(t *testing.T) {
	cause := errors.New("connection refused")
	err := WrapBackend("sparql select", cause)
	require.True(t, IsBackend(err))

	err = AttributeQuery("knows", err)

	var be *BackendError
	require.ErrorAs(t, err, &be)
	assert.Equal(t, "knows", be.Query)
	assert.Contains(t, be.Error(), "query=knows")
	assert.ErrorIs(t, err, cause, "unwrap chain must reach the collaborator error")
}

func TestAttributeQueryDoesNotOverwrite(t *testing.T) {
	err := &BackendError{Query: "ages", Op: "related", Err: errors.New("boom")}
	out := AttributeQuery("knows", err)

	var be *BackendError
	require.ErrorAs(t, out, &be)
	assert.Equal(t, "ages", be.Query, "first attribution wins")
}

func TestWrapBackendPassesNotFoundThrough(t *testing.T) {
	nf := NewNotFound(KindProperty, "http://benchmark/OWL2Bench#nope")
	out := WrapBackend("related", nf)

	assert.True(t, IsNotFound(out))
	assert.False(t, IsBackend(out), "missing names are not engine failures")
	assert.NoError(t, WrapBackend("related", nil))
}
