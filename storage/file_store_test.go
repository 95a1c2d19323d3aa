package storage

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFileStore_RoundTrip(t *testing.T) {
	svc := NewFileStore(t.TempDir())

	err := svc.Save("cycler", "state", []byte("3 7"))
	assert.NoError(t, err)

	out, err := svc.Get("cycler", "state")
	assert.NoError(t, err)
	assert.Equal(t, "3 7", string(out))

	keys, err := svc.List("cycler")
	assert.NoError(t, err)
	assert.Equal(t, []string{"state"}, keys)

	assert.NoError(t, svc.Delete("cycler", "state"))
	_, err = svc.Get("cycler", "state")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestFileStore_MissingEntries(t *testing.T) {
	svc := NewFileStore(t.TempDir())

	_, err := svc.Get("nope", "missing")
	assert.ErrorIs(t, err, ErrNotFound)

	keys, err := svc.List("nope")
	assert.NoError(t, err)
	assert.Empty(t, keys)

	assert.ErrorIs(t, svc.Delete("nope", "missing"), ErrNotFound)
}

func TestFileStore_RejectsUnsafeNames(t *testing.T) {
	svc := NewFileStore(t.TempDir())

	assert.Error(t, svc.Save("../escape", "k", []byte("x")))
	assert.Error(t, svc.Save("scope", "../../etc/passwd", []byte("x")))
	assert.Error(t, svc.Save("", "k", []byte("x")))
	assert.Error(t, svc.Save("scope", "a/b", []byte("x")))
}
