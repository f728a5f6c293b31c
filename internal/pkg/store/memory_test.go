package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMemoryStore_RoundTrip(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	_, err := s.Get(ctx, KeyRiderAccounts)
	assert.ErrorIs(t, err, ErrNotFound)

	assert.NoError(t, s.Set(ctx, KeyRiderAccounts, []byte(`{"a@b.com":{}}`)))

	value, err := s.Get(ctx, KeyRiderAccounts)
	assert.NoError(t, err)
	assert.Equal(t, []byte(`{"a@b.com":{}}`), value)

	assert.NoError(t, s.Delete(ctx, KeyRiderAccounts))
	_, err = s.Get(ctx, KeyRiderAccounts)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemoryStore_GetReturnsCopy(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	assert.NoError(t, s.Set(ctx, "k", []byte("abc")))

	value, err := s.Get(ctx, "k")
	assert.NoError(t, err)
	value[0] = 'z'

	again, err := s.Get(ctx, "k")
	assert.NoError(t, err)
	assert.Equal(t, []byte("abc"), again)
}
