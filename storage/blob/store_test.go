package blob

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// smallest valid PNG header is enough for content sniffing
var pngBytes = []byte{0x89, 0x50, 0x4E, 0x47, 0x0D, 0x0A, 0x1A, 0x0A, 0, 0, 0, 0x0D, 0x49, 0x48, 0x44, 0x52}

func TestStore(t *testing.T) {
	s := NewStore()

	_, err := s.Put(nil, "empty.png")
	assert.Equal(t, ErrEmpty, err)

	id, err := s.Put(pngBytes, "dinner.png")
	require.NoError(t, err)
	assert.NotEmpty(t, id)
	assert.Equal(t, 1, s.Len())

	data, ct, ok := s.Get(id)
	require.True(t, ok)
	assert.Equal(t, "image/png", ct)
	assert.Equal(t, pngBytes, data)

	// returned bytes are a copy
	data[0] = 0
	again, _, _ := s.Get(id)
	assert.Equal(t, byte(0x89), again[0])

	_, _, ok = s.Get("nope")
	assert.False(t, ok)
}
