package hexnoise

import (
	"bytes"
	"crypto/rand"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewSeededSource(t *testing.T) {
	a, b := NewSeededSource(7), NewSeededSource(7)
	for i := 0; i < 100; i++ {
		va := a.IntN(16)
		assert.Equal(t, va, b.IntN(16))
		assert.GreaterOrEqual(t, va, 0)
		assert.Less(t, va, 16)
	}
}

func TestDefaultSource(t *testing.T) {
	src := DefaultSource()
	seen := map[int]bool{}
	for i := 0; i < 1000; i++ {
		v := src.IntN(16)
		assert.GreaterOrEqual(t, v, 0)
		assert.Less(t, v, 16)
		seen[v] = true
	}
	assert.Greater(t, len(seen), 1)
}

func TestGenKey(t *testing.T) {
	_, err := GenKey()
	assert.NoError(t, err)
}

func TestGenKey_Neg(t *testing.T) {
	orig := rand.Reader
	defer func() {
		rand.Reader = orig
	}()
	rand.Reader = bytes.NewBuffer(nil)

	_, err := GenKey()
	assert.Error(t, err)
}
