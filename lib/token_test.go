package lib

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateOrderIDFormat(t *testing.T) {
	pattern := regexp.MustCompile(`^ORD-\d{13,}-[A-Z0-9]{4}$`)

	seen := map[string]bool{}
	for i := 0; i < 50; i++ {
		id := GenerateOrderID()
		assert.Regexp(t, pattern, id)
		seen[id] = true
	}

	// The random suffix makes same-millisecond collisions unlikely.
	assert.Greater(t, len(seen), 1)
}

func TestGenerateRandomToken(t *testing.T) {
	a, err := GenerateRandomToken()
	require.NoError(t, err)
	b, err := GenerateRandomToken()
	require.NoError(t, err)

	assert.NotEmpty(t, a)
	assert.NotEqual(t, a, b)
}
