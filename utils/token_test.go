package utils

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerateRandomToken(t *testing.T) {
	tok := GenerateRandomToken(8)
	assert.Len(t, tok, 8)
	for _, r := range tok {
		assert.True(t, strings.ContainsRune(tokenCharset, r), "unexpected rune %q", r)
	}

	// Two draws colliding would mean the source is not advancing.
	assert.NotEqual(t, GenerateRandomToken(16), GenerateRandomToken(16))
}
