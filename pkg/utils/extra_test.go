package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerateRandomToken(t *testing.T) {
	a := GenerateRandomToken(16)
	b := GenerateRandomToken(16)

	assert.Len(t, a, 16)
	assert.Regexp(t, "^[0-9a-f]+$", a)
	assert.NotEqual(t, a, b)
}
