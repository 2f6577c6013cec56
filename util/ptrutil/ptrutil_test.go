package ptrutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestToPtr(t *testing.T) {
	v := ToPtr(42)
	assert.Equal(t, 42, *v)

	b := ToPtr(true)
	assert.True(t, *b)

	s := ToPtr("gpp")
	assert.Equal(t, "gpp", *s)
}
