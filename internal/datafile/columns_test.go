package datafile

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestColumnsField(t *testing.T) {
	c := NewColumns("abcdef\r\n")
	assert.Equal(t, 6, c.Len())
	assert.Equal(t, "bcd", c.Field(1, 4))
	assert.Equal(t, "ef", c.Field(4, 10), "field clipped at end of line")
	assert.Equal(t, "", c.Field(8, 10))
	assert.Equal(t, "", c.Field(3, 3))
	assert.Equal(t, 'a', c.At(0))
	assert.Equal(t, ' ', c.At(6))
	assert.Equal(t, ' ', c.At(-1))
	assert.Equal(t, "def", c.Rest(3))
	assert.Equal(t, "", c.Rest(6))
}

func TestColumnsCountRunes(t *testing.T) {
	c := NewColumns("Café|x")
	assert.Equal(t, 6, c.Len())
	assert.Equal(t, '|', c.At(4))
}

func TestColumnsBlank(t *testing.T) {
	assert.True(t, NewColumns("").Blank())
	assert.True(t, NewColumns("  \t\n").Blank())
	assert.False(t, NewColumns(" x").Blank())
}
