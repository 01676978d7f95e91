package datafile

import (
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLineReader(t *testing.T) {
	long := "$" + strings.Repeat("9", MaxLineBytes+10)
	lr := NewLineReader(strings.NewReader("one\r\n\n" + long + "\nlast"))

	line, tooLong, err := lr.Next()
	require.NoError(t, err)
	assert.Equal(t, "one", line)
	assert.False(t, tooLong)

	line, _, err = lr.Next()
	require.NoError(t, err)
	assert.Empty(t, line)

	line, tooLong, err = lr.Next()
	require.NoError(t, err)
	assert.True(t, tooLong)
	assert.Len(t, line, MaxLineBytes)
	assert.Equal(t, KindRoute, lineKind(line))

	line, tooLong, err = lr.Next()
	require.NoError(t, err)
	assert.Equal(t, "last", line)
	assert.False(t, tooLong)

	_, _, err = lr.Next()
	assert.Equal(t, io.EOF, err)
}

func TestLineReaderOverlongLastLine(t *testing.T) {
	lr := NewLineReader(strings.NewReader(strings.Repeat("x", MaxLineBytes*2)))
	_, tooLong, err := lr.Next()
	require.NoError(t, err)
	assert.True(t, tooLong)
	_, _, err = lr.Next()
	assert.Equal(t, io.EOF, err)
}

func TestLineKind(t *testing.T) {
	assert.Equal(t, KindBlank, lineKind("   "))
	assert.Equal(t, KindComment, lineKind("# x"))
	assert.Equal(t, KindTitle, lineKind("@x"))
	assert.Equal(t, KindBorder, lineKind("^0101 1"))
	assert.Equal(t, KindWorld, lineKind("Regina"))
}
