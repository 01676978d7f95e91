package splitter

import (
	"bytes"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memFile struct {
	bytes.Buffer
	closed bool
}

func (m *memFile) Close() error {
	m.closed = true
	return nil
}

func memOpener(files map[string]*memFile) Opener {
	return func(name string) (io.WriteCloser, error) {
		f := &memFile{}
		files[name] = f
		return f, nil
	}
}

// sectorLine puts hex at columns 14-17.
func sectorLine(name, hex string) string {
	return name + strings.Repeat(" ", 14-len(name)) + hex + " A788899-C  A Ri Cp          R  703 Im G2 V"
}

func TestTarget(t *testing.T) {
	tests := []struct {
		col, row int
		want     int
	}{
		{1, 1, 0},
		{8, 10, 0},
		{9, 1, 1},
		{32, 10, 3},
		{1, 11, 4},
		{17, 25, 10},
		{32, 40, 15},
	}
	for _, tt := range tests {
		got, err := Target(tt.col, tt.row)
		require.NoError(t, err)
		assert.Equal(t, tt.want, got, "%02d%02d", tt.col, tt.row)
	}

	for _, bad := range [][2]int{{0, 1}, {33, 1}, {1, 0}, {1, 41}} {
		_, err := Target(bad[0], bad[1])
		assert.ErrorIs(t, err, ErrOutsideSector)
	}
}

func TestFileName(t *testing.T) {
	assert.Equal(t, "sec_A", FileName(0))
	assert.Equal(t, "sec_P", FileName(15))
}

func TestHeader(t *testing.T) {
	h := Header("sec_C", "spinward.dat")
	require.Len(t, h, 9)
	assert.Equal(t, "@SUB-SECTOR: sec_C   SECTOR: spinward.dat", h[0])
	assert.Equal(t, "# $1840 1841  0 1", h[4])
}

func TestSplit(t *testing.T) {
	input := strings.Join([]string{
		"# Spinward Marches",
		"Name          Hex",
		sectorLine("Regina", "1910"),
		sectorLine("Jewell", "1106"),
		sectorLine("Efate", "1705"),
		sectorLine("Mora", "3124"),
		sectorLine("Nowhere", "3341"),
		"short",
	}, "\n")

	files := map[string]*memFile{}
	res, err := Split(strings.NewReader(input), "spinward.dat", memOpener(files))
	require.NoError(t, err)

	require.Len(t, files, Subsectors)
	for _, f := range files {
		assert.True(t, f.closed)
	}
	assert.Equal(t, 3, res.Skipped)
	assert.Equal(t, []int{7}, res.Rejected)
	assert.Equal(t, 2, res.Counts[2], "1910 and 1705 are in C")
	assert.Equal(t, 1, res.Counts[1])
	assert.Equal(t, 1, res.Counts[11])

	c := files["sec_C"].String()
	assert.True(t, strings.HasPrefix(c, "@SUB-SECTOR: sec_C   SECTOR: spinward.dat\n#\n"))
	assert.Contains(t, c, sectorLine("Regina", "1910")+"\n")
	assert.Contains(t, c, sectorLine("Efate", "1705")+"\n")
	assert.Contains(t, files["sec_B"].String(), "Jewell")
	assert.Contains(t, files["sec_L"].String(), "Mora")
	assert.NotContains(t, files["sec_A"].String(), "Regina")
}

func TestSplitOpenError(t *testing.T) {
	opened := map[string]*memFile{}
	open := func(name string) (io.WriteCloser, error) {
		if name == "sec_D" {
			return nil, errors.New("read-only")
		}
		return memOpener(opened)(name)
	}
	_, err := Split(strings.NewReader(""), "x", open)
	assert.ErrorContains(t, err, "sec_D")
	for _, f := range opened {
		assert.True(t, f.closed, "files opened before the failure are closed")
	}
}

func TestSplitFile(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "sector.dat")
	require.NoError(t, os.WriteFile(src, []byte(sectorLine("Regina", "1910")+"\n"), 0o644))

	res, err := SplitFile(src, dir)
	require.NoError(t, err)
	assert.Equal(t, 1, res.Counts[2])

	data, err := os.ReadFile(filepath.Join(dir, "sec_C"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "Regina")
	_, err = os.Stat(filepath.Join(dir, "sec_P"))
	assert.NoError(t, err)
}

func TestSplitSkipsOverlongLine(t *testing.T) {
	input := sectorLine("Jewell", "1106") + "\n" +
		strings.Repeat("x", 70000) + "\n" +
		sectorLine("Regina", "1910") + "\n"

	files := map[string]*memFile{}
	res, err := Split(strings.NewReader(input), "spinward.dat", memOpener(files))
	require.NoError(t, err)
	assert.Equal(t, []int{2}, res.TooLong)
	assert.Equal(t, 1, res.Counts[1])
	assert.Equal(t, 1, res.Counts[2])
	assert.Contains(t, files["sec_C"].String(), "Regina")
}
