package datafile

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ssv/internal/hexgrid"
	"ssv/internal/sector"
)

const sampleFile = `@SUB-SECTOR: Regina   SECTOR: Spinward Marches
#PlanetName   Loc. UPP Code   B   Notes         Z  PBG Al LRX
^0101 0
^0101 1
$0310 0309 0000
$0310 0101 +100
`

func sample() string {
	return sampleFile +
		worldLine("Regina", "0310", "A788899-C", 'A', "Ri Pa Ph An Cp", 'A', '3', "Im") + "\n" +
		worldLine("Boughene", "0309", "A8B3531-D", ' ', "Ni", ' ', '1', "Im") + "\n" +
		"\n"
}

func TestReadSample(t *testing.T) {
	s, report, err := Read(strings.NewReader(sample()), Options{})
	require.NoError(t, err)
	assert.True(t, report.Clean(), report.Summary())
	assert.Equal(t, 9, report.Lines)

	assert.Equal(t, "SUB-SECTOR: Regina   SECTOR: Spinward Marches", s.Title())
	require.Len(t, s.Worlds(), 2)
	assert.Equal(t, "Regina", s.Worlds()[0].Name)
	assert.Equal(t, "Boughene", s.Worlds()[1].Name)
	assert.Len(t, s.StaticBorders(), 2)
	assert.Empty(t, s.SessionBorders())

	routes := s.Routes()
	require.Len(t, routes, 2)
	assert.Equal(t, sector.TradeRoute{Start: hexgrid.Coord{X: 2, Y: 9}, End: hexgrid.Coord{X: 2, Y: 8}}, routes[0])
	assert.Equal(t, hexgrid.Coord{X: 8, Y: 0}, routes[1].End)

	w, ok := s.WorldAt(hexgrid.Coord{X: 2, Y: 8})
	require.True(t, ok)
	assert.Equal(t, "Boughene", w.Name)
}

func TestReadSkipsMalformedLines(t *testing.T) {
	good := worldLine("Regina", "0310", "A788899-C", 'A', "Ri", 'A', '3', "Im")
	input := strings.Join([]string{
		good[:45],
		"^0101 7",
		"$0101 0202 ab00",
		good,
	}, "\n")

	s, report, err := Read(strings.NewReader(input), Options{})
	require.NoError(t, err)
	assert.Len(t, s.Worlds(), 1, "parsing continues after a bad line")
	assert.Empty(t, s.Routes())
	assert.Empty(t, s.StaticBorders())

	require.Len(t, report.Warnings, 3)
	assert.Equal(t, 1, report.Warnings[0].Line)
	assert.Equal(t, KindWorld, report.Warnings[0].Kind)
	assert.Equal(t, KindBorder, report.Warnings[1].Kind)
	assert.Equal(t, KindRoute, report.Warnings[2].Kind)

	var me *MalformedRecordError
	require.True(t, errors.As(report.Warnings[2].Err, &me))
	assert.Equal(t, 3, me.Line)
	assert.Contains(t, report.Summary(), "line 3: malformed trade route record")
}

func TestReadTruncatesAtCapacity(t *testing.T) {
	var b strings.Builder
	for i := 0; i < 81; i++ {
		hex := fmt.Sprintf("%02d%02d", i%8+1, (i/8)%10+1)
		b.WriteString(worldLine(fmt.Sprintf("World %d", i), hex, "C000000-0", ' ', "", ' ', '0', "Na"))
		b.WriteString("\n")
	}

	s, report, err := Read(strings.NewReader(b.String()), Options{})
	require.NoError(t, err)
	assert.Len(t, s.Worlds(), 80)
	assert.Empty(t, report.Warnings)
	require.Len(t, report.Truncations, 1)

	tr := report.Truncations[0]
	assert.Equal(t, KindWorld, tr.Kind)
	assert.Equal(t, 81, tr.FirstLine)
	assert.Equal(t, 1, tr.Dropped)
	assert.True(t, errors.Is(tr.Err, sector.ErrCapacityExceeded))
	assert.False(t, report.Clean())
}

func TestReadCustomLimits(t *testing.T) {
	input := "$0101 0202 0000\n$0101 0303 0000\n$0101 0404 0000\n"
	s, report, err := Read(strings.NewReader(input), Options{Limits: sector.Limits{Routes: 1}})
	require.NoError(t, err)
	assert.Len(t, s.Routes(), 1)
	require.Len(t, report.Truncations, 1)
	assert.Equal(t, 2, report.Truncations[0].Dropped)
	assert.Equal(t, 2, report.Truncations[0].FirstLine)
}

func TestReadCP437(t *testing.T) {
	line := []byte(worldLine("CafX", "0101", "C000000-0", ' ', "", ' ', '0', "Na"))
	line[3] = 0x82 // é in code page 437

	s, _, err := Read(strings.NewReader(string(line)), Options{Encoding: "cp437"})
	require.NoError(t, err)
	require.Len(t, s.Worlds(), 1)
	w := s.Worlds()[0]
	assert.Equal(t, "Café", w.Name)
	assert.Equal(t, hexgrid.Coord{}, w.Coord)
	assert.Equal(t, "Na", w.Allegiance)
}

func TestReadUnknownEncoding(t *testing.T) {
	_, _, err := Read(strings.NewReader(""), Options{Encoding: "ebcdic"})
	assert.ErrorContains(t, err, "unknown encoding")
}

func TestDecoder(t *testing.T) {
	for _, name := range []string{"", "ascii", "UTF-8"} {
		dec, err := Decoder(name)
		require.NoError(t, err)
		assert.Nil(t, dec, name)
	}
	for _, name := range []string{"latin1", "CP437", "ibm437"} {
		dec, err := Decoder(name)
		require.NoError(t, err)
		assert.NotNil(t, dec, name)
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "regina.dat")
	require.NoError(t, os.WriteFile(path, []byte(strings.ReplaceAll(sample(), "\n", "\r\n")), 0o644))

	s, report, err := Load(path, Options{})
	require.NoError(t, err)
	assert.Equal(t, path, report.Source)
	assert.Len(t, s.Worlds(), 2)
	assert.Equal(t, "Im", s.Worlds()[1].Allegiance)
	assert.Equal(t, "SUB-SECTOR: Regina   SECTOR: Spinward Marches", s.Title())
}

func TestLoadMissingFile(t *testing.T) {
	s, report, err := Load(filepath.Join(t.TempDir(), "missing.dat"), Options{})
	assert.Nil(t, s)
	assert.Nil(t, report)
	assert.True(t, errors.Is(err, ErrSourceUnavailable))
}

func TestReadSkipsOverlongLine(t *testing.T) {
	world := worldLine("Regina", "0310", "A788899-C", 'A', "Ri", 'A', '3', "Im")
	input := "@Title\n" + strings.Repeat("x", 70000) + "\n" + world + "\n"

	s, report, err := Read(strings.NewReader(input), Options{})
	require.NoError(t, err)
	assert.Equal(t, 3, report.Lines)
	assert.Equal(t, "Title", s.Title())
	require.Len(t, s.Worlds(), 1)
	assert.Equal(t, "Regina", s.Worlds()[0].Name)

	require.Len(t, report.Warnings, 1)
	w := report.Warnings[0]
	assert.Equal(t, 2, w.Line)
	assert.Equal(t, KindWorld, w.Kind)
	assert.True(t, errors.Is(w.Err, ErrMalformedRecord))
	assert.ErrorContains(t, w.Err, "line too long")
}
