package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"ssv/internal/hexgrid"
	"ssv/internal/sector"
	"ssv/internal/tui"
)

func worldLine(name, hex, profile string, base byte, notes string, zone, gasGiants byte, allegiance string) string {
	b := []byte(strings.Repeat(" ", 57))
	copy(b[0:13], name)
	copy(b[14:18], hex)
	copy(b[19:28], profile)
	b[30] = base
	copy(b[32:46], notes)
	b[48] = zone
	b[53] = gasGiants
	copy(b[55:57], allegiance)
	return string(b)
}

func writeSample(t *testing.T) string {
	t.Helper()
	lines := []string{
		"@Regina Subsector",
		"^0101 0",
		"$0310 0309 0000",
		"$0310 0101 +100",
		worldLine("Regina", "0310", "A788899-C", 'A', "Ri Pa Ph", 'A', '3', "Im"),
		worldLine("Boughene", "0309", "A8B3531-D", ' ', "Ni", ' ', '1', "Im"),
		"bad line",
	}
	path := filepath.Join(t.TempDir(), "regina.dat")
	require.NoError(t, os.WriteFile(path, []byte(strings.Join(lines, "\n")+"\n"), 0o644))
	return path
}

// testEnv isolates configuration from the developer's environment.
func testEnv(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("SSV_DB_PATH", filepath.Join(dir, "ssv.db"))
	t.Setenv("SSV_PRINT_PATH", filepath.Join(dir, "map.png"))
	t.Setenv("SSV_LOG_FILE", "")
	t.Setenv("SSV_LOG_LEVEL", "error")
	t.Setenv("SSV_ENCODING", "ascii")
	return dir
}

func run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	cmd := NewRootCmd(BuildInfo{Version: "1.2.3", Commit: "abc", Date: "today"})
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), errOut.String(), err
}

func stubTerminal(t *testing.T, tty bool) {
	t.Helper()
	orig := isTerminal
	isTerminal = func() bool { return tty }
	t.Cleanup(func() { isTerminal = orig })
}

func TestVersion(t *testing.T) {
	out, _, err := run(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "ssv version 1.2.3")
	assert.Contains(t, out, "commit: abc")
}

func TestDump(t *testing.T) {
	testEnv(t)
	path := writeSample(t)

	out, errOut, err := run(t, "dump", "--capacity", path)
	require.NoError(t, err)
	assert.Contains(t, out, "Total trade-routes read = 2")
	assert.Contains(t, out, "Total worlds read = 2")
	assert.Contains(t, out, `"Regina"`)
	assert.Contains(t, out, "worlds")
	assert.Contains(t, errOut, "1 skipped")
}

func TestDumpMissingFile(t *testing.T) {
	testEnv(t)
	_, _, err := run(t, "dump", filepath.Join(t.TempDir(), "nope.dat"))
	assert.Error(t, err)
}

func TestRootWithoutTerminalDumps(t *testing.T) {
	testEnv(t)
	stubTerminal(t, false)
	path := writeSample(t)

	out, _, err := run(t, path)
	require.NoError(t, err)
	assert.Contains(t, out, "Total worlds read = 2")
}

func TestRootRequiresInput(t *testing.T) {
	testEnv(t)
	_, _, err := run(t)
	assert.ErrorContains(t, err, "data file is required")
}

func TestRootPrintOnly(t *testing.T) {
	dir := testEnv(t)
	path := writeSample(t)
	target := filepath.Join(dir, "out.png")

	out, _, err := run(t, "-p", "-o", target, path)
	require.NoError(t, err)
	assert.Contains(t, out, target)

	data, err := os.ReadFile(target)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(data, []byte("\x89PNG")))
}

func TestRootSixel(t *testing.T) {
	testEnv(t)
	path := writeSample(t)

	out, _, err := run(t, "--sixel", "--sixel-width", "200", path)
	require.NoError(t, err)
	assert.Contains(t, out, "\x1bP", "sixel output opens with DCS")

	_, _, err = run(t, "--sixel", "--sixel-encoder", "bogus", path)
	assert.ErrorContains(t, err, "bogus")
}

func TestViewerSaveAndReloadSnapshot(t *testing.T) {
	testEnv(t)
	stubTerminal(t, true)
	path := writeSample(t)

	orig := runViewer
	t.Cleanup(func() { runViewer = orig })
	var got tui.Options
	runViewer = func(s *sector.Sector, opts tui.Options) error {
		got = opts
		return s.AppendSessionBorder(hexgrid.Segment{A: hexgrid.Point{X: 100, Y: 56}, B: hexgrid.Point{X: 200, Y: 136}})
	}

	out, _, err := run(t, "--save", "regina", path)
	require.NoError(t, err)
	assert.Equal(t, path, got.Source)
	assert.Equal(t, os.Getenv("SSV_PRINT_PATH"), got.PrintPath)
	assert.Contains(t, out, `Saved snapshot "regina"`)

	out, _, err = run(t, "snapshots")
	require.NoError(t, err)
	assert.Contains(t, out, "regina")
	assert.Contains(t, out, "Regina Subsector")

	stubTerminal(t, false)
	out, _, err = run(t, "--snapshot", "regina")
	require.NoError(t, err)
	assert.Contains(t, out, "Total worlds read = 2")

	_, _, err = run(t, "--snapshot", "regina", path)
	assert.ErrorContains(t, err, "not both")
}

func TestSnapshotsEmpty(t *testing.T) {
	testEnv(t)
	out, _, err := run(t, "snapshots")
	require.NoError(t, err)
	assert.Equal(t, "no snapshots\n", out)
}

func TestExportYAML(t *testing.T) {
	testEnv(t)
	path := writeSample(t)

	out, _, err := run(t, "export", path)
	require.NoError(t, err)

	var doc struct {
		Title  string           `yaml:"title"`
		Worlds []map[string]any `yaml:"worlds"`
		Routes []map[string]any `yaml:"routes"`
	}
	require.NoError(t, yaml.Unmarshal([]byte(out), &doc))
	assert.Equal(t, "Regina Subsector", doc.Title)
	require.Len(t, doc.Worlds, 2)
	assert.Equal(t, "Regina", doc.Worlds[0]["name"])
	assert.Equal(t, "0310", doc.Worlds[0]["hex"])
	assert.Equal(t, "GARDEN", doc.Worlds[0]["type"])
	assert.Len(t, doc.Routes, 2)
}

func TestExportSQLite(t *testing.T) {
	testEnv(t)
	path := writeSample(t)

	out, _, err := run(t, "export", "-f", "sqlite", path)
	require.NoError(t, err)
	assert.Contains(t, out, `Saved snapshot "regina"`)

	_, _, err = run(t, "export", "-f", "xml", path)
	assert.ErrorContains(t, err, "xml")
}

func TestRoutesText(t *testing.T) {
	testEnv(t)
	path := writeSample(t)

	out, _, err := run(t, "routes", path)
	require.NoError(t, err)
	assert.Contains(t, out, "1 trade network(s)")
	assert.Contains(t, out, "Regina(0310)")
	assert.Contains(t, out, "Boughene(0309)")
	assert.Contains(t, out, "[8,0]")

	_, _, err = run(t, "routes", "-f", "gif", path)
	assert.ErrorContains(t, err, "gif")
}

func TestRoutesDot(t *testing.T) {
	testEnv(t)
	path := writeSample(t)

	out, _, err := run(t, "routes", "-f", "dot", path)
	require.NoError(t, err)
	assert.Contains(t, out, "Regina")
}

func TestSection(t *testing.T) {
	testEnv(t)
	dir := t.TempDir()
	src := filepath.Join(dir, "sector.dat")
	line := "Regina        1910 A788899-C  A Ri Pa Ph       A  703 Im"
	require.NoError(t, os.WriteFile(src, []byte(line+"\n"), 0o644))

	out, _, err := run(t, "section", "-d", dir, src)
	require.NoError(t, err)
	assert.Contains(t, out, "sec_C: 1 world(s)")

	data, err := os.ReadFile(filepath.Join(dir, "sec_C"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "Regina")
}
