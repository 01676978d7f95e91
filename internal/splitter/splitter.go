// Package splitter breaks a full-sector data file into the sixteen subsector
// files the viewer reads.
package splitter

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"ssv/internal/datafile"
	"ssv/internal/hexgrid"
	"ssv/internal/log"
)

// Layout of a sector: 4x4 subsectors of 8x10 hexes.
const (
	Subsectors    = 16
	SectorColumns = 4 * hexgrid.Columns
	SectorRows    = 4 * hexgrid.Rows

	// Columns 14-17 of a sector line hold the CCRR hex.
	hexCol = 14
	minLen = hexCol + 4
)

// ErrOutsideSector is returned for a hex beyond the 32x40 sector grid.
var ErrOutsideSector = errors.New("hex outside sector")

var header = []string{
	"#",
	"# Trade routes within the subsector",
	"#src. dst.  X Y dst. offsets",
	"# $1840 1841  0 1",
	"#",
	"#--------1---------2---------3---------4---------5---------6---------7",
	"#PlanetName   Loc. UPP Code   B   Notes         Z  PBG Al. Star(s)",
	"#----------   ---- ---------  - --------------- -  --- -- ---------",
}

// FileName returns the output name of subsector i: sec_A to sec_P.
func FileName(i int) string {
	return fmt.Sprintf("sec_%c", 'A'+i)
}

// Header returns the lines that open each subsector file. The title line
// names the subsector and the sector file it came from.
func Header(subsector, sector string) []string {
	out := make([]string, 0, len(header)+1)
	out = append(out, fmt.Sprintf("@SUB-SECTOR: %s   SECTOR: %s", subsector, sector))
	return append(out, header...)
}

// Target returns the subsector index, 0-15 in reading order, that holds the
// 1-based sector hex col,row.
func Target(col, row int) (int, error) {
	if col < 1 || col > SectorColumns || row < 1 || row > SectorRows {
		return 0, fmt.Errorf("%02d%02d: %w", col, row, ErrOutsideSector)
	}
	return ((row-1)/hexgrid.Rows)*4 + (col-1)/hexgrid.Columns, nil
}

// Result counts where the lines of one split went.
type Result struct {
	Counts [Subsectors]int
	// Skipped counts header and comment lines without a hex.
	Skipped int
	// Rejected lists the line numbers whose hex lies outside the sector.
	Rejected []int
	// TooLong lists the line numbers dropped for exceeding
	// datafile.MaxLineBytes.
	TooLong []int
}

// Opener creates one output file.
type Opener func(name string) (io.WriteCloser, error)

// Split copies every world line of r into the subsector writer its hex
// selects. Each writer first receives the header.
func Split(r io.Reader, sector string, open Opener) (*Result, error) {
	outs := make([]*bufio.Writer, Subsectors)
	closers := make([]io.Closer, 0, Subsectors)
	defer func() {
		for _, c := range closers {
			c.Close()
		}
	}()

	for i := range outs {
		name := FileName(i)
		wc, err := open(name)
		if err != nil {
			return nil, fmt.Errorf("failed to open %s: %w", name, err)
		}
		closers = append(closers, wc)
		outs[i] = bufio.NewWriter(wc)
		for _, line := range Header(name, sector) {
			fmt.Fprintln(outs[i], line)
		}
	}

	res := &Result{}
	lines := datafile.NewLineReader(r)
	lineNo := 0
	for {
		text, tooLong, err := lines.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read line %d: %w", lineNo+1, err)
		}
		lineNo++
		if tooLong {
			log.Warn("Skipping overlong sector line", "line", lineNo)
			res.TooLong = append(res.TooLong, lineNo)
			continue
		}
		line := []byte(text)
		col, row, ok := sectorHex(line)
		if !ok {
			res.Skipped++
			continue
		}
		target, err := Target(col, row)
		if err != nil {
			log.Warn("Skipping sector line", "line", lineNo, "error", err)
			res.Rejected = append(res.Rejected, lineNo)
			continue
		}
		outs[target].Write(line)
		outs[target].WriteByte('\n')
		res.Counts[target]++
	}

	for i, w := range outs {
		if err := w.Flush(); err != nil {
			return nil, fmt.Errorf("failed to write %s: %w", FileName(i), err)
		}
	}
	for _, c := range closers {
		if err := c.Close(); err != nil {
			return nil, err
		}
	}
	closers = nil
	return res, nil
}

// SplitFile splits the sector file at path into dir. The sector name in each
// header is the path as given.
func SplitFile(path, dir string) (*Result, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	log.Info("Splitting sector file", "path", path, "dir", dir)
	return Split(f, path, func(name string) (io.WriteCloser, error) {
		return os.Create(filepath.Join(dir, name))
	})
}

func sectorHex(line []byte) (col, row int, ok bool) {
	if len(line) < minLen {
		return 0, 0, false
	}
	for _, c := range line[hexCol:minLen] {
		if c < '0' || c > '9' {
			return 0, 0, false
		}
	}
	h := line[hexCol:minLen]
	col = int(h[0]-'0')*10 + int(h[1]-'0')
	row = int(h[2]-'0')*10 + int(h[3]-'0')
	return col, row, true
}
