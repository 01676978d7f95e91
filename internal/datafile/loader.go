package datafile

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"

	"ssv/internal/log"
	"ssv/internal/sector"
)

// Options controls how a data file is read.
type Options struct {
	Limits sector.Limits
	// Encoding names the file's character set: "ascii" (the default, also
	// accepts UTF-8), "latin1" or "cp437".
	Encoding string
}

// Decoder returns the decoder for an encoding name, or nil when the input can
// be read as is.
func Decoder(name string) (*encoding.Decoder, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "ascii", "utf8", "utf-8":
		return nil, nil
	case "latin1", "iso-8859-1", "iso8859-1":
		return charmap.ISO8859_1.NewDecoder(), nil
	case "cp437", "ibm437":
		return charmap.CodePage437.NewDecoder(), nil
	default:
		return nil, fmt.Errorf("unknown encoding %q", name)
	}
}

// Load opens path and reads it into a new Sector. Open and read failures wrap
// ErrSourceUnavailable and return no sector; bad lines are only reported.
func Load(path string, opts Options) (*sector.Sector, *Report, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %v", ErrSourceUnavailable, err)
	}
	defer f.Close()

	log.Info("Loading sector file", "path", path, "encoding", opts.Encoding)
	s, report, err := Read(f, opts)
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w", path, err)
	}
	report.Source = path
	return s, report, nil
}

// Read parses every line from r into a new Sector.
func Read(r io.Reader, opts Options) (*sector.Sector, *Report, error) {
	dec, err := Decoder(opts.Encoding)
	if err != nil {
		return nil, nil, err
	}
	if dec != nil {
		r = transform.NewReader(r, dec)
	}

	s := sector.New(opts.Limits)
	report := &Report{}
	l := &loader{sector: s, report: report}

	lines := NewLineReader(r)
	lineNo := 0
	for {
		line, tooLong, err := lines.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, nil, fmt.Errorf("%w: read line %d: %v", ErrSourceUnavailable, lineNo+1, err)
		}
		lineNo++
		if tooLong {
			kind := lineKind(line)
			l.report.malformed(lineNo, kind, &MalformedRecordError{Line: lineNo, Kind: kind, Reason: "line too long"})
			continue
		}
		l.apply(lineNo, line)
	}
	report.Lines = lineNo

	log.Info("Sector loaded",
		"worlds", len(s.Worlds()),
		"routes", len(s.Routes()),
		"borders", len(s.StaticBorders()),
		"warnings", len(report.Warnings))
	return s, report, nil
}

type loader struct {
	sector *sector.Sector
	report *Report
}

func (l *loader) apply(lineNo int, line string) {
	rec, err := ParseLine(line)
	if err != nil {
		var me *MalformedRecordError
		if errors.As(err, &me) {
			me.Line = lineNo
		}
		l.report.malformed(lineNo, rec.Kind, err)
		return
	}

	switch rec.Kind {
	case KindTitle:
		l.sector.SetTitle(rec.Title)
	case KindBorder:
		seg, err := rec.Border.Segment()
		if err != nil {
			l.report.malformed(lineNo, KindBorder, &MalformedRecordError{Line: lineNo, Kind: KindBorder, Reason: err.Error()})
			return
		}
		l.add(lineNo, KindBorder, l.sector.AddStaticBorder(seg))
	case KindRoute:
		l.add(lineNo, KindRoute, l.sector.AddRoute(rec.Route.Route()))
	case KindWorld:
		l.add(lineNo, KindWorld, l.sector.AddWorld(rec.World.World()))
	}
}

func (l *loader) add(lineNo int, kind Kind, err error) {
	if err == nil {
		return
	}
	if errors.Is(err, sector.ErrCapacityExceeded) {
		l.report.overflow(lineNo, kind, err)
		return
	}
	l.report.malformed(lineNo, kind, err)
}
