// Package database stores sector snapshots in SQLite so a map, including the
// borders drawn on it, can be reloaded without the original data file.
package database

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/Masterminds/squirrel"
	_ "modernc.org/sqlite"

	"ssv/internal/hexgrid"
	"ssv/internal/log"
	"ssv/internal/sector"
)

// ErrNotFound is returned when no snapshot has the requested name.
var ErrNotFound = errors.New("snapshot not found")

// ErrNotOpen is returned by operations on a closed store.
var ErrNotOpen = errors.New("database not open")

// Border provenance as stored in the borders table.
const (
	borderStatic  = "static"
	borderSession = "session"
)

// Snapshot describes one saved sector.
type Snapshot struct {
	Name    string
	Title   string
	SavedAt time.Time
	Worlds  int
	Routes  int
	Borders int
}

// Store is a SQLite file of sector snapshots.
type Store struct {
	db       *sql.DB
	filename string
	psql     squirrel.StatementBuilderType
}

// Open opens or creates the database at filename and brings its schema up to
// date.
func Open(filename string) (*Store, error) {
	log.Info("Opening snapshot database", "path", filename)

	db, err := sql.Open("sqlite", filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	// One connection keeps :memory: databases and transactions consistent.
	db.SetMaxOpenConns(1)

	if err = db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	s := &Store{
		db:       db,
		filename: filename,
		psql:     squirrel.StatementBuilder.PlaceholderFormat(squirrel.Question),
	}
	if err = s.runMigrations(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}
	return s, nil
}

// Close releases the database.
func (s *Store) Close() error {
	if s.db == nil {
		return nil
	}
	err := s.db.Close()
	s.db = nil
	if err != nil {
		return fmt.Errorf("failed to close database: %w", err)
	}
	return nil
}

// SaveSector stores sec under name, replacing any earlier snapshot of that
// name.
func (s *Store) SaveSector(name string, sec *sector.Sector) error {
	if s.db == nil {
		return ErrNotOpen
	}
	log.Info("Saving sector snapshot", "name", name, "worlds", len(sec.Worlds()))

	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback()

	if err = s.deleteSnapshot(tx, name); err != nil {
		return err
	}

	ov := sec.Overlays()
	id, err := s.insert(tx, s.psql.Insert("sectors").
		Columns("name", "title", "show_allegiance", "show_notes", "show_uwp", "saved_at").
		Values(name, sec.Title(), ov.Allegiance, ov.TradeNotes, ov.UWP, time.Now().UTC()))
	if err != nil {
		return fmt.Errorf("failed to save sector %q: %w", name, err)
	}

	for i, w := range sec.Worlds() {
		notes, err := encodeNotes(w.Notes)
		if err != nil {
			return fmt.Errorf("failed to encode notes of %q: %w", w.Name, err)
		}
		_, err = s.insert(tx, s.psql.Insert("worlds").
			Columns("sector_id", "position", "name", "hex_col", "hex_row", "starport", "uwp",
				"base", "zone", "allegiance", "gas_giants", "notes").
			Values(id, i, w.Name, w.Hex.Col, w.Hex.Row, w.Starport, w.UWP,
				w.Base, int(w.Zone), w.Allegiance, w.GasGiants, notes))
		if err != nil {
			return fmt.Errorf("failed to save world %q: %w", w.Name, err)
		}
	}

	for i, r := range sec.Routes() {
		_, err = s.insert(tx, s.psql.Insert("routes").
			Columns("sector_id", "position", "start_x", "start_y", "end_x", "end_y").
			Values(id, i, r.Start.X, r.Start.Y, r.End.X, r.End.Y))
		if err != nil {
			return fmt.Errorf("failed to save route %d: %w", i, err)
		}
	}

	if err = s.saveBorders(tx, id, borderStatic, sec.StaticBorders()); err != nil {
		return err
	}
	if err = s.saveBorders(tx, id, borderSession, sec.SessionBorders()); err != nil {
		return err
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit snapshot %q: %w", name, err)
	}
	return nil
}

func (s *Store) saveBorders(tx *sql.Tx, id int64, kind string, segs []hexgrid.Segment) error {
	for i, seg := range segs {
		_, err := s.insert(tx, s.psql.Insert("borders").
			Columns("sector_id", "position", "kind", "x1", "y1", "x2", "y2").
			Values(id, i, kind, seg.A.X, seg.A.Y, seg.B.X, seg.B.Y))
		if err != nil {
			return fmt.Errorf("failed to save %s border %d: %w", kind, i, err)
		}
	}
	return nil
}

func (s *Store) insert(tx *sql.Tx, q squirrel.InsertBuilder) (int64, error) {
	query, args, err := q.ToSql()
	if err != nil {
		return 0, err
	}
	res, err := tx.Exec(query, args...)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

func (s *Store) deleteSnapshot(tx *sql.Tx, name string) error {
	var id int64
	err := tx.QueryRow("SELECT id FROM sectors WHERE name = ?", name).Scan(&id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to look up snapshot %q: %w", name, err)
	}
	for _, table := range []string{"worlds", "routes", "borders"} {
		query, args, err := s.psql.Delete(table).Where(squirrel.Eq{"sector_id": id}).ToSql()
		if err != nil {
			return err
		}
		if _, err = tx.Exec(query, args...); err != nil {
			return fmt.Errorf("failed to clear %s of %q: %w", table, name, err)
		}
	}
	if _, err = tx.Exec("DELETE FROM sectors WHERE id = ?", id); err != nil {
		return fmt.Errorf("failed to delete snapshot %q: %w", name, err)
	}
	return nil
}

// LoadSector rebuilds the snapshot called name into a new sector with the
// given limits. Entries beyond the limits are dropped as when loading a file.
func (s *Store) LoadSector(name string, limits sector.Limits) (*sector.Sector, error) {
	if s.db == nil {
		return nil, ErrNotOpen
	}
	log.Info("Loading sector snapshot", "name", name)

	query, args, err := s.psql.Select("id", "title", "show_allegiance", "show_notes", "show_uwp").
		From("sectors").Where(squirrel.Eq{"name": name}).ToSql()
	if err != nil {
		return nil, err
	}
	var (
		id    int64
		title string
		ov    sector.Overlays
	)
	err = s.db.QueryRow(query, args...).Scan(&id, &title, &ov.Allegiance, &ov.TradeNotes, &ov.UWP)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%q: %w", name, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load sector %q: %w", name, err)
	}

	sec := sector.New(limits)
	sec.SetTitle(title)
	sec.SetOverlay(sector.OverlayAllegiance, ov.Allegiance)
	sec.SetOverlay(sector.OverlayTradeNotes, ov.TradeNotes)
	sec.SetOverlay(sector.OverlayUWP, ov.UWP)

	if err = s.loadWorlds(id, sec); err != nil {
		return nil, err
	}
	if err = s.loadRoutes(id, sec); err != nil {
		return nil, err
	}
	if err = s.loadBorders(id, sec); err != nil {
		return nil, err
	}
	return sec, nil
}

func (s *Store) loadWorlds(id int64, sec *sector.Sector) error {
	query, args, err := s.psql.Select("name", "hex_col", "hex_row", "starport", "uwp",
		"base", "zone", "allegiance", "gas_giants", "notes").
		From("worlds").Where(squirrel.Eq{"sector_id": id}).OrderBy("position").ToSql()
	if err != nil {
		return err
	}
	rows, err := s.db.Query(query, args...)
	if err != nil {
		return fmt.Errorf("failed to query worlds: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			w     sector.World
			zone  int
			notes string
		)
		if err := rows.Scan(&w.Name, &w.Hex.Col, &w.Hex.Row, &w.Starport, &w.UWP,
			&w.Base, &zone, &w.Allegiance, &w.GasGiants, &notes); err != nil {
			return fmt.Errorf("failed to scan world: %w", err)
		}
		w.Coord = w.Hex.Grid()
		w.Zone = sector.Zone(zone)
		if w.Notes, err = decodeNotes(notes); err != nil {
			return fmt.Errorf("failed to decode notes of %q: %w", w.Name, err)
		}
		w.Type = sector.ClassifyWorld(uwpDigit(w.UWP, 0), uwpDigit(w.UWP, 2))
		w.Atmosphere = sector.ClassifyAtmosphere(uwpDigit(w.UWP, 1))
		if err := sec.AddWorld(w); err != nil {
			log.Warn("Snapshot world dropped", "name", w.Name, "error", err)
		}
	}
	return rows.Err()
}

func (s *Store) loadRoutes(id int64, sec *sector.Sector) error {
	query, args, err := s.psql.Select("start_x", "start_y", "end_x", "end_y").
		From("routes").Where(squirrel.Eq{"sector_id": id}).OrderBy("position").ToSql()
	if err != nil {
		return err
	}
	rows, err := s.db.Query(query, args...)
	if err != nil {
		return fmt.Errorf("failed to query routes: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var r sector.TradeRoute
		if err := rows.Scan(&r.Start.X, &r.Start.Y, &r.End.X, &r.End.Y); err != nil {
			return fmt.Errorf("failed to scan route: %w", err)
		}
		if err := sec.AddRoute(r); err != nil {
			log.Warn("Snapshot route dropped", "route", r, "error", err)
		}
	}
	return rows.Err()
}

func (s *Store) loadBorders(id int64, sec *sector.Sector) error {
	query, args, err := s.psql.Select("kind", "x1", "y1", "x2", "y2").
		From("borders").Where(squirrel.Eq{"sector_id": id}).OrderBy("kind DESC", "position").ToSql()
	if err != nil {
		return err
	}
	rows, err := s.db.Query(query, args...)
	if err != nil {
		return fmt.Errorf("failed to query borders: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			kind string
			seg  hexgrid.Segment
		)
		if err := rows.Scan(&kind, &seg.A.X, &seg.A.Y, &seg.B.X, &seg.B.Y); err != nil {
			return fmt.Errorf("failed to scan border: %w", err)
		}
		if kind == borderSession {
			err = sec.AppendSessionBorder(seg)
		} else {
			err = sec.AddStaticBorder(seg)
		}
		if err != nil {
			log.Warn("Snapshot border dropped", "segment", seg, "error", err)
		}
	}
	return rows.Err()
}

// ListSectors returns every snapshot, most recently saved first.
func (s *Store) ListSectors() ([]Snapshot, error) {
	if s.db == nil {
		return nil, ErrNotOpen
	}
	query, _, err := s.psql.Select(
		"s.name", "s.title", "s.saved_at",
		"(SELECT COUNT(*) FROM worlds w WHERE w.sector_id = s.id)",
		"(SELECT COUNT(*) FROM routes r WHERE r.sector_id = s.id)",
		"(SELECT COUNT(*) FROM borders b WHERE b.sector_id = s.id)",
	).From("sectors s").OrderBy("s.saved_at DESC", "s.name").ToSql()
	if err != nil {
		return nil, err
	}
	rows, err := s.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to list snapshots: %w", err)
	}
	defer rows.Close()

	var out []Snapshot
	for rows.Next() {
		var snap Snapshot
		if err := rows.Scan(&snap.Name, &snap.Title, &snap.SavedAt, &snap.Worlds, &snap.Routes, &snap.Borders); err != nil {
			return nil, fmt.Errorf("failed to scan snapshot: %w", err)
		}
		out = append(out, snap)
	}
	return out, rows.Err()
}

// encodeNotes stores trade codes as a JSON array so codes with a trailing
// space survive. No notes is the empty string.
func encodeNotes(notes []string) (string, error) {
	if len(notes) == 0 {
		return "", nil
	}
	b, err := json.Marshal(notes)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// decodeNotes reads encodeNotes output. Rows written by older versions hold
// space-separated codes.
func decodeNotes(s string) ([]string, error) {
	switch {
	case s == "":
		return nil, nil
	case strings.HasPrefix(s, "["):
		var notes []string
		if err := json.Unmarshal([]byte(s), &notes); err != nil {
			return nil, err
		}
		return notes, nil
	default:
		return strings.Fields(s), nil
	}
}

func uwpDigit(uwp string, i int) byte {
	if i >= len(uwp) {
		return ' '
	}
	return uwp[i]
}
