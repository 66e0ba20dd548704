// Package archive stores finished compositions in a SQL database.
//
// A record keeps the exported SVG document together with the configuration
// and seed that produced it, so that pieces can be listed, retrieved and
// regenerated later. SQLite, PostgreSQL (through pgx) and Genji are
// supported; import package drivers to register them.
package archive

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/blake2b"

	"honnef.co/go/patchwork"
)

var (
	// ErrNotFound is returned by [Store.Get] for unknown IDs.
	ErrNotFound = errors.New("archive: record not found")
	// ErrCorrupt is returned when a stored document does not match its
	// digest.
	ErrCorrupt = errors.New("archive: digest mismatch")
)

// Record is one archived composition.
type Record struct {
	ID        uuid.UUID
	CreatedAt time.Time
	Config    patchwork.Config
	Stats     patchwork.Stats
	// Digest is the BLAKE2b-256 hash of SVG.
	Digest [blake2b.Size256]byte
	SVG    []byte
}

// NewRecord returns a record of comp's current state with its exported
// document.
func NewRecord(comp *patchwork.Composition, svg []byte) Record {
	return Record{
		ID:        uuid.New(),
		CreatedAt: time.Now().UTC(),
		Config:    comp.Config(),
		Stats:     comp.Stats(),
		Digest:    blake2b.Sum256(svg),
		SVG:       svg,
	}
}

// Config selects the database.
type Config struct {
	// Driver is one of "sqlite", "pgx" or "genji". Empty means "sqlite".
	Driver string
	// DSN is passed to the driver. SQLite and Genji take a file path and
	// default to patchwork.sqlite and patchwork.genji. PostgreSQL needs a
	// connection string.
	DSN string
}

// Store is an open archive. It is safe for concurrent use.
type Store struct {
	db     *sql.DB
	driver string
}

// Open connects to the database and creates the schema if needed. logf, if
// not nil, receives diagnostics about connection tuning.
func Open(ctx context.Context, cfg Config, logf func(string, ...any)) (*Store, error) {
	if logf == nil {
		logf = func(string, ...any) {}
	}
	driver := strings.ToLower(strings.TrimSpace(cfg.Driver))
	dsn := cfg.DSN
	switch driver {
	case "", "sqlite":
		driver = "sqlite"
		if dsn == "" {
			dsn = "patchwork.sqlite"
		}
	case "genji":
		if dsn == "" {
			dsn = "patchwork.genji"
		}
	case "pgx":
		if dsn == "" {
			return nil, fmt.Errorf("archive: driver pgx needs a DSN")
		}
	default:
		return nil, fmt.Errorf("archive: unsupported driver %q", cfg.Driver)
	}

	db, err := sql.Open(driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("archive: opening %s database: %w", driver, err)
	}

	switch driver {
	case "sqlite", "genji":
		// Embedded engines get a single connection that is never recycled.
		// For SQLite this also keeps a :memory: database alive.
		db.SetMaxOpenConns(1)
		db.SetMaxIdleConns(1)
		db.SetConnMaxLifetime(0)
	}
	if driver == "sqlite" {
		tuneCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
		if err := tuneSQLite(tuneCtx, db, logf); err != nil {
			logf("sqlite tuning skipped: %v", err)
		}
		cancel()
	}

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := db.PingContext(pingCtx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("archive: connecting to %s database: %w", driver, err)
	}

	s := &Store{db: db, driver: driver}
	if err := s.Migrate(ctx); err != nil {
		_ = db.Close()
		return nil, err
	}
	return s, nil
}

func tuneSQLite(ctx context.Context, db *sql.DB, logf func(string, ...any)) error {
	var mode string
	if err := db.QueryRowContext(ctx, "PRAGMA journal_mode=WAL;").Scan(&mode); err != nil {
		return fmt.Errorf("apply journal_mode: %w", err)
	}
	logf("sqlite journal_mode -> %s", mode)
	if _, err := db.ExecContext(ctx, "PRAGMA busy_timeout=5000;"); err != nil {
		return fmt.Errorf("apply busy_timeout: %w", err)
	}
	return nil
}

// Driver returns the name of the database driver in use.
func (s *Store) Driver() string { return s.driver }

func (s *Store) Close() error { return s.db.Close() }

// Migrate creates the schema if it does not exist yet. [Open] calls it.
func (s *Store) Migrate(ctx context.Context) error {
	integer, float, blob := "INTEGER", "DOUBLE", "BLOB"
	if s.driver == "pgx" {
		integer, float, blob = "BIGINT", "DOUBLE PRECISION", "BYTEA"
	}
	stmt := fmt.Sprintf(`CREATE TABLE IF NOT EXISTS compositions (
	id TEXT PRIMARY KEY,
	created_at %[1]s NOT NULL,
	paper_width %[2]s NOT NULL,
	paper_height %[2]s NOT NULL,
	point_count %[1]s NOT NULL,
	cluster_count %[1]s NOT NULL,
	margin %[2]s NOT NULL,
	tick_period %[1]s NOT NULL,
	seed %[1]s NOT NULL,
	stats TEXT NOT NULL,
	digest %[3]s NOT NULL,
	svg %[3]s NOT NULL
)`, integer, float, blob)
	if _, err := s.db.ExecContext(ctx, stmt); err != nil {
		return fmt.Errorf("archive: creating schema: %w", err)
	}
	return nil
}

// newPlaceholderGenerator returns a closure producing the bind parameter
// syntax of the driver in use.
func newPlaceholderGenerator(driver string) func() string {
	if driver == "pgx" {
		n := 0
		return func() string {
			n++
			return fmt.Sprintf("$%d", n)
		}
	}
	return func() string { return "?" }
}

const columns = "id, created_at, paper_width, paper_height, point_count, cluster_count, margin, tick_period, seed, stats, digest, svg"

// Save inserts rec. Records are immutable; saving an ID twice fails.
func (s *Store) Save(ctx context.Context, rec Record) error {
	if blake2b.Sum256(rec.SVG) != rec.Digest {
		return ErrCorrupt
	}
	stats, err := json.Marshal(rec.Stats)
	if err != nil {
		return fmt.Errorf("archive: encoding stats: %w", err)
	}
	next := newPlaceholderGenerator(s.driver)
	ph := make([]string, 12)
	for i := range ph {
		ph[i] = next()
	}
	cfg := rec.Config
	_, err = s.db.ExecContext(ctx,
		fmt.Sprintf("INSERT INTO compositions (%s) VALUES (%s)", columns, strings.Join(ph, ", ")),
		rec.ID.String(),
		rec.CreatedAt.UnixNano(),
		cfg.Paper.Width,
		cfg.Paper.Height,
		int64(cfg.PointCount),
		int64(cfg.ClusterCount),
		cfg.Margin,
		int64(cfg.TickPeriod),
		int64(cfg.Seed),
		string(stats),
		rec.Digest[:],
		rec.SVG,
	)
	if err != nil {
		return fmt.Errorf("archive: saving %s: %w", rec.ID, err)
	}
	return nil
}

// Get returns the record with the given ID, or [ErrNotFound].
func (s *Store) Get(ctx context.Context, id uuid.UUID) (Record, error) {
	next := newPlaceholderGenerator(s.driver)
	row := s.db.QueryRowContext(ctx,
		fmt.Sprintf("SELECT %s FROM compositions WHERE id = %s", columns, next()),
		id.String())
	rec, err := scanRecord(row)
	if errors.Is(err, sql.ErrNoRows) {
		return Record{}, ErrNotFound
	}
	if err != nil {
		return Record{}, fmt.Errorf("archive: loading %s: %w", id, err)
	}
	if blake2b.Sum256(rec.SVG) != rec.Digest {
		return rec, ErrCorrupt
	}
	return rec, nil
}

// List returns up to limit records, newest first. A limit of zero or less
// returns all of them.
func (s *Store) List(ctx context.Context, limit int) ([]Record, error) {
	query := fmt.Sprintf("SELECT %s FROM compositions ORDER BY created_at DESC", columns)
	if limit > 0 {
		query += fmt.Sprintf(" LIMIT %d", limit)
	}
	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("archive: listing: %w", err)
	}
	defer rows.Close()

	var out []Record
	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			return nil, fmt.Errorf("archive: listing: %w", err)
		}
		out = append(out, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("archive: listing: %w", err)
	}
	return out, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanRecord(row scanner) (Record, error) {
	var (
		rec       Record
		id, stats string
		digest    []byte

		created, points, clusters, period, seed int64
	)
	err := row.Scan(
		&id,
		&created,
		&rec.Config.Paper.Width,
		&rec.Config.Paper.Height,
		&points,
		&clusters,
		&rec.Config.Margin,
		&period,
		&seed,
		&stats,
		&digest,
		&rec.SVG,
	)
	if err != nil {
		return Record{}, err
	}
	if rec.ID, err = uuid.Parse(id); err != nil {
		return Record{}, err
	}
	if len(digest) != len(rec.Digest) {
		return Record{}, fmt.Errorf("digest has %d bytes, want %d", len(digest), len(rec.Digest))
	}
	copy(rec.Digest[:], digest)
	if err := json.Unmarshal([]byte(stats), &rec.Stats); err != nil {
		return Record{}, fmt.Errorf("decoding stats: %w", err)
	}
	rec.CreatedAt = time.Unix(0, created).UTC()
	rec.Config.PointCount = int(points)
	rec.Config.ClusterCount = int(clusters)
	rec.Config.TickPeriod = time.Duration(period)
	rec.Config.Seed = uint64(seed)
	return rec, nil
}
