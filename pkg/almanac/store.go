package almanac

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"github.com/chrissnell/skywatch/pkg/frame"
)

// Store persists almanac runs in a SQLite database.
type Store struct {
	db     *sql.DB
	dbPath string
}

// Run identifies one stored almanac generation.
type Run struct {
	ID        string
	Latitude  float64
	Longitude float64
	HeightM   float64
	StartDate string
	Days      int
	CreatedAt time.Time
}

// NewStore opens (creating if necessary) an almanac database.
func NewStore(dbPath string) (*Store, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open SQLite database: %w", err)
	}

	// Test the connection
	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping SQLite database: %w", err)
	}

	s := &Store{db: db, dbPath: dbPath}
	if err := s.createTables(); err != nil {
		db.Close()
		return nil, err
	}
	return s, nil
}

func (s *Store) createTables() error {
	schema := `
		CREATE TABLE IF NOT EXISTS runs (
			id TEXT PRIMARY KEY,
			latitude REAL NOT NULL,
			longitude REAL NOT NULL,
			height_m REAL NOT NULL,
			start_date TEXT NOT NULL,
			days INTEGER NOT NULL,
			created_at TEXT NOT NULL
		);
		CREATE TABLE IF NOT EXISTS almanac_days (
			run_id TEXT NOT NULL REFERENCES runs(id),
			date TEXT NOT NULL,
			sunrise_jd REAL,
			sunset_jd REAL,
			moonrise_jd REAL,
			moonset_jd REAL,
			quarter INTEGER,
			quarter_jd REAL,
			PRIMARY KEY (run_id, date)
		);
	`
	if _, err := s.db.Exec(schema); err != nil {
		return fmt.Errorf("failed to create almanac tables: %w", err)
	}
	return nil
}

// SaveRun stores a generated almanac and returns its run ID.
func (s *Store) SaveRun(obs frame.Observer, days []Day) (string, error) {
	if len(days) == 0 {
		return "", fmt.Errorf("refusing to save empty almanac")
	}

	runID := uuid.New().String()
	tx, err := s.db.Begin()
	if err != nil {
		return "", fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.Exec(`INSERT INTO runs (id, latitude, longitude, height_m, start_date, days, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		runID, obs.LatDeg, obs.LonDeg, obs.HeightM, days[0].Date, len(days),
		time.Now().UTC().Format(time.RFC3339))
	if err != nil {
		return "", fmt.Errorf("failed to insert run: %w", err)
	}

	stmt, err := tx.Prepare(`INSERT INTO almanac_days
		(run_id, date, sunrise_jd, sunset_jd, moonrise_jd, moonset_jd, quarter, quarter_jd)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return "", fmt.Errorf("failed to prepare day insert: %w", err)
	}
	defer stmt.Close()

	for _, d := range days {
		_, err := stmt.Exec(runID, d.Date,
			nullable(d.Sunrise, d.HasSunrise),
			nullable(d.Sunset, d.HasSunset),
			nullable(d.Moonrise, d.HasMoonrise),
			nullable(d.Moonset, d.HasMoonset),
			nullableQuarter(d.Quarter),
			nullable(d.QuarterTime, d.Quarter >= 0))
		if err != nil {
			return "", fmt.Errorf("failed to insert day %s: %w", d.Date, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return "", fmt.Errorf("failed to commit almanac: %w", err)
	}
	return runID, nil
}

// LoadRun reads back a stored almanac by run ID, ordered by date.
func (s *Store) LoadRun(runID string) ([]Day, error) {
	rows, err := s.db.Query(`SELECT date, sunrise_jd, sunset_jd, moonrise_jd, moonset_jd, quarter, quarter_jd
		FROM almanac_days WHERE run_id = ? ORDER BY date`, runID)
	if err != nil {
		return nil, fmt.Errorf("failed to query almanac days: %w", err)
	}
	defer rows.Close()

	var days []Day
	for rows.Next() {
		var d Day
		var sunrise, sunset, moonrise, moonset, quarterJD sql.NullFloat64
		var quarter sql.NullInt64
		if err := rows.Scan(&d.Date, &sunrise, &sunset, &moonrise, &moonset, &quarter, &quarterJD); err != nil {
			return nil, fmt.Errorf("failed to scan almanac day: %w", err)
		}
		d.Sunrise, d.HasSunrise = sunrise.Float64, sunrise.Valid
		d.Sunset, d.HasSunset = sunset.Float64, sunset.Valid
		d.Moonrise, d.HasMoonrise = moonrise.Float64, moonrise.Valid
		d.Moonset, d.HasMoonset = moonset.Float64, moonset.Valid
		if quarter.Valid {
			d.Quarter = int(quarter.Int64)
			d.QuarterTime = quarterJD.Float64
		} else {
			d.Quarter = -1
		}
		days = append(days, d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed reading almanac rows: %w", err)
	}
	if len(days) == 0 {
		return nil, fmt.Errorf("no almanac run with id %s", runID)
	}
	return days, nil
}

// GetRun returns the stored metadata for a run ID.
func (s *Store) GetRun(runID string) (*Run, error) {
	var r Run
	var created string
	err := s.db.QueryRow(`SELECT id, latitude, longitude, height_m, start_date, days, created_at
		FROM runs WHERE id = ?`, runID).
		Scan(&r.ID, &r.Latitude, &r.Longitude, &r.HeightM, &r.StartDate, &r.Days, &created)
	if err != nil {
		return nil, fmt.Errorf("failed to load run %s: %w", runID, err)
	}
	r.CreatedAt, _ = time.Parse(time.RFC3339, created)
	return &r, nil
}

// Close releases the database handle.
func (s *Store) Close() error {
	return s.db.Close()
}

func nullable(v float64, ok bool) interface{} {
	if !ok {
		return nil
	}
	return v
}

func nullableQuarter(q int) interface{} {
	if q < 0 {
		return nil
	}
	return q
}
