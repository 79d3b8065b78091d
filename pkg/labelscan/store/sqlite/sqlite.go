package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"strings"
	"time"

	_ "modernc.org/sqlite"

	"github.com/nutricheck/labelscan/pkg/labelscan/report"
	"github.com/nutricheck/labelscan/pkg/labelscan/store"
	"github.com/nutricheck/labelscan/pkg/labelscan/taxonomy"
)

// sqliteStore implements the Store interface using SQLite
type sqliteStore struct {
	db *sql.DB
}

// Open opens a SQLite database with WAL mode enabled and initializes the
// schema.
func Open(ctx context.Context, path string) (store.Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}

	// Enable WAL mode for better concurrency
	if _, err := db.ExecContext(ctx, "PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, err
	}

	// Enable foreign keys
	if _, err := db.ExecContext(ctx, "PRAGMA foreign_keys=ON"); err != nil {
		db.Close()
		return nil, err
	}

	if err := initSchema(ctx, db); err != nil {
		db.Close()
		return nil, err
	}

	return &sqliteStore{db: db}, nil
}

// Close closes the database connection
func (s *sqliteStore) Close() error {
	return s.db.Close()
}

// initSchema creates tables if they don't exist
func initSchema(ctx context.Context, db *sql.DB) error {
	schema := `
CREATE TABLE IF NOT EXISTS ingredients (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	name TEXT UNIQUE NOT NULL,
	risk_level TEXT NOT NULL,
	description TEXT,
	banned_in TEXT,
	sources TEXT,
	position INTEGER NOT NULL DEFAULT 0,
	created_at TEXT
);

CREATE TABLE IF NOT EXISTS ingredient_synonyms (
	ingredient_id INTEGER NOT NULL,
	synonym TEXT NOT NULL,
	UNIQUE(ingredient_id, synonym),
	FOREIGN KEY(ingredient_id) REFERENCES ingredients(id) ON DELETE CASCADE
);

CREATE TABLE IF NOT EXISTS scans (
	id TEXT PRIMARY KEY,
	filename TEXT,
	size INTEGER,
	content_type TEXT,
	ocr_text TEXT,
	ingredients TEXT,
	nutrition TEXT,
	processing_seconds REAL,
	created_at TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_scans_created_at ON scans(created_at);
`

	_, err := db.ExecContext(ctx, schema)
	return err
}

// FindIngredient returns the stored entry matching a token: either a stored
// synonym equals the token, or the stored name appears in the token
// case-insensitively. Position order keeps the tie break stable.
//
// Name containment is deliberately one-directional, the reverse of what the
// in-process taxonomy does: "wheat flour" hits the stored "Flour" entry here,
// while a token shorter than the name does not match at all. A token can
// therefore earn a different confidence depending on which pass serves it.
func (s *sqliteStore) FindIngredient(ctx context.Context, token string) (taxonomy.Entry, bool, error) {
	key := strings.ToLower(strings.TrimSpace(token))
	if key == "" {
		return taxonomy.Entry{}, false, nil
	}

	var id int64
	err := s.db.QueryRowContext(ctx, `
SELECT i.id
FROM ingredients i
WHERE i.id IN (SELECT ingredient_id FROM ingredient_synonyms WHERE synonym = ?)
   OR instr(?, lower(i.name)) > 0
ORDER BY i.position
LIMIT 1;
`, key, key).Scan(&id)
	if err == sql.ErrNoRows {
		return taxonomy.Entry{}, false, nil
	}
	if err != nil {
		return taxonomy.Entry{}, false, err
	}

	entry, err := s.loadIngredient(ctx, id)
	if err != nil {
		return taxonomy.Entry{}, false, err
	}
	return entry, true, nil
}

// UpsertIngredients replaces or inserts reference entries, keyed by name.
// The slice order becomes the stored position so lookups tie-break the same
// way the in-process taxonomy does.
func (s *sqliteStore) UpsertIngredients(ctx context.Context, entries []taxonomy.Entry) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	const stmt = `
INSERT INTO ingredients (name, risk_level, description, banned_in, sources, position, created_at)
VALUES (?, ?, ?, ?, ?, ?, ?)
ON CONFLICT(name) DO UPDATE SET
	risk_level=excluded.risk_level,
	description=excluded.description,
	banned_in=excluded.banned_in,
	sources=excluded.sources,
	position=excluded.position
RETURNING id;
`

	now := time.Now().UTC().Format(time.RFC3339)
	for pos, e := range entries {
		if e.Name == "" {
			continue
		}
		bannedJSON, err := json.Marshal(e.BannedIn)
		if err != nil {
			return err
		}
		sourcesJSON, err := json.Marshal(e.Sources)
		if err != nil {
			return err
		}

		var id int64
		err = tx.QueryRowContext(ctx, stmt,
			e.Name,
			string(e.RiskLevel),
			e.Description,
			string(bannedJSON),
			string(sourcesJSON),
			pos,
			now,
		).Scan(&id)
		if err != nil {
			return err
		}

		if err := replaceSynonyms(ctx, tx, id, e.Synonyms); err != nil {
			return err
		}
	}

	return tx.Commit()
}

func replaceSynonyms(ctx context.Context, tx *sql.Tx, id int64, synonyms []string) error {
	if _, err := tx.ExecContext(ctx, `DELETE FROM ingredient_synonyms WHERE ingredient_id=?`, id); err != nil {
		return err
	}
	if len(synonyms) == 0 {
		return nil
	}
	stmt, err := tx.PrepareContext(ctx, `INSERT OR IGNORE INTO ingredient_synonyms (ingredient_id, synonym) VALUES (?, ?)`)
	if err != nil {
		return err
	}
	defer stmt.Close()
	for _, syn := range synonyms {
		syn = strings.ToLower(strings.TrimSpace(syn))
		if syn == "" {
			continue
		}
		if _, err := stmt.ExecContext(ctx, id, syn); err != nil {
			return err
		}
	}
	return nil
}

// ListIngredients returns stored entries in position order
func (s *sqliteStore) ListIngredients(ctx context.Context, limit int) ([]taxonomy.Entry, error) {
	if limit <= 0 {
		limit = 100
	}

	rows, err := s.db.QueryContext(ctx, `
SELECT id FROM ingredients ORDER BY position LIMIT ?;
`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var ids []int64
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	entries := make([]taxonomy.Entry, 0, len(ids))
	for _, id := range ids {
		entry, err := s.loadIngredient(ctx, id)
		if err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}
	return entries, nil
}

// InsertScan stores a completed scan report
func (s *sqliteStore) InsertScan(ctx context.Context, r report.ScanReport) error {
	verdictsJSON, err := json.Marshal(r.Ingredients)
	if err != nil {
		return err
	}
	nutritionJSON, err := json.Marshal(r.Nutrition)
	if err != nil {
		return err
	}

	createdAt := r.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now().UTC()
	}

	_, err = s.db.ExecContext(ctx, `
INSERT INTO scans (id, filename, size, content_type, ocr_text, ingredients, nutrition, processing_seconds, created_at)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?);
`,
		r.ScanID,
		r.Image.Filename,
		r.Image.Size,
		r.Image.ContentType,
		r.OCRText,
		string(verdictsJSON),
		string(nutritionJSON),
		r.ProcessingSeconds,
		createdAt.Format(time.RFC3339Nano),
	)
	return err
}

// ListScans returns the most recent scans, newest first
func (s *sqliteStore) ListScans(ctx context.Context, limit int) ([]report.ScanReport, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.QueryContext(ctx, `
SELECT id, filename, size, content_type, ocr_text, ingredients, nutrition, processing_seconds, created_at
FROM scans
ORDER BY created_at DESC
LIMIT ?;
`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var scans []report.ScanReport
	for rows.Next() {
		var (
			r             report.ScanReport
			verdictsJSON  string
			nutritionJSON string
			created       string
		)
		if err := rows.Scan(
			&r.ScanID,
			&r.Image.Filename,
			&r.Image.Size,
			&r.Image.ContentType,
			&r.OCRText,
			&verdictsJSON,
			&nutritionJSON,
			&r.ProcessingSeconds,
			&created,
		); err != nil {
			return nil, err
		}
		if err := json.Unmarshal([]byte(verdictsJSON), &r.Ingredients); err != nil {
			return nil, err
		}
		if err := json.Unmarshal([]byte(nutritionJSON), &r.Nutrition); err != nil {
			return nil, err
		}
		if parsed, perr := time.Parse(time.RFC3339Nano, created); perr == nil {
			r.CreatedAt = parsed
		}
		scans = append(scans, r)
	}
	return scans, rows.Err()
}

func (s *sqliteStore) loadIngredient(ctx context.Context, id int64) (taxonomy.Entry, error) {
	var (
		entry       taxonomy.Entry
		riskLevel   string
		bannedJSON  sql.NullString
		sourcesJSON sql.NullString
	)
	err := s.db.QueryRowContext(ctx, `
SELECT name, risk_level, description, banned_in, sources
FROM ingredients
WHERE id = ?;
`, id).Scan(&entry.Name, &riskLevel, &entry.Description, &bannedJSON, &sourcesJSON)
	if err != nil {
		return taxonomy.Entry{}, err
	}

	entry.RiskLevel = taxonomy.RiskLevel(riskLevel)
	if bannedJSON.Valid && bannedJSON.String != "" {
		if err := json.Unmarshal([]byte(bannedJSON.String), &entry.BannedIn); err != nil {
			return taxonomy.Entry{}, err
		}
	}
	if sourcesJSON.Valid && sourcesJSON.String != "" {
		if err := json.Unmarshal([]byte(sourcesJSON.String), &entry.Sources); err != nil {
			return taxonomy.Entry{}, err
		}
	}

	entry.Synonyms, err = s.loadSynonyms(ctx, id)
	if err != nil {
		return taxonomy.Entry{}, err
	}
	return entry, nil
}

func (s *sqliteStore) loadSynonyms(ctx context.Context, id int64) ([]string, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT synonym FROM ingredient_synonyms WHERE ingredient_id=? ORDER BY synonym`, id)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var synonyms []string
	for rows.Next() {
		var syn string
		if err := rows.Scan(&syn); err != nil {
			return nil, err
		}
		synonyms = append(synonyms, syn)
	}
	return synonyms, rows.Err()
}
