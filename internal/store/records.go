package store

import (
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"lifehub/internal/query"
)

// ErrNotFound is returned when an id does not exist in the requested domain.
var ErrNotFound = fmt.Errorf("record not found")

const recordColumns = `id, domain, date, title, notes, type, category, status,
	priority, tags, amount, score, pinned, starred, archived, created_at, updated_at`

// Insert persists a new record, assigning an id and timestamps when missing,
// and returns the stored value.
func (s *Store) Insert(rec query.Record) (query.Record, error) {
	if !rec.Domain.Valid() {
		return query.Record{}, fmt.Errorf("insert: unknown domain %q", rec.Domain)
	}
	if rec.ID == "" {
		rec.ID = uuid.NewString()
	}
	now := time.Now().UTC()
	if rec.CreatedAt.IsZero() {
		rec.CreatedAt = now
	}
	rec.UpdatedAt = now

	_, err := s.db.Exec(`
		INSERT INTO records(`+recordColumns+`)
		VALUES(?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?)`,
		rec.ID, string(rec.Domain), rec.Date, rec.Title, rec.Notes, rec.Type,
		rec.Category, rec.Status, rec.Priority, joinTags(rec.Tags), rec.Amount,
		rec.Score, boolInt(rec.Pinned), boolInt(rec.Starred), boolInt(rec.Archived),
		rec.CreatedAt.Format(time.RFC3339Nano), rec.UpdatedAt.Format(time.RFC3339Nano),
	)
	if err != nil {
		return query.Record{}, fmt.Errorf("insert record: %w", err)
	}
	return rec, nil
}

// Update replaces the stored row for rec.ID, refreshing updated_at.
func (s *Store) Update(rec query.Record) (query.Record, error) {
	rec.UpdatedAt = time.Now().UTC()
	res, err := s.db.Exec(`
		UPDATE records
		SET date = ?, title = ?, notes = ?, type = ?, category = ?, status = ?,
			priority = ?, tags = ?, amount = ?, score = ?, pinned = ?, starred = ?,
			archived = ?, updated_at = ?
		WHERE id = ? AND domain = ?`,
		rec.Date, rec.Title, rec.Notes, rec.Type, rec.Category, rec.Status,
		rec.Priority, joinTags(rec.Tags), rec.Amount, rec.Score,
		boolInt(rec.Pinned), boolInt(rec.Starred), boolInt(rec.Archived),
		rec.UpdatedAt.Format(time.RFC3339Nano),
		rec.ID, string(rec.Domain),
	)
	if err != nil {
		return query.Record{}, fmt.Errorf("update record: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return query.Record{}, ErrNotFound
	}
	return s.Get(rec.Domain, rec.ID)
}

// Delete removes a record by domain and id.
func (s *Store) Delete(domain query.Domain, id string) error {
	res, err := s.db.Exec(`DELETE FROM records WHERE id = ? AND domain = ?`, id, string(domain))
	if err != nil {
		return fmt.Errorf("delete record: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}

// Get fetches one record by domain and id.
func (s *Store) Get(domain query.Domain, id string) (query.Record, error) {
	row := s.db.QueryRow(`
		SELECT `+recordColumns+`
		FROM records WHERE id = ? AND domain = ?`, id, string(domain))
	rec, err := scanRecord(row)
	if err == sql.ErrNoRows {
		return query.Record{}, ErrNotFound
	}
	return rec, err
}

// List returns every record in the domain, newest calendar day first. The
// result is the raw snapshot handed to the query engine; all filtering and
// re-sorting happen in memory there.
func (s *Store) List(domain query.Domain) ([]query.Record, error) {
	rows, err := s.db.Query(`
		SELECT `+recordColumns+`
		FROM records WHERE domain = ?
		ORDER BY date DESC, created_at DESC`, string(domain))
	if err != nil {
		return nil, fmt.Errorf("list %s: %w", domain, err)
	}
	defer rows.Close()

	var out []query.Record
	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	return out, rows.Err()
}

// Categories returns the distinct non-empty categories used in a domain,
// for completion and did-you-mean suggestions.
func (s *Store) Categories(domain query.Domain) ([]string, error) {
	rows, err := s.db.Query(`
		SELECT DISTINCT category FROM records
		WHERE domain = ? AND category != ''
		ORDER BY category`, string(domain))
	if err != nil {
		return nil, fmt.Errorf("categories %s: %w", domain, err)
	}
	defer rows.Close()

	var out []string
	for rows.Next() {
		var c string
		if err := rows.Scan(&c); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

type scanner interface {
	Scan(dest ...any) error
}

func scanRecord(row scanner) (query.Record, error) {
	var rec query.Record
	var domain, tags, createdAt, updatedAt string
	var pinned, starred, archived int
	err := row.Scan(&rec.ID, &domain, &rec.Date, &rec.Title, &rec.Notes,
		&rec.Type, &rec.Category, &rec.Status, &rec.Priority, &tags,
		&rec.Amount, &rec.Score, &pinned, &starred, &archived,
		&createdAt, &updatedAt)
	if err != nil {
		return query.Record{}, err
	}
	rec.Domain = query.Domain(domain)
	rec.Tags = splitTags(tags)
	rec.Pinned = pinned != 0
	rec.Starred = starred != 0
	rec.Archived = archived != 0
	// Stored timestamps may be hand-edited; a bad one becomes the zero time
	// rather than an error.
	rec.CreatedAt, _ = time.Parse(time.RFC3339Nano, createdAt)
	rec.UpdatedAt, _ = time.Parse(time.RFC3339Nano, updatedAt)
	return rec, nil
}

func joinTags(tags []string) string {
	cleaned := make([]string, 0, len(tags))
	for _, t := range tags {
		if t = strings.TrimSpace(t); t != "" {
			cleaned = append(cleaned, t)
		}
	}
	return strings.Join(cleaned, ",")
}

func splitTags(s string) []string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	var out []string
	for _, t := range strings.Split(s, ",") {
		if t = strings.TrimSpace(t); t != "" {
			out = append(out, t)
		}
	}
	return out
}

func boolInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
