package internal

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"
)

// Archive stores parsed runs in a local SQLite database so earlier
// transcripts can be listed and redisplayed without reparsing.
type Archive struct {
	db   *sql.DB
	path string
}

// Run is one archived pipeline run.
type Run struct {
	ID        int64
	Source    string
	CreatedAt time.Time
	Agents    int
	Events    int
	Dropped   int
	Story     *Story
}

const archiveSchema = `
CREATE TABLE IF NOT EXISTS runs (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	source TEXT NOT NULL,
	created_at TEXT NOT NULL,
	agents INTEGER NOT NULL,
	events INTEGER NOT NULL,
	dropped INTEGER NOT NULL,
	story TEXT NOT NULL
)`

// OpenArchive opens (creating if needed) the run archive at path.
func OpenArchive(path string) (*Archive, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, &ArchiveError{Path: path, Op: "open", Err: err}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, &ArchiveError{Path: path, Op: "open", Err: err}
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, &ArchiveError{Path: path, Op: "open", Err: err}
	}

	if _, err := db.Exec(archiveSchema); err != nil {
		db.Close()
		return nil, &ArchiveError{Path: path, Op: "open", Err: err}
	}

	return &Archive{db: db, path: path}, nil
}

// Close releases the database handle.
func (a *Archive) Close() error {
	return a.db.Close()
}

// SaveRun records a parsed run and returns its assigned ID.
func (a *Archive) SaveRun(source string, story *Story, stats Stats) (int64, error) {
	data, err := json.Marshal(story)
	if err != nil {
		return 0, &ArchiveError{Path: a.path, Op: "save", Err: err}
	}

	res, err := a.db.Exec(
		"INSERT INTO runs (source, created_at, agents, events, dropped, story) VALUES (?, ?, ?, ?, ?, ?)",
		source,
		time.Now().UTC().Format(time.RFC3339),
		len(story.Agents),
		stats.Events,
		stats.Dropped,
		string(data),
	)
	if err != nil {
		return 0, &ArchiveError{Path: a.path, Op: "save", Err: err}
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, &ArchiveError{Path: a.path, Op: "save", Err: err}
	}
	return id, nil
}

// ListRuns returns archived runs, newest first, without their stories.
func (a *Archive) ListRuns() ([]Run, error) {
	rows, err := a.db.Query(
		"SELECT id, source, created_at, agents, events, dropped FROM runs ORDER BY id DESC")
	if err != nil {
		return nil, &ArchiveError{Path: a.path, Op: "query", Err: err}
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var run Run
		var created string
		if err := rows.Scan(&run.ID, &run.Source, &created, &run.Agents, &run.Events, &run.Dropped); err != nil {
			return nil, &ArchiveError{Path: a.path, Op: "query", Err: err}
		}
		run.CreatedAt, _ = time.Parse(time.RFC3339, created)
		runs = append(runs, run)
	}

	if err := rows.Err(); err != nil {
		return nil, &ArchiveError{Path: a.path, Op: "query", Err: err}
	}
	return runs, nil
}

// GetRun loads one archived run, including its story.
func (a *Archive) GetRun(id int64) (*Run, error) {
	row := a.db.QueryRow(
		"SELECT id, source, created_at, agents, events, dropped, story FROM runs WHERE id = ?", id)

	var run Run
	var created, storyJSON string
	err := row.Scan(&run.ID, &run.Source, &created, &run.Agents, &run.Events, &run.Dropped, &storyJSON)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("run %d not found", id)
	}
	if err != nil {
		return nil, &ArchiveError{Path: a.path, Op: "query", Err: err}
	}

	run.CreatedAt, _ = time.Parse(time.RFC3339, created)

	var story Story
	if err := json.Unmarshal([]byte(storyJSON), &story); err != nil {
		return nil, &ArchiveError{Path: a.path, Op: "query", Err: err}
	}
	run.Story = &story

	return &run, nil
}

// DefaultArchivePath returns the archive location under the user's
// home directory.
func DefaultArchivePath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(home, ".agent-story", "runs.db"), nil
}
