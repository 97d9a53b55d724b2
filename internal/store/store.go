// Package store loads question records out of a SQLite question bank so they
// can be exported to JSONL and run through the engine.
package store

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"

	_ "github.com/mattn/go-sqlite3"

	"github.com/dotcommander/qforge/internal/question"
)

// DefaultQuery is the export query used when the caller does not supply one.
// Column aliases map the common schema onto the record field names.
const DefaultQuery = `
	SELECT
		id,
		topic,
		question_text AS question,
		question_type AS style,
		difficulty_level AS difficulty,
		bloom_level,
		keywords,
		subtopics,
		prerequisites
	FROM questions
	ORDER BY id`

// listColumns hold JSON arrays or comma-separated values in most banks.
var listColumns = map[string]bool{
	"keywords":      true,
	"subtopics":     true,
	"prerequisites": true,
}

// DB wraps a SQLite connection to a question bank.
type DB struct {
	db *sql.DB
}

// Open opens and pings a SQLite question bank.
func Open(path string) (*DB, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("opening database %s: %w", path, err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("connecting to database %s: %w", path, err)
	}
	return &DB{db: db}, nil
}

// Close closes the underlying connection.
func (d *DB) Close() error {
	return d.db.Close()
}

// LoadQuestions runs the export query and normalizes each row into a
// Question. Rows failing required-field validation abort the export with the
// offending record named.
func (d *DB) LoadQuestions(query string) ([]*question.Question, []string, error) {
	if query == "" {
		query = DefaultQuery
	}

	rows, err := d.db.Query(query)
	if err != nil {
		return nil, nil, fmt.Errorf("export query failed: %w", err)
	}
	defer rows.Close()

	cols, err := rows.Columns()
	if err != nil {
		return nil, nil, fmt.Errorf("reading result columns: %w", err)
	}

	var questions []*question.Question
	var warnings []string

	for rows.Next() {
		values := make([]any, len(cols))
		ptrs := make([]any, len(cols))
		for i := range values {
			ptrs[i] = &values[i]
		}
		if err := rows.Scan(ptrs...); err != nil {
			return nil, nil, fmt.Errorf("scanning row: %w", err)
		}

		record := map[string]any{}
		for i, col := range cols {
			v := values[i]
			if v == nil {
				continue
			}
			s := asString(v)
			if listColumns[col] {
				record[col] = parseList(s)
			} else {
				record[col] = s
			}
		}

		q, warns, err := question.FromMap(record)
		if err != nil {
			return nil, nil, fmt.Errorf("exporting row: %w", err)
		}
		questions = append(questions, q)
		warnings = append(warnings, warns...)
	}
	if err := rows.Err(); err != nil {
		return nil, nil, fmt.Errorf("iterating rows: %w", err)
	}

	return questions, warnings, nil
}

func asString(v any) string {
	switch t := v.(type) {
	case string:
		return t
	case []byte:
		return string(t)
	default:
		return fmt.Sprintf("%v", t)
	}
}

// parseList accepts either a JSON array or a comma-separated string.
func parseList(s string) []any {
	s = strings.TrimSpace(s)
	if s == "" {
		return []any{}
	}

	if strings.HasPrefix(s, "[") {
		var parsed []any
		if err := json.Unmarshal([]byte(s), &parsed); err == nil {
			return parsed
		}
	}

	var items []any
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			items = append(items, part)
		}
	}
	return items
}
