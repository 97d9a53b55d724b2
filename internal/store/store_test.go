package store

import (
	"database/sql"
	"path/filepath"
	"testing"
)

func createTestBank(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "bank.db")

	db, err := sql.Open("sqlite3", path)
	if err != nil {
		t.Fatal(err)
	}
	defer db.Close()

	if _, err := db.Exec(`
		CREATE TABLE questions (
			id TEXT PRIMARY KEY,
			topic TEXT,
			question_text TEXT,
			question_type TEXT,
			difficulty_level TEXT,
			bloom_level TEXT,
			keywords TEXT,
			subtopics TEXT,
			prerequisites TEXT
		)`); err != nil {
		t.Fatal(err)
	}

	rows := [][]any{
		{"q1", "Data Types", "What is a tuple?", "short_question", "starter", "remember",
			`["tuple","sequence","immutable"]`, `["collections"]`, ""},
		{"q2", "Functions", "Explain return values.", "explain_concept", "core", "understand",
			"return, function, value", "", ""},
	}
	for _, row := range rows {
		if _, err := db.Exec(
			`INSERT INTO questions VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`, row...); err != nil {
			t.Fatal(err)
		}
	}
	return path
}

func TestLoadQuestions(t *testing.T) {
	path := createTestBank(t)

	db, err := Open(path)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	defer db.Close()

	questions, _, err := db.LoadQuestions("")
	if err != nil {
		t.Fatalf("LoadQuestions failed: %v", err)
	}
	if len(questions) != 2 {
		t.Fatalf("loaded %d questions, want 2", len(questions))
	}

	q1 := questions[0]
	if q1.ID != "q1" || q1.Question != "What is a tuple?" || q1.Style != "short_question" {
		t.Errorf("unexpected first record: %+v", q1)
	}
	if len(q1.Keywords) != 3 || q1.Keywords[0] != "tuple" {
		t.Errorf("JSON keyword list not parsed: %v", q1.Keywords)
	}

	q2 := questions[1]
	if len(q2.Keywords) != 3 || q2.Keywords[0] != "return" {
		t.Errorf("comma-separated keyword list not parsed: %v", q2.Keywords)
	}
	if q2.BloomLevel != "understand" {
		t.Errorf("bloom level = %q, want understand", q2.BloomLevel)
	}
}

func TestLoadQuestionsMissingColumns(t *testing.T) {
	path := createTestBank(t)

	db, err := Open(path)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	defer db.Close()

	// A query that drops required columns must fail loudly, not emit broken
	// records.
	_, _, err = db.LoadQuestions(`SELECT id, topic FROM questions`)
	if err == nil {
		t.Fatal("expected error for rows missing required fields")
	}
}

func TestOpenMissingDatabase(t *testing.T) {
	if _, err := Open(filepath.Join(t.TempDir(), "missing", "x.db")); err == nil {
		t.Fatal("expected error for an unopenable database path")
	}
}
