package schema

import (
	"strings"
	"testing"
)

func validRecord() map[string]any {
	return map[string]any{
		"id":         "q1",
		"topic":      "Data Types",
		"question":   "What is a tuple?",
		"style":      "short_question",
		"difficulty": "starter",
	}
}

func TestValidateRecordAccepts(t *testing.T) {
	v, err := NewValidator()
	if err != nil {
		t.Fatalf("NewValidator failed: %v", err)
	}

	record := validRecord()
	record["bloom_level"] = "remember"
	record["keywords"] = []any{"tuple", "sequence"}
	record["expected_time_sec"] = 60

	if errs := v.ValidateRecord(record); len(errs) != 0 {
		t.Errorf("valid record rejected: %v", errs)
	}
}

func TestValidateRecordRejects(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(map[string]any)
	}{
		{
			name:   "empty id",
			mutate: func(r map[string]any) { r["id"] = "" },
		},
		{
			name:   "unknown style",
			mutate: func(r map[string]any) { r["style"] = "multiple_choice" },
		},
		{
			name:   "unknown difficulty",
			mutate: func(r map[string]any) { r["difficulty"] = "hard" },
		},
		{
			name:   "unknown bloom level",
			mutate: func(r map[string]any) { r["bloom_level"] = "invent" },
		},
		{
			name:   "non-positive time",
			mutate: func(r map[string]any) { r["expected_time_sec"] = 0 },
		},
	}

	v, err := NewValidator()
	if err != nil {
		t.Fatalf("NewValidator failed: %v", err)
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			record := validRecord()
			tt.mutate(record)

			errs := v.ValidateRecord(record)
			if len(errs) == 0 {
				t.Fatal("invalid record accepted")
			}
			if errs[0].RecordID != record["id"] && !strings.Contains(tt.name, "id") {
				t.Errorf("violation carries id %q, want %q", errs[0].RecordID, record["id"])
			}
		})
	}
}
