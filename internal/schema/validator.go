// Package schema validates raw question records against an embedded CUE
// schema. It is used by strict mode to catch shape problems the lenient
// parser tolerates.
package schema

import (
	"embed"
	"fmt"
	"path/filepath"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
)

//go:embed schemas/*.cue
var schemaFS embed.FS

// ValidationError describes one schema violation for a record.
type ValidationError struct {
	RecordID string
	Message  string
}

// Validator holds the compiled question schema.
type Validator struct {
	ctx    *cue.Context
	schema cue.Value
	loaded bool
}

// NewValidator compiles the embedded schemas. A broken embedded schema is a
// programming error and is reported rather than ignored.
func NewValidator() (*Validator, error) {
	v := &Validator{ctx: cuecontext.New()}

	entries, err := schemaFS.ReadDir("schemas")
	if err != nil {
		return nil, fmt.Errorf("reading embedded schemas: %w", err)
	}

	for _, entry := range entries {
		if entry.IsDir() || filepath.Ext(entry.Name()) != ".cue" {
			continue
		}
		content, err := schemaFS.ReadFile(filepath.Join("schemas", entry.Name()))
		if err != nil {
			return nil, fmt.Errorf("reading schema %s: %w", entry.Name(), err)
		}

		inst := v.ctx.CompileBytes(content, cue.Filename(entry.Name()))
		if err := inst.Err(); err != nil {
			return nil, fmt.Errorf("compiling schema %s: %w", entry.Name(), err)
		}

		if entry.Name() == "question.cue" {
			v.schema = inst.Value()
			v.loaded = true
		}
	}

	if !v.loaded {
		return nil, fmt.Errorf("question.cue schema not found in embedded filesystem")
	}
	return v, nil
}

// ValidateRecord checks one decoded record against the #Question definition.
func (v *Validator) ValidateRecord(data map[string]any) []ValidationError {
	id, _ := data["id"].(string)

	dataValue := v.ctx.Encode(data)
	if err := dataValue.Err(); err != nil {
		return []ValidationError{{RecordID: id, Message: fmt.Sprintf("encoding record: %v", err)}}
	}

	def := v.schema.LookupPath(cue.ParsePath("#Question"))
	if !def.Exists() {
		return nil
	}

	unified := def.Unify(dataValue)
	if err := unified.Err(); err != nil {
		return []ValidationError{{RecordID: id, Message: fmt.Sprintf("schema validation failed: %v", err)}}
	}
	if err := unified.Validate(cue.Concrete(true)); err != nil {
		return []ValidationError{{RecordID: id, Message: fmt.Sprintf("schema validation failed: %v", err)}}
	}

	return nil
}
