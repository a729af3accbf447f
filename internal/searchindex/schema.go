package searchindex

import (
	"bytes"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"

	"portfolio/configs"
)

const schemaURL = "search-index.schema.json"

var (
	schemaOnce sync.Once
	schema     *jsonschema.Schema
	schemaErr  error
)

func compiledSchema() (*jsonschema.Schema, error) {
	schemaOnce.Do(func() {
		doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(configs.SearchIndexSchema))
		if err != nil {
			schemaErr = fmt.Errorf("parse index schema: %w", err)
			return
		}
		compiler := jsonschema.NewCompiler()
		if err := compiler.AddResource(schemaURL, doc); err != nil {
			schemaErr = fmt.Errorf("add index schema: %w", err)
			return
		}
		schema, schemaErr = compiler.Compile(schemaURL)
	})
	return schema, schemaErr
}

// Validate checks an encoded index document against the index schema and
// the cross-field rules the schema cannot express.
func Validate(data []byte) error {
	sch, err := compiledSchema()
	if err != nil {
		return err
	}
	inst, err := jsonschema.UnmarshalJSON(bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("parse index: %w", err)
	}
	if err := sch.Validate(inst); err != nil {
		return fmt.Errorf("index does not match schema: %w", err)
	}

	entries, err := Decode(bytes.NewReader(data))
	if err != nil {
		return err
	}
	for i := range entries {
		if err := checkSections(&entries[i]); err != nil {
			return fmt.Errorf("entry %d (%s): %w", i, entries[i].URL, err)
		}
	}
	return nil
}

// checkSections enforces unique ids and that every parentId names an
// earlier level-2 section.
func checkSections(e *Entry) error {
	seen := make(map[string]int, len(e.Sections))
	for _, s := range e.Sections {
		if _, dup := seen[s.ID]; dup {
			return fmt.Errorf("duplicate section id %q", s.ID)
		}
		if s.ParentID != "" {
			if s.Level != LevelNested {
				return fmt.Errorf("section %q: parentId on level %d", s.ID, s.Level)
			}
			level, ok := seen[s.ParentID]
			if !ok || level != LevelTop {
				return fmt.Errorf("section %q: parent %q is not an earlier level-2 section", s.ID, s.ParentID)
			}
		}
		seen[s.ID] = s.Level
	}
	return nil
}
