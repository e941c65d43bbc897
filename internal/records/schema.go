package records

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// schema is a named JSON schema for one serialized column.
type schema struct {
	Name       string
	Definition map[string]any
}

var tierSchema = map[string]any{
	"type": "object",
	"properties": map[string]any{
		"name":  map[string]any{"type": "string"},
		"emoji": map[string]any{"type": "string"},
		"range": map[string]any{"type": "string"},
		"color": map[string]any{"type": "string"},
	},
	"required": []any{"name"},
}

var sectionScoresSchema = &schema{
	Name: "section-scores",
	Definition: map[string]any{
		"type": "object",
		"additionalProperties": map[string]any{
			"type": "object",
			"properties": map[string]any{
				"sectionId":   map[string]any{"type": "string"},
				"sectionName": map[string]any{"type": "string"},
				"score":       map[string]any{"type": "integer", "minimum": 0},
				"maxScore":    map[string]any{"type": "integer", "minimum": 0},
				"percentage":  map[string]any{"type": "number"},
				"tier":        tierSchema,
			},
			"required": []any{"sectionId", "sectionName", "score", "maxScore", "percentage"},
		},
	},
}

var recommendationsSchema = &schema{
	Name: "recommendations",
	Definition: map[string]any{
		"type":  "array",
		"items": map[string]any{"type": "string"},
	},
}

var answersSchema = &schema{
	Name: "answers",
	Definition: map[string]any{
		"type": "array",
		"items": map[string]any{
			"type": "object",
			"properties": map[string]any{
				"questionId": map[string]any{"type": "integer"},
				"score":      map[string]any{"type": "integer", "minimum": 1, "maximum": 5},
				"timestamp":  map[string]any{"type": "string"},
			},
			"required": []any{"questionId", "score"},
		},
	},
}

// compiled caches compiled schemas by name.
var compiled sync.Map // map[string]*jsonschema.Schema

func validate(s *schema, raw []byte) error {
	var parsed any
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return fmt.Errorf("invalid JSON: %w", err)
	}
	c, err := compile(s)
	if err != nil {
		return fmt.Errorf("compile schema %q: %w", s.Name, err)
	}
	if err := c.Validate(parsed); err != nil {
		return fmt.Errorf("schema %q: %w", s.Name, err)
	}
	return nil
}

func compile(s *schema) (*jsonschema.Schema, error) {
	if cached, ok := compiled.Load(s.Name); ok {
		return cached.(*jsonschema.Schema), nil
	}

	// The compiler wants a decoded JSON value, not Go maps with typed slices.
	defBytes, err := json.Marshal(s.Definition)
	if err != nil {
		return nil, err
	}
	var def any
	if err := json.Unmarshal(defBytes, &def); err != nil {
		return nil, err
	}

	c := jsonschema.NewCompiler()
	url := fmt.Sprintf("schema://%s.json", s.Name)
	if err := c.AddResource(url, def); err != nil {
		return nil, err
	}
	sch, err := c.Compile(url)
	if err != nil {
		return nil, err
	}
	compiled.Store(s.Name, sch)
	return sch, nil
}
