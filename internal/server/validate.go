package server

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"strings"
	"sync"

	"github.com/xeipuuv/gojsonschema"

	"github.com/luminar-edu/studyplan/internal/schedule"
)

//go:embed schema/generate_request.json
var generateRequestSchema []byte

var compileSchema = sync.OnceValues(func() (*gojsonschema.Schema, error) {
	return gojsonschema.NewSchema(gojsonschema.NewBytesLoader(generateRequestSchema))
})

// ValidationError carries one entry per schema violation.
type ValidationError struct {
	Details []string
}

func (e *ValidationError) Error() string {
	return "invalid request: " + strings.Join(e.Details, "; ")
}

// legacy field names still sent by older frontends, normalized before
// schema validation so the core never sees them.
var courseAliases = map[string]string{
	"confidence": "confidence_level",
	"creditUnit": "credit_unit",
}

// DecodeGenerateRequest parses, normalizes and validates a request body,
// returning the typed request the pipeline consumes.
func DecodeGenerateRequest(body []byte) (schedule.Request, error) {
	var payload map[string]any
	if err := json.Unmarshal(body, &payload); err != nil {
		return schedule.Request{}, fmt.Errorf("parsing request body: %w", err)
	}

	normalizeAliases(payload)

	sch, err := compileSchema()
	if err != nil {
		return schedule.Request{}, fmt.Errorf("compiling request schema: %w", err)
	}
	result, err := sch.Validate(gojsonschema.NewGoLoader(payload))
	if err != nil {
		return schedule.Request{}, fmt.Errorf("validating request: %w", err)
	}
	if !result.Valid() {
		verr := &ValidationError{}
		for _, desc := range result.Errors() {
			verr.Details = append(verr.Details, fmt.Sprintf("%s: %s", desc.Field(), desc.Description()))
		}
		return schedule.Request{}, verr
	}

	normalized, err := json.Marshal(payload)
	if err != nil {
		return schedule.Request{}, fmt.Errorf("re-encoding request: %w", err)
	}
	var req schedule.Request
	if err := json.Unmarshal(normalized, &req); err != nil {
		return schedule.Request{}, fmt.Errorf("decoding request: %w", err)
	}

	// Cross-field checks the schema cannot express: duplicate course
	// names, topics referencing undeclared courses.
	if err := req.Validate(); err != nil {
		return schedule.Request{}, &ValidationError{Details: []string{err.Error()}}
	}
	return req, nil
}

func normalizeAliases(payload map[string]any) {
	courses, ok := payload["courses"].([]any)
	if !ok {
		return
	}
	for _, c := range courses {
		course, ok := c.(map[string]any)
		if !ok {
			continue
		}
		for legacy, canonical := range courseAliases {
			v, present := course[legacy]
			if !present {
				continue
			}
			if _, exists := course[canonical]; !exists {
				course[canonical] = v
			}
			delete(course, legacy)
		}
	}
}
