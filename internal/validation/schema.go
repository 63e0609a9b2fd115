package validation

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"sync"

	jsonschema "github.com/santhosh-tekuri/jsonschema/v5"
)

var (
	ErrSchemaInvalid    = errors.New("validation: schema invalid")
	ErrSchemaValidation = errors.New("validation: schema validation failed")
)

// manifestSchema is the JSON Schema every manifest must satisfy before it is
// written. Field names match the export.Manifest wire layout.
const manifestSchema = `{
  "$schema": "https://json-schema.org/draft/2020-12/schema",
  "type": "object",
  "additionalProperties": false,
  "required": ["version", "generated_at", "pages"],
  "properties": {
    "version": {"type": "integer", "minimum": 1},
    "generated_at": {"type": "string", "format": "date-time"},
    "pages": {
      "type": "array",
      "items": {
        "type": "object",
        "additionalProperties": false,
        "required": ["page_id", "slug", "path", "checksum", "block_count", "exported_at"],
        "properties": {
          "page_id": {"type": "string", "minLength": 1},
          "slug": {"type": "string", "minLength": 1},
          "title": {"type": "string"},
          "path": {"type": "string", "minLength": 1},
          "checksum": {"type": "string", "pattern": "^[0-9a-f]{64}$"},
          "block_count": {"type": "integer", "minimum": 0},
          "exported_at": {"type": "string", "format": "date-time"}
        }
      }
    }
  }
}`

// ValidationIssue captures a single validation failure.
type ValidationIssue struct {
	Location string
	Message  string
}

// PayloadValidationError surfaces validation issues with schema-aware context.
type PayloadValidationError struct {
	Issues []ValidationIssue
	Cause  error
}

func (e *PayloadValidationError) Error() string {
	if len(e.Issues) == 0 {
		if e.Cause != nil {
			return e.Cause.Error()
		}
		return ErrSchemaValidation.Error()
	}
	parts := make([]string, 0, len(e.Issues))
	for _, issue := range e.Issues {
		location := strings.TrimSpace(issue.Location)
		if location == "" {
			location = "#"
		} else if !strings.HasPrefix(location, "#") {
			location = "#" + location
		}
		if issue.Message == "" {
			parts = append(parts, location)
			continue
		}
		parts = append(parts, fmt.Sprintf("%s: %s", location, issue.Message))
	}
	return strings.Join(parts, "; ")
}

func (e *PayloadValidationError) Unwrap() error {
	return ErrSchemaValidation
}

// Issues extracts validation issues from an error.
func Issues(err error) []ValidationIssue {
	if err == nil {
		return nil
	}
	var payloadErr *PayloadValidationError
	if errors.As(err, &payloadErr) && payloadErr != nil {
		return payloadErr.Issues
	}
	var validationErr *jsonschema.ValidationError
	if errors.As(err, &validationErr) && validationErr != nil {
		return collectValidationIssues(validationErr)
	}
	return []ValidationIssue{{Message: err.Error()}}
}

var (
	manifestCompileOnce sync.Once
	compiledManifest    *jsonschema.Schema
	manifestCompileErr  error
)

// ValidateManifest checks the marshalled manifest document against the
// embedded schema. The value may be the struct itself or raw JSON bytes.
func ValidateManifest(manifest any) error {
	manifestCompileOnce.Do(func() {
		compiledManifest, manifestCompileErr = compileSchema(manifestSchema)
	})
	if manifestCompileErr != nil {
		return fmt.Errorf("%w: %v", ErrSchemaInvalid, manifestCompileErr)
	}

	payload, err := toJSONValue(manifest)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrSchemaValidation, err)
	}

	if err := compiledManifest.Validate(payload); err != nil {
		return &PayloadValidationError{
			Issues: Issues(err),
			Cause:  err,
		}
	}
	return nil
}

// toJSONValue round-trips the value through encoding/json so struct inputs
// validate identically to the bytes that end up on disk.
func toJSONValue(value any) (any, error) {
	var encoded []byte
	switch typed := value.(type) {
	case []byte:
		encoded = typed
	case json.RawMessage:
		encoded = typed
	default:
		raw, err := json.Marshal(value)
		if err != nil {
			return nil, err
		}
		encoded = raw
	}

	var decoded any
	if err := json.Unmarshal(encoded, &decoded); err != nil {
		return nil, err
	}
	return decoded, nil
}

func compileSchema(schema string) (*jsonschema.Schema, error) {
	compiler := jsonschema.NewCompiler()
	compiler.Draft = jsonschema.Draft2020
	if err := compiler.AddResource("manifest.schema.json", bytes.NewReader([]byte(schema))); err != nil {
		return nil, err
	}
	return compiler.Compile("manifest.schema.json")
}

func collectValidationIssues(err *jsonschema.ValidationError) []ValidationIssue {
	if err == nil {
		return nil
	}

	var issues []ValidationIssue
	var walk func(*jsonschema.ValidationError)
	walk = func(node *jsonschema.ValidationError) {
		if node == nil {
			return
		}
		if len(node.Causes) == 0 {
			issues = append(issues, ValidationIssue{
				Location: node.InstanceLocation,
				Message:  node.Message,
			})
			return
		}
		for _, cause := range node.Causes {
			walk(cause)
		}
	}
	walk(err)
	return issues
}
