package store

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"sort"

	"github.com/calvinalkan/jane/internal/todo"

	jsonschema "github.com/santhosh-tekuri/jsonschema/v5"
)

//go:embed todo.schema.json
var schemaJSON []byte

const schemaURL = "todo.schema.json"

var errTrailingData = errors.New("unexpected data after top-level value")

// Violation is a single schema failure in the database file.
type Violation struct {
	// Location is a JSON pointer into the document, e.g. "/0/Priority".
	// Empty for the document root.
	Location string
	Message  string
}

func (v Violation) String() string {
	loc := v.Location
	if loc == "" {
		loc = "/"
	}

	return loc + ": " + v.Message
}

// CheckResult is the outcome of [DB.Check].
type CheckResult struct {
	Tasks      int
	Violations []Violation
}

// Valid reports whether the file passed the schema.
func (r CheckResult) Valid() bool {
	return len(r.Violations) == 0
}

// Check validates the database file against the embedded JSON schema.
//
// Read and syntax errors are returned as errors wrapping [todo.ErrRead] and
// [todo.ErrParse]. Schema failures are reported in the result instead.
func (db *DB) Check() (CheckResult, error) {
	data, err := db.fs.ReadFile(db.path)
	if err != nil {
		return CheckResult{}, fmt.Errorf("%w: %w", todo.ErrRead, err)
	}

	var doc any

	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	if err := dec.Decode(&doc); err != nil {
		return CheckResult{}, fmt.Errorf("%w: %s: %w", todo.ErrParse, db.path, err)
	}

	// More() is false before a stray ']' or '}', so require a clean EOF.
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return CheckResult{}, fmt.Errorf("%w: %s: %w", todo.ErrParse, db.path, errTrailingData)
	}

	var result CheckResult
	if items, ok := doc.([]any); ok {
		result.Tasks = len(items)
	}

	schema, err := compileSchema()
	if err != nil {
		return CheckResult{}, err
	}

	if err := schema.Validate(doc); err != nil {
		var ve *jsonschema.ValidationError
		if !errors.As(err, &ve) {
			return CheckResult{}, fmt.Errorf("validate: %w", err)
		}

		result.Violations = collectViolations(ve, nil)
		sort.SliceStable(result.Violations, func(i, j int) bool {
			return result.Violations[i].Location < result.Violations[j].Location
		})
	}

	return result, nil
}

func compileSchema() (*jsonschema.Schema, error) {
	compiler := jsonschema.NewCompiler()

	if err := compiler.AddResource(schemaURL, bytes.NewReader(schemaJSON)); err != nil {
		return nil, fmt.Errorf("load schema: %w", err)
	}

	schema, err := compiler.Compile(schemaURL)
	if err != nil {
		return nil, fmt.Errorf("compile schema: %w", err)
	}

	return schema, nil
}

// collectViolations flattens the leaf causes of a validation error.
func collectViolations(err *jsonschema.ValidationError, out []Violation) []Violation {
	if len(err.Causes) == 0 {
		return append(out, Violation{Location: err.InstanceLocation, Message: err.Message})
	}

	for _, cause := range err.Causes {
		out = collectViolations(cause, out)
	}

	return out
}
