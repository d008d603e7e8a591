package introspection

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/goccy/go-json"
)

// ErrNoSchema is returned when an introspection result carries no __schema.
var ErrNoSchema = errors.New("introspection result has no __schema")

// ResponseError is returned when the endpoint answered with GraphQL errors.
type ResponseError struct {
	Errors []Error
}

func (e *ResponseError) Error() string {
	msgs := make([]string, len(e.Errors))
	for i, err := range e.Errors {
		msgs[i] = err.Message
	}
	return "introspection failed: " + strings.Join(msgs, "; ")
}

// document accepts both {"data":{"__schema":...}} and a bare {"__schema":...}.
type document struct {
	Data   *Data   `json:"data"`
	Errors []Error `json:"errors"`
	Schema *Schema `json:"__schema"`
}

// Decode reads an introspection result.
func Decode(r io.Reader) (*Schema, error) {
	var doc document
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("failed to decode introspection result: %w", err)
	}

	if len(doc.Errors) > 0 {
		return nil, &ResponseError{Errors: doc.Errors}
	}

	if doc.Data != nil && doc.Data.Schema != nil {
		return doc.Data.Schema, nil
	}
	if doc.Schema != nil {
		return doc.Schema, nil
	}

	return nil, ErrNoSchema
}

// DecodeFile reads an introspection result saved to a file.
func DecodeFile(path string) (*Schema, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	s, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}
