// Package output writes generated operation documents to disk.
package output

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/n9te9/goliteql/query"
	"github.com/n9te9/graphql-operation-generator/generator"
)

const fileExt = ".gql"

// InvalidDocumentError reports a generated document that does not parse.
type InvalidDocumentError struct {
	Path string
	Err  error
}

func (e *InvalidDocumentError) Error() string {
	return fmt.Sprintf("generated document %s is invalid: %v", e.Path, e.Err)
}

func (e *InvalidDocumentError) Unwrap() error {
	return e.Err
}

// Writer lays documents out as <Root>/<kind>/<field>.gql.
type Writer struct {
	Root     string
	Validate bool

	created map[generator.OperationKind]bool
}

func NewWriter(dir, genDir string, validate bool) *Writer {
	return &Writer{
		Root:     filepath.Join(dir, genDir),
		Validate: validate,
	}
}

// Prepare clears Root and creates it again. Files from a previous run never survive.
func (w *Writer) Prepare() error {
	if err := os.MkdirAll(filepath.Dir(w.Root), 0o755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}
	if err := os.RemoveAll(w.Root); err != nil {
		return fmt.Errorf("failed to clear %s: %w", w.Root, err)
	}
	if err := os.MkdirAll(w.Root, 0o755); err != nil {
		return fmt.Errorf("failed to create %s: %w", w.Root, err)
	}
	w.created = make(map[generator.OperationKind]bool)
	return nil
}

// Path returns the file doc is written to.
func (w *Writer) Path(doc *generator.Document) string {
	return filepath.Join(w.Root, string(doc.Kind), doc.Name+fileExt)
}

// Write stores doc, creating its kind directory on first use.
func (w *Writer) Write(doc *generator.Document) (string, error) {
	path := w.Path(doc)

	if w.Validate {
		if err := validate(doc); err != nil {
			return "", &InvalidDocumentError{Path: path, Err: err}
		}
	}

	if w.created == nil {
		w.created = make(map[generator.OperationKind]bool)
	}
	if !w.created[doc.Kind] {
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return "", fmt.Errorf("failed to create %s: %w", filepath.Dir(path), err)
		}
		w.created[doc.Kind] = true
	}

	if err := os.WriteFile(path, []byte(doc.Text), 0o644); err != nil {
		return "", fmt.Errorf("failed to write %s: %w", path, err)
	}
	return path, nil
}

func validate(doc *generator.Document) error {
	parsed, err := query.NewParser(query.NewLexer()).Parse([]byte(doc.Text))
	if err != nil {
		return err
	}

	var op *query.Operation
	switch doc.Kind {
	case generator.QueryOperation:
		op = parsed.Operations.GetQuery()
	case generator.MutationOperation:
		op = parsed.Operations.GetMutation()
	case generator.SubscriptionOperation:
		op = parsed.Operations.GetSubscription()
	}
	if op == nil {
		return fmt.Errorf("no %s operation in document", doc.Kind)
	}
	return nil
}
