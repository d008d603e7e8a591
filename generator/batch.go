package generator

import "fmt"

// OperationKinds lists the root kinds in generation order.
var OperationKinds = []OperationKind{MutationOperation, QueryOperation, SubscriptionOperation}

// FieldError records a root field whose document could not be generated.
type FieldError struct {
	Kind  OperationKind
	Field string
	Err   error
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Kind, e.Field, e.Err)
}

func (e *FieldError) Unwrap() error {
	return e.Err
}

// GenerateKind generates a document for every field of the root type of kind.
// A field that fails is reported in the returned errors and skipped; the
// remaining fields are still generated. It returns nothing when the schema has
// no root of that kind.
func GenerateKind(graph TypeGraph, kind OperationKind, opts Options) ([]*Document, []error) {
	rootType := RootTypeName(graph, kind)
	if rootType == "" {
		return nil, nil
	}

	fields, err := graph.FieldsOf(rootType)
	if err != nil {
		return nil, []error{&FieldError{Kind: kind, Err: err}}
	}

	var (
		docs []*Document
		errs []error
	)
	for _, f := range fields {
		doc, err := Assemble(graph, f.Name, rootType, opts)
		if err != nil {
			errs = append(errs, &FieldError{Kind: kind, Field: f.Name, Err: err})
			continue
		}
		docs = append(docs, doc)
	}

	return docs, errs
}

// GenerateAll runs GenerateKind for every kind in OperationKinds.
func GenerateAll(graph TypeGraph, opts Options) ([]*Document, []error) {
	var (
		docs []*Document
		errs []error
	)
	for _, kind := range OperationKinds {
		d, e := GenerateKind(graph, kind, opts)
		docs = append(docs, d...)
		errs = append(errs, e...)
	}
	return docs, errs
}
