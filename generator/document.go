// Package generator synthesizes GraphQL operation documents from a schema.
//
// For a root field it renders a query, mutation or subscription that selects
// every reachable field down to scalars and declares a variable for every
// argument on the way. Expansion stops at type cycles and at a configurable
// depth, so generation terminates for any schema.
package generator

import (
	"strings"
)

// Document is a generated operation.
type Document struct {
	Kind      OperationKind
	Name      string // the root field name, also used as operation name
	OwnerType string
	Text      string
	// HasArgs reports whether the operation declares at least one variable.
	HasArgs   bool
	Variables []VariableDecl
}

// Assemble generates the operation document for rootField of ownerType.
// ownerType must be the schema's query, mutation or subscription type.
func Assemble(graph TypeGraph, rootField, ownerType string, opts Options) (*Document, error) {
	kind, err := operationKindOf(graph, ownerType)
	if err != nil {
		return nil, err
	}

	opts = opts.withDefaults()
	vars := &variableCollector{}
	sel, err := newFieldSelector(graph, opts, vars).selectField(rootField, ownerType, nil, 1)
	if err != nil {
		return nil, err
	}

	var sb strings.Builder
	sb.WriteString(kind.Keyword())
	sb.WriteString(" ")
	sb.WriteString(rootField)
	if v := vars.render(); v != "" {
		sb.WriteString("(")
		sb.WriteString(v)
		sb.WriteString(")")
	}
	sb.WriteString(" {\n")
	sb.WriteString(sel.text)
	sb.WriteString("\n}")

	return &Document{
		Kind:      kind,
		Name:      rootField,
		OwnerType: ownerType,
		Text:      sb.String(),
		HasArgs:   sel.hasArgs,
		Variables: vars.decls,
	}, nil
}
