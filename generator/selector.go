package generator

import (
	"strings"
)

const typenameField = "__typename"

// selection is the rendered text of one field. A zero selection means the
// field is omitted from its parent.
type selection struct {
	text    string
	hasArgs bool
	ok      bool
}

// fieldSelector expands fields recursively, depth-first and pre-order.
type fieldSelector struct {
	graph TypeGraph
	opts  Options
	vars  *variableCollector
}

func newFieldSelector(graph TypeGraph, opts Options, vars *variableCollector) *fieldSelector {
	return &fieldSelector{
		graph: graph,
		opts:  opts,
		vars:  vars,
	}
}

func (s *fieldSelector) indent(depth int) string {
	return strings.Repeat(" ", depth*s.opts.IndentWidth)
}

// selectField renders fieldName of ownerType at the given depth. chain holds
// the fields expanded above it.
func (s *fieldSelector) selectField(fieldName, ownerType string, chain ancestorChain, depth int) (selection, error) {
	owner, err := s.graph.ResolveType(ownerType)
	if err != nil {
		return selection{}, err
	}
	field, ok := owner.Field(fieldName)
	if !ok {
		return selection{}, &SchemaLookupError{TypeName: ownerType, FieldName: fieldName}
	}

	baseTypeName := field.Type.BaseName()

	// Cycles and depth overflow prune the whole field.
	if chain.hasType(baseTypeName) {
		return selection{}, nil
	}
	if depth > s.opts.DepthLimit {
		return selection{}, nil
	}

	fieldType, err := s.graph.ResolveType(baseTypeName)
	if err != nil {
		return selection{}, err
	}

	mark := s.vars.mark()

	var sb strings.Builder
	sb.WriteString(s.indent(depth))
	sb.WriteString(field.Name)
	if len(field.Args) > 0 {
		refs := make([]string, len(field.Args))
		for i, arg := range field.Args {
			refs[i] = arg.Name + ": $" + arg.Name
			s.vars.register(arg)
		}
		sb.WriteString("(")
		sb.WriteString(strings.Join(refs, ", "))
		sb.WriteString(")")
	}
	hasArgs := len(field.Args) > 0

	if !fieldType.IsComposite() {
		return selection{text: sb.String(), hasArgs: hasArgs, ok: true}, nil
	}

	var children []string
	if fieldType.hasFieldMap() {
		fields, err := s.graph.FieldsOf(baseTypeName)
		if err != nil {
			return selection{}, err
		}

		next := chain.push(field.Name, baseTypeName)
		for _, child := range fields {
			sel, err := s.selectField(child.Name, baseTypeName, next, depth+1)
			if err != nil {
				return selection{}, err
			}
			if !sel.ok {
				continue
			}
			children = append(children, sel.text)
			hasArgs = hasArgs || sel.hasArgs
		}
	}

	if len(children) == 0 {
		switch s.emptySelectionPolicy(depth) {
		case KeepBareField:
			return selection{text: sb.String(), hasArgs: hasArgs, ok: true}, nil
		case TypenamePlaceholder:
			children = append(children, s.indent(depth+1)+typenameField)
		default:
			s.vars.truncate(mark)
			return selection{}, nil
		}
	}

	sb.WriteString(" {\n")
	sb.WriteString(strings.Join(children, "\n"))
	sb.WriteString("\n")
	sb.WriteString(s.indent(depth))
	sb.WriteString("}")

	return selection{text: sb.String(), hasArgs: hasArgs, ok: true}, nil
}

// emptySelectionPolicy returns the configured policy, except that the root
// field is never omitted since it is the operation itself.
func (s *fieldSelector) emptySelectionPolicy(depth int) EmptySelectionPolicy {
	if depth == 1 && s.opts.EmptySelection == OmitEmptySelection {
		return TypenamePlaceholder
	}
	return s.opts.EmptySelection
}
