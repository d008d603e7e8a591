package introspection

import (
	"fmt"

	"github.com/n9te9/graphql-operation-generator/generator"
)

// TypeGraph converts the introspection result into a generator.Schema. Types,
// fields and arguments keep the order of the result.
func (s *Schema) TypeGraph() (*generator.Schema, error) {
	if s.QueryType == nil || s.QueryType.Name == "" {
		return nil, fmt.Errorf("introspection result has no query type")
	}

	types := make([]*generator.TypeDef, 0, len(s.Types))
	for _, t := range s.Types {
		if t == nil || isIntrospectionType(t.Name) {
			continue
		}
		types = append(types, convertType(t))
	}

	return generator.NewSchema(
		rootName(s.QueryType),
		rootName(s.MutationType),
		rootName(s.SubscriptionType),
		types...,
	), nil
}

func rootName(r *NamedRef) string {
	if r == nil {
		return ""
	}
	return r.Name
}

func convertType(t *FullType) *generator.TypeDef {
	def := &generator.TypeDef{
		Kind: generator.TypeKind(t.Kind),
		Name: t.Name,
	}

	// Only OBJECT and INTERFACE carry selectable fields.
	if def.Kind != generator.Object && def.Kind != generator.Interface {
		return def
	}

	def.Fields = make([]*generator.FieldDef, 0, len(t.Fields))
	for _, f := range t.Fields {
		field := &generator.FieldDef{
			Name: f.Name,
			Type: convertRef(f.Type),
		}
		for _, a := range f.Args {
			field.Args = append(field.Args, &generator.ArgDef{
				Name:         a.Name,
				Type:         convertRef(a.Type),
				DefaultValue: a.DefaultValue,
			})
		}
		def.Fields = append(def.Fields, field)
	}

	return def
}

func convertRef(r *TypeRef) *generator.TypeRef {
	if r == nil {
		return nil
	}

	ref := &generator.TypeRef{Kind: generator.TypeKind(r.Kind)}
	if r.Name != nil {
		ref.Name = *r.Name
	}
	if ref.Kind == generator.List || ref.Kind == generator.NonNull {
		ref.OfType = convertRef(r.OfType)
	}
	return ref
}
