// Package sdl builds a generator.Schema from GraphQL schema definition files.
package sdl

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/n9te9/graphql-operation-generator/generator"
	"github.com/vektah/gqlparser/v2"
	"github.com/vektah/gqlparser/v2/ast"
)

// Load parses and merges the given SDL files.
func Load(paths ...string) (*generator.Schema, error) {
	sources := make([]*ast.Source, 0, len(paths))
	for _, p := range paths {
		src, err := os.ReadFile(p)
		if err != nil {
			return nil, err
		}
		sources = append(sources, &ast.Source{Name: p, Input: string(src)})
	}
	return load(sources...)
}

// Parse parses a single SDL document.
func Parse(name, src string) (*generator.Schema, error) {
	return load(&ast.Source{Name: name, Input: src})
}

func load(sources ...*ast.Source) (*generator.Schema, error) {
	s, err := gqlparser.LoadSchema(sources...)
	if err != nil {
		return nil, fmt.Errorf("failed to load schema: %w", err)
	}
	return convertSchema(s), nil
}

func convertSchema(s *ast.Schema) *generator.Schema {
	names := make([]string, 0, len(s.Types))
	for name := range s.Types {
		if isMeta(name) {
			continue
		}
		names = append(names, name)
	}
	// Types is a map; sort for a stable registration order.
	sort.Strings(names)

	types := make([]*generator.TypeDef, 0, len(names))
	for _, name := range names {
		types = append(types, convertDefinition(s, s.Types[name]))
	}

	return generator.NewSchema(
		definitionName(s.Query),
		definitionName(s.Mutation),
		definitionName(s.Subscription),
		types...,
	)
}

func definitionName(def *ast.Definition) string {
	if def == nil {
		return ""
	}
	return def.Name
}

func convertDefinition(s *ast.Schema, def *ast.Definition) *generator.TypeDef {
	t := &generator.TypeDef{
		Kind: generator.TypeKind(def.Kind),
		Name: def.Name,
	}
	if def.Kind != ast.Object && def.Kind != ast.Interface {
		return t
	}

	for _, f := range def.Fields {
		// gqlparser adds __schema and __type to the query root.
		if isMeta(f.Name) {
			continue
		}
		field := &generator.FieldDef{
			Name: f.Name,
			Type: convertType(s, f.Type),
		}
		for _, a := range f.Arguments {
			arg := &generator.ArgDef{
				Name: a.Name,
				Type: convertType(s, a.Type),
			}
			if a.DefaultValue != nil {
				v := a.DefaultValue.String()
				arg.DefaultValue = &v
			}
			field.Args = append(field.Args, arg)
		}
		t.Fields = append(t.Fields, field)
	}
	return t
}

func convertType(s *ast.Schema, t *ast.Type) *generator.TypeRef {
	var ref *generator.TypeRef
	if t.Elem != nil {
		ref = generator.ListOf(convertType(s, t.Elem))
	} else {
		kind := generator.Scalar
		if def, ok := s.Types[t.NamedType]; ok {
			kind = generator.TypeKind(def.Kind)
		}
		ref = generator.Named(kind, t.NamedType)
	}

	if t.NonNull {
		ref = generator.NonNullOf(ref)
	}
	return ref
}

func isMeta(name string) bool {
	return strings.HasPrefix(name, "__")
}
