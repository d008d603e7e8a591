package generator

import "strings"

// TypeKind is the introspection kind of a type.
type TypeKind string

const (
	Scalar      TypeKind = "SCALAR"
	Object      TypeKind = "OBJECT"
	Interface   TypeKind = "INTERFACE"
	Union       TypeKind = "UNION"
	Enum        TypeKind = "ENUM"
	InputObject TypeKind = "INPUT_OBJECT"
	List        TypeKind = "LIST"
	NonNull     TypeKind = "NON_NULL"
)

// TypeRef references a type. LIST and NON_NULL refs wrap OfType, every other
// kind carries the name of the referenced type.
type TypeRef struct {
	Kind   TypeKind
	Name   string
	OfType *TypeRef
}

// Named returns a reference to the named type of the given kind.
func Named(kind TypeKind, name string) *TypeRef {
	return &TypeRef{Kind: kind, Name: name}
}

// NonNullOf wraps t in a NON_NULL ref.
func NonNullOf(t *TypeRef) *TypeRef {
	return &TypeRef{Kind: NonNull, OfType: t}
}

// ListOf wraps t in a LIST ref.
func ListOf(t *TypeRef) *TypeRef {
	return &TypeRef{Kind: List, OfType: t}
}

// BaseName returns the name of the named type after unwrapping every LIST and
// NON_NULL wrapper.
func (t *TypeRef) BaseName() string {
	for t != nil {
		if t.Kind != List && t.Kind != NonNull {
			return t.Name
		}
		t = t.OfType
	}
	return ""
}

// String renders the type signature, e.g. "[ID!]!".
func (t *TypeRef) String() string {
	var sb strings.Builder
	t.write(&sb)
	return sb.String()
}

func (t *TypeRef) write(sb *strings.Builder) {
	if t == nil {
		return
	}
	switch t.Kind {
	case NonNull:
		t.OfType.write(sb)
		sb.WriteString("!")
	case List:
		sb.WriteString("[")
		t.OfType.write(sb)
		sb.WriteString("]")
	default:
		sb.WriteString(t.Name)
	}
}

// ArgDef is an argument declared on a field.
type ArgDef struct {
	Name         string
	Type         *TypeRef
	DefaultValue *string // never rendered into variable declarations
}

// FieldDef is a field of an object or interface type. Args keep schema
// declaration order.
type FieldDef struct {
	Name string
	Type *TypeRef
	Args []*ArgDef
}

// TypeDef is a named type of the schema. Fields keep schema declaration order.
type TypeDef struct {
	Kind   TypeKind
	Name   string
	Fields []*FieldDef
}

// Field returns the field with the given name. It only reads t, so one
// TypeDef can serve concurrent generations.
func (t *TypeDef) Field(name string) (*FieldDef, bool) {
	for _, f := range t.Fields {
		if f.Name == name {
			return f, true
		}
	}
	return nil, false
}

// IsComposite reports whether a selection set is required on fields of this type.
func (t *TypeDef) IsComposite() bool {
	switch t.Kind {
	case Object, Interface, Union:
		return true
	}
	return false
}

// hasFieldMap reports whether the type exposes fields that can be selected.
func (t *TypeDef) hasFieldMap() bool {
	return t.Kind == Object || t.Kind == Interface
}

// TypeGraph is a read-only view over a schema.
type TypeGraph interface {
	// ResolveType returns the named type or a *SchemaLookupError.
	ResolveType(name string) (*TypeDef, error)
	// FieldsOf returns the fields of the named type in declaration order.
	FieldsOf(typeName string) ([]*FieldDef, error)
	QueryTypeName() string
	MutationTypeName() string
	SubscriptionTypeName() string
}

// Schema is the in-memory TypeGraph built from an introspection result or SDL.
type Schema struct {
	queryType        string
	mutationType     string
	subscriptionType string

	types []*TypeDef
	index map[string]*TypeDef
}

var _ TypeGraph = (*Schema)(nil)

// NewSchema creates a Schema. Empty root names mean the schema has no such root.
// A later type with the same name replaces an earlier one.
func NewSchema(query, mutation, subscription string, types ...*TypeDef) *Schema {
	s := &Schema{
		queryType:        query,
		mutationType:     mutation,
		subscriptionType: subscription,
		index:            make(map[string]*TypeDef, len(types)),
	}
	for _, t := range types {
		s.AddType(t)
	}
	return s
}

// AddType registers t, replacing a type of the same name.
func (s *Schema) AddType(t *TypeDef) {
	if _, exists := s.index[t.Name]; !exists {
		s.types = append(s.types, t)
	} else {
		for i, existing := range s.types {
			if existing.Name == t.Name {
				s.types[i] = t
			}
		}
	}
	s.index[t.Name] = t
}

// Types returns every type in registration order.
func (s *Schema) Types() []*TypeDef {
	return s.types
}

func (s *Schema) ResolveType(name string) (*TypeDef, error) {
	t, ok := s.index[name]
	if !ok {
		return nil, &SchemaLookupError{TypeName: name}
	}
	return t, nil
}

func (s *Schema) FieldsOf(typeName string) ([]*FieldDef, error) {
	t, err := s.ResolveType(typeName)
	if err != nil {
		return nil, err
	}
	return t.Fields, nil
}

func (s *Schema) QueryTypeName() string        { return s.queryType }
func (s *Schema) MutationTypeName() string     { return s.mutationType }
func (s *Schema) SubscriptionTypeName() string { return s.subscriptionType }
