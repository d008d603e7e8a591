// Package introspection fetches and decodes GraphQL introspection results and
// converts them into a generator.Schema.
package introspection

import "strings"

// Response is the body returned by an endpoint for the introspection query.
type Response struct {
	Data   *Data   `json:"data"`
	Errors []Error `json:"errors"`
}

type Data struct {
	Schema *Schema `json:"__schema"`
}

// Error is one entry of a GraphQL errors array.
type Error struct {
	Message string `json:"message"`
}

type Schema struct {
	QueryType        *NamedRef   `json:"queryType"`
	MutationType     *NamedRef   `json:"mutationType"`
	SubscriptionType *NamedRef   `json:"subscriptionType"`
	Types            []*FullType `json:"types"`
}

type NamedRef struct {
	Name string `json:"name"`
}

type FullType struct {
	Kind        string  `json:"kind"`
	Name        string  `json:"name"`
	Description *string `json:"description"`

	// OBJECT and INTERFACE only
	Fields []*Field `json:"fields"`

	// INPUT_OBJECT only
	InputFields []*InputValue `json:"inputFields"`

	// OBJECT and INTERFACE only
	Interfaces []*TypeRef `json:"interfaces"`

	// ENUM only
	EnumValues []*EnumValue `json:"enumValues"`

	// INTERFACE and UNION only
	PossibleTypes []*TypeRef `json:"possibleTypes"`
}

type Field struct {
	Name              string        `json:"name"`
	Description       *string       `json:"description"`
	Args              []*InputValue `json:"args"`
	Type              *TypeRef      `json:"type"`
	IsDeprecated      bool          `json:"isDeprecated"`
	DeprecationReason *string       `json:"deprecationReason"`
}

type InputValue struct {
	Name         string   `json:"name"`
	Description  *string  `json:"description"`
	Type         *TypeRef `json:"type"`
	DefaultValue *string  `json:"defaultValue"`
}

type EnumValue struct {
	Name              string  `json:"name"`
	Description       *string `json:"description"`
	IsDeprecated      bool    `json:"isDeprecated"`
	DeprecationReason *string `json:"deprecationReason"`
}

// TypeRef is a possibly wrapped type reference. Name is nil for LIST and
// NON_NULL.
type TypeRef struct {
	Kind   string   `json:"kind"`
	Name   *string  `json:"name"`
	OfType *TypeRef `json:"ofType"`
}

// isIntrospectionType reports whether name is one of the __ meta types.
func isIntrospectionType(name string) bool {
	return strings.HasPrefix(name, "__")
}
