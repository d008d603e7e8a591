package generator

import "fmt"

// SchemaLookupError is returned when a type or a field referenced during
// generation does not exist in the schema.
type SchemaLookupError struct {
	TypeName  string
	FieldName string // empty when the type itself is missing
}

func (e *SchemaLookupError) Error() string {
	if e.FieldName == "" {
		return fmt.Sprintf("type %q not found in schema", e.TypeName)
	}
	return fmt.Sprintf("field %q not found on type %q", e.FieldName, e.TypeName)
}

// ConfigurationError is returned when the owner type of a root field is none of
// the schema's root operation types.
type ConfigurationError struct {
	OwnerType string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("owner type %q matches none of query/mutation/subscription", e.OwnerType)
}
