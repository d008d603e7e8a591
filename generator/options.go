package generator

import "fmt"

const (
	DefaultDepthLimit  = 100
	DefaultIndentWidth = 2
)

// EmptySelectionPolicy decides what happens to a composite field whose every
// child was pruned by the cycle or depth checks.
type EmptySelectionPolicy int

const (
	// OmitEmptySelection drops the field and the variables its subtree introduced.
	OmitEmptySelection EmptySelectionPolicy = iota
	// KeepBareField renders the field name without a selection set.
	KeepBareField
	// TypenamePlaceholder selects __typename so the selection set is never empty.
	TypenamePlaceholder
)

// ParseEmptySelectionPolicy parses the config spelling of a policy.
func ParseEmptySelectionPolicy(s string) (EmptySelectionPolicy, error) {
	switch s {
	case "", "omit":
		return OmitEmptySelection, nil
	case "bare":
		return KeepBareField, nil
	case "typename":
		return TypenamePlaceholder, nil
	}
	return 0, fmt.Errorf("unknown empty selection policy %q (want omit, bare or typename)", s)
}

func (p EmptySelectionPolicy) String() string {
	switch p {
	case KeepBareField:
		return "bare"
	case TypenamePlaceholder:
		return "typename"
	default:
		return "omit"
	}
}

// Options configures document generation.
type Options struct {
	// DepthLimit is the deepest nesting level a field may be rendered at. The
	// root field is at level 1.
	DepthLimit     int
	IndentWidth    int
	EmptySelection EmptySelectionPolicy
}

// DefaultOptions returns the options used when none are configured.
func DefaultOptions() Options {
	return Options{
		DepthLimit:     DefaultDepthLimit,
		IndentWidth:    DefaultIndentWidth,
		EmptySelection: OmitEmptySelection,
	}
}

func (o Options) withDefaults() Options {
	if o.DepthLimit <= 0 {
		o.DepthLimit = DefaultDepthLimit
	}
	if o.IndentWidth <= 0 {
		o.IndentWidth = DefaultIndentWidth
	}
	return o
}

// OperationKind is the kind of a generated operation.
type OperationKind string

const (
	QueryOperation        OperationKind = "query"
	MutationOperation     OperationKind = "mutation"
	SubscriptionOperation OperationKind = "subscription"
)

// Keyword returns the keyword the operation document starts with.
func (k OperationKind) Keyword() string {
	return string(k)
}

// Plural returns the plural used in progress messages, e.g. "queries".
func (k OperationKind) Plural() string {
	if k == QueryOperation {
		return "queries"
	}
	return string(k) + "s"
}

// RootTypeName returns the name of the root type for kind, or "" when the
// schema has no such root.
func RootTypeName(graph TypeGraph, kind OperationKind) string {
	switch kind {
	case QueryOperation:
		return graph.QueryTypeName()
	case MutationOperation:
		return graph.MutationTypeName()
	case SubscriptionOperation:
		return graph.SubscriptionTypeName()
	}
	return ""
}

// operationKindOf matches ownerType against the schema's root types.
func operationKindOf(graph TypeGraph, ownerType string) (OperationKind, error) {
	if ownerType != "" {
		switch ownerType {
		case graph.QueryTypeName():
			return QueryOperation, nil
		case graph.MutationTypeName():
			return MutationOperation, nil
		case graph.SubscriptionTypeName():
			return SubscriptionOperation, nil
		}
	}
	return "", &ConfigurationError{OwnerType: ownerType}
}
