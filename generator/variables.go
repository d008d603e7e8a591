package generator

import "strings"

// VariableDecl is a variable declared by a generated operation.
type VariableDecl struct {
	Name string // without the leading "$"
	Type *TypeRef
}

func (v VariableDecl) String() string {
	return "$" + v.Name + ": " + v.Type.String()
}

// variableCollector accumulates argument definitions in encounter order. It is
// scoped to one document and never deduplicates.
type variableCollector struct {
	decls []VariableDecl
}

func (c *variableCollector) register(arg *ArgDef) {
	c.decls = append(c.decls, VariableDecl{Name: arg.Name, Type: arg.Type})
}

// mark returns a position that truncate can roll back to.
func (c *variableCollector) mark() int {
	return len(c.decls)
}

func (c *variableCollector) truncate(mark int) {
	c.decls = c.decls[:mark]
}

// render returns "$a: A, $b: B" or "" when nothing was registered.
func (c *variableCollector) render() string {
	parts := make([]string, len(c.decls))
	for i, d := range c.decls {
		parts[i] = d.String()
	}
	return strings.Join(parts, ", ")
}
