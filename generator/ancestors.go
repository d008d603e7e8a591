package generator

// ancestorFrame is one step of the path from the document root.
type ancestorFrame struct {
	fieldName string
	typeName  string
}

// ancestorChain is the path from the root to the field being expanded. push
// never mutates the receiver, so siblings never see each other's frames.
type ancestorChain []ancestorFrame

func (c ancestorChain) push(fieldName, typeName string) ancestorChain {
	next := make(ancestorChain, len(c), len(c)+1)
	copy(next, c)
	return append(next, ancestorFrame{fieldName: fieldName, typeName: typeName})
}

// hasType reports whether typeName was already expanded on this path.
func (c ancestorChain) hasType(typeName string) bool {
	for _, f := range c {
		if f.typeName == typeName {
			return true
		}
	}
	return false
}
