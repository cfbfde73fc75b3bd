package domain

// Document is the set of fields and structs composing one schema's stored
// record shape.
type Document struct {
	// Fields are the document's fields, keyed by name. Inserting a
	// field under an existing name overwrites it (last write wins).
	Fields OrderedMap[Field]

	// Structs are the document's struct types, keyed by name.
	Structs OrderedMap[Struct]

	// Inherits lists parent document-type names, in declaration order.
	Inherits []string
}

// NewDocument creates an empty document.
func NewDocument(inherits ...string) Document {
	return Document{
		Fields:   NewOrderedMap[Field](),
		Structs:  NewOrderedMap[Struct](),
		Inherits: inherits,
	}
}

// AddFields returns a copy with the fields merged into the name-keyed
// collection. A field with an existing name overwrites the previous one.
func (d Document) AddFields(fields ...Field) Document {
	out := d
	for _, f := range fields {
		out.Fields = out.Fields.Put(f.Name, f)
	}
	return out
}

// AddStructs returns a copy with the structs merged in, last write wins.
func (d Document) AddStructs(structs ...Struct) Document {
	out := d
	for _, s := range structs {
		out.Structs = out.Structs.Put(s.Name, s)
	}
	return out
}
