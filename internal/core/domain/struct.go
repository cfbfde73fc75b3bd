package domain

import "fmt"

// Struct is a named composite type declared inside a document. It composes
// an ordered list of fields; structs do not nest struct-fields.
type Struct struct {
	// Name is unique within a Document.
	Name string

	// Fields are the composed fields, in declaration order.
	Fields []Field
}

// NewStruct creates a struct type. The name is required.
func NewStruct(name string) (Struct, error) {
	if name == "" {
		return Struct{}, fmt.Errorf("%w: struct name is required", ErrInvalidArgument)
	}
	return Struct{Name: name}, nil
}

// AddFields returns a copy with the fields appended in order.
func (s Struct) AddFields(fields ...Field) Struct {
	out := s
	out.Fields = append(append([]Field{}, s.Fields...), fields...)
	return out
}
