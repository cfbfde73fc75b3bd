package domain

import "fmt"

// QueryField is one default query parameter in a query profile.
type QueryField struct {
	// Name is the parameter name, e.g. "maxHits".
	Name string

	// Value is the parameter's default value. Rendered with %v.
	Value any
}

// NewQueryField creates a query profile field. The name is required.
func NewQueryField(name string, value any) (QueryField, error) {
	if name == "" {
		return QueryField{}, fmt.Errorf("%w: query field name is required", ErrInvalidArgument)
	}
	return QueryField{Name: name, Value: value}, nil
}

// QueryProfile holds named default query parameters. The package always
// deploys it under id "default" with type "root".
type QueryProfile struct {
	// Fields are the profile's parameters, in declaration order.
	Fields []QueryField
}

// NewQueryProfile creates an empty query profile.
func NewQueryProfile() QueryProfile {
	return QueryProfile{}
}

// AddFields returns a copy with the fields appended in order.
func (qp QueryProfile) AddFields(fields ...QueryField) QueryProfile {
	out := qp
	out.Fields = append(append([]QueryField{}, qp.Fields...), fields...)
	return out
}

// QueryTypeField declares the type of one query parameter, e.g.
// ("ranking.features.query(q)", "tensor<float>(x[384])").
type QueryTypeField struct {
	// Name is the declared parameter name.
	Name string

	// Type is the declared value type.
	Type string
}

// NewQueryTypeField creates a query profile type field. Name and type
// are required.
func NewQueryTypeField(name, typ string) (QueryTypeField, error) {
	if name == "" {
		return QueryTypeField{}, fmt.Errorf("%w: query type field name is required", ErrInvalidArgument)
	}
	if typ == "" {
		return QueryTypeField{}, fmt.Errorf("%w: query type field type is required", ErrInvalidArgument)
	}
	return QueryTypeField{Name: name, Type: typ}, nil
}

// QueryProfileType declares the types of query parameters. The package
// always deploys it under id "root".
type QueryProfileType struct {
	// Fields are the type declarations, in declaration order.
	Fields []QueryTypeField
}

// NewQueryProfileType creates an empty query profile type.
func NewQueryProfileType() QueryProfileType {
	return QueryProfileType{}
}

// AddFields returns a copy with the fields appended in order.
func (qt QueryProfileType) AddFields(fields ...QueryTypeField) QueryProfileType {
	out := qt
	out.Fields = append(append([]QueryTypeField{}, qt.Fields...), fields...)
	return out
}
