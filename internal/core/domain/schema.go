package domain

import (
	"fmt"
	"regexp"
)

// namePattern is the identifier shape required of schema and
// application-package names.
var namePattern = regexp.MustCompile(`^[A-Za-z0-9_]+$`)

// ValidName reports whether name is a legal schema or package name.
func ValidName(name string) bool {
	return namePattern.MatchString(name)
}

// FieldSet is a named group of fields searched together as a unit.
type FieldSet struct {
	// Name identifies the fieldset; "default" is the one used when a
	// query names no fieldset.
	Name string

	// Fields are the member field names.
	Fields []string
}

// NewFieldSet creates a fieldset. The name is required.
func NewFieldSet(name string, fields ...string) (FieldSet, error) {
	if name == "" {
		return FieldSet{}, fmt.Errorf("%w: fieldset name is required", ErrInvalidArgument)
	}
	return FieldSet{Name: name, Fields: fields}, nil
}

// ImportedField makes a field of a referenced document type available in
// this schema. The reference is resolved by name at render time only;
// existence of the referenced field is not validated here.
type ImportedField struct {
	// Name is the field's name in the importing schema.
	Name string

	// Reference is the reference field in this schema's document.
	Reference string

	// ReferenceField is the field imported from the referenced type.
	ReferenceField string
}

// NewImportedField creates an imported-field declaration. All three
// names are required.
func NewImportedField(name, reference, referenceField string) (ImportedField, error) {
	if name == "" {
		return ImportedField{}, fmt.Errorf("%w: imported field name is required", ErrInvalidArgument)
	}
	if reference == "" {
		return ImportedField{}, fmt.Errorf("%w: imported field reference is required", ErrInvalidArgument)
	}
	if referenceField == "" {
		return ImportedField{}, fmt.Errorf("%w: imported field reference field is required", ErrInvalidArgument)
	}
	return ImportedField{Name: name, Reference: reference, ReferenceField: referenceField}, nil
}

// DocumentSummary is a named summary class of a schema.
type DocumentSummary struct {
	// Name identifies the summary class.
	Name string

	// Inherits names a parent summary class. Optional.
	Inherits string

	// Summaries are the summary field specifications, in order.
	Summaries []Summary

	// FromDisk marks the summary as served from disk.
	FromDisk bool

	// OmitSummaryFields suppresses the schema's implicit summary fields.
	OmitSummaryFields bool
}

// NewDocumentSummary creates a document summary. The name is required.
func NewDocumentSummary(name string) (DocumentSummary, error) {
	if name == "" {
		return DocumentSummary{}, fmt.Errorf("%w: document summary name is required", ErrInvalidArgument)
	}
	return DocumentSummary{Name: name}, nil
}

// WithInherits returns a copy inheriting from the named summary class.
func (ds DocumentSummary) WithInherits(parent string) DocumentSummary {
	ds.Inherits = parent
	return ds
}

// WithSummaries returns a copy with the summary fields set.
func (ds DocumentSummary) WithSummaries(summaries ...Summary) DocumentSummary {
	ds.Summaries = summaries
	return ds
}

// WithFromDisk returns a copy with the from-disk marker set.
func (ds DocumentSummary) WithFromDisk() DocumentSummary {
	ds.FromDisk = true
	return ds
}

// WithOmitSummaryFields returns a copy with the omit marker set.
func (ds DocumentSummary) WithOmitSummaryFields() DocumentSummary {
	ds.OmitSummaryFields = true
	return ds
}

// Schema is a named document type plus its indexing, ranking and summary
// configuration.
type Schema struct {
	// Name is the schema name. Must match ^[A-Za-z0-9_]+$.
	Name string

	// Document is the schema's stored record shape.
	Document Document

	// FieldSets are keyed by name, last write wins.
	FieldSets OrderedMap[FieldSet]

	// RankProfiles are keyed by name, last write wins.
	RankProfiles OrderedMap[RankProfile]

	// Models are ONNX model references, most recently added first.
	Models []OnnxModel

	// DocumentSummaries are summary classes, most recently added first.
	DocumentSummaries []DocumentSummary

	// ImportedFields are keyed by name, last write wins.
	ImportedFields OrderedMap[ImportedField]

	// GlobalDocument distributes the document to every content node.
	GlobalDocument bool
}

// NewSchema creates a schema wrapping the given document.
func NewSchema(name string, doc Document) (Schema, error) {
	if name == "" {
		return Schema{}, fmt.Errorf("%w: schema name is required", ErrInvalidArgument)
	}
	if !ValidName(name) {
		return Schema{}, fmt.Errorf("%w: schema name %q must match %s", ErrInvalidArgument, name, namePattern)
	}
	return Schema{
		Name:           name,
		Document:       doc,
		FieldSets:      NewOrderedMap[FieldSet](),
		RankProfiles:   NewOrderedMap[RankProfile](),
		ImportedFields: NewOrderedMap[ImportedField](),
	}, nil
}

// WithGlobalDocument returns a copy with the global-document flag set.
func (s Schema) WithGlobalDocument(global bool) Schema {
	s.GlobalDocument = global
	return s
}

// AddFields returns a copy whose document has the fields merged in.
func (s Schema) AddFields(fields ...Field) Schema {
	s.Document = s.Document.AddFields(fields...)
	return s
}

// AddFieldSet returns a copy with the fieldset merged in, last write wins.
func (s Schema) AddFieldSet(fs FieldSet) Schema {
	s.FieldSets = s.FieldSets.Put(fs.Name, fs)
	return s
}

// AddRankProfile returns a copy with the rank profile merged in, last
// write wins.
func (s Schema) AddRankProfile(rp RankProfile) Schema {
	s.RankProfiles = s.RankProfiles.Put(rp.Name, rp)
	return s
}

// AddModel returns a copy with the model prepended, so the most recently
// added model renders first.
func (s Schema) AddModel(m OnnxModel) Schema {
	s.Models = append([]OnnxModel{m}, s.Models...)
	return s
}

// AddDocumentSummary returns a copy with the summary class prepended, so
// the most recently added class renders first.
func (s Schema) AddDocumentSummary(ds DocumentSummary) Schema {
	s.DocumentSummaries = append([]DocumentSummary{ds}, s.DocumentSummaries...)
	return s
}

// AddImportedField returns a copy with the imported field merged in, last
// write wins.
func (s Schema) AddImportedField(imp ImportedField) Schema {
	s.ImportedFields = s.ImportedFields.Put(imp.Name, imp)
	return s
}
