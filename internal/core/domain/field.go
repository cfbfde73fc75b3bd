package domain

import "fmt"

// MatchKind discriminates the two shapes a match entry can take.
type MatchKind int

const (
	// MatchBare is a single token, e.g. "exact".
	MatchBare MatchKind = iota

	// MatchPair is a key/value setting, e.g. "exact-terminator: @@".
	MatchPair
)

// MatchEntry is one entry of a field's match block.
// It is a tagged variant: either a bare token or a key/value pair.
type MatchEntry struct {
	// Kind selects between the bare and pair forms.
	Kind MatchKind

	// Token is the bare token. Set only when Kind is MatchBare.
	Token string

	// Key and Value form the pair. Set only when Kind is MatchPair.
	Key   string
	Value string
}

// NewMatchBare creates a bare match token.
func NewMatchBare(token string) MatchEntry {
	return MatchEntry{Kind: MatchBare, Token: token}
}

// NewMatchPair creates a key/value match setting.
func NewMatchPair(key, value string) MatchEntry {
	return MatchEntry{Kind: MatchPair, Key: key, Value: value}
}

// Default HNSW parameters, matching the engine's own defaults.
const (
	DefaultHNSWMaxLinksPerNode            = 16
	DefaultHNSWNeighborsToExploreAtInsert = 200
)

// HNSW holds approximate-nearest-neighbour index parameters for a
// vector field.
type HNSW struct {
	// DistanceMetric selects the metric, e.g. "euclidean" or "angular".
	DistanceMetric string

	// MaxLinksPerNode bounds graph connectivity per node.
	MaxLinksPerNode int

	// NeighborsToExploreAtInsert is the insertion search breadth.
	NeighborsToExploreAtInsert int
}

// NewHNSW creates HNSW parameters. The distance metric is required;
// non-positive connectivity parameters fall back to the engine defaults.
func NewHNSW(distanceMetric string, maxLinksPerNode, neighborsToExploreAtInsert int) (HNSW, error) {
	if distanceMetric == "" {
		return HNSW{}, fmt.Errorf("%w: hnsw distance metric is required", ErrInvalidArgument)
	}
	if maxLinksPerNode <= 0 {
		maxLinksPerNode = DefaultHNSWMaxLinksPerNode
	}
	if neighborsToExploreAtInsert <= 0 {
		neighborsToExploreAtInsert = DefaultHNSWNeighborsToExploreAtInsert
	}
	return HNSW{
		DistanceMetric:             distanceMetric,
		MaxLinksPerNode:            maxLinksPerNode,
		NeighborsToExploreAtInsert: neighborsToExploreAtInsert,
	}, nil
}

// Summary describes a summary specification attached to a field or to a
// document summary. All parts are optional; an empty Summary still renders
// as an empty block.
type Summary struct {
	// Name is the summary name. Optional.
	Name string

	// Type is the summary value type. Optional.
	Type string

	// Fields are the body lines of the summary block, e.g. "dynamic"
	// or "source: title".
	Fields []string
}

// NewSummary creates a summary specification.
func NewSummary(name, typ string, fields ...string) Summary {
	return Summary{Name: name, Type: typ, Fields: fields}
}

// Field is one field of a document. Name and Type are required; every
// other part is optional and absent unless set through a With method.
type Field struct {
	// Name is unique within a Document.
	Name string

	// Type is the field's primitive or composite type name,
	// e.g. "string" or "tensor<float>(x[384])".
	Type string

	// Indexing holds the indexing directives in order. Order is
	// significant; the directives render joined with " | ".
	Indexing []string

	// Attribute holds bare attribute flags, e.g. "fast-search".
	Attribute []string

	// Index is the index directive, e.g. "enable-bm25".
	Index string

	// Ann holds ANN/HNSW parameters for vector fields.
	Ann *HNSW

	// Match holds the entries of the match block.
	Match []MatchEntry

	// Weight is the field weight. Nil means not set.
	Weight *int

	// Bolding enables result bolding. Nil means not set.
	Bolding *bool

	// Summary is the field's summary specification.
	Summary *Summary

	// Stemming selects the stemming mode, e.g. "shortest".
	Stemming string

	// Rank is the rank directive, e.g. "filter".
	Rank string

	// QueryCommand holds query-command lines.
	QueryCommand []string

	// StructFields are nested struct-fields, keyed by name.
	StructFields OrderedMap[StructField]
}

// NewField creates a field. Name and type are required.
func NewField(name, typ string) (Field, error) {
	if name == "" {
		return Field{}, fmt.Errorf("%w: field name is required", ErrInvalidArgument)
	}
	if typ == "" {
		return Field{}, fmt.Errorf("%w: field type is required", ErrInvalidArgument)
	}
	return Field{Name: name, Type: typ, StructFields: NewOrderedMap[StructField]()}, nil
}

// WithIndexing returns a copy with the indexing directives set.
func (f Field) WithIndexing(directives ...string) Field {
	f.Indexing = directives
	return f
}

// WithAttribute returns a copy with the attribute flags set.
func (f Field) WithAttribute(flags ...string) Field {
	f.Attribute = flags
	return f
}

// WithIndex returns a copy with the index directive set.
func (f Field) WithIndex(directive string) Field {
	f.Index = directive
	return f
}

// WithAnn returns a copy with ANN/HNSW parameters set.
func (f Field) WithAnn(h HNSW) Field {
	f.Ann = &h
	return f
}

// WithMatch returns a copy with the match entries set.
func (f Field) WithMatch(entries ...MatchEntry) Field {
	f.Match = entries
	return f
}

// WithWeight returns a copy with the field weight set.
func (f Field) WithWeight(w int) Field {
	f.Weight = &w
	return f
}

// WithBolding returns a copy with the bolding flag set.
func (f Field) WithBolding(b bool) Field {
	f.Bolding = &b
	return f
}

// WithSummary returns a copy with the summary specification set.
func (f Field) WithSummary(s Summary) Field {
	f.Summary = &s
	return f
}

// WithStemming returns a copy with the stemming mode set.
func (f Field) WithStemming(mode string) Field {
	f.Stemming = mode
	return f
}

// WithRank returns a copy with the rank directive set.
func (f Field) WithRank(directive string) Field {
	f.Rank = directive
	return f
}

// WithQueryCommand returns a copy with the query-command lines set.
func (f Field) WithQueryCommand(commands ...string) Field {
	f.QueryCommand = commands
	return f
}

// AddStructField returns a copy with the struct-field merged in.
// A struct-field with the same name is overwritten.
func (f Field) AddStructField(sf StructField) Field {
	f.StructFields = f.StructFields.Put(sf.Name, sf)
	return f
}

// StructField is a field scoped inside a Field or a Struct. It carries the
// same optional parts as Field minus the type and the parts that only make
// sense on top-level fields (ANN, weight, bolding, rank).
type StructField struct {
	// Name identifies the struct-field within its parent.
	Name string

	// Indexing holds the indexing directives in order.
	Indexing []string

	// Attribute holds bare attribute flags.
	Attribute []string

	// Match holds the entries of the match block.
	Match []MatchEntry

	// Summary is the struct-field's summary specification.
	Summary *Summary

	// QueryCommand holds query-command lines.
	QueryCommand []string
}

// NewStructField creates a struct-field. The name is required.
func NewStructField(name string) (StructField, error) {
	if name == "" {
		return StructField{}, fmt.Errorf("%w: struct-field name is required", ErrInvalidArgument)
	}
	return StructField{Name: name}, nil
}

// WithIndexing returns a copy with the indexing directives set.
func (sf StructField) WithIndexing(directives ...string) StructField {
	sf.Indexing = directives
	return sf
}

// WithAttribute returns a copy with the attribute flags set.
func (sf StructField) WithAttribute(flags ...string) StructField {
	sf.Attribute = flags
	return sf
}

// WithMatch returns a copy with the match entries set.
func (sf StructField) WithMatch(entries ...MatchEntry) StructField {
	sf.Match = entries
	return sf
}

// WithSummary returns a copy with the summary specification set.
func (sf StructField) WithSummary(s Summary) StructField {
	sf.Summary = &s
	return sf
}

// WithQueryCommand returns a copy with the query-command lines set.
func (sf StructField) WithQueryCommand(commands ...string) StructField {
	sf.QueryCommand = commands
	return sf
}
