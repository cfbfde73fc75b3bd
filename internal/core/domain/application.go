package domain

import "fmt"

// Validation allows a normally rejected configuration change until a
// given date. Rendered into validation-overrides.xml.
type Validation struct {
	// ID is the validation-override identifier, e.g. "schema-removal".
	ID string

	// Until is the expiry date, ISO formatted ("2026-09-30").
	Until string

	// Comment explains why the override exists. Optional.
	Comment string
}

// NewValidation creates a validation override. ID and expiry date are
// required.
func NewValidation(id, until, comment string) (Validation, error) {
	if id == "" {
		return Validation{}, fmt.Errorf("%w: validation id is required", ErrInvalidArgument)
	}
	if until == "" {
		return Validation{}, fmt.Errorf("%w: validation until date is required", ErrInvalidArgument)
	}
	return Validation{ID: id, Until: until, Comment: comment}, nil
}

// ApplicationConfiguration is a generic engine config entry embedded in
// the services descriptor. Map values recurse into nested elements;
// scalar values render as a single leaf element.
type ApplicationConfiguration struct {
	// Name is the config definition name, e.g.
	// "container.handler.observability.application-userdata".
	Name string

	// Value holds the config body. Values may be scalars or nested
	// map[string]any.
	Value map[string]any
}

// NewApplicationConfiguration creates a generic config entry. The name
// is required.
func NewApplicationConfiguration(name string, value map[string]any) (ApplicationConfiguration, error) {
	if name == "" {
		return ApplicationConfiguration{}, fmt.Errorf("%w: configuration name is required", ErrInvalidArgument)
	}
	return ApplicationConfiguration{Name: name, Value: value}, nil
}

// PackageOption customises ApplicationPackage construction.
type PackageOption func(*packageOptions)

type packageOptions struct {
	defaultSchema       bool
	defaultQueryProfile bool
	statelessModelEval  bool
	modelIDs            []string
	modelConfigs        []ApplicationConfiguration
}

// WithoutDefaultSchema suppresses creation of the default schema named
// after the package.
func WithoutDefaultSchema() PackageOption {
	return func(o *packageOptions) { o.defaultSchema = false }
}

// WithoutDefaultQueryProfile suppresses creation of the default query
// profile and query profile type.
func WithoutDefaultQueryProfile() PackageOption {
	return func(o *packageOptions) { o.defaultQueryProfile = false }
}

// WithStatelessModelEvaluation enables the cluster's stateless
// model-evaluation surface.
func WithStatelessModelEvaluation() PackageOption {
	return func(o *packageOptions) { o.statelessModelEval = true }
}

// WithModelIDs records model ids resolved by the cluster at deploy time.
func WithModelIDs(ids ...string) PackageOption {
	return func(o *packageOptions) { o.modelIDs = ids }
}

// WithModelConfigs records model config references shipped with the
// package.
func WithModelConfigs(configs ...ApplicationConfiguration) PackageOption {
	return func(o *packageOptions) { o.modelConfigs = configs }
}

// ApplicationPackage is the root aggregate: everything the cluster needs
// to serve one search application.
type ApplicationPackage struct {
	// Name is the application name. Must match ^[A-Za-z0-9_]+$.
	Name string

	// Schemas are keyed by name, last write wins. Unless suppressed, a
	// schema named after the package exists from construction.
	Schemas OrderedMap[Schema]

	// QueryProfile is deployed under id "default". Nil when defaults
	// are suppressed and none is set.
	QueryProfile *QueryProfile

	// QueryProfileType is deployed under id "root". Nil when defaults
	// are suppressed and none is set.
	QueryProfileType *QueryProfileType

	// ModelIDs and ModelConfigs are model references resolved by the
	// cluster; they are carried, not rendered into the artifacts.
	ModelIDs     []string
	ModelConfigs []ApplicationConfiguration

	// StatelessModelEvaluation exposes packaged models on the
	// container's model-evaluation API.
	StatelessModelEvaluation bool

	// Configurations are generic config entries for services.xml.
	Configurations []ApplicationConfiguration

	// Validations are rendered into validation-overrides.xml.
	Validations []Validation
}

// NewApplicationPackage creates an application package. The name is
// required and must be a legal identifier. By default the package holds
// one schema named after itself with an empty document, an empty query
// profile and an empty query profile type.
func NewApplicationPackage(name string, opts ...PackageOption) (ApplicationPackage, error) {
	if name == "" {
		return ApplicationPackage{}, fmt.Errorf("%w: application package name is required", ErrInvalidArgument)
	}
	if !ValidName(name) {
		return ApplicationPackage{}, fmt.Errorf("%w: application package name %q must match %s", ErrInvalidArgument, name, namePattern)
	}

	options := packageOptions{defaultSchema: true, defaultQueryProfile: true}
	for _, opt := range opts {
		opt(&options)
	}

	app := ApplicationPackage{
		Name:                     name,
		Schemas:                  NewOrderedMap[Schema](),
		ModelIDs:                 options.modelIDs,
		ModelConfigs:             options.modelConfigs,
		StatelessModelEvaluation: options.statelessModelEval,
	}
	if options.defaultSchema {
		schema, err := NewSchema(name, NewDocument())
		if err != nil {
			return ApplicationPackage{}, err
		}
		app.Schemas = app.Schemas.Put(schema.Name, schema)
	}
	if options.defaultQueryProfile {
		qp := NewQueryProfile()
		qt := NewQueryProfileType()
		app.QueryProfile = &qp
		app.QueryProfileType = &qt
	}
	return app, nil
}

// AddSchema returns a copy with the schema merged in, last write wins.
func (a ApplicationPackage) AddSchema(s Schema) ApplicationPackage {
	a.Schemas = a.Schemas.Put(s.Name, s)
	return a
}

// GetSchema returns the named schema. With an empty name it returns the
// package's sole schema, failing when the package holds several.
func (a ApplicationPackage) GetSchema(name string) (Schema, error) {
	if name == "" {
		if a.Schemas.Len() != 1 {
			return Schema{}, fmt.Errorf("%w: package holds %d schemas, a name is required", ErrInvalidArgument, a.Schemas.Len())
		}
		return a.Schemas.Values()[0], nil
	}
	s, ok := a.Schemas.Get(name)
	if !ok {
		return Schema{}, fmt.Errorf("schema %q: %w", name, ErrNotFound)
	}
	return s, nil
}

// WithQueryProfile returns a copy with the query profile replaced.
func (a ApplicationPackage) WithQueryProfile(qp QueryProfile) ApplicationPackage {
	a.QueryProfile = &qp
	return a
}

// WithQueryProfileType returns a copy with the query profile type
// replaced.
func (a ApplicationPackage) WithQueryProfileType(qt QueryProfileType) ApplicationPackage {
	a.QueryProfileType = &qt
	return a
}

// AddConfiguration returns a copy with the config entry appended.
func (a ApplicationPackage) AddConfiguration(c ApplicationConfiguration) ApplicationPackage {
	a.Configurations = append(append([]ApplicationConfiguration{}, a.Configurations...), c)
	return a
}

// AddValidation returns a copy with the validation override appended.
func (a ApplicationPackage) AddValidation(v Validation) ApplicationPackage {
	a.Validations = append(append([]Validation{}, a.Validations...), v)
	return a
}
