package domain

import "fmt"

// DefaultRerankCount is the second-phase rerank depth used when the
// caller does not set one.
const DefaultRerankCount = 100

// Function is a named ranking function inside a rank profile.
type Function struct {
	// Name identifies the function.
	Name string

	// Expression is the ranking expression body.
	Expression string

	// Args are the function's argument names, in order.
	Args []string
}

// NewFunction creates a ranking function. Name and expression are required.
func NewFunction(name, expression string, args ...string) (Function, error) {
	if name == "" {
		return Function{}, fmt.Errorf("%w: function name is required", ErrInvalidArgument)
	}
	if expression == "" {
		return Function{}, fmt.Errorf("%w: function expression is required", ErrInvalidArgument)
	}
	return Function{Name: name, Expression: expression, Args: args}, nil
}

// SecondPhaseRanking re-scores the top hits of the first phase.
type SecondPhaseRanking struct {
	// Expression is the second-phase ranking expression.
	Expression string

	// RerankCount is how many first-phase hits are re-scored.
	RerankCount int
}

// NewSecondPhaseRanking creates a second-phase configuration. The
// expression is required; a non-positive rerank count falls back to
// DefaultRerankCount.
func NewSecondPhaseRanking(expression string, rerankCount int) (SecondPhaseRanking, error) {
	if expression == "" {
		return SecondPhaseRanking{}, fmt.Errorf("%w: second-phase ranking expression cannot be empty", ErrInvalidArgument)
	}
	if rerankCount <= 0 {
		rerankCount = DefaultRerankCount
	}
	return SecondPhaseRanking{Expression: expression, RerankCount: rerankCount}, nil
}

// RankConstant is one entry of a rank profile's constants block.
type RankConstant struct {
	Name  string
	Value string
}

// RankInput declares a query input and its type, e.g.
// ("query(q)", "tensor<float>(x[384])").
type RankInput struct {
	Name string
	Type string
}

// FieldWeight associates a field with a match weight.
type FieldWeight struct {
	Field  string
	Weight int
}

// RankType associates a field with a rank type, e.g. ("body", "about").
type RankType struct {
	Field string
	Type  string
}

// RankProperty is one entry of the rank-properties block.
type RankProperty struct {
	Name  string
	Value string
}

// RankProfile is a named ranking-expression configuration used to score
// matches at query time.
type RankProfile struct {
	// Name is unique within a Schema.
	Name string

	// FirstPhase is the first-phase ranking expression. Required.
	FirstPhase string

	// Inherits names a parent profile. Optional.
	Inherits string

	// Constants, Inputs, Weights, RankTypes and RankProperties are
	// association lists; order is preserved in the rendered output.
	Constants      []RankConstant
	Inputs         []RankInput
	Weights        []FieldWeight
	RankTypes      []RankType
	RankProperties []RankProperty

	// Functions are the profile's ranking functions, in order.
	Functions []Function

	// SummaryFeatures lists rank features reported with each hit.
	SummaryFeatures []string

	// SecondPhase re-scores the top first-phase hits. Optional.
	SecondPhase *SecondPhaseRanking
}

// NewRankProfile creates a rank profile. Name and first-phase expression
// are required.
func NewRankProfile(name, firstPhase string) (RankProfile, error) {
	if name == "" {
		return RankProfile{}, fmt.Errorf("%w: rank profile name is required", ErrInvalidArgument)
	}
	if firstPhase == "" {
		return RankProfile{}, fmt.Errorf("%w: first-phase ranking expression cannot be empty", ErrInvalidArgument)
	}
	return RankProfile{Name: name, FirstPhase: firstPhase}, nil
}

// WithInherits returns a copy inheriting from the named profile.
func (r RankProfile) WithInherits(parent string) RankProfile {
	r.Inherits = parent
	return r
}

// WithConstants returns a copy with the constants block set.
func (r RankProfile) WithConstants(constants ...RankConstant) RankProfile {
	r.Constants = constants
	return r
}

// WithInputs returns a copy with the inputs block set.
func (r RankProfile) WithInputs(inputs ...RankInput) RankProfile {
	r.Inputs = inputs
	return r
}

// WithWeights returns a copy with the field weights set.
func (r RankProfile) WithWeights(weights ...FieldWeight) RankProfile {
	r.Weights = weights
	return r
}

// WithRankTypes returns a copy with the rank types set.
func (r RankProfile) WithRankTypes(types ...RankType) RankProfile {
	r.RankTypes = types
	return r
}

// WithRankProperties returns a copy with the rank-properties block set.
func (r RankProfile) WithRankProperties(props ...RankProperty) RankProfile {
	r.RankProperties = props
	return r
}

// WithFunctions returns a copy with the ranking functions set.
func (r RankProfile) WithFunctions(fns ...Function) RankProfile {
	r.Functions = fns
	return r
}

// WithSummaryFeatures returns a copy with the summary features set.
func (r RankProfile) WithSummaryFeatures(features ...string) RankProfile {
	r.SummaryFeatures = features
	return r
}

// WithSecondPhase returns a copy with the second-phase configuration set.
func (r RankProfile) WithSecondPhase(sp SecondPhaseRanking) RankProfile {
	r.SecondPhase = &sp
	return r
}
