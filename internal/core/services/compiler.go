package services

import (
	"fmt"
	"sort"
	"strings"

	"github.com/goodhamgupta/ex-vespa/internal/core/domain"
)

// The schema renderer is a recursive-descent walk over the Schema value,
// one function per syntactic block. Line ordering inside each block is a
// compatibility contract with the consuming engine and must not change.

const indentStep = "    "

// sdWriter accumulates schema-definition text with block indentation.
type sdWriter struct {
	b     strings.Builder
	depth int
}

func (w *sdWriter) line(format string, args ...any) {
	for i := 0; i < w.depth; i++ {
		w.b.WriteString(indentStep)
	}
	fmt.Fprintf(&w.b, format, args...)
	w.b.WriteByte('\n')
}

// open emits a block header ending in "{" and increases the depth.
func (w *sdWriter) open(format string, args ...any) {
	w.line(format+" {", args...)
	w.depth++
}

// close decreases the depth and emits the closing brace.
func (w *sdWriter) close() {
	w.depth--
	w.line("}")
}

// CompileSchema renders a Schema into the engine's schema-definition
// text (the ".sd" artifact).
func CompileSchema(s domain.Schema) string {
	w := &sdWriter{}
	w.open("schema %s", s.Name)
	renderDocument(w, s)
	for _, imp := range s.ImportedFields.Values() {
		w.line("import field %s.%s as %s {}", imp.Reference, imp.ReferenceField, imp.Name)
	}
	for _, fs := range s.FieldSets.Values() {
		renderFieldSet(w, fs)
	}
	for _, m := range s.Models {
		renderOnnxModel(w, m)
	}
	for _, rp := range s.RankProfiles.Values() {
		renderRankProfile(w, rp)
	}
	for _, ds := range s.DocumentSummaries {
		renderDocumentSummary(w, ds)
	}
	w.close()
	return w.b.String()
}

func renderDocument(w *sdWriter, s domain.Schema) {
	header := fmt.Sprintf("document %s", s.Name)
	if len(s.Document.Inherits) > 0 {
		header += " inherits " + strings.Join(s.Document.Inherits, ", ")
	}
	w.open("%s", header)
	for _, f := range s.Document.Fields.Values() {
		renderField(w, f)
	}
	for _, st := range s.Document.Structs.Values() {
		renderStruct(w, st)
	}
	w.close()
}

func renderField(w *sdWriter, f domain.Field) {
	w.open("field %s type %s", f.Name, f.Type)
	if len(f.Indexing) > 0 {
		w.line("indexing: %s", strings.Join(f.Indexing, " | "))
	}
	if f.Index != "" {
		w.line("index: %s", f.Index)
	}
	renderAttribute(w, f.Ann, f.Attribute)
	if f.Ann != nil {
		renderHNSW(w, *f.Ann)
	}
	renderMatch(w, f.Match)
	if f.Weight != nil {
		w.line("weight: %d", *f.Weight)
	}
	if f.Bolding != nil && *f.Bolding {
		w.line("bolding: on")
	}
	if f.Summary != nil {
		renderSummary(w, *f.Summary)
	}
	if f.Stemming != "" {
		w.line("stemming: %s", f.Stemming)
	}
	if f.Rank != "" {
		w.line("rank: %s", f.Rank)
	}
	for _, qc := range f.QueryCommand {
		w.line("query-command: %s", qc)
	}
	for _, sf := range f.StructFields.Values() {
		renderStructField(w, sf)
	}
	w.close()
}

// renderAttribute emits the attribute block when either ANN parameters
// or bare attribute flags are present. The distance metric derived from
// the ANN parameters comes first.
func renderAttribute(w *sdWriter, ann *domain.HNSW, flags []string) {
	if ann == nil && len(flags) == 0 {
		return
	}
	w.open("attribute")
	if ann != nil {
		w.line("distance-metric: %s", ann.DistanceMetric)
	}
	for _, flag := range flags {
		w.line("%s", flag)
	}
	w.close()
}

func renderHNSW(w *sdWriter, h domain.HNSW) {
	w.open("index")
	w.open("hnsw")
	w.line("max-links-per-node: %d", h.MaxLinksPerNode)
	w.line("neighbors-to-explore-at-insert: %d", h.NeighborsToExploreAtInsert)
	w.close()
	w.close()
}

func renderMatch(w *sdWriter, entries []domain.MatchEntry) {
	if len(entries) == 0 {
		return
	}
	w.open("match")
	for _, e := range entries {
		if e.Kind == domain.MatchPair {
			w.line("%s: %s", e.Key, e.Value)
		} else {
			w.line("%s", e.Token)
		}
	}
	w.close()
}

// renderSummary always emits at least an empty {} so an explicitly set
// summary never disappears from the output.
func renderSummary(w *sdWriter, s domain.Summary) {
	header := "summary"
	if s.Name != "" {
		header += " " + s.Name
	}
	if s.Type != "" {
		header += " type " + s.Type
	}
	if len(s.Fields) == 0 {
		w.line("%s {}", header)
		return
	}
	w.open("%s", header)
	for _, line := range s.Fields {
		w.line("%s", line)
	}
	w.close()
}

// renderStructField applies the struct-field subset of the field rules:
// indexing, attribute, match, summary and query-command only.
func renderStructField(w *sdWriter, sf domain.StructField) {
	w.open("struct-field %s", sf.Name)
	if len(sf.Indexing) > 0 {
		w.line("indexing: %s", strings.Join(sf.Indexing, " | "))
	}
	renderAttribute(w, nil, sf.Attribute)
	renderMatch(w, sf.Match)
	if sf.Summary != nil {
		renderSummary(w, *sf.Summary)
	}
	for _, qc := range sf.QueryCommand {
		w.line("query-command: %s", qc)
	}
	w.close()
}

// renderStruct mirrors the field rules for each composed field; structs
// do not nest struct-fields.
func renderStruct(w *sdWriter, st domain.Struct) {
	w.open("struct %s", st.Name)
	for _, f := range st.Fields {
		renderField(w, f)
	}
	w.close()
}

func renderFieldSet(w *sdWriter, fs domain.FieldSet) {
	w.open("fieldset %s", fs.Name)
	w.line("fields: %s", strings.Join(fs.Fields, ", "))
	w.close()
}

func renderOnnxModel(w *sdWriter, m domain.OnnxModel) {
	w.open("onnx-model %s", m.ModelName)
	w.line("file: %s", m.FilePath)
	for _, k := range sortedKeys(m.Inputs) {
		w.line("input %s: %s", k, m.Inputs[k])
	}
	for _, k := range sortedKeys(m.Outputs) {
		w.line("output %s: %s", k, m.Outputs[k])
	}
	w.close()
}

func renderRankProfile(w *sdWriter, rp domain.RankProfile) {
	header := fmt.Sprintf("rank-profile %s", rp.Name)
	if rp.Inherits != "" {
		header += " inherits " + rp.Inherits
	}
	w.open("%s", header)
	if len(rp.Constants) > 0 {
		w.open("constants")
		for _, c := range rp.Constants {
			w.line("%s: %s", c.Name, c.Value)
		}
		w.close()
	}
	if len(rp.Inputs) > 0 {
		w.open("inputs")
		for _, in := range rp.Inputs {
			w.line("%s %s", in.Name, in.Type)
		}
		w.close()
	}
	for _, fn := range rp.Functions {
		w.open("function %s(%s)", fn.Name, strings.Join(fn.Args, ", "))
		w.open("expression")
		w.line("%s", fn.Expression)
		w.close()
		w.close()
	}
	w.open("first-phase")
	w.line("expression: %s", rp.FirstPhase)
	w.close()
	if rp.SecondPhase != nil {
		w.open("second-phase")
		w.line("rerank-count: %d", rp.SecondPhase.RerankCount)
		w.line("expression: %s", rp.SecondPhase.Expression)
		w.close()
	}
	if len(rp.SummaryFeatures) > 0 {
		w.open("summary-features")
		for _, feature := range rp.SummaryFeatures {
			w.line("%s", feature)
		}
		w.close()
	}
	for _, fw := range rp.Weights {
		w.line("weight %s: %d", fw.Field, fw.Weight)
	}
	for _, rt := range rp.RankTypes {
		w.line("rank-type %s: %s", rt.Field, rt.Type)
	}
	if len(rp.RankProperties) > 0 {
		w.open("rank-properties")
		for _, p := range rp.RankProperties {
			w.line("%s: %q", p.Name, p.Value)
		}
		w.close()
	}
	w.close()
}

func renderDocumentSummary(w *sdWriter, ds domain.DocumentSummary) {
	header := fmt.Sprintf("document-summary %s", ds.Name)
	if ds.Inherits != "" {
		header += " inherits " + ds.Inherits
	}
	w.open("%s", header)
	for _, s := range ds.Summaries {
		renderSummary(w, s)
	}
	if ds.FromDisk {
		w.line("from-disk")
	}
	if ds.OmitSummaryFields {
		w.line("omit-summary-fields")
	}
	w.close()
}

// sortedKeys gives map iteration a stable order; the rendered artifacts
// must be deterministic.
func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
