package services

import (
	"fmt"
	"sort"
	"strings"

	"github.com/goodhamgupta/ex-vespa/internal/core/domain"
)

// xmlEscaper covers the five characters that must not appear raw in
// attribute values or element text.
var xmlEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&apos;",
)

func xmlEscape(s string) string {
	return xmlEscaper.Replace(s)
}

// CompileQueryProfile renders the default query profile descriptor.
func CompileQueryProfile(qp domain.QueryProfile) string {
	var b strings.Builder
	b.WriteString(`<query-profile id="default" type="root">` + "\n")
	for _, f := range qp.Fields {
		fmt.Fprintf(&b, `%s<field name="%s">%s</field>`+"\n",
			indentStep, xmlEscape(f.Name), xmlEscape(fmt.Sprintf("%v", f.Value)))
	}
	b.WriteString("</query-profile>\n")
	return b.String()
}

// CompileQueryProfileType renders the root query profile type descriptor.
func CompileQueryProfileType(qt domain.QueryProfileType) string {
	var b strings.Builder
	b.WriteString(`<query-profile-type id="root">` + "\n")
	for _, f := range qt.Fields {
		fmt.Fprintf(&b, `%s<field name="%s" type="%s" />`+"\n",
			indentStep, xmlEscape(f.Name), xmlEscape(f.Type))
	}
	b.WriteString("</query-profile-type>\n")
	return b.String()
}

// CompileServices renders the service topology descriptor: one container
// node group and one content node group, embedding every schema of the
// package plus any generic configuration entries.
func CompileServices(app domain.ApplicationPackage) string {
	var b strings.Builder
	b.WriteString(`<?xml version="1.0" encoding="utf-8" ?>` + "\n")
	b.WriteString(`<services version="1.0">` + "\n")

	fmt.Fprintf(&b, `%s<container id="%s_container" version="1.0">`+"\n", indentStep, app.Name)
	b.WriteString(indentStep + indentStep + "<search></search>\n")
	b.WriteString(indentStep + indentStep + "<document-api></document-api>\n")
	if app.StatelessModelEvaluation {
		b.WriteString(indentStep + indentStep + "<model-evaluation/>\n")
	}
	for _, cfg := range app.Configurations {
		renderConfig(&b, cfg, 2)
	}
	fmt.Fprintf(&b, "%s</container>\n", indentStep)

	fmt.Fprintf(&b, `%s<content id="%s_content" version="1.0">`+"\n", indentStep, app.Name)
	fmt.Fprintf(&b, `%s<redundancy reply-after="1">1</redundancy>`+"\n", strings.Repeat(indentStep, 2))
	fmt.Fprintf(&b, "%s<documents>\n", strings.Repeat(indentStep, 2))
	for _, schema := range app.Schemas.Values() {
		global := ""
		if schema.GlobalDocument {
			global = ` global="true"`
		}
		fmt.Fprintf(&b, `%s<document type="%s" mode="index"%s></document>`+"\n",
			strings.Repeat(indentStep, 3), xmlEscape(schema.Name), global)
	}
	fmt.Fprintf(&b, "%s</documents>\n", strings.Repeat(indentStep, 2))
	fmt.Fprintf(&b, "%s<nodes>\n", strings.Repeat(indentStep, 2))
	fmt.Fprintf(&b, `%s<node distribution-key="0" hostalias="node1"></node>`+"\n", strings.Repeat(indentStep, 3))
	fmt.Fprintf(&b, "%s</nodes>\n", strings.Repeat(indentStep, 2))
	fmt.Fprintf(&b, "%s</content>\n", indentStep)

	b.WriteString("</services>\n")
	return b.String()
}

// renderConfig emits one <config name="..."> block. Map values recurse
// into nested elements; scalar values render as a single leaf element.
func renderConfig(b *strings.Builder, cfg domain.ApplicationConfiguration, depth int) {
	pad := strings.Repeat(indentStep, depth)
	fmt.Fprintf(b, `%s<config name="%s">`+"\n", pad, xmlEscape(cfg.Name))
	renderConfigBody(b, cfg.Value, depth+1)
	fmt.Fprintf(b, "%s</config>\n", pad)
}

func renderConfigBody(b *strings.Builder, value map[string]any, depth int) {
	pad := strings.Repeat(indentStep, depth)
	for _, k := range sortedAnyKeys(value) {
		switch v := value[k].(type) {
		case map[string]any:
			fmt.Fprintf(b, "%s<%s>\n", pad, k)
			renderConfigBody(b, v, depth+1)
			fmt.Fprintf(b, "%s</%s>\n", pad, k)
		default:
			fmt.Fprintf(b, "%s<%s>%s</%s>\n", pad, k, xmlEscape(fmt.Sprintf("%v", v)), k)
		}
	}
}

// CompileValidationOverrides renders the validation-overrides
// descriptor, one allow line per validation, list order preserved.
func CompileValidationOverrides(app domain.ApplicationPackage) string {
	var b strings.Builder
	b.WriteString("<validation-overrides>\n")
	for _, v := range app.Validations {
		comment := ""
		if v.Comment != "" {
			comment = fmt.Sprintf(` comment="%s"`, xmlEscape(v.Comment))
		}
		fmt.Fprintf(&b, `%s<allow until="%s"%s>%s</allow>`+"\n",
			indentStep, xmlEscape(v.Until), comment, xmlEscape(v.ID))
	}
	b.WriteString("</validation-overrides>\n")
	return b.String()
}

func sortedAnyKeys(m map[string]any) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
