package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/goodhamgupta/ex-vespa/internal/core/domain"
)

// TestCompileQueryProfile_Empty tests the default profile wrapper
func TestCompileQueryProfile_Empty(t *testing.T) {
	out := CompileQueryProfile(domain.NewQueryProfile())

	assert.Equal(t, "<query-profile id=\"default\" type=\"root\">\n</query-profile>\n", out)
}

// TestCompileQueryProfile_Fields tests field lines in list order
func TestCompileQueryProfile_Fields(t *testing.T) {
	maxHits, err := domain.NewQueryField("maxHits", 100)
	require.NoError(t, err)
	timeout, err := domain.NewQueryField("timeout", "2s")
	require.NoError(t, err)
	qp := domain.NewQueryProfile().AddFields(maxHits, timeout)

	out := CompileQueryProfile(qp)

	expected := `<query-profile id="default" type="root">
    <field name="maxHits">100</field>
    <field name="timeout">2s</field>
</query-profile>
`
	assert.Equal(t, expected, out)
}

// TestCompileQueryProfileType_EscapesTypes tests XML escaping of tensor
// type names
func TestCompileQueryProfileType_EscapesTypes(t *testing.T) {
	f, err := domain.NewQueryTypeField("ranking.features.query(q)", "tensor<float>(x[384])")
	require.NoError(t, err)
	qt := domain.NewQueryProfileType().AddFields(f)

	out := CompileQueryProfileType(qt)

	expected := `<query-profile-type id="root">
    <field name="ranking.features.query(q)" type="tensor&lt;float&gt;(x[384])" />
</query-profile-type>
`
	assert.Equal(t, expected, out)
}

// TestCompileServices_DefaultPackage tests the fixed topology skeleton
func TestCompileServices_DefaultPackage(t *testing.T) {
	app, err := domain.NewApplicationPackage("my_app")
	require.NoError(t, err)

	out := CompileServices(app)

	expected := `<?xml version="1.0" encoding="utf-8" ?>
<services version="1.0">
    <container id="my_app_container" version="1.0">
        <search></search>
        <document-api></document-api>
    </container>
    <content id="my_app_content" version="1.0">
        <redundancy reply-after="1">1</redundancy>
        <documents>
            <document type="my_app" mode="index"></document>
        </documents>
        <nodes>
            <node distribution-key="0" hostalias="node1"></node>
        </nodes>
    </content>
</services>
`
	assert.Equal(t, expected, out)
}

// TestCompileServices_AllSchemasAndGlobal tests one document element per
// schema plus the global attribute
func TestCompileServices_AllSchemasAndGlobal(t *testing.T) {
	app, err := domain.NewApplicationPackage("shop", domain.WithoutDefaultSchema())
	require.NoError(t, err)
	products, err := domain.NewSchema("products", domain.NewDocument())
	require.NoError(t, err)
	brands, err := domain.NewSchema("brands", domain.NewDocument())
	require.NoError(t, err)
	app = app.AddSchema(products).AddSchema(brands.WithGlobalDocument(true))

	out := CompileServices(app)

	assert.Contains(t, out, `<document type="products" mode="index"></document>`)
	assert.Contains(t, out, `<document type="brands" mode="index" global="true"></document>`)
}

// TestCompileServices_ModelEvaluation tests the stateless model flag
func TestCompileServices_ModelEvaluation(t *testing.T) {
	app, err := domain.NewApplicationPackage("my_app", domain.WithStatelessModelEvaluation())
	require.NoError(t, err)

	out := CompileServices(app)

	assert.Contains(t, out, "<model-evaluation/>")
}

// TestCompileServices_NestedConfiguration tests config recursion: map
// values become nested elements, scalars become leaves
func TestCompileServices_NestedConfiguration(t *testing.T) {
	cfg, err := domain.NewApplicationConfiguration("container.handler.observability.application-userdata",
		map[string]any{
			"vendor": "exvespa",
			"limits": map[string]any{"qps": 100},
		})
	require.NoError(t, err)
	app, err := domain.NewApplicationPackage("my_app")
	require.NoError(t, err)
	app = app.AddConfiguration(cfg)

	out := CompileServices(app)

	expected := `        <config name="container.handler.observability.application-userdata">
            <limits>
                <qps>100</qps>
            </limits>
            <vendor>exvespa</vendor>
        </config>
`
	assert.Contains(t, out, expected)
}

// TestCompileValidationOverrides_Empty tests the bare wrapper
func TestCompileValidationOverrides_Empty(t *testing.T) {
	app, err := domain.NewApplicationPackage("my_app")
	require.NoError(t, err)

	out := CompileValidationOverrides(app)

	assert.Equal(t, "<validation-overrides>\n</validation-overrides>\n", out)
}

// TestCompileValidationOverrides_ListOrder tests allow lines in list
// order with the optional comment attribute
func TestCompileValidationOverrides_ListOrder(t *testing.T) {
	app, err := domain.NewApplicationPackage("my_app")
	require.NoError(t, err)
	v1, err := domain.NewValidation("schema-removal", "2026-09-30", "migrating music schema")
	require.NoError(t, err)
	v2, err := domain.NewValidation("content-cluster-removal", "2026-10-15", "")
	require.NoError(t, err)
	app = app.AddValidation(v1).AddValidation(v2)

	out := CompileValidationOverrides(app)

	expected := `<validation-overrides>
    <allow until="2026-09-30" comment="migrating music schema">schema-removal</allow>
    <allow until="2026-10-15">content-cluster-removal</allow>
</validation-overrides>
`
	assert.Equal(t, expected, out)
}
