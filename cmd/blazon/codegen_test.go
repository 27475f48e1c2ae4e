package main

import (
	"go/token"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerate(t *testing.T) {
	t.Run("it should render a declaration chain per class, in order", func(t *testing.T) {
		// GIVEN
		defs := []*ClassDef{
			{
				PkgName:  "tabs",
				TypeName: "TabPanel",
				Pos:      token.Position{Filename: "tabs.go", Line: 10},
				Annotations: parseAnnotations(&testLogger,
					"@component selector=tab-panel events=\"select:tabSelect\"\n@view templateUrl=tab_panel.html"),
				Members: []MemberDef{
					{Name: "Tabs", Annotations: parseAnnotations(&testLogger, "@query type=Tab descendants=true")},
					{Name: "Selected", Annotations: parseAnnotations(&testLogger, "@property named=selectedIndex")},
				},
				Params: []ParamDef{
					{Index: 1, Annotations: parseAnnotations(&testLogger, "@attribute name=role")},
				},
			},
			{
				PkgName:     "tabs",
				TypeName:    "Tab",
				Pos:         token.Position{Filename: "tabs.go", Line: 40},
				Annotations: parseAnnotations(&testLogger, "@directive selector=tab"),
			},
		}

		// WHEN
		source, err := generate(&testLogger, "tabs", defs)

		// THEN
		require.NoError(t, err)
		code := string(source)
		assert.Contains(t, code, "// Code generated by blazon gen. DO NOT EDIT.")
		assert.Contains(t, code, "package tabs")
		assert.Contains(t, code, "blazon.For[TabPanel]()")
		assert.Contains(t, code, `Component(blazon.ComponentConfig{Selector: "tab-panel", Events: []string{"select:tabSelect"}})`)
		assert.Contains(t, code, `View(blazon.ViewConfig{TemplateURL: "tab_panel.html"})`)
		assert.Contains(t, code, `Member("Tabs", blazon.MustQuery(blazon.QueryConfig{Selector: blazon.Ref(func() any { return blazon.ClassOf[Tab]() }), Descendants: true}))`)
		assert.Contains(t, code, `Member("Selected", blazon.NewProperty("selectedIndex"))`)
		assert.Contains(t, code, `Param(1, blazon.MustAttribute("role"))`)
		assert.Contains(t, code, "blazon.For[Tab]()")
		assert.Contains(t, code, `Directive(blazon.DirectiveConfig{Selector: "tab"})`)
		assert.Contains(t, code, "MustRegister()")
		assert.Less(t,
			strings.Index(code, "blazon.For[TabPanel]()"),
			strings.Index(code, "blazon.For[Tab]()"),
		)
	})

	t.Run("it should translate enum-valued properties", func(t *testing.T) {
		// GIVEN
		defs := []*ClassDef{{
			PkgName:  "grid",
			TypeName: "DataGrid",
			Annotations: parseAnnotations(&testLogger,
				"@component selector=data-grid changeDetection=onPush dynamicLoadable=true compileChildren=false\n"+
					"@view template=\"<div></div>\" encapsulation=none renderPluginId=webgl"),
		}}

		// WHEN
		source, err := generate(&testLogger, "grid", defs)

		// THEN
		require.NoError(t, err)
		code := string(source)
		assert.Contains(t, code, "ChangeDetection: blazon.ChangeDetectionOnPush")
		assert.Contains(t, code, "DynamicLoadable: true")
		assert.Contains(t, code, "CompileChildren: blazon.Bool(false)")
		assert.Contains(t, code, "Encapsulation: blazon.ViewEncapsulationNone")
		assert.Contains(t, code, `RenderPluginID: "webgl"`)
	})

	t.Run("it should reject a component annotation without a selector", func(t *testing.T) {
		// GIVEN
		defs := []*ClassDef{{
			PkgName:     "grid",
			TypeName:    "DataGrid",
			Annotations: parseAnnotations(&testLogger, "@component exportAs=grid"),
		}}

		// WHEN
		_, err := generate(&testLogger, "grid", defs)

		// THEN
		require.Error(t, err)
		assert.Contains(t, err.Error(), "requires a selector property")
		assert.Contains(t, err.Error(), "DataGrid")
	})

	t.Run("it should reject a query with both a type and a selector", func(t *testing.T) {
		// GIVEN
		defs := []*ClassDef{{
			PkgName:  "grid",
			TypeName: "DataGrid",
			Members: []MemberDef{
				{Name: "Rows", Annotations: parseAnnotations(&testLogger, `@query type=Row selector="a,b"`)},
			},
		}}

		// WHEN
		_, err := generate(&testLogger, "grid", defs)

		// THEN
		require.Error(t, err)
		assert.Contains(t, err.Error(), "not both")
	})

	t.Run("it should render host listener arguments", func(t *testing.T) {
		// GIVEN
		defs := []*ClassDef{{
			PkgName:  "grid",
			TypeName: "DataGrid",
			Members: []MemberDef{
				{Name: "OnKey", Annotations: parseAnnotations(&testLogger, `@hostListener event=keydown args="$event, $event.target"`)},
			},
		}}

		// WHEN
		source, err := generate(&testLogger, "grid", defs)

		// THEN
		require.NoError(t, err)
		assert.Contains(t, string(source), `blazon.MustHostListener("keydown", "$event", "$event.target")`)
	})
}
