package blazon

import "fmt"

// ViewEncapsulation controls how a component's styles are scoped to its view.
type ViewEncapsulation int

const (
	ViewEncapsulationEmulated ViewEncapsulation = iota
	ViewEncapsulationNative
	ViewEncapsulationNone
)

func (e ViewEncapsulation) String() string {
	switch e {
	case ViewEncapsulationEmulated:
		return "Emulated"
	case ViewEncapsulationNative:
		return "Native"
	case ViewEncapsulationNone:
		return "None"
	default:
		return fmt.Sprintf("ViewEncapsulation(%d)", int(e))
	}
}

// ViewConfig is the configuration surface of a view declaration, the
// companion record a component chain attaches alongside ComponentMetadata.
// Template and TemplateURL are mutually optional; a view may be declared
// purely to scope Directives, Pipes or styles.
type ViewConfig struct {
	Template      string
	TemplateURL   string
	Styles        []string
	StyleURLs     []string
	Directives    []any
	Pipes         []any
	Encapsulation ViewEncapsulation

	// RenderPluginID selects a non-default renderer for this view; empty
	// means the runtime's default renderer.
	RenderPluginID string
}

// ViewMetadata describes the rendered view owned by a component: its
// template, stylesheet set, and the directives and pipes visible to binding
// expressions inside it.
type ViewMetadata struct {
	template       string
	templateURL    string
	styles         []string
	styleURLs      []string
	directives     []any
	pipes          []any
	encapsulation  ViewEncapsulation
	renderPluginID string
}

// NewView builds a view record from cfg. Every field is optional.
func NewView(cfg ViewConfig) *ViewMetadata {
	return &ViewMetadata{
		template:       cfg.Template,
		templateURL:    cfg.TemplateURL,
		styles:         copyStrings(cfg.Styles),
		styleURLs:      copyStrings(cfg.StyleURLs),
		directives:     copyTokens(cfg.Directives),
		pipes:          copyTokens(cfg.Pipes),
		encapsulation:  cfg.Encapsulation,
		renderPluginID: cfg.RenderPluginID,
	}
}

func (m *ViewMetadata) Kind() Kind { return KindView }

func (m *ViewMetadata) Template() string { return m.template }

func (m *ViewMetadata) TemplateURL() string { return m.templateURL }

// Styles returns the inline stylesheets, in declaration order. The returned
// slice is a copy.
func (m *ViewMetadata) Styles() []string { return copyStrings(m.styles) }

// StyleURLs returns the stylesheet URLs, in declaration order. The returned
// slice is a copy.
func (m *ViewMetadata) StyleURLs() []string { return copyStrings(m.styleURLs) }

// Directives returns the type references usable inside the template. Entries
// may be forward references. The returned slice is a copy.
func (m *ViewMetadata) Directives() []any { return copyTokens(m.directives) }

// Pipes returns the pipe type references usable inside the template. The
// returned slice is a copy.
func (m *ViewMetadata) Pipes() []any { return copyTokens(m.pipes) }

func (m *ViewMetadata) Encapsulation() ViewEncapsulation { return m.encapsulation }

func (m *ViewMetadata) RenderPluginID() string { return m.renderPluginID }
