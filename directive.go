package blazon

import "fmt"

// ChangeDetectionStrategy is the enumerated policy controlling how often a
// component's bindings are re-evaluated by the consuming runtime.
type ChangeDetectionStrategy int

const (
	ChangeDetectionDefault ChangeDetectionStrategy = iota
	ChangeDetectionCheckOnce
	ChangeDetectionChecked
	ChangeDetectionCheckAlways
	ChangeDetectionDetached
	ChangeDetectionOnPush
)

func (s ChangeDetectionStrategy) String() string {
	switch s {
	case ChangeDetectionDefault:
		return "Default"
	case ChangeDetectionCheckOnce:
		return "CheckOnce"
	case ChangeDetectionChecked:
		return "Checked"
	case ChangeDetectionCheckAlways:
		return "CheckAlways"
	case ChangeDetectionDetached:
		return "Detached"
	case ChangeDetectionOnPush:
		return "OnPush"
	default:
		return fmt.Sprintf("ChangeDetectionStrategy(%d)", int(s))
	}
}

// DirectiveConfig is the configuration surface of a directive declaration.
//
// Selector is required and uses a CSS subset (element, class, attribute,
// attribute-value, negation and union matchers that never cross element
// boundaries). The string is stored as declared; syntax is diagnosed by the
// consuming runtime's selector matcher, not here.
//
// Properties entries follow "local[:bound[|pipe...]]", Events entries follow
// "local[:bound]". Host maps a host-binding key — "(event)", "[property]" or
// a static attribute name — to an expression string.
type DirectiveConfig struct {
	Selector        string
	Properties      []string
	Events          []string
	Host            map[string]string
	Bindings        []any
	ExportAs        string
	ModuleID        string
	CompileChildren *bool // default true
}

// DirectiveMetadata declares that a type attaches behavior to every element
// matching its selector.
type DirectiveMetadata struct {
	selector        string
	properties      []string
	events          []string
	host            map[string]string
	bindings        []any
	exportAs        string
	moduleID        string
	compileChildren bool
}

// NewDirective builds a directive record from cfg. It fails with a
// MissingFieldError when cfg.Selector is empty.
func NewDirective(cfg DirectiveConfig) (*DirectiveMetadata, error) {
	if cfg.Selector == "" {
		return nil, missingField(KindDirective, "Selector")
	}
	return newDirective(cfg), nil
}

// MustDirective is like NewDirective but panics on invalid configuration.
func MustDirective(cfg DirectiveConfig) *DirectiveMetadata {
	md, err := NewDirective(cfg)
	if err != nil {
		panic(err)
	}
	return md
}

func newDirective(cfg DirectiveConfig) *DirectiveMetadata {
	return &DirectiveMetadata{
		selector:        cfg.Selector,
		properties:      copyStrings(cfg.Properties),
		events:          copyStrings(cfg.Events),
		host:            copyStringMap(cfg.Host),
		bindings:        copyTokens(cfg.Bindings),
		exportAs:        cfg.ExportAs,
		moduleID:        cfg.ModuleID,
		compileChildren: boolOr(cfg.CompileChildren, true),
	}
}

func (m *DirectiveMetadata) Kind() Kind { return KindDirective }

func (m *DirectiveMetadata) Selector() string { return m.selector }

// Properties returns the declared property binding specs, in declaration
// order. The returned slice is a copy.
func (m *DirectiveMetadata) Properties() []string { return copyStrings(m.properties) }

// Events returns the declared event binding specs, in declaration order. The
// returned slice is a copy.
func (m *DirectiveMetadata) Events() []string { return copyStrings(m.events) }

// Host returns the declared host bindings. The returned map is a copy.
func (m *DirectiveMetadata) Host() map[string]string { return copyStringMap(m.host) }

// Bindings returns the injectable-token descriptors scoped to this directive
// and its content children. The returned slice is a copy.
func (m *DirectiveMetadata) Bindings() []any { return copyTokens(m.bindings) }

func (m *DirectiveMetadata) ExportAs() string { return m.exportAs }

func (m *DirectiveMetadata) ModuleID() string { return m.moduleID }

func (m *DirectiveMetadata) CompileChildren() bool { return m.compileChildren }

// ComponentConfig is the configuration surface of a component declaration.
// It is a DirectiveConfig plus the view-owning options.
type ComponentConfig struct {
	Selector        string
	Properties      []string
	Events          []string
	Host            map[string]string
	Bindings        []any
	ExportAs        string
	ModuleID        string
	CompileChildren *bool // default true

	DynamicLoadable bool
	ChangeDetection ChangeDetectionStrategy
	ViewBindings    []any
}

// ComponentMetadata is a directive that additionally owns a rendered view.
type ComponentMetadata struct {
	DirectiveMetadata

	dynamicLoadable bool
	changeDetection ChangeDetectionStrategy
	viewBindings    []any
}

// NewComponent builds a component record from cfg. It fails with a
// MissingFieldError when cfg.Selector is empty.
func NewComponent(cfg ComponentConfig) (*ComponentMetadata, error) {
	if cfg.Selector == "" {
		return nil, missingField(KindComponent, "Selector")
	}
	return &ComponentMetadata{
		DirectiveMetadata: *newDirective(DirectiveConfig{
			Selector:        cfg.Selector,
			Properties:      cfg.Properties,
			Events:          cfg.Events,
			Host:            cfg.Host,
			Bindings:        cfg.Bindings,
			ExportAs:        cfg.ExportAs,
			ModuleID:        cfg.ModuleID,
			CompileChildren: cfg.CompileChildren,
		}),
		dynamicLoadable: cfg.DynamicLoadable,
		changeDetection: cfg.ChangeDetection,
		viewBindings:    copyTokens(cfg.ViewBindings),
	}, nil
}

// MustComponent is like NewComponent but panics on invalid configuration.
func MustComponent(cfg ComponentConfig) *ComponentMetadata {
	md, err := NewComponent(cfg)
	if err != nil {
		panic(err)
	}
	return md
}

func (m *ComponentMetadata) Kind() Kind { return KindComponent }

func (m *ComponentMetadata) DynamicLoadable() bool { return m.dynamicLoadable }

func (m *ComponentMetadata) ChangeDetection() ChangeDetectionStrategy { return m.changeDetection }

// ViewBindings returns the injectable-token descriptors scoped to the view's
// descendants rather than content children. The returned slice is a copy.
func (m *ComponentMetadata) ViewBindings() []any { return copyTokens(m.viewBindings) }
