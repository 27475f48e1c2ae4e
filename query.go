package blazon

import "strings"

// QueryConfig is the configuration surface of a query declaration.
//
// Selector is required and is either a type reference (typically a
// reflect.Type from ClassOf, possibly behind a *ForwardRef) or a
// comma-separated string of template-local variable names.
type QueryConfig struct {
	Selector    any
	Descendants bool // default false: direct children only
}

// QueryMetadata requests a live, ordered collection of matching annotations
// from the content supplied to the directive by the using template.
type QueryMetadata struct {
	selector    any
	descendants bool
	viewQuery   bool
	varBindings []string
}

// NewQuery builds a content-query record from cfg. It fails with a
// MissingFieldError when cfg.Selector is nil or an empty string.
func NewQuery(cfg QueryConfig) (*QueryMetadata, error) {
	return newQuery(KindQuery, cfg)
}

// MustQuery is like NewQuery but panics on invalid configuration.
func MustQuery(cfg QueryConfig) *QueryMetadata {
	md, err := NewQuery(cfg)
	if err != nil {
		panic(err)
	}
	return md
}

func newQuery(kind Kind, cfg QueryConfig) (*QueryMetadata, error) {
	if cfg.Selector == nil {
		return nil, missingField(kind, "Selector")
	}
	md := &QueryMetadata{
		selector:    cfg.Selector,
		descendants: cfg.Descendants,
	}
	if s, ok := cfg.Selector.(string); ok {
		if s == "" {
			return nil, missingField(kind, "Selector")
		}
		// The split is deliberately naive: surrounding whitespace is kept
		// exactly as declared. Lint flags it; the stored value never changes.
		md.varBindings = strings.Split(s, ",")
	}
	return md, nil
}

func (m *QueryMetadata) Kind() Kind {
	if m.viewQuery {
		return KindViewQuery
	}
	return KindQuery
}

// Selector returns the configured selector, resolving a forward reference on
// first read.
func (m *QueryMetadata) Selector() any { return ResolveRef(m.selector) }

func (m *QueryMetadata) Descendants() bool { return m.descendants }

// IsViewQuery reports whether this query targets the component's own view
// subtree rather than the content supplied by the using template.
func (m *QueryMetadata) IsViewQuery() bool { return m.viewQuery }

// IsVarBindingQuery reports whether the selector is a set of template-local
// variable names rather than a type reference.
func (m *QueryMetadata) IsVarBindingQuery() bool { return m.varBindings != nil }

// VarBindings returns the selector string split on commas, meaningful only
// when IsVarBindingQuery. The returned slice is a copy.
func (m *QueryMetadata) VarBindings() []string { return copyStrings(m.varBindings) }

// ViewQueryMetadata is a query over the component's own generated view
// subtree. IsViewQuery is always true.
type ViewQueryMetadata struct {
	QueryMetadata
}

// NewViewQuery builds a view-query record from cfg. It fails with a
// MissingFieldError when cfg.Selector is nil or an empty string.
func NewViewQuery(cfg QueryConfig) (*ViewQueryMetadata, error) {
	md, err := newQuery(KindViewQuery, cfg)
	if err != nil {
		return nil, err
	}
	md.viewQuery = true
	return &ViewQueryMetadata{QueryMetadata: *md}, nil
}

// MustViewQuery is like NewViewQuery but panics on invalid configuration.
func MustViewQuery(cfg QueryConfig) *ViewQueryMetadata {
	md, err := NewViewQuery(cfg)
	if err != nil {
		panic(err)
	}
	return md
}
