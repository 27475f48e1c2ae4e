// Package blazon is the declarative metadata model of a component-based UI
// framework. Application code attaches immutable metadata records to types,
// constructor parameter positions and named members through a registry; a
// consuming runtime reads them back later to drive selector matching,
// dependency injection, change detection and templating. Blazon itself never
// interprets the metadata beyond structural validation.
package blazon

// Kind identifies the concrete variant of a Metadata record.
type Kind string

const (
	KindDirective    Kind = "directive"
	KindComponent    Kind = "component"
	KindView         Kind = "view"
	KindPipe         Kind = "pipe"
	KindProperty     Kind = "property"
	KindEvent        Kind = "event"
	KindHostBinding  Kind = "hostBinding"
	KindHostListener Kind = "hostListener"
	KindAttribute    Kind = "attribute"
	KindQuery        Kind = "query"
	KindViewQuery    Kind = "viewQuery"
	KindInject       Kind = "inject"
	KindOptional     Kind = "optional"
	KindSelf         Kind = "self"
	KindSkipSelf     Kind = "skipSelf"
	KindHost         Kind = "host"
)

// Metadata is the tagged union over every record variant blazon can attach.
// Records are immutable once constructed.
type Metadata interface {
	Kind() Kind
}

// Bool returns a pointer to v, for config fields whose default is not the
// zero value (CompileChildren, Pure).
func Bool(v bool) *bool {
	return &v
}

func boolOr(v *bool, fallback bool) bool {
	if v == nil {
		return fallback
	}
	return *v
}

func copyStrings(in []string) []string {
	if len(in) == 0 {
		return nil
	}
	out := make([]string, len(in))
	copy(out, in)
	return out
}

func copyTokens(in []any) []any {
	if len(in) == 0 {
		return nil
	}
	out := make([]any, len(in))
	copy(out, in)
	return out
}

func copyStringMap(in map[string]string) map[string]string {
	if len(in) == 0 {
		return nil
	}
	out := make(map[string]string, len(in))
	for k, v := range in {
		out[k] = v
	}
	return out
}
