package blazon

import (
	"fmt"
	"reflect"
	"sync"

	"github.com/rs/zerolog"
)

// ClassOf returns the stable class identifier for T, usable as a registry
// key, a query selector or an injection token.
func ClassOf[T any]() reflect.Type {
	var v T
	t := reflect.TypeOf(v)
	if t == nil {
		t = reflect.TypeOf((*T)(nil)).Elem()
	}
	return t
}

// Registry associates metadata records with classes, constructor parameter
// positions and named members. Attachment is strictly append-only: records
// are never merged, deduplicated or reordered, because the consuming runtime
// depends on declaration order (constructor-argument resolution correlates
// parameter index with annotation position).
//
// Registration happens at definition time, reads happen arbitrarily later
// from arbitrary goroutines; a RWMutex guards both.
type Registry struct {
	mu      sync.RWMutex
	classes []reflect.Type

	annotations map[reflect.Type][]Metadata
	params      map[reflect.Type][][]Metadata
	members     map[reflect.Type]map[string][]Metadata
	memberOrder map[reflect.Type][]string

	logger zerolog.Logger
}

// RegistryOption configures a Registry at construction.
type RegistryOption func(*Registry)

// WithLogger makes the registry debug-log every attachment.
func WithLogger(logger zerolog.Logger) RegistryOption {
	return func(r *Registry) {
		r.logger = logger
	}
}

// New creates an empty registry.
func New(opts ...RegistryOption) *Registry {
	r := &Registry{
		annotations: make(map[reflect.Type][]Metadata),
		params:      make(map[reflect.Type][][]Metadata),
		members:     make(map[reflect.Type]map[string][]Metadata),
		memberOrder: make(map[reflect.Type][]string),
		logger:      zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

var defaultRegistry = New()

// Default returns the process-wide registry that the package-level
// registration functions and Decl.MustRegister operate on.
func Default() *Registry {
	return defaultRegistry
}

func (r *Registry) track(class reflect.Type) {
	_, annotated := r.annotations[class]
	_, parametrized := r.params[class]
	_, membered := r.members[class]
	if !annotated && !parametrized && !membered {
		r.classes = append(r.classes, class)
	}
}

// Annotate appends md to the class's annotation list, preserving call order.
func (r *Registry) Annotate(class reflect.Type, md ...Metadata) {
	if class == nil {
		panic("blazon: Annotate called with a nil class")
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	r.track(class)
	r.annotations[class] = append(r.annotations[class], md...)
	for _, m := range md {
		r.logger.Debug().
			Str("class", class.String()).
			Str("kind", string(m.Kind())).
			Msg("annotation attached")
	}
}

// AnnotateParam appends md to the annotation list of the constructor
// parameter at index. The per-class parameter table grows to cover index;
// unannotated slots read back as empty lists.
func (r *Registry) AnnotateParam(class reflect.Type, index int, md ...Metadata) {
	if class == nil {
		panic("blazon: AnnotateParam called with a nil class")
	}
	if index < 0 {
		panic(fmt.Sprintf("blazon: AnnotateParam called with negative index %d", index))
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	r.track(class)
	table := r.params[class]
	for len(table) <= index {
		table = append(table, nil)
	}
	table[index] = append(table[index], md...)
	r.params[class] = table
	for _, m := range md {
		r.logger.Debug().
			Str("class", class.String()).
			Int("param", index).
			Str("kind", string(m.Kind())).
			Msg("parameter annotation attached")
	}
}

// AnnotateMember appends md to the annotation list of the named member.
// First-seen member order is preserved.
func (r *Registry) AnnotateMember(class reflect.Type, member string, md ...Metadata) {
	if class == nil {
		panic("blazon: AnnotateMember called with a nil class")
	}
	if member == "" {
		panic("blazon: AnnotateMember called with an empty member name")
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	r.track(class)
	byMember, ok := r.members[class]
	if !ok {
		byMember = make(map[string][]Metadata)
		r.members[class] = byMember
	}
	if _, seen := byMember[member]; !seen {
		r.memberOrder[class] = append(r.memberOrder[class], member)
	}
	byMember[member] = append(byMember[member], md...)
	for _, m := range md {
		r.logger.Debug().
			Str("class", class.String()).
			Str("member", member).
			Str("kind", string(m.Kind())).
			Msg("member annotation attached")
	}
}

// AnnotationsOf returns the class's annotations in attachment order. The
// returned slice is a copy.
func (r *Registry) AnnotationsOf(class reflect.Type) []Metadata {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return copyMetadata(r.annotations[class])
}

// ParamsOf returns the constructor-parameter annotation table of the class.
// The table covers indexes up to the highest annotated one; slots without
// annotations are empty, non-nil lists. The result is a copy.
func (r *Registry) ParamsOf(class reflect.Type) [][]Metadata {
	r.mu.RLock()
	defer r.mu.RUnlock()

	table := r.params[class]
	out := make([][]Metadata, len(table))
	for i, list := range table {
		if list == nil {
			out[i] = []Metadata{}
			continue
		}
		out[i] = copyMetadata(list)
	}
	return out
}

// MemberAnnotationsOf returns the annotations of the named member in
// attachment order. The returned slice is a copy.
func (r *Registry) MemberAnnotationsOf(class reflect.Type, member string) []Metadata {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return copyMetadata(r.members[class][member])
}

// MemberNamesOf returns the annotated member names of the class in
// first-annotation order. The returned slice is a copy.
func (r *Registry) MemberNamesOf(class reflect.Type) []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return copyStrings(r.memberOrder[class])
}

// Classes returns every class that carries at least one annotation, in
// first-registration order. The returned slice is a copy.
func (r *Registry) Classes() []reflect.Type {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]reflect.Type, len(r.classes))
	copy(out, r.classes)
	return out
}

// Reset drops every registration. Intended for tests.
func (r *Registry) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.classes = nil
	r.annotations = make(map[reflect.Type][]Metadata)
	r.params = make(map[reflect.Type][][]Metadata)
	r.members = make(map[reflect.Type]map[string][]Metadata)
	r.memberOrder = make(map[reflect.Type][]string)
}

func copyMetadata(in []Metadata) []Metadata {
	if len(in) == 0 {
		return nil
	}
	out := make([]Metadata, len(in))
	copy(out, in)
	return out
}

// Annotate appends md to the class's annotation list in the default registry.
func Annotate(class reflect.Type, md ...Metadata) {
	defaultRegistry.Annotate(class, md...)
}

// AnnotateParam appends md to a constructor-parameter annotation list in the
// default registry.
func AnnotateParam(class reflect.Type, index int, md ...Metadata) {
	defaultRegistry.AnnotateParam(class, index, md...)
}

// AnnotateMember appends md to a member annotation list in the default
// registry.
func AnnotateMember(class reflect.Type, member string, md ...Metadata) {
	defaultRegistry.AnnotateMember(class, member, md...)
}

// AnnotationsOf reads a class's annotations from the default registry.
func AnnotationsOf(class reflect.Type) []Metadata {
	return defaultRegistry.AnnotationsOf(class)
}

// ParamsOf reads a class's parameter annotation table from the default
// registry.
func ParamsOf(class reflect.Type) [][]Metadata {
	return defaultRegistry.ParamsOf(class)
}

// MemberAnnotationsOf reads a member's annotations from the default registry.
func MemberAnnotationsOf(class reflect.Type, member string) []Metadata {
	return defaultRegistry.MemberAnnotationsOf(class, member)
}

// MemberNamesOf reads a class's annotated member names from the default
// registry.
func MemberNamesOf(class reflect.Type) []string {
	return defaultRegistry.MemberNamesOf(class)
}

// Classes lists the annotated classes of the default registry.
func Classes() []reflect.Type {
	return defaultRegistry.Classes()
}
