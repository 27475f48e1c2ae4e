package blazon

import (
	"fmt"
	"reflect"
)

type (
	declParam struct {
		index int
		md    []Metadata
	}

	declMember struct {
		name string
		md   []Metadata
	}

	// Decl accumulates annotations for one class and registers them in a
	// single shot. Every method returns the receiver, so declarations chain:
	//
	//	blazon.For[TabPanel]().
	//		Component(blazon.ComponentConfig{Selector: "tab-panel"}).
	//		View(blazon.ViewConfig{TemplateURL: "tab_panel.html"}).
	//		MustRegister()
	//
	// Configuration errors are held until Register so the chain stays
	// fluent; the first error wins and nothing is registered.
	Decl struct {
		class       reflect.Type
		annotations []Metadata
		params      []declParam
		members     []declMember
		err         error
	}
)

// For starts a declaration chain for T.
func For[T any]() *Decl {
	return ForClass(ClassOf[T]())
}

// ForClass starts a declaration chain for an already-reified class.
func ForClass(class reflect.Type) *Decl {
	d := &Decl{class: class}
	if class == nil {
		d.err = fmt.Errorf("blazon: declaration for a nil class")
	}
	return d
}

func (d *Decl) add(md Metadata, err error) *Decl {
	if err != nil {
		if d.err == nil {
			d.err = err
		}
		return d
	}
	d.annotations = append(d.annotations, md)
	return d
}

// Directive appends a directive annotation built from cfg.
func (d *Decl) Directive(cfg DirectiveConfig) *Decl {
	md, err := NewDirective(cfg)
	return d.add(md, err)
}

// Component appends a component annotation built from cfg.
func (d *Decl) Component(cfg ComponentConfig) *Decl {
	md, err := NewComponent(cfg)
	return d.add(md, err)
}

// View appends the companion view annotation built from cfg.
func (d *Decl) View(cfg ViewConfig) *Decl {
	return d.add(NewView(cfg), nil)
}

// Pipe appends a pipe annotation built from cfg.
func (d *Decl) Pipe(cfg PipeConfig) *Decl {
	md, err := NewPipe(cfg)
	return d.add(md, err)
}

// Annotate appends pre-built class annotations, in the given order.
func (d *Decl) Annotate(md ...Metadata) *Decl {
	if d.err != nil {
		return d
	}
	d.annotations = append(d.annotations, md...)
	return d
}

// Param appends annotations for the constructor parameter at index.
func (d *Decl) Param(index int, md ...Metadata) *Decl {
	if d.err != nil {
		return d
	}
	if index < 0 {
		d.err = fmt.Errorf("blazon: parameter annotation with negative index %d on %s", index, d.class)
		return d
	}
	d.params = append(d.params, declParam{index: index, md: md})
	return d
}

// Member appends annotations for the named member.
func (d *Decl) Member(name string, md ...Metadata) *Decl {
	if d.err != nil {
		return d
	}
	if name == "" {
		d.err = fmt.Errorf("blazon: member annotation with empty name on %s", d.class)
		return d
	}
	d.members = append(d.members, declMember{name: name, md: md})
	return d
}

// Err returns the first configuration error recorded by the chain, if any.
func (d *Decl) Err() error {
	return d.err
}

// Register attaches everything accumulated since the last registration to
// reg, in accumulation order. It is all-or-nothing: a held configuration
// error aborts before any attachment. On success the buffer is drained, so a
// chain that keeps going after Register only attaches the delta.
func (d *Decl) Register(reg *Registry) error {
	if d.err != nil {
		return fmt.Errorf("failed to register declarations for %s:\n\t%w", d.class, d.err)
	}
	if len(d.annotations) > 0 {
		reg.Annotate(d.class, d.annotations...)
	}
	for _, p := range d.params {
		reg.AnnotateParam(d.class, p.index, p.md...)
	}
	for _, m := range d.members {
		reg.AnnotateMember(d.class, m.name, m.md...)
	}
	d.annotations = nil
	d.params = nil
	d.members = nil
	return nil
}

// MustRegister registers into the default registry and panics on error. It
// returns the receiver so a declaration can keep chaining afterwards.
func (d *Decl) MustRegister() *Decl {
	if err := d.Register(Default()); err != nil {
		panic(err)
	}
	return d
}
