package blazon

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/blazon-ui/blazon/binding"
)

// directiveLike is the surface shared by DirectiveMetadata and
// ComponentMetadata that Lint inspects.
type directiveLike interface {
	Selector() string
	Properties() []string
	Events() []string
	Host() map[string]string
	ExportAs() string
}

// Lint checks every registered class for declaration mistakes the registry
// deliberately does not reject at attachment time: unparseable binding
// micro-syntax, whitespace inside query variable bindings, host listeners on
// non-func members, duplicate exportAs aliases and duplicate pipe names.
//
// Per-class checks run concurrently. All findings are joined into the
// returned error; Lint is purely advisory and never mutates the registry.
func Lint(ctx context.Context, reg *Registry) error {
	classes := reg.Classes()

	var (
		mu       sync.Mutex
		findings []error
	)
	report := func(errs ...error) {
		mu.Lock()
		defer mu.Unlock()
		findings = append(findings, errs...)
	}

	g, ctx := errgroup.WithContext(ctx)
	for _, class := range classes {
		class := class
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			report(lintClass(reg, class)...)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	findings = append(findings, lintCrossClass(reg, classes)...)
	return errors.Join(findings...)
}

func lintClass(reg *Registry, class reflect.Type) []error {
	var findings []error

	for _, md := range reg.AnnotationsOf(class) {
		if d, ok := md.(directiveLike); ok {
			findings = append(findings, lintDirective(class, d)...)
		}
		findings = append(findings, lintQueryish(class, "", md)...)
	}
	for i, list := range reg.ParamsOf(class) {
		for _, md := range list {
			findings = append(findings, lintQueryish(class, fmt.Sprintf("parameter %d", i), md)...)
		}
	}
	for _, member := range reg.MemberNamesOf(class) {
		for _, md := range reg.MemberAnnotationsOf(class, member) {
			findings = append(findings, lintQueryish(class, fmt.Sprintf("member %s", member), md)...)
			findings = append(findings, lintHostListener(class, member, md)...)
		}
	}

	return findings
}

func lintDirective(class reflect.Type, d directiveLike) []error {
	var findings []error

	for _, spec := range d.Properties() {
		if _, err := binding.ParseProperty(spec); err != nil {
			findings = append(findings, fmt.Errorf("%s: %w", class, err))
		}
	}
	for _, spec := range d.Events() {
		if _, err := binding.ParseEvent(spec); err != nil {
			findings = append(findings, fmt.Errorf("%s: %w", class, err))
		}
	}
	for key := range d.Host() {
		if _, err := binding.ParseHostKey(key); err != nil {
			findings = append(findings, fmt.Errorf("%s: %w", class, err))
		}
	}

	return findings
}

// lintQueryish flags var-binding queries whose names carry surrounding
// whitespace. The names are matched verbatim against template-local
// variables, so " tab" can never match.
func lintQueryish(class reflect.Type, site string, md Metadata) []error {
	q, ok := queryOf(md)
	if !ok || !q.IsVarBindingQuery() {
		return nil
	}

	var findings []error
	for _, name := range q.VarBindings() {
		if name != strings.TrimSpace(name) {
			where := class.String()
			if site != "" {
				where += ", " + site
			}
			findings = append(findings, fmt.Errorf(
				"%s: query variable binding %q has surrounding whitespace and will never match", where, name))
		}
	}
	return findings
}

// lintHostListener flags a host listener declared on a member that is not a
// func. The consuming runtime invokes the member with the evaluated argument
// expressions, so anything else can never receive the event.
func lintHostListener(class reflect.Type, member string, md Metadata) []error {
	hl, ok := md.(*HostListenerMetadata)
	if !ok || class.Kind() != reflect.Struct {
		return nil
	}
	field, found := class.FieldByName(member)
	if !found || field.Type.Kind() == reflect.Func {
		return nil
	}
	return []error{fmt.Errorf(
		"%s, member %s: host listener for %q declared on a non-func member", class, member, hl.EventName())}
}

func queryOf(md Metadata) (*QueryMetadata, bool) {
	switch q := md.(type) {
	case *QueryMetadata:
		return q, true
	case *ViewQueryMetadata:
		return &q.QueryMetadata, true
	default:
		return nil, false
	}
}

func lintCrossClass(reg *Registry, classes []reflect.Type) []error {
	var (
		findings  []error
		exportAs  = make(map[string]reflect.Type)
		pipeNames = make(map[string]reflect.Type)
	)

	for _, class := range classes {
		for _, md := range reg.AnnotationsOf(class) {
			switch m := md.(type) {
			case *PipeMetadata:
				if prev, dup := pipeNames[m.Name()]; dup {
					findings = append(findings, fmt.Errorf(
						"pipe name %q declared by both %s and %s", m.Name(), prev, class))
					continue
				}
				pipeNames[m.Name()] = class
			default:
				d, ok := md.(directiveLike)
				if !ok || d.ExportAs() == "" {
					continue
				}
				if prev, dup := exportAs[d.ExportAs()]; dup {
					findings = append(findings, fmt.Errorf(
						"exportAs alias %q declared by both %s and %s", d.ExportAs(), prev, class))
					continue
				}
				exportAs[d.ExportAs()] = class
			}
		}
	}

	return findings
}
