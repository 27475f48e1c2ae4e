// Package binding parses the micro-syntaxes carried as raw strings by the
// metadata records: property specs ("local:bound|pipe"), event specs
// ("local:bound") and host-binding keys ("(event)", "[property]", or a
// static attribute name). The records themselves store the strings exactly
// as declared; this package is the diagnostic side, used by Lint and by
// consuming runtimes.
package binding

import (
	"fmt"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

var bindingLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Ident", Pattern: `[a-zA-Z_$][a-zA-Z0-9_$.-]*`},
	{Name: "LParen", Pattern: `\(`},
	{Name: "RParen", Pattern: `\)`},
	{Name: "LBracket", Pattern: `\[`},
	{Name: "RBracket", Pattern: `\]`},
	{Name: "Colon", Pattern: `:`},
	{Name: "Pipe", Pattern: `\|`},
	{Name: "Whitespace", Pattern: `\s+`},
})

// PipeCall is one pipe application inside a property spec, with optional
// colon-separated arguments.
type PipeCall struct {
	Name string   `parser:"@Ident"`
	Args []string `parser:"( Colon @Ident )*"`
}

// PropertyTarget is the bound-name half of a property spec, present only
// when the spec renames the member.
type PropertyTarget struct {
	Bound string     `parser:"Colon @Ident"`
	Pipes []PipeCall `parser:"( Pipe @@ )*"`
}

// PropertySpec is a parsed "local[:bound[|pipe[:arg...]...]]" string.
type PropertySpec struct {
	Local  string          `parser:"@Ident"`
	Target *PropertyTarget `parser:"@@?"`
}

// Bound returns the external binding name, falling back to the local name
// when the spec does not rename.
func (s *PropertySpec) Bound() string {
	if s.Target == nil {
		return s.Local
	}
	return s.Target.Bound
}

// Pipes returns the pipe applications, outermost first.
func (s *PropertySpec) Pipes() []PipeCall {
	if s.Target == nil {
		return nil
	}
	return s.Target.Pipes
}

// EventSpec is a parsed "local[:bound]" string.
type EventSpec struct {
	Local string `parser:"@Ident"`
	Bound string `parser:"( Colon @Ident )?"`
}

// HostKey is a parsed host-binding key. Exactly one of Event, Property and
// Attr is non-empty.
type HostKey struct {
	Event    string `parser:"  LParen @Ident RParen"`
	Property string `parser:"| LBracket @Ident RBracket"`
	Attr     string `parser:"| @Ident"`
}

func (k *HostKey) IsEvent() bool { return k.Event != "" }

func (k *HostKey) IsProperty() bool { return k.Property != "" }

func (k *HostKey) IsAttribute() bool { return k.Attr != "" }

var (
	propertyParser = participle.MustBuild[PropertySpec](
		participle.Lexer(bindingLexer),
		participle.Elide("Whitespace"),
	)
	eventParser = participle.MustBuild[EventSpec](
		participle.Lexer(bindingLexer),
		participle.Elide("Whitespace"),
	)
	hostKeyParser = participle.MustBuild[HostKey](
		participle.Lexer(bindingLexer),
		participle.Elide("Whitespace"),
	)
)

// ParseProperty parses a property binding spec.
func ParseProperty(spec string) (*PropertySpec, error) {
	parsed, err := propertyParser.ParseString("", spec)
	if err != nil {
		return nil, fmt.Errorf("invalid property spec %q:\n\t%w", spec, err)
	}
	return parsed, nil
}

// ParseEvent parses an event binding spec.
func ParseEvent(spec string) (*EventSpec, error) {
	parsed, err := eventParser.ParseString("", spec)
	if err != nil {
		return nil, fmt.Errorf("invalid event spec %q:\n\t%w", spec, err)
	}
	return parsed, nil
}

// ParseHostKey parses a host-binding key.
func ParseHostKey(key string) (*HostKey, error) {
	parsed, err := hostKeyParser.ParseString("", key)
	if err != nil {
		return nil, fmt.Errorf("invalid host binding key %q:\n\t%w", key, err)
	}
	return parsed, nil
}
