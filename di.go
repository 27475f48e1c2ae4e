package blazon

// AttributeMetadata resolves a static attribute of the host element as an
// injected constructor value. Because the injected value type is always
// string, the record itself serves as the distinguishing injection token.
type AttributeMetadata struct {
	attributeName string
}

// NewAttribute builds an attribute record. It fails with a MissingFieldError
// when attributeName is empty.
func NewAttribute(attributeName string) (*AttributeMetadata, error) {
	if attributeName == "" {
		return nil, missingField(KindAttribute, "AttributeName")
	}
	return &AttributeMetadata{attributeName: attributeName}, nil
}

// MustAttribute is like NewAttribute but panics on invalid configuration.
func MustAttribute(attributeName string) *AttributeMetadata {
	md, err := NewAttribute(attributeName)
	if err != nil {
		panic(err)
	}
	return md
}

func (m *AttributeMetadata) Kind() Kind { return KindAttribute }

func (m *AttributeMetadata) AttributeName() string { return m.attributeName }

// Token returns the injection token for this attribute, which is the record
// itself.
func (m *AttributeMetadata) Token() any { return m }

// InjectMetadata overrides the injection token resolved for a constructor
// parameter.
type InjectMetadata struct {
	token any
}

func NewInject(token any) *InjectMetadata {
	return &InjectMetadata{token: token}
}

func (m *InjectMetadata) Kind() Kind { return KindInject }

// Token returns the configured token, resolving a forward reference if one
// was declared.
func (m *InjectMetadata) Token() any { return ResolveRef(m.token) }

// OptionalMetadata marks a constructor parameter as satisfiable by nil when
// no provider matches.
type OptionalMetadata struct{}

func NewOptional() *OptionalMetadata { return &OptionalMetadata{} }

func (m *OptionalMetadata) Kind() Kind { return KindOptional }

// SelfMetadata restricts resolution of a constructor parameter to the
// element's own injector.
type SelfMetadata struct{}

func NewSelf() *SelfMetadata { return &SelfMetadata{} }

func (m *SelfMetadata) Kind() Kind { return KindSelf }

// SkipSelfMetadata starts resolution of a constructor parameter at the
// parent injector.
type SkipSelfMetadata struct{}

func NewSkipSelf() *SkipSelfMetadata { return &SkipSelfMetadata{} }

func (m *SkipSelfMetadata) Kind() Kind { return KindSkipSelf }

// HostMetadata bounds resolution of a constructor parameter at the host
// component's injector.
type HostMetadata struct{}

func NewHost() *HostMetadata { return &HostMetadata{} }

func (m *HostMetadata) Kind() Kind { return KindHost }
