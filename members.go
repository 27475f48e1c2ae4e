package blazon

// PropertyMetadata marks a member as a bindable input. The bound name, when
// non-empty, is the external name used in templates in place of the member's
// own name.
type PropertyMetadata struct {
	boundName string
}

func NewProperty(boundName string) *PropertyMetadata {
	return &PropertyMetadata{boundName: boundName}
}

func (m *PropertyMetadata) Kind() Kind { return KindProperty }

func (m *PropertyMetadata) BoundName() string { return m.boundName }

// EventMetadata marks a member as an output event emitter, optionally under
// an external name.
type EventMetadata struct {
	boundName string
}

func NewEvent(boundName string) *EventMetadata {
	return &EventMetadata{boundName: boundName}
}

func (m *EventMetadata) Kind() Kind { return KindEvent }

func (m *EventMetadata) BoundName() string { return m.boundName }

// HostBindingMetadata binds a member to a property of the host element,
// optionally under an external name.
type HostBindingMetadata struct {
	boundName string
}

func NewHostBinding(boundName string) *HostBindingMetadata {
	return &HostBindingMetadata{boundName: boundName}
}

func (m *HostBindingMetadata) Kind() Kind { return KindHostBinding }

func (m *HostBindingMetadata) BoundName() string { return m.boundName }

// HostListenerMetadata subscribes a member to an event of the host element.
// Args are expression strings evaluated and passed as handler arguments.
type HostListenerMetadata struct {
	eventName string
	args      []string
}

// NewHostListener builds a host-listener record. It fails with a
// MissingFieldError when eventName is empty.
func NewHostListener(eventName string, args ...string) (*HostListenerMetadata, error) {
	if eventName == "" {
		return nil, missingField(KindHostListener, "EventName")
	}
	return &HostListenerMetadata{
		eventName: eventName,
		args:      copyStrings(args),
	}, nil
}

// MustHostListener is like NewHostListener but panics on invalid
// configuration.
func MustHostListener(eventName string, args ...string) *HostListenerMetadata {
	md, err := NewHostListener(eventName, args...)
	if err != nil {
		panic(err)
	}
	return md
}

func (m *HostListenerMetadata) Kind() Kind { return KindHostListener }

func (m *HostListenerMetadata) EventName() string { return m.eventName }

// Args returns the handler argument expressions, in declaration order. The
// returned slice is a copy.
func (m *HostListenerMetadata) Args() []string { return copyStrings(m.args) }
