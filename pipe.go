package blazon

// PipeConfig is the configuration surface of a pipe declaration.
type PipeConfig struct {
	Name string // required, the invocable name used in binding expressions
	Pure *bool  // default true
}

// PipeMetadata declares a named value transformation usable inside binding
// expressions. A pure pipe is re-evaluated only when its inputs change; an
// impure one runs on every change-detection pass.
type PipeMetadata struct {
	name string
	pure bool
}

// NewPipe builds a pipe record from cfg. It fails with a MissingFieldError
// when cfg.Name is empty.
func NewPipe(cfg PipeConfig) (*PipeMetadata, error) {
	if cfg.Name == "" {
		return nil, missingField(KindPipe, "Name")
	}
	return &PipeMetadata{
		name: cfg.Name,
		pure: boolOr(cfg.Pure, true),
	}, nil
}

// MustPipe is like NewPipe but panics on invalid configuration.
func MustPipe(cfg PipeConfig) *PipeMetadata {
	md, err := NewPipe(cfg)
	if err != nil {
		panic(err)
	}
	return md
}

func (m *PipeMetadata) Kind() Kind { return KindPipe }

func (m *PipeMetadata) Name() string { return m.name }

func (m *PipeMetadata) Pure() bool { return m.pure }
