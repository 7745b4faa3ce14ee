package nn

// Passthrough describes an arbitrary shape-preserving layer that has no
// dedicated descriptor, identified only by its display name. It lets a
// model list layers the analyzer has no special knowledge of, such as
// custom activations, without losing them from the output.
type Passthrough struct {
	typeName string
}

// NewPassthrough creates a passthrough descriptor shown as typeName.
// An empty typeName defaults to "Passthrough".
func NewPassthrough(typeName string) *Passthrough {
	if typeName == "" {
		typeName = "Passthrough"
	}
	return &Passthrough{typeName: typeName}
}

// Kind returns KindPassthrough.
func (p *Passthrough) Kind() Kind {
	return KindPassthrough
}

// TypeName returns the display name given at construction.
func (p *Passthrough) TypeName() string {
	return p.typeName
}

// NamedChildren returns nil.
func (p *Passthrough) NamedChildren() []NamedModule {
	return nil
}
