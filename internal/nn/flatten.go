package nn

// Flatten describes a layer that reshapes feature maps into a vector.
//
// Flattening changes tensor rank, not where values came from in the
// input, so the analyzer carries the spatial state through it
// unchanged.
type Flatten struct{}

// NewFlatten creates a flatten descriptor.
func NewFlatten() *Flatten {
	return &Flatten{}
}

// Kind returns KindPassthrough.
func (f *Flatten) Kind() Kind {
	return KindPassthrough
}

// TypeName returns "Flatten".
func (f *Flatten) TypeName() string {
	return "Flatten"
}

// NamedChildren returns nil.
func (f *Flatten) NamedChildren() []NamedModule {
	return nil
}
