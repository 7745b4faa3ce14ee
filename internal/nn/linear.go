package nn

import "fmt"

// Linear describes a fully connected (dense) layer.
//
// Linear layers operate on flattened features, so the analyzer carries
// the spatial state through them unchanged.
type Linear struct {
	inFeatures  int
	outFeatures int
}

// NewLinear creates a fully connected layer descriptor.
func NewLinear(inFeatures, outFeatures int) *Linear {
	if inFeatures <= 0 || outFeatures <= 0 {
		panic(fmt.Sprintf("linear: invalid features in=%d, out=%d", inFeatures, outFeatures))
	}
	return &Linear{inFeatures: inFeatures, outFeatures: outFeatures}
}

// Kind returns KindPassthrough.
func (l *Linear) Kind() Kind {
	return KindPassthrough
}

// TypeName returns "Linear".
func (l *Linear) TypeName() string {
	return "Linear"
}

// NamedChildren returns nil.
func (l *Linear) NamedChildren() []NamedModule {
	return nil
}

// InFeatures returns the number of input features.
func (l *Linear) InFeatures() int {
	return l.inFeatures
}

// OutFeatures returns the number of output features.
func (l *Linear) OutFeatures() int {
	return l.outFeatures
}

// String returns a string representation of the layer.
func (l *Linear) String() string {
	return fmt.Sprintf("Linear(in_features=%d, out_features=%d)", l.inFeatures, l.outFeatures)
}
