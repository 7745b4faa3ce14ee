package nn

// Activations are element-wise and shape-preserving, so the analyzer
// reports the running state through them unchanged. They exist as
// distinct descriptors so that rendered tables show the full layer
// sequence of the network.

// ReLU describes a Rectified Linear Unit activation: f(x) = max(0, x).
type ReLU struct{}

// NewReLU creates a ReLU activation descriptor.
func NewReLU() *ReLU {
	return &ReLU{}
}

// Kind returns KindPassthrough.
func (r *ReLU) Kind() Kind {
	return KindPassthrough
}

// TypeName returns "ReLU".
func (r *ReLU) TypeName() string {
	return "ReLU"
}

// NamedChildren returns nil.
func (r *ReLU) NamedChildren() []NamedModule {
	return nil
}

// Sigmoid describes a sigmoid activation: f(x) = 1 / (1 + e^-x).
type Sigmoid struct{}

// NewSigmoid creates a sigmoid activation descriptor.
func NewSigmoid() *Sigmoid {
	return &Sigmoid{}
}

// Kind returns KindPassthrough.
func (s *Sigmoid) Kind() Kind {
	return KindPassthrough
}

// TypeName returns "Sigmoid".
func (s *Sigmoid) TypeName() string {
	return "Sigmoid"
}

// NamedChildren returns nil.
func (s *Sigmoid) NamedChildren() []NamedModule {
	return nil
}

// Tanh describes a hyperbolic tangent activation.
type Tanh struct{}

// NewTanh creates a tanh activation descriptor.
func NewTanh() *Tanh {
	return &Tanh{}
}

// Kind returns KindPassthrough.
func (t *Tanh) Kind() Kind {
	return KindPassthrough
}

// TypeName returns "Tanh".
func (t *Tanh) TypeName() string {
	return "Tanh"
}

// NamedChildren returns nil.
func (t *Tanh) NamedChildren() []NamedModule {
	return nil
}

// SiLU describes a Sigmoid Linear Unit activation: f(x) = x * sigmoid(x).
type SiLU struct{}

// NewSiLU creates a SiLU activation descriptor.
func NewSiLU() *SiLU {
	return &SiLU{}
}

// Kind returns KindPassthrough.
func (s *SiLU) Kind() Kind {
	return KindPassthrough
}

// TypeName returns "SiLU".
func (s *SiLU) TypeName() string {
	return "SiLU"
}

// NamedChildren returns nil.
func (s *SiLU) NamedChildren() []NamedModule {
	return nil
}
