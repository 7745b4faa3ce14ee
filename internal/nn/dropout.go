package nn

import "fmt"

// Dropout describes a dropout layer with drop probability p.
//
// Dropout zeroes values without moving them, so the analyzer carries
// the spatial state through it unchanged.
type Dropout struct {
	p float64
}

// NewDropout creates a dropout descriptor.
//
// p must be a probability in [0, 1].
func NewDropout(p float64) *Dropout {
	if p < 0 || p > 1 {
		panic(fmt.Sprintf("dropout: invalid probability %g", p))
	}
	return &Dropout{p: p}
}

// Kind returns KindPassthrough.
func (d *Dropout) Kind() Kind {
	return KindPassthrough
}

// TypeName returns "Dropout".
func (d *Dropout) TypeName() string {
	return "Dropout"
}

// NamedChildren returns nil.
func (d *Dropout) NamedChildren() []NamedModule {
	return nil
}

// P returns the drop probability.
func (d *Dropout) P() float64 {
	return d.p
}

// String returns a string representation of the layer.
func (d *Dropout) String() string {
	return fmt.Sprintf("Dropout(p=%g)", d.p)
}
