// Package nn defines the layer descriptors that receptive field
// analysis operates on.
//
// A Module describes a layer's static geometry without holding weights
// or performing computation: what kind of layer it is, what it is
// called, and which named children it contains. Leaf descriptors such
// as Conv2D and MaxPool2D carry the spatial parameters (kernel size,
// stride, padding) that drive the arithmetic in internal/field;
// containers such as Sequential and Composite only group children.
package nn

import "fmt"

// Kind classifies a module for analysis purposes.
//
// The analyzer dispatches on Kind rather than on concrete types, so
// adding a new descriptor only requires choosing the right Kind for it.
type Kind int

const (
	// KindContainer marks modules that group children and contribute
	// no geometry of their own.
	KindContainer Kind = iota

	// KindConv2D marks 2D convolutions.
	KindConv2D

	// KindMaxPool2D marks 2D max pooling layers.
	KindMaxPool2D

	// KindPassthrough marks layers that leave spatial geometry
	// unchanged (activations, normalization, dropout, reshapes).
	KindPassthrough
)

// String returns a human-readable name for the kind.
func (k Kind) String() string {
	switch k {
	case KindContainer:
		return "container"
	case KindConv2D:
		return "conv2d"
	case KindMaxPool2D:
		return "maxpool2d"
	case KindPassthrough:
		return "passthrough"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Module is the interface implemented by every layer descriptor.
//
// Descriptors are immutable after construction and safe for concurrent
// use.
type Module interface {
	// Kind reports how the analyzer should treat this module.
	Kind() Kind

	// TypeName returns the display name of the layer type, e.g. "Conv2D".
	TypeName() string

	// NamedChildren returns the direct children in declaration order,
	// or nil for leaf modules.
	NamedChildren() []NamedModule
}

// NamedModule pairs a child module with the name it has inside its
// parent.
type NamedModule struct {
	Name   string
	Module Module
}

// Named wraps a module with the given child name for use in composites:
//
//	nn.NewComposite("LeNet",
//	    nn.Named("features", features),
//	    nn.Named("classifier", classifier),
//	)
func Named(name string, module Module) NamedModule {
	return NamedModule{Name: name, Module: module}
}

// Spatial is implemented by leaf modules whose geometry transforms the
// spatial grid. Every module whose Kind is KindConv2D or KindMaxPool2D
// must implement Spatial; the analyzer treats a violation as an
// internal error.
type Spatial interface {
	Module

	// KernelSize returns the square kernel size.
	KernelSize() int

	// Stride returns the stride.
	Stride() int

	// Padding returns the zero padding applied to each border.
	Padding() int
}
