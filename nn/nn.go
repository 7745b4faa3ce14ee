// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package nn

import (
	"iter"

	"github.com/born-ml/rfield/internal/nn"
)

// Module is the common interface for all neural network modules.
type Module = nn.Module

// Spatial is the interface for layers with a spatial kernel geometry.
type Spatial = nn.Spatial

// NamedModule pairs a module with the name it carries inside its parent.
type NamedModule = nn.NamedModule

// Kind classifies a module for analysis purposes.
type Kind = nn.Kind

// Module kinds.
const (
	KindContainer   = nn.KindContainer
	KindConv2D      = nn.KindConv2D
	KindMaxPool2D   = nn.KindMaxPool2D
	KindPassthrough = nn.KindPassthrough
)

// Named pairs a module with a child name for use with NewComposite.
//
// Example:
//
//	model := nn.NewComposite("LeNet",
//	    nn.Named("features", features),
//	    nn.Named("classifier", classifier),
//	)
func Named(name string, module Module) NamedModule {
	return nn.Named(name, module)
}

// Walk traverses the module tree rooted at root in pre-order,
// yielding each module together with its dotted path.
//
// The root is yielded first with an empty path. A child of the root is
// yielded with its own name, and deeper descendants join their ancestor
// names with dots, e.g. "features.0".
//
// Example:
//
//	for path, layer := range nn.Walk(model) {
//	    fmt.Println(path, layer.TypeName())
//	}
func Walk(root Module) iter.Seq2[string, Module] {
	return nn.Walk(root)
}

// Layers

// Conv2D represents a 2D convolutional layer.
type Conv2D = nn.Conv2D

// NewConv2D creates a new 2D convolutional layer.
//
// Example:
//
//	conv := nn.NewConv2D(1, 32, 3, 1, 1)  // in_channels=1, out_channels=32, kernel=3, stride=1, padding=1
func NewConv2D(inChannels, outChannels, kernelSize, stride, padding int) *Conv2D {
	return nn.NewConv2D(inChannels, outChannels, kernelSize, stride, padding)
}

// MaxPool2D represents a 2D max pooling layer.
type MaxPool2D = nn.MaxPool2D

// NewMaxPool2D creates a new 2D max pooling layer.
//
// A non-positive stride defaults to the kernel size.
//
// Example:
//
//	pool := nn.NewMaxPool2D(2, 2, 0)  // kernel=2, stride=2
func NewMaxPool2D(kernelSize, stride, padding int) *MaxPool2D {
	return nn.NewMaxPool2D(kernelSize, stride, padding)
}

// Linear represents a fully connected (dense) layer.
type Linear = nn.Linear

// NewLinear creates a new linear layer.
//
// Example:
//
//	layer := nn.NewLinear(784, 128)
func NewLinear(inFeatures, outFeatures int) *Linear {
	return nn.NewLinear(inFeatures, outFeatures)
}

// BatchNorm2D represents a 2D batch normalization layer.
type BatchNorm2D = nn.BatchNorm2D

// NewBatchNorm2D creates a new 2D batch normalization layer.
//
// Example:
//
//	norm := nn.NewBatchNorm2D(64)
func NewBatchNorm2D(numFeatures int) *BatchNorm2D {
	return nn.NewBatchNorm2D(numFeatures)
}

// Dropout represents a dropout layer.
type Dropout = nn.Dropout

// NewDropout creates a new dropout layer with drop probability p.
//
// Example:
//
//	drop := nn.NewDropout(0.5)
func NewDropout(p float64) *Dropout {
	return nn.NewDropout(p)
}

// Flatten represents a layer that flattens its input to a vector.
type Flatten = nn.Flatten

// NewFlatten creates a new flatten layer.
//
// Example:
//
//	flat := nn.NewFlatten()
func NewFlatten() *Flatten {
	return nn.NewFlatten()
}

// Passthrough represents a generic layer that leaves spatial geometry
// unchanged. It stands in for layer types this package does not model
// explicitly.
type Passthrough = nn.Passthrough

// NewPassthrough creates a new passthrough layer with the given type name.
//
// Example:
//
//	norm := nn.NewPassthrough("LocalResponseNorm")
func NewPassthrough(typeName string) *Passthrough {
	return nn.NewPassthrough(typeName)
}

// Activations

// ReLU represents the Rectified Linear Unit activation function.
type ReLU = nn.ReLU

// NewReLU creates a new ReLU activation layer.
//
// Example:
//
//	relu := nn.NewReLU()
func NewReLU() *ReLU {
	return nn.NewReLU()
}

// Sigmoid represents the Sigmoid activation function.
type Sigmoid = nn.Sigmoid

// NewSigmoid creates a new Sigmoid activation layer.
//
// Example:
//
//	sigmoid := nn.NewSigmoid()
func NewSigmoid() *Sigmoid {
	return nn.NewSigmoid()
}

// Tanh represents the Tanh activation function.
type Tanh = nn.Tanh

// NewTanh creates a new Tanh activation layer.
//
// Example:
//
//	tanh := nn.NewTanh()
func NewTanh() *Tanh {
	return nn.NewTanh()
}

// SiLU represents the Sigmoid Linear Unit (SiLU/Swish) activation function.
// SiLU(x) = x * sigmoid(x).
type SiLU = nn.SiLU

// NewSiLU creates a new SiLU activation layer.
//
// Example:
//
//	silu := nn.NewSiLU()
func NewSiLU() *SiLU {
	return nn.NewSiLU()
}

// Containers

// Sequential represents a sequential container of modules.
type Sequential = nn.Sequential

// NewSequential creates a new sequential container. Children are named
// by their position: "0", "1", and so on.
//
// Example:
//
//	model := nn.NewSequential(
//	    nn.NewConv2D(1, 6, 5, 1, 0),
//	    nn.NewReLU(),
//	    nn.NewMaxPool2D(2, 2, 0),
//	)
func NewSequential(modules ...Module) *Sequential {
	return nn.NewSequential(modules...)
}

// Composite represents a container whose children carry explicit names.
type Composite = nn.Composite

// NewComposite creates a new composite container with the given type
// name. An empty type name defaults to "Composite".
//
// Example:
//
//	model := nn.NewComposite("LeNet",
//	    nn.Named("features", features),
//	    nn.Named("classifier", classifier),
//	)
func NewComposite(typeName string, children ...NamedModule) *Composite {
	return nn.NewComposite(typeName, children...)
}
