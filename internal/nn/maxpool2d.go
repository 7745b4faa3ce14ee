package nn

import "fmt"

// MaxPool2D describes a 2D max pooling layer with a square window.
//
// Spatial sizes follow the same shape rule as convolution:
//
//	out = (in + 2*padding - kernel_size) / stride + 1
type MaxPool2D struct {
	kernelSize int
	stride     int
	padding    int
}

// NewMaxPool2D creates a 2D max pooling descriptor.
//
// A stride <= 0 is replaced by kernelSize, so NewMaxPool2D(2, 0, 0)
// describes the common non-overlapping 2x2 pooling.
func NewMaxPool2D(kernelSize, stride, padding int) *MaxPool2D {
	if kernelSize <= 0 {
		panic(fmt.Sprintf("maxpool2d: invalid kernel size %d", kernelSize))
	}
	if padding < 0 {
		panic(fmt.Sprintf("maxpool2d: invalid padding %d", padding))
	}
	if stride <= 0 {
		stride = kernelSize
	}

	return &MaxPool2D{
		kernelSize: kernelSize,
		stride:     stride,
		padding:    padding,
	}
}

// Kind returns KindMaxPool2D.
func (p *MaxPool2D) Kind() Kind {
	return KindMaxPool2D
}

// TypeName returns "MaxPool2D".
func (p *MaxPool2D) TypeName() string {
	return "MaxPool2D"
}

// NamedChildren returns nil; pooling layers are leaves.
func (p *MaxPool2D) NamedChildren() []NamedModule {
	return nil
}

// KernelSize returns the square window size.
func (p *MaxPool2D) KernelSize() int {
	return p.kernelSize
}

// Stride returns the stride.
func (p *MaxPool2D) Stride() int {
	return p.stride
}

// Padding returns the padding.
func (p *MaxPool2D) Padding() int {
	return p.padding
}

// ComputeOutputSize computes output spatial dimensions for given input size.
//
// Returns: [out_height, out_width].
func (p *MaxPool2D) ComputeOutputSize(inputH, inputW int) [2]int {
	outH := (inputH+2*p.padding-p.kernelSize)/p.stride + 1
	outW := (inputW+2*p.padding-p.kernelSize)/p.stride + 1
	return [2]int{outH, outW}
}

// String returns a string representation of the layer.
func (p *MaxPool2D) String() string {
	return fmt.Sprintf("MaxPool2D(kernel_size=%d, stride=%d, padding=%d)",
		p.kernelSize, p.stride, p.padding)
}
