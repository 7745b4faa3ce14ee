package nn

import "fmt"

// Conv2D describes a 2D convolutional layer with a square kernel.
//
// Only the geometry needed for receptive field analysis is kept:
// kernel size, stride, and padding, plus channel counts for display.
// Spatial sizes follow the usual convolution shape rule:
//
//	out = (in + 2*padding - kernel_size) / stride + 1
//
// Channel counts do not affect the analysis and may be left at 0 when
// unknown.
type Conv2D struct {
	inChannels  int
	outChannels int
	kernelSize  int
	stride      int
	padding     int
}

// NewConv2D creates a 2D convolution descriptor.
//
// Parameters:
//   - inChannels, outChannels: channel counts, 0 when unspecified
//   - kernelSize: square kernel size (commonly 3, 5, 7, 11)
//   - stride: stride for the convolution (commonly 1 or 2)
//   - padding: zero padding applied to the input (commonly 0, 1, 2)
func NewConv2D(inChannels, outChannels, kernelSize, stride, padding int) *Conv2D {
	if inChannels < 0 || outChannels < 0 {
		panic(fmt.Sprintf("conv2d: invalid channels in=%d, out=%d", inChannels, outChannels))
	}
	if kernelSize <= 0 {
		panic(fmt.Sprintf("conv2d: invalid kernel size %d", kernelSize))
	}
	if stride <= 0 {
		panic(fmt.Sprintf("conv2d: invalid stride %d", stride))
	}
	if padding < 0 {
		panic(fmt.Sprintf("conv2d: invalid padding %d", padding))
	}

	return &Conv2D{
		inChannels:  inChannels,
		outChannels: outChannels,
		kernelSize:  kernelSize,
		stride:      stride,
		padding:     padding,
	}
}

// Kind returns KindConv2D.
func (c *Conv2D) Kind() Kind {
	return KindConv2D
}

// TypeName returns "Conv2D".
func (c *Conv2D) TypeName() string {
	return "Conv2D"
}

// NamedChildren returns nil; convolutions are leaves.
func (c *Conv2D) NamedChildren() []NamedModule {
	return nil
}

// InChannels returns the number of input channels, 0 when unspecified.
func (c *Conv2D) InChannels() int {
	return c.inChannels
}

// OutChannels returns the number of output channels, 0 when unspecified.
func (c *Conv2D) OutChannels() int {
	return c.outChannels
}

// KernelSize returns the square kernel size.
func (c *Conv2D) KernelSize() int {
	return c.kernelSize
}

// Stride returns the stride.
func (c *Conv2D) Stride() int {
	return c.stride
}

// Padding returns the padding.
func (c *Conv2D) Padding() int {
	return c.padding
}

// ComputeOutputSize computes output spatial dimensions for given input size.
//
// Returns: [out_height, out_width].
func (c *Conv2D) ComputeOutputSize(inputH, inputW int) [2]int {
	outH := (inputH+2*c.padding-c.kernelSize)/c.stride + 1
	outW := (inputW+2*c.padding-c.kernelSize)/c.stride + 1
	return [2]int{outH, outW}
}

// String returns a string representation of the layer.
func (c *Conv2D) String() string {
	return fmt.Sprintf("Conv2D(in_channels=%d, out_channels=%d, kernel_size=%d, stride=%d, padding=%d)",
		c.inChannels, c.outChannels, c.kernelSize, c.stride, c.padding)
}
