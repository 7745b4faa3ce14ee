package config

import (
	"strconv"

	"github.com/born-ml/rfield/internal/nn"
)

// Build constructs the layer tree described by the model.
//
// The root is a container named after the model, with each top-level
// layer as a child: explicitly named layers keep their names, the rest
// are named by position. Build assumes a validated model; descriptor
// constructors panic on invalid parameters.
func (m *Model) Build() nn.Module {
	root := nn.NewComposite(m.RootName())
	for i, layer := range m.Layers {
		name := layer.Name
		if name == "" {
			name = strconv.Itoa(i)
		}
		root.Add(name, layer.build())
	}
	return root
}

// RootName returns the display name for the root of the built tree.
func (m *Model) RootName() string {
	if m.Name == "" {
		return "Model"
	}
	return m.Name
}

// Shape returns the default input shape as {height, width}.
func (m *Model) Shape() [2]int {
	return [2]int{m.InputShape[0], m.InputShape[1]}
}

func (l *LayerSpec) build() nn.Module {
	switch l.Type {
	case "conv2d":
		stride := int(l.Stride)
		if stride == 0 {
			stride = 1
		}
		return nn.NewConv2D(l.InChannels, l.OutChannels, int(l.Kernel), stride, int(l.Padding))
	case "maxpool2d":
		// NewMaxPool2D defaults a zero stride to the kernel size.
		return nn.NewMaxPool2D(int(l.Kernel), int(l.Stride), int(l.Padding))
	case "relu":
		return nn.NewReLU()
	case "sigmoid":
		return nn.NewSigmoid()
	case "tanh":
		return nn.NewTanh()
	case "silu":
		return nn.NewSiLU()
	case "flatten":
		return nn.NewFlatten()
	case "batchnorm2d":
		return nn.NewBatchNorm2D(l.NumFeatures)
	case "dropout":
		p := 0.5
		if l.P != nil {
			p = *l.P
		}
		return nn.NewDropout(p)
	case "linear":
		return nn.NewLinear(l.InFeatures, l.OutFeatures)
	case "sequential":
		seq := nn.NewSequential()
		for i := range l.Layers {
			seq.Add(l.Layers[i].build())
		}
		return seq
	default:
		panic("config: unknown layer type " + l.Type)
	}
}
