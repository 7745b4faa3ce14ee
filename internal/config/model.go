// Package config loads network definitions from YAML model files and
// builds the corresponding layer trees.
//
// A model file names the network, fixes its default input shape, and
// lists layers in forward order:
//
//	name: LeNet
//	input_shape: [28, 28]
//	layers:
//	  - name: features
//	    type: sequential
//	    layers:
//	      - {type: conv2d, in_channels: 1, out_channels: 6, kernel: 5}
//	      - {type: relu}
//	      - {type: maxpool2d, kernel: 2}
//
// Decoding is strict: unknown fields are rejected, and validation
// errors identify the offending layer by its position in the file.
package config

import (
	"bytes"
	"fmt"
	"os"
	"slices"
	"strconv"
	"strings"

	"github.com/cockroachdb/errors"
	"gopkg.in/yaml.v3"
)

// Model is a network definition loaded from a YAML model file.
type Model struct {
	// Name is the display name of the network, shown as the root
	// layer's type. Defaults to "Model".
	Name string `yaml:"name"`

	// InputShape is the default spatial input size {height, width}.
	InputShape []int `yaml:"input_shape"`

	// Layers lists the top-level layers in forward order.
	Layers []LayerSpec `yaml:"layers"`
}

// LayerSpec describes one layer entry in a model file.
//
// Type selects the layer and decides which of the remaining fields
// apply; validation rejects fields the selected type does not use.
type LayerSpec struct {
	Type string `yaml:"type"`

	// Name overrides the positional child name. Only top-level layers
	// may carry one; sequential children are always named by index.
	Name string `yaml:"name,omitempty"`

	Kernel  Sym `yaml:"kernel,omitempty"`
	Stride  Sym `yaml:"stride,omitempty"`
	Padding Sym `yaml:"padding,omitempty"`

	InChannels  int `yaml:"in_channels,omitempty"`
	OutChannels int `yaml:"out_channels,omitempty"`

	InFeatures  int `yaml:"in_features,omitempty"`
	OutFeatures int `yaml:"out_features,omitempty"`

	NumFeatures int `yaml:"num_features,omitempty"`

	P *float64 `yaml:"p,omitempty"`

	// Layers holds the children of a sequential entry.
	Layers []LayerSpec `yaml:"layers,omitempty"`
}

// Load reads and validates the model file at path.
func Load(path string) (*Model, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "reading model file")
	}
	model, err := Parse(data)
	if err != nil {
		return nil, errors.Wrapf(err, "loading %s", path)
	}
	return model, nil
}

// Parse decodes and validates a model definition.
func Parse(data []byte) (*Model, error) {
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)

	var model Model
	if err := decoder.Decode(&model); err != nil {
		return nil, errors.Wrap(err, "parsing model definition")
	}
	if err := model.validate(); err != nil {
		return nil, err
	}
	return &model, nil
}

func (m *Model) validate() error {
	if len(m.InputShape) != 2 {
		return errors.Newf("input_shape must have exactly 2 dimensions, got %d", len(m.InputShape))
	}
	for _, dim := range m.InputShape {
		if dim <= 0 {
			return errors.Newf("input_shape dimensions must be positive, got %v", m.InputShape)
		}
	}
	return validateLayers(m.Layers, "", true)
}

// validateLayers checks a layer list. prefix positions nested errors,
// as in "layers[1].layers[0]"; named says whether entries may carry an
// explicit name.
func validateLayers(layers []LayerSpec, prefix string, named bool) error {
	names := make(map[string]struct{}, len(layers))
	for i := range layers {
		layer := &layers[i]
		pos := fmt.Sprintf("%slayers[%d]", prefix, i)

		if err := layer.validate(pos, named); err != nil {
			return err
		}

		name := layer.Name
		if name == "" {
			name = strconv.Itoa(i)
		}
		if _, dup := names[name]; dup {
			return errors.Newf("%s: duplicate layer name %q", pos, name)
		}
		names[name] = struct{}{}
	}
	return nil
}

// allowedFields maps each layer type to the parameter fields it
// accepts.
var allowedFields = map[string][]string{
	"conv2d":      {"kernel", "stride", "padding", "in_channels", "out_channels"},
	"maxpool2d":   {"kernel", "stride", "padding"},
	"relu":        {},
	"sigmoid":     {},
	"tanh":        {},
	"silu":        {},
	"flatten":     {},
	"batchnorm2d": {"num_features"},
	"dropout":     {"p"},
	"linear":      {"in_features", "out_features"},
	"sequential":  {"layers"},
}

func (l *LayerSpec) validate(pos string, named bool) error {
	if l.Type == "" {
		return errors.Newf("%s: missing type", pos)
	}
	allowed, known := allowedFields[l.Type]
	if !known {
		return errors.Newf("%s: unknown layer type %q", pos, l.Type)
	}
	if !named && l.Name != "" {
		return errors.Newf("%s: name is not allowed on sequential children", pos)
	}
	if strings.Contains(l.Name, ".") {
		return errors.Newf("%s: name %q must not contain '.'", pos, l.Name)
	}
	for _, field := range l.setFields() {
		if !slices.Contains(allowed, field) {
			return errors.Newf("%s: field %q is not valid for type %q", pos, field, l.Type)
		}
	}

	switch l.Type {
	case "conv2d", "maxpool2d":
		if l.Kernel <= 0 {
			return errors.Newf("%s: %s requires a positive kernel", pos, l.Type)
		}
		if l.Stride < 0 || l.Padding < 0 {
			return errors.Newf("%s: negative stride or padding is not allowed", pos)
		}
		if l.InChannels < 0 || l.OutChannels < 0 {
			return errors.Newf("%s: negative channel counts are not allowed", pos)
		}
	case "batchnorm2d":
		if l.NumFeatures <= 0 {
			return errors.Newf("%s: batchnorm2d requires a positive num_features", pos)
		}
	case "dropout":
		if l.P != nil && (*l.P < 0 || *l.P > 1) {
			return errors.Newf("%s: dropout probability must be in [0, 1], got %g", pos, *l.P)
		}
	case "linear":
		if l.InFeatures <= 0 || l.OutFeatures <= 0 {
			return errors.Newf("%s: linear requires positive in_features and out_features", pos)
		}
	case "sequential":
		if len(l.Layers) == 0 {
			return errors.Newf("%s: sequential requires at least one layer", pos)
		}
		return validateLayers(l.Layers, pos+".", false)
	}
	return nil
}

// setFields returns the names of parameter fields present on l. A zero
// value counts as absent, so defaults apply.
func (l *LayerSpec) setFields() []string {
	var set []string
	if l.Kernel != 0 {
		set = append(set, "kernel")
	}
	if l.Stride != 0 {
		set = append(set, "stride")
	}
	if l.Padding != 0 {
		set = append(set, "padding")
	}
	if l.InChannels != 0 {
		set = append(set, "in_channels")
	}
	if l.OutChannels != 0 {
		set = append(set, "out_channels")
	}
	if l.InFeatures != 0 {
		set = append(set, "in_features")
	}
	if l.OutFeatures != 0 {
		set = append(set, "out_features")
	}
	if l.NumFeatures != 0 {
		set = append(set, "num_features")
	}
	if l.P != nil {
		set = append(set, "p")
	}
	if len(l.Layers) != 0 {
		set = append(set, "layers")
	}
	return set
}
