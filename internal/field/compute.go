// Package field computes receptive fields and related spatial
// statistics for feed-forward convolutional networks.
//
// The analysis walks a layer tree (see internal/nn) in declaration
// order and threads four running values through the spatial layers:
// the output shape after each layer, the input coordinates of the first
// output center (origin), the input distance between adjacent output
// centers (jump), and the side length of the input patch one output
// cell sees (receptive field).
//
// Containers contribute tree structure but no geometry; activations and
// other shape-preserving layers report the running state unchanged. The
// resulting records can be folded to a maximum tree depth and rendered
// as a table.
package field

import (
	"math"

	"github.com/cockroachdb/errors"

	"github.com/born-ml/rfield/internal/nn"
)

// LayerNames returns the dotted path of every module in walk order,
// starting with the root's empty path.
func LayerNames(m nn.Module) []string {
	var names []string
	for path := range nn.Walk(m) {
		names = append(names, path)
	}
	return names
}

// Compute walks m and returns one record per visited module in walk
// order, starting with the root itself.
//
// inputShape is the spatial size {height, width} presented to the root.
// maxDepth folds modules deeper than maxDepth into their ancestors at
// that depth; a negative maxDepth keeps the full tree.
//
// When the root itself is a bare convolution, a fractional output size
// means its declared geometry does not tile the input, and Compute
// returns an assertion error. Everywhere else fractional sizes are
// floored, matching how frameworks discard partial windows.
func Compute(m nn.Module, inputShape [2]int, maxDepth int) ([]Record, error) {
	state := State{
		OutputShape:    inputShape,
		Origin:         [2]float64{0.5, 0.5},
		Jump:           1,
		ReceptiveField: 1,
	}

	var records []Record
	for path, layer := range nn.Walk(m) {
		rec := Record{
			Depth: pathDepth(path),
			Name:  TreeLabel(path),
			Type:  layer.TypeName(),
		}

		switch {
		case isContainer(layer):
			// Containers have no geometry of their own.

		case layer.Kind() == nn.KindConv2D || layer.Kind() == nn.KindMaxPool2D:
			spatial, ok := layer.(nn.Spatial)
			if !ok {
				return nil, errors.AssertionFailedf(
					"layer %q has kind %s but does not implement nn.Spatial", path, layer.Kind())
			}
			next, err := apply(state, spatial, rec.Depth == 0 && layer.Kind() == nn.KindConv2D)
			if err != nil {
				return nil, err
			}
			state = next
			rec.State = state.clone()

		default:
			rec.State = state.clone()
		}

		records = append(records, rec)
	}

	if maxDepth >= 0 {
		records = collapse(records, maxDepth)
	}
	return records, nil
}

// isContainer reports whether the analyzer should treat layer as pure
// structure. Anything with children is a container regardless of its
// declared kind.
func isContainer(layer nn.Module) bool {
	return len(layer.NamedChildren()) > 0 || layer.Kind() == nn.KindContainer
}

// apply advances the running state through one spatial layer.
//
// exact reports whether a fractional output size is an error rather
// than floored. That holds only when the traversal root is itself a
// bare convolution: with no surrounding network to absorb it, a
// non-integral size means the declared kernel, stride, and padding do
// not tile the input.
func apply(s State, layer nn.Spatial, exact bool) (State, error) {
	kernel := layer.KernelSize()
	stride := layer.Stride()
	padding := layer.Padding()

	next := s
	for axis := 0; axis < 2; axis++ {
		out := (float64(s.OutputShape[axis])+2*float64(padding)-float64(kernel))/float64(stride) + 1
		if exact && out != math.Trunc(out) {
			return State{}, errors.AssertionFailedf(
				"non-integral output size %v for input %d with kernel_size=%d, stride=%d, padding=%d",
				out, s.OutputShape[axis], kernel, stride, padding)
		}
		next.OutputShape[axis] = int(math.Floor(out))
	}

	shift := (float64(kernel-1)/2 - float64(padding)) * float64(s.Jump)
	next.Origin[0] = s.Origin[0] + shift
	next.Origin[1] = s.Origin[1] + shift
	next.ReceptiveField = s.ReceptiveField + (kernel-1)*s.Jump
	next.Jump = s.Jump * stride
	return next, nil
}
