package nn

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func walkModel() Module {
	return NewComposite("LeNet",
		Named("features", NewSequential(
			NewConv2D(1, 6, 5, 1, 0),
			NewReLU(),
			NewMaxPool2D(2, 2, 0),
		)),
		Named("classifier", NewSequential(
			NewFlatten(),
			NewLinear(864, 10),
		)),
	)
}

// TestWalk_Preorder tests that parents come before children in
// declaration order, with dotted paths.
func TestWalk_Preorder(t *testing.T) {
	var paths []string
	var types []string
	for path, module := range Walk(walkModel()) {
		paths = append(paths, path)
		types = append(types, module.TypeName())
	}

	wantPaths := []string{
		"",
		"features",
		"features.0",
		"features.1",
		"features.2",
		"classifier",
		"classifier.0",
		"classifier.1",
	}
	wantTypes := []string{
		"LeNet",
		"Sequential",
		"Conv2D",
		"ReLU",
		"MaxPool2D",
		"Sequential",
		"Flatten",
		"Linear",
	}

	assert.Equal(t, wantPaths, paths)
	assert.Equal(t, wantTypes, types)
}

// TestWalk_SingleLeaf tests walking a tree that is just one layer.
func TestWalk_SingleLeaf(t *testing.T) {
	conv := NewConv2D(1, 6, 5, 1, 0)

	var visited int
	for path, module := range Walk(conv) {
		assert.Equal(t, "", path)
		assert.Same(t, conv, module.(*Conv2D))
		visited++
	}
	assert.Equal(t, 1, visited)
}

// TestWalk_EarlyStop tests that breaking out of the range stops the
// traversal cleanly.
func TestWalk_EarlyStop(t *testing.T) {
	var visited int
	for range Walk(walkModel()) {
		visited++
		if visited == 3 {
			break
		}
	}
	assert.Equal(t, 3, visited)
}

// TestWalk_Reusable tests that the sequence can be ranged over twice.
func TestWalk_Reusable(t *testing.T) {
	seq := Walk(walkModel())

	var first, second []string
	for path := range seq {
		first = append(first, path)
	}
	for path := range seq {
		second = append(second, path)
	}

	require.NotEmpty(t, first)
	assert.Equal(t, first, second)
}

// TestWalk_DeepNesting tests path joining through nested containers.
func TestWalk_DeepNesting(t *testing.T) {
	model := NewSequential(
		NewSequential(
			NewSequential(
				NewReLU(),
			),
		),
	)

	var paths []string
	for path := range Walk(model) {
		paths = append(paths, path)
	}

	assert.Equal(t, []string{"", "0", "0.0", "0.0.0"}, paths)
}
