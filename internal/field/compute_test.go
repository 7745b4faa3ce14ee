package field

import (
	"bytes"
	"fmt"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/born-ml/rfield/internal/nn"
)

// lenet builds the classic LeNet-5 layout used across these tests.
func lenet() nn.Module {
	return nn.NewComposite("LeNet",
		nn.Named("features", nn.NewSequential(
			nn.NewConv2D(1, 6, 5, 1, 0),
			nn.NewReLU(),
			nn.NewMaxPool2D(2, 2, 0),
			nn.NewConv2D(6, 16, 5, 1, 0),
			nn.NewReLU(),
			nn.NewMaxPool2D(2, 2, 0),
		)),
		nn.Named("classifier", nn.NewSequential(
			nn.NewFlatten(),
			nn.NewLinear(256, 120),
			nn.NewReLU(),
			nn.NewLinear(120, 84),
			nn.NewReLU(),
			nn.NewLinear(84, 10),
		)),
	)
}

// alexnet builds the torchvision AlexNet feature extractor and
// classifier.
func alexnet() nn.Module {
	return nn.NewComposite("AlexNet",
		nn.Named("features", nn.NewSequential(
			nn.NewConv2D(3, 64, 11, 4, 2),
			nn.NewReLU(),
			nn.NewMaxPool2D(3, 2, 0),
			nn.NewConv2D(64, 192, 5, 1, 2),
			nn.NewReLU(),
			nn.NewMaxPool2D(3, 2, 0),
			nn.NewConv2D(192, 384, 3, 1, 1),
			nn.NewReLU(),
			nn.NewConv2D(384, 256, 3, 1, 1),
			nn.NewReLU(),
			nn.NewConv2D(256, 256, 3, 1, 1),
			nn.NewReLU(),
			nn.NewMaxPool2D(3, 2, 0),
		)),
		nn.Named("classifier", nn.NewSequential(
			nn.NewDropout(0.5),
			nn.NewLinear(9216, 4096),
			nn.NewReLU(),
			nn.NewDropout(0.5),
			nn.NewLinear(4096, 4096),
			nn.NewReLU(),
			nn.NewLinear(4096, 1000),
		)),
	)
}

// TestCompute_BareConv tests analyzing a single convolution as the
// whole network.
func TestCompute_BareConv(t *testing.T) {
	conv := nn.NewConv2D(1, 1, 3, 1, 0)

	records, err := Compute(conv, [2]int{5, 5}, -1)
	require.NoError(t, err)
	require.Len(t, records, 1)

	rec := records[0]
	assert.Equal(t, 0, rec.Depth)
	assert.Equal(t, "", rec.Name)
	assert.Equal(t, "Conv2D", rec.Type)

	require.NotNil(t, rec.State)
	assert.Equal(t, [2]int{3, 3}, rec.State.OutputShape)
	assert.Equal(t, [2]float64{1.5, 1.5}, rec.State.Origin)
	assert.Equal(t, 1, rec.State.Jump)
	assert.Equal(t, 3, rec.State.ReceptiveField)
}

// TestCompute_BareConvNonIntegral tests that a bare convolution whose
// geometry does not tile the input fails loudly.
func TestCompute_BareConvNonIntegral(t *testing.T) {
	// (6 - 3)/2 + 1 = 2.5
	conv := nn.NewConv2D(1, 1, 3, 2, 0)

	records, err := Compute(conv, [2]int{6, 6}, -1)
	require.Error(t, err)
	assert.True(t, errors.HasAssertionFailure(err))
	assert.ErrorContains(t, err, "non-integral output size")
	assert.Nil(t, records)
}

// TestCompute_NestedConvFloors tests that the same fractional geometry
// is floored, not rejected, once the convolution sits inside a
// container.
func TestCompute_NestedConvFloors(t *testing.T) {
	model := nn.NewSequential(nn.NewConv2D(1, 1, 3, 2, 0))

	records, err := Compute(model, [2]int{6, 6}, -1)
	require.NoError(t, err)
	require.Len(t, records, 2)

	assert.Nil(t, records[0].State)

	require.NotNil(t, records[1].State)
	assert.Equal(t, [2]int{2, 2}, records[1].State.OutputShape)
	assert.Equal(t, [2]float64{1.5, 1.5}, records[1].State.Origin)
	assert.Equal(t, 2, records[1].State.Jump)
	assert.Equal(t, 3, records[1].State.ReceptiveField)
}

// TestCompute_PassthroughKeepsState tests that shape-preserving layers
// report the running state unchanged, as independent copies.
func TestCompute_PassthroughKeepsState(t *testing.T) {
	model := nn.NewSequential(
		nn.NewConv2D(1, 8, 3, 1, 0),
		nn.NewReLU(),
		nn.NewBatchNorm2D(8),
	)

	records, err := Compute(model, [2]int{10, 10}, -1)
	require.NoError(t, err)
	require.Len(t, records, 4)

	conv, relu, norm := records[1], records[2], records[3]
	require.NotNil(t, conv.State)
	require.NotNil(t, relu.State)
	require.NotNil(t, norm.State)

	assert.Equal(t, *conv.State, *relu.State)
	assert.Equal(t, *conv.State, *norm.State)
	assert.NotSame(t, conv.State, relu.State)
	assert.NotSame(t, relu.State, norm.State)
}

// TestCompute_EmptyContainers tests that childless containers produce a
// single stateless record.
func TestCompute_EmptyContainers(t *testing.T) {
	for _, model := range []nn.Module{nn.NewSequential(), nn.NewComposite("Empty")} {
		records, err := Compute(model, [2]int{32, 32}, -1)
		require.NoError(t, err)
		require.Len(t, records, 1)
		assert.Equal(t, 0, records[0].Depth)
		assert.Nil(t, records[0].State)
	}
}

// TestCompute_LeNet tests the full record sequence for LeNet-5 on a
// 28x28 input.
func TestCompute_LeNet(t *testing.T) {
	records, err := Compute(lenet(), [2]int{28, 28}, -1)
	require.NoError(t, err)
	require.Len(t, records, 15)

	type row struct {
		depth int
		name  string
		typ   string
		state *State
	}
	sized := func(n int, origin float64, jump, rf int) *State {
		return &State{
			OutputShape:    [2]int{n, n},
			Origin:         [2]float64{origin, origin},
			Jump:           jump,
			ReceptiveField: rf,
		}
	}

	want := []row{
		{0, "", "LeNet", nil},
		{1, "├─ features", "Sequential", nil},
		{2, "|    └─ 0", "Conv2D", sized(24, 2.5, 1, 5)},
		{2, "|    └─ 1", "ReLU", sized(24, 2.5, 1, 5)},
		{2, "|    └─ 2", "MaxPool2D", sized(12, 3.0, 2, 6)},
		{2, "|    └─ 3", "Conv2D", sized(8, 7.0, 2, 14)},
		{2, "|    └─ 4", "ReLU", sized(8, 7.0, 2, 14)},
		{2, "|    └─ 5", "MaxPool2D", sized(4, 8.0, 4, 16)},
		{1, "├─ classifier", "Sequential", nil},
		{2, "|    └─ 0", "Flatten", sized(4, 8.0, 4, 16)},
		{2, "|    └─ 1", "Linear", sized(4, 8.0, 4, 16)},
		{2, "|    └─ 2", "ReLU", sized(4, 8.0, 4, 16)},
		{2, "|    └─ 3", "Linear", sized(4, 8.0, 4, 16)},
		{2, "|    └─ 4", "ReLU", sized(4, 8.0, 4, 16)},
		{2, "|    └─ 5", "Linear", sized(4, 8.0, 4, 16)},
	}

	for i, w := range want {
		rec := records[i]
		assert.Equal(t, w.depth, rec.Depth, "record %d depth", i)
		assert.Equal(t, w.name, rec.Name, "record %d name", i)
		assert.Equal(t, w.typ, rec.Type, "record %d type", i)
		if w.state == nil {
			assert.Nil(t, rec.State, "record %d state", i)
		} else {
			assert.Equal(t, w.state, rec.State, "record %d state", i)
		}
	}
}

// TestCompute_AlexNet tests the spatial layers of AlexNet on a 227x227
// input against the well-known receptive field progression.
func TestCompute_AlexNet(t *testing.T) {
	records, err := Compute(alexnet(), [2]int{227, 227}, -1)
	require.NoError(t, err)
	require.Len(t, records, 23)

	// Spatial layers live at features.0 .. features.12, which are
	// records 2..14.
	byPath := map[string]*State{}
	names := LayerNames(alexnet())
	for i, rec := range records {
		byPath[names[i]] = rec.State
	}

	check := func(path string, size int, origin float64, jump, rf int) {
		t.Helper()
		state := byPath[path]
		require.NotNil(t, state, path)
		assert.Equal(t, [2]int{size, size}, state.OutputShape, "%s shape", path)
		assert.Equal(t, [2]float64{origin, origin}, state.Origin, "%s origin", path)
		assert.Equal(t, jump, state.Jump, "%s jump", path)
		assert.Equal(t, rf, state.ReceptiveField, "%s receptive field", path)
	}

	check("features.0", 56, 3.5, 4, 11)     // conv1 11x11/4 pad 2
	check("features.2", 27, 7.5, 8, 19)     // pool1 3x3/2
	check("features.3", 27, 7.5, 8, 51)     // conv2 5x5 pad 2
	check("features.5", 13, 15.5, 16, 67)   // pool2 3x3/2
	check("features.6", 13, 15.5, 16, 99)   // conv3 3x3 pad 1
	check("features.8", 13, 15.5, 16, 131)  // conv4
	check("features.10", 13, 15.5, 16, 163) // conv5
	check("features.12", 6, 31.5, 32, 195)  // pool5 3x3/2

	// The classifier reports the terminal feature geometry.
	check("classifier.6", 6, 31.5, 32, 195)
}

// TestCompute_JumpAndReceptiveFieldClosedForms tests the running
// products and sums over an irregular layer chain.
func TestCompute_JumpAndReceptiveFieldClosedForms(t *testing.T) {
	model := nn.NewSequential(
		nn.NewConv2D(1, 8, 3, 2, 0),
		nn.NewMaxPool2D(2, 2, 0),
		nn.NewConv2D(8, 16, 5, 3, 0),
	)

	records, err := Compute(model, [2]int{100, 100}, -1)
	require.NoError(t, err)
	require.Len(t, records, 4)

	// Jump is the product of all strides so far.
	assert.Equal(t, 2, records[1].State.Jump)
	assert.Equal(t, 4, records[2].State.Jump)
	assert.Equal(t, 12, records[3].State.Jump)

	// Receptive field is 1 + sum of (kernel-1) * preceding jump.
	assert.Equal(t, 1+(3-1)*1, records[1].State.ReceptiveField)
	assert.Equal(t, 3+(2-1)*2, records[2].State.ReceptiveField)
	assert.Equal(t, 5+(5-1)*4, records[3].State.ReceptiveField)

	// Output sizes floor at every step: 49.5 -> 49, 24.5 -> 24, 7.33 -> 7.
	assert.Equal(t, [2]int{49, 49}, records[1].State.OutputShape)
	assert.Equal(t, [2]int{24, 24}, records[2].State.OutputShape)
	assert.Equal(t, [2]int{7, 7}, records[3].State.OutputShape)

	// Origins accumulate (kernel-1)/2 - padding, scaled by jump.
	assert.Equal(t, [2]float64{1.5, 1.5}, records[1].State.Origin)
	assert.Equal(t, [2]float64{2.5, 2.5}, records[2].State.Origin)
	assert.Equal(t, [2]float64{10.5, 10.5}, records[3].State.Origin)
}

// TestCompute_PaddingShiftsOriginBack tests that padding moves the
// first output center toward (and past) the input border.
func TestCompute_PaddingShiftsOriginBack(t *testing.T) {
	// Same-padded 3x3 conv: origin stays at the pixel center.
	same := nn.NewSequential(nn.NewConv2D(1, 1, 3, 1, 1))
	records, err := Compute(same, [2]int{8, 8}, -1)
	require.NoError(t, err)
	assert.Equal(t, [2]float64{0.5, 0.5}, records[1].State.Origin)
	assert.Equal(t, [2]int{8, 8}, records[1].State.OutputShape)

	// Over-padded conv: the first window centers before the input.
	over := nn.NewSequential(nn.NewConv2D(1, 1, 3, 1, 2))
	records, err = Compute(over, [2]int{8, 8}, -1)
	require.NoError(t, err)
	assert.Equal(t, [2]float64{-0.5, -0.5}, records[1].State.Origin)
	assert.Equal(t, [2]int{10, 10}, records[1].State.OutputShape)
}

// TestCompute_StackedStridedConvs tests two same-padded strided
// convolutions back to back.
func TestCompute_StackedStridedConvs(t *testing.T) {
	model := nn.NewSequential(
		nn.NewConv2D(1, 8, 3, 2, 1),
		nn.NewConv2D(8, 16, 3, 2, 1),
	)

	records, err := Compute(model, [2]int{8, 8}, -1)
	require.NoError(t, err)
	require.Len(t, records, 3)

	first, second := records[1].State, records[2].State
	require.NotNil(t, first)
	require.NotNil(t, second)

	assert.Equal(t, [2]int{4, 4}, first.OutputShape)
	assert.Equal(t, 2, first.Jump)
	assert.Equal(t, 3, first.ReceptiveField)

	assert.Equal(t, [2]int{2, 2}, second.OutputShape)
	assert.Equal(t, 4, second.Jump)
	assert.Equal(t, 7, second.ReceptiveField)

	// Padding 1 cancels the (kernel-1)/2 shift at both layers.
	assert.Equal(t, [2]float64{0.5, 0.5}, first.Origin)
	assert.Equal(t, [2]float64{0.5, 0.5}, second.Origin)
}

// TestCompute_DeepCollapse tests folding a three-level tree into its
// depth-1 blocks.
func TestCompute_DeepCollapse(t *testing.T) {
	inner := nn.NewSequential(nn.NewConv2D(1, 1, 3, 1, 0))
	block := nn.NewSequential(inner, nn.NewMaxPool2D(2, 2, 0))
	model := nn.NewComposite("Net", nn.Named("block", block))

	records, err := Compute(model, [2]int{10, 10}, 1)
	require.NoError(t, err)
	require.Len(t, records, 2)

	for _, rec := range records {
		assert.LessOrEqual(t, rec.Depth, 1)
	}

	assert.Nil(t, records[0].State)

	// The block adopts the terminal state of its subtree, reached at
	// the pooling layer that closes it.
	require.NotNil(t, records[1].State)
	assert.Equal(t, [2]int{4, 4}, records[1].State.OutputShape)
	assert.Equal(t, [2]float64{2.0, 2.0}, records[1].State.Origin)
	assert.Equal(t, 2, records[1].State.Jump)
	assert.Equal(t, 4, records[1].State.ReceptiveField)
}

// brokenConv claims to be a convolution without carrying spatial
// parameters.
type brokenConv struct{}

func (brokenConv) Kind() nn.Kind                   { return nn.KindConv2D }
func (brokenConv) TypeName() string                { return "BrokenConv" }
func (brokenConv) NamedChildren() []nn.NamedModule { return nil }

// TestCompute_SpatialContractViolation tests that a conv-kinded module
// without spatial parameters is reported as an internal error.
func TestCompute_SpatialContractViolation(t *testing.T) {
	model := nn.NewSequential(brokenConv{})

	records, err := Compute(model, [2]int{8, 8}, -1)
	require.Error(t, err)
	assert.True(t, errors.HasAssertionFailure(err))
	assert.ErrorContains(t, err, "does not implement nn.Spatial")
	assert.Nil(t, records)
}

// TestCompute_MaxDepth tests depth folding through the public entry
// point.
func TestCompute_MaxDepth(t *testing.T) {
	full, err := Compute(lenet(), [2]int{28, 28}, -1)
	require.NoError(t, err)

	terminal := State{
		OutputShape:    [2]int{4, 4},
		Origin:         [2]float64{8.0, 8.0},
		Jump:           4,
		ReceptiveField: 16,
	}

	t.Run("depth 0 keeps only the root", func(t *testing.T) {
		records, err := Compute(lenet(), [2]int{28, 28}, 0)
		require.NoError(t, err)
		require.Len(t, records, 1)
		assert.Equal(t, "LeNet", records[0].Type)
		require.NotNil(t, records[0].State)
		assert.Equal(t, terminal, *records[0].State)
	})

	t.Run("depth 1 folds each top-level block", func(t *testing.T) {
		records, err := Compute(lenet(), [2]int{28, 28}, 1)
		require.NoError(t, err)
		require.Len(t, records, 3)

		assert.Nil(t, records[0].State)

		require.NotNil(t, records[1].State)
		assert.Equal(t, "├─ features", records[1].Name)
		assert.Equal(t, terminal, *records[1].State)

		require.NotNil(t, records[2].State)
		assert.Equal(t, "├─ classifier", records[2].Name)
		assert.Equal(t, terminal, *records[2].State)
	})

	t.Run("depth at the deepest layer changes nothing", func(t *testing.T) {
		records, err := Compute(lenet(), [2]int{28, 28}, 2)
		require.NoError(t, err)
		assert.Equal(t, full, records)
	})

	t.Run("depth beyond the tree changes nothing", func(t *testing.T) {
		records, err := Compute(lenet(), [2]int{28, 28}, 10)
		require.NoError(t, err)
		assert.Equal(t, full, records)
	})
}

// TestLayerNames tests path listing in walk order.
func TestLayerNames(t *testing.T) {
	names := LayerNames(lenet())

	want := []string{
		"",
		"features",
		"features.0",
		"features.1",
		"features.2",
		"features.3",
		"features.4",
		"features.5",
		"classifier",
		"classifier.0",
		"classifier.1",
		"classifier.2",
		"classifier.3",
		"classifier.4",
		"classifier.5",
	}
	assert.Equal(t, want, names)
}

// TestCompute_GoldenLeNet locks the full LeNet record sequence into a
// golden file.
func TestCompute_GoldenLeNet(t *testing.T) {
	records, err := Compute(lenet(), [2]int{28, 28}, -1)
	require.NoError(t, err)

	g := goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
	g.Assert(t, "lenet_records", dumpRecords(records))
}

// dumpRecords renders records in a stable line format for golden
// comparisons.
func dumpRecords(records []Record) []byte {
	var buf bytes.Buffer
	for _, rec := range records {
		if rec.State == nil {
			fmt.Fprintf(&buf, "[%d] %q %s -\n", rec.Depth, rec.Name, rec.Type)
			continue
		}
		s := rec.State
		fmt.Fprintf(&buf, "[%d] %q %s shape=(%d, %d) origin=(%.1f, %.1f) jump=%d rf=%d\n",
			rec.Depth, rec.Name, rec.Type,
			s.OutputShape[0], s.OutputShape[1],
			s.Origin[0], s.Origin[1],
			s.Jump, s.ReceptiveField)
	}
	return buf.Bytes()
}
