package nn

import "fmt"

// BatchNorm2D describes a 2D batch normalization layer.
//
// Normalization rescales values per channel without moving them, so the
// analyzer carries the spatial state through it unchanged.
type BatchNorm2D struct {
	numFeatures int
}

// NewBatchNorm2D creates a batch normalization descriptor over
// numFeatures channels.
func NewBatchNorm2D(numFeatures int) *BatchNorm2D {
	if numFeatures <= 0 {
		panic(fmt.Sprintf("batchnorm2d: invalid num_features %d", numFeatures))
	}
	return &BatchNorm2D{numFeatures: numFeatures}
}

// Kind returns KindPassthrough.
func (b *BatchNorm2D) Kind() Kind {
	return KindPassthrough
}

// TypeName returns "BatchNorm2D".
func (b *BatchNorm2D) TypeName() string {
	return "BatchNorm2D"
}

// NamedChildren returns nil.
func (b *BatchNorm2D) NamedChildren() []NamedModule {
	return nil
}

// NumFeatures returns the number of normalized channels.
func (b *BatchNorm2D) NumFeatures() int {
	return b.numFeatures
}

// String returns a string representation of the layer.
func (b *BatchNorm2D) String() string {
	return fmt.Sprintf("BatchNorm2D(num_features=%d)", b.numFeatures)
}
