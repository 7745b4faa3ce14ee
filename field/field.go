// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package field

import (
	"io"

	"github.com/born-ml/rfield/internal/field"
	"github.com/born-ml/rfield/nn"
)

// State holds the per-axis receptive field quantities after a layer.
type State = field.State

// Record is the analysis result for a single module in the tree.
type Record = field.Record

// LayerNames returns the dotted path of every module in the tree in
// pre-order. The first entry is the root, whose path is empty.
//
// Example:
//
//	for _, name := range field.LayerNames(model) {
//	    fmt.Println(name)
//	}
func LayerNames(m nn.Module) []string {
	return field.LayerNames(m)
}

// Compute runs the receptive field analysis over the module tree.
//
// Parameters:
//   - m: Root of the module tree
//   - inputShape: Spatial input size as (height, width)
//   - maxDepth: Collapse depth; negative keeps every layer
//
// Returns one record per visited module in pre-order.
//
// Example:
//
//	records, err := field.Compute(model, [2]int{227, 227}, -1)
func Compute(m nn.Module, inputShape [2]int, maxDepth int) ([]Record, error) {
	return field.Compute(m, inputShape, maxDepth)
}

// Fprint renders the receptive field analysis as a table to w.
//
// Example:
//
//	var buf bytes.Buffer
//	err := field.Fprint(&buf, model, [2]int{28, 28}, -1)
func Fprint(w io.Writer, m nn.Module, inputShape [2]int, maxDepth int) error {
	return field.Fprint(w, m, inputShape, maxDepth)
}

// Print renders the receptive field analysis as a table to stdout.
//
// Example:
//
//	err := field.Print(model, [2]int{28, 28}, -1)
func Print(m nn.Module, inputShape [2]int, maxDepth int) error {
	return field.Print(m, inputShape, maxDepth)
}

// TreeLabel converts a dotted module path to its tree-drawing label.
//
// Example:
//
//	field.TreeLabel("features.0")  // "|    └─ 0"
func TreeLabel(path string) string {
	return field.TreeLabel(path)
}
