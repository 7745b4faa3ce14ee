// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package field computes receptive field statistics for feed-forward
// convolutional networks.
//
// # Overview
//
// For every layer in a module tree the analysis tracks four quantities
// along each spatial axis:
//   - Output shape: the spatial size of the layer's output
//   - Origin: the input coordinate under the center of the first output unit
//   - Jump: the input distance between adjacent output units
//   - Receptive field: the input extent visible to a single output unit
//
// The computation is purely static. It reads kernel size, stride and
// padding from each layer; no tensors are allocated and no forward pass
// runs.
//
// # Basic Usage
//
//	import (
//	    "github.com/born-ml/rfield/field"
//	    "github.com/born-ml/rfield/nn"
//	)
//
//	func main() {
//	    model := nn.NewSequential(
//	        nn.NewConv2D(1, 6, 5, 1, 0),
//	        nn.NewReLU(),
//	        nn.NewMaxPool2D(2, 2, 0),
//	    )
//
//	    if err := field.Print(model, [2]int{28, 28}, -1); err != nil {
//	        log.Fatal(err)
//	    }
//	}
//
// # Records
//
// Compute returns one Record per visited module in pre-order. Container
// records carry no state; passthrough layers repeat the state of the
// preceding spatial layer.
//
// # Depth Collapse
//
// A non-negative maxDepth folds the analysis of deeper layers into
// their depth-maxDepth ancestors: each surviving record adopts the
// final state reached inside its subtree.
package field
