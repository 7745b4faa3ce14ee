// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package nn describes neural network architectures as module trees.
//
// # Overview
//
// This package contains:
//   - Spatial layers: Conv2D, MaxPool2D
//   - Passthrough layers: Linear, BatchNorm2D, Dropout, Flatten
//   - Activations: ReLU, Sigmoid, Tanh, SiLU
//   - Containers: Sequential, Composite
//   - Traversal: Walk, the Module and Spatial interfaces
//
// Modules carry structure and hyperparameters only. There is no forward
// pass and there are no weights; the tree exists so that static analyses
// such as receptive field computation can traverse it.
//
// # Basic Usage
//
//	import (
//	    "github.com/born-ml/rfield/nn"
//	)
//
//	func main() {
//	    model := nn.NewComposite("LeNet",
//	        nn.Named("features", nn.NewSequential(
//	            nn.NewConv2D(1, 6, 5, 1, 0),
//	            nn.NewReLU(),
//	            nn.NewMaxPool2D(2, 2, 0),
//	        )),
//	    )
//
//	    for path, layer := range nn.Walk(model) {
//	        fmt.Println(path, layer.TypeName())
//	    }
//	}
//
// # Containers
//
// Sequential names its children by position:
//
//	seq := nn.NewSequential(
//	    nn.NewConv2D(3, 64, 3, 1, 1),
//	    nn.NewReLU(),
//	)
//
// Composite names its children explicitly:
//
//	model := nn.NewComposite("AlexNet",
//	    nn.Named("features", features),
//	    nn.Named("classifier", classifier),
//	)
//
// # Traversal
//
// Walk visits every module in pre-order. The root is yielded first with
// an empty path; nested children get dotted paths such as "features.0":
//
//	for path, layer := range nn.Walk(model) {
//	    fmt.Println(path, layer.TypeName())
//	}
package nn
