package nn

import "strconv"

// Sequential is a container module that chains layers in order.
//
// Children are named by their zero-based position, so a walk over
//
//	model := nn.NewSequential(
//	    nn.NewConv2D(1, 6, 5, 1, 0),
//	    nn.NewReLU(),
//	    nn.NewMaxPool2D(2, 2, 0),
//	)
//
// yields the paths "0", "1", "2" under the root.
type Sequential struct {
	modules []Module
}

// NewSequential creates a new Sequential container.
func NewSequential(modules ...Module) *Sequential {
	return &Sequential{modules: modules}
}

// Kind returns KindContainer.
func (s *Sequential) Kind() Kind {
	return KindContainer
}

// TypeName returns "Sequential".
func (s *Sequential) TypeName() string {
	return "Sequential"
}

// NamedChildren returns the children, each named by its index.
func (s *Sequential) NamedChildren() []NamedModule {
	if len(s.modules) == 0 {
		return nil
	}
	children := make([]NamedModule, len(s.modules))
	for i, module := range s.modules {
		children[i] = NamedModule{Name: strconv.Itoa(i), Module: module}
	}
	return children
}

// Add appends a module to the sequence.
//
// This allows building models incrementally:
//
//	model := nn.NewSequential()
//	model.Add(nn.NewConv2D(1, 6, 5, 1, 0))
//	model.Add(nn.NewReLU())
func (s *Sequential) Add(module Module) {
	s.modules = append(s.modules, module)
}

// Len returns the number of modules in the sequence.
func (s *Sequential) Len() int {
	return len(s.modules)
}

// Module returns the module at the given index.
//
// Panics if index is out of bounds.
func (s *Sequential) Module(index int) Module {
	if index < 0 || index >= len(s.modules) {
		panic("Sequential.Module: index out of bounds")
	}
	return s.modules[index]
}
