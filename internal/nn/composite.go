package nn

import (
	"fmt"
	"strings"
)

// Composite is a container with explicitly named children. It stands in
// for model classes that hold submodules as fields ("features",
// "classifier") rather than as an indexed list, and its type name is
// whatever the model is called.
type Composite struct {
	typeName string
	children []NamedModule
}

// NewComposite creates a container shown as typeName with the given
// named children. An empty typeName defaults to "Composite".
//
// Child names must be non-empty and unique, and must not contain '.',
// which the walk reserves for joining path segments.
func NewComposite(typeName string, children ...NamedModule) *Composite {
	if typeName == "" {
		typeName = "Composite"
	}
	c := &Composite{typeName: typeName}
	for _, child := range children {
		c.Add(child.Name, child.Module)
	}
	return c
}

// Add appends a named child.
//
// Panics on an empty, dotted, or duplicate name.
func (c *Composite) Add(name string, module Module) {
	if name == "" {
		panic("composite: empty child name")
	}
	if strings.Contains(name, ".") {
		panic(fmt.Sprintf("composite: child name %q contains '.'", name))
	}
	for _, child := range c.children {
		if child.Name == name {
			panic(fmt.Sprintf("composite: duplicate child name %q", name))
		}
	}
	c.children = append(c.children, NamedModule{Name: name, Module: module})
}

// Kind returns KindContainer.
func (c *Composite) Kind() Kind {
	return KindContainer
}

// TypeName returns the display name given at construction.
func (c *Composite) TypeName() string {
	return c.typeName
}

// NamedChildren returns the children in insertion order.
func (c *Composite) NamedChildren() []NamedModule {
	return c.children
}

// Len returns the number of children.
func (c *Composite) Len() int {
	return len(c.children)
}
