package nn

import "iter"

// Walk returns a pre-order iterator over root and every module beneath
// it, paired with dotted paths: the root's path is "", its children are
// their bare names, and deeper modules join segments with '.', as in
// "features.0".
//
// Parents are always yielded before their children, and siblings appear
// in declaration order. The sequence can be ranged over more than once;
// each range starts a fresh traversal. Cycles are not detected; the
// module graph must be a finite tree.
func Walk(root Module) iter.Seq2[string, Module] {
	return func(yield func(string, Module) bool) {
		walk("", root, yield)
	}
}

func walk(path string, m Module, yield func(string, Module) bool) bool {
	if !yield(path, m) {
		return false
	}
	for _, child := range m.NamedChildren() {
		childPath := child.Name
		if path != "" {
			childPath = path + "." + child.Name
		}
		if !walk(childPath, child.Module, yield) {
			return false
		}
	}
	return true
}
