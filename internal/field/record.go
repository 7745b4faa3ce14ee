package field

import "strings"

// State holds the four spatial statistics tracked through the network.
//
// Origin is the input-space coordinate of the center of the receptive
// field of the first (top-left) output cell; a fresh input starts at
// (0.5, 0.5), the center of the first pixel. Jump is the distance in
// input pixels between the receptive field centers of adjacent output
// cells. ReceptiveField is the side length of the square input region
// one output cell depends on.
type State struct {
	OutputShape    [2]int
	Origin         [2]float64
	Jump           int
	ReceptiveField int
}

// clone returns an independent copy of s.
func (s State) clone() *State {
	copied := s
	return &copied
}

// Record is one row of the analysis: a module at Depth in the tree,
// shown as Name, of layer type Type.
//
// State is nil for containers, which have no geometry of their own.
// For spatial layers it is the state after the layer was applied, and
// for passthrough layers it is the unchanged running state.
type Record struct {
	Depth int
	Name  string
	Type  string
	State *State
}

// pathDepth returns the tree depth encoded in a dotted walk path: 0 for
// the root's empty path, otherwise one more than the number of dots.
func pathDepth(path string) int {
	if path == "" {
		return 0
	}
	return strings.Count(path, ".") + 1
}

// TreeLabel renders a dotted walk path as an indented tree label:
//
//	""             ->  ""
//	"features"     ->  "├─ features"
//	"features.0"   ->  "|    └─ 0"
//	"features.0.1" ->  "|    |    └─ 1"
//
// Depth-1 labels keep the full path; deeper labels show only the final
// segment, indented once per ancestor below the root.
func TreeLabel(path string) string {
	depth := pathDepth(path)
	switch {
	case depth == 0:
		return ""
	case depth == 1:
		return "├─ " + path
	default:
		segment := path[strings.LastIndex(path, ".")+1:]
		return strings.Repeat("|    ", depth-1) + "└─ " + segment
	}
}
