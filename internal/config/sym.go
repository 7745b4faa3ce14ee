package config

import (
	"github.com/cockroachdb/errors"
	"gopkg.in/yaml.v3"
)

// Sym is a symmetric spatial parameter. Model files may give it as a
// scalar or as a two-element pair whose elements are equal:
//
//	kernel: 3
//	kernel: [3, 3]
//
// Asymmetric pairs are rejected; the analysis tracks a single value per
// spatial parameter.
type Sym int

// UnmarshalYAML implements yaml.Unmarshaler.
func (s *Sym) UnmarshalYAML(value *yaml.Node) error {
	switch value.Kind {
	case yaml.ScalarNode:
		var v int
		if err := value.Decode(&v); err != nil {
			return err
		}
		*s = Sym(v)
		return nil

	case yaml.SequenceNode:
		var pair []int
		if err := value.Decode(&pair); err != nil {
			return err
		}
		if len(pair) != 2 {
			return errors.Newf("line %d: expected a scalar or a two-element pair, got %d elements",
				value.Line, len(pair))
		}
		if pair[0] != pair[1] {
			return errors.Newf("line %d: asymmetric value [%d, %d] is not supported",
				value.Line, pair[0], pair[1])
		}
		*s = Sym(pair[0])
		return nil

	default:
		return errors.Newf("line %d: expected a scalar or a two-element pair", value.Line)
	}
}
