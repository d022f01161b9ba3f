package simdstring

import (
	"github.com/pkg/errors"
	"github.com/rawbytedev/simdstring/internal/common"
	"gopkg.in/yaml.v3"
)

// MarshalBinary encodes the content as a uvarint length followed by the
// bytes.
func (s *String) MarshalBinary() ([]byte, error) {
	buf := make([]byte, 0, s.length+10)
	buf = common.WriteVarUint(buf, uint64(s.length))
	return append(buf, s.bytes()...), nil
}

// UnmarshalBinary decodes data produced by MarshalBinary.
func (s *String) UnmarshalBinary(data []byte) error {
	n, k := common.ReadVarUint(data)
	if k == 0 {
		return errors.Wrap(ErrTruncated, "length prefix")
	}
	rest := data[k:]
	if uint64(len(rest)) < n {
		return errors.Wrapf(ErrTruncated, "want %d bytes, have %d", n, len(rest))
	}
	if uint64(len(rest)) > n {
		return errors.Wrapf(ErrInvalidArgument, "%d trailing bytes", uint64(len(rest))-n)
	}
	s.assignBytes(rest)
	return nil
}

// MarshalText returns a copy of the content.
func (s *String) MarshalText() ([]byte, error) {
	return append([]byte(nil), s.bytes()...), nil
}

// UnmarshalText replaces the content with a copy of text.
func (s *String) UnmarshalText(text []byte) error {
	s.assignBytes(text)
	return nil
}

// MarshalYAML encodes the string as a YAML scalar.
func (s *String) MarshalYAML() (any, error) {
	return s.String(), nil
}

// UnmarshalYAML accepts a scalar node.
func (s *String) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.ScalarNode {
		return errors.Wrapf(ErrInvalidArgument, "line %d: expected a scalar", node.Line)
	}
	s.AssignString(node.Value)
	return nil
}
