// Package decoder contains the default [domain.Decoder] implementation,
// which maps raw records onto caller-provided structs.
package decoder

import (
	"fmt"

	"github.com/mitchellh/mapstructure"
	"github.com/vinicius-lino-figueiredo/boolq/domain"
)

var errDecode = fmt.Errorf("could not decode record")

// Decoder implements domain.Decoder.
type Decoder struct{}

// NewDecoder returns a new implementation of domain.Decoder.
func NewDecoder() domain.Decoder {
	return &Decoder{}
}

// Decode implements domain.Decoder. Target must be a non-nil pointer;
// struct fields are matched by their boolq tag, falling back to the field
// name.
func (d *Decoder) Decode(source any, target any) error {
	if target == nil {
		return domain.ErrTargetNil{}
	}
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		TagName: "boolq",
		Result:  target,
	})
	if err != nil {
		return fmt.Errorf("%w: %w", errDecode, err)
	}
	if err := dec.Decode(source); err != nil {
		return fmt.Errorf("%w: %w", errDecode, err)
	}
	return nil
}
