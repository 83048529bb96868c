// Package jsondoc converts a JSON document description into an RTF
// document.
package jsondoc

import (
	"github.com/bytedance/sonic"

	"github.com/xavi-mat/simplertf/core/errors"
	"github.com/xavi-mat/simplertf/core/rtf"
	"github.com/xavi-mat/simplertf/internal/formats/base"
)

// Decode parses a JSON document description.
func Decode(data []byte) (*base.DocumentSpec, error) {
	var spec base.DocumentSpec
	if err := sonic.Unmarshal(data, &spec); err != nil {
		return nil, &errors.ParseError{Input: "json document", Message: "invalid JSON", Err: err}
	}
	return &spec, nil
}

// Build decodes data and replays it onto a fresh document.
func Build(data []byte, tpl *rtf.Template, opts ...rtf.Option) (*rtf.Document, error) {
	spec, err := Decode(data)
	if err != nil {
		return nil, err
	}
	return spec.Apply(tpl, opts...)
}
