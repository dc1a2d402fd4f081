package param

import (
	"encoding/xml"
	"errors"
	"fmt"
	"log/slog"

	"github.com/scriptdiff/scriptdiff/step/policy"
)

// Type is the discriminator carried in a Parameter element's type attribute.
type Type string

const (
	Boolean Type = "Boolean"
	List    Type = "List"
	Comment Type = "Comment"
)

const (
	on  = "ON"
	off = "OFF"
)

var (
	ErrUnknownType        = errors.New("unknown parameter type")
	ErrMalformedParameter = errors.New("malformed parameter")
)

type decodeFunc func(d *Decoder, attrs []xml.Attr) (string, bool, error)

// decoders holds one entry per observed parameter type.
var decoders = map[Type]decodeFunc{
	Boolean: decodeBoolean,
	List:    decodeList,
	Comment: decodeComment,
}

// Decoder turns typed parameter elements into display fragments.
type Decoder struct {
	policies *policy.Table
	logger   *slog.Logger
}

// NewDecoder returns a Decoder. A nil table or logger falls back to the defaults.
func NewDecoder(policies *policy.Table, logger *slog.Logger) *Decoder {
	if policies == nil {
		policies = policy.Default()
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Decoder{
		policies: policies,
		logger:   logger,
	}
}

// Decode returns the display fragment for the value element nested in a
// parameter of type t. ok is false when the parameter contributes nothing.
// Errors are never fatal to the enclosing step; the parameter is omitted.
func (d *Decoder) Decode(t Type, attrs []xml.Attr) (fragment string, ok bool, err error) {
	decode, found := decoders[t]
	if !found {
		return "", false, fmt.Errorf("%w: %q", ErrUnknownType, t)
	}
	return decode(d, attrs)
}

func decodeBoolean(d *Decoder, attrs []xml.Attr) (string, bool, error) {
	raw, found := attr(attrs, "value")
	if !found {
		return "", false, fmt.Errorf("%w: boolean without value", ErrMalformedParameter)
	}

	var value bool
	switch raw {
	case "True":
		value = true
	case "False":
		value = false
	default:
		return "", false, fmt.Errorf("%w: boolean value %q", ErrMalformedParameter, raw)
	}

	label, _ := attr(attrs, "type")
	if label != "" {
		if _, listed := d.policies.Lookup(label); !listed {
			d.logger.Debug("label missing from policy table", "label", label, "policy", policy.Unlisted)
		}
	}

	switch d.policies.For(label) {
	case policy.LabeledToggle:
		return label + ": " + onOff(value), true, nil
	case policy.FlagIfTrue:
		if !value {
			return "", false, nil
		}
		return label, true, nil
	default:
		return onOff(value), true, nil
	}
}

// decodeList renders the option's display name. The referenced id in value is
// not checked, so broken references render their placeholder name.
func decodeList(_ *Decoder, attrs []xml.Attr) (string, bool, error) {
	name, found := attr(attrs, "name")
	if !found {
		return "", false, fmt.Errorf("%w: list without name", ErrMalformedParameter)
	}
	return name, name != "", nil
}

func decodeComment(_ *Decoder, attrs []xml.Attr) (string, bool, error) {
	text, found := attr(attrs, "value")
	if !found {
		return "", false, fmt.Errorf("%w: comment without value", ErrMalformedParameter)
	}
	return text, text != "", nil
}

func onOff(value bool) string {
	if value {
		return on
	}
	return off
}

func attr(attrs []xml.Attr, name string) (string, bool) {
	for _, a := range attrs {
		if a.Name.Local == name {
			return a.Value, true
		}
	}
	return "", false
}
