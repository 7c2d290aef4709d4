// Package override converts parameter key/value pairs into the canonical
// key=value override tokens consumed by launcher backends.
package override

import (
	"fmt"
	"strings"

	"github.com/zclconf/go-cty/cty"
)

// quoteTrigger lists the characters that force a string value to be wrapped
// in double quotes so the downstream override parser treats it as a single
// literal.
const quoteTrigger = " ,[]{}"

// InvalidParameterError reports a parameter that cannot be rendered as an
// override token: an empty key, or a value outside the supported scalar
// kinds (bool, number, string, null).
type InvalidParameterError struct {
	Key  string
	Type string
}

// Error implements the error interface.
func (e *InvalidParameterError) Error() string {
	if e.Key == "" {
		return "invalid parameter: key must be a non-empty string"
	}
	return fmt.Sprintf("invalid parameter %q: unsupported value type %s", e.Key, e.Type)
}

// Format renders a single key/value pair as an override token.
//
//   - booleans render as the lowercase literals true/false
//   - null renders as the literal null
//   - strings containing any of space, comma, [, ], {, } are wrapped in
//     double quotes; embedded double quotes are deliberately left unescaped
//     to stay compatible with the downstream override parser
//   - numbers render in their plain decimal form
//
// The function is pure and total over its declared domain; anything else
// yields an *InvalidParameterError.
func Format(key string, value cty.Value) (string, error) {
	if key == "" {
		return "", &InvalidParameterError{}
	}
	if !value.IsKnown() {
		return "", &InvalidParameterError{Key: key, Type: "unknown"}
	}
	if value.IsNull() {
		return key + "=null", nil
	}

	switch value.Type() {
	case cty.Bool:
		if value.True() {
			return key + "=true", nil
		}
		return key + "=false", nil

	case cty.String:
		s := value.AsString()
		if strings.ContainsAny(s, quoteTrigger) {
			return key + `="` + s + `"`, nil
		}
		return key + "=" + s, nil

	case cty.Number:
		return key + "=" + value.AsBigFloat().Text('f', -1), nil

	default:
		return "", &InvalidParameterError{Key: key, Type: value.Type().FriendlyName()}
	}
}
