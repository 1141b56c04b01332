package contact

import (
	"bytes"
	"encoding/json"
	"errors"
	"math"
	"reflect"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Value is a form field that accepts any JSON value. Browsers and bots post
// numbers, booleans and objects as often as strings, so a field keeps both its
// string form and whether it counts as filled in.
type Value struct {
	text   string
	filled bool
}

// Text builds a filled-in Value from a string; "" is not filled in
func Text(s string) Value {
	return Value{text: s, filled: s != ""}
}

// Filled reports whether the field was given a value other than "", 0, false
// or null. Objects and arrays are always filled in, even when empty.
func (v Value) Filled() bool {
	return v.filled
}

// String returns the field's text, or "" when it was not filled in
func (v Value) String() string {
	if !v.filled {
		return ""
	}
	return v.text
}

func (v *Value) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		*v = Value{}
		return nil
	}

	switch data[0] {
	case 'n':
		*v = Value{}
	case 't':
		*v = Value{text: "true", filled: true}
	case 'f':
		*v = Value{text: "false"}
	case '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*v = Text(s)
	case '{':
		*v = Value{text: "[object Object]", filled: true}
	case '[':
		var items []json.RawMessage
		if err := json.Unmarshal(data, &items); err != nil {
			return err
		}
		parts := make([]string, len(items))
		for i, raw := range items {
			var item Value
			if err := item.UnmarshalJSON(raw); err != nil {
				return err
			}
			// null joins as an empty slot; false and 0 keep their text
			parts[i] = item.text
		}
		*v = Value{text: strings.Join(parts, ","), filled: true}
	default:
		f, err := strconv.ParseFloat(string(data), 64)
		if err != nil && !errors.Is(err, strconv.ErrRange) {
			return err
		}
		*v = Value{text: formatNumber(f), filled: f != 0}
	}
	return nil
}

func (v Value) MarshalJSON() ([]byte, error) {
	return json.Marshal(v.String())
}

// formatNumber prints f the way a browser's String(number) does
func formatNumber(f float64) string {
	switch {
	case f == 0:
		return "0"
	case math.IsInf(f, 1):
		return "Infinity"
	case math.IsInf(f, -1):
		return "-Infinity"
	}
	if abs := math.Abs(f); abs >= 1e-6 && abs < 1e21 {
		return strconv.FormatFloat(f, 'f', -1, 64)
	}

	s := strconv.FormatFloat(f, 'g', -1, 64)
	// 1e-07 becomes 1e-7
	mantissa, exp, found := strings.Cut(s, "e")
	if !found {
		return s
	}
	sign := exp[:1]
	digits := strings.TrimLeft(exp[1:], "0")
	return mantissa + "e" + sign + digits
}

// RegisterValidation lets `required` on a Value mean "filled in"
func RegisterValidation(validate *validator.Validate) {
	validate.RegisterCustomTypeFunc(func(field reflect.Value) interface{} {
		if v, ok := field.Interface().(Value); ok {
			return v.Filled()
		}
		return nil
	}, Value{})
}
