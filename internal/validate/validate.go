package validate

import (
	"regexp"
	"strconv"
)

var reEmail = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

func Email(s string) bool {
	return reEmail.MatchString(s)
}

// Password only enforces a minimum length; any characters are allowed.
func Password(s string) bool {
	return len(s) >= 6
}

// ProductFields checks that all four product fields are present and
// non-zero. Zero values are rejected on purpose: an empty name, a free
// product or zero stock have never been accepted by this API.
func ProductFields(data map[string]any) bool {
	for _, f := range []string{"name", "description", "price", "stock"} {
		if !truthy(data[f]) {
			return false
		}
	}
	return true
}

// PatchFields accepts a non-empty patch whose keys all belong to the
// whitelist {name, description, price, stock}. One unknown key rejects
// the whole patch.
func PatchFields(data map[string]any) bool {
	if len(data) == 0 {
		return false
	}
	for k := range data {
		switch k {
		case "name", "description", "price", "stock":
		default:
			return false
		}
	}
	return true
}

// ToNumberIfPresent returns a copy of data with the named fields coerced
// to float64 when present. Values that cannot be coerced are dropped so
// they never overwrite a stored number with garbage.
func ToNumberIfPresent(data map[string]any, fields ...string) map[string]any {
	out := make(map[string]any, len(data))
	for k, v := range data {
		out[k] = v
	}
	for _, f := range fields {
		v, ok := out[f]
		if !ok {
			continue
		}
		if n, ok := ToNumber(v); ok {
			out[f] = n
		} else {
			delete(out, f)
		}
	}
	return out
}

// ToNumber coerces JSON-decoded values (float64, int, numeric string)
// to float64.
func ToNumber(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case int:
		return float64(n), true
	case string:
		f, err := strconv.ParseFloat(n, 64)
		return f, err == nil
	default:
		return 0, false
	}
}

func truthy(v any) bool {
	switch x := v.(type) {
	case nil:
		return false
	case string:
		return x != ""
	case bool:
		return x
	case float64:
		return x != 0
	case int:
		return x != 0
	default:
		return true
	}
}
