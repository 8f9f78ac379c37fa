package rarity

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// NormalizeValue converts a raw trait value into its canonical comparable
// string form. Strings are whitespace-trimmed, booleans render as
// "true"/"false", and numbers render minimally so that 2, 2.0 and int64(2)
// all count as the same trait value.
func NormalizeValue(value any) (string, error) {
	switch v := value.(type) {
	case string:
		return strings.TrimSpace(v), nil
	case bool:
		return strconv.FormatBool(v), nil
	case int:
		return strconv.Itoa(v), nil
	case int32:
		return strconv.FormatInt(int64(v), 10), nil
	case int64:
		return strconv.FormatInt(v, 10), nil
	case float32:
		return formatFloat(float64(v)), nil
	case float64:
		return formatFloat(v), nil
	case json.Number:
		return v.String(), nil
	default:
		return "", fmt.Errorf("unsupported trait value type %T", value)
	}
}

// formatFloat renders a float without a trailing ".0" so that whole-number
// floats normalize identically to integers.
func formatFloat(f float64) string {
	if f == float64(int64(f)) {
		return strconv.FormatInt(int64(f), 10)
	}
	return strconv.FormatFloat(f, 'g', -1, 64)
}

// normalizeTraits converts an item's attribute list into a category->value
// map of canonical strings. A repeated category or an unsupported value type
// fails with a DataError naming the offending item, rather than silently
// double-counting.
func normalizeTraits(item Item) (map[string]string, error) {
	traits := make(map[string]string, len(item.Traits))
	for _, t := range item.Traits {
		category := strings.TrimSpace(t.Category)
		if category == "" {
			return nil, &DataError{ItemID: item.ID, Category: t.Category, Reason: "empty category name"}
		}
		if _, dup := traits[category]; dup {
			return nil, &DataError{ItemID: item.ID, Category: category, Reason: "category appears more than once"}
		}
		value, err := NormalizeValue(t.Value)
		if err != nil {
			return nil, &DataError{ItemID: item.ID, Category: category, Reason: err.Error()}
		}
		traits[category] = value
	}
	return traits, nil
}
