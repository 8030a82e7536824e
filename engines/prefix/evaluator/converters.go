package evaluator

import (
	"fmt"
	"strconv"
)

// toVariableMap converts the mapping returned by a data.Provider into the
// float64 mapping the machine resolves variable tokens against.
func toVariableMap(in map[string]any) (map[string]float64, error) {
	vars := make(map[string]float64, len(in))
	for name, value := range in {
		f, err := toFloat(value)
		if err != nil {
			return nil, fmt.Errorf("variable %q: %w", name, err)
		}
		vars[name] = f
	}
	return vars, nil
}

func toFloat(value any) (float64, error) {
	switch v := value.(type) {
	case float64:
		return v, nil
	case float32:
		return float64(v), nil
	case int:
		return float64(v), nil
	case int32:
		return float64(v), nil
	case int64:
		return float64(v), nil
	case uint:
		return float64(v), nil
	case uint32:
		return float64(v), nil
	case uint64:
		return float64(v), nil
	case string:
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return 0, fmt.Errorf("cannot parse %q as a number", v)
		}
		return f, nil
	default:
		return 0, fmt.Errorf("unsupported variable type %T", value)
	}
}
