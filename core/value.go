package core

import "strings"

// Argument accessors used by node implementations after validation and
// default injection. Each accessor coerces the loosely typed args map value
// to its Go type and falls back to the given default when the key is absent
// or holds an incompatible value. Numeric accessors accept any numeric
// representation since host payloads round-trip through JSON.

// StringArg returns the named string argument or def.
func StringArg(args map[string]any, name, def string) string {
	if v, ok := args[name]; ok {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return def
}

// TrimmedArg returns the named string argument with surrounding whitespace
// removed, or def.
func TrimmedArg(args map[string]any, name, def string) string {
	return strings.TrimSpace(StringArg(args, name, def))
}

// IntArg returns the named integer argument or def.
func IntArg(args map[string]any, name string, def int) int {
	if v, ok := args[name]; ok {
		if n, ok := asInt(v); ok {
			return n
		}
	}
	return def
}

// FloatArg returns the named float argument or def.
func FloatArg(args map[string]any, name string, def float64) float64 {
	if v, ok := args[name]; ok {
		if f, ok := asFloat(v); ok {
			return f
		}
	}
	return def
}

// BoolArg returns the named boolean argument or def.
func BoolArg(args map[string]any, name string, def bool) bool {
	if v, ok := args[name]; ok {
		if b, ok := v.(bool); ok {
			return b
		}
	}
	return def
}

// ImageArg returns the named image argument as a batch. A single *Image is
// wrapped into a one-frame batch; absent or mistyped values return nil.
func ImageArg(args map[string]any, name string) ImageBatch {
	switch v := args[name].(type) {
	case ImageBatch:
		return v
	case *Image:
		if v == nil {
			return nil
		}
		return ImageBatch{v}
	}
	return nil
}
