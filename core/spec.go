package core

import (
	"fmt"
	"math"
)

// ValidationError represents argument validation errors with detailed information.
type ValidationError struct {
	Field   string `json:"field"`   // Field that failed validation
	Value   any    `json:"value"`   // Value that was provided
	Message string `json:"message"` // Human-readable error message
}

// Error implements the error interface for ValidationError.
func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error for field '%s': %s", e.Field, e.Message)
}

// Param declares a single node argument: its name, value kind, widget hints
// and the constraints validated before a node runs.
type Param struct {
	// Name is the argument key in the args map.
	Name string
	// Kind is the declared value kind.
	Kind ValueKind
	// Default is injected when an optional argument is absent. Ignored for
	// required parameters.
	Default any
	// Min / Max bound numeric arguments when HasRange is set.
	Min, Max float64
	// HasRange enables Min/Max enforcement for Int and Float kinds.
	HasRange bool
	// Step is a widget increment hint; it is not validated.
	Step float64
	// Choices restricts string arguments to a fixed set when non-empty.
	Choices []string
	// Multiline marks string widgets rendered as a text area.
	Multiline bool
	// Placeholder is a widget hint for empty string inputs.
	Placeholder string
	// ForceInput marks parameters that must arrive via a graph connection
	// rather than a widget. Presentation only.
	ForceInput bool
}

// IntParam builds a ranged integer parameter.
func IntParam(name string, def, min, max int) Param {
	return Param{Name: name, Kind: KindInt, Default: def, Min: float64(min), Max: float64(max), HasRange: true}
}

// FloatParam builds a ranged float parameter.
func FloatParam(name string, def, min, max float64) Param {
	return Param{Name: name, Kind: KindFloat, Default: def, Min: min, Max: max, HasRange: true}
}

// StringParam builds a plain string parameter.
func StringParam(name, def string) Param {
	return Param{Name: name, Kind: KindString, Default: def}
}

// ChoiceParam builds a string parameter restricted to the given choices.
// The first choice doubles as the default.
func ChoiceParam(name string, choices ...string) Param {
	p := Param{Name: name, Kind: KindString, Choices: choices}
	if len(choices) > 0 {
		p.Default = choices[0]
	}
	return p
}

// BoolParam builds a boolean parameter.
func BoolParam(name string, def bool) Param {
	return Param{Name: name, Kind: KindBool, Default: def}
}

// ImageParam builds an image parameter. Images always arrive via connections.
func ImageParam(name string) Param {
	return Param{Name: name, Kind: KindImage, ForceInput: true}
}

// InputSpec declares the arguments a node accepts, split into required and
// optional groups the way the host renders them.
type InputSpec struct {
	Required []Param
	Optional []Param
}

// Params returns all declared parameters, required first.
func (s InputSpec) Params() []Param {
	out := make([]Param, 0, len(s.Required)+len(s.Optional))
	out = append(out, s.Required...)
	out = append(out, s.Optional...)
	return out
}

// ApplyDefaults fills absent optional arguments with their declared defaults.
// The args map is mutated in place; a nil map is returned as a fresh one.
func (s InputSpec) ApplyDefaults(args map[string]any) map[string]any {
	if args == nil {
		args = map[string]any{}
	}
	for _, p := range s.Optional {
		if _, ok := args[p.Name]; !ok && p.Default != nil {
			args[p.Name] = p.Default
		}
	}
	return args
}

// Validate checks the supplied args against the declared parameters. Required
// parameters must be present; every present parameter must match its declared
// kind, range and choice constraints. Unknown extra keys are allowed.
func (s InputSpec) Validate(args map[string]any) error {
	for _, p := range s.Required {
		if _, ok := args[p.Name]; !ok {
			return &ValidationError{
				Field:   p.Name,
				Message: "required field is missing",
			}
		}
	}

	for _, p := range s.Params() {
		value, ok := args[p.Name]
		if !ok || value == nil {
			continue
		}

		if err := validateKind(p, value); err != nil {
			return err
		}
	}

	return nil
}

func validateKind(p Param, value any) error {
	switch p.Kind {
	case KindString:
		str, ok := value.(string)
		if !ok {
			return kindMismatch(p, value)
		}
		if len(p.Choices) > 0 && !containsString(p.Choices, str) {
			return &ValidationError{
				Field:   p.Name,
				Value:   value,
				Message: fmt.Sprintf("value %q is not one of the allowed choices", str),
			}
		}
	case KindInt:
		n, ok := asInt(value)
		if !ok {
			return kindMismatch(p, value)
		}
		if p.HasRange && (float64(n) < p.Min || float64(n) > p.Max) {
			return rangeError(p, value)
		}
	case KindFloat:
		f, ok := asFloat(value)
		if !ok {
			return kindMismatch(p, value)
		}
		if p.HasRange && (f < p.Min || f > p.Max) {
			return rangeError(p, value)
		}
	case KindBool:
		if _, ok := value.(bool); !ok {
			return kindMismatch(p, value)
		}
	case KindImage:
		switch value.(type) {
		case *Image, ImageBatch:
		default:
			return kindMismatch(p, value)
		}
	}

	return nil
}

func kindMismatch(p Param, value any) error {
	return &ValidationError{
		Field:   p.Name,
		Value:   value,
		Message: fmt.Sprintf("expected type %s, got %T", p.Kind, value),
	}
}

func rangeError(p Param, value any) error {
	return &ValidationError{
		Field:   p.Name,
		Value:   value,
		Message: fmt.Sprintf("value out of range [%v, %v]", p.Min, p.Max),
	}
}

func containsString(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}

func asInt(value any) (int, bool) {
	switch v := value.(type) {
	case int:
		return v, true
	case int8:
		return int(v), true
	case int16:
		return int(v), true
	case int32:
		return int(v), true
	case int64:
		return int(v), true
	case uint:
		return int(v), true
	case uint8:
		return int(v), true
	case uint16:
		return int(v), true
	case uint32:
		return int(v), true
	case uint64:
		return int(v), true
	case float64: // JSON unmarshaling often produces float64 for numbers
		if v == math.Trunc(v) {
			return int(v), true
		}
		return 0, false
	case float32:
		if float64(v) == math.Trunc(float64(v)) {
			return int(v), true
		}
		return 0, false
	}
	return 0, false
}

func asFloat(value any) (float64, bool) {
	switch v := value.(type) {
	case float64:
		return v, true
	case float32:
		return float64(v), true
	case int:
		return float64(v), true
	case int8:
		return float64(v), true
	case int16:
		return float64(v), true
	case int32:
		return float64(v), true
	case int64:
		return float64(v), true
	case uint:
		return float64(v), true
	case uint8:
		return float64(v), true
	case uint16:
		return float64(v), true
	case uint32:
		return float64(v), true
	case uint64:
		return float64(v), true
	}
	return 0, false
}
