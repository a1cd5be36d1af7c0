package schema

import (
	"fmt"
	"time"
)

// Kind defines the contract for column value validation.
// Implementations determine whether a cell value belongs to the kind.
type Kind interface {
	// Name returns the human-readable name of the kind (e.g., "string", "int").
	Name() string
	// Validate checks if a value conforms to this kind. Nil cells always pass.
	Validate(value any) error
}

// --- Built-in Kind Implementations ---

// StringKind validates string cells.
type StringKind struct{}

func (k *StringKind) Name() string { return "string" }

func (k *StringKind) Validate(value any) error {
	if value == nil {
		return nil
	}
	if _, ok := value.(string); !ok {
		return fmt.Errorf("expected string, got %T", value)
	}
	return nil
}

// IntKind validates integer cells.
type IntKind struct{}

func (k *IntKind) Name() string { return "int" }

func (k *IntKind) Validate(value any) error {
	switch v := value.(type) {
	case nil, int, int8, int16, int32, int64:
		return nil
	case float64:
		// Accept floats that are whole numbers (from JSON unmarshaling)
		if v == float64(int64(v)) {
			return nil
		}
		return fmt.Errorf("expected int, got float (not a whole number)")
	default:
		return fmt.Errorf("expected int, got %T", value)
	}
}

// FloatKind validates floating-point cells. Integers are accepted.
type FloatKind struct{}

func (k *FloatKind) Name() string { return "float" }

func (k *FloatKind) Validate(value any) error {
	switch value.(type) {
	case nil, float32, float64, int, int8, int16, int32, int64:
		return nil
	default:
		return fmt.Errorf("expected float, got %T", value)
	}
}

// BoolKind validates boolean cells.
type BoolKind struct{}

func (k *BoolKind) Name() string { return "bool" }

func (k *BoolKind) Validate(value any) error {
	if value == nil {
		return nil
	}
	if _, ok := value.(bool); !ok {
		return fmt.Errorf("expected bool, got %T", value)
	}
	return nil
}

// TimeKind validates time.Time cells.
type TimeKind struct{}

func (k *TimeKind) Name() string { return "time" }

func (k *TimeKind) Validate(value any) error {
	if value == nil {
		return nil
	}
	if _, ok := value.(time.Time); !ok {
		return fmt.Errorf("expected time, got %T", value)
	}
	return nil
}

// AnyKind accepts every cell. It is the fallback for mixed columns.
type AnyKind struct{}

func (k *AnyKind) Name() string { return "any" }

func (k *AnyKind) Validate(value any) error { return nil }

// --- Factory Functions ---

// String creates a string kind.
func String() Kind { return &StringKind{} }

// Int creates an integer kind.
func Int() Kind { return &IntKind{} }

// Float creates a float kind.
func Float() Kind { return &FloatKind{} }

// Bool creates a boolean kind.
func Bool() Kind { return &BoolKind{} }

// Time creates a time kind.
func Time() Kind { return &TimeKind{} }

// Any creates the catch-all kind.
func Any() Kind { return &AnyKind{} }

// ParseKind converts a kind name to a Kind.
// Supports "string", "int", "float", "bool", "time" and "any".
func ParseKind(name string) (Kind, error) {
	switch name {
	case "string":
		return String(), nil
	case "int":
		return Int(), nil
	case "float":
		return Float(), nil
	case "bool":
		return Bool(), nil
	case "time":
		return Time(), nil
	case "any":
		return Any(), nil
	default:
		return nil, fmt.Errorf("unsupported kind: %s", name)
	}
}

// Numeric reports whether the kind is int or float.
func Numeric(k Kind) bool {
	switch k.(type) {
	case *IntKind, *FloatKind:
		return true
	default:
		return false
	}
}

// AsFloat coerces a numeric cell to float64.
// Returns false for nil cells and non-numeric values.
func AsFloat(value any) (float64, bool) {
	switch v := value.(type) {
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
	case float32:
		return float64(v), true
	case float64:
		return v, true
	default:
		return 0, false
	}
}
