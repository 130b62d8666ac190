package quicktest

import (
	"fmt"
	"reflect"
)

// Theory1 registers a parameterized test with one typed parameter.
//
// When the test is bound, each argument is converted to the parameter type. A value that
// already has that type is used as is; a number of a different numeric type is converted if
// the conversion is lossless, so that inline data loaded from JSON or YAML can feed an int
// parameter. Anything else makes the suite invalid, and Run fails before any test is attempted.
func Theory1[S, A any](s *Suite[S], name string, fn func(S, *T, A), data ...ArgumentSet) *Suite[S] {
	if fn == nil {
		s.addError(fmt.Errorf("method %q: function must not be nil", name))
		return s
	}
	return s.register(name, TheoryMethod, 1, data, func(args ArgumentSet) (func(S, *T), error) {
		a, err := convertArg[A](args, 0)
		if err != nil {
			return nil, err
		}
		return func(instance S, t *T) { fn(instance, t, a) }, nil
	})
}

// Theory2 registers a parameterized test with two typed parameters. See Theory1.
func Theory2[S, A, B any](s *Suite[S], name string, fn func(S, *T, A, B), data ...ArgumentSet) *Suite[S] {
	if fn == nil {
		s.addError(fmt.Errorf("method %q: function must not be nil", name))
		return s
	}
	return s.register(name, TheoryMethod, 2, data, func(args ArgumentSet) (func(S, *T), error) {
		a, err := convertArg[A](args, 0)
		if err != nil {
			return nil, err
		}
		b, err := convertArg[B](args, 1)
		if err != nil {
			return nil, err
		}
		return func(instance S, t *T) { fn(instance, t, a, b) }, nil
	})
}

// Theory3 registers a parameterized test with three typed parameters. See Theory1.
func Theory3[S, A, B, C any](s *Suite[S], name string, fn func(S, *T, A, B, C), data ...ArgumentSet) *Suite[S] {
	if fn == nil {
		s.addError(fmt.Errorf("method %q: function must not be nil", name))
		return s
	}
	return s.register(name, TheoryMethod, 3, data, func(args ArgumentSet) (func(S, *T), error) {
		a, err := convertArg[A](args, 0)
		if err != nil {
			return nil, err
		}
		b, err := convertArg[B](args, 1)
		if err != nil {
			return nil, err
		}
		c, err := convertArg[C](args, 2)
		if err != nil {
			return nil, err
		}
		return func(instance S, t *T) { fn(instance, t, a, b, c) }, nil
	})
}

func convertArg[V any](args ArgumentSet, index int) (V, error) {
	var zero V
	value := args[index]
	if v, ok := value.(V); ok {
		return v, nil
	}
	target := reflect.TypeOf((*V)(nil)).Elem()
	if value == nil {
		if isNillable(target.Kind()) {
			return zero, nil
		}
		return zero, fmt.Errorf("argument %d is nil, which is not a valid %s", index+1, target)
	}
	rv := reflect.ValueOf(value)
	if isNumeric(rv.Kind()) && isNumeric(target.Kind()) {
		converted := rv.Convert(target)
		if !changesSign(rv, converted) && converted.Convert(rv.Type()).Interface() == value {
			return converted.Interface().(V), nil
		}
		return zero, fmt.Errorf("argument %d (%v) cannot be represented as %s", index+1, value, target)
	}
	return zero, fmt.Errorf("argument %d has type %T, expected %s", index+1, value, target)
}

// changesSign is true if the conversion flipped the sign of the value. A round trip through the
// target type does not catch that.
func changesSign(from, to reflect.Value) bool {
	switch {
	case isSigned(from.Kind()) && isUnsigned(to.Kind()):
		return from.Int() < 0
	case isFloat(from.Kind()) && isUnsigned(to.Kind()):
		return from.Float() < 0
	case isUnsigned(from.Kind()) && isSigned(to.Kind()):
		return to.Int() < 0
	default:
		return false
	}
}

func isSigned(k reflect.Kind) bool {
	switch k {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return true
	default:
		return false
	}
}

func isUnsigned(k reflect.Kind) bool {
	switch k {
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return true
	default:
		return false
	}
}

func isFloat(k reflect.Kind) bool {
	return k == reflect.Float32 || k == reflect.Float64
}

func isNumeric(k reflect.Kind) bool {
	switch k {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return true
	default:
		return false
	}
}

func isNillable(k reflect.Kind) bool {
	switch k {
	case reflect.Interface, reflect.Pointer, reflect.Slice, reflect.Map, reflect.Func, reflect.Chan:
		return true
	default:
		return false
	}
}
