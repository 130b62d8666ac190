package quicktest

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/exp/slices"
)

// ArgumentSet is one row of inline data: the values passed to a single invocation of a
// parameterized test, in parameter order.
type ArgumentSet []interface{}

// InlineData returns an ArgumentSet containing the specified values.
func InlineData(values ...interface{}) ArgumentSet {
	return ArgumentSet(values)
}

// String renders each value in its default format, separated by commas with no spaces.
func (a ArgumentSet) String() string {
	parts := make([]string, 0, len(a))
	for _, v := range a {
		parts = append(parts, fmt.Sprint(v))
	}
	return strings.Join(parts, ",")
}

// MethodKind identifies which marker a test method was registered with.
type MethodKind int

const (
	// FactMethod is an unconditional test that takes no arguments.
	FactMethod MethodKind = iota
	// TheoryMethod is a parameterized test.
	TheoryMethod
)

func (k MethodKind) String() string {
	switch k {
	case FactMethod:
		return "fact"
	case TheoryMethod:
		return "theory"
	default:
		return fmt.Sprintf("MethodKind(%d)", int(k))
	}
}

// MethodDescriptor is a read-only view of one registered test method.
type MethodDescriptor struct {
	Name  string
	Kind  MethodKind
	Arity int
	Data  []ArgumentSet
}

// IsTest is true if the method carries either test marker.
func (m MethodDescriptor) IsTest() bool {
	return m.Kind == FactMethod || m.Kind == TheoryMethod
}

// IsParameterized is true if the method has inline data, whichever marker it was registered
// with. Such a method is invoked once per argument set instead of once with no arguments.
func (m MethodDescriptor) IsParameterized() bool {
	return len(m.Data) != 0
}

// binder turns one argument set into a call that is ready to run against a suite instance.
// It returns an error if the arguments do not fit the method's parameters.
type binder[S any] func(args ArgumentSet) (func(S, *T), error)

type method[S any] struct {
	MethodDescriptor
	bind binder[S]
}

// Suite describes a test suite: its name, how to construct its single instance, and its test
// methods in registration order. Use NewSuite or DefaultSuite to create one.
//
// Registration methods return the Suite so that calls can be chained. A registration mistake
// does not panic; it is remembered and reported by Run.
type Suite[S any] struct {
	name        string
	newInstance func() (S, error)
	methods     []*method[S]
	errs        []error
}

// NewSuite creates a suite whose instance is produced by newInstance. If newInstance returns
// an error, Run fails before attempting any test.
func NewSuite[S any](name string, newInstance func() (S, error)) *Suite[S] {
	s := &Suite[S]{name: name, newInstance: newInstance}
	if name == "" {
		s.addError(errors.New("suite name must not be empty"))
	}
	if newInstance == nil {
		s.addError(errors.New("suite constructor must not be nil"))
	}
	return s
}

// DefaultSuite creates a suite whose instance is a new zero value of S.
func DefaultSuite[S any](name string) *Suite[*S] {
	return NewSuite(name, func() (*S, error) { return new(S), nil })
}

// Name returns the suite name.
func (s *Suite[S]) Name() string {
	return s.name
}

// Methods returns descriptors for all registered test methods in registration order.
func (s *Suite[S]) Methods() []MethodDescriptor {
	ret := make([]MethodDescriptor, 0, len(s.methods))
	for _, m := range s.methods {
		d := m.MethodDescriptor
		d.Data = slices.Clone(d.Data)
		ret = append(ret, d)
	}
	return ret
}

// Err returns the registration errors collected so far, or nil.
func (s *Suite[S]) Err() error {
	return errors.Join(s.errs...)
}

// Fact registers a test that is invoked once with no arguments.
func (s *Suite[S]) Fact(name string, fn func(S, *T)) *Suite[S] {
	if fn == nil {
		s.addError(fmt.Errorf("method %q: function must not be nil", name))
		return s
	}
	return s.register(name, FactMethod, 0, nil, func(args ArgumentSet) (func(S, *T), error) {
		return fn, nil
	})
}

// Theory registers a parameterized test that receives its arguments as an ArgumentSet. Every
// argument set must have exactly arity values; no other checking is done.
func (s *Suite[S]) Theory(name string, arity int, fn func(S, *T, ArgumentSet), data ...ArgumentSet) *Suite[S] {
	if fn == nil {
		s.addError(fmt.Errorf("method %q: function must not be nil", name))
		return s
	}
	if arity < 0 {
		s.addError(fmt.Errorf("method %q: arity must not be negative", name))
		return s
	}
	return s.register(name, TheoryMethod, arity, data, func(args ArgumentSet) (func(S, *T), error) {
		return func(instance S, t *T) { fn(instance, t, args) }, nil
	})
}

// WithInlineData adds argument sets to a method that has already been registered. The sets
// are appended after any that were declared at registration.
func (s *Suite[S]) WithInlineData(name string, data ...ArgumentSet) *Suite[S] {
	for _, m := range s.methods {
		if m.Name == name {
			m.Data = append(m.Data, data...)
			return s
		}
	}
	s.addError(fmt.Errorf("inline data given for unknown method %q", name))
	return s
}

func (s *Suite[S]) register(name string, kind MethodKind, arity int, data []ArgumentSet, bind binder[S]) *Suite[S] {
	if name == "" {
		s.addError(errors.New("method name must not be empty"))
		return s
	}
	for _, m := range s.methods {
		if m.Name == name {
			s.addError(fmt.Errorf("method %q is registered more than once", name))
			return s
		}
	}
	s.methods = append(s.methods, &method[S]{
		MethodDescriptor: MethodDescriptor{
			Name:  name,
			Kind:  kind,
			Arity: arity,
			Data:  slices.Clone(data),
		},
		bind: func(args ArgumentSet) (func(S, *T), error) {
			if len(args) != arity {
				return nil, fmt.Errorf("expected %d argument(s) but got %d", arity, len(args))
			}
			return bind(args)
		},
	})
	return s
}

func (s *Suite[S]) addError(err error) {
	s.errs = append(s.errs, err)
}
