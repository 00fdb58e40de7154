// Package tuning maps parameter keys to typed accessors on settings.State.
// Each binding carries its value range and reset default, so callers (the
// tuning panel's widgets, the CLI's --set flag) never look parameters up by
// walking the state reflectively.
package tuning

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/Faultbox/nightyard/internal/settings"
)

var (
	// ErrUnknownParam is returned for a key with no binding.
	ErrUnknownParam = errors.New("unknown parameter")
	// ErrInvalidValue is returned when a value cannot be parsed for its binding.
	ErrInvalidValue = errors.New("invalid value")
)

// Kind is the value type of a binding.
type Kind int

const (
	Float Kind = iota
	Int
	Bool
	Color
	Choice
)

func (k Kind) String() string {
	switch k {
	case Float:
		return "float"
	case Int:
		return "int"
	case Bool:
		return "bool"
	case Color:
		return "color"
	case Choice:
		return "choice"
	}
	return "unknown"
}

// Binding describes one tunable parameter.
type Binding struct {
	Key   string
	Group string
	Kind  Kind

	// Min, Max and Step apply to Float and Int bindings.
	Min, Max, Step float32
	// Choices lists the accepted values of a Choice binding.
	Choices []string

	float func(*settings.State) *float32
	num   func(*settings.State) *int
	flag  func(*settings.State) *bool
	text  func(*settings.State) *string
}

// Format returns the binding's current value in s as text.
func (b *Binding) Format(s *settings.State) string {
	switch b.Kind {
	case Float:
		return strconv.FormatFloat(float64(*b.float(s)), 'g', -1, 32)
	case Int:
		return strconv.Itoa(*b.num(s))
	case Bool:
		return strconv.FormatBool(*b.flag(s))
	default:
		return *b.text(s)
	}
}

// parse validates text and writes it into s, clamping numbers to the range.
func (b *Binding) parse(s *settings.State, text string) error {
	text = strings.TrimSpace(text)
	switch b.Kind {
	case Float:
		v, err := strconv.ParseFloat(text, 32)
		if err != nil {
			return fmt.Errorf("%s: %w %q", b.Key, ErrInvalidValue, text)
		}
		*b.float(s) = clamp(float32(v), b.Min, b.Max)
	case Int:
		v, err := strconv.Atoi(text)
		if err != nil {
			return fmt.Errorf("%s: %w %q", b.Key, ErrInvalidValue, text)
		}
		*b.num(s) = int(clamp(float32(v), b.Min, b.Max))
	case Bool:
		v, err := strconv.ParseBool(text)
		if err != nil {
			return fmt.Errorf("%s: %w %q", b.Key, ErrInvalidValue, text)
		}
		*b.flag(s) = v
	case Color:
		c, err := settings.ParseColor(text)
		if err != nil {
			return fmt.Errorf("%s: %w", b.Key, errors.Join(ErrInvalidValue, err))
		}
		*b.text(s) = settings.HexColor(c)
	case Choice:
		for _, c := range b.Choices {
			if c == text {
				*b.text(s) = text
				return nil
			}
		}
		return fmt.Errorf("%s: %w %q (want one of %s)", b.Key, ErrInvalidValue, text,
			strings.Join(b.Choices, ", "))
	}
	return nil
}

// copyValue copies the binding's value from src to dst.
func (b *Binding) copyValue(dst, src *settings.State) {
	switch b.Kind {
	case Float:
		*b.float(dst) = *b.float(src)
	case Int:
		*b.num(dst) = *b.num(src)
	case Bool:
		*b.flag(dst) = *b.flag(src)
	default:
		*b.text(dst) = *b.text(src)
	}
}

func clamp(v, lo, hi float32) float32 {
	if lo == hi {
		return v
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// ChangeFunc is called after a binding's value changed in s.
type ChangeFunc func(key string, s *settings.State)

// Registry is the ordered set of bindings.
type Registry struct {
	order     []*Binding
	byKey     map[string]*Binding
	defaults  settings.State
	listeners []ChangeFunc
}

// NewRegistry returns a registry holding every tunable parameter.
func NewRegistry() *Registry {
	r := &Registry{
		byKey:    make(map[string]*Binding),
		defaults: settings.Defaults(),
	}
	for _, b := range bindings() {
		r.order = append(r.order, b)
		r.byKey[b.Key] = b
	}
	return r
}

// Lookup returns the binding for key.
func (r *Registry) Lookup(key string) (*Binding, bool) {
	b, ok := r.byKey[key]
	return b, ok
}

// Bindings returns all bindings in display order.
func (r *Registry) Bindings() []*Binding {
	out := make([]*Binding, len(r.order))
	copy(out, r.order)
	return out
}

// OnChange registers fn to run after every successful Set or Reset.
func (r *Registry) OnChange(fn ChangeFunc) {
	r.listeners = append(r.listeners, fn)
}

func (r *Registry) notify(key string, s *settings.State) {
	for _, fn := range r.listeners {
		fn(key, s)
	}
}

func (r *Registry) binding(key string) (*Binding, error) {
	b, ok := r.byKey[key]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownParam, key)
	}
	return b, nil
}

// Get returns the current value of key in s as text.
func (r *Registry) Get(s *settings.State, key string) (string, error) {
	b, err := r.binding(key)
	if err != nil {
		return "", err
	}
	return b.Format(s), nil
}

// Set parses text and stores it under key in s. On error s is unchanged.
func (r *Registry) Set(s *settings.State, key, text string) error {
	b, err := r.binding(key)
	if err != nil {
		return err
	}
	if err := b.parse(s, text); err != nil {
		return err
	}
	r.notify(key, s)
	return nil
}

// Reset restores key in s to its default value.
func (r *Registry) Reset(s *settings.State, key string) error {
	b, err := r.binding(key)
	if err != nil {
		return err
	}
	b.copyValue(s, &r.defaults)
	r.notify(key, s)
	return nil
}

// ResetAll restores every bound parameter in s to its default.
func (r *Registry) ResetAll(s *settings.State) {
	for _, b := range r.order {
		b.copyValue(s, &r.defaults)
	}
	r.notify("", s)
}

// ParseAssignment splits a "key=value" override.
func ParseAssignment(arg string) (key, value string, err error) {
	key, value, ok := strings.Cut(arg, "=")
	key = strings.TrimSpace(key)
	if !ok || key == "" {
		return "", "", fmt.Errorf("%w: expected key=value, got %q", ErrInvalidValue, arg)
	}
	return key, value, nil
}

// Apply runs Set for each "key=value" assignment in order and stops at the
// first error.
func (r *Registry) Apply(s *settings.State, assignments []string) error {
	for _, a := range assignments {
		key, value, err := ParseAssignment(a)
		if err != nil {
			return err
		}
		if err := r.Set(s, key, value); err != nil {
			return err
		}
	}
	return nil
}
