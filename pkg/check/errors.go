package check

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"github.com/roach88/tcheck/pkg/value"
)

// Construction error codes (E201-E299)
const (
	ErrCodeInvertedBounds  = "E201" // min > max
	ErrCodeNaNBound        = "E202" // NaN used as a bound
	ErrCodeEmptyLiteral    = "E203" // no literal values to match
	ErrCodeInvalidPattern  = "E204" // pattern does not compile
	ErrCodeNilCheck        = "E205" // nil sub-check
	ErrCodeEmptyComposite  = "E206" // union/intersection without members
	ErrCodeNotCallable     = "E207" // wrap target is not a function
	ErrCodeInvalidArgument = "E208" // argument of the wrong shape
)

// ConstructionError reports invalid combinator arguments, detected while
// the check is being built.
type ConstructionError struct {
	// Combinator names the constructor that rejected its arguments.
	Combinator string

	// Code identifies the error category.
	Code string

	// Message is a human-readable description.
	Message string

	// Err is the underlying cause, if any.
	Err error
}

// Error implements the error interface.
func (e *ConstructionError) Error() string {
	return fmt.Sprintf("[%s] %s: %s", e.Code, e.Combinator, e.Message)
}

func (e *ConstructionError) Unwrap() error {
	return e.Err
}

// IsConstructionError returns true if err is or wraps a ConstructionError.
func IsConstructionError(err error) bool {
	var ce *ConstructionError
	return errors.As(err, &ce)
}

func constructionError(combinator, code, format string, args ...any) *ConstructionError {
	return &ConstructionError{
		Combinator: combinator,
		Code:       code,
		Message:    fmt.Sprintf(format, args...),
	}
}

// Path locates a sub-value: field names, sequence indices and table keys
// walked from the checked root.
type Path []any

// String renders the path as .field[2]["odd key"].
func (p Path) String() string {
	var b strings.Builder
	for _, elem := range p {
		switch k := elem.(type) {
		case string:
			if isIdentifier(k) {
				b.WriteByte('.')
				b.WriteString(k)
			} else {
				fmt.Fprintf(&b, "[%s]", strconv.Quote(k))
			}
		case int:
			fmt.Fprintf(&b, "[%d]", k)
		default:
			fmt.Fprintf(&b, "[%s]", value.Render(k))
		}
	}
	return b.String()
}

func isIdentifier(s string) bool {
	if s == "" {
		return false
	}
	for i, r := range s {
		if r == '_' || unicode.IsLetter(r) || (i > 0 && unicode.IsDigit(r)) {
			continue
		}
		return false
	}
	return true
}

// Failure describes why a value was rejected.
type Failure struct {
	// Path locates the rejected sub-value relative to the checked value.
	Path Path

	// Reason says what was expected and what was found.
	Reason string

	// Causes holds the failure of every attempted union member, in
	// evaluation order. Their paths are relative to this failure's path.
	Causes []*Failure

	// Err is the error a custom check returned, when it was not a Failure.
	Err error
}

// Error implements the error interface.
func (f *Failure) Error() string {
	var b strings.Builder
	if len(f.Path) > 0 {
		b.WriteString(f.Path.String())
		b.WriteString(": ")
	}
	b.WriteString(f.Reason)
	if len(f.Causes) > 0 {
		b.WriteString(" [")
		for i, c := range f.Causes {
			if i > 0 {
				b.WriteString("; ")
			}
			fmt.Fprintf(&b, "#%d: %s", i+1, c.Error())
		}
		b.WriteString("]")
	}
	return b.String()
}

func (f *Failure) Unwrap() error {
	return f.Err
}

// AsFailure extracts a Failure from err.
func AsFailure(err error) (*Failure, bool) {
	var f *Failure
	if errors.As(err, &f) {
		return f, true
	}
	return nil, false
}

// asFailure normalizes any check error into a Failure. Custom checks may
// return plain errors; their message becomes the reason.
func asFailure(err error) *Failure {
	if f, ok := err.(*Failure); ok {
		return f
	}
	return &Failure{Reason: err.Error(), Err: err}
}

func fail(format string, args ...any) error {
	return &Failure{Reason: fmt.Sprintf(format, args...)}
}

// expected is the common "<want> expected, got <type>" rejection.
func expected(want string, v any) error {
	return fail("%s expected, got %s", want, value.TypeName(v))
}

// at returns err relocated under key. The original failure is copied, not
// modified, so a failure may be shared by concurrent callers.
func at(err error, key any) error {
	f := asFailure(err)
	out := *f
	out.Path = make(Path, 0, len(f.Path)+1)
	out.Path = append(out.Path, key)
	out.Path = append(out.Path, f.Path...)
	return &out
}

// atKey reports a failure of the key itself, rather than of its value.
func atKey(err error, key any) error {
	return &Failure{
		Path:   Path{key},
		Reason: "invalid key: " + asFailure(err).Error(),
		Err:    asFailure(err).Err,
	}
}

// ArgumentValidationError is raised by a wrapped function whose arguments
// failed their tuple check. The wrapped function was not called.
type ArgumentValidationError struct {
	// Function names the guarded function.
	Function string

	// Position is the 0-based index of the offending argument, or -1 when
	// the argument count itself was wrong.
	Position int

	// Failure is the tuple check's diagnosis.
	Failure *Failure
}

// Error implements the error interface. Positions are reported 1-based.
func (e *ArgumentValidationError) Error() string {
	if e.Position < 0 {
		return fmt.Sprintf("%s: invalid arguments: %s", e.Function, e.Failure.Error())
	}
	rest := *e.Failure
	rest.Path = rest.Path[1:]
	return fmt.Sprintf("%s: bad argument #%d: %s", e.Function, e.Position+1, rest.Error())
}

func (e *ArgumentValidationError) Unwrap() error {
	return e.Failure
}

// IsArgumentError returns true if err is or wraps an ArgumentValidationError.
func IsArgumentError(err error) bool {
	var ae *ArgumentValidationError
	return errors.As(err, &ae)
}

func newArgumentError(function string, f *Failure) *ArgumentValidationError {
	pos := -1
	if len(f.Path) > 0 {
		if i, ok := f.Path[0].(int); ok {
			pos = i
		}
	}
	return &ArgumentValidationError{Function: function, Position: pos, Failure: f}
}
