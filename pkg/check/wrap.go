package check

import (
	"log/slog"
	"reflect"
	"runtime"

	"github.com/roach88/tcheck/pkg/value"
)

var errorType = reflect.TypeFor[error]()

type wrapConfig struct {
	name   string
	logger *slog.Logger
}

// WrapOption configures Wrap.
type WrapOption func(*wrapConfig)

// WithName sets the function name reported by ArgumentValidationError.
// It defaults to the Go symbol name of the wrapped function.
func WithName(name string) WrapOption {
	return func(c *wrapConfig) {
		c.name = name
	}
}

// WithLogger sets the logger that records rejected calls at debug level.
// It defaults to slog.Default() at call time.
func WithLogger(logger *slog.Logger) WrapOption {
	return func(c *wrapConfig) {
		c.logger = logger
	}
}

// Wrap returns a function of the same type as fn that validates its
// arguments, as one tuple, against argCheck before calling fn.
//
// Variadic arguments are flattened into the tuple. When the arguments are
// rejected fn is not called: if fn's last result is an error, the guard
// returns zero values and an *ArgumentValidationError; otherwise it panics
// with the *ArgumentValidationError. Results of an accepted call are
// returned unchanged.
//
//	add, err := check.Wrap(func(a, b int) int { return a + b },
//		check.StrictArray(check.Integer, check.Integer))
func Wrap[F any](fn F, argCheck Check, opts ...WrapOption) (F, error) {
	var zero F
	fv := reflect.ValueOf(fn)
	if !fv.IsValid() || fv.Kind() != reflect.Func || fv.IsNil() {
		return zero, constructionError("wrap", ErrCodeNotCallable, "function expected, got %s", value.TypeName(fn))
	}
	if argCheck == nil {
		return zero, constructionError("wrap", ErrCodeNilCheck, "argument check is nil")
	}

	cfg := wrapConfig{name: funcName(fv)}
	for _, opt := range opts {
		opt(&cfg)
	}

	ft := fv.Type()
	returnsErr := ft.NumOut() > 0 && ft.Out(ft.NumOut()-1) == errorType

	guarded := reflect.MakeFunc(ft, func(in []reflect.Value) []reflect.Value {
		args := make([]any, 0, len(in))
		for i, arg := range in {
			if ft.IsVariadic() && i == len(in)-1 {
				for j := range arg.Len() {
					args = append(args, arg.Index(j).Interface())
				}
				continue
			}
			args = append(args, arg.Interface())
		}

		if err := argCheck(args); err != nil {
			aerr := newArgumentError(cfg.name, asFailure(err))
			logger := cfg.logger
			if logger == nil {
				logger = slog.Default()
			}
			logger.Debug("call rejected",
				"function", cfg.name,
				"position", aerr.Position,
				"reason", aerr.Failure.Error())
			if !returnsErr {
				panic(aerr)
			}
			out := make([]reflect.Value, ft.NumOut())
			for i := range out {
				out[i] = reflect.Zero(ft.Out(i))
			}
			errVal := reflect.New(errorType).Elem()
			errVal.Set(reflect.ValueOf(aerr))
			out[len(out)-1] = errVal
			return out
		}

		if ft.IsVariadic() {
			return fv.CallSlice(in)
		}
		return fv.Call(in)
	})
	return guarded.Interface().(F), nil
}

func funcName(fv reflect.Value) string {
	if f := runtime.FuncForPC(fv.Pointer()); f != nil {
		return f.Name()
	}
	return "function"
}
