// Package document decodes untrusted documents into untyped values.
//
// Every format produces the same value shapes pkg/check inspects:
// map[string]any for objects, []any for arrays, string, bool, nil, and
// numbers (json.Number for JSON and CUE input, int or float64 for YAML).
package document

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	cueerrors "cuelang.org/go/cue/errors"
	"cuelang.org/go/cue/token"
	"gopkg.in/yaml.v3"
)

// Format identifies a document syntax.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
	FormatCUE  Format = "cue"
)

// Formats lists the supported formats.
var Formats = []Format{FormatJSON, FormatYAML, FormatCUE}

// Error codes for decode failures.
const (
	ErrCodeUnknownFormat = "E301"
	ErrCodeRead          = "E302"
	ErrCodeSyntax        = "E303"
	ErrCodeNotConcrete   = "E304"
)

// DecodeError reports a document that could not be decoded.
type DecodeError struct {
	Code    string
	Format  Format
	Message string
	Pos     token.Pos // CUE position, if available
	Err     error
}

func (e *DecodeError) Error() string {
	if e.Pos.IsValid() {
		return fmt.Sprintf("%s:%d:%d: %s: %s", e.Pos.Filename(), e.Pos.Line(), e.Pos.Column(), e.Code, e.Message)
	}
	if e.Format != "" {
		return fmt.Sprintf("%s: %s: %s", e.Code, e.Format, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

// IsDecodeError returns true if err is or wraps a DecodeError.
func IsDecodeError(err error) bool {
	var de *DecodeError
	return errors.As(err, &de)
}

// ParseFormat resolves a format name.
func ParseFormat(name string) (Format, error) {
	switch f := Format(strings.ToLower(name)); f {
	case FormatJSON, FormatYAML, FormatCUE:
		return f, nil
	case "yml":
		return FormatYAML, nil
	}
	return "", &DecodeError{Code: ErrCodeUnknownFormat, Message: fmt.Sprintf("unknown format %q", name)}
}

// FormatFromPath infers the format from a file extension.
func FormatFromPath(path string) (Format, error) {
	ext := strings.TrimPrefix(filepath.Ext(path), ".")
	if ext == "" {
		return "", &DecodeError{Code: ErrCodeUnknownFormat, Message: fmt.Sprintf("cannot infer format of %s", path)}
	}
	return ParseFormat(ext)
}

// DecodeFile reads and decodes the document at path, inferring the format
// from its extension.
func DecodeFile(path string) (any, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &DecodeError{Code: ErrCodeRead, Format: format, Message: err.Error(), Err: err}
	}
	return decode(data, format, path)
}

// Decode decodes one document.
func Decode(data []byte, format Format) (any, error) {
	return decode(data, format, "")
}

func decode(data []byte, format Format, filename string) (any, error) {
	switch format {
	case FormatJSON:
		return decodeJSON(data)
	case FormatYAML:
		return decodeYAML(data)
	case FormatCUE:
		return decodeCUE(data, filename)
	}
	return nil, &DecodeError{Code: ErrCodeUnknownFormat, Message: fmt.Sprintf("unknown format %q", format)}
}

func decodeJSON(data []byte) (any, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, syntaxError(FormatJSON, err)
	}
	if _, err := dec.Token(); err != io.EOF {
		return nil, &DecodeError{Code: ErrCodeSyntax, Format: FormatJSON, Message: "trailing data after document"}
	}
	return v, nil
}

func decodeYAML(data []byte) (any, error) {
	var v any
	if err := yaml.Unmarshal(data, &v); err != nil {
		return nil, syntaxError(FormatYAML, err)
	}
	return v, nil
}

// decodeCUE evaluates a CUE document and exports it as JSON. The document
// must be concrete: open constraints like `int` cannot become values.
func decodeCUE(data []byte, filename string) (any, error) {
	ctx := cuecontext.New()
	var opts []cue.BuildOption
	if filename != "" {
		opts = append(opts, cue.Filename(filename))
	}

	v := ctx.CompileBytes(data, opts...)
	if err := v.Err(); err != nil {
		return nil, cueError(ErrCodeSyntax, err)
	}
	if err := v.Validate(cue.Concrete(true)); err != nil {
		return nil, cueError(ErrCodeNotConcrete, err)
	}

	out, err := v.MarshalJSON()
	if err != nil {
		return nil, cueError(ErrCodeNotConcrete, err)
	}
	return decodeJSON(out)
}

func syntaxError(format Format, err error) *DecodeError {
	return &DecodeError{Code: ErrCodeSyntax, Format: format, Message: err.Error(), Err: err}
}

func cueError(code string, err error) *DecodeError {
	de := &DecodeError{Code: code, Format: FormatCUE, Message: err.Error(), Err: err}
	if positions := cueerrors.Positions(err); len(positions) > 0 {
		de.Pos = positions[0]
	}
	return de
}
