// Package emit renders a syllable list as a fixed-size array literal for
// inclusion in another program, and parses such literals back.
package emit

import (
	"errors"
	"fmt"
	"io"
	"regexp"
)

// Format selects the target language of the literal.
type Format string

const (
	FormatRust Format = "rust"
	FormatGo   Format = "go"
)

// ErrMalformed is returned by Parse for input that is not a literal
// produced by Emit.
var ErrMalformed = errors.New("malformed literal")

var identRe = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// Options configures an Emitter.
type Options struct {
	Format  Format
	Name    string // array identifier, e.g. "LEGAL_PINYINS"
	Package string // Go package clause; ignored for Rust
}

// Literal is a parsed array declaration.
type Literal struct {
	Name      string
	Declared  int
	Syllables []string
}

// Emitter writes array literals in one format.
type Emitter struct {
	opts Options
}

// New validates opts and returns an Emitter.
func New(opts Options) (*Emitter, error) {
	switch opts.Format {
	case FormatRust:
	case FormatGo:
		if !identRe.MatchString(opts.Package) {
			return nil, fmt.Errorf("emit: invalid package name %q", opts.Package)
		}
	default:
		return nil, fmt.Errorf("emit: unknown format %q", opts.Format)
	}
	if !identRe.MatchString(opts.Name) {
		return nil, fmt.Errorf("emit: invalid identifier %q", opts.Name)
	}
	return &Emitter{opts: opts}, nil
}

// Emit writes the declaration of an array holding syllables in the given
// order. The declared length is always len(syllables).
func (e *Emitter) Emit(w io.Writer, syllables []string) error {
	if e.opts.Format == FormatGo {
		return writeGo(w, e.opts.Package, e.opts.Name, syllables)
	}
	return writeRust(w, e.opts.Name, syllables)
}

// Parse reads a literal previously written by Emit in the given format.
func Parse(format Format, r io.Reader) (Literal, error) {
	switch format {
	case FormatRust:
		return parseRust(r)
	case FormatGo:
		return parseGo(r)
	default:
		return Literal{}, fmt.Errorf("emit: unknown format %q", format)
	}
}

func malformed(line int, format string, args ...any) error {
	return fmt.Errorf("%w: line %d: %s", ErrMalformed, line, fmt.Sprintf(format, args...))
}
