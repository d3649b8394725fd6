package synth

import (
	"fmt"
	"strings"

	"github.com/hikaridb/proxygen/internal/models"
)

// translateCall is the base-type helper that converts the recoverable error
// into its unchecked pool-side form
const translateCall = "checkException"

// BodyKind selects the shape of a synthesized method body
type BodyKind int

const (
	// BareCall forwards to the delegate without a translation wrapper
	BareCall BodyKind = iota
	// TryCatchCall forwards to the delegate inside the translation wrapper
	TryCatchCall
	// InheritCall invokes the base implementation instead of the delegate
	InheritCall
)

// String returns the string representation of the body kind
func (k BodyKind) String() string {
	switch k {
	case BareCall:
		return "bare"
	case TryCatchCall:
		return "try-catch"
	case InheritCall:
		return "inherit"
	default:
		return "unknown"
	}
}

// BodySpec is the typed rendering model for one method body. The planner's
// decision plus the method's declared shape fix every field; rendering is a
// pure formatting step with no further choices to make.
type BodySpec struct {
	Kind      BodyKind
	NeedsCast bool   // cast the delegate to the primary interface
	IsVoid    bool   // drop the return keyword
	CastType  string // primary interface name used for the cast
	ErrorType string // catch clause type; empty means no wrapper
	Method    string
	Args      []string
}

// BuildBody derives the body model for a planned Forward or Inherit method.
// Skip decisions never reach the synthesizer; getting one is a programming
// error, reported as a SynthesisError naming the offending method.
func BuildBody(planned PlannedMethod, spec models.ProxySpec) (BodySpec, error) {
	if planned.Decision == models.SkipDispatch {
		return BodySpec{}, models.NewSynthesisError(spec.BaseType, planned.Signature.String(),
			"skip decision reached the body synthesizer", nil)
	}

	body := BodySpec{
		IsVoid:   planned.Method.IsVoid(),
		CastType: spec.PrimaryInterface,
		Method:   planned.Method.Name,
		Args:     argumentNames(planned.Method),
	}

	translates := throwsErrorType(planned.Method, spec.ErrorType)

	if planned.Decision == models.InheritDispatch {
		// A direct base call never needs the cast
		body.Kind = InheritCall
		if translates {
			body.ErrorType = spec.ErrorType
		}
		return body, nil
	}

	body.NeedsCast = spec.CastDelegate
	if translates {
		body.Kind = TryCatchCall
		body.ErrorType = spec.ErrorType
	} else {
		body.Kind = BareCall
	}

	return body, nil
}

// Render produces the body text. Arguments are forwarded positionally and
// unmodified; the method name is substituted literally.
func (b BodySpec) Render() string {
	target := "delegate"
	if b.Kind == InheritCall {
		target = "super"
	} else if b.NeedsCast {
		target = fmt.Sprintf("((%s) delegate)", b.CastType)
	}

	call := fmt.Sprintf("%s.%s(%s)", target, b.Method, strings.Join(b.Args, ", "))

	statement := "return " + call + ";"
	if b.IsVoid {
		statement = call + ";"
	}

	if b.ErrorType == "" {
		return fmt.Sprintf("{ %s }", statement)
	}
	return fmt.Sprintf("{ try { %s } catch (%s e) { throw %s(e); } }",
		statement, models.SimpleNameOf(b.ErrorType), translateCall)
}

// argumentNames returns the forwarded argument list, minting positional names
// for parameters declared without one
func argumentNames(m *models.MethodDescriptor) []string {
	args := make([]string, len(m.Parameters))
	for i, p := range m.Parameters {
		if p.Name != "" {
			args[i] = p.Name
		} else {
			args[i] = fmt.Sprintf("a%d", i)
		}
	}
	return args
}

// throwsErrorType reports whether the method's throws list names the designated
// recoverable-error type. Matching is by simple name, so a qualified throws
// entry still counts.
func throwsErrorType(m *models.MethodDescriptor, errorType string) bool {
	want := models.SimpleNameOf(errorType)
	for _, thrown := range m.Throws {
		if models.SimpleNameOf(thrown) == want {
			return true
		}
	}
	return false
}
