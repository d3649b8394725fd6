package models

import "strings"

// MethodSignature is the dedup key for methods: name plus ordered parameter types.
// Two methods with the same signature are the same method regardless of which
// interface declares them. The struct is comparable and safe as a map key.
type MethodSignature struct {
	Name   string
	Params string // comma-joined parameter type names
}

// SignatureOf computes the signature of a method descriptor
func SignatureOf(m *MethodDescriptor) MethodSignature {
	types := make([]string, len(m.Parameters))
	for i, p := range m.Parameters {
		types[i] = p.Type
	}
	return MethodSignature{Name: m.Name, Params: strings.Join(types, ",")}
}

// String renders the signature in name(type,type) form
func (s MethodSignature) String() string {
	return s.Name + "(" + s.Params + ")"
}

// DispatchDecision says how one interface-closure signature is handled on the
// generated type
type DispatchDecision int

const (
	// SkipDispatch drops the signature: the base type's final implementation is
	// authoritative, or an earlier interface in the closure already claimed it
	SkipDispatch DispatchDecision = iota
	// InheritDispatch generates a body that calls the base implementation
	InheritDispatch
	// ForwardDispatch generates a body that calls the delegate
	ForwardDispatch
)

// String returns the string representation of the decision
func (d DispatchDecision) String() string {
	switch d {
	case SkipDispatch:
		return "skip"
	case InheritDispatch:
		return "inherit"
	case ForwardDispatch:
		return "forward"
	default:
		return "unknown"
	}
}
