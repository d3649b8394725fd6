package models

import "strings"

// TypeKind distinguishes class and interface descriptors
type TypeKind int

const (
	ClassType TypeKind = iota
	InterfaceType
)

// String returns the string representation of the type kind
func (k TypeKind) String() string {
	switch k {
	case ClassType:
		return "class"
	case InterfaceType:
		return "interface"
	default:
		return "unknown"
	}
}

// Modifier represents a single declaration modifier
type Modifier int

const (
	PublicModifier Modifier = iota
	ProtectedModifier
	FinalModifier
	AbstractModifier
	DefaultModifier
	StaticModifier
)

// String returns the source-level keyword for the modifier
func (m Modifier) String() string {
	switch m {
	case PublicModifier:
		return "public"
	case ProtectedModifier:
		return "protected"
	case FinalModifier:
		return "final"
	case AbstractModifier:
		return "abstract"
	case DefaultModifier:
		return "default"
	case StaticModifier:
		return "static"
	default:
		return "unknown"
	}
}

// ParseModifier converts a source keyword to a Modifier
func ParseModifier(s string) (Modifier, bool) {
	switch s {
	case "public":
		return PublicModifier, true
	case "protected":
		return ProtectedModifier, true
	case "final":
		return FinalModifier, true
	case "abstract":
		return AbstractModifier, true
	case "default":
		return DefaultModifier, true
	case "static":
		return StaticModifier, true
	default:
		return 0, false
	}
}

// ModifierSet is a set of declaration modifiers, rendered in declaration order
type ModifierSet struct {
	mods []Modifier
}

// NewModifierSet creates a modifier set from the given modifiers, dropping duplicates
func NewModifierSet(mods ...Modifier) ModifierSet {
	var set ModifierSet
	for _, m := range mods {
		set = set.With(m)
	}
	return set
}

// Has reports whether the set contains the modifier
func (s ModifierSet) Has(m Modifier) bool {
	for _, existing := range s.mods {
		if existing == m {
			return true
		}
	}
	return false
}

// With returns a copy of the set with the modifier added
func (s ModifierSet) With(m Modifier) ModifierSet {
	if s.Has(m) {
		return s
	}
	out := make([]Modifier, 0, len(s.mods)+1)
	out = append(out, s.mods...)
	out = append(out, m)
	return ModifierSet{mods: out}
}

// List returns the modifiers in declaration order
func (s ModifierSet) List() []Modifier {
	out := make([]Modifier, len(s.mods))
	copy(out, s.mods)
	return out
}

// String renders the modifiers as space-separated keywords
func (s ModifierSet) String() string {
	parts := make([]string, len(s.mods))
	for i, m := range s.mods {
		parts[i] = m.String()
	}
	return strings.Join(parts, " ")
}

// Parameter represents a single method parameter
type Parameter struct {
	Type string // type name; single-dimension arrays carry a "[]" suffix
	Name string // declared name, may be empty
}

// MethodDescriptor represents the structural description of one declared method.
// Descriptors are metadata only; bodies exist solely on generated output.
type MethodDescriptor struct {
	Name       string
	Modifiers  ModifierSet
	ReturnType string // "void" sentinel for no return value
	Parameters []Parameter
	Throws     []string // declared exception type names
}

// IsVoid reports whether the method has no return value
func (m *MethodDescriptor) IsVoid() bool {
	return m.ReturnType == VoidType
}

// VoidType is the return-type sentinel for methods without a result
const VoidType = "void"

// TypeDescriptor is the structural description of a resolved type. Descriptors are
// owned by the type registry; all other components borrow them read-only.
type TypeDescriptor struct {
	Name       string // fully qualified
	Kind       TypeKind
	Modifiers  ModifierSet
	Superclass string   // fully qualified, empty when none
	Interfaces []string // directly declared interfaces, in declaration order
	Methods    []MethodDescriptor
	SourceFile string // typedef file the descriptor was loaded from
}

// IsInterface reports whether the descriptor describes an interface
func (t *TypeDescriptor) IsInterface() bool {
	return t.Kind == InterfaceType
}

// Package returns the package portion of the qualified type name
func (t *TypeDescriptor) Package() string {
	return PackageOf(t.Name)
}

// SimpleName returns the unqualified portion of the type name
func (t *TypeDescriptor) SimpleName() string {
	return SimpleNameOf(t.Name)
}

// PackageOf returns the package portion of a qualified name, or "" for simple names
func PackageOf(name string) string {
	if idx := strings.LastIndex(name, "."); idx >= 0 {
		return name[:idx]
	}
	return ""
}

// SimpleNameOf returns the portion of a name after the last dot
func SimpleNameOf(name string) string {
	if idx := strings.LastIndex(name, "."); idx >= 0 {
		return name[idx+1:]
	}
	return name
}
