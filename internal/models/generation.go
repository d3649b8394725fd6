package models

import "strings"

// ProxySpec describes one proxy type to synthesize: which interface surface to
// cover, which partially-implemented base class to extend, and how calls are
// forwarded to the wrapped delegate.
type ProxySpec struct {
	PrimaryInterface string // fully qualified interface name
	BaseType         string // fully qualified base class name
	CastDelegate     bool   // delegate's static type is more general than the interface
	ErrorType        string // recoverable error translated by the try/catch wrapper
}

// GeneratedName derives the generated type's qualified name from the base type:
// same package, "Hikari" prefix, base simple name with its "Proxy" prefix stripped.
// The transform is fixed, not configurable.
func (p ProxySpec) GeneratedName() string {
	simple := strings.TrimPrefix(SimpleNameOf(p.BaseType), "Proxy")
	pkg := PackageOf(p.BaseType)
	if pkg == "" {
		return "Hikari" + simple
	}
	return pkg + ".Hikari" + simple
}

// FactoryMethod returns the dispatcher method name that must construct the
// generated type for this spec
func (p ProxySpec) FactoryMethod() string {
	return "getProxy" + strings.TrimPrefix(SimpleNameOf(p.BaseType), "Proxy")
}

// GeneratedMethod pairs a method descriptor with its synthesized body text
type GeneratedMethod struct {
	MethodDescriptor
	Body string // rendered body; empty means a bodiless declaration
}

// GeneratedType is the output artifact of the emitter: a fully assembled concrete
// type. It is created once per ProxySpec and never mutated after emission.
type GeneratedType struct {
	Name       string // fully qualified
	Modifiers  ModifierSet
	Superclass string
	Interfaces []string // full interface closure, in closure order
	Methods    []GeneratedMethod
}

// Package returns the package portion of the generated type's name
func (g *GeneratedType) Package() string {
	return PackageOf(g.Name)
}

// SimpleName returns the unqualified portion of the generated type's name
func (g *GeneratedType) SimpleName() string {
	return SimpleNameOf(g.Name)
}

// DispatcherRewriteMap maps dispatcher factory-method names to the generated type
// each must construct. It is consumed exactly once, after all proxies are emitted.
type DispatcherRewriteMap map[string]string
