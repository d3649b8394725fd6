package synth

import (
	"github.com/hikaridb/proxygen/internal/models"
	"github.com/hikaridb/proxygen/internal/registry"
)

// PlannedMethod is one dispatch decision: how a single interface-closure
// signature is realized on the generated type
type PlannedMethod struct {
	Signature models.MethodSignature
	Decision  models.DispatchDecision
	Method    *models.MethodDescriptor // the declaring interface's method
	Interface *models.TypeDescriptor   // the interface that contributed the method
}

// Plan walks the primary interface's closure and assigns exactly one dispatch
// decision to every signature it reaches. The first interface in closure order
// that declares a signature wins; later duplicates are dropped. Final-on-base
// signatures are planned Skip, base-provided concrete implementations Inherit,
// everything else Forward.
func Plan(reg *registry.TypeRegistry, primary, base *models.TypeDescriptor) ([]PlannedMethod, error) {
	closure, err := Closure(reg, primary)
	if err != nil {
		return nil, err
	}

	finals, err := FinalSignatures(reg, base)
	if err != nil {
		return nil, err
	}

	decided := make(map[models.MethodSignature]bool)
	var plan []PlannedMethod

	for _, intf := range closure {
		for _, method := range reg.DeclaredMethods(intf) {
			sig := models.SignatureOf(method)

			// Final on the base: the base implementation must not be shadowed
			if finals[sig] {
				if !decided[sig] {
					decided[sig] = true
					plan = append(plan, PlannedMethod{
						Signature: sig,
						Decision:  models.SkipDispatch,
						Method:    method,
						Interface: intf,
					})
				}
				continue
			}

			// Already claimed by an earlier interface in the closure
			if decided[sig] {
				continue
			}
			decided[sig] = true

			decision, err := decideDispatch(reg, base, sig)
			if err != nil {
				return nil, err
			}

			plan = append(plan, PlannedMethod{
				Signature: sig,
				Decision:  decision,
				Method:    method,
				Interface: intf,
			})
		}
	}

	return plan, nil
}

// decideDispatch picks Inherit when the base provides a real overriding
// implementation: a concrete method that is neither abstract nor an interface
// default method. Default methods are not base behavior, so they forward.
func decideDispatch(reg *registry.TypeRegistry, base *models.TypeDescriptor, sig models.MethodSignature) (models.DispatchDecision, error) {
	resolved, found, err := reg.LookupMethod(base, sig)
	if err != nil {
		return models.ForwardDispatch, err
	}
	if found &&
		!resolved.Method.Modifiers.Has(models.AbstractModifier) &&
		!resolved.Method.Modifiers.Has(models.DefaultModifier) {
		return models.InheritDispatch, nil
	}
	return models.ForwardDispatch, nil
}
