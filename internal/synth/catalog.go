package synth

import (
	"github.com/hikaridb/proxygen/internal/models"
	"github.com/hikaridb/proxygen/internal/registry"
)

// FinalSignatures catalogs the method signatures that are final on the base
// type, across its declared and inherited method list. These signatures are
// excluded from generation entirely: the base implementation is authoritative
// and overriding a final method is illegal in the target type system.
func FinalSignatures(reg *registry.TypeRegistry, base *models.TypeDescriptor) (map[models.MethodSignature]bool, error) {
	methods, err := reg.AllMethods(base)
	if err != nil {
		return nil, err
	}

	finals := make(map[models.MethodSignature]bool)
	for _, resolved := range methods {
		if resolved.Method.Modifiers.Has(models.FinalModifier) {
			finals[models.SignatureOf(resolved.Method)] = true
		}
	}

	return finals, nil
}
