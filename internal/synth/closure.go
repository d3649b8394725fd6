// Package synth implements the synthesis core: interface-closure resolution,
// final-signature cataloguing, dispatch planning, body rendering, proxy type
// emission, and dispatcher rewiring.
package synth

import (
	"github.com/hikaridb/proxygen/internal/models"
	"github.com/hikaridb/proxygen/internal/registry"
)

// interfaceSet is an insertion-ordered set of interface descriptors. It doubles
// as the closure accumulator and the visited guard; the underlying type graph is
// acyclic by construction, the guard is kept as defensive design.
type interfaceSet struct {
	names map[string]bool
	items []*models.TypeDescriptor
}

func newInterfaceSet() *interfaceSet {
	return &interfaceSet{names: make(map[string]bool)}
}

func (s *interfaceSet) add(td *models.TypeDescriptor) {
	if s.names[td.Name] {
		return
	}
	s.names[td.Name] = true
	s.items = append(s.items, td)
}

func (s *interfaceSet) contains(name string) bool {
	return s.names[name]
}

// Closure computes the full transitive set of interfaces implemented by the
// type and its entire superclass chain, including the type itself when it is an
// interface. Order is insertion order: parents of a declared interface precede
// it, declared interfaces precede the superclass contribution. The order only
// fixes generation order, it carries no other meaning, but it must be stable.
func Closure(reg *registry.TypeRegistry, td *models.TypeDescriptor) ([]*models.TypeDescriptor, error) {
	set := newInterfaceSet()
	if err := closureInto(reg, td, set); err != nil {
		return nil, err
	}
	return set.items, nil
}

func closureInto(reg *registry.TypeRegistry, td *models.TypeDescriptor, set *interfaceSet) error {
	interfaces, err := reg.Interfaces(td)
	if err != nil {
		return err
	}
	for _, intf := range interfaces {
		if len(intf.Interfaces) > 0 && !set.contains(intf.Name) {
			if err := closureInto(reg, intf, set); err != nil {
				return err
			}
		}
		set.add(intf)
	}

	super, err := reg.Superclass(td)
	if err != nil {
		return err
	}
	if super != nil {
		if err := closureInto(reg, super, set); err != nil {
			return err
		}
	}

	if td.IsInterface() {
		set.add(td)
	}

	return nil
}
