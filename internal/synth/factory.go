package synth

import (
	"fmt"
	"strings"

	"github.com/hikaridb/proxygen/internal/models"
)

// BuildRewriteMap derives the dispatcher rewrite table from the proxy specs:
// one factory method per spec, constructing that spec's generated type
func BuildRewriteMap(specs []models.ProxySpec) models.DispatcherRewriteMap {
	rewrites := make(models.DispatcherRewriteMap, len(specs))
	for _, spec := range specs {
		rewrites[spec.FactoryMethod()] = spec.GeneratedName()
	}
	return rewrites
}

// RewireDispatcher rebuilds the dispatcher type with each rewrite-map method
// given a body that directly constructs the mapped generated type, forwarding
// the factory method's own arguments as constructor arguments. Methods not
// matching any key are carried over untouched. Must run only after every proxy
// type has been emitted, since the bodies reference the generated names.
func RewireDispatcher(dispatcher *models.TypeDescriptor, rewrites models.DispatcherRewriteMap) (*models.GeneratedType, error) {
	gen := &models.GeneratedType{
		Name:       dispatcher.Name,
		Modifiers:  dispatcher.Modifiers,
		Superclass: dispatcher.Superclass,
		Interfaces: append([]string(nil), dispatcher.Interfaces...),
	}

	matched := make(map[string]bool)
	for i := range dispatcher.Methods {
		method := &dispatcher.Methods[i]

		body := ""
		if generated, ok := rewrites[method.Name]; ok {
			matched[method.Name] = true
			body = constructorBody(generated, argumentNames(method))
		}

		out := models.GeneratedMethod{MethodDescriptor: *method, Body: body}
		if body != "" {
			// Forwarded arguments need declared names in the rendered output
			args := argumentNames(method)
			out.Parameters = make([]models.Parameter, len(method.Parameters))
			for j, p := range method.Parameters {
				out.Parameters[j] = models.Parameter{Type: p.Type, Name: args[j]}
			}
		}
		gen.Methods = append(gen.Methods, out)
	}

	for name := range rewrites {
		if !matched[name] {
			return nil, models.NewResolutionError(dispatcher.Name, fmt.Sprintf("factory method %s not declared", name), nil)
		}
	}

	return gen, nil
}

// constructorBody renders the single-statement construction of a generated type
func constructorBody(typeName string, args []string) string {
	return fmt.Sprintf("{ return new %s(%s); }", typeName, strings.Join(args, ", "))
}
