package synth

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/hikaridb/proxygen/internal/models"
	"github.com/hikaridb/proxygen/internal/registry"
	"github.com/hikaridb/proxygen/internal/templates"
)

// classesDir is the artifact location under the output root, following the
// target type system's standard layout convention
const classesDir = "target/classes"

// Emitter assembles generated types and persists them under the output root.
// Emission is idempotent: re-emitting the same spec overwrites the artifact
// with byte-identical content.
type Emitter struct {
	reg        *registry.TypeRegistry
	renderer   *templates.ClassRenderer
	outputRoot string
}

// NewEmitter creates an emitter writing below the given output root
func NewEmitter(reg *registry.TypeRegistry, outputRoot string) *Emitter {
	return &Emitter{
		reg:        reg,
		renderer:   templates.NewClassRenderer(),
		outputRoot: outputRoot,
	}
}

// Emit assembles the proxy type for the spec from a dispatch plan and persists
// it. The generated type is final, public, extends the base, and declares
// conformance to the entire interface closure, including interfaces whose
// methods were all skipped or inherited.
func (e *Emitter) Emit(spec models.ProxySpec, primary *models.TypeDescriptor, plan []PlannedMethod) (*models.GeneratedType, string, error) {
	closure, err := Closure(e.reg, primary)
	if err != nil {
		return nil, "", err
	}

	gen := &models.GeneratedType{
		Name:       spec.GeneratedName(),
		Modifiers:  models.NewModifierSet(models.PublicModifier, models.FinalModifier),
		Superclass: spec.BaseType,
	}
	for _, intf := range closure {
		gen.Interfaces = append(gen.Interfaces, intf.Name)
	}

	added := make(map[models.MethodSignature]bool)
	for _, planned := range plan {
		if planned.Decision == models.SkipDispatch {
			continue
		}

		// Guard the no-duplicates invariant before each addition
		if added[planned.Signature] {
			return nil, "", models.NewSynthesisError(gen.Name, planned.Signature.String(),
				"signature planned twice", nil)
		}
		added[planned.Signature] = true

		body, err := BuildBody(planned, spec)
		if err != nil {
			return nil, "", err
		}
		gen.Methods = append(gen.Methods, generatedMethod(planned.Method, body.Render()))
	}

	path, err := e.Persist(gen)
	if err != nil {
		return nil, "", err
	}

	return gen, path, nil
}

// Persist renders the generated type and writes it to its artifact location,
// overwriting any previous emission
func (e *Emitter) Persist(gen *models.GeneratedType) (string, error) {
	text, err := e.renderer.Render(gen)
	if err != nil {
		return "", models.NewSynthesisError(gen.Name, "", "rendering failed", err)
	}

	path := e.ArtifactPath(gen)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return "", models.NewPersistenceError(path, err)
	}
	if err := os.WriteFile(path, []byte(text), 0o644); err != nil {
		return "", models.NewPersistenceError(path, err)
	}

	return path, nil
}

// ArtifactPath returns the persisted location of a generated type, keyed by its
// deterministic name
func (e *Emitter) ArtifactPath(gen *models.GeneratedType) string {
	pkgPath := strings.ReplaceAll(gen.Package(), ".", string(filepath.Separator))
	return filepath.Join(e.outputRoot, filepath.FromSlash(classesDir), pkgPath, gen.SimpleName()+".typedef")
}

// generatedMethod copies the interface method's declared shape into a concrete
// public method carrying the synthesized body. Unnamed parameters get the same
// positional names the body forwards.
func generatedMethod(m *models.MethodDescriptor, body string) models.GeneratedMethod {
	out := models.GeneratedMethod{
		MethodDescriptor: models.MethodDescriptor{
			Name:       m.Name,
			Modifiers:  models.NewModifierSet(models.PublicModifier),
			ReturnType: m.ReturnType,
			Throws:     append([]string(nil), m.Throws...),
		},
		Body: body,
	}
	args := argumentNames(m)
	for i, p := range m.Parameters {
		out.Parameters = append(out.Parameters, models.Parameter{Type: p.Type, Name: args[i]})
	}
	return out
}
