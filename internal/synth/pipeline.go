package synth

import (
	"github.com/hikaridb/proxygen/internal/models"
	"github.com/hikaridb/proxygen/internal/registry"
	"github.com/hikaridb/proxygen/internal/utils"
)

// Summary collects per-run statistics for the final report
type Summary struct {
	TypesGenerated   int
	MethodsForwarded int
	MethodsInherited int
	MethodsSkipped   int
	Artifacts        []string
}

// Pipeline runs the whole synthesis sequence: one emission per proxy spec, in
// table order, then the dispatcher rewrite. Single-threaded, one-shot; any
// failure aborts the run, there is no partial-success mode.
type Pipeline struct {
	reg         *registry.TypeRegistry
	emitter     *Emitter
	specs       []models.ProxySpec
	diagnostics *utils.DiagnosticSystem
}

// NewPipeline creates a pipeline over the default spec table
func NewPipeline(reg *registry.TypeRegistry, outputRoot string, diagnostics *utils.DiagnosticSystem) *Pipeline {
	return &Pipeline{
		reg:         reg,
		emitter:     NewEmitter(reg, outputRoot),
		specs:       DefaultSpecs(),
		diagnostics: diagnostics,
	}
}

// NewPipelineWithSpecs creates a pipeline over a caller-supplied spec table
func NewPipelineWithSpecs(reg *registry.TypeRegistry, outputRoot string, specs []models.ProxySpec, diagnostics *utils.DiagnosticSystem) *Pipeline {
	return &Pipeline{
		reg:         reg,
		emitter:     NewEmitter(reg, outputRoot),
		specs:       specs,
		diagnostics: diagnostics,
	}
}

// Run executes the pipeline and returns the run summary
func (p *Pipeline) Run() (*Summary, error) {
	summary := &Summary{}

	for _, spec := range p.specs {
		if err := p.emitProxy(spec, summary); err != nil {
			return nil, err
		}
	}

	// The rewrite must come last: it references every generated name
	if err := p.rewireDispatcher(summary); err != nil {
		return nil, err
	}

	return summary, nil
}

// emitProxy plans and emits one proxy type
func (p *Pipeline) emitProxy(spec models.ProxySpec, summary *Summary) error {
	primary, err := p.reg.Resolve(spec.PrimaryInterface)
	if err != nil {
		return err
	}
	base, err := p.reg.Resolve(spec.BaseType)
	if err != nil {
		return err
	}

	plan, err := Plan(p.reg, primary, base)
	if err != nil {
		return err
	}

	gen, path, err := p.emitter.Emit(spec, primary, plan)
	if err != nil {
		return err
	}

	for _, planned := range plan {
		switch planned.Decision {
		case models.ForwardDispatch:
			summary.MethodsForwarded++
		case models.InheritDispatch:
			summary.MethodsInherited++
		case models.SkipDispatch:
			summary.MethodsSkipped++
		}
	}
	summary.TypesGenerated++
	summary.Artifacts = append(summary.Artifacts, path)

	if p.diagnostics != nil {
		p.diagnostics.PhaseItem("Generated %s (%d methods)", gen.Name, len(gen.Methods))
		p.diagnostics.Verbose("Wrote %s", path)
	}

	return nil
}

// rewireDispatcher rewires the factory type and persists the overwritten artifact
func (p *Pipeline) rewireDispatcher(summary *Summary) error {
	dispatcher, err := p.reg.Resolve(DispatcherType)
	if err != nil {
		return err
	}

	gen, err := RewireDispatcher(dispatcher, BuildRewriteMap(p.specs))
	if err != nil {
		return err
	}

	path, err := p.emitter.Persist(gen)
	if err != nil {
		return err
	}
	summary.Artifacts = append(summary.Artifacts, path)

	if p.diagnostics != nil {
		p.diagnostics.PhaseItem("Rewired dispatcher %s", gen.Name)
		p.diagnostics.Verbose("Wrote %s", path)
	}

	return nil
}
