package cli

import (
	"os"
	"path/filepath"
	"time"

	"github.com/hikaridb/proxygen/internal/registry"
	"github.com/hikaridb/proxygen/internal/synth"
	"github.com/hikaridb/proxygen/internal/utils"
)

// RunConfig carries the invocation options
type RunConfig struct {
	// OutputRoot overrides the configured output root when non-empty
	OutputRoot string
	// ConfigFile overrides the default proxygen.yml location when non-empty
	ConfigFile string
	Verbose    bool
}

// GenerationSummary is the final report shown after a successful run
type GenerationSummary struct {
	TypesGenerated   int
	MethodsForwarded int
	MethodsInherited int
	MethodsSkipped   int
	Artifacts        []string
	Elapsed          time.Duration
}

// Generator coordinates the CLI generation process: project resolution, config
// loading, registry construction, and the synthesis pipeline.
type Generator struct {
	resolver    *ProjectResolver
	diagnostics *utils.DiagnosticSystem
	summary     GenerationSummary
}

// NewGenerator creates a new CLI generator
func NewGenerator(diagnostics *utils.DiagnosticSystem) *Generator {
	return &Generator{
		resolver:    NewProjectResolver(),
		diagnostics: diagnostics,
	}
}

// Summary returns the summary of the last run
func (g *Generator) Summary() GenerationSummary {
	return g.summary
}

// Run executes the complete generation process
func (g *Generator) Run(cfg RunConfig) error {
	startTime := time.Now()
	g.summary = GenerationSummary{}

	workDir, err := os.Getwd()
	if err != nil {
		return err
	}

	projectRoot, err := g.resolver.FindRoot(workDir)
	if err != nil {
		// Outside a module the working directory anchors all defaults
		g.diagnostics.Warn("No project root found, using working directory: %v", err)
		projectRoot = workDir
	} else if module, err := g.resolver.ModuleName(projectRoot); err == nil {
		g.diagnostics.Verbose("Project module: %s", module)
	}

	configFile := cfg.ConfigFile
	if configFile == "" {
		configFile = filepath.Join(projectRoot, DefaultConfigFile)
	}
	config, err := LoadConfigIfPresent(configFile)
	if err != nil {
		return err
	}
	config.ApplyDefaults(projectRoot)

	if cfg.OutputRoot != "" {
		config.Output = cfg.OutputRoot
	}

	g.diagnostics.Verbose("Output root: %s", config.Output)
	g.diagnostics.Verbose("Typedef classpath: %v", config.Classpath)

	reg := registry.NewTypeRegistry()
	for _, pkg := range config.Imports {
		reg.ImportPackage(pkg)
	}
	for _, dir := range config.Classpath {
		if err := reg.LoadDirectory(dir); err != nil {
			return err
		}
	}
	g.diagnostics.Verbose("Loaded %d type definitions", reg.Size())

	g.diagnostics.PhaseHeader("Synthesizing proxies")
	pipeline := synth.NewPipeline(reg, config.Output, g.diagnostics)
	result, err := pipeline.Run()
	if err != nil {
		return err
	}

	g.summary = GenerationSummary{
		TypesGenerated:   result.TypesGenerated,
		MethodsForwarded: result.MethodsForwarded,
		MethodsInherited: result.MethodsInherited,
		MethodsSkipped:   result.MethodsSkipped,
		Artifacts:        result.Artifacts,
		Elapsed:          time.Since(startTime),
	}

	return nil
}
