package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/hikaridb/proxygen/internal/cli"
	"github.com/hikaridb/proxygen/internal/utils"
)

func main() {
	// Define command-line flags
	var (
		configFlag  = flag.String("config", "", "Path to a proxygen.yml config file (defaults to <project root>/proxygen.yml)")
		verboseFlag = flag.Bool("verbose", false, "Enable verbose output and detailed error reporting")
		quietFlag   = flag.Bool("quiet", false, "Only show errors and final results")
		helpFlag    = flag.Bool("help", false, "Show help information")
	)

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [options] [output-root]\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Proxygen Proxy Class Generator\n")
		fmt.Fprintf(os.Stderr, "Synthesizes the pool's concrete proxy classes from typedef metadata and rewires the proxy factory.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nArguments:\n")
		fmt.Fprintf(os.Stderr, "  output-root        Optional output root; artifacts are written under <output-root>/target/classes\n")
		fmt.Fprintf(os.Stderr, "                     (defaults to the project's build output directory)\n")
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  %s                         # Generate into the project's own target/classes\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s ./build                 # Generate under ./build/target/classes\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s --verbose               # Enable detailed output\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s --config ci/proxygen.yml # Use a specific config file\n", os.Args[0])
	}

	flag.Parse()

	// Show help if requested
	if *helpFlag {
		flag.Usage()
		os.Exit(0)
	}

	// Validate arguments: at most one optional output root
	args := flag.Args()
	if len(args) > 1 {
		fmt.Fprintf(os.Stderr, "Error: At most one output-root argument is allowed\n\n")
		flag.Usage()
		os.Exit(1)
	}
	outputRoot := ""
	if len(args) == 1 {
		outputRoot = args[0]
	}

	// Create diagnostic system based on flags
	var diagnostics *utils.DiagnosticSystem
	if *quietFlag {
		diagnostics = utils.NewQuietDiagnostics()
	} else if *verboseFlag {
		diagnostics = utils.NewVerboseDiagnostics()
	} else {
		diagnostics = utils.NewDiagnosticSystem(utils.DiagnosticInfo)
	}

	// Show startup banner
	diagnostics.Section("Proxygen Proxy Class Generator")

	generator := cli.NewGenerator(diagnostics)
	err := generator.Run(cli.RunConfig{
		OutputRoot: outputRoot,
		ConfigFile: *configFlag,
		Verbose:    *verboseFlag,
	})
	if err != nil {
		diagnostics.Error("Generation failed: %v", err)
		os.Exit(1)
	}

	// Show final summary
	summary := generator.Summary()
	stats := map[string]interface{}{
		"Proxy types generated": summary.TypesGenerated,
		"Methods forwarded":     summary.MethodsForwarded,
		"Methods inherited":     summary.MethodsInherited,
		"Methods skipped":       summary.MethodsSkipped,
		"Elapsed":               summary.Elapsed.Round(time.Millisecond),
	}
	diagnostics.Summary("Generation Complete!", stats)

	// Show written artifacts in verbose mode
	if *verboseFlag && len(summary.Artifacts) > 0 {
		diagnostics.Subsection("Written Artifacts")
		for _, artifact := range summary.Artifacts {
			diagnostics.List("%s", artifact)
		}
	}

	diagnostics.Success("Proxy classes are ready")
}
