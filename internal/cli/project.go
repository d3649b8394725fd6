package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"golang.org/x/mod/modfile"
)

// ProjectResolver locates the project root by walking up to the nearest go.mod
type ProjectResolver struct{}

// NewProjectResolver creates a new project resolver
func NewProjectResolver() *ProjectResolver {
	return &ProjectResolver{}
}

// FindRoot walks up from startDir to the directory holding go.mod
func (r *ProjectResolver) FindRoot(startDir string) (string, error) {
	currentDir := filepath.Clean(startDir)

	for {
		goModPath := filepath.Join(currentDir, "go.mod")
		if _, err := os.Stat(goModPath); err == nil {
			return currentDir, nil
		}

		parentDir := filepath.Dir(currentDir)
		if parentDir == currentDir {
			// Reached the filesystem root
			break
		}
		currentDir = parentDir
	}

	return "", fmt.Errorf("go.mod not found above %s", startDir)
}

// ModuleName parses the module path from the project root's go.mod
func (r *ProjectResolver) ModuleName(projectRoot string) (string, error) {
	goModPath := filepath.Join(projectRoot, "go.mod")

	content, err := os.ReadFile(goModPath)
	if err != nil {
		return "", fmt.Errorf("failed to read go.mod: %w", err)
	}

	modFile, err := modfile.Parse(goModPath, content, nil)
	if err != nil {
		return "", fmt.Errorf("failed to parse go.mod: %w", err)
	}
	if modFile.Module == nil {
		return "", fmt.Errorf("no module declaration found in %s", goModPath)
	}

	return modFile.Module.Mod.Path, nil
}
