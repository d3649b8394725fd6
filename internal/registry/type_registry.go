// Package registry implements the type registry: the lookup service that maps
// type names to their structural descriptors. The registry is constructed and
// loaded once at pipeline start and is read-only for the remainder of the run.
package registry

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/hikaridb/proxygen/internal/models"
	"github.com/hikaridb/proxygen/internal/typedef"
	"github.com/hikaridb/proxygen/internal/utils"
)

// ResolvedMethod pairs a method descriptor with the type that declares it
type ResolvedMethod struct {
	Method     *models.MethodDescriptor
	DeclaredBy *models.TypeDescriptor
}

// TypeRegistry resolves type names to structural descriptors. Simple names are
// resolved against the imported package list, mirroring a classpath import.
type TypeRegistry struct {
	parser  *typedef.Parser
	reader  *utils.FileReader
	types   map[string]*models.TypeDescriptor
	imports []string
	lookups *utils.Cache[string, *models.TypeDescriptor]
}

// NewTypeRegistry creates an empty registry. The java.lang package is imported
// implicitly, like the source language's default import.
func NewTypeRegistry() *TypeRegistry {
	return &TypeRegistry{
		parser:  typedef.NewParser(),
		reader:  utils.NewFileReader(),
		types:   make(map[string]*models.TypeDescriptor),
		imports: []string{"java.lang"},
		lookups: utils.NewCache[string, *models.TypeDescriptor](),
	}
}

// ImportPackage adds a package to the simple-name resolution list
func (r *TypeRegistry) ImportPackage(pkg string) {
	for _, existing := range r.imports {
		if existing == pkg {
			return
		}
	}
	r.imports = append(r.imports, pkg)
}

// LoadDirectory loads every typedef file under the given directory
func (r *TypeRegistry) LoadDirectory(dir string) error {
	err := filepath.WalkDir(dir, func(path string, entry fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), typedef.FileExtension) {
			return nil
		}

		source, err := r.reader.ReadFile(path)
		if err != nil {
			return err
		}
		return r.AddSource(path, source)
	})
	if err != nil {
		return utils.WrapLoadError(fmt.Sprintf("typedef directory %s", dir), err)
	}
	return nil
}

// AddSource parses typedef source and registers every type it declares
func (r *TypeRegistry) AddSource(filename, source string) error {
	descriptors, err := r.parser.ParseFile(filename, source)
	if err != nil {
		return err
	}

	for _, td := range descriptors {
		if existing, exists := r.types[td.Name]; exists {
			return fmt.Errorf("type %s declared in both %s and %s", td.Name, existing.SourceFile, td.SourceFile)
		}
		r.types[td.Name] = td
	}

	return nil
}

// Size returns the number of registered types
func (r *TypeRegistry) Size() int {
	return len(r.types)
}

// Resolve maps a type name to its descriptor. Qualified names are looked up
// directly; simple names are tried against each imported package in order.
func (r *TypeRegistry) Resolve(name string) (*models.TypeDescriptor, error) {
	if td, ok := r.lookups.Get(name); ok {
		return td, nil
	}

	if td, ok := r.types[name]; ok {
		r.lookups.Set(name, td)
		return td, nil
	}

	if !strings.Contains(name, ".") {
		for _, pkg := range r.imports {
			if td, ok := r.types[pkg+"."+name]; ok {
				r.lookups.Set(name, td)
				return td, nil
			}
		}
	}

	return nil, models.NewResolutionError(name, "not present on the typedef classpath", nil)
}

// DeclaredMethods returns the methods declared directly on the type
func (r *TypeRegistry) DeclaredMethods(td *models.TypeDescriptor) []*models.MethodDescriptor {
	methods := make([]*models.MethodDescriptor, len(td.Methods))
	for i := range td.Methods {
		methods[i] = &td.Methods[i]
	}
	return methods
}

// Interfaces resolves the type's directly declared interfaces
func (r *TypeRegistry) Interfaces(td *models.TypeDescriptor) ([]*models.TypeDescriptor, error) {
	out := make([]*models.TypeDescriptor, 0, len(td.Interfaces))
	for _, name := range td.Interfaces {
		resolved, err := r.Resolve(name)
		if err != nil {
			return nil, utils.WrapResolveError(fmt.Sprintf("interface %s of %s", name, td.Name), err)
		}
		out = append(out, resolved)
	}
	return out, nil
}

// Superclass resolves the type's superclass, or returns nil when it has none
func (r *TypeRegistry) Superclass(td *models.TypeDescriptor) (*models.TypeDescriptor, error) {
	if td.Superclass == "" {
		return nil, nil
	}
	resolved, err := r.Resolve(td.Superclass)
	if err != nil {
		return nil, utils.WrapResolveError(fmt.Sprintf("superclass %s of %s", td.Superclass, td.Name), err)
	}
	return resolved, nil
}

// AllMethods returns the type's declared and inherited method list: declared
// methods first, then the superclass chain, then interface declarations, with
// nearer declarations shadowing farther ones per signature.
func (r *TypeRegistry) AllMethods(td *models.TypeDescriptor) ([]ResolvedMethod, error) {
	seen := make(map[models.MethodSignature]bool)
	var out []ResolvedMethod

	// Class chain first: these are real implementations and shadow everything
	for current := td; current != nil; {
		for i := range current.Methods {
			method := &current.Methods[i]
			sig := models.SignatureOf(method)
			if seen[sig] {
				continue
			}
			seen[sig] = true
			out = append(out, ResolvedMethod{Method: method, DeclaredBy: current})
		}

		next, err := r.Superclass(current)
		if err != nil {
			return nil, err
		}
		current = next
	}

	// Interface declarations fill in what the class chain never implements
	interfaces, err := r.allInterfaces(td)
	if err != nil {
		return nil, err
	}
	for _, intf := range interfaces {
		for i := range intf.Methods {
			method := &intf.Methods[i]
			sig := models.SignatureOf(method)
			if seen[sig] {
				continue
			}
			seen[sig] = true
			out = append(out, ResolvedMethod{Method: method, DeclaredBy: intf})
		}
	}

	return out, nil
}

// LookupMethod finds the nearest declaration of the signature on the type,
// searching declared methods, the superclass chain, then interfaces
func (r *TypeRegistry) LookupMethod(td *models.TypeDescriptor, sig models.MethodSignature) (*ResolvedMethod, bool, error) {
	methods, err := r.AllMethods(td)
	if err != nil {
		return nil, false, err
	}
	for i := range methods {
		if models.SignatureOf(methods[i].Method) == sig {
			return &methods[i], true, nil
		}
	}
	return nil, false, nil
}

// allInterfaces collects the transitive interface set of the type and its
// superclass chain, in insertion order
func (r *TypeRegistry) allInterfaces(td *models.TypeDescriptor) ([]*models.TypeDescriptor, error) {
	seen := make(map[string]bool)
	var out []*models.TypeDescriptor

	var walk func(current *models.TypeDescriptor) error
	walk = func(current *models.TypeDescriptor) error {
		interfaces, err := r.Interfaces(current)
		if err != nil {
			return err
		}
		for _, intf := range interfaces {
			if err := walk(intf); err != nil {
				return err
			}
			if !seen[intf.Name] {
				seen[intf.Name] = true
				out = append(out, intf)
			}
		}

		super, err := r.Superclass(current)
		if err != nil {
			return err
		}
		if super != nil {
			return walk(super)
		}
		return nil
	}

	if err := walk(td); err != nil {
		return nil, err
	}
	return out, nil
}
