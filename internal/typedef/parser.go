// Package typedef parses .typedef files: the compact, Java-like interface
// definition language that supplies the structural type metadata the synthesis
// pipeline runs on. A file holds one package declaration followed by any number
// of class or interface declarations. Methods are declarations only; bodies
// exist solely on generated output, never on input.
package typedef

import (
	"fmt"
	"strings"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"

	"github.com/hikaridb/proxygen/internal/models"
)

// FileExtension is the extension of type definition files
const FileExtension = ".typedef"

// Parser parses typedef source into type descriptors
type Parser struct {
	parser *participle.Parser[typedefFile]
}

// typedefFile is the grammar root: a package declaration and type declarations
type typedefFile struct {
	Package string      `parser:"'package' @Ident ';'"`
	Types   []*typeDecl `parser:"@@*"`
}

// typeDecl represents one class or interface declaration
type typeDecl struct {
	Modifiers  []string      `parser:"@('public' | 'protected' | 'abstract' | 'final' | 'static')*"`
	Kind       string        `parser:"@('class' | 'interface')"`
	Name       string        `parser:"@Ident"`
	Extends    []string      `parser:"('extends' @Ident (',' @Ident)*)?"`
	Implements []string      `parser:"('implements' @Ident (',' @Ident)*)?"`
	Methods    []*methodDecl `parser:"'{' @@* '}'"`
}

// methodDecl represents one method declaration inside a type body
type methodDecl struct {
	Modifiers []string     `parser:"@('public' | 'protected' | 'abstract' | 'final' | 'default' | 'static')*"`
	Return    *typeRef     `parser:"@@"`
	Name      string       `parser:"@Ident"`
	Params    []*paramDecl `parser:"'(' (@@ (',' @@)*)? ')'"`
	Throws    []string     `parser:"('throws' @Ident (',' @Ident)*)? ';'"`
}

// typeRef is a possibly-array type reference
type typeRef struct {
	Name string   `parser:"@Ident"`
	Dims []string `parser:"@ArrayDim*"`
}

// paramDecl is a single method parameter; the name is optional
type paramDecl struct {
	Type *typeRef `parser:"@@"`
	Name string   `parser:"@Ident?"`
}

// NewParser creates a new typedef parser
func NewParser() *Parser {
	lex := lexer.MustSimple([]lexer.SimpleRule{
		{Name: "Comment", Pattern: `//[^\n]*`},
		{Name: "Ident", Pattern: `[a-zA-Z_][a-zA-Z0-9_]*(\.[a-zA-Z_][a-zA-Z0-9_]*)*`},
		{Name: "ArrayDim", Pattern: `\[\]`},
		{Name: "Punct", Pattern: `[{}(),;]`},
		{Name: "Whitespace", Pattern: `\s+`},
	})

	parser := participle.MustBuild[typedefFile](
		participle.Lexer(lex),
		participle.Elide("Whitespace", "Comment"),
		participle.UseLookahead(2),
	)

	return &Parser{parser: parser}
}

// ParseFile parses typedef source and returns the declared type descriptors.
// Declared type names are qualified with the file's package.
func (p *Parser) ParseFile(filename, source string) ([]*models.TypeDescriptor, error) {
	file, err := p.parser.ParseString(filename, source)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", filename, err)
	}

	descriptors := make([]*models.TypeDescriptor, 0, len(file.Types))
	for _, decl := range file.Types {
		td, err := p.convertType(file.Package, decl, filename)
		if err != nil {
			return nil, err
		}
		descriptors = append(descriptors, td)
	}

	return descriptors, nil
}

// convertType converts a parsed declaration into a type descriptor
func (p *Parser) convertType(pkg string, decl *typeDecl, filename string) (*models.TypeDescriptor, error) {
	if strings.Contains(decl.Name, ".") {
		return nil, fmt.Errorf("%s: declared type name %q must be simple, not qualified", filename, decl.Name)
	}

	qualified := decl.Name
	if pkg != "" {
		qualified = pkg + "." + decl.Name
	}

	td := &models.TypeDescriptor{
		Name:       qualified,
		SourceFile: filename,
	}

	mods, err := convertModifiers(decl.Modifiers)
	if err != nil {
		return nil, fmt.Errorf("%s: type %s: %w", filename, decl.Name, err)
	}
	td.Modifiers = mods

	switch decl.Kind {
	case "interface":
		td.Kind = models.InterfaceType
		if len(decl.Implements) > 0 {
			return nil, fmt.Errorf("%s: interface %s cannot declare implements", filename, decl.Name)
		}
		td.Interfaces = decl.Extends
	case "class":
		td.Kind = models.ClassType
		if len(decl.Extends) > 1 {
			return nil, fmt.Errorf("%s: class %s cannot extend more than one class", filename, decl.Name)
		}
		if len(decl.Extends) == 1 {
			td.Superclass = decl.Extends[0]
		}
		td.Interfaces = decl.Implements
	}

	seen := make(map[models.MethodSignature]bool)
	for _, m := range decl.Methods {
		method, err := p.convertMethod(m, filename, decl.Name)
		if err != nil {
			return nil, err
		}
		if method.Modifiers.Has(models.DefaultModifier) && td.Kind != models.InterfaceType {
			return nil, fmt.Errorf("%s: class %s: method %s cannot be a default method", filename, decl.Name, method.Name)
		}
		// Interface methods without a default or static modifier are implicitly abstract
		if td.Kind == models.InterfaceType &&
			!method.Modifiers.Has(models.DefaultModifier) && !method.Modifiers.Has(models.StaticModifier) {
			method.Modifiers = method.Modifiers.With(models.AbstractModifier)
		}
		sig := models.SignatureOf(&method)
		if seen[sig] {
			return nil, fmt.Errorf("%s: type %s declares method %s twice", filename, decl.Name, sig)
		}
		seen[sig] = true
		td.Methods = append(td.Methods, method)
	}

	return td, nil
}

// convertMethod converts a parsed method declaration into a descriptor
func (p *Parser) convertMethod(decl *methodDecl, filename, typeName string) (models.MethodDescriptor, error) {
	method := models.MethodDescriptor{Name: decl.Name}

	mods, err := convertModifiers(decl.Modifiers)
	if err != nil {
		return method, fmt.Errorf("%s: method %s.%s: %w", filename, typeName, decl.Name, err)
	}
	method.Modifiers = mods

	ret, err := convertTypeRef(decl.Return)
	if err != nil {
		return method, fmt.Errorf("%s: method %s.%s: %w", filename, typeName, decl.Name, err)
	}
	method.ReturnType = ret

	for i, param := range decl.Params {
		typ, err := convertTypeRef(param.Type)
		if err != nil {
			return method, fmt.Errorf("%s: method %s.%s parameter %d: %w", filename, typeName, decl.Name, i, err)
		}
		method.Parameters = append(method.Parameters, models.Parameter{Type: typ, Name: param.Name})
	}

	method.Throws = append(method.Throws, decl.Throws...)

	return method, nil
}

// convertTypeRef renders a type reference, rejecting multi-dimensional arrays.
// Only single-dimension arrays can be mapped back to concrete types; anything
// deeper must fail here rather than silently mis-resolve downstream.
func convertTypeRef(ref *typeRef) (string, error) {
	if len(ref.Dims) > 1 {
		return "", fmt.Errorf("multi-dimensional array type %q is not supported", ref.Name+strings.Repeat("[]", len(ref.Dims)))
	}
	if len(ref.Dims) == 1 {
		return ref.Name + "[]", nil
	}
	return ref.Name, nil
}

// convertModifiers converts modifier keywords into a ModifierSet
func convertModifiers(words []string) (models.ModifierSet, error) {
	var set models.ModifierSet
	for _, word := range words {
		mod, ok := models.ParseModifier(word)
		if !ok {
			return set, fmt.Errorf("unknown modifier %q", word)
		}
		set = set.With(mod)
	}
	return set, nil
}
