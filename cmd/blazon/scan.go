package main

import (
	"fmt"
	"go/ast"
	"go/token"
	"path/filepath"
	"sort"
	"strings"

	"github.com/rs/zerolog"
	"golang.org/x/tools/go/packages"
)

type (
	// ClassDef is everything the scanner collected for one annotated type.
	ClassDef struct {
		PkgDir   string
		PkgName  string
		TypeName string
		Pos      token.Position

		Annotations []Annotation // class-level, doc order
		Members     []MemberDef  // field order
		Params      []ParamDef   // constructor parameter order
	}

	MemberDef struct {
		Name        string
		Annotations []Annotation
	}

	ParamDef struct {
		Index       int
		Annotations []Annotation
	}
)

var classTags = map[string]bool{
	"component": true,
	"directive": true,
	"view":      true,
	"pipe":      true,
}

var memberTags = map[string]bool{
	"property":     true,
	"event":        true,
	"hostBinding":  true,
	"hostListener": true,
	"query":        true,
	"viewQuery":    true,
}

var paramTags = map[string]bool{
	"attribute": true,
	"inject":    true,
	"optional":  true,
	"self":      true,
	"skipSelf":  true,
	"host":      true,
}

// scan loads the packages matching patterns and collects every annotated
// class, grouped by package directory.
func scan(logger *zerolog.Logger, patterns ...string) (map[string][]*ClassDef, error) {
	cfg := &packages.Config{
		Mode: packages.NeedName | packages.NeedFiles | packages.NeedSyntax,
	}
	pkgs, err := packages.Load(cfg, patterns...)
	if err != nil {
		return nil, fmt.Errorf("failed to load packages %v:\n\t%w", patterns, err)
	}

	byDir := make(map[string][]*ClassDef)
	for _, pkg := range pkgs {
		logger := logger.With().Str("package", pkg.ID).Logger()
		logger.Debug().Msg("Scanning package")

		defs := make(map[string]*ClassDef)
		var order []string
		for _, file := range pkg.Syntax {
			scanFile(&logger, pkg.Fset, file, defs, &order)
		}
		if len(order) == 0 {
			continue
		}

		for _, name := range order {
			def := defs[name]
			byDir[def.PkgDir] = append(byDir[def.PkgDir], def)
		}
	}

	for _, defs := range byDir {
		sort.SliceStable(defs, func(i, j int) bool {
			if defs[i].Pos.Filename != defs[j].Pos.Filename {
				return defs[i].Pos.Filename < defs[j].Pos.Filename
			}
			return defs[i].Pos.Line < defs[j].Pos.Line
		})
	}

	return byDir, nil
}

func scanFile(logger *zerolog.Logger, fset *token.FileSet, file *ast.File, defs map[string]*ClassDef, order *[]string) {
	packageName := file.Name.Name

	getDef := func(typeName string, pos token.Pos) *ClassDef {
		def, found := defs[typeName]
		if !found {
			position := fset.Position(pos)
			def = &ClassDef{
				PkgDir:   filepath.Dir(position.Filename),
				PkgName:  packageName,
				TypeName: typeName,
				Pos:      position,
			}
			defs[typeName] = def
			*order = append(*order, typeName)
		}
		return def
	}

	ast.Inspect(file, func(n ast.Node) bool {
		switch node := n.(type) {
		case *ast.GenDecl:
			if node.Tok != token.TYPE {
				return true
			}
			for _, spec := range node.Specs {
				typeSpec, ok := spec.(*ast.TypeSpec)
				if !ok {
					continue
				}
				doc := docTextOf(node.Doc, typeSpec.Doc)
				anns := classAnnotations(logger, doc)
				if len(anns) == 0 {
					if structType, ok := typeSpec.Type.(*ast.StructType); ok && hasMemberAnnotations(structType) {
						logger.Warn().
							Str("class", typeSpec.Name.Name).
							Msg("Member annotations on a type without a class annotation, nothing will be generated for it")
					}
					continue
				}
				logger := logger.With().Str("class", typeSpec.Name.Name).Logger()
				logger.Debug().Msg("=> Found annotated class")

				def := getDef(typeSpec.Name.Name, typeSpec.Pos())
				def.Annotations = append(def.Annotations, anns...)

				if structType, ok := typeSpec.Type.(*ast.StructType); ok {
					scanMembers(&logger, structType, def)
				}
			}
		case *ast.FuncDecl:
			scanConstructor(logger, fset, file, node, getDef)
		}
		return true
	})
}

func classAnnotations(logger *zerolog.Logger, doc string) []Annotation {
	var out []Annotation
	for _, ann := range parseAnnotations(logger, doc) {
		if classTags[ann.Tag] {
			out = append(out, ann)
		}
	}
	return out
}

// hasMemberAnnotations reports whether any field of structType carries a
// member annotation.
func hasMemberAnnotations(structType *ast.StructType) bool {
	nop := zerolog.Nop()
	for _, field := range structType.Fields.List {
		for _, ann := range parseAnnotations(&nop, docTextOf(field.Doc, field.Comment)) {
			if memberTags[ann.Tag] {
				return true
			}
		}
	}
	return false
}

func scanMembers(logger *zerolog.Logger, structType *ast.StructType, def *ClassDef) {
	for _, field := range structType.Fields.List {
		doc := docTextOf(field.Doc, field.Comment)
		var anns []Annotation
		for _, ann := range parseAnnotations(logger, doc) {
			if memberTags[ann.Tag] {
				anns = append(anns, ann)
			}
		}
		if len(anns) == 0 {
			continue
		}
		for _, name := range field.Names {
			logger.Debug().Str("member", name.Name).Msg("=> Found annotated member")
			def.Members = append(def.Members, MemberDef{Name: name.Name, Annotations: anns})
		}
	}
}

// scanConstructor looks for DI annotations on the parameters of New<Type>
// constructor functions, matching each parameter's trailing same-line
// comment.
func scanConstructor(logger *zerolog.Logger, fset *token.FileSet, file *ast.File, fn *ast.FuncDecl, getDef func(string, token.Pos) *ClassDef) {
	if fn.Recv != nil || !strings.HasPrefix(fn.Name.Name, "New") || fn.Type.Params == nil {
		return
	}
	typeName := strings.TrimPrefix(fn.Name.Name, "New")
	if typeName == "" {
		return
	}

	index := 0
	for _, param := range fn.Type.Params.List {
		comment := findCommentForParam(fset, file, param)
		var anns []Annotation
		for _, ann := range parseAnnotations(logger, comment) {
			if paramTags[ann.Tag] {
				anns = append(anns, ann)
			}
		}
		names := len(param.Names)
		if names == 0 {
			names = 1
		}
		for i := 0; i < names; i++ {
			if len(anns) > 0 {
				logger.Debug().
					Str("constructor", fn.Name.Name).
					Int("param", index).
					Msg("=> Found annotated constructor parameter")
				def := getDef(typeName, fn.Pos())
				def.Params = append(def.Params, ParamDef{Index: index, Annotations: anns})
			}
			index++
		}
	}
}

// findCommentForParam returns the comment sharing a source line with param.
func findCommentForParam(fset *token.FileSet, file *ast.File, param *ast.Field) string {
	paramLine := fset.Position(param.Pos()).Line

	for _, commentGroup := range file.Comments {
		for _, comment := range commentGroup.List {
			if fset.Position(comment.Pos()).Line == paramLine {
				return strings.TrimSpace(strings.TrimPrefix(comment.Text, "//"))
			}
		}
	}
	return ""
}

func docTextOf(groups ...*ast.CommentGroup) string {
	var parts []string
	for _, group := range groups {
		if group != nil {
			parts = append(parts, group.Text())
		}
	}
	return strings.Join(parts, "\n")
}
