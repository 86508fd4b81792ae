package main

import (
	"fmt"
	"go/parser"
	"go/token"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

const modulePath = "github.com/rlopezl29/proyectofinal"

// driverImports may only appear in adapters and in a module's composition
// file (module.go).
var driverImports = []string{
	"gorm.io",
	"github.com/glebarez/sqlite",
	"github.com/jackc/pgx",
	"github.com/golang-jwt/jwt",
	"golang.org/x/crypto",
	"github.com/google/uuid",
}

// layerRule lists the project packages a layer may import, relative to its
// own service ("domain") or to the module root ("/internal/shared").
// Standard library imports are always allowed.
type layerRule struct {
	ownPackages    []string
	sharedPackages []string
}

var layerRules = map[string]layerRule{
	"domain": {
		ownPackages: []string{"domain"},
	},
	"ports": {
		ownPackages:    []string{"domain"},
		sharedPackages: []string{"/internal/shared"},
	},
	"application": {
		ownPackages:    []string{"application", "domain", "ports"},
		sharedPackages: []string{"/internal/shared"},
	},
	"transport": {
		ownPackages: []string{"transport", "domain"},
	},
}

type violation struct {
	File   string
	Line   int
	Import string
	Rule   string
}

func main() {
	violations := collectViolations("contexts")
	if len(violations) == 0 {
		fmt.Println("boundary checks passed")
		return
	}

	sort.Slice(violations, func(i, j int) bool {
		if violations[i].File != violations[j].File {
			return violations[i].File < violations[j].File
		}
		return violations[i].Line < violations[j].Line
	})

	fmt.Println("boundary violations found:")
	for _, v := range violations {
		fmt.Printf("- %s:%d imports %q (%s)\n", v.File, v.Line, v.Import, v.Rule)
	}
	os.Exit(1)
}

// collectViolations walks root laid out as <context>/<service>/<layer>/...
func collectViolations(root string) []violation {
	var violations []violation

	_ = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil || d.IsDir() || !strings.HasSuffix(path, ".go") || strings.HasSuffix(path, "_test.go") {
			return nil
		}
		rel, err := filepath.Rel(root, path)
		if err != nil {
			return nil
		}
		parts := strings.Split(filepath.ToSlash(rel), "/")
		if len(parts) < 3 {
			return nil
		}

		service := fmt.Sprintf("%s/contexts/%s/%s", modulePath, parts[0], parts[1])
		layer := ""
		if len(parts) > 3 {
			layer = parts[2]
		}
		violations = append(violations, checkFile(path, filepath.ToSlash(path), layer, service)...)
		return nil
	})

	return violations
}

func checkFile(path string, display string, layer string, service string) []violation {
	fset := token.NewFileSet()
	file, err := parser.ParseFile(fset, path, nil, parser.ImportsOnly)
	if err != nil {
		return []violation{{File: display, Line: 1, Rule: "file must parse"}}
	}

	var violations []violation
	for _, imp := range file.Imports {
		importPath := strings.Trim(imp.Path.Value, "\"")
		if rule := importRule(importPath, layer, service); rule != "" {
			violations = append(violations, violation{
				File:   display,
				Line:   fset.Position(imp.Pos()).Line,
				Import: importPath,
				Rule:   rule,
			})
		}
	}
	return violations
}

// importRule returns the broken rule, or "" when the import is allowed.
func importRule(importPath string, layer string, service string) string {
	switch {
	case hasPrefix(importPath, modulePath+"/contexts") && !hasPrefix(importPath, service):
		return "cross-module imports are forbidden"
	case hasPrefix(importPath, modulePath+"/internal") && !hasPrefix(importPath, modulePath+"/internal/shared"):
		return "contexts must not import platform or app packages"
	}

	rule, ok := layerRules[layer]
	if !ok {
		return ""
	}
	if isDriver(importPath) {
		return layer + " must not import drivers; move it behind an adapter"
	}
	if isStdlib(importPath) {
		return ""
	}
	for _, pkg := range rule.ownPackages {
		if hasPrefix(importPath, service+"/"+pkg) {
			return ""
		}
	}
	for _, pkg := range rule.sharedPackages {
		if hasPrefix(importPath, modulePath+pkg) {
			return ""
		}
	}
	return layer + " import is outside its allowlist"
}

func isDriver(importPath string) bool {
	for _, prefix := range driverImports {
		if hasPrefix(importPath, prefix) {
			return true
		}
	}
	return false
}

func hasPrefix(path string, prefix string) bool {
	return path == prefix || strings.HasPrefix(path, prefix+"/")
}

func isStdlib(importPath string) bool {
	first, _, _ := strings.Cut(importPath, "/")
	return !strings.Contains(first, ".")
}
