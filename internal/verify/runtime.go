package verify

import (
	"encoding/json"
	"fmt"
	"go/ast"
	"go/parser"
	"go/token"
	"path"
	"reflect"
	"strings"

	"github.com/civitrans/ptagen/internal/files/filesystem"
	"github.com/civitrans/ptagen/internal/specpkg"
	"github.com/civitrans/ptagen/pkg/ptagen"
)

// InvariantChecker asserts behavioral invariants of the committed generated
// package without regenerating anything. The committed series source is
// parsed into an AST and its declarations inspected directly.
type InvariantChecker struct {
	spec *specpkg.Package
	fsys filesystem.Provider
	log  ptagen.Logger
}

// NewInvariantChecker creates an invariant checker.
func NewInvariantChecker(spec *specpkg.Package, fsys filesystem.Provider, log ptagen.Logger) *InvariantChecker {
	return &InvariantChecker{spec: spec, fsys: fsys, log: log}
}

// Check verifies the committed package under typesDir:
//
//   - the series type's points field is a slice with the default-empty
//     mechanism, so empty collections validate without the caller
//     supplying the field
//   - the series schema declares no minimum-items constraint on points
//     (absent or zero)
//
// Each violation names the specific invariant and the observed value.
func (c *InvariantChecker) Check(typesDir string) error {
	seriesPath := path.Join(typesDir, ptagen.SeriesFileName)
	if err := c.checkPointsField(seriesPath); err != nil {
		return err
	}
	if err := c.checkSchemaMinItems(); err != nil {
		return err
	}

	c.log.Info("spec version: %s, distribution version: %s",
		c.spec.Version(), c.distVersion(typesDir))
	return nil
}

func (c *InvariantChecker) checkPointsField(seriesPath string) error {
	src, err := c.fsys.ReadFile(seriesPath)
	if err != nil {
		return fmt.Errorf("failed to read committed series file: %w", err)
	}

	fset := token.NewFileSet()
	file, err := parser.ParseFile(fset, seriesPath, src, parser.SkipObjectResolution)
	if err != nil {
		return fmt.Errorf("failed to parse committed series file: %w", err)
	}

	field := findStructField(file, ptagen.SeriesSymbol, "Points")
	if field == nil {
		return fmt.Errorf("invariant points-field-present: %s has no Points field in %s: %w",
			ptagen.SeriesSymbol, seriesPath, ptagen.ErrInvariantViolated)
	}

	if _, ok := field.Type.(*ast.ArrayType); !ok {
		return fmt.Errorf("invariant points-field-is-sequence: Points is %T, not a slice: %w",
			field.Type, ptagen.ErrInvariantViolated)
	}

	jsonTag := jsonTagOf(field)
	if !strings.Contains(jsonTag, "omitempty") {
		return fmt.Errorf("invariant points-default-empty: Points json tag %q lacks the default-empty mechanism: %w",
			jsonTag, ptagen.ErrInvariantViolated)
	}

	return nil
}

func (c *InvariantChecker) checkSchemaMinItems() error {
	text, err := c.spec.SchemaText(ptagen.SeriesSchemaName)
	if err != nil {
		return err
	}

	var schema map[string]any
	if err := json.Unmarshal(text, &schema); err != nil {
		return fmt.Errorf("failed to parse series schema: %w", err)
	}

	props, _ := schema["properties"].(map[string]any)
	points, _ := props["points"].(map[string]any)
	if points == nil {
		return nil
	}
	if min, ok := points["minItems"].(float64); ok && min > 0 {
		return fmt.Errorf("invariant points-no-min-items: series schema declares minItems=%v on points: %w",
			min, ptagen.ErrInvariantViolated)
	}

	return nil
}

// distVersion reads the committed version stamp; best-effort, diagnostics only.
func (c *InvariantChecker) distVersion(typesDir string) string {
	content, err := c.fsys.ReadFile(path.Join(typesDir, ptagen.VersionFileName))
	if err != nil {
		return ptagen.UnknownVersion
	}
	for _, line := range strings.Split(string(content), "\n") {
		line = strings.TrimSpace(line)
		if strings.HasPrefix(line, "const Version = ") {
			return strings.Trim(strings.TrimPrefix(line, "const Version = "), `"`)
		}
	}
	return ptagen.UnknownVersion
}

func findStructField(file *ast.File, typeName, fieldName string) *ast.Field {
	for _, decl := range file.Decls {
		gen, ok := decl.(*ast.GenDecl)
		if !ok || gen.Tok != token.TYPE {
			continue
		}
		for _, spec := range gen.Specs {
			ts, ok := spec.(*ast.TypeSpec)
			if !ok || ts.Name.Name != typeName {
				continue
			}
			st, ok := ts.Type.(*ast.StructType)
			if !ok {
				continue
			}
			for _, field := range st.Fields.List {
				for _, name := range field.Names {
					if name.Name == fieldName {
						return field
					}
				}
			}
		}
	}
	return nil
}

func jsonTagOf(field *ast.Field) string {
	if field.Tag == nil {
		return ""
	}
	raw := strings.Trim(field.Tag.Value, "`")
	return reflect.StructTag(raw).Get("json")
}
