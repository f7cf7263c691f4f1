// Package gen renders the per-type family files of the primiter package.
package gen

import (
	"bytes"
	"context"
	_ "embed"
	"go/token"
	"os"
	"path/filepath"
	"strings"
	"text/template"

	"golang.org/x/tools/imports"

	"go.llib.dev/primiter/internal/logging"
	"go.llib.dev/primiter/pkg/errorkit"
)

const ErrInvalidPackage errorkit.Error = "gen: invalid package name"

//go:embed family.go.tmpl
var familyTemplate string

var tmpl = template.Must(template.New("family").Parse(familyTemplate))

// Type describes one member of the primitive family.
type Type struct {
	// Name is the prefix of every generated identifier, e.g. Int32.
	Name string
	// GoType is the element type of the family, e.g. int32.
	GoType string
	// Native marks the types that get iter.Seq bridges.
	Native bool
}

func (t Type) FileName() string {
	return strings.ToLower(t.Name) + "_gen.go"
}

// Family lists every primitive specialization in declaration order.
var Family = []Type{
	{Name: "Bool", GoType: "bool"},
	{Name: "Int8", GoType: "int8"},
	{Name: "Int16", GoType: "int16"},
	{Name: "Char16", GoType: "uint16"},
	{Name: "Int32", GoType: "int32", Native: true},
	{Name: "Int64", GoType: "int64", Native: true},
	{Name: "Float32", GoType: "float32"},
	{Name: "Float64", GoType: "float64", Native: true},
}

type templateData struct {
	Type
	Package string
}

// Render produces the gofmt-formatted source of the family file for t.
func Render(pkg string, t Type) ([]byte, error) {
	if !token.IsIdentifier(pkg) {
		return nil, ErrInvalidPackage.F("%q", pkg)
	}
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, templateData{Type: t, Package: pkg}); err != nil {
		return nil, err
	}
	return imports.Process(t.FileName(), buf.Bytes(), &imports.Options{
		Comments:   true,
		TabIndent:  true,
		TabWidth:   8,
		FormatOnly: true,
	})
}

type Options struct {
	// Dir is the output directory. It is created when missing.
	Dir string
	// Package is the package clause of the generated files.
	Package string
}

// Generate writes every Family file into opts.Dir.
// It stops at the first failure, or when ctx is cancelled between files.
func Generate(ctx context.Context, opts Options, logger *logging.Logger) error {
	if err := os.MkdirAll(opts.Dir, 0o755); err != nil {
		return err
	}
	for _, t := range Family {
		if err := ctx.Err(); err != nil {
			return err
		}
		path := filepath.Join(opts.Dir, t.FileName())
		src, err := Render(opts.Package, t)
		if err != nil {
			logger.Error(ctx, "failed to render family file",
				logging.Field("path", path),
				logging.ErrField(err))
			return err
		}
		if err := writeFile(path, src); err != nil {
			logger.Error(ctx, "failed to write family file",
				logging.Field("path", path),
				logging.ErrField(err))
			return err
		}
		logger.Debug(ctx, "family file written",
			logging.Field("path", path),
			logging.Field("type", t.GoType))
	}
	logger.Info(ctx, "primitive family generated",
		logging.Field("dir", opts.Dir),
		logging.Field("files", len(Family)))
	return nil
}

func writeFile(path string, src []byte) (rErr error) {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer errorkit.Finish(&rErr, f.Close)
	_, err = f.Write(src)
	return err
}
