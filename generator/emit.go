package generator

import (
	"fmt"
	"go/format"
	"io"
	"strings"

	"golang.org/x/tools/imports"
)

// emit assembles the final source stream: preamble, import block and the
// generated declarations. The result is gofmt-formatted and unused imports
// are pruned, so a device with no peripherals still emits a valid file.
func (g *Generator) emit(body *strings.Builder, w io.Writer) error {
	pkg := g.cfg.Package
	if len(pkg) == 0 {
		pkg = strings.ToLower(g.device.Name)
	}

	var src strings.Builder
	fmt.Fprintf(&src, "// Code generated by mmapgen from the %s description. DO NOT EDIT.\n\n", g.device.Name)
	fmt.Fprintf(&src, "package %s\n\n", pkg)
	fmt.Fprintf(&src, "import (\n")
	fmt.Fprintf(&src, "\"unsafe\"\n\n")
	if len(g.cfg.RuntimeImport) > 0 {
		fmt.Fprintf(&src, "%q\n", g.cfg.RuntimeImport)
	}
	fmt.Fprintf(&src, ")\n\n")
	src.WriteString(body.String())

	buf, err := format.Source([]byte(src.String()))
	if err != nil {
		return fmt.Errorf("error formatting generated source for %s: %v", g.device.Name, err)
	}
	if buf, err = imports.Process(pkg+".go", buf, nil); err != nil {
		return fmt.Errorf("error fixing imports for %s: %v", g.device.Name, err)
	}
	_, err = w.Write(buf)
	return err
}
