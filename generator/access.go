package generator

import (
	"fmt"
	"strings"

	"omibyte.io/mmapgen/svd"
)

// genRegister emits everything one register needs: the backing storage type,
// any enumerated value types, the snapshot reader and the staged writer.
// The reader is suppressed for write-only registers and the writer for
// read-only registers; field accessors are gated the same way.
func (g *Generator) genRegister(prefix, periphName string, reg svd.RegisterElement, w *strings.Builder) error {
	typename := prefix + pascalCase(reg.Name)
	label := periphName + "." + reg.Name
	access := g.registerAccess(reg)

	codecs := make([]fieldCodec, 0, len(reg.Fields.Elements))
	for _, field := range reg.Fields.Elements {
		c, err := g.newFieldCodec(typename, reg, field)
		if err != nil {
			return fmt.Errorf("%s: %w", periphName, err)
		}
		codecs = append(codecs, c)
	}

	// Storage: one volatile word per register.
	if len(reg.Description) > 0 {
		fmt.Fprintf(w, "// %s %s\n", typename, reg.Description)
	}
	fmt.Fprintf(w, "type %s struct {\n", typename)
	fmt.Fprintf(w, "value volatile.Register32\n")
	fmt.Fprintf(w, "}\n\n")

	for _, c := range codecs {
		if len(c.enumType) > 0 {
			g.genEnumType(c, w)
		}
	}

	if access.read {
		g.genSnapshot(typename, reg, w)
		for _, c := range codecs {
			if c.access.read {
				g.genFieldGetter(typename, label, c, w)
			}
		}
	}

	if access.write {
		g.genUpdater(typename, label, access, reg, w)
		for _, c := range codecs {
			if c.access.write {
				g.genFieldSetter(typename, c, w)
			}
		}
	}

	return nil
}

// genEnumType declares the named variant type for an enumerated field along
// with its value constants.
func (g *Generator) genEnumType(c fieldCodec, w *strings.Builder) {
	fmt.Fprintf(w, "type %s uint32\n\n", c.enumType)
	fmt.Fprintf(w, "const (\n")
	for _, value := range c.enum.Elements {
		name := c.enumType + pascalCase(value.Name)
		if len(value.Description) > 0 {
			fmt.Fprintf(w, "// %s %s\n", name, value.Description)
		}
		fmt.Fprintf(w, "%s %s = %#x\n", name, c.enumType, uint64(value.Value))
	}
	fmt.Fprintf(w, ")\n\n")
}

// genSnapshot emits the immutable snapshot reader: one hardware read at
// construction, every field decode works on the cached word.
func (g *Generator) genSnapshot(typename string, reg svd.RegisterElement, w *strings.Builder) {
	fmt.Fprintf(w, "type %sGet struct {\n", typename)
	fmt.Fprintf(w, "value uint32\n")
	fmt.Fprintf(w, "}\n\n")

	fmt.Fprintf(w, "// Get reads %s once and caches the value for field decoding.\n", pascalCase(reg.Name))
	fmt.Fprintf(w, "func (r *%s) Get() %sGet {\n", typename, typename)
	fmt.Fprintf(w, "return %sGet{value: r.value.Load()}\n", typename)
	fmt.Fprintf(w, "}\n\n")
}

// genUpdater emits the staged writer: field setters accumulate a value and a
// mask, Commit performs at most one hardware write.
func (g *Generator) genUpdater(typename, label string, access accessMode, reg svd.RegisterElement, w *strings.Builder) {
	regName := pascalCase(reg.Name)

	fmt.Fprintf(w, "type %sUpdate struct {\n", typename)
	fmt.Fprintf(w, "value uint32\n")
	fmt.Fprintf(w, "mask uint32\n")
	fmt.Fprintf(w, "writeOnly bool\n")
	fmt.Fprintf(w, "committed bool\n")
	fmt.Fprintf(w, "reg *%s\n", typename)
	fmt.Fprintf(w, "}\n\n")

	if access.read {
		fmt.Fprintf(w, "// Update stages field writes to %s. Bits not explicitly staged keep\n", regName)
		fmt.Fprintf(w, "// their current hardware value when the update is committed.\n")
		fmt.Fprintf(w, "func (r *%s) Update() *%sUpdate {\n", typename, typename)
		fmt.Fprintf(w, "return &%sUpdate{reg: r}\n", typename)
		fmt.Fprintf(w, "}\n\n")

		fmt.Fprintf(w, "// IgnoringState stages field writes to %s. Bits not explicitly staged\n", regName)
		fmt.Fprintf(w, "// are written as zero.\n")
		fmt.Fprintf(w, "func (r *%s) IgnoringState() *%sUpdate {\n", typename, typename)
		fmt.Fprintf(w, "return &%sUpdate{reg: r, writeOnly: true}\n", typename)
		fmt.Fprintf(w, "}\n\n")
	} else {
		// Reading a write-only register back is undefined, so unspecified
		// bits are always written as zero.
		fmt.Fprintf(w, "// Update stages field writes to %s. The register is write-only; bits\n", regName)
		fmt.Fprintf(w, "// not explicitly staged are written as zero.\n")
		fmt.Fprintf(w, "func (r *%s) Update() *%sUpdate {\n", typename, typename)
		fmt.Fprintf(w, "return &%sUpdate{reg: r, writeOnly: true}\n", typename)
		fmt.Fprintf(w, "}\n\n")
	}

	fmt.Fprintf(w, "// Modify stages field writes with f and commits them as one hardware write.\n")
	fmt.Fprintf(w, "func (r *%s) Modify(f func(*%sUpdate)) {\n", typename, typename)
	fmt.Fprintf(w, "u := r.Update()\n")
	fmt.Fprintf(w, "f(u)\n")
	fmt.Fprintf(w, "u.Commit()\n")
	fmt.Fprintf(w, "}\n\n")

	preserved := "base&^u.mask"
	if g.cfg.ReservedMask != 0 {
		preserved = fmt.Sprintf("base&^%#x&^u.mask", g.cfg.ReservedMask)
	}
	fmt.Fprintf(w, "// Commit merges the staged fields into %s with at most one hardware\n", regName)
	fmt.Fprintf(w, "// write. An update with no staged fields writes nothing; committing twice\n")
	fmt.Fprintf(w, "// panics.\n")
	fmt.Fprintf(w, "func (u *%sUpdate) Commit() {\n", typename)
	fmt.Fprintf(w, "if u.committed {\n")
	fmt.Fprintf(w, "panic(%q)\n", label+": update committed twice")
	fmt.Fprintf(w, "}\n")
	fmt.Fprintf(w, "u.committed = true\n")
	fmt.Fprintf(w, "if u.mask == 0 {\n")
	fmt.Fprintf(w, "return\n")
	fmt.Fprintf(w, "}\n")
	fmt.Fprintf(w, "base := uint32(0)\n")
	fmt.Fprintf(w, "if !u.writeOnly {\n")
	fmt.Fprintf(w, "base = u.reg.value.Load()\n")
	fmt.Fprintf(w, "}\n")
	fmt.Fprintf(w, "u.reg.value.Store(u.value | %s)\n", preserved)
	fmt.Fprintf(w, "}\n\n")
}

// genFieldGetter emits the snapshot decode for one field plus the
// register-level convenience getter that reads a fresh snapshot.
func (g *Generator) genFieldGetter(typename, label string, c fieldCodec, w *strings.Builder) {
	switch {
	case len(c.enumType) > 0:
		fmt.Fprintf(w, "// %s decodes the %s field. It panics if the hardware value does not\n", c.name, c.origName)
		fmt.Fprintf(w, "// map to a declared enumerated value.\n")
		fmt.Fprintf(w, "func (g %sGet) %s() %s {\n", typename, c.name, c.enumType)
		fmt.Fprintf(w, "switch %s {\n", c.rawExpr())
		for _, value := range c.enum.Elements {
			fmt.Fprintf(w, "case %#x:\n", uint64(value.Value))
			fmt.Fprintf(w, "return %s%s\n", c.enumType, pascalCase(value.Name))
		}
		fmt.Fprintf(w, "}\n")
		fmt.Fprintf(w, "panic(%q)\n", label+": unmapped "+c.origName+" value")
		fmt.Fprintf(w, "}\n\n")
	case c.typ == "bool":
		fmt.Fprintf(w, "func (g %sGet) %s() bool {\n", typename, c.name)
		fmt.Fprintf(w, "return %s != 0\n", c.rawExpr())
		fmt.Fprintf(w, "}\n\n")
	case c.width > 32:
		fmt.Fprintf(w, "func (g %sGet) %s() %s {\n", typename, c.name, c.typ)
		fmt.Fprintf(w, "return %s\n", c.rawExpr())
		fmt.Fprintf(w, "}\n\n")
	default:
		fmt.Fprintf(w, "func (g %sGet) %s() %s {\n", typename, c.name, c.typ)
		fmt.Fprintf(w, "return %s(%s)\n", c.typ, c.rawExpr())
		fmt.Fprintf(w, "}\n\n")
	}

	fmt.Fprintf(w, "func (r *%s) %s() %s {\n", typename, c.name, c.typ)
	fmt.Fprintf(w, "return r.Get().%s()\n", c.name)
	fmt.Fprintf(w, "}\n\n")
}

// genFieldSetter emits the staged setter for one field plus the
// register-level one-shot setter that stages and commits a single field.
func (g *Generator) genFieldSetter(typename string, c fieldCodec, w *strings.Builder) {
	fmt.Fprintf(w, "func (u *%sUpdate) Set%s(value %s) *%sUpdate {\n", typename, c.name, c.typ, typename)
	if c.typ == "bool" {
		fmt.Fprintf(w, "u.value &^= %s\n", c.shiftedMaskLit())
		fmt.Fprintf(w, "if value {\n")
		fmt.Fprintf(w, "u.value |= %s\n", c.shiftedMaskLit())
		fmt.Fprintf(w, "}\n")
	} else {
		fmt.Fprintf(w, "u.value = u.value&^%s | %s\n", c.shiftedMaskLit(), c.encodeExpr())
	}
	fmt.Fprintf(w, "u.mask |= %s\n", c.shiftedMaskLit())
	fmt.Fprintf(w, "return u\n")
	fmt.Fprintf(w, "}\n\n")

	fmt.Fprintf(w, "func (r *%s) Set%s(value %s) {\n", typename, c.name, c.typ)
	fmt.Fprintf(w, "r.Update().Set%s(value).Commit()\n", c.name)
	fmt.Fprintf(w, "}\n\n")
}

// encodeExpr is the expression placing the new value's masked bits at the
// field's register position. Not used for bool fields.
func (c fieldCodec) encodeExpr() string {
	if c.width > 32 {
		if c.offset == 0 {
			return fmt.Sprintf("uint32(value&%s)", c.maskLit())
		}
		return fmt.Sprintf("uint32(value&%s)<<%d", c.maskLit(), c.offset)
	}
	if c.offset == 0 {
		return fmt.Sprintf("uint32(value)&%s", c.maskLit())
	}
	return fmt.Sprintf("(uint32(value)&%s)<<%d", c.maskLit(), c.offset)
}
