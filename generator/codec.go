package generator

import (
	"fmt"

	"omibyte.io/mmapgen/svd"
)

// accessMode is the read/write capability of a register or field.
type accessMode struct {
	read  bool
	write bool
}

var accessModes = map[string]accessMode{
	"read-only":      {read: true},
	"write-only":     {write: true},
	"read-write":     {read: true, write: true},
	"read-writeOnce": {read: true, write: true},
	"writeOnce":      {write: true},
}

func parseAccess(s, fallback string) accessMode {
	if len(s) == 0 {
		s = fallback
	}
	if mode, ok := accessModes[s]; ok {
		return mode
	}
	return accessMode{read: true, write: true}
}

// registerAccess is the register's own access mode, falling back to the
// device default.
func (g *Generator) registerAccess(reg svd.RegisterElement) accessMode {
	return parseAccess(reg.Access, g.device.DefaultAccess)
}

// effectiveAccess narrows the register access mode by the field access mode.
// A field-level access string overrides the register's.
func (g *Generator) effectiveAccess(reg svd.RegisterElement, field svd.FieldElement) accessMode {
	if len(field.Access) > 0 {
		return parseAccess(field.Access, g.device.DefaultAccess)
	}
	return g.registerAccess(reg)
}

// fieldMask is the unshifted mask for a field width, computed once at
// generation time and emitted as a literal.
func fieldMask(width uint) uint64 {
	if width >= 64 {
		return ^uint64(0)
	}
	return 1<<width - 1
}

// fieldCodec is the bit-level encode/decode plan for one field: where the
// bits live, what type carries them, and what the field is allowed to do.
type fieldCodec struct {
	name     string // PascalCase accessor name
	origName string // name as declared in the model
	offset   uint
	width    uint
	typ      string // bool, uintN, or the enumerated type name
	enumType string // non-empty for enumerated fields
	access   accessMode
	enum     svd.EnumeratedValuesElement
}

// newFieldCodec selects the field's storage type from its bit width and
// resolves its enumerated type name, if any. Widths of 0 or more than 64
// bits abort generation.
func (g *Generator) newFieldCodec(regType string, reg svd.RegisterElement, field svd.FieldElement) (fieldCodec, error) {
	c := fieldCodec{
		name:     pascalCase(field.Name),
		origName: field.Name,
		offset:   uint(field.BitOffset),
		width:    uint(field.BitWidth),
		access:   g.effectiveAccess(reg, field),
		enum:     field.EnumeratedValues,
	}

	switch w := c.width; {
	case w == 1:
		c.typ = "bool"
	case w >= 2 && w <= 8:
		c.typ = "uint8"
	case w >= 9 && w <= 16:
		c.typ = "uint16"
	case w >= 17 && w <= 32:
		c.typ = "uint32"
	case w >= 33 && w <= 64:
		c.typ = "uint64"
	default:
		return c, fmt.Errorf("%s.%s: bit width %d: %w", reg.Name, field.Name, w, ErrUnsupportedBitWidth)
	}

	if len(field.EnumeratedValues.Elements) > 0 {
		// Enumerated fields use a named variant type instead of the raw
		// integer type. The enumeration's own name wins over the field name.
		name := field.EnumeratedValues.Name
		if len(name) == 0 {
			name = field.Name
		}
		c.enumType = regType + pascalCase(name)
		c.typ = c.enumType
	}

	return c, nil
}

// maskLit is the unshifted field mask as a generation-time literal.
func (c fieldCodec) maskLit() string {
	return fmt.Sprintf("%#x", fieldMask(c.width))
}

// shiftedMaskLit is the field mask shifted into register position, truncated
// to the 32-bit storage word.
func (c fieldCodec) shiftedMaskLit() string {
	return fmt.Sprintf("%#x", uint32(fieldMask(c.width)<<c.offset))
}

// rawExpr is the expression extracting the field's raw bits from the cached
// snapshot word.
func (c fieldCodec) rawExpr() string {
	if c.width > 32 {
		// Wider-than-word fields decode through uint64 so the mask literal
		// stays representable.
		return fmt.Sprintf("uint64(%s)>>%d&%s", "g.value", c.offset, c.maskLit())
	}
	if c.offset == 0 {
		return fmt.Sprintf("g.value & %s", c.maskLit())
	}
	return fmt.Sprintf("g.value>>%d&%s", c.offset, c.maskLit())
}
