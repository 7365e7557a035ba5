// Package generator turns a CMSIS-SVD device model into Go source providing
// type-safe, single-access register and bitfield accessors.
package generator

import (
	"fmt"
	"io"
	"strings"

	"golang.org/x/exp/slices"
	"gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/graph/multi"
	"gonum.org/v1/gonum/graph/topo"

	"omibyte.io/mmapgen/svd"
)

// Generator produces the declarations for one device. All state is scoped to
// a single generation run; construct a fresh Generator per device.
type Generator struct {
	device    svd.DeviceElement
	cfg       Config
	warnings  []string
	defined   map[string]bool   // namespace names already taken this run
	typeNames map[string]string // peripheral name -> generated layout type
}

func New(device svd.DeviceElement, cfg Config) *Generator {
	return &Generator{
		device:    device,
		cfg:       cfg,
		defined:   map[string]bool{},
		typeNames: map[string]string{},
	}
}

// Warnings returns the tolerated anomalies recorded by the last Generate
// call, such as registers dropped from a layout.
func (g *Generator) Warnings() []string {
	return g.warnings
}

func (g *Generator) warnf(format string, args ...any) {
	g.warnings = append(g.warnings, fmt.Sprintf(format, args...))
}

// derivationGroups maps each base peripheral name to the sorted names of the
// peripherals that reuse its register layout.
func (g *Generator) derivationGroups() map[string][]string {
	groups := map[string][]string{}
	for _, p := range g.device.Peripherals.Elements {
		if len(p.DerivedFrom) > 0 {
			groups[p.DerivedFrom] = append(groups[p.DerivedFrom], p.Name)
		}
	}
	for _, names := range groups {
		slices.Sort(names)
	}
	return groups
}

// orderPeripherals returns peripheral indices with every derivation base
// ahead of its aliases. Derivation must be one level deep; a chain or cycle
// aborts generation.
func (g *Generator) orderPeripherals() ([]int, error) {
	periphs := g.device.Peripherals.Elements
	dg := multi.NewDirectedGraph()
	nodes := make([]graph.Node, len(periphs))
	byID := make(map[int64]int, len(periphs))
	for i := range periphs {
		n := dg.NewNode()
		dg.AddNode(n)
		nodes[i] = n
		byID[n.ID()] = i
	}

	for i, p := range periphs {
		if len(p.DerivedFrom) == 0 {
			continue
		}
		j, ok := g.device.Peripherals.Find(p.DerivedFrom)
		if !ok {
			g.warnf("%s: derived from unknown peripheral %s", p.Name, p.DerivedFrom)
			continue
		}
		if len(periphs[j].DerivedFrom) > 0 {
			return nil, fmt.Errorf("%s -> %s: %w", p.Name, p.DerivedFrom, ErrDerivedChain)
		}
		dg.SetLine(dg.NewLine(nodes[j], nodes[i]))
	}

	sorted, err := topo.SortStabilized(dg, nil)
	if err != nil {
		return nil, fmt.Errorf("peripheral derivation is cyclic: %v", err)
	}
	order := make([]int, 0, len(sorted))
	for _, n := range sorted {
		order = append(order, byID[n.ID()])
	}
	return order, nil
}

// Generate writes the complete set of generated declarations for the device
// as one formatted Go source stream.
func (g *Generator) Generate(w io.Writer) error {
	g.warnings = nil
	order, err := g.orderPeripherals()
	if err != nil {
		return err
	}
	groups := g.derivationGroups()

	var body strings.Builder
	for _, i := range order {
		periph := g.device.Peripherals.Elements[i]
		if len(periph.DerivedFrom) > 0 {
			g.genAlias(periph, &body)
			continue
		}
		if err := g.genPeripheral(periph, groups[periph.Name], &body); err != nil {
			return err
		}
	}
	return g.emit(&body, w)
}

// genPeripheral emits one peripheral's layout structure, its instance
// binding and the accessor code for each register in the layout plan.
// Alias bindings are emitted separately, at their own topological position.
func (g *Generator) genPeripheral(periph svd.PeripheralElement, aliases []string, w *strings.Builder) error {
	// Namespace name: the group name when this peripheral has dependents and
	// the group name is still free, else the peripheral's own name.
	nsName := periph.Name
	if len(aliases) > 0 && len(periph.Group) > 0 && !g.defined[periph.Group] {
		nsName = periph.Group
	}
	g.defined[nsName] = true
	typeName := pascalCase(nsName)
	g.typeNames[periph.Name] = typeName

	plan := planLayout(periph.Registers.RegisterElements)
	for _, reg := range plan.dropped {
		g.warnf("%s: register %s at %#x overlaps an earlier register, dropped from layout",
			periph.Name, reg.Name, uint64(reg.AddressOffset))
	}

	// Layout structure. Declaration order is ascending address order; the
	// hardware leaves no reordering freedom.
	if len(periph.Description) > 0 {
		fmt.Fprintf(w, "// %s %s\n", typeName, periph.Description)
	}
	fmt.Fprintf(w, "type %s struct {\n", typeName)
	for _, slot := range plan.slots {
		switch slot.kind {
		case slotPadding:
			fmt.Fprintf(w, "_ [%d]byte\n", slot.size)
		case slotRegister:
			regName := pascalCase(slot.register.Name)
			fmt.Fprintf(w, "%s %s\n", regName, typeName+regName)
		}
	}
	fmt.Fprintf(w, "}\n\n")

	fmt.Fprintf(w, "var (\n")
	g.genInstance(periph.Name, uint64(periph.BaseAddress), typeName, w)
	fmt.Fprintf(w, ")\n\n")

	for _, slot := range plan.slots {
		if slot.kind != slotRegister {
			continue
		}
		if err := g.genRegister(typeName, periph.Name, slot.register, w); err != nil {
			return err
		}
	}
	return nil
}

// genAlias binds a derived peripheral to its base's layout type at the
// alias's own base address. The topological generation order guarantees the
// base type is declared before any alias references it. An alias whose base
// is unknown was already warned about and produces nothing.
func (g *Generator) genAlias(periph svd.PeripheralElement, w *strings.Builder) {
	typeName, ok := g.typeNames[periph.DerivedFrom]
	if !ok {
		return
	}
	fmt.Fprintf(w, "var (\n")
	g.genInstance(periph.Name, uint64(periph.BaseAddress), typeName, w)
	fmt.Fprintf(w, ")\n\n")
}

// genInstance binds one peripheral instance to its hardware base address.
// The link symbol in the comment is the contract the linkmem report and any
// external linker script rely on.
func (g *Generator) genInstance(name string, base uint64, typeName string, w *strings.Builder) {
	fmt.Fprintf(w, "// %s is bound to link symbol %s.\n", constantCase(name), g.linkSymbol(name))
	fmt.Fprintf(w, "%s = (*%s)(unsafe.Pointer(uintptr(%#x)))\n", constantCase(name), typeName, base)
}

func (g *Generator) linkSymbol(periphName string) string {
	return snakeCase(g.cfg.LinkPrefix + g.device.Name + "_" + periphName)
}

// LinkMem writes the link report: one "symbol = 0xXXXXXXXX" line per
// peripheral instance in input order, for consumption by external linker
// script generation.
func (g *Generator) LinkMem(w io.Writer) error {
	for _, periph := range g.device.Peripherals.Elements {
		_, err := fmt.Fprintf(w, "%s = 0x%08x\n", g.linkSymbol(periph.Name), uint64(periph.BaseAddress))
		if err != nil {
			return err
		}
	}
	return nil
}
