package generator

import (
	"golang.org/x/exp/slices"

	"omibyte.io/mmapgen/svd"
)

// Every register occupies one 4-byte, 32-bit-aligned slot in the layout.
const registerSlotSize = 4

type slotKind int

const (
	slotRegister slotKind = iota
	slotPadding
)

// layoutSlot is one entry of a peripheral's memory layout: either a named
// register or a run of padding bytes.
type layoutSlot struct {
	kind     slotKind
	offset   uint32
	size     uint32
	register svd.RegisterElement // set for slotRegister
	padIndex int                 // set for slotPadding
}

// layoutPlan is the exact byte layout of a peripheral's register block:
// slots in ascending address order covering offset 0 through the end of the
// last register, with no gaps and no overlaps.
type layoutPlan struct {
	slots   []layoutSlot
	size    uint32
	dropped []svd.RegisterElement
}

// planLayout sorts registers by ascending address offset and walks them with
// a byte cursor, inserting exactly the padding needed to keep every register
// at its declared offset. A register whose offset lies before the cursor
// overlaps an earlier register and is dropped from the plan, not fixed.
func planLayout(registers []svd.RegisterElement) layoutPlan {
	sorted := slices.Clone(registers)
	slices.SortStableFunc(sorted, func(a, b svd.RegisterElement) bool {
		return a.AddressOffset < b.AddressOffset
	})

	var plan layoutPlan
	cursor := uint32(0)
	padNum := 0
	for _, reg := range sorted {
		offset := uint32(reg.AddressOffset)
		if offset < cursor {
			plan.dropped = append(plan.dropped, reg)
			continue
		}
		if offset > cursor {
			plan.slots = append(plan.slots, layoutSlot{
				kind:     slotPadding,
				offset:   cursor,
				size:     offset - cursor,
				padIndex: padNum,
			})
			padNum++
		}
		plan.slots = append(plan.slots, layoutSlot{
			kind:     slotRegister,
			offset:   offset,
			size:     registerSlotSize,
			register: reg,
		})
		cursor = offset + registerSlotSize
	}
	plan.size = cursor
	return plan
}
