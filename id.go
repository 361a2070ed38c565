package ui

import "hash/fnv"

// ID uniquely identifies a widget within one frame. Ids are positional:
// identity is determined by call order, which requires callers to keep
// call order stable across frames (spec.md §3).
type ID uint64

// MakeID returns the next positional id (++gen), the core mechanism
// spec.md §3 describes. Widgets that don't need a stable identity across
// reorderable loops call this directly.
func (ctx *Context) MakeID() ID {
	ctx.gen++
	return ID(ctx.gen)
}

// GetID layers a stable, label-derived id over the positional counter, per
// spec.md §9's suggested push_id/pop_id stacking: combines the current
// parent id (top of idStack), a label hash, and the positional counter so
// the same label in a loop still yields distinct, stable-enough ids.
func (ctx *Context) GetID(label string) ID {
	ctx.gen++

	var parentID ID
	if len(ctx.idStack) > 0 {
		parentID = ctx.idStack[len(ctx.idStack)-1]
	}

	h := fnv.New64a()
	h.Write([]byte(label))
	labelHash := h.Sum64()

	return ID(uint64(parentID)<<32 | ctx.gen<<16 | labelHash&0xFFFF)
}

// GetIDFromInt is GetID's sibling for integer-keyed items (list rows,
// array indices).
func (ctx *Context) GetIDFromInt(n int) ID {
	ctx.gen++

	var parentID ID
	if len(ctx.idStack) > 0 {
		parentID = ctx.idStack[len(ctx.idStack)-1]
	}

	return ID(uint64(parentID)<<32 | ctx.gen<<16 | uint64(n)&0xFFFF)
}

// PushID pushes a label-derived id onto the stack; subsequent GetID calls
// are scoped under it.
func (ctx *Context) PushID(label string) {
	ctx.idStack = append(ctx.idStack, ctx.GetID(label))
}

// PushIDInt is PushID's integer-keyed sibling.
func (ctx *Context) PushIDInt(n int) {
	ctx.idStack = append(ctx.idStack, ctx.GetIDFromInt(n))
}

// PopID removes the last id from the stack.
func (ctx *Context) PopID() {
	if len(ctx.idStack) > 0 {
		ctx.idStack = ctx.idStack[:len(ctx.idStack)-1]
	}
}

// CurrentID returns the current parent id (top of stack).
func (ctx *Context) CurrentID() ID {
	if len(ctx.idStack) > 0 {
		return ctx.idStack[len(ctx.idStack)-1]
	}
	return 0
}
