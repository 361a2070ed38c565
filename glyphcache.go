package ui

// GlyphID is the shaper-assigned glyph index within a font (not a Unicode
// codepoint).
type GlyphID uint32

// GlyphKey identifies a cached glyph slot: which font, which glyph.
type GlyphKey struct {
	Font FontHandle
	ID   GlyphID
}

// glyphEntry mirrors original_source/biv/src/glyph_cache.h's GlyphEntry:
// entry 0 is the LRU sentinel, lruNext/lruPrev form a circular
// doubly-linked ring, and hashChainNext doubles as the freelist link
// for entries that have never been resident. An evicted entry is not
// put back on the freelist: eviction unlinks it from the LRU ring and
// its hash chain and reuses it directly for the new key.
type glyphEntry struct {
	key      GlyphKey
	valid    bool
	tileX    int32
	tileY    int32
	uploaded bool
	bitmapTopLeft Vec2
	bitmapSize    Vec2

	lruPrev uint32
	lruNext uint32

	hashChainNext uint32 // hash chain link while resident, freelist link while free
}

// GlyphCacheStats reports cumulative cache activity.
type GlyphCacheStats struct {
	Hits      uint64
	Misses    uint64
	Evictions uint64
}

// GlyphCache is a bounded, hash-chained LRU atlas slot allocator. It does
// not own pixel data; it owns the bookkeeping that maps (font, glyph id)
// to a tile position in a square atlas of entryCapacity slots, plus an
// "uploaded" queue the backend drains once per frame.
type GlyphCache struct {
	slotSize int32
	gridX    int32
	gridY    int32
	hashMask uint32

	entries   []glyphEntry
	hashTable []uint32 // chain heads, index = hash & hashMask; 0 = empty (entry 0 is the sentinel, never a real entry)
	freeHead  uint32   // 0 = none

	toUpload []GlyphKey

	stats GlyphCacheStats
}

const glyphCacheInvalid uint32 = 0

// NewGlyphCache builds a cache over a gridX*gridY atlas of slotSize tiles.
// hash_count is rounded up to the next power of two at least as large as
// entry_capacity, per spec.md's data model.
func NewGlyphCache(slotSize int32, gridX, gridY int32) *GlyphCache {
	entryCapacity := int(gridX * gridY)
	hashCount := nextPow2(entryCapacity)

	c := &GlyphCache{
		slotSize:  slotSize,
		gridX:     gridX,
		gridY:     gridY,
		hashMask:  uint32(hashCount - 1),
		entries:   make([]glyphEntry, entryCapacity+1), // +1 for the sentinel at index 0
		hashTable: make([]uint32, hashCount),
	}

	// Sentinel anchors the LRU ring to itself.
	c.entries[0].lruPrev = 0
	c.entries[0].lruNext = 0

	// Build the initial freelist out of entries [1, entryCapacity].
	for i := entryCapacity; i >= 1; i-- {
		c.entries[i].hashChainNext = c.freeHead
		c.freeHead = uint32(i)
	}

	return c
}

func nextPow2(n int) int {
	if n <= 1 {
		return 1
	}
	p := 1
	for p < n {
		p <<= 1
	}
	return p
}

func (c *GlyphCache) hash(key GlyphKey) uint32 {
	h := uint64(key.Font)*31 + uint64(key.ID)
	return uint32(h) & c.hashMask
}

func (c *GlyphCache) ringRemove(i uint32) {
	e := &c.entries[i]
	c.entries[e.lruPrev].lruNext = e.lruNext
	c.entries[e.lruNext].lruPrev = e.lruPrev
}

func (c *GlyphCache) ringInsertMRU(i uint32) {
	sentinel := &c.entries[0]
	mru := sentinel.lruNext
	c.entries[i].lruPrev = 0
	c.entries[i].lruNext = mru
	c.entries[mru].lruPrev = i
	sentinel.lruNext = i
}

func (c *GlyphCache) chainUnlink(key GlyphKey, i uint32) {
	h := c.hash(key)
	cur := c.hashTable[h]
	if cur == i {
		c.hashTable[h] = c.entries[i].hashChainNext
		return
	}
	for cur != glyphCacheInvalid {
		next := c.entries[cur].hashChainNext
		if next == i {
			c.entries[cur].hashChainNext = c.entries[i].hashChainNext
			return
		}
		cur = next
	}
}

// GlyphSlot is the public resident-glyph view returned by Request.
type GlyphSlot struct {
	TileX, TileY  int32
	Uploaded      bool
	BitmapTopLeft Vec2
	BitmapSize    Vec2
}

// Request implements get_or_create: probes the hash chain, moves a hit to
// MRU, or allocates a fresh slot (popping the freelist, or evicting the
// LRU tail) and queues it for upload. Returns (slot, resident) where
// resident mirrors the entry's "uploaded" bit — Painter only draws when
// resident is true, matching §4.2's get_or_create/request contract.
func (c *GlyphCache) Request(key GlyphKey) (GlyphSlot, bool) {
	h := c.hash(key)
	for i := c.hashTable[h]; i != glyphCacheInvalid; i = c.entries[i].hashChainNext {
		if c.entries[i].key == key {
			c.ringRemove(i)
			c.ringInsertMRU(i)
			c.stats.Hits++
			e := &c.entries[i]
			return GlyphSlot{e.tileX, e.tileY, e.uploaded, e.bitmapTopLeft, e.bitmapSize}, e.uploaded
		}
	}

	c.stats.Misses++

	var idx uint32
	if c.freeHead != glyphCacheInvalid {
		idx = c.freeHead
		c.freeHead = c.entries[idx].hashChainNext
	} else {
		// Evict the LRU tail (sentinel.lruPrev).
		tail := c.entries[0].lruPrev
		if tail == 0 {
			// No entries at all to evict and no freelist: the cache has
			// no capacity. Defer.
			return GlyphSlot{}, false
		}
		c.ringRemove(tail)
		c.chainUnlink(c.entries[tail].key, tail)
		c.stats.Evictions++
		idx = tail
	}

	tileX, tileY := c.tileForSlot(idx)
	c.entries[idx] = glyphEntry{
		key:      key,
		valid:    true,
		tileX:    tileX,
		tileY:    tileY,
		uploaded: false,
	}
	c.ringInsertMRU(idx)

	c.entries[idx].hashChainNext = c.hashTable[h]
	c.hashTable[h] = idx

	c.toUpload = append(c.toUpload, key)
	return GlyphSlot{tileX, tileY, false, Vec2{}, Vec2{}}, false
}

// tileForSlot derives a tile coordinate from an entry index (index - 1
// because entry 0 is the sentinel and never holds a tile).
func (c *GlyphCache) tileForSlot(idx uint32) (int32, int32) {
	n := int32(idx) - 1
	return n % c.gridX, n / c.gridX
}

// Peek looks up a resident entry's slot without touching LRU order,
// for the upload loop to recover tile coordinates assigned by an
// earlier Request call in the same frame.
func (c *GlyphCache) Peek(key GlyphKey) (GlyphSlot, bool) {
	h := c.hash(key)
	for i := c.hashTable[h]; i != glyphCacheInvalid; i = c.entries[i].hashChainNext {
		if c.entries[i].key == key {
			e := &c.entries[i]
			return GlyphSlot{e.tileX, e.tileY, e.uploaded, e.bitmapTopLeft, e.bitmapSize}, true
		}
	}
	return GlyphSlot{}, false
}

// PendingUploads returns and clears the queue of glyphs the backend must
// rasterize and upload this frame.
func (c *GlyphCache) PendingUploads() []GlyphKey {
	pending := c.toUpload
	c.toUpload = nil
	return pending
}

// MarkUploaded records that the backend rasterized and uploaded key,
// storing the resulting bitmap metrics. Zero-area glyphs are still marked
// uploaded so they stop being re-queued.
func (c *GlyphCache) MarkUploaded(key GlyphKey, topLeft, size Vec2) {
	h := c.hash(key)
	for i := c.hashTable[h]; i != glyphCacheInvalid; i = c.entries[i].hashChainNext {
		if c.entries[i].key == key {
			c.entries[i].uploaded = true
			c.entries[i].bitmapTopLeft = topLeft
			c.entries[i].bitmapSize = size
			return
		}
	}
}

// SlotSize returns the atlas tile size in pixels.
func (c *GlyphCache) SlotSize() int32 { return c.slotSize }

// AtlasSize returns the full atlas resolution in pixels.
func (c *GlyphCache) AtlasSize() Vec2 {
	return Vec2{X: float32(c.gridX * c.slotSize), Y: float32(c.gridY * c.slotSize)}
}

// Stats returns cumulative hit/miss/eviction counters.
func (c *GlyphCache) Stats() GlyphCacheStats { return c.stats }
