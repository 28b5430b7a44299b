package vm

// Captures is the fixed-capacity capture store described in spec.md §3
// "Capture store": a vector of (pointer-into-text, length, id) triples.
// Slot 0 is a sentinel holding the full input (spec.md invariant I4); it is
// never mutated once a search begins.
//
// The capacity-plus-overflow-sentinel shape here is styled after the
// teacher's nfa/slot_table.go SlotTable (explicit capacity, explicit "unset"
// behavior at the boundary) even though the reference capture store has no
// per-state dimension — see DESIGN.md [CAPTURES].
type Captures struct {
	ptr []int // byte offset into the matched text, per slot
	ln  []int // captured length, per slot
	id  []int // capture id, per slot
	n   int   // number of slots in use (Catch.index)
	idx int   // next id to assign within the current outer-scan attempt (Catch.idx)

	max int // spec.md §5 MAX_CATCHS
}

// NewCaptures allocates a capture store with room for max slots (slot 0
// included).
func NewCaptures(max int) *Captures {
	return &Captures{
		ptr: make([]int, max),
		ln:  make([]int, max),
		id:  make([]int, max),
		max: max,
	}
}

// Reset reinstalls slot 0 as the sentinel for a fresh match call (len(text)
// bytes starting at offset 0) and clears the slot count to 1, per spec.md
// §4.2 step 1 and the "Lifecycle" paragraph in §3.
func (c *Captures) Reset(textLen int) {
	c.ptr[0] = 0
	c.ln[0] = textLen
	c.id[0] = 0
	c.n = 1
}

// BeginAttempt resets the per-attempt id counter and returns the slot count
// to restore to on failure (oCindex in the reference), per spec.md §4.2 step
// 4's per-start-position bookkeeping.
func (c *Captures) BeginAttempt() (savedCount int) {
	c.idx = 1
	return c.n
}

// RestoreCount rewinds the slot count to n, discarding any captures opened
// during a failed attempt (spec.md invariant I5).
func (c *Captures) RestoreCount(n int) {
	c.n = n
}

// Count returns the number of slots currently in use (including slot 0).
func (c *Captures) Count() int {
	return c.n
}

// IDCounter returns the current per-attempt id counter.
func (c *Captures) IDCounter() int {
	return c.idx
}

// SetIDCounter restores the per-attempt id counter, used at choice points
// (spec.md §4.2.3's alternation walker) to undo ids assigned by a failed
// branch.
func (c *Captures) SetIDCounter(v int) {
	c.idx = v
}

// Open allocates the next capture slot at byte offset pos, assigning it the
// next id in this attempt. Returns the slot index, or Overflow() if the
// store is full — overflow is silently dropped per spec.md §5/§7
// E-RUNTIME-CAPSLIMIT (non-fatal).
func (c *Captures) Open(pos int) int {
	if c.n >= c.max {
		return c.max
	}
	idx := c.n
	c.n++
	c.ptr[idx] = pos
	c.id[idx] = c.idx
	c.idx++
	return idx
}

// Close records the captured length for slot index once the hook's body has
// matched ending at pos. An index at or past capacity (Open's overflow
// sentinel) is ignored.
func (c *Captures) Close(index, pos int) {
	if index < c.max {
		c.ln[index] = pos - c.ptr[index]
	}
}

// Overflow returns the sentinel index Open() returns once the store is full.
func (c *Captures) Overflow() int {
	return c.max
}

// LastID returns the most recently opened slot carrying id, scanning
// backward from the newest slot (spec.md §3 "lastIdCatch"), or Overflow()
// if no such slot exists (spec.md invariant I6 — a back-reference to an
// id with no captured slot yet must fail).
func (c *Captures) LastID(id int) int {
	for i := c.n - 1; i > 0; i-- {
		if c.id[i] == id {
			return i
		}
	}
	return c.max
}

// Start returns the byte offset of slot i's capture, or -1 if i is out of
// range (gpsCatch's null sentinel).
func (c *Captures) Start(i int) int {
	if i > 0 && i < c.n {
		return c.ptr[i]
	}
	return -1
}

// Len returns the byte length of slot i's capture, or 0 if i is out of range
// (lenCatch).
func (c *Captures) Len(i int) int {
	if i > 0 && i < c.n {
		return c.ln[i]
	}
	return 0
}

// ID returns the capture id assigned to slot i.
func (c *Captures) ID(i int) int {
	return c.id[i]
}

// SentinelStart returns slot 0's start offset: 0, always — the whole input
// passed to Reset.
func (c *Captures) SentinelStart() int {
	return c.ptr[0]
}

// SentinelEnd returns the offset one past slot 0's span, i.e. len(text) as
// passed to Reset.
func (c *Captures) SentinelEnd() int {
	return c.ptr[0] + c.ln[0]
}

// Total returns the number of captures from the last match (totCatch).
func (c *Captures) Total() int {
	return c.n - 1
}
