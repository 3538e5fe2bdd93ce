package vm

// StringRef is an opaque, non-owning handle to a string object living on
// a Heap. It stays valid for the Heap's entire lifetime — unlike a raw
// pointer into a growable backing store, a slice index never moves when
// the Heap allocates more strings. spec.md §9 calls out exactly this
// failure mode (a Heap.manage_str pointer invalidated by later growth) as
// the pattern to avoid; StringRef is the fix.
type StringRef int

// Heap owns every dynamically-allocated object created during one
// Interpret call. Strings may be interned: the compiler interns every
// string literal so equal literals share one handle, and the VM interns
// concatenation results the same way, so Value equality never needs to
// consult the Heap — two StringRef handles are equal iff they name equal
// strings (see spec.md §9 "Open questions").
type Heap struct {
	strings []string
	intern  map[string]StringRef
}

// NewHeap creates an empty Heap.
func NewHeap() *Heap {
	return &Heap{intern: make(map[string]StringRef)}
}

// AllocString takes ownership of s and returns a fresh, non-interned
// handle. Two AllocString calls with equal content return distinct refs.
func (h *Heap) AllocString(s string) StringRef {
	h.strings = append(h.strings, s)
	return StringRef(len(h.strings) - 1)
}

// InternString returns the existing handle for s if one was already
// interned, or allocates and interns a new one.
func (h *Heap) InternString(s string) StringRef {
	if ref, ok := h.intern[s]; ok {
		return ref
	}
	ref := h.AllocString(s)
	h.intern[s] = ref
	return ref
}

// String resolves a handle to its backing text.
func (h *Heap) String(ref StringRef) string {
	return h.strings[ref]
}

// Clear releases every allocation. Called once at the end of Interpret.
func (h *Heap) Clear() {
	h.strings = nil
	h.intern = make(map[string]StringRef)
}
