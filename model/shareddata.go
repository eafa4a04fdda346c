package model

// SharedDataKind is the type tag of a shared-data entry. Update rejects a
// replacement whose kind differs from the entry being replaced: type
// stability is a contract between a cause and the effects that read its
// published data (spec.md 4.2).
type SharedDataKind int

const (
	SharedDataCustom SharedDataKind = iota
	SharedDataString
	SharedDataCgroup
	SharedDataNameAndValue
)

// SharedDataFlags is a bitset on a shared-data entry.
type SharedDataFlags uint32

// FlagPersist marks an entry as surviving the end-of-tick sweep. It is
// only cleared by an explicit Update or by a forced sweep (Run's exit, or
// Rule.Teardown on unload and context release).
const FlagPersist SharedDataFlags = 1 << 0

// NameAndValue is the payload for SharedDataNameAndValue entries: an owned
// name paired with a cgroup Value.
type NameAndValue struct {
	Name  string
	Value Value
}

// FreeFunc is invoked on a SharedDataCustom entry's payload during a sweep.
type FreeFunc func(payload interface{})

// sharedDataEntry is one published observation in a cause's bus.
type sharedDataEntry struct {
	kind    SharedDataKind
	payload interface{}
	freeFn  FreeFunc
	flags   SharedDataFlags
}

// SharedDataBus is the per-cause, per-tick publication list consumed by
// effects in the same rule (spec.md 4.2). It is single-writer (the owning
// cause, during its own Evaluate) and single-reader (effects in the same
// rule, during the same tick) — there is no cross-rule sharing and no
// locking here; the context mutex already serializes the whole tick.
type SharedDataBus struct {
	entries []sharedDataEntry
}

// Publish appends a new entry. It fails on a nil payload, an unrecognized
// kind, a Custom kind without a free callback, or a non-Custom kind with
// one — mirroring adaptived_write_shared_data's validation (shared_data.c).
func (b *SharedDataBus) Publish(kind SharedDataKind, payload interface{}, freeFn FreeFunc, flags SharedDataFlags) error {
	if payload == nil {
		return NewError("SharedDataBus.Publish", CodeInvalidArgument, nil)
	}
	if kind < SharedDataCustom || kind > SharedDataNameAndValue {
		return NewError("SharedDataBus.Publish", CodeInvalidArgument, nil)
	}
	if kind == SharedDataCustom && freeFn == nil {
		return NewError("SharedDataBus.Publish", CodeInvalidArgument, nil)
	}
	if kind != SharedDataCustom && freeFn != nil {
		return NewError("SharedDataBus.Publish", CodeInvalidArgument, nil)
	}

	b.entries = append(b.entries, sharedDataEntry{kind: kind, payload: payload, freeFn: freeFn, flags: flags})
	return nil
}

// Count returns the current number of published entries.
func (b *SharedDataBus) Count() int {
	return len(b.entries)
}

// Read returns the kind, payload, and flags of entry index.
func (b *SharedDataBus) Read(index int) (SharedDataKind, interface{}, SharedDataFlags, error) {
	if index < 0 || index >= len(b.entries) {
		return 0, nil, 0, NewError("SharedDataBus.Read", CodeOutOfRange, nil)
	}
	e := b.entries[index]
	return e.kind, e.payload, e.flags, nil
}

// Update replaces entry index's payload and flags in place. The new kind
// must match the existing entry's kind. The previous payload is *not*
// freed here — the caller must free it (if owned) before calling Update,
// exactly as adaptived_update_shared_data documents.
func (b *SharedDataBus) Update(index int, kind SharedDataKind, payload interface{}, flags SharedDataFlags) error {
	if index < 0 || index >= len(b.entries) {
		return NewError("SharedDataBus.Update", CodeOutOfRange, nil)
	}
	if b.entries[index].kind != kind {
		return NewError("SharedDataBus.Update", CodeInvalidArgument, nil)
	}
	b.entries[index].payload = payload
	b.entries[index].flags = flags
	return nil
}

// Sweep removes non-persistent entries (or, if force is true, all entries
// regardless of flags), invoking each Custom entry's free callback.
// Built-in kinds (String/Cgroup/NameAndValue) carry Go-managed payloads
// with nothing to release explicitly; they're dropped by the slice
// rewrite below, matching the C implementation's free() calls in spirit
// (there the payload is heap memory; here it's GC-managed).
func (b *SharedDataBus) Sweep(force bool) {
	if len(b.entries) == 0 {
		return
	}

	survivors := b.entries[:0]
	for _, e := range b.entries {
		persist := e.flags&FlagPersist != 0
		doFree := force || !persist
		if !doFree {
			survivors = append(survivors, e)
			continue
		}
		if e.kind == SharedDataCustom && e.freeFn != nil {
			e.freeFn(e.payload)
		}
	}
	b.entries = survivors
}
