package model

// EffectFuncs is the vtable every effect plugin supplies. Execute returns
// nil on success. Returning the AlreadyHandled sentinel (via an
// *EngineError with CodeAlreadyHandled, or IsSnooze(err)) causes the
// engine to skip the remaining effects in this rule for this tick (the
// "snooze" short-circuit) and increment the rule's SnoozeCount; any other
// non-nil error aborts the tick. Init receives firstCause, the head of its
// rule's cause chain, read-only — useful for e.g. snapshotting shared data
// published by those causes (spec.md 4.3).
type EffectFuncs struct {
	Init     func(eff *Effect, args Document, firstCause *Cause) error
	Execute  func(eff *Effect) error
	Teardown func(eff *Effect)
}

// Effect is a named action holding a plugin vtable and per-instance state,
// chained per rule in insertion order (spec.md 3).
type Effect struct {
	Name    string
	BuiltIn bool
	Funcs   EffectFuncs
	State   interface{}
}

// NewEffect constructs a bare Effect bound to funcs, ready for Init.
func NewEffect(name string, funcs EffectFuncs, builtIn bool) *Effect {
	return &Effect{Name: name, BuiltIn: builtIn, Funcs: funcs}
}
