package model

// CauseFuncs is the vtable every cause plugin supplies: Init parses the
// cause-specific argument subtree and stashes any parsed state on the
// Cause; Evaluate runs once per tick and reports whether the cause fired;
// Teardown releases resources and must tolerate being called when Init
// failed partway through (spec.md 4.3).
//
// Evaluate's return convention: (fired=false, err=nil) means "did not
// fire", (fired=true, err=nil) means "fired", and a non-nil err aborts the
// current tick with that error.
type CauseFuncs struct {
	Init     func(cse *Cause, args Document, intervalMS int) error
	Evaluate func(cse *Cause, msSinceLastRun int) (fired bool, err error)
	Teardown func(cse *Cause)
}

// Cause is a named predicate holding a plugin vtable, per-instance state,
// and a shared-data bus the plugin can publish typed observations to for
// effects in the same rule to read (spec.md 3). Instances are created per
// rule; BuiltIn is false for instances copied from an externally
// registered plugin template (spec.md 4.4).
type Cause struct {
	Name    string
	BuiltIn bool
	Funcs   CauseFuncs
	State   interface{}
	Shared  SharedDataBus
}

// NewCause constructs a bare Cause bound to funcs, ready for Init.
func NewCause(name string, funcs CauseFuncs, builtIn bool) *Cause {
	return &Cause{Name: name, BuiltIn: builtIn, Funcs: funcs}
}
