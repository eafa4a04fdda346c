package model

// RuleStats are the per-rule counters the public API exposes via
// GetRuleStats (spec.md 6).
type RuleStats struct {
	CauseCount   int
	EffectCount  int
	LoopsRun     uint64
	TriggerCount uint64
	SnoozeCount  uint64
}

// Rule couples a conjunction of causes to an ordered sequence of effects
// under a unique name (spec.md 3). Neither the config parser nor
// engine.RuleBuilder sets Document: the builder keeps its own causes and
// effects and renders a document only inside BuildAndLoadRule, so on
// rules they produce Document is nil.
type Rule struct {
	Name     string
	Causes   []*Cause
	Effects  []*Effect
	Document Document
	Stats    RuleStats
}

// NewRule constructs an empty, unattached rule.
func NewRule(name string) *Rule {
	return &Rule{Name: name}
}

// FirstCause returns the rule's first cause, or nil if none has been
// attached yet. Effect Init hooks that want to report "triggered by"
// (e.g. the print effect) take this instead of the full cause list, since
// Rule no longer links causes as a C-style linked list.
func (r *Rule) FirstCause() *Cause {
	if len(r.Causes) == 0 {
		return nil
	}
	return r.Causes[0]
}

// Teardown tears down every cause and effect in reverse creation order
// (spec.md invariant 5) and forces a shared-data sweep on each cause.
func (r *Rule) Teardown() {
	for i := len(r.Effects) - 1; i >= 0; i-- {
		eff := r.Effects[i]
		if eff.Funcs.Teardown != nil {
			eff.Funcs.Teardown(eff)
		}
	}
	for i := len(r.Causes) - 1; i >= 0; i-- {
		cse := r.Causes[i]
		cse.Shared.Sweep(true)
		if cse.Funcs.Teardown != nil {
			cse.Funcs.Teardown(cse)
		}
	}
}
