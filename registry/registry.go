// Package registry holds the built-in cause/effect name tables plus the
// externally registered plugin templates, mirroring the role adaptived's
// cause_names[]/effect_fns[] tables and registered_causes/registered_effects
// linked lists play in the C implementation (spec.md 4.4), and modeled
// after the factory-registration shape of the teacher's
// collector.Registry (collector/collector.go).
package registry

import (
	"sync"

	"github.com/oracle/adaptived/model"
)

// CauseFactory builds a fresh, un-Init'd Cause instance for a given name.
type CauseFactory func(name string) *model.Cause

// EffectFactory builds a fresh, un-Init'd Effect instance for a given name.
type EffectFactory func(name string) *model.Effect

// Registry holds the built-in plugin tables (populated once, at process
// start, by the causes and effects packages) and the externally
// registered plugins (populated at runtime via RegisterCause/RegisterEffect,
// e.g. from engine.Context). Every method takes the Registry's own
// RWMutex, so registration and lookup are safe to call concurrently.
type Registry struct {
	mu             sync.RWMutex
	builtinCauses  map[string]CauseFactory
	builtinEffects map[string]EffectFactory
	regCauses      map[string]CauseFactory
	regEffects     map[string]EffectFactory
}

// New returns an empty registry. Built-in plugins are added via
// RegisterBuiltinCause/RegisterBuiltinEffect, through the causes/effects
// packages' Register functions (engine.New calls both).
func New() *Registry {
	return &Registry{
		builtinCauses:  make(map[string]CauseFactory),
		builtinEffects: make(map[string]EffectFactory),
		regCauses:      make(map[string]CauseFactory),
		regEffects:     make(map[string]EffectFactory),
	}
}

// RegisterBuiltinCause adds name to the fixed built-in cause table. It is
// called once per name on each new Registry (engine.New builds a fresh
// one per context) and is not idempotent: it panics on a duplicate name,
// since that indicates a programming error in
// the built-in catalog rather than a runtime condition callers should
// handle.
func (r *Registry) RegisterBuiltinCause(name string, factory CauseFactory) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.builtinCauses[name]; exists {
		panic("registry: duplicate built-in cause name " + name)
	}
	r.builtinCauses[name] = factory
}

// RegisterBuiltinEffect adds name to the fixed built-in effect table.
func (r *Registry) RegisterBuiltinEffect(name string, factory EffectFactory) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.builtinEffects[name]; exists {
		panic("registry: duplicate built-in effect name " + name)
	}
	r.builtinEffects[name] = factory
}

// IsBuiltinName reports whether name is reserved by the built-in cause or
// effect tables (spec.md 6: "the engine ships a non-empty fixed name table
// for built-in causes and effects... any name in that table [is] reserved").
func (r *Registry) IsBuiltinName(name string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, c := r.builtinCauses[name]
	_, e := r.builtinEffects[name]
	return c || e
}

// RegisterCause validates and appends an externally supplied cause
// factory, rejecting a nil factory, an empty name, or a name that
// collides with the built-in table or an already-registered plugin
// (spec.md 4.4 point 1-2).
func (r *Registry) RegisterCause(name string, factory CauseFactory) error {
	if name == "" || factory == nil {
		return model.NewError("Registry.RegisterCause", model.CodeInvalidArgument, nil)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.builtinCauses[name]; exists {
		return model.NewError("Registry.RegisterCause", model.CodeAlreadyExists, nil)
	}
	if _, exists := r.regCauses[name]; exists {
		return model.NewError("Registry.RegisterCause", model.CodeAlreadyExists, nil)
	}

	r.regCauses[name] = factory
	return nil
}

// RegisterEffect validates and appends an externally supplied effect
// factory, under the same rules as RegisterCause.
func (r *Registry) RegisterEffect(name string, factory EffectFactory) error {
	if name == "" || factory == nil {
		return model.NewError("Registry.RegisterEffect", model.CodeInvalidArgument, nil)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.builtinEffects[name]; exists {
		return model.NewError("Registry.RegisterEffect", model.CodeAlreadyExists, nil)
	}
	if _, exists := r.regEffects[name]; exists {
		return model.NewError("Registry.RegisterEffect", model.CodeAlreadyExists, nil)
	}

	r.regEffects[name] = factory
	return nil
}

// LookupCause resolves name against the built-in table first, then the
// registered plugins, returning a fresh instance and whether it was
// found built-in (spec.md 4.5 point 2: "resolves the name (built-in
// first, then registry)").
func (r *Registry) LookupCause(name string) (cse *model.Cause, builtIn bool, ok bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if factory, exists := r.builtinCauses[name]; exists {
		return factory(name), true, true
	}
	if factory, exists := r.regCauses[name]; exists {
		return factory(name), false, true
	}
	return nil, false, false
}

// LookupEffect resolves name the same way LookupCause does.
func (r *Registry) LookupEffect(name string) (eff *model.Effect, builtIn bool, ok bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if factory, exists := r.builtinEffects[name]; exists {
		return factory(name), true, true
	}
	if factory, exists := r.regEffects[name]; exists {
		return factory(name), false, true
	}
	return nil, false, false
}
