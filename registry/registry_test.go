package registry

import (
	"testing"

	"github.com/oracle/adaptived/model"
)

func newTestRegistry() *Registry {
	r := New()
	r.RegisterBuiltinCause("always", func(name string) *model.Cause {
		return model.NewCause(name, model.CauseFuncs{}, true)
	})
	r.RegisterBuiltinEffect("print", func(name string) *model.Effect {
		return model.NewEffect(name, model.EffectFuncs{}, true)
	})
	return r
}

func TestRegistryBuiltinDuplicatePanics(t *testing.T) {
	r := newTestRegistry()
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic registering a duplicate built-in cause name")
		}
	}()
	r.RegisterBuiltinCause("always", func(name string) *model.Cause { return nil })
}

func TestRegistryRegisterCauseRejectsBuiltinName(t *testing.T) {
	r := newTestRegistry()
	err := r.RegisterCause("always", func(name string) *model.Cause { return nil })
	if model.CodeOf(err) != model.CodeAlreadyExists {
		t.Fatalf("expected AlreadyExists registering over a built-in name, got %v", err)
	}
}

func TestRegistryRegisterCauseRejectsDuplicate(t *testing.T) {
	r := newTestRegistry()
	factory := func(name string) *model.Cause { return model.NewCause(name, model.CauseFuncs{}, false) }

	if err := r.RegisterCause("custom", factory); err != nil {
		t.Fatalf("unexpected error on first registration: %v", err)
	}
	if err := r.RegisterCause("custom", factory); model.CodeOf(err) != model.CodeAlreadyExists {
		t.Fatalf("expected AlreadyExists on duplicate registration, got %v", err)
	}
}

func TestRegistryRegisterRejectsInvalidArgument(t *testing.T) {
	r := newTestRegistry()
	if err := r.RegisterCause("", func(name string) *model.Cause { return nil }); model.CodeOf(err) != model.CodeInvalidArgument {
		t.Fatalf("expected InvalidArgument for an empty name, got %v", err)
	}
	if err := r.RegisterCause("x", nil); model.CodeOf(err) != model.CodeInvalidArgument {
		t.Fatalf("expected InvalidArgument for a nil factory, got %v", err)
	}
}

func TestRegistryLookupCausePrefersBuiltin(t *testing.T) {
	r := newTestRegistry()
	cse, builtIn, ok := r.LookupCause("always")
	if !ok || !builtIn || cse == nil {
		t.Fatalf("expected to resolve the built-in always cause, got cse=%v builtIn=%v ok=%v", cse, builtIn, ok)
	}

	if _, _, ok := r.LookupCause("nonexistent"); ok {
		t.Fatal("expected lookup of an unknown cause name to fail")
	}
}

func TestRegistryLookupEffectFindsRegistered(t *testing.T) {
	r := newTestRegistry()
	factory := func(name string) *model.Effect { return model.NewEffect(name, model.EffectFuncs{}, false) }
	if err := r.RegisterEffect("custom", factory); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	eff, builtIn, ok := r.LookupEffect("custom")
	if !ok || builtIn || eff == nil {
		t.Fatalf("expected to resolve the registered custom effect, got eff=%v builtIn=%v ok=%v", eff, builtIn, ok)
	}
}

func TestRegistryIsBuiltinName(t *testing.T) {
	r := newTestRegistry()
	if !r.IsBuiltinName("always") || !r.IsBuiltinName("print") {
		t.Fatal("expected always and print to be reserved built-in names")
	}
	if r.IsBuiltinName("custom") {
		t.Fatal("did not expect an unregistered name to be reserved")
	}
}
