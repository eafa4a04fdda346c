package engine

import (
	"path/filepath"
	"testing"

	"github.com/oracle/adaptived/cgroupfs"
	"github.com/oracle/adaptived/model"
)

func TestLoadConfigAndRunUntilMaxLoops(t *testing.T) {
	const doc = `{
		"rules": [
			{
				"name": "r1",
				"causes": [{"name": "always", "args": {}}],
				"effects": [{"name": "print", "args": {"file": "stdout", "message": "x"}}]
			}
		]
	}`

	ctx := New("")
	if err := ctx.SetAttr(AttrSkipSleep, 1); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := ctx.SetAttr(AttrMaxLoops, 3); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := ctx.LoadConfig([]byte(doc)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	err := ctx.Run()
	if model.CodeOf(err) != model.CodeTimeout {
		t.Fatalf("expected Timeout once max_loops is reached, got %v", err)
	}

	stats, err := ctx.GetRuleStats("r1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if stats.LoopsRun != 3 || stats.TriggerCount != 3 {
		t.Fatalf("unexpected stats: %+v", stats)
	}
}

func TestRuleCountAttr(t *testing.T) {
	ctx := New("")
	count, err := ctx.GetAttr(AttrRuleCount)
	if err != nil || count != 0 {
		t.Fatalf("expected 0 rules initially, got %d, %v", count, err)
	}

	if err := ctx.BuildAndLoadRule(
		NewRuleBuilder("r1").
			AddCause(NewCauseBuilder("always")).
			AddEffect(NewEffectBuilder("print").AddStringArg("file", "stdout")),
	); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	count, err = ctx.GetAttr(AttrRuleCount)
	if err != nil || count != 1 {
		t.Fatalf("expected 1 rule after loading, got %d, %v", count, err)
	}
}

func TestLoadRuleRejectsDuplicateName(t *testing.T) {
	ctx := New("")
	build := func() error {
		return ctx.BuildAndLoadRule(
			NewRuleBuilder("dup").
				AddCause(NewCauseBuilder("always")).
				AddEffect(NewEffectBuilder("print").AddStringArg("file", "stdout")),
		)
	}

	if err := build(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := build(); model.CodeOf(err) != model.CodeAlreadyExists {
		t.Fatalf("expected AlreadyExists loading a duplicate rule name, got %v", err)
	}
}

func TestUnloadRule(t *testing.T) {
	ctx := New("")
	if err := ctx.BuildAndLoadRule(
		NewRuleBuilder("r1").
			AddCause(NewCauseBuilder("always")).
			AddEffect(NewEffectBuilder("print").AddStringArg("file", "stdout")),
	); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if err := ctx.UnloadRule("r1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := ctx.UnloadRule("r1"); model.CodeOf(err) != model.CodeNotFound {
		t.Fatalf("expected NotFound unloading an already-removed rule, got %v", err)
	}
}

func TestSnoozeShortCircuitsRemainingEffects(t *testing.T) {
	path := filepath.Join(t.TempDir(), "memory.high")

	ctx := New("")
	_ = ctx.SetAttr(AttrSkipSleep, 1)
	_ = ctx.SetAttr(AttrMaxLoops, 2)

	if err := ctx.BuildAndLoadRule(
		NewRuleBuilder("r1").
			AddCause(NewCauseBuilder("always")).
			AddEffect(NewEffectBuilder("snooze").AddIntArg("duration", 60_000)).
			AddEffect(NewEffectBuilder("cgroup_setting").
				AddStringArg("setting", path).
				AddIntArg("value", 1)),
	); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if err := ctx.Run(); model.CodeOf(err) != model.CodeTimeout {
		t.Fatalf("unexpected error: %v", err)
	}

	stats, err := ctx.GetRuleStats("r1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if stats.TriggerCount != 2 {
		t.Fatalf("expected both ticks to trigger the cause, got %+v", stats)
	}
	if stats.SnoozeCount != 1 {
		t.Fatalf("expected the second tick to be snoozed, got %+v", stats)
	}

	if _, err := cgroupfs.GetLL(path); err != nil {
		t.Fatalf("expected the first tick's cgroup_setting write to have landed, got %v", err)
	}
}
