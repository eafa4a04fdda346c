package model

import "testing"

func TestSharedDataBusPublishValidation(t *testing.T) {
	var bus SharedDataBus

	if err := bus.Publish(SharedDataString, nil, nil, 0); err == nil {
		t.Fatal("expected error publishing nil payload")
	}
	if err := bus.Publish(SharedDataKind(99), "x", nil, 0); err == nil {
		t.Fatal("expected error publishing unknown kind")
	}
	if err := bus.Publish(SharedDataCustom, "x", nil, 0); err == nil {
		t.Fatal("expected error publishing Custom without a free callback")
	}
	if err := bus.Publish(SharedDataString, "x", func(interface{}) {}, 0); err == nil {
		t.Fatal("expected error publishing non-Custom with a free callback")
	}
	if bus.Count() != 0 {
		t.Fatalf("expected no entries to have been published, got %d", bus.Count())
	}
}

func TestSharedDataBusReadUpdate(t *testing.T) {
	var bus SharedDataBus

	if err := bus.Publish(SharedDataString, "hello", nil, 0); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	kind, payload, flags, err := bus.Read(0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if kind != SharedDataString || payload != "hello" || flags != 0 {
		t.Fatalf("unexpected entry: kind=%v payload=%v flags=%v", kind, payload, flags)
	}

	if _, _, _, err := bus.Read(1); CodeOf(err) != CodeOutOfRange {
		t.Fatalf("expected OutOfRange reading past the end, got %v", err)
	}

	if err := bus.Update(0, SharedDataCgroup, "world", 0); CodeOf(err) != CodeInvalidArgument {
		t.Fatalf("expected InvalidArgument changing kind on Update, got %v", err)
	}

	if err := bus.Update(0, SharedDataString, "world", FlagPersist); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	_, payload, flags, _ = bus.Read(0)
	if payload != "world" || flags != FlagPersist {
		t.Fatalf("update did not take effect: payload=%v flags=%v", payload, flags)
	}
}

func TestSharedDataBusSweep(t *testing.T) {
	var bus SharedDataBus
	var freed []string

	freeFn := func(p interface{}) { freed = append(freed, p.(string)) }

	_ = bus.Publish(SharedDataCustom, "ephemeral", freeFn, 0)
	_ = bus.Publish(SharedDataCustom, "persistent", freeFn, FlagPersist)

	bus.Sweep(false)
	if bus.Count() != 1 {
		t.Fatalf("expected 1 surviving entry after non-forced sweep, got %d", bus.Count())
	}
	if len(freed) != 1 || freed[0] != "ephemeral" {
		t.Fatalf("expected only the non-persistent entry to be freed, got %v", freed)
	}
	_, payload, _, _ := bus.Read(0)
	if payload != "persistent" {
		t.Fatalf("expected the persistent entry to survive, got %v", payload)
	}

	bus.Sweep(true)
	if bus.Count() != 0 {
		t.Fatalf("expected a forced sweep to remove all entries, got %d", bus.Count())
	}
	if len(freed) != 2 || freed[1] != "persistent" {
		t.Fatalf("expected the persistent entry to be freed by the forced sweep, got %v", freed)
	}
}
