package effects

import (
	"bytes"
	"path/filepath"
	"testing"
	"time"

	"github.com/oracle/adaptived/cgroupfs"
	"github.com/oracle/adaptived/model"
)

type fakeDoc struct {
	typ model.DocType
	str string
	i   int64
	b   bool
	obj map[string]*fakeDoc
}

func objDoc(fields map[string]*fakeDoc) *fakeDoc { return &fakeDoc{typ: model.DocTypeObject, obj: fields} }
func strDoc(s string) *fakeDoc                   { return &fakeDoc{typ: model.DocTypeString, str: s} }
func intDoc(i int64) *fakeDoc                    { return &fakeDoc{typ: model.DocTypeInt, i: i} }
func boolDoc(b bool) *fakeDoc                    { return &fakeDoc{typ: model.DocTypeBool, b: b} }

func (d *fakeDoc) Type() model.DocType { return d.typ }
func (d *fakeDoc) Child(key string) (model.Document, bool) {
	child, ok := d.obj[key]
	if !ok {
		return nil, false
	}
	return child, true
}
func (d *fakeDoc) ArrayLen() int                          { return 0 }
func (d *fakeDoc) ArrayElem(i int) (model.Document, bool) { return nil, false }
func (d *fakeDoc) AsString() (string, bool)               { return d.str, d.typ == model.DocTypeString }
func (d *fakeDoc) AsInt() (int64, bool)                   { return d.i, d.typ == model.DocTypeInt }
func (d *fakeDoc) AsFloat() (float64, bool)               { return 0, false }
func (d *fakeDoc) AsBool() (bool, bool)                   { return d.b, d.typ == model.DocTypeBool }

func TestPrintWritesFixedMessage(t *testing.T) {
	eff := newPrint("print")
	args := objDoc(map[string]*fakeDoc{
		"file":    strDoc("stdout"),
		"message": strDoc("hello"),
	})
	if err := eff.Funcs.Init(eff, args, nil); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	st := eff.State.(*printState)
	var buf bytes.Buffer
	st.w = &buf

	if err := eff.Funcs.Execute(eff); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if buf.String() != "hello" {
		t.Fatalf("expected the fixed message to be printed, got %q", buf.String())
	}
}

func TestSnoozeShortCircuitsWithinDuration(t *testing.T) {
	eff := newSnooze("snooze")
	args := objDoc(map[string]*fakeDoc{"duration": intDoc(60_000)})
	if err := eff.Funcs.Init(eff, args, nil); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if err := eff.Funcs.Execute(eff); err != nil {
		t.Fatalf("expected the first execution to pass through, got %v", err)
	}
	if err := eff.Funcs.Execute(eff); !model.IsSnooze(err) {
		t.Fatalf("expected the second execution within the window to snooze, got %v", err)
	}
}

func TestSnoozeAllowsAfterDurationElapses(t *testing.T) {
	eff := newSnooze("snooze")
	args := objDoc(map[string]*fakeDoc{"duration": intDoc(1)})
	if err := eff.Funcs.Init(eff, args, nil); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if err := eff.Funcs.Execute(eff); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	time.Sleep(5 * time.Millisecond)
	if err := eff.Funcs.Execute(eff); err != nil {
		t.Fatalf("expected execution to pass through once the duration elapses, got %v", err)
	}
}

func TestCgroupSettingEffectWritesValue(t *testing.T) {
	path := filepath.Join(t.TempDir(), "memory.high")
	eff := newCgroupSetting("cgroup_setting")
	args := objDoc(map[string]*fakeDoc{
		"setting":  strDoc(path),
		"value":    intDoc(1536000),
		"validate": boolDoc(true),
	})
	if err := eff.Funcs.Init(eff, args, nil); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := eff.Funcs.Execute(eff); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got, err := cgroupfs.GetLL(path)
	if err != nil || got != 1536000 {
		t.Fatalf("expected the written value to be readable back, got %d, %v", got, err)
	}
}
