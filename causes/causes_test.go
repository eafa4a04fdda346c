package causes

import (
	"path/filepath"
	"testing"

	"github.com/oracle/adaptived/cgroupfs"
	"github.com/oracle/adaptived/model"
)

// fakeDoc is a minimal in-memory model.Document for exercising cause Init
// without the config package's JSON implementation.
type fakeDoc struct {
	typ DocType
	str string
	i   int64
	f   float64
	obj map[string]*fakeDoc
}

type DocType = model.DocType

func objDoc(fields map[string]*fakeDoc) *fakeDoc {
	return &fakeDoc{typ: model.DocTypeObject, obj: fields}
}
func strDoc(s string) *fakeDoc   { return &fakeDoc{typ: model.DocTypeString, str: s} }
func intDoc(i int64) *fakeDoc    { return &fakeDoc{typ: model.DocTypeInt, i: i} }
func fltDoc(f float64) *fakeDoc  { return &fakeDoc{typ: model.DocTypeFloat, f: f} }

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
func (d *fakeDoc) AsFloat() (float64, bool)               { return d.f, d.typ == model.DocTypeFloat }
func (d *fakeDoc) AsBool() (bool, bool)                   { return false, false }

func TestAlwaysAlwaysFires(t *testing.T) {
	cse := newAlways("always")
	if err := cse.Funcs.Init(cse, objDoc(nil), 1000); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	fired, err := cse.Funcs.Evaluate(cse, 0)
	if err != nil || !fired {
		t.Fatalf("expected always to fire, got fired=%v err=%v", fired, err)
	}
}

func TestPeriodicFiresAfterAccumulatedPeriod(t *testing.T) {
	cse := newPeriodic("periodic")
	if err := cse.Funcs.Init(cse, objDoc(map[string]*fakeDoc{"period": intDoc(1000)}), 500); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	fired, err := cse.Funcs.Evaluate(cse, 600)
	if err != nil || fired {
		t.Fatalf("expected no fire before the period elapses, got fired=%v err=%v", fired, err)
	}

	fired, err = cse.Funcs.Evaluate(cse, 600)
	if err != nil || !fired {
		t.Fatalf("expected a fire once the accumulated elapsed time exceeds the period, got fired=%v err=%v", fired, err)
	}
}

func TestCgroupSettingFiresOnThreshold(t *testing.T) {
	path := filepath.Join(t.TempDir(), "memory.current")
	if err := cgroupfs.SetLL(path, 5_000_000, 0); err != nil {
		t.Fatalf("unexpected error writing fixture: %v", err)
	}

	cse := newCgroupSetting("cgroup_setting")
	args := objDoc(map[string]*fakeDoc{
		"setting":   strDoc(path),
		"operator":  strDoc("greaterthan"),
		"threshold": intDoc(1_000_000),
	})
	if err := cse.Funcs.Init(cse, args, 1000); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	fired, err := cse.Funcs.Evaluate(cse, 0)
	if err != nil || !fired {
		t.Fatalf("expected the cause to fire past the threshold, got fired=%v err=%v", fired, err)
	}
}

func TestCgroupSettingInitRejectsMissingSetting(t *testing.T) {
	cse := newCgroupSetting("cgroup_setting")
	args := objDoc(map[string]*fakeDoc{
		"operator":  strDoc("greaterthan"),
		"threshold": intDoc(1),
	})
	if err := cse.Funcs.Init(cse, args, 1000); model.CodeOf(err) != model.CodeNotFound {
		t.Fatalf("expected NotFound for a missing setting argument, got %v", err)
	}
}
