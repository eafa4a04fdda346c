package causes

import (
	"github.com/oracle/adaptived/cgroupfs"
	"github.com/oracle/adaptived/model"
)

type cgroupSettingState struct {
	setting   string
	op        model.Operator
	threshold int64
}

// newCgroupSetting builds the cgroup_setting cause, grounded on
// causes/cgroup_setting.c's _cgset_init/_cgset_main: it reads a cgroup
// attribute file expected to hold a single integer and fires once it
// satisfies the configured operator against a threshold.
func newCgroupSetting(name string) *model.Cause {
	return model.NewCause(name, model.CauseFuncs{
		Init: func(cse *model.Cause, args model.Document, intervalMS int) error {
			setting, err := model.ParseString(args, "setting")
			if err != nil {
				return err
			}
			op, err := model.ParseOperator(args, "")
			if err != nil {
				return err
			}
			threshold, err := model.ParseLongLong(args, "threshold")
			if err != nil {
				return err
			}

			cse.State = &cgroupSettingState{setting: setting, op: op, threshold: threshold}
			return nil
		},
		Evaluate: func(cse *model.Cause, msSinceLastRun int) (bool, error) {
			st := cse.State.(*cgroupSettingState)

			val, err := cgroupfs.GetLL(st.setting)
			if err != nil {
				return false, err
			}

			return st.op.CompareInt64(val, st.threshold), nil
		},
		Teardown: func(cse *model.Cause) {},
	}, true)
}
