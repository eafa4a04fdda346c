package effects

import (
	"github.com/oracle/adaptived/cgroupfs"
	"github.com/oracle/adaptived/model"
)

type cgroupSettingEffectState struct {
	setting string
	value   int64
	flags   cgroupfs.SetFlags
}

// newCgroupSetting builds the cgroup_setting effect, grounded on
// effects/cgroup_setting.c: it writes an integer "value" to a cgroup
// attribute file named by "setting", optionally reading it back to
// validate the kernel accepted it (the "validate" argument maps onto
// ADAPTIVED_CGROUP_FLAGS_VALIDATE).
func newCgroupSetting(name string) *model.Effect {
	return model.NewEffect(name, model.EffectFuncs{
		Init: func(eff *model.Effect, args model.Document, firstCause *model.Cause) error {
			setting, err := model.ParseString(args, "setting")
			if err != nil {
				return err
			}
			value, err := model.ParseLongLong(args, "value")
			if err != nil {
				return err
			}

			var flags cgroupfs.SetFlags
			if validate, err := model.ParseBool(args, "validate"); err == nil && validate {
				flags |= cgroupfs.SetFlagValidate
			}

			eff.State = &cgroupSettingEffectState{setting: setting, value: value, flags: flags}
			return nil
		},
		Execute: func(eff *model.Effect) error {
			st := eff.State.(*cgroupSettingEffectState)
			return cgroupfs.SetLL(st.setting, st.value, st.flags)
		},
		Teardown: func(eff *model.Effect) {},
	}, true)
}
