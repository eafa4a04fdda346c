package causes

import "github.com/oracle/adaptived/model"

type periodicState struct {
	periodMS int64
	elapsed  int64
}

// newPeriodic builds the periodic cause, grounded on causes/periodic.c: it
// fires once its accumulated elapsed time since the last fire reaches the
// configured "period" (in milliseconds), then resets its counter.
func newPeriodic(name string) *model.Cause {
	return model.NewCause(name, model.CauseFuncs{
		Init: func(cse *model.Cause, args model.Document, intervalMS int) error {
			period, err := model.ParseLongLong(args, "period")
			if err != nil {
				return err
			}
			cse.State = &periodicState{periodMS: period}
			return nil
		},
		Evaluate: func(cse *model.Cause, msSinceLastRun int) (bool, error) {
			st := cse.State.(*periodicState)
			st.elapsed += int64(msSinceLastRun)
			if st.elapsed >= st.periodMS {
				st.elapsed = 0
				return true, nil
			}
			return false, nil
		},
		Teardown: func(cse *model.Cause) {},
	}, true)
}
