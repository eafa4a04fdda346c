package causes

import "github.com/oracle/adaptived/model"

// newAlways builds the always cause, grounded on causes/always.c: it takes
// no arguments and fires on every tick. Useful mostly for testing rule
// wiring without depending on real system state.
func newAlways(name string) *model.Cause {
	return model.NewCause(name, model.CauseFuncs{
		Init: func(cse *model.Cause, args model.Document, intervalMS int) error {
			return nil
		},
		Evaluate: func(cse *model.Cause, msSinceLastRun int) (bool, error) {
			return true, nil
		},
		Teardown: func(cse *model.Cause) {},
	}, true)
}
