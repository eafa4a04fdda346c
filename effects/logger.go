package effects

import (
	"github.com/oracle/adaptived/logutil"
	"github.com/oracle/adaptived/model"
)

type loggerState struct {
	logger *logutil.Logger
	msg    string
}

// newLogger builds the logger effect, grounded on effects/logger.c: the
// original copies arbitrary log files into a rolling log; this port keeps
// the effect's role (record that a rule fired, to a destination separate
// from the daemon's own operational log) but delegates the actual writing
// to logutil.Logger rather than re-implementing file rotation/copying,
// which SPEC_FULL's cgroup-policy scope has no other user for.
func newLogger(name string) *model.Effect {
	return model.NewEffect(name, model.EffectFuncs{
		Init: func(eff *model.Effect, args model.Document, firstCause *model.Cause) error {
			msg, err := model.ParseString(args, "message")
			if err != nil {
				return err
			}
			eff.State = &loggerState{logger: logutil.Default(), msg: msg}
			return nil
		},
		Execute: func(eff *model.Effect) error {
			st := eff.State.(*loggerState)
			st.logger.Infof("%s", st.msg)
			return nil
		},
		Teardown: func(eff *model.Effect) {},
	}, true)
}
