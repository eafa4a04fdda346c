package effects

import (
	"time"

	"github.com/oracle/adaptived/model"
)

type snoozeState struct {
	duration    time.Duration
	prevTrigger time.Time
}

// newSnooze builds the snooze effect, grounded on effects/snooze.c: some
// causes have no built-in way to ignore themselves for a while, so this
// effect enforces a minimum gap between rule firings by returning the
// AlreadyHandled sentinel (the C effect's -EALREADY) to skip the rest of
// the rule's effects until the configured duration (in milliseconds) has
// elapsed since the last time it let a firing through.
func newSnooze(name string) *model.Effect {
	return model.NewEffect(name, model.EffectFuncs{
		Init: func(eff *model.Effect, args model.Document, firstCause *model.Cause) error {
			durationMS, err := model.ParseInt(args, "duration")
			if err != nil {
				return err
			}
			eff.State = &snoozeState{duration: time.Duration(durationMS) * time.Millisecond}
			return nil
		},
		Execute: func(eff *model.Effect) error {
			st := eff.State.(*snoozeState)
			now := time.Now()

			if !st.prevTrigger.IsZero() && now.Sub(st.prevTrigger) < st.duration {
				return model.NewError("snooze.Execute", model.CodeAlreadyHandled, nil)
			}

			st.prevTrigger = now
			return nil
		},
		Teardown: func(eff *model.Effect) {},
	}, true)
}
