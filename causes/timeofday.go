package causes

import (
	"time"

	"github.com/oracle/adaptived/model"
)

type timeOfDayState struct {
	hour int
	min  int
	sec  int
}

// newTimeOfDay builds the time_of_day cause, grounded on
// causes/time_of_day.c: it parses a "HH:MM:SS"-formatted "time" argument
// and fires once the wall clock passes that time of day. The original only
// supports the greaterthan operator; this port keeps that restriction
// rather than silently generalizing it.
func newTimeOfDay(name string) *model.Cause {
	return model.NewCause(name, model.CauseFuncs{
		Init: func(cse *model.Cause, args model.Document, intervalMS int) error {
			timeStr, err := model.ParseString(args, "time")
			if err != nil {
				return err
			}

			parsed, err := time.Parse("15:04:05", timeStr)
			if err != nil {
				return model.NewError("timeofday.Init", model.CodeParse, err)
			}

			op, err := model.ParseOperator(args, "")
			if err != nil {
				return err
			}
			if op != model.OpGreaterThan {
				return model.NewError("timeofday.Init", model.CodeInvalidArgument, nil)
			}

			cse.State = &timeOfDayState{hour: parsed.Hour(), min: parsed.Minute(), sec: parsed.Second()}
			return nil
		},
		Evaluate: func(cse *model.Cause, msSinceLastRun int) (bool, error) {
			st := cse.State.(*timeOfDayState)
			now := time.Now()

			if now.Hour() > st.hour {
				return true, nil
			}
			if now.Hour() == st.hour && now.Minute() > st.min {
				return true, nil
			}
			if now.Hour() == st.hour && now.Minute() == st.min && now.Second() > st.sec {
				return true, nil
			}
			return false, nil
		},
		Teardown: func(cse *model.Cause) {},
	}, true)
}
