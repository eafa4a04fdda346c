package causes

import (
	"github.com/oracle/adaptived/cgroupfs"
	"github.com/oracle/adaptived/model"
)

// measurement selects one of the eight fields a PSI file exposes, grounded
// on causes/pressure.c's meas_names[] table.
type measurement int

const (
	measSomeAvg10 measurement = iota
	measSomeAvg60
	measSomeAvg300
	measSomeTotal
	measFullAvg10
	measFullAvg60
	measFullAvg300
	measFullTotal
)

var measurementNames = map[string]measurement{
	"some-avg10":  measSomeAvg10,
	"some-avg60":  measSomeAvg60,
	"some-avg300": measSomeAvg300,
	"some-total":  measSomeTotal,
	"full-avg10":  measFullAvg10,
	"full-avg60":  measFullAvg60,
	"full-avg300": measFullAvg300,
	"full-total":  measFullTotal,
}

type pressureState struct {
	file        string
	meas        measurement
	op          model.Operator
	thresholdF  float64
	thresholdI  int64
	duration    int
	overElapsed int
}

func extract(psi cgroupfs.PSI, m measurement) (float64, int64) {
	switch m {
	case measSomeAvg10:
		return psi.Some.Avg10, 0
	case measSomeAvg60:
		return psi.Some.Avg60, 0
	case measSomeAvg300:
		return psi.Some.Avg300, 0
	case measSomeTotal:
		return 0, int64(psi.Some.Total)
	case measFullAvg10:
		return psi.Full.Avg10, 0
	case measFullAvg60:
		return psi.Full.Avg60, 0
	case measFullAvg300:
		return psi.Full.Avg300, 0
	case measFullTotal:
		return 0, int64(psi.Full.Total)
	default:
		return 0, 0
	}
}

func isTotalMeasurement(m measurement) bool {
	return m == measSomeTotal || m == measFullTotal
}

// newPressure builds the pressure cause, grounded on causes/pressure.c: it
// reads a PSI file each tick, compares one of its eight fields against a
// threshold with the configured operator, and fires once that condition
// has held continuously for "duration" milliseconds (or immediately, if no
// duration was given).
func newPressure(name string) *model.Cause {
	return model.NewCause(name, model.CauseFuncs{
		Init: func(cse *model.Cause, args model.Document, intervalMS int) error {
			file, err := model.ParseString(args, "pressure_file")
			if err != nil {
				return err
			}

			measStr, err := model.ParseString(args, "measurement")
			if err != nil {
				return err
			}
			meas, ok := measurementNames[measStr]
			if !ok {
				return model.NewError("pressure.Init", model.CodeInvalidArgument, nil)
			}

			op, err := model.ParseOperator(args, "")
			if err != nil {
				return err
			}

			st := &pressureState{file: file, meas: meas, op: op, duration: -1}

			if isTotalMeasurement(meas) {
				threshold, err := model.ParseLongLong(args, "threshold")
				if err != nil {
					return err
				}
				if threshold <= 0 {
					return model.NewError("pressure.Init", model.CodeInvalidArgument, nil)
				}
				st.thresholdI = threshold
			} else {
				threshold, err := model.ParseFloat(args, "threshold")
				if err != nil {
					return err
				}
				if threshold < 0 {
					return model.NewError("pressure.Init", model.CodeInvalidArgument, nil)
				}
				st.thresholdF = threshold
			}

			if duration, err := model.ParseInt(args, "duration"); err == nil {
				st.duration = duration
			}

			cse.State = st
			return nil
		},
		Evaluate: func(cse *model.Cause, msSinceLastRun int) (bool, error) {
			st := cse.State.(*pressureState)

			psi, err := cgroupfs.ReadPSIFile(st.file)
			if err != nil {
				return false, err
			}

			avg, total := extract(psi, st.meas)
			var exceeded bool
			if isTotalMeasurement(st.meas) {
				exceeded = st.op.CompareInt64(total, st.thresholdI)
			} else {
				exceeded = st.op.CompareFloat64(avg, st.thresholdF)
			}

			if !exceeded {
				st.overElapsed = 0
				return false, nil
			}
			if st.duration < 0 {
				return true, nil
			}

			st.overElapsed += msSinceLastRun
			if st.overElapsed >= st.duration {
				st.overElapsed = 0
				return true, nil
			}
			return false, nil
		},
		Teardown: func(cse *model.Cause) {},
	}, true)
}
