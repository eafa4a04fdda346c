package effects

import (
	"fmt"
	"io"
	"os"

	"github.com/oracle/adaptived/model"
)

type printState struct {
	w          io.Writer
	msg        string
	firstCause *model.Cause
}

// newPrint builds the print effect, grounded on effects/print.c: it writes
// either a fixed "message" string or a "triggered by <cause>" line to
// stdout or stderr, as selected by the "file" argument.
func newPrint(name string) *model.Effect {
	return model.NewEffect(name, model.EffectFuncs{
		Init: func(eff *model.Effect, args model.Document, firstCause *model.Cause) error {
			fileStr, err := model.ParseString(args, "file")
			if err != nil {
				return err
			}

			var w io.Writer
			switch fileStr {
			case "stdout":
				w = os.Stdout
			case "stderr":
				w = os.Stderr
			default:
				return model.NewError("print.Init", model.CodeInvalidArgument, nil)
			}

			msg, _ := model.ParseString(args, "message")

			eff.State = &printState{w: w, msg: msg, firstCause: firstCause}
			return nil
		},
		Execute: func(eff *model.Effect) error {
			st := eff.State.(*printState)
			if st.msg != "" {
				fmt.Fprint(st.w, st.msg)
				return nil
			}

			fmt.Fprintln(st.w, "Print effect triggered by:")
			if st.firstCause != nil {
				fmt.Fprintf(st.w, "\t%s\n", st.firstCause.Name)
			}
			return nil
		},
		Teardown: func(eff *model.Effect) {},
	}, true)
}
