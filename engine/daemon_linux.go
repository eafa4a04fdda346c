//go:build linux

package engine

import (
	"os"
	"os/exec"
	"syscall"

	"github.com/oracle/adaptived/model"
)

// adaptivedReexecEnv flags a re-executed child so it doesn't try to
// daemonize itself again.
const adaptivedReexecEnv = "ADAPTIVED_DAEMONIZED"

// Daemonize re-execs the current process detached from its controlling
// terminal and exits the parent, grounded on adaptived_loop's call into
// glibc's daemon() (main.c). Go's runtime starts goroutines/threads
// before main() can fork, so unlike the C implementation this can't just
// fork(2) in place; re-exec under a new session is the idiomatic Go
// substitute and is what the teacher's own daemon mode (engine/daemon.go)
// assumes is already true of its environment (it never forks itself,
// relying on the caller to have done so, e.g. via systemd).
func Daemonize() error {
	if os.Getenv(adaptivedReexecEnv) == "1" {
		return nil
	}

	exePath, err := os.Executable()
	if err != nil {
		return model.NewError("Daemonize", model.CodeIOFailure, err)
	}

	cmd := exec.Command(exePath, os.Args[1:]...)
	cmd.Env = append(os.Environ(), adaptivedReexecEnv+"=1")
	cmd.Stdin = nil
	cmd.Stdout = nil
	cmd.Stderr = nil
	cmd.SysProcAttr = &syscall.SysProcAttr{Setsid: true}

	if err := cmd.Start(); err != nil {
		return model.NewError("Daemonize", model.CodeIOFailure, err)
	}

	os.Exit(0)
	return nil
}
