// Command adaptived is the daemon entry point, grounded on main.c's
// parse_opts/usage/main, reworked from getopt_long onto the standard
// library's flag package the way the teacher's cmd/root.go parses its
// own CLI surface.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/oracle/adaptived/engine"
	"github.com/oracle/adaptived/logutil"
)

const (
	defaultConfigFile = "/etc/adaptived/adaptived.json"
	defaultInterval   = 5000
)

func printUsage() {
	fmt.Fprintf(os.Stderr, `adaptived: a daemon for managing and prioritizing resources

Usage: adaptived [options]

Optional arguments:
  -c, --config=CONFIG        Configuration file (default: %s)
  -h, --help                  Show this help message
  -i, --interval=INTERVAL    Polling interval in milliseconds (default: %d)
  -l, --loglevel=LEVEL       Log level: debug, info, warning, error
  -m, --maxloops=COUNT       Maximum number of loops to run. Useful for testing
  -d, --daemon_mode          Run as a daemon
`, defaultConfigFile, defaultInterval)
}

func main() {
	var (
		config     string
		interval   int
		logLevel   string
		maxLoops   int
		daemonMode bool
		help       bool
	)

	fs := flag.NewFlagSet("adaptived", flag.ExitOnError)
	fs.Usage = printUsage

	fs.StringVar(&config, "config", defaultConfigFile, "configuration file")
	fs.StringVar(&config, "c", defaultConfigFile, "configuration file (shorthand)")
	fs.IntVar(&interval, "interval", defaultInterval, "polling interval in milliseconds")
	fs.IntVar(&interval, "i", defaultInterval, "polling interval in milliseconds (shorthand)")
	fs.StringVar(&logLevel, "loglevel", "info", "log level: debug, info, warning, error")
	fs.StringVar(&logLevel, "l", "info", "log level (shorthand)")
	fs.IntVar(&maxLoops, "maxloops", 0, "maximum number of loops to run (0 = unbounded)")
	fs.IntVar(&maxLoops, "m", 0, "maximum number of loops to run (shorthand)")
	fs.BoolVar(&daemonMode, "daemon_mode", false, "run as a daemon")
	fs.BoolVar(&daemonMode, "d", false, "run as a daemon (shorthand)")
	fs.BoolVar(&help, "help", false, "show this help message")
	fs.BoolVar(&help, "h", false, "show this help message (shorthand)")

	if err := fs.Parse(os.Args[1:]); err != nil {
		os.Exit(1)
	}
	if help {
		printUsage()
		return
	}

	level, ok := logutil.ParseLevel(logLevel)
	if !ok {
		fmt.Fprintf(os.Stderr, "adaptived: invalid log level %q\n", logLevel)
		os.Exit(1)
	}

	if daemonMode {
		if err := engine.Daemonize(); err != nil {
			fmt.Fprintf(os.Stderr, "adaptived: failed to daemonize: %v\n", err)
			os.Exit(1)
		}
	}

	ctx := engine.New(config)
	_ = ctx.SetAttr(engine.AttrInterval, uint32(interval))
	_ = ctx.SetAttr(engine.AttrLogLevel, uint32(level))
	_ = ctx.SetAttr(engine.AttrMaxLoops, uint32(maxLoops))
	_ = ctx.SetAttr(engine.AttrDaemonMode, boolToUint32(daemonMode))
	defer ctx.Release()

	data, err := os.ReadFile(config)
	if err != nil {
		fmt.Fprintf(os.Stderr, "adaptived: failed to read %s: %v\n", config, err)
		os.Exit(1)
	}
	if err := ctx.LoadConfig(data); err != nil {
		fmt.Fprintf(os.Stderr, "adaptived: failed to load rules: %v\n", err)
		os.Exit(1)
	}

	if err := ctx.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "adaptived: exiting: %v\n", err)
		os.Exit(1)
	}
}

func boolToUint32(b bool) uint32 {
	if b {
		return 1
	}
	return 0
}
