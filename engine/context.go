// Package engine is the daemon core: Context owns the rule set, the
// plugin registry, and the tick loop, grounded on adaptived's
// struct adaptived_ctx and adaptived_loop (main.c), generalized from a
// single global daemon instance to an ordinary Go value callers can
// construct, drive, and release explicitly (no hidden package-level
// state, unlike the C library's process-wide causes_init()/effects_init()).
package engine

import (
	"sync"

	"github.com/oracle/adaptived/causes"
	"github.com/oracle/adaptived/config"
	"github.com/oracle/adaptived/effects"
	"github.com/oracle/adaptived/logutil"
	"github.com/oracle/adaptived/model"
	"github.com/oracle/adaptived/registry"
)

const (
	defaultIntervalMS = 5000
)

// InjectionFunc mirrors adaptived_injection_function: an undocumented
// per-loop hook intended for tests that need to force conditions (e.g.
// PSI thresholds) that are otherwise hard to trigger deterministically.
type InjectionFunc func(ctx *Context) error

// Context is the daemon's runtime state: configuration, the loaded rule
// set, and the plugin registry, guarded by a single mutex the way
// adaptived_ctx's ctx_mutex guards the C struct (spec.md 4.7).
type Context struct {
	mu sync.Mutex

	configPath    string
	interval      int
	maxLoops      int
	skipSleep     bool
	daemonMode    bool
	daemonNochdir bool
	daemonNoclose bool

	loopCount uint64
	rules     []*model.Rule

	registry *registry.Registry
	logger   *logutil.Logger

	injectFn InjectionFunc
}

// New constructs a Context, registers the built-in cause/effect tables
// (causes.Register/effects.Register), and applies the defaults
// _adaptived_init sets (interval, max_loops=0 meaning unbounded,
// skip_sleep=false).
func New(configPath string) *Context {
	reg := registry.New()
	causes.Register(reg)
	effects.Register(reg)

	return &Context{
		configPath: configPath,
		interval:   defaultIntervalMS,
		registry:   reg,
		logger:     logutil.Default(),
	}
}

// Release tears down every loaded rule in reverse load order, mirroring
// adaptived_release's call into cleanup().
func (c *Context) Release() {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i := len(c.rules) - 1; i >= 0; i-- {
		c.rules[i].Teardown()
	}
	c.rules = nil
}

// SetAttr validates and applies a tunable setting, grounded on
// adaptived_set_attr. AttrRuleCount is read-only and rejected, and
// AttrLogLevel rejects a value above logutil.LevelError (the largest
// logutil.Level) rather than capping it.
func (c *Context) SetAttr(attr Attr, value uint32) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	switch attr {
	case AttrInterval:
		c.interval = int(value)
	case AttrMaxLoops:
		c.maxLoops = int(value)
	case AttrLogLevel:
		if value > uint32(logutil.LevelError) {
			return model.NewError("Context.SetAttr", model.CodeInvalidArgument, nil)
		}
		c.logger.SetMinLevel(logutil.Level(value))
	case AttrSkipSleep:
		c.skipSleep = value > 0
	case AttrDaemonMode:
		c.daemonMode = value > 0
	case AttrDaemonNochdir:
		c.daemonNochdir = value > 0
	case AttrDaemonNoclose:
		c.daemonNoclose = value > 0
	default:
		return model.NewError("Context.SetAttr", model.CodeInvalidArgument, nil)
	}

	return nil
}

// GetAttr reads back a tunable setting, grounded on adaptived_get_attr.
// AttrRuleCount is the length of the loaded rule slice, read in constant
// time under the mutex.
func (c *Context) GetAttr(attr Attr) (uint32, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	switch attr {
	case AttrInterval:
		return uint32(c.interval), nil
	case AttrMaxLoops:
		return uint32(c.maxLoops), nil
	case AttrLogLevel:
		return uint32(c.logger.MinLevel()), nil
	case AttrSkipSleep:
		if c.skipSleep {
			return 1, nil
		}
		return 0, nil
	case AttrDaemonMode:
		if c.daemonMode {
			return 1, nil
		}
		return 0, nil
	case AttrDaemonNochdir:
		if c.daemonNochdir {
			return 1, nil
		}
		return 0, nil
	case AttrDaemonNoclose:
		if c.daemonNoclose {
			return 1, nil
		}
		return 0, nil
	case AttrRuleCount:
		return uint32(len(c.rules)), nil
	default:
		return 0, model.NewError("Context.GetAttr", model.CodeInvalidArgument, nil)
	}
}

// SetInjectionFunc installs the per-loop test hook (spec.md 4.7's
// "undocumented API" equivalent).
func (c *Context) SetInjectionFunc(fn InjectionFunc) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.injectFn = fn
}

// RegisterCause exposes the registry's external registration path to
// plugin authors, validated against both the built-in table and prior
// registrations.
func (c *Context) RegisterCause(name string, factory registry.CauseFactory) error {
	return c.registry.RegisterCause(name, factory)
}

// RegisterEffect is RegisterCause's effect-side counterpart.
func (c *Context) RegisterEffect(name string, factory registry.EffectFactory) error {
	return c.registry.RegisterEffect(name, factory)
}

// LoadConfig parses a rule-set document (data; the context's configPath
// is not read here) and appends its rules to the context, grounded on
// parse_config being called from adaptived_loop before entering the tick
// loop. A rule whose name is already loaded, or repeated within data,
// fails the whole load with AlreadyExists and no rule is appended.
func (c *Context) LoadConfig(data []byte) error {
	c.mu.Lock()
	interval := c.interval
	reg := c.registry
	c.mu.Unlock()

	rules, err := config.ParseConfig(data, interval, reg)
	if err != nil {
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	seen := make(map[string]bool, len(c.rules)+len(rules))
	for _, r := range c.rules {
		seen[r.Name] = true
	}
	for _, r := range rules {
		if seen[r.Name] {
			for _, nr := range rules {
				nr.Teardown()
			}
			return model.NewError("Context.LoadConfig", model.CodeAlreadyExists, nil)
		}
		seen[r.Name] = true
	}
	c.rules = append(c.rules, rules...)
	return nil
}

// LoadRule appends an already-built rule (e.g. from RuleBuilder) under
// the context's mutex, rejecting a duplicate name the way
// adaptived_load_rule's caller is expected to (the rule-set's names form
// a namespace disjoint from the plugin registry's).
func (c *Context) LoadRule(rule *model.Rule) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	for _, r := range c.rules {
		if r.Name == rule.Name {
			return model.NewError("Context.LoadRule", model.CodeAlreadyExists, nil)
		}
	}

	c.rules = append(c.rules, rule)
	return nil
}

// UnloadRule removes and tears down a rule by name.
func (c *Context) UnloadRule(name string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i, r := range c.rules {
		if r.Name == name {
			r.Teardown()
			c.rules = append(c.rules[:i], c.rules[i+1:]...)
			return nil
		}
	}

	return model.NewError("Context.UnloadRule", model.CodeNotFound, nil)
}

// GetRuleStats returns a copy of a loaded rule's stats counters.
func (c *Context) GetRuleStats(name string) (model.RuleStats, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for _, r := range c.rules {
		if r.Name == name {
			return r.Stats, nil
		}
	}

	return model.RuleStats{}, model.NewError("Context.GetRuleStats", model.CodeNotFound, nil)
}

// RuleNames returns the names of every currently loaded rule, used by
// cmd/adaptived-monitor to populate its dashboard without exposing the
// rule slice itself.
func (c *Context) RuleNames() []string {
	c.mu.Lock()
	defer c.mu.Unlock()

	names := make([]string, len(c.rules))
	for i, r := range c.rules {
		names[i] = r.Name
	}
	return names
}

// Registry exposes the underlying plugin registry, e.g. for a CLI
// subcommand that lists built-in plugin names.
func (c *Context) Registry() *registry.Registry {
	return c.registry
}

// Logger exposes the context's logger for callers outside the tick loop.
func (c *Context) Logger() *logutil.Logger {
	return c.logger
}
