package engine

import (
	"time"

	"github.com/oracle/adaptived/model"
)

// Run drives the tick loop until max_loops is reached (if set) or the
// injection hook or a cause/effect raises an error, grounded on
// adaptived_loop (main.c); Release does not stop a running loop. It returns
// CodeTimeout when max_loops terminates the loop, matching the C
// implementation's -ETIME. On every exit path it forcibly sweeps every
// rule's shared-data entries before returning, matching the C loop's
// out: block (free_rule_shared_data(rule, true), main.c) rather than
// leaving PERSIST entries and their Custom free callbacks to whenever
// the caller eventually calls Release.
func (c *Context) Run() error {
	c.mu.Lock()
	c.loopCount = 0
	c.mu.Unlock()

	for {
		if err := c.tick(); err != nil {
			c.forceSweep()
			return err
		}

		c.mu.Lock()
		c.loopCount++
		maxLoops := c.maxLoops
		loopCount := c.loopCount
		interval := c.interval
		skipSleep := c.skipSleep
		c.mu.Unlock()

		if maxLoops > 0 && loopCount >= uint64(maxLoops) {
			c.forceSweep()
			return model.NewError("Context.Run", model.CodeTimeout, nil)
		}

		if !skipSleep {
			time.Sleep(time.Duration(interval) * time.Millisecond)
		}
	}
}

// forceSweep releases every loaded rule's shared-data entries regardless
// of PERSIST, the forced sweep adaptived_loop runs once on its way out.
func (c *Context) forceSweep() {
	c.mu.Lock()
	defer c.mu.Unlock()

	for _, rule := range c.rules {
		for _, cse := range rule.Causes {
			cse.Shared.Sweep(true)
		}
	}
}

// tick runs the injection hook (if set) once and then every loaded rule
// once: its causes are AND'd (every cause is still evaluated after one
// returns false; an errored cause aborts the whole tick), and if every
// cause fired, its effects run in order until one returns the
// AlreadyHandled sentinel (snoozing the rest of that rule) or a real error.
func (c *Context) tick() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.injectFn != nil {
		if err := c.injectFn(c); err != nil {
			return err
		}
	}

	for _, rule := range c.rules {
		rule.Stats.LoopsRun++

		fired := true
		for _, cse := range rule.Causes {
			if cse.Funcs.Evaluate == nil {
				continue
			}
			ok, err := cse.Funcs.Evaluate(cse, c.interval)
			if err != nil {
				return err
			}
			if !ok {
				fired = false
			}
		}

		if fired {
			rule.Stats.TriggerCount++

			for _, eff := range rule.Effects {
				if eff.Funcs.Execute == nil {
					continue
				}
				err := eff.Funcs.Execute(eff)
				if model.IsSnooze(err) {
					rule.Stats.SnoozeCount++
					break
				}
				if err != nil {
					return err
				}
			}
		}

		for _, cse := range rule.Causes {
			cse.Shared.Sweep(false)
		}
	}

	return nil
}
