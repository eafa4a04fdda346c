// Package effects holds adaptived's built-in effect plugins: print,
// snooze, logger, and cgroup_setting, the entries of the fixed built-in
// effect name table spec.md 4.4/6 require the engine to ship. Concrete
// effect implementations beyond this catalog (kill_cgroup,
// sd_bus_setting, copy_cgroup_setting, ...) are out of scope.
package effects

import "github.com/oracle/adaptived/registry"

// Register adds every built-in effect to r, mirroring causes.Register.
func Register(r *registry.Registry) {
	r.RegisterBuiltinEffect("print", newPrint)
	r.RegisterBuiltinEffect("snooze", newSnooze)
	r.RegisterBuiltinEffect("logger", newLogger)
	r.RegisterBuiltinEffect("cgroup_setting", newCgroupSetting)
}
