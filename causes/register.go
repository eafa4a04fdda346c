// Package causes holds adaptived's built-in cause plugins: always,
// periodic, time_of_day, pressure, and cgroup_setting, the entries of the
// fixed built-in name table spec.md 4.4/6 require the engine to ship.
// Concrete cause implementations beyond this catalog are out of scope;
// Register only wires enough of the original causes/ directory to
// exercise the cgroupfs domain package and give the registry a non-empty
// built-in table.
package causes

import "github.com/oracle/adaptived/registry"

// Register adds every built-in cause to r. The engine calls this once
// during context setup, before any rule referencing a built-in cause name
// is parsed.
func Register(r *registry.Registry) {
	r.RegisterBuiltinCause("always", newAlways)
	r.RegisterBuiltinCause("periodic", newPeriodic)
	r.RegisterBuiltinCause("time_of_day", newTimeOfDay)
	r.RegisterBuiltinCause("pressure", newPressure)
	r.RegisterBuiltinCause("cgroup_setting", newCgroupSetting)
}
