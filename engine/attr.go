package engine

// Attr names a tunable Context setting, grounded on adaptived's
// enum adaptived_attr (adaptived.h) and the switch statements in
// adaptived_set_attr/adaptived_get_attr (main.c).
type Attr int

const (
	AttrInterval Attr = iota
	AttrMaxLoops
	AttrLogLevel
	AttrSkipSleep
	AttrDaemonMode
	AttrDaemonNochdir
	AttrDaemonNoclose
	// AttrRuleCount is read-only: SetAttr rejects it the same way
	// adaptived_set_attr's default case does.
	AttrRuleCount
)
