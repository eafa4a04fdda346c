// Package cgroupfs reads and writes cgroup v1/v2 attribute files and the
// kernel's pressure-stall-information files, the filesystem surface the
// built-in cgroup_setting and pressure causes/effects sit on top of. It is
// adapted from the teacher's collector/cgroup/detect.go (version
// detection) and collector/psi.go (pressure parsing), generalized from
// read-only metric collection to the read/write/validate attribute access
// adaptived_cgroup_get_ll/adaptived_cgroup_set_ll provide in
// utils/cgroup_utils.c.
package cgroupfs

import (
	"os"
	"strconv"
	"strings"

	"github.com/oracle/adaptived/model"
)

// Version identifies which cgroup hierarchy style a path belongs to.
type Version int

const (
	V1 Version = iota + 1
	V2
	Hybrid
)

// DetectVersion reports whether this host is running cgroup v1, v2, or a
// hybrid mount, the same check the teacher runs before choosing a reader.
func DetectVersion() Version {
	if _, err := os.Stat("/sys/fs/cgroup/cgroup.controllers"); err == nil {
		if hasV1Hierarchies() {
			return Hybrid
		}
		return V2
	}
	return V1
}

func hasV1Hierarchies() bool {
	entries, err := os.ReadDir("/sys/fs/cgroup")
	if err != nil {
		return false
	}
	for _, e := range entries {
		if !e.IsDir() {
			continue
		}
		switch e.Name() {
		case "cpu", "cpuacct", "cpu,cpuacct", "memory", "blkio":
			return true
		}
	}
	return false
}

// Root returns the mounted cgroup2 root, falling back to the conventional
// unified-hierarchy mountpoint.
func Root() string {
	data, err := os.ReadFile("/proc/mounts")
	if err != nil {
		return "/sys/fs/cgroup"
	}
	for _, line := range strings.Split(string(data), "\n") {
		fields := strings.Fields(line)
		if len(fields) >= 3 && fields[2] == "cgroup2" {
			return fields[1]
		}
	}
	return "/sys/fs/cgroup"
}

// GetLL reads a cgroup attribute file expected to hold a single integer,
// grounded on adaptived_cgroup_get_ll (utils/cgroup_utils.c).
func GetLL(path string) (int64, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return 0, model.NewError("cgroupfs.GetLL", model.CodeIOFailure, err)
	}

	text := strings.TrimSpace(string(data))
	v, err := strconv.ParseInt(text, 10, 64)
	if err != nil {
		return 0, model.NewError("cgroupfs.GetLL", model.CodeParse, err)
	}
	return v, nil
}

// SetFlags controls post-write validation behavior for SetLL, mirroring
// ADAPTIVED_CGROUP_FLAGS_VALIDATE.
type SetFlags uint32

const (
	SetFlagValidate SetFlags = 1 << 0
)

// SetLL writes an integer to a cgroup attribute file, optionally reading it
// back to confirm the kernel accepted the value verbatim, grounded on
// adaptived_cgroup_set_ll.
func SetLL(path string, value int64, flags SetFlags) error {
	if err := os.WriteFile(path, []byte(strconv.FormatInt(value, 10)), 0644); err != nil {
		return model.NewError("cgroupfs.SetLL", model.CodeIOFailure, err)
	}

	if flags&SetFlagValidate != 0 {
		got, err := GetLL(path)
		if err != nil {
			return err
		}
		if got != value {
			return model.NewError("cgroupfs.SetLL", model.CodeIOFailure, nil)
		}
	}

	return nil
}

// GetString reads a cgroup attribute file expected to hold a single
// whitespace-trimmed string token (e.g. memory.max, which may read "max").
func GetString(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", model.NewError("cgroupfs.GetString", model.CodeIOFailure, err)
	}
	return strings.TrimSpace(string(data)), nil
}

// SetString writes a raw string to a cgroup attribute file.
func SetString(path, value string) error {
	if err := os.WriteFile(path, []byte(value), 0644); err != nil {
		return model.NewError("cgroupfs.SetString", model.CodeIOFailure, err)
	}
	return nil
}
