package cgroupfs

import (
	"os"
	"strconv"
	"strings"

	"github.com/oracle/adaptived/model"
)

// PSILine is one "some"/"full" row of a PSI file:
// "some avg10=0.00 avg60=0.00 avg300=0.00 total=0".
type PSILine struct {
	Avg10  float64
	Avg60  float64
	Avg300 float64
	Total  uint64
}

// PSI holds both rows of a /proc/pressure/{cpu,memory,io} file. CPU "full"
// rows don't exist on most kernels and are left zero-valued.
type PSI struct {
	Some PSILine
	Full PSILine
}

// Resource names the three PSI files the kernel exposes.
type Resource string

const (
	ResourceCPU    Resource = "cpu"
	ResourceMemory Resource = "memory"
	ResourceIO     Resource = "io"
)

// ReadPSI parses /proc/pressure/<resource>, adapted from the teacher's
// PSICollector.Collect/parsePSIFile (collector/psi.go), generalized from a
// fixed cpu/memory/io trio collected together into a single-resource read
// of the system-wide file. The pressure cause does not call it; it reads
// its configured path through ReadPSIFile.
func ReadPSI(resource Resource) (PSI, error) {
	return ReadPSIFile("/proc/pressure/" + string(resource))
}

// ReadPSIFile parses an arbitrary PSI-formatted file. The pressure cause
// takes a caller-supplied "pressure_file" path rather than a fixed
// resource name (causes/pressure.c), since it may point at a cgroup's own
// pressure file (e.g. memory.pressure) instead of the system-wide one.
func ReadPSIFile(path string) (PSI, error) {
	var psi PSI

	data, err := os.ReadFile(path)
	if err != nil {
		return psi, model.NewError("cgroupfs.ReadPSIFile", model.CodeIOFailure, err)
	}

	for _, line := range strings.Split(string(data), "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		parsed, isFull, ok := parsePSILine(line)
		if !ok {
			continue
		}
		if isFull {
			psi.Full = parsed
		} else {
			psi.Some = parsed
		}
	}

	return psi, nil
}

func parsePSILine(line string) (PSILine, bool, bool) {
	var pl PSILine
	fields := strings.Fields(line)
	if len(fields) < 2 {
		return pl, false, false
	}

	isFull := fields[0] == "full"

	for _, f := range fields[1:] {
		parts := strings.SplitN(f, "=", 2)
		if len(parts) != 2 {
			continue
		}
		switch parts[0] {
		case "avg10":
			pl.Avg10, _ = strconv.ParseFloat(parts[1], 64)
		case "avg60":
			pl.Avg60, _ = strconv.ParseFloat(parts[1], 64)
		case "avg300":
			pl.Avg300, _ = strconv.ParseFloat(parts[1], 64)
		case "total":
			pl.Total, _ = strconv.ParseUint(parts[1], 10, 64)
		}
	}

	return pl, isFull, true
}
