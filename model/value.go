package model

import (
	"strconv"
	"strings"
)

// ValueKind is the tag of a Value's active variant.
type ValueKind int

const (
	// ValueDetect asks the reader to auto-detect the kind on read.
	ValueDetect ValueKind = iota
	ValueInteger
	ValueFloat
	ValueString
)

func (k ValueKind) String() string {
	switch k {
	case ValueInteger:
		return "integer"
	case ValueFloat:
		return "float"
	case ValueString:
		return "string"
	default:
		return "detect"
	}
}

// Value is a tagged union suitable for reading or writing a cgroup
// attribute: an integer, a float, an owned string, or a request to
// auto-detect the kind on read. Only one of Int/Float/Str is meaningful,
// selected by Kind.
type Value struct {
	Kind ValueKind
	Int  int64
	Flt  float32
	Str  string
}

// NewIntegerValue constructs an Integer value.
func NewIntegerValue(v int64) Value { return Value{Kind: ValueInteger, Int: v} }

// NewFloatValue constructs a Float value.
func NewFloatValue(v float32) Value { return Value{Kind: ValueFloat, Flt: v} }

// NewStringValue constructs a String value. The string is copied into the
// Value, matching the C implementation's heap-owned strdup semantics.
func NewStringValue(v string) Value { return Value{Kind: ValueString, Str: v} }

// NewDetectValue constructs a Detect value.
func NewDetectValue() Value { return Value{Kind: ValueDetect} }

// Equal reports whether two values have the same kind and content.
func (v Value) Equal(o Value) bool {
	if v.Kind != o.Kind {
		return false
	}
	switch v.Kind {
	case ValueInteger:
		return v.Int == o.Int
	case ValueFloat:
		return v.Flt == o.Flt
	case ValueString:
		return v.Str == o.Str
	default:
		return true
	}
}

// humanReadableSuffixes maps a suffix letter (upper or lower) to a 2^(10*tier)
// shift, per spec.md 4.1: k|K=10, m|M=20, g|G=30, t|T=40.
var humanReadableSuffixes = map[byte]uint{
	'k': 10, 'K': 10,
	'm': 20, 'M': 20,
	'g': 30, 'G': 30,
	't': 40, 'T': 40,
}

// ParseHumanReadable parses a decimal mantissa followed by exactly one
// suffix character (k|K|m|M|g|G|t|T) into a byte count: mantissa * 2^(10*tier).
// It fails if there is no suffix, the suffix is unrecognized, or the
// mantissa doesn't parse, mirroring adaptived_parse_human_readable's
// strtold-then-suffix-lookup behavior (cgroup_utils.c).
func ParseHumanReadable(text string) (int64, error) {
	if text == "" {
		return 0, NewError("ParseHumanReadable", CodeInvalidArgument, nil)
	}

	suffix := text[len(text)-1]
	shift, ok := humanReadableSuffixes[suffix]
	if !ok {
		return 0, NewError("ParseHumanReadable", CodeParse, nil)
	}

	mantissaStr := strings.TrimSpace(text[:len(text)-1])
	if mantissaStr == "" {
		return 0, NewError("ParseHumanReadable", CodeParse, nil)
	}

	mantissa, err := strconv.ParseFloat(mantissaStr, 64)
	if err != nil || mantissa < 0 {
		return 0, NewError("ParseHumanReadable", CodeParse, err)
	}

	return int64(mantissa * float64(uint64(1)<<shift)), nil
}
