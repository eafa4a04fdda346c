package model

import "strconv"

// DocType is the runtime type of a Document node, used by ParseValueFromDoc to
// decide which Value variant to build.
type DocType int

const (
	DocTypeNull DocType = iota
	DocTypeBool
	DocTypeInt
	DocTypeFloat
	DocTypeString
	DocTypeArray
	DocTypeObject
)

// Document is the minimal parsing trait the engine depends on instead of a
// concrete JSON library (spec.md Design Notes §9: "the engine should not
// depend on a specific document library"). config.jsonDocument is the
// stdlib-encoding/json-backed implementation used at the edge; plugin
// authors and the builder API never need to know a concrete type exists.
type Document interface {
	// Type reports this node's runtime type.
	Type() DocType
	// Child looks up a key on an object node. ok is false if the node is
	// not an object or the key is absent — callers must not conflate
	// "absent" with "present but null".
	Child(key string) (child Document, ok bool)
	// ArrayLen returns the number of elements of an array node (0 if not
	// an array).
	ArrayLen() int
	// ArrayElem returns element i of an array node.
	ArrayElem(i int) (Document, bool)
	// AsString/AsInt/AsFloat/AsBool convert a scalar node; ok is false if
	// the node's type doesn't match.
	AsString() (string, bool)
	AsInt() (int64, bool)
	AsFloat() (float64, bool)
	AsBool() (bool, bool)
}

// ParseValueFromDoc inspects node.Child(key)'s runtime type and builds the
// matching Value, per spec.md 4.1: integers become Integer, floats become
// Float, strings are tried as human-readable first, falling back to an
// owned String. Returns (Value{}, false) if the key is absent, which
// callers must report as NotFound rather than a parse failure.
func ParseValueFromDoc(node Document, key string) (Value, bool) {
	child, ok := node.Child(key)
	if !ok {
		return Value{}, false
	}

	switch child.Type() {
	case DocTypeInt:
		i, _ := child.AsInt()
		return NewIntegerValue(i), true
	case DocTypeFloat:
		f, _ := child.AsFloat()
		return NewFloatValue(float32(f)), true
	case DocTypeString:
		s, _ := child.AsString()
		if n, err := ParseHumanReadable(s); err == nil {
			return NewIntegerValue(n), true
		}
		return NewStringValue(s), true
	default:
		return Value{}, false
	}
}

// ParseString looks up a required string argument, grounded on
// adaptived_parse_string (parse.c): absent key is NotFound, wrong type is
// InvalidArgument.
func ParseString(node Document, key string) (string, error) {
	child, ok := node.Child(key)
	if !ok {
		return "", NewError("ParseString", CodeNotFound, nil)
	}
	s, ok := child.AsString()
	if !ok {
		return "", NewError("ParseString", CodeInvalidArgument, nil)
	}
	return s, nil
}

// ParseInt looks up a required integer argument, grounded on
// adaptived_parse_int.
func ParseInt(node Document, key string) (int, error) {
	v, err := ParseLongLong(node, key)
	if err != nil {
		return 0, err
	}
	return int(v), nil
}

// ParseLongLong looks up a required 64-bit integer argument, grounded on
// adaptived_parse_long_long. A string value is accepted and parsed
// numerically, matching the C implementation's strtoll-on-the-JSON-string
// behavior.
func ParseLongLong(node Document, key string) (int64, error) {
	child, ok := node.Child(key)
	if !ok {
		return 0, NewError("ParseLongLong", CodeNotFound, nil)
	}
	switch child.Type() {
	case DocTypeInt:
		v, _ := child.AsInt()
		return v, nil
	case DocTypeString:
		s, _ := child.AsString()
		v, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			return 0, NewError("ParseLongLong", CodeInvalidArgument, err)
		}
		return v, nil
	default:
		return 0, NewError("ParseLongLong", CodeInvalidArgument, nil)
	}
}

// ParseFloat looks up a required floating-point argument, grounded on
// adaptived_parse_float.
func ParseFloat(node Document, key string) (float64, error) {
	child, ok := node.Child(key)
	if !ok {
		return 0, NewError("ParseFloat", CodeNotFound, nil)
	}
	switch child.Type() {
	case DocTypeFloat:
		v, _ := child.AsFloat()
		return v, nil
	case DocTypeInt:
		v, _ := child.AsInt()
		return float64(v), nil
	case DocTypeString:
		s, _ := child.AsString()
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return 0, NewError("ParseFloat", CodeInvalidArgument, err)
		}
		return v, nil
	default:
		return 0, NewError("ParseFloat", CodeInvalidArgument, nil)
	}
}

// ParseBool looks up a required boolean argument, grounded on
// adaptived_parse_bool.
func ParseBool(node Document, key string) (bool, error) {
	child, ok := node.Child(key)
	if !ok {
		return false, NewError("ParseBool", CodeNotFound, nil)
	}
	b, ok := child.AsBool()
	if !ok {
		return false, NewError("ParseBool", CodeInvalidArgument, nil)
	}
	return b, nil
}

// ParseOperator looks up the reserved "operator" argument (or a
// caller-supplied key name, for causes that store it under a different
// key), grounded on parse_cause_operation's prefix-match lookup against
// cause_op_names[].
func ParseOperator(node Document, key string) (Operator, error) {
	if key == "" {
		key = "operator"
	}
	s, err := ParseString(node, key)
	if err != nil {
		return 0, err
	}
	switch {
	case hasPrefixFold(s, "greaterthan"):
		return OpGreaterThan, nil
	case hasPrefixFold(s, "lessthan"):
		return OpLessThan, nil
	case hasPrefixFold(s, "equal"):
		return OpEqual, nil
	default:
		return 0, NewError("ParseOperator", CodeInvalidArgument, nil)
	}
}

func hasPrefixFold(s, prefix string) bool {
	if len(s) < len(prefix) {
		return false
	}
	for i := 0; i < len(prefix); i++ {
		a, b := s[i], prefix[i]
		if 'A' <= a && a <= 'Z' {
			a += 'a' - 'A'
		}
		if 'A' <= b && b <= 'Z' {
			b += 'a' - 'A'
		}
		if a != b {
			return false
		}
	}
	return true
}
