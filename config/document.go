// Package config is the one place a concrete JSON library is allowed to
// show up (spec.md Design Notes §9): it implements model.Document over
// encoding/json the same way the teacher's config.Config does
// (config/config.go uses bare encoding/json, no schema library), and
// parses a rule-set document into model.Rule values the way parse.c's
// parse_rule/parse_cause/parse_effect do.
package config

import (
	"encoding/json"

	"github.com/oracle/adaptived/model"
)

// jsonDocument adapts a decoded interface{} tree (as produced by
// json.Unmarshal into `any`) to the model.Document trait.
type jsonDocument struct {
	v interface{}
}

// Parse decodes JSON bytes into a model.Document root.
func Parse(data []byte) (model.Document, error) {
	var v interface{}
	if err := json.Unmarshal(data, &v); err != nil {
		return nil, model.NewError("config.Parse", model.CodeParse, err)
	}
	return &jsonDocument{v: v}, nil
}

func wrap(v interface{}) *jsonDocument { return &jsonDocument{v: v} }

func (d *jsonDocument) Type() model.DocType {
	switch d.v.(type) {
	case nil:
		return model.DocTypeNull
	case bool:
		return model.DocTypeBool
	case float64:
		if f, ok := d.v.(float64); ok && f == float64(int64(f)) {
			return model.DocTypeInt
		}
		return model.DocTypeFloat
	case string:
		return model.DocTypeString
	case []interface{}:
		return model.DocTypeArray
	case map[string]interface{}:
		return model.DocTypeObject
	default:
		return model.DocTypeNull
	}
}

func (d *jsonDocument) Child(key string) (model.Document, bool) {
	obj, ok := d.v.(map[string]interface{})
	if !ok {
		return nil, false
	}
	child, ok := obj[key]
	if !ok {
		return nil, false
	}
	return wrap(child), true
}

func (d *jsonDocument) ArrayLen() int {
	arr, ok := d.v.([]interface{})
	if !ok {
		return 0
	}
	return len(arr)
}

func (d *jsonDocument) ArrayElem(i int) (model.Document, bool) {
	arr, ok := d.v.([]interface{})
	if !ok || i < 0 || i >= len(arr) {
		return nil, false
	}
	return wrap(arr[i]), true
}

func (d *jsonDocument) AsString() (string, bool) {
	s, ok := d.v.(string)
	return s, ok
}

func (d *jsonDocument) AsInt() (int64, bool) {
	f, ok := d.v.(float64)
	if !ok {
		return 0, false
	}
	return int64(f), true
}

func (d *jsonDocument) AsFloat() (float64, bool) {
	f, ok := d.v.(float64)
	return f, ok
}

func (d *jsonDocument) AsBool() (bool, bool) {
	b, ok := d.v.(bool)
	return b, ok
}
