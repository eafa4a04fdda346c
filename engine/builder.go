package engine

import (
	"encoding/json"

	"github.com/oracle/adaptived/config"
	"github.com/oracle/adaptived/model"
)

// CauseBuilder assembles one cause entry of a programmatically built
// rule, grounded on adaptived_cause_init/adaptived_cause_add_string_arg
// et al (cause.c): callers add typed arguments one at a time instead of
// hand-writing JSON.
type CauseBuilder struct {
	name string
	args map[string]interface{}
}

// NewCauseBuilder starts a cause entry for the named built-in or
// registered cause.
func NewCauseBuilder(name string) *CauseBuilder {
	return &CauseBuilder{name: name, args: map[string]interface{}{}}
}

func (b *CauseBuilder) AddStringArg(key, value string) *CauseBuilder {
	b.args[key] = value
	return b
}

func (b *CauseBuilder) AddIntArg(key string, value int64) *CauseBuilder {
	b.args[key] = value
	return b
}

func (b *CauseBuilder) AddFloatArg(key string, value float64) *CauseBuilder {
	b.args[key] = value
	return b
}

func (b *CauseBuilder) AddBoolArg(key string, value bool) *CauseBuilder {
	b.args[key] = value
	return b
}

func (b *CauseBuilder) toDoc() map[string]interface{} {
	return map[string]interface{}{"name": b.name, "args": b.args}
}

// EffectBuilder is CauseBuilder's effect-side counterpart, grounded on
// adaptived_effect_init/adaptived_effect_add_string_arg.
type EffectBuilder struct {
	name string
	args map[string]interface{}
}

// NewEffectBuilder starts an effect entry for the named built-in or
// registered effect.
func NewEffectBuilder(name string) *EffectBuilder {
	return &EffectBuilder{name: name, args: map[string]interface{}{}}
}

func (b *EffectBuilder) AddStringArg(key, value string) *EffectBuilder {
	b.args[key] = value
	return b
}

func (b *EffectBuilder) AddIntArg(key string, value int64) *EffectBuilder {
	b.args[key] = value
	return b
}

func (b *EffectBuilder) AddFloatArg(key string, value float64) *EffectBuilder {
	b.args[key] = value
	return b
}

func (b *EffectBuilder) AddBoolArg(key string, value bool) *EffectBuilder {
	b.args[key] = value
	return b
}

func (b *EffectBuilder) toDoc() map[string]interface{} {
	return map[string]interface{}{"name": b.name, "args": b.args}
}

// RuleBuilder assembles a rule's name, causes, and effects, grounded on
// adaptived_build_rule/adaptived_rule_add_cause/adaptived_rule_add_effect
// (rule.c). Unlike the C API, which mutates a live json_object tree
// in-place, buildRuleDoc serializes the accumulated state through
// encoding/json once: the builder has no concrete Document dependency of
// its own, matching spec.md Design Notes §9's library-agnostic intent.
type RuleBuilder struct {
	name    string
	causes  []map[string]interface{}
	effects []map[string]interface{}
}

// NewRuleBuilder starts a rule under the given name.
func NewRuleBuilder(name string) *RuleBuilder {
	return &RuleBuilder{name: name}
}

// AddCause appends a cause entry in evaluation order.
func (b *RuleBuilder) AddCause(cb *CauseBuilder) *RuleBuilder {
	b.causes = append(b.causes, cb.toDoc())
	return b
}

// AddEffect appends an effect entry in execution order.
func (b *RuleBuilder) AddEffect(eb *EffectBuilder) *RuleBuilder {
	b.effects = append(b.effects, eb.toDoc())
	return b
}

// buildRuleDoc renders a single-rule document suitable for
// config.ParseRule, via its own top-level object ({"name", "causes",
// "effects"}) rather than the config.ParseConfig's {"rules": [...]} envelope.
func (b *RuleBuilder) buildRuleDoc() (model.Document, error) {
	doc := map[string]interface{}{
		"name":    b.name,
		"causes":  b.causes,
		"effects": b.effects,
	}

	data, err := json.Marshal(doc)
	if err != nil {
		return nil, model.NewError("RuleBuilder.buildRuleDoc", model.CodeParse, err)
	}

	return config.Parse(data)
}

// BuildAndLoadRule parses the builder's accumulated causes/effects
// against the context's registry and, on success, appends the resulting
// rule to the context, grounded on adaptived_load_rule's
// build-then-parse-then-own-the-document flow.
func (c *Context) BuildAndLoadRule(rb *RuleBuilder) error {
	ruleDoc, err := rb.buildRuleDoc()
	if err != nil {
		return err
	}

	c.mu.Lock()
	interval := c.interval
	reg := c.registry
	c.mu.Unlock()

	rule, err := config.ParseRule(ruleDoc, interval, reg)
	if err != nil {
		return err
	}

	return c.LoadRule(rule)
}
