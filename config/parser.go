package config

import (
	"github.com/oracle/adaptived/model"
	"github.com/oracle/adaptived/registry"
)

// ParseConfig reads a top-level document's "rules" array into a slice of
// fully initialized rules, grounded on parse.c's adaptived_parse_config:
// each rule is parsed independently and a failure partway through tears
// down every rule parsed so far, rather than leaving half-initialized
// rules behind.
func ParseConfig(data []byte, interval int, reg *registry.Registry) ([]*model.Rule, error) {
	doc, err := Parse(data)
	if err != nil {
		return nil, err
	}

	rulesDoc, ok := doc.Child("rules")
	if !ok {
		return nil, model.NewError("config.ParseConfig", model.CodeInvalidArgument, nil)
	}

	rules := make([]*model.Rule, 0, rulesDoc.ArrayLen())
	for i := 0; i < rulesDoc.ArrayLen(); i++ {
		ruleDoc, _ := rulesDoc.ArrayElem(i)
		rule, err := ParseRule(ruleDoc, interval, reg)
		if err != nil {
			for _, r := range rules {
				r.Teardown()
			}
			return nil, err
		}
		rules = append(rules, rule)
	}

	return rules, nil
}

// ParseRule parses a single rule object: its name, conjunction of causes,
// and ordered effects, grounded on parse.c's parse_rule. On failure every
// cause/effect already attached to the rule is torn down before returning.
func ParseRule(ruleDoc model.Document, interval int, reg *registry.Registry) (*model.Rule, error) {
	name, err := model.ParseString(ruleDoc, "name")
	if err != nil {
		return nil, err
	}

	rule := model.NewRule(name)

	causesDoc, ok := ruleDoc.Child("causes")
	if !ok {
		rule.Teardown()
		return nil, model.NewError("config.ParseRule", model.CodeInvalidArgument, nil)
	}
	for i := 0; i < causesDoc.ArrayLen(); i++ {
		causeDoc, _ := causesDoc.ArrayElem(i)
		cse, err := parseCause(causeDoc, interval, reg)
		if err != nil {
			rule.Teardown()
			return nil, err
		}
		rule.Causes = append(rule.Causes, cse)
	}
	if len(rule.Causes) == 0 {
		rule.Teardown()
		return nil, model.NewError("config.ParseRule", model.CodeInvalidArgument, nil)
	}

	effectsDoc, ok := ruleDoc.Child("effects")
	if !ok {
		rule.Teardown()
		return nil, model.NewError("config.ParseRule", model.CodeInvalidArgument, nil)
	}
	for i := 0; i < effectsDoc.ArrayLen(); i++ {
		effectDoc, _ := effectsDoc.ArrayElem(i)
		eff, err := parseEffect(effectDoc, rule.FirstCause(), reg)
		if err != nil {
			rule.Teardown()
			return nil, err
		}
		rule.Effects = append(rule.Effects, eff)
	}
	if len(rule.Effects) == 0 {
		rule.Teardown()
		return nil, model.NewError("config.ParseRule", model.CodeInvalidArgument, nil)
	}

	rule.Stats.CauseCount = len(rule.Causes)
	rule.Stats.EffectCount = len(rule.Effects)

	return rule, nil
}

// parseCause resolves a cause's name against the registry (built-in
// first, then registered plugins) and runs its Init hook, grounded on
// parse.c's parse_cause.
func parseCause(causeDoc model.Document, interval int, reg *registry.Registry) (*model.Cause, error) {
	name, err := model.ParseString(causeDoc, "name")
	if err != nil {
		return nil, err
	}

	argsDoc, ok := causeDoc.Child("args")
	if !ok {
		return nil, model.NewError("config.parseCause", model.CodeInvalidArgument, nil)
	}

	cse, _, ok := reg.LookupCause(name)
	if !ok {
		return nil, model.NewError("config.parseCause", model.CodeNotFound, nil)
	}

	if cse.Funcs.Init != nil {
		if err := cse.Funcs.Init(cse, argsDoc, interval); err != nil {
			return nil, err
		}
	}

	return cse, nil
}

// parseEffect resolves and initializes an effect the same way parseCause
// does for causes, grounded on parse.c's parse_effect.
func parseEffect(effectDoc model.Document, firstCause *model.Cause, reg *registry.Registry) (*model.Effect, error) {
	name, err := model.ParseString(effectDoc, "name")
	if err != nil {
		return nil, err
	}

	argsDoc, ok := effectDoc.Child("args")
	if !ok {
		return nil, model.NewError("config.parseEffect", model.CodeInvalidArgument, nil)
	}

	eff, _, ok := reg.LookupEffect(name)
	if !ok {
		return nil, model.NewError("config.parseEffect", model.CodeNotFound, nil)
	}

	if eff.Funcs.Init != nil {
		if err := eff.Funcs.Init(eff, argsDoc, firstCause); err != nil {
			return nil, err
		}
	}

	return eff, nil
}
