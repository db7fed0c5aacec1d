package theme

import (
	"fmt"
	"strings"

	"github.com/npillmayer/slidetheme/deck"
	"github.com/npillmayer/slidetheme/style"
	"github.com/npillmayer/slidetheme/style/stylesheet"
)

// Definition is a theme written down as data instead of Go code, e.g.
// loaded from a YAML file or converted from a stylesheet.
type Definition struct {
	Name    string           `yaml:"name"`
	Include []string         `yaml:"include,omitempty"`
	Rules   []RuleDefinition `yaml:"rules"`
}

// RuleDefinition is a single rule of a Definition. It either sets
// properties or deletes the matched elements, never both.
type RuleDefinition struct {
	Match  []string   `yaml:"match"`
	Set    Properties `yaml:"set,omitempty"`
	Delete bool       `yaml:"delete,omitempty"`
}

// Properties is an ordered list of property settings.
type Properties []style.KeyValue

func (rd RuleDefinition) validate() error {
	if len(rd.Match) == 0 {
		return ErrEmptyMatch
	}
	if rd.Delete && len(rd.Set) > 0 {
		return fmt.Errorf("%w: rule for %v both sets properties and deletes", ErrInvalidRule, rd.Match)
	}
	if !rd.Delete && len(rd.Set) == 0 {
		return fmt.Errorf("%w: rule for %v neither sets properties nor deletes", ErrInvalidRule, rd.Match)
	}
	for _, t := range rd.Match {
		if strings.TrimSpace(t) == "" {
			return fmt.Errorf("%w: empty tag in rule for %v", ErrInvalidRule, rd.Match)
		}
	}
	return nil
}

func (rd RuleDefinition) tags() []deck.Tag {
	tags := make([]deck.Tag, len(rd.Match))
	for i, t := range rd.Match {
		tags[i] = deck.Tag(strings.TrimSpace(t))
	}
	return tags
}

func (rd RuleDefinition) step() Step {
	if rd.Delete {
		return Rule(func(sel Selection) {
			sel.Delete()
		}, rd.tags()...)
	}
	set := rd.Set
	return Rule(func(sel Selection) {
		for _, kv := range set {
			sel.PropSet(kv.Key, kv.Value.String())
		}
	}, rd.tags()...)
}

// Compile checks a definition and turns it into a theme. Included themes
// are applied before the rules, in the order listed. Tags are checked
// against the document's registry when the theme is applied, as
// registries may differ between documents.
func (def Definition) Compile() (Theme, error) {
	if def.Name == "" {
		return Theme{}, fmt.Errorf("%w: theme definition needs a name", ErrInvalidTheme)
	}
	steps := make([]Step, 0, len(def.Include)+len(def.Rules))
	for _, name := range def.Include {
		steps = append(steps, Include(name))
	}
	for i, rd := range def.Rules {
		if err := rd.validate(); err != nil {
			return Theme{}, fmt.Errorf("theme %s, rule #%d: %w", def.Name, i+1, err)
		}
		steps = append(steps, rd.step())
	}
	tracer().Debugf("compiled theme %s with %d steps", def.Name, len(steps))
	return Theme{
		Name: def.Name,
		Apply: func(sc *Scope) error {
			return sc.Run(steps...)
		},
	}, nil
}

// DefinitionFromStyleSheet converts a stylesheet into a theme definition.
//
// Every selector of a rule becomes a match on its tags, e.g. selector
// "Slide HeadLine" matches [Slide, HeadLine]. A declaration
// "display: none" deletes the matched elements; other declarations
// set properties. At-rules "@import" include other themes by name:
//
//     @import "default";
//     TitleSlide { vertical-align: middle; align: center }
//     Slide HorizontalRule { display: none }
//
// Other at-rules are ignored.
func DefinitionFromStyleSheet(name string, sheet stylesheet.StyleSheet) (Definition, error) {
	def := Definition{Name: name}
	if sheet == nil {
		return def, nil
	}
	for _, rule := range sheet.Rules() {
		if at := rule.AtRule(); at != "" {
			if at == "import" {
				def.Include = append(def.Include, stylesheet.Unquote(rule.Selector()))
			} else {
				tracer().Infof("theme %s: ignoring at-rule @%s", name, at)
			}
			continue
		}
		var set Properties
		var del bool
		for _, kv := range rule.Declarations() {
			if kv.Key == "display" && kv.Value == "none" {
				del = true
				continue
			}
			set = append(set, kv)
		}
		for _, sel := range rule.Selectors() {
			tags := stylesheet.SelectorTags(sel)
			if len(tags) == 0 {
				return def, fmt.Errorf("%w: selector %q has no tags", ErrInvalidRule, sel)
			}
			if len(set) > 0 {
				def.Rules = append(def.Rules, RuleDefinition{Match: tags, Set: set})
			}
			if del {
				def.Rules = append(def.Rules, RuleDefinition{Match: tags, Delete: true})
			}
		}
	}
	return def, nil
}

// FromStyleSheet creates a theme from a stylesheet.
// See DefinitionFromStyleSheet for how stylesheet rules are interpreted.
func FromStyleSheet(name string, sheet stylesheet.StyleSheet) (Theme, error) {
	def, err := DefinitionFromStyleSheet(name, sheet)
	if err != nil {
		return Theme{}, err
	}
	return def.Compile()
}
