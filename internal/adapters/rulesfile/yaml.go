// Package rulesfile loads dependency and order rules, and component
// selections, from YAML files.
//
// Rules file shape:
//
//	dependencies:
//	  - sources: ["bg1npc:20"]
//	    targets: ["bg1npc:0"]
//	    implicit_order: true
//	orders:
//	  - sources: ["ascension:10"]
//	    targets: ["cdtweaks:3090"]
//	    direction: before
//
// A selection file is a flat YAML list of "mod_id:comp_key" tokens.
package rulesfile

import (
	"errors"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/modhearth/modorder/internal/domain/component"
	"github.com/modhearth/modorder/internal/domain/rules"
	"github.com/modhearth/modorder/internal/ports"
)

// Error kinds for rule and selection loading, mirroring the order-file
// taxonomy: I/O failures versus structural violations.
var (
	ErrInvalidFormat = errors.New("invalid rules file format")
	ErrFileRead      = errors.New("rules file access failed")
)

// ruleDTO is the YAML representation of a single rule.
type ruleDTO struct {
	Sources       []string `yaml:"sources"`
	Targets       []string `yaml:"targets"`
	ImplicitOrder bool     `yaml:"implicit_order"`
	Direction     string   `yaml:"direction"`
}

// fileDTO is the YAML representation of a rules file.
type fileDTO struct {
	Dependencies []ruleDTO `yaml:"dependencies"`
	Orders       []ruleDTO `yaml:"orders"`
}

// Loader reads rules and selection files through a file system port.
type Loader struct {
	fs ports.FileSystem
}

// NewLoader creates a Loader reading through fs.
func NewLoader(fs ports.FileSystem) *Loader {
	return &Loader{fs: fs}
}

// LoadRules reads a rules file and builds an indexed rule manager.
func (l *Loader) LoadRules(path string) (*rules.Manager, error) {
	raw, err := l.fs.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrFileRead, path, err)
	}

	var dto fileDTO
	if err := yaml.Unmarshal(raw, &dto); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidFormat, err)
	}

	ruleSet := make([]rules.Rule, 0, len(dto.Dependencies)+len(dto.Orders))

	for i, d := range dto.Dependencies {
		sources, targets, err := endpointSets(d)
		if err != nil {
			return nil, fmt.Errorf("%w: dependency rule %d: %w", ErrInvalidFormat, i, err)
		}
		ruleSet = append(ruleSet, rules.NewDependencyRule(sources, targets, d.ImplicitOrder))
	}

	for i, o := range dto.Orders {
		sources, targets, err := endpointSets(o)
		if err != nil {
			return nil, fmt.Errorf("%w: order rule %d: %w", ErrInvalidFormat, i, err)
		}
		direction, err := parseDirection(o.Direction)
		if err != nil {
			return nil, fmt.Errorf("%w: order rule %d: %w", ErrInvalidFormat, i, err)
		}
		ruleSet = append(ruleSet, rules.NewOrderRule(sources, targets, direction))
	}

	return rules.NewManager(ruleSet...), nil
}

// LoadSelection reads a selection file: a flat list of component tokens.
func (l *Loader) LoadSelection(path string) ([]component.Reference, error) {
	raw, err := l.fs.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrFileRead, path, err)
	}

	var tokens []string
	if err := yaml.Unmarshal(raw, &tokens); err != nil {
		return nil, fmt.Errorf("%w: selection must be a list of tokens: %w", ErrInvalidFormat, err)
	}

	refs, err := component.ParseList(tokens)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidFormat, err)
	}
	return refs, nil
}

func endpointSets(dto ruleDTO) (component.Set, component.Set, error) {
	if len(dto.Sources) == 0 {
		return nil, nil, errors.New("sources must not be empty")
	}
	if len(dto.Targets) == 0 {
		return nil, nil, errors.New("targets must not be empty")
	}

	sources, err := parseSet(dto.Sources)
	if err != nil {
		return nil, nil, err
	}
	targets, err := parseSet(dto.Targets)
	if err != nil {
		return nil, nil, err
	}
	return sources, targets, nil
}

func parseSet(tokens []string) (component.Set, error) {
	refs, err := component.ParseList(tokens)
	if err != nil {
		return nil, err
	}
	return component.NewSet(refs...), nil
}

func parseDirection(value string) (rules.Direction, error) {
	switch rules.Direction(strings.ToLower(value)) {
	case rules.Before:
		return rules.Before, nil
	case rules.After:
		return rules.After, nil
	default:
		return "", fmt.Errorf("direction must be %q or %q, got %q", rules.Before, rules.After, value)
	}
}
