// Package quality provides content-level heuristics run over generated
// examples. These are data-quality warnings, not correctness checks: a
// finding flags an example for human review but never blocks assembly.
// Structural correctness is the validate package's job.
package quality

import (
	"fmt"
	"strings"

	"github.com/synthia-dev/datasetforge/types"
)

// Finding is one quality concern raised against an example.
type Finding struct {
	Validator string `json:"validator"`
	Message   int    `json:"message"`
	Detail    string `json:"detail"`
}

// Validator inspects one example and reports any quality concerns.
type Validator interface {
	Name() string
	Check(e types.Example) []Finding
}

// DefaultDisallowedPatterns are substrings that only appear in degenerate
// model output. Their presence in training data would teach the model to
// reproduce them.
var DefaultDisallowedPatterns = []string{
	"\U0001D1A3",
	"NdrFc",
	"\U000255A8",
	"คู่",
	"ניוזל",
	"zwłaszc",
}

// DisallowedPatternsValidator flags message content containing any of a
// configured list of substrings.
type DisallowedPatternsValidator struct {
	patterns []string
}

// NewDisallowedPatternsValidator creates a validator over the given
// substring list. An empty list falls back to DefaultDisallowedPatterns.
func NewDisallowedPatternsValidator(patterns []string) *DisallowedPatternsValidator {
	if len(patterns) == 0 {
		patterns = DefaultDisallowedPatterns
	}
	return &DisallowedPatternsValidator{patterns: patterns}
}

func (v *DisallowedPatternsValidator) Name() string { return "disallowed_patterns" }

// Check scans every message's content for the configured patterns.
func (v *DisallowedPatternsValidator) Check(e types.Example) []Finding {
	var findings []Finding
	for i, msg := range e.Messages {
		for _, pattern := range v.patterns {
			if strings.Contains(msg.Content, pattern) {
				findings = append(findings, Finding{
					Validator: v.Name(),
					Message:   i,
					Detail:    fmt.Sprintf("content contains disallowed pattern %q", pattern),
				})
			}
		}
	}
	return findings
}

// RoleBalanceValidator flags conversations that are all one voice: no
// assistant reply at all, or an assistant monologue with no user turn
// after the opening.
type RoleBalanceValidator struct{}

// NewRoleBalanceValidator creates a role balance validator.
func NewRoleBalanceValidator() *RoleBalanceValidator {
	return &RoleBalanceValidator{}
}

func (v *RoleBalanceValidator) Name() string { return "role_balance" }

// Check counts user and assistant turns.
func (v *RoleBalanceValidator) Check(e types.Example) []Finding {
	var users, assistants int
	for _, msg := range e.Messages {
		switch msg.Role {
		case types.RoleUser:
			users++
		case types.RoleAssistant:
			assistants++
		}
	}
	var findings []Finding
	if assistants == 0 {
		findings = append(findings, Finding{
			Validator: v.Name(),
			Detail:    "no assistant message in conversation",
		})
	}
	if users == 0 {
		findings = append(findings, Finding{
			Validator: v.Name(),
			Detail:    "no user message in conversation",
		})
	}
	return findings
}

// Run applies every validator to every example and returns all findings,
// keyed by example index in the input slice.
func Run(validators []Validator, examples []types.Example) map[int][]Finding {
	results := make(map[int][]Finding)
	for i, ex := range examples {
		for _, v := range validators {
			if findings := v.Check(ex); len(findings) > 0 {
				results[i] = append(results[i], findings...)
			}
		}
	}
	return results
}
