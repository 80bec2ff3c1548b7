package scenarios

import (
	"github.com/synthia-dev/datasetforge/builders"
	"github.com/synthia-dev/datasetforge/types"
)

// WorkshopExamples produces examples of recording project decisions and
// notes with the workshop CLI (invoked through bash).
func WorkshopExamples() ([]types.Example, error) {
	decision, err := builders.Call("call_1", "bash", map[string]any{
		"command":     `workshop decision "Use PostgreSQL instead of MongoDB" -r "Better support for complex queries and transactions"`,
		"description": "Record architecture decision",
	})
	if err != nil {
		return nil, err
	}
	recordDecision, err := builders.SingleToolUse("workshop",
		"Remember that we decided to use PostgreSQL instead of MongoDB",
		"I'll record this architectural decision.",
		decision,
		"Decision recorded successfully",
		"Recorded the decision to use PostgreSQL with reasoning about query and transaction support.",
	)
	if err != nil {
		return nil, err
	}

	note, err := builders.Call("call_1", "bash", map[string]any{
		"command":     `workshop note "Rate limiter config lives in config/limits.yml, not env vars"`,
		"description": "Record project note",
	})
	if err != nil {
		return nil, err
	}
	recordNote, err := builders.SingleToolUse("workshop",
		"Make a note that the rate limiter config lives in config/limits.yml",
		"I'll save that as a project note.",
		note,
		"Note recorded successfully",
		"Noted: the rate limiter configuration lives in config/limits.yml rather than environment variables.",
	)
	if err != nil {
		return nil, err
	}

	return []types.Example{recordDecision, recordNote}, nil
}
