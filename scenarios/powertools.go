package scenarios

import (
	"github.com/synthia-dev/datasetforge/builders"
	"github.com/synthia-dev/datasetforge/types"
)

// PowertoolsExamples produces examples for the code-navigation MCP tools.
func PowertoolsExamples() ([]types.Example, error) {
	gotoDef, err := builders.Call("call_1", "mcp__powertools__goto_definition", map[string]any{
		"location": "src/app.ts:42:10",
	})
	if err != nil {
		return nil, err
	}
	definition, err := builders.SingleToolUse("powertools",
		"Where is the fetchUser function defined?",
		"I'll use goto_definition to find where fetchUser is defined.",
		gotoDef,
		`{"file": "src/api/users.ts", "line": 15, "column": 17, "symbol": "fetchUser"}`,
		"The fetchUser function is defined at:\nsrc/api/users.ts:15:17",
	)
	if err != nil {
		return nil, err
	}

	findRefs, err := builders.Call("call_1", "mcp__powertools__find_references", map[string]any{
		"symbol": "User",
		"limit":  100,
	})
	if err != nil {
		return nil, err
	}
	references, err := builders.SingleToolUse("powertools",
		"Find all places where the User model is used",
		"I'll search for all references to the User model.",
		findRefs,
		`{"count": 12, "has_more": false, "references": [{"file": "src/models/User.ts", "line": 5, "column": 14}, {"file": "src/api/auth.ts", "line": 23, "column": 18}, {"file": "src/api/users.ts", "line": 8, "column": 20}]}`,
		"Found 12 references to User model:\n- src/models/User.ts:5 (definition)\n- src/api/auth.ts:23 (usage)\n- src/api/users.ts:8 (import)\n- ...and 9 more locations",
	)
	if err != nil {
		return nil, err
	}

	return []types.Example{definition, references}, nil
}
