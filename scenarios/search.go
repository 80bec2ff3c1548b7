package scenarios

import (
	"github.com/synthia-dev/datasetforge/builders"
	"github.com/synthia-dev/datasetforge/types"
)

// searchScenario covers grep and glob lookups.
type searchScenario struct {
	request  string
	announce string
	tool     string
	args     map[string]any
	result   string
	summary  string
}

var searchScenarios = []searchScenario{
	{
		request:  "Find all TODO comments in the codebase",
		announce: "I'll search for TODO comments.",
		tool:     "grep",
		args:     map[string]any{"pattern": "TODO", "output_mode": "content", "-n": true},
		result:   "src/main.py:45:    # TODO: optimize this function\nsrc/api.py:123:    # TODO: add error handling\nsrc/utils.py:67:    # TODO: refactor this logic",
		summary:  "Found 3 TODO comments:\n1. src/main.py:45 - optimize function\n2. src/api.py:123 - add error handling\n3. src/utils.py:67 - refactor logic",
	},
	{
		request:  "Where is the login function defined?",
		announce: "I'll search for the login function.",
		tool:     "grep",
		args:     map[string]any{"pattern": "def login|function login|const login", "output_mode": "content", "-n": true},
		result:   "src/auth.py:34:def login(username, password):\ntest/auth.test.js:12:  async function login(credentials) {",
		summary:  "Found the login function at:\n- src/auth.py:34 (main implementation)\n- test/auth.test.js:12 (test helper)",
	},
	{
		request:  "Find all Python files",
		announce: "I'll search for Python files.",
		tool:     "glob",
		args:     map[string]any{"pattern": "**/*.py"},
		result:   "src/main.py\nsrc/auth.py\nsrc/api.py\nsrc/utils.py\ntests/test_main.py\ntests/test_auth.py",
		summary:  "Found 6 Python files:\n- 4 in src/ (main, auth, api, utils)\n- 2 test files in tests/",
	},
	{
		request:  "List all TypeScript files",
		announce: "I'll find all TypeScript files.",
		tool:     "glob",
		args:     map[string]any{"pattern": "**/*.ts"},
		result:   "src/index.ts\nsrc/types.ts\nsrc/utils.ts\nsrc/api/client.ts\nsrc/api/types.ts",
		summary:  "Found 5 TypeScript files across src/ and src/api/.",
	},
}

// SearchExamples produces the grep/glob tool-use corpus.
func SearchExamples() ([]types.Example, error) {
	examples := make([]types.Example, 0, len(searchScenarios))
	for _, sc := range searchScenarios {
		call, err := builders.Call("call_1", sc.tool, sc.args)
		if err != nil {
			return nil, err
		}
		ex, err := builders.SingleToolUse("search", sc.request, sc.announce, call, sc.result, sc.summary)
		if err != nil {
			return nil, err
		}
		examples = append(examples, ex)
	}
	return examples, nil
}
