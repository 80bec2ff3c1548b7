package scenarios

import (
	"github.com/synthia-dev/datasetforge/builders"
	"github.com/synthia-dev/datasetforge/types"
)

var gitScenarios = []struct {
	request  string
	announce string
	command  string
	desc     string
	output   string
	summary  string
}{
	{
		request:  "Check the git status",
		announce: "I'll check the git status.",
		command:  "git status",
		desc:     "Check git status",
		output:   "On branch main\nYour branch is up to date with 'origin/main'.\n\nChanges not staged for commit:\n  modified:   src/app.js\n  modified:   src/utils.js\n\nUntracked files:\n  src/new-feature.js",
		summary:  "Git status:\n- Branch: main (up to date)\n- Modified: src/app.js, src/utils.js\n- New file: src/new-feature.js",
	},
	{
		request:  "Show me the recent commits",
		announce: "I'll show the recent commit history.",
		command:  "git log --oneline -10",
		desc:     "Show recent commits",
		output:   "a1b2c3d feat: add user authentication\nb2c3d4e fix: resolve database connection issue\nc3d4e5f docs: update API documentation\nd4e5f6a refactor: improve error handling\ne5f6a1b chore: update dependencies",
		summary:  "Recent commits:\n1. feat: add user authentication\n2. fix: resolve database connection issue\n3. docs: update API documentation\n4. refactor: improve error handling\n5. chore: update dependencies",
	},
	{
		request:  "What changed in the last commit?",
		announce: "I'll show the last commit's diff.",
		command:  "git show --stat HEAD",
		desc:     "Show last commit stats",
		output:   "commit a1b2c3d (HEAD -> main)\nAuthor: Dev <dev@example.com>\nDate:   Mon Jan 15 10:00:00 2024\n\n    feat: add user authentication\n\n src/auth.js       | 85 +++++++++++++++++++++\n src/routes.js     | 12 +++-\n tests/auth.test.js | 44 ++++++++++++\n 3 files changed, 139 insertions(+), 2 deletions(-)",
		summary:  "The last commit added user authentication: a new src/auth.js (85 lines), route wiring in src/routes.js, and 44 lines of tests.",
	},
}

// GitExamples produces git workflow examples. Git operations go through the
// bash tool, matching how the assistant runs them in practice.
func GitExamples() ([]types.Example, error) {
	examples := make([]types.Example, 0, len(gitScenarios))
	for _, sc := range gitScenarios {
		call, err := builders.Call("call_1", "bash", map[string]any{
			"command":     sc.command,
			"description": sc.desc,
		})
		if err != nil {
			return nil, err
		}
		ex, err := builders.SingleToolUse("git", sc.request, sc.announce, call, sc.output, sc.summary)
		if err != nil {
			return nil, err
		}
		examples = append(examples, ex)
	}
	return examples, nil
}
