package scenarios

import (
	"fmt"
	"strings"

	"github.com/synthia-dev/datasetforge/builders"
	"github.com/synthia-dev/datasetforge/types"
)

// commandScenario is one (command, description, simulated output) triple
// expanded into a four-message tool-use example.
type commandScenario struct {
	command     string
	description string
	output      string
}

var bashCommands = []commandScenario{
	{"ls -la", "List directory contents", "total 48\ndrwxr-xr-x  8 user user 4096 Dec 15 10:00 .\ndrwxr-xr-x  3 user user 4096 Dec 14 09:00 ..\n-rw-r--r--  1 user user  245 Dec 15 10:00 README.md\n-rw-r--r--  1 user user 1234 Dec 15 09:30 app.py"},
	{"git log --oneline -5", "Show recent commits", "a1b2c3d feat: add new feature\nb2c3d4e fix: resolve bug\nc3d4e5f docs: update README\nd4e5f6a refactor: clean code\ne5f6a1b chore: update deps"},
	{"npm list --depth=0", "List npm packages", "project@1.0.0\n├── express@4.18.2\n├── lodash@4.17.21\n└── axios@1.6.0"},
	{"ps aux | grep node", "Find Node processes", "user     12345  2.5  1.2 1234567 123456 ?  Sl   10:00   0:15 node server.js"},
	{"tail -n 20 logs/error.log", "View recent error logs", "[2024-01-15 10:23:45] ERROR: Connection timeout\n[2024-01-15 10:24:12] ERROR: Invalid token"},
	{"curl -I https://api.example.com", "Check API status", "HTTP/2 200\ndate: Mon, 15 Jan 2024 10:00:00 GMT\ncontent-type: application/json"},
}

// CommandExample expands one command scenario into the canonical
// four-message shape: user request, assistant issuing a single bash call,
// the simulated tool result, and a closing assistant summary.
func CommandExample(command, description, output string) (types.Example, error) {
	call, err := builders.Call("call_1", "bash", map[string]any{
		"command":     command,
		"description": description,
	})
	if err != nil {
		return types.Example{}, err
	}
	return builders.SingleToolUse(
		"bash",
		fmt.Sprintf("Can you %s?", strings.ToLower(description)),
		fmt.Sprintf("I'll %s.", strings.ToLower(description)),
		call,
		output,
		"Here are the results.",
	)
}

// BashExamples produces the bash tool-use corpus: a set of hand-authored
// conversations plus the programmatic expansion of the command table.
func BashExamples() ([]types.Example, error) {
	var examples []types.Example

	handAuthored := []func() (types.Example, error){
		bashPortCheck,
		bashPythonVersion,
		bashRunTests,
		bashBuildSize,
		bashDockerList,
		bashInstallDeps,
		bashDiskUsage,
		bashLargeFiles,
		bashBuildAndRun,
	}
	for _, build := range handAuthored {
		ex, err := build()
		if err != nil {
			return nil, err
		}
		examples = append(examples, ex)
	}

	for _, sc := range bashCommands {
		ex, err := CommandExample(sc.command, sc.description, sc.output)
		if err != nil {
			return nil, err
		}
		examples = append(examples, ex)
	}

	return examples, nil
}

func bashPortCheck() (types.Example, error) {
	call, err := builders.Call("call_1", "bash", map[string]any{
		"command":     "lsof -i :3000",
		"description": "Check port 3000 usage",
	})
	if err != nil {
		return types.Example{}, err
	}
	return builders.SingleToolUse("bash",
		"Check if the server is running on port 3000",
		"I'll check what's running on port 3000.",
		call,
		"COMMAND   PID USER   FD   TYPE DEVICE SIZE/OFF NODE NAME\nnode    12345 user   20u  IPv4  0x123  0t0  TCP *:3000 (LISTEN)",
		"Yes, there's a Node.js server running on port 3000 (PID 12345).",
	)
}

func bashPythonVersion() (types.Example, error) {
	call, err := builders.Call("call_1", "bash", map[string]any{
		"command":     "python --version",
		"description": "Check Python version",
	})
	if err != nil {
		return types.Example{}, err
	}
	return builders.SingleToolUse("bash",
		"What Python version do we have?",
		"Let me check the Python version.",
		call,
		"Python 3.11.5",
		"You have Python 3.11.5 installed.",
	)
}

func bashRunTests() (types.Example, error) {
	call, err := builders.Call("call_1", "bash", map[string]any{
		"command":     "pytest tests/",
		"description": "Run pytest test suite",
	})
	if err != nil {
		return types.Example{}, err
	}
	return builders.SingleToolUse("bash",
		"Run the tests",
		"I'll run the test suite now.",
		call,
		"============================= test session starts ==============================\nplatform linux -- Python 3.11.5, pytest-7.4.0\ncollected 24 items\n\ntests/test_auth.py ....                                                  [ 16%]\ntests/test_api.py ..........                                             [ 58%]\ntests/test_utils.py ..........                                           [100%]\n\n============================== 24 passed in 2.31s ==============================",
		"All tests passed! 24 tests completed successfully in 2.31 seconds.",
	)
}

func bashBuildSize() (types.Example, error) {
	call, err := builders.Call("call_1", "bash", map[string]any{
		"command":     "du -sh build/",
		"description": "Get build directory size",
	})
	if err != nil {
		return types.Example{}, err
	}
	return builders.SingleToolUse("bash",
		"What's the size of the build directory?",
		"I'll check the build directory size.",
		call,
		"127M\tbuild/",
		"The build directory is 127 MB in size.",
	)
}

func bashDockerList() (types.Example, error) {
	call, err := builders.Call("call_1", "bash", map[string]any{
		"command":     "docker ps -a",
		"description": "List all Docker containers",
	})
	if err != nil {
		return types.Example{}, err
	}
	return builders.SingleToolUse("bash",
		"List all Docker containers",
		"I'll list all Docker containers.",
		call,
		"CONTAINER ID   IMAGE          COMMAND                  CREATED         STATUS         PORTS                    NAMES\n5a3d9e8c1f2b   postgres:15    \"docker-entrypoint.s…\"   2 days ago      Up 2 days      0.0.0.0:5432->5432/tcp   my-postgres\nc7b4f1a2e8d6   redis:7        \"docker-entrypoint.s…\"   3 days ago      Up 3 days      0.0.0.0:6379->6379/tcp   my-redis",
		"You have 2 Docker containers running:\n1. PostgreSQL 15 (my-postgres) - running for 2 days on port 5432\n2. Redis 7 (my-redis) - running for 3 days on port 6379",
	)
}

func bashInstallDeps() (types.Example, error) {
	call, err := builders.Call("call_1", "bash", map[string]any{
		"command":     "npm install",
		"description": "Install npm dependencies",
	})
	if err != nil {
		return types.Example{}, err
	}
	return builders.SingleToolUse("bash",
		"Install the dependencies",
		"I'll install the project dependencies using npm.",
		call,
		"added 342 packages, and audited 343 packages in 12s\n\n54 packages are looking for funding\n  run `npm fund` for details\n\nfound 0 vulnerabilities",
		"Dependencies installed successfully! Added 342 packages with no vulnerabilities found.",
	)
}

func bashDiskUsage() (types.Example, error) {
	call, err := builders.Call("call_1", "bash", map[string]any{
		"command":     "df -h",
		"description": "Check disk usage",
	})
	if err != nil {
		return types.Example{}, err
	}
	return builders.SingleToolUse("bash",
		"Check disk usage",
		"I'll check the disk usage.",
		call,
		"Filesystem      Size  Used Avail Use% Mounted on\n/dev/sda1       100G   45G   50G  48% /\n/dev/sdb1       500G  320G  155G  68% /home",
		"Disk usage:\n- Root partition (/): 45GB used out of 100GB (48%)\n- Home partition (/home): 320GB used out of 500GB (68%)",
	)
}

func bashLargeFiles() (types.Example, error) {
	call, err := builders.Call("call_1", "bash", map[string]any{
		"command":     `find . -type f -size +10M -exec ls -lh {} \; | sort -k5 -hr | head -10`,
		"description": "Find files larger than 10MB",
	})
	if err != nil {
		return types.Example{}, err
	}
	return builders.SingleToolUse("bash",
		"Find large files in the project",
		"I'll find the largest files in the project.",
		call,
		"-rw-r--r-- 1 user user 45M Dec 15 10:23 ./dist/bundle.js\n-rw-r--r-- 1 user user 32M Dec 14 09:15 ./data/training.csv\n-rw-r--r-- 1 user user 18M Dec 13 14:30 ./logs/app.log",
		"Found 3 large files:\n1. dist/bundle.js - 45 MB\n2. data/training.csv - 32 MB\n3. logs/app.log - 18 MB\n\nYou might want to review the bundle size and consider log rotation.",
	)
}

// bashBuildAndRun is a two-invocation conversation: build, then start the
// server in the background.
func bashBuildAndRun() (types.Example, error) {
	build, err := builders.Call("call_1", "bash", map[string]any{
		"command":     "npm run build",
		"description": "Build the project",
	})
	if err != nil {
		return types.Example{}, err
	}
	start, err := builders.Call("call_2", "bash", map[string]any{
		"command":           "npm start",
		"description":       "Start the server",
		"run_in_background": true,
	})
	if err != nil {
		return types.Example{}, err
	}
	return builders.NewConversation().
		User("Build and run the project").
		AssistantCall("I'll build the project first.", build).
		ToolResult("call_1", "bash", "> project@1.0.0 build\n> webpack --mode production\n\nHash: 5f8a3d2b1c9e4a7f\nVersion: webpack 5.88.2\nTime: 3245ms\nBuilt at: 2024-01-15 10:23:45\n  Asset      Size  Chunks             Chunk Names\nmain.js  245 KiB       0  [emitted]  main\n✔ webpack compiled successfully").
		AssistantCall("Build completed successfully! Now I'll start the server.", start).
		ToolResult("call_2", "bash", "> project@1.0.0 start\n> node dist/main.js\n\nServer listening on port 3000").
		Assistant("Project built and server started successfully on port 3000!").
		Build("bash")
}
