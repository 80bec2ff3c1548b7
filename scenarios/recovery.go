package scenarios

import (
	"fmt"

	"github.com/synthia-dev/datasetforge/builders"
	"github.com/synthia-dev/datasetforge/types"
)

// The recovery corpus teaches the model to analyze a tool failure and change
// strategy instead of blindly retrying. Each pattern is a fixed message
// shape expanded from a parameter table.

// packageManagerFailure: wrong package manager, discover the right one, retry.
type packageManagerFailure struct {
	userRequest    string
	wrongCommand   string
	wrongDesc      string
	errorOutput    string
	analysis       string
	discoveryArgs  map[string]any
	discoveryFound string
	fixCommand     string
	fixDesc        string
	fixOutput      string
	finalMessage   string
}

var packageManagerFailures = []packageManagerFailure{
	{
		userRequest:    "Install the dependencies for this Python project",
		wrongCommand:   "npm install",
		wrongDesc:      "Install npm dependencies",
		errorOutput:    "npm error code ENOENT\nnpm error syscall open\nnpm error enoent ENOENT: no such file or directory, open 'package.json'",
		analysis:       "The error shows npm is looking for package.json, but this is a Python project. I should check for Python dependency files instead.",
		discoveryArgs:  map[string]any{"pattern": "**/requirements.txt"},
		discoveryFound: "requirements.txt",
		fixCommand:     "pip install -r requirements.txt",
		fixDesc:        "Install Python dependencies",
		fixOutput:      "Successfully installed flask-2.0.3 requests-2.28.1 sqlalchemy-1.4.45",
		finalMessage:   "This is a Python project. I've installed the dependencies from requirements.txt successfully.",
	},
	{
		userRequest:    "Install project dependencies",
		wrongCommand:   "pip install -r requirements.txt",
		wrongDesc:      "Install Python dependencies",
		errorOutput:    "pip: error: No such file or directory: 'requirements.txt'",
		analysis:       "No requirements.txt found. Let me check for other package managers.",
		discoveryArgs:  map[string]any{"pattern": "**/package.json"},
		discoveryFound: "package.json",
		fixCommand:     "npm install",
		fixDesc:        "Install npm dependencies",
		fixOutput:      "added 342 packages in 12s",
		finalMessage:   "Found package.json - this is a Node.js project. Dependencies installed successfully.",
	},
	{
		userRequest:    "Install dependencies",
		wrongCommand:   "npm install",
		wrongDesc:      "Install npm dependencies",
		errorOutput:    "npm error code ENOENT\nnpm error syscall open\nnpm error enoent ENOENT: no such file or directory, open 'package.json'",
		analysis:       "No package.json. Let me check what type of project this is.",
		discoveryArgs:  map[string]any{"pattern": "**/Cargo.toml"},
		discoveryFound: "Cargo.toml",
		fixCommand:     "cargo build --release",
		fixDesc:        "Build Rust project",
		fixOutput:      "Compiling myproject v0.1.0\n    Finished release [optimized] target(s) in 23.45s",
		finalMessage:   "This is a Rust project. Built successfully with cargo.",
	},
	{
		userRequest:    "Install dependencies for this project",
		wrongCommand:   "pip install -r requirements.txt",
		wrongDesc:      "Install Python dependencies",
		errorOutput:    "pip: error: No such file or directory: 'requirements.txt'",
		analysis:       "No requirements.txt. Checking for Gemfile (Ruby project).",
		discoveryArgs:  map[string]any{"pattern": "**/Gemfile"},
		discoveryFound: "Gemfile",
		fixCommand:     "bundle install",
		fixDesc:        "Install Ruby gems",
		fixOutput:      "Fetching gem metadata from https://rubygems.org/\nBundle complete! 15 Gemfile dependencies, 42 gems now installed.",
		finalMessage:   "Found Gemfile - this is a Ruby project. Installed gems successfully.",
	},
}

func packageManagerExamples() ([]types.Example, error) {
	examples := make([]types.Example, 0, len(packageManagerFailures))
	for _, sc := range packageManagerFailures {
		wrong, err := builders.Call("call_1", "bash", map[string]any{
			"command":     sc.wrongCommand,
			"description": sc.wrongDesc,
		})
		if err != nil {
			return nil, err
		}
		discover, err := builders.Call("call_2", "glob", sc.discoveryArgs)
		if err != nil {
			return nil, err
		}
		fix, err := builders.Call("call_3", "bash", map[string]any{
			"command":     sc.fixCommand,
			"description": sc.fixDesc,
		})
		if err != nil {
			return nil, err
		}
		ex, err := builders.NewConversation().
			User(sc.userRequest).
			AssistantCall(fmt.Sprintf("I'll %s.", lowerFirst(sc.wrongDesc)), wrong).
			ToolResult("call_1", "bash", "stdout:\n\nstderr:\n"+sc.errorOutput).
			AssistantCall(sc.analysis, discover).
			ToolResult("call_2", "glob", sc.discoveryFound).
			AssistantCall(fmt.Sprintf("I'll use %s instead.", sc.fixCommand), fix).
			ToolResult("call_3", "bash", "stdout:\n"+sc.fixOutput+"\n\nstderr:\n").
			Assistant(sc.finalMessage).
			Build("recovery")
		if err != nil {
			return nil, err
		}
		examples = append(examples, ex)
	}
	return examples, nil
}

// fileNotFoundRecovery: wrong path, glob for candidates, read the right one.
type fileNotFoundRecovery struct {
	userRequest    string
	wrongPath      string
	errorMessage   string
	analysis       string
	discoveryArgs  map[string]any
	discoveryFound string
	correctPath    string
	fileContent    string
	finalMessage   string
}

var fileNotFoundRecoveries = []fileNotFoundRecovery{
	{
		userRequest:    "Show me the main application file",
		wrongPath:      "/app/main.py",
		errorMessage:   "File not found: /app/main.py",
		analysis:       "File doesn't exist at that path. Let me check what Python files are in the project.",
		discoveryArgs:  map[string]any{"pattern": "**/*.py"},
		discoveryFound: "src/app.py\nsrc/routes.py\nsrc/models.py",
		correctPath:    "src/app.py",
		fileContent:    "from flask import Flask\n\napp = Flask(__name__)\n\n@app.route('/')\ndef index():\n    return 'Hello World'\n\nif __name__ == '__main__':\n    app.run()",
		finalMessage:   "Found the main application file at src/app.py. It's a Flask application with a single index route.",
	},
	{
		userRequest:    "Read the configuration file",
		wrongPath:      "/app/config.json",
		errorMessage:   "File not found: /app/config.json",
		analysis:       "config.json not found. Let me search for configuration files.",
		discoveryArgs:  map[string]any{"pattern": "**/config.*"},
		discoveryFound: "config/settings.yml\nconfig/database.yml",
		correctPath:    "config/settings.yml",
		fileContent:    "app_name: MyApp\nport: 3000\ndebug: true",
		finalMessage:   "Found configuration at config/settings.yml instead of config.json. The app runs on port 3000 with debug enabled.",
	},
}

func fileNotFoundExamples() ([]types.Example, error) {
	examples := make([]types.Example, 0, len(fileNotFoundRecoveries))
	for _, sc := range fileNotFoundRecoveries {
		wrong, err := builders.Call("call_1", "read", map[string]any{"file_path": sc.wrongPath})
		if err != nil {
			return nil, err
		}
		discover, err := builders.Call("call_2", "glob", sc.discoveryArgs)
		if err != nil {
			return nil, err
		}
		retry, err := builders.Call("call_3", "read", map[string]any{"file_path": sc.correctPath})
		if err != nil {
			return nil, err
		}
		ex, err := builders.NewConversation().
			User(sc.userRequest).
			AssistantCall(fmt.Sprintf("I'll read %s.", sc.wrongPath), wrong).
			ToolResult("call_1", "read", sc.errorMessage).
			AssistantCall(sc.analysis, discover).
			ToolResult("call_2", "glob", sc.discoveryFound).
			AssistantCall(fmt.Sprintf("Let me read %s instead.", sc.correctPath), retry).
			ToolResult("call_3", "read", sc.fileContent).
			Assistant(sc.finalMessage).
			Build("recovery")
		if err != nil {
			return nil, err
		}
		examples = append(examples, ex)
	}
	return examples, nil
}

// commandRecovery covers both permission-denied and command-not-found: one
// failed command, one alternative command, no discovery step in between.
type commandRecovery struct {
	userRequest  string
	wrongCommand string
	errorOutput  string
	analysis     string
	fixCommand   string
	fixDesc      string
	fixOutput    string
	finalMessage string
}

var permissionDeniedRecoveries = []commandRecovery{
	{
		userRequest:  "Check system logs for errors",
		wrongCommand: "cat /var/log/syslog",
		errorOutput:  "cat: /var/log/syslog: Permission denied",
		analysis:     "Permission denied for direct file access. Let me try using journalctl instead.",
		fixCommand:   "journalctl -n 50 -p err",
		fixDesc:      "Check system journal for errors",
		fixOutput:    "-- Journal begins at Mon 2024-01-15 00:00:00 UTC --\nJan 15 10:23:45 server systemd[1]: Failed to start service.service",
		finalMessage: "Found recent error logs using journalctl: systemd failed to start a service at 10:23:45.",
	},
	{
		userRequest:  "Install a system package",
		wrongCommand: "apt-get install nginx",
		errorOutput:  "E: Could not open lock file /var/lib/dpkg/lock - open (13: Permission denied)\nE: Unable to lock the administration directory (/var/lib/dpkg/), are you root?",
		analysis:     "Need root permissions to install packages. I'll use sudo.",
		fixCommand:   "sudo apt-get install nginx",
		fixDesc:      "Install nginx with sudo",
		fixOutput:    "Reading package lists... Done\nBuilding dependency tree... Done\nnginx is already the newest version (1.18.0-6ubuntu14).",
		finalMessage: "nginx is already installed at version 1.18.0.",
	},
}

var commandNotFoundRecoveries = []commandRecovery{
	{
		userRequest:  "Check what's using port 8080",
		wrongCommand: "lsof -i :8080",
		errorOutput:  "bash: lsof: command not found",
		analysis:     "lsof not installed. I'll use netstat instead.",
		fixCommand:   "netstat -tulpn | grep :8080",
		fixDesc:      "Check port 8080 with netstat",
		fixOutput:    "tcp        0      0 0.0.0.0:8080            0.0.0.0:*               LISTEN      12345/node",
		finalMessage: "Port 8080 is being used by a Node.js process (PID 12345).",
	},
	{
		userRequest:  "Monitor system resources",
		wrongCommand: "htop",
		errorOutput:  "bash: htop: command not found",
		analysis:     "htop not available. I'll use top instead.",
		fixCommand:   "top -bn1 | head -20",
		fixDesc:      "Monitor resources with top",
		fixOutput:    "top - 10:23:45 up 5 days,  3:21,  2 users,  load average: 0.52, 0.58, 0.59\nTasks: 142 total,   1 running, 141 sleeping",
		finalMessage: "System is running normally with load average of 0.52. Using top output since htop isn't installed.",
	},
}

func commandRecoveryExamples(table []commandRecovery) ([]types.Example, error) {
	examples := make([]types.Example, 0, len(table))
	for _, sc := range table {
		wrong, err := builders.Call("call_1", "bash", map[string]any{
			"command":     sc.wrongCommand,
			"description": sc.userRequest,
		})
		if err != nil {
			return nil, err
		}
		fix, err := builders.Call("call_2", "bash", map[string]any{
			"command":     sc.fixCommand,
			"description": sc.fixDesc,
		})
		if err != nil {
			return nil, err
		}
		ex, err := builders.NewConversation().
			User(sc.userRequest).
			AssistantCall(fmt.Sprintf("I'll run %s.", sc.wrongCommand), wrong).
			ToolResult("call_1", "bash", "stdout:\n\nstderr:\n"+sc.errorOutput).
			AssistantCall(sc.analysis, fix).
			ToolResult("call_2", "bash", "stdout:\n"+sc.fixOutput+"\n\nstderr:\n").
			Assistant(sc.finalMessage).
			Build("recovery")
		if err != nil {
			return nil, err
		}
		examples = append(examples, ex)
	}
	return examples, nil
}

// RecoveryExamples produces the full failure-recovery corpus.
func RecoveryExamples() ([]types.Example, error) {
	var examples []types.Example

	pm, err := packageManagerExamples()
	if err != nil {
		return nil, err
	}
	examples = append(examples, pm...)

	fnf, err := fileNotFoundExamples()
	if err != nil {
		return nil, err
	}
	examples = append(examples, fnf...)

	perm, err := commandRecoveryExamples(permissionDeniedRecoveries)
	if err != nil {
		return nil, err
	}
	examples = append(examples, perm...)

	notFound, err := commandRecoveryExamples(commandNotFoundRecoveries)
	if err != nil {
		return nil, err
	}
	examples = append(examples, notFound...)

	return examples, nil
}

func lowerFirst(s string) string {
	if s == "" {
		return s
	}
	r := []rune(s)
	if r[0] >= 'A' && r[0] <= 'Z' {
		r[0] += 'a' - 'A'
	}
	return string(r)
}
