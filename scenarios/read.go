package scenarios

import (
	"github.com/synthia-dev/datasetforge/builders"
	"github.com/synthia-dev/datasetforge/types"
)

// readScenario expands into a conversation where the assistant reads one
// file and summarizes it.
type readScenario struct {
	request   string
	announce  string
	filePath  string
	limit     int
	content   string
	summary   string
}

var readScenarios = []readScenario{
	{
		request:  "What's in the config file?",
		announce: "I'll read the config file for you.",
		filePath: "/app/config.json",
		content:  "{\n  \"port\": 3000,\n  \"database\": {\n    \"host\": \"localhost\",\n    \"port\": 5432,\n    \"name\": \"mydb\"\n  },\n  \"logging\": {\n    \"level\": \"info\"\n  }\n}",
		summary:  "The config file shows:\n- Server running on port 3000\n- Database: localhost:5432 (mydb)\n- Logging level: info",
	},
	{
		request:  "Show me the main app file",
		announce: "I'll read the main application file.",
		filePath: "/app/main.py",
		content:  "from flask import Flask, jsonify\nfrom database import db\n\napp = Flask(__name__)\napp.config.from_file(\"config.json\", load=json.load)\n\n@app.route(\"/health\")\ndef health():\n    return jsonify({\"status\": \"ok\"})\n\nif __name__ == \"__main__\":\n    app.run(port=3000)",
		summary:  "The main app file is a Flask application with:\n- Config loaded from config.json\n- A /health endpoint that returns status\n- Server running on port 3000",
	},
	{
		request:  "What dependencies are installed?",
		announce: "I'll check the package.json file.",
		filePath: "/app/package.json",
		content:  "{\n  \"name\": \"my-app\",\n  \"version\": \"1.0.0\",\n  \"dependencies\": {\n    \"express\": \"^4.18.2\",\n    \"mongoose\": \"^8.0.3\",\n    \"dotenv\": \"^16.3.1\"\n  },\n  \"devDependencies\": {\n    \"jest\": \"^29.7.0\",\n    \"eslint\": \"^8.55.0\"\n  }\n}",
		summary:  "Dependencies:\n- express: ^4.18.2 (web framework)\n- mongoose: ^8.0.3 (MongoDB ODM)\n- dotenv: ^16.3.1 (environment variables)\n\nDev dependencies:\n- jest: ^29.7.0 (testing)\n- eslint: ^8.55.0 (linting)",
	},
	{
		request:  "Look at the README",
		announce: "I'll read the README file.",
		filePath: "/app/README.md",
		content:  "# My Project\n\nA web application for managing tasks.\n\n## Installation\n\n```bash\nnpm install\n```\n\n## Usage\n\n```bash\nnpm start\n```\n\n## Testing\n\n```bash\nnpm test\n```",
		summary:  "This is a task management web application. Setup:\n1. Install: `npm install`\n2. Run: `npm start`\n3. Test: `npm test`",
	},
	{
		request:  "Check the error that occurred",
		announce: "Let me read the error log file.",
		filePath: "/var/log/app/error.log",
		limit:    50,
		content:  "[2024-01-15 10:23:45] ERROR: Database connection failed\n[2024-01-15 10:23:45] ERROR: ECONNREFUSED 127.0.0.1:5432\n[2024-01-15 10:24:12] ERROR: Retry attempt 1 failed\n[2024-01-15 10:24:22] ERROR: Retry attempt 2 failed",
		summary:  "The error log shows database connection failures. The app can't connect to PostgreSQL on localhost:5432. The database service might be down or not started yet.",
	},
}

// ReadExamples produces the read tool-use corpus.
func ReadExamples() ([]types.Example, error) {
	examples := make([]types.Example, 0, len(readScenarios))
	for _, sc := range readScenarios {
		args := map[string]any{"file_path": sc.filePath}
		if sc.limit > 0 {
			args["limit"] = sc.limit
		}
		call, err := builders.Call("call_1", "read", args)
		if err != nil {
			return nil, err
		}
		ex, err := builders.SingleToolUse("read", sc.request, sc.announce, call, sc.content, sc.summary)
		if err != nil {
			return nil, err
		}
		examples = append(examples, ex)
	}
	return examples, nil
}
