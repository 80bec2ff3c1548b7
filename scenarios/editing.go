package scenarios

import (
	"github.com/synthia-dev/datasetforge/builders"
	"github.com/synthia-dev/datasetforge/types"
)

// EditingExamples produces the write/edit tool-use corpus.
func EditingExamples() ([]types.Example, error) {
	gitignore, err := editingGitignore()
	if err != nil {
		return nil, err
	}
	portUpdate, err := editingPortUpdate()
	if err != nil {
		return nil, err
	}
	return []types.Example{gitignore, portUpdate}, nil
}

func editingGitignore() (types.Example, error) {
	call, err := builders.Call("call_1", "write", map[string]any{
		"file_path": "/app/.gitignore",
		"content":   "# Dependencies\nnode_modules/\n\n# Environment\n.env\n.env.local\n\n# Logs\nlogs/\n*.log\n\n# Build\ndist/\nbuild/\n\n# IDE\n.vscode/\n.idea/\n\n# OS\n.DS_Store\nThumbs.db",
	})
	if err != nil {
		return types.Example{}, err
	}
	return builders.SingleToolUse("editing",
		"Create a .gitignore file",
		"I'll create a comprehensive .gitignore file.",
		call,
		"File written successfully",
		"Created .gitignore with common exclusions:\n- Dependencies (node_modules)\n- Environment files (.env)\n- Logs\n- Build artifacts\n- IDE settings\n- OS files",
	)
}

// editingPortUpdate is a read-then-edit conversation: inspect the file,
// then patch the value.
func editingPortUpdate() (types.Example, error) {
	read, err := builders.Call("call_1", "read", map[string]any{
		"file_path": "/app/config.json",
	})
	if err != nil {
		return types.Example{}, err
	}
	edit, err := builders.Call("call_2", "edit", map[string]any{
		"file_path":  "/app/config.json",
		"old_string": "  \"port\": 3000,",
		"new_string": "  \"port\": 8080,",
	})
	if err != nil {
		return types.Example{}, err
	}
	return builders.NewConversation().
		User("Update the port in the config").
		AssistantCall("Let me read the config first.", read).
		ToolResult("call_1", "read", "{\n  \"port\": 3000,\n  \"env\": \"development\"\n}").
		AssistantCall("I'll change the port from 3000 to 8080.", edit).
		ToolResult("call_2", "edit", "Edit successful").
		Assistant("Updated the port from 3000 to 8080 in the configuration.").
		Build("editing")
}
