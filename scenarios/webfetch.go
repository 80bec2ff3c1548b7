package scenarios

import (
	"github.com/synthia-dev/datasetforge/builders"
	"github.com/synthia-dev/datasetforge/types"
)

// WebfetchExamples produces webfetch tool-use examples.
func WebfetchExamples() ([]types.Example, error) {
	releases, err := builders.Call("call_1", "webfetch", map[string]any{
		"url":    "https://github.com/microsoft/TypeScript/releases",
		"prompt": "What is the latest version and its release date?",
	})
	if err != nil {
		return nil, err
	}
	latest, err := builders.SingleToolUse("webfetch",
		"Check the latest TypeScript release",
		"I'll fetch the TypeScript releases page.",
		releases,
		"The latest version is TypeScript 5.3.3, released on January 10, 2024.",
		"Latest TypeScript version: 5.3.3 (released January 10, 2024)",
	)
	if err != nil {
		return nil, err
	}

	docs, err := builders.Call("call_1", "webfetch", map[string]any{
		"url":    "https://pkg.go.dev/encoding/json",
		"prompt": "How do I decode a stream of JSON values?",
	})
	if err != nil {
		return nil, err
	}
	decoder, err := builders.SingleToolUse("webfetch",
		"Look up how to decode a JSON stream in Go",
		"I'll check the encoding/json documentation.",
		docs,
		"Use json.NewDecoder around the reader and call Decode in a loop until io.EOF; each call consumes the next JSON value from the stream.",
		"Per the docs: wrap the reader with json.NewDecoder and call Decode in a loop until io.EOF. Each Decode consumes one value from the stream.",
	)
	if err != nil {
		return nil, err
	}

	return []types.Example{latest, decoder}, nil
}
