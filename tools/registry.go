package tools

import (
	"context"

	"github.com/firebase/genkit/go/ai"

	"github.com/atmoshq/weatherdesk/errs"
)

// Executor runs one tool invocation from raw map arguments.
type Executor func(ctx context.Context, args map[string]interface{}) (interface{}, error)

// Registry holds the tools exposed to a calling agent runtime, keeping
// the genkit definitions and the map-args execution path side by side.
type Registry struct {
	tools     []ai.Tool
	executors map[string]Executor
}

func NewRegistry() *Registry {
	return &Registry{
		executors: make(map[string]Executor),
	}
}

// Register records a defined tool together with its executor.
func (r *Registry) Register(tool ai.Tool, executor Executor) {
	r.tools = append(r.tools, tool)
	r.executors[tool.Definition().Name] = executor
}

// GetTools returns all registered tools.
func (r *Registry) GetTools() []ai.Tool {
	return r.tools
}

// ExecuteTool runs a registered tool by name. An unregistered name is an
// InvalidParameters failure, same as an unknown tool at the dispatcher.
func (r *Registry) ExecuteTool(ctx context.Context, name string, args map[string]interface{}) (interface{}, error) {
	executor, ok := r.executors[name]
	if !ok {
		return nil, errs.Newf(errs.InvalidParameters, "tool not found: %s", name)
	}
	return executor(ctx, args)
}
