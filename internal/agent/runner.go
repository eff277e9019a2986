// Package agent drives the tool registry from an LLM. It exists so
// the CLI can demonstrate the tools end to end; the tools themselves
// have no dependency on it.
package agent

import (
	"context"
	"fmt"
	"time"

	"github.com/tmc/langchaingo/llms"

	"github.com/BrainBlend-AI/atomic-tools/internal/governance"
	"github.com/BrainBlend-AI/atomic-tools/internal/observability"
	"github.com/BrainBlend-AI/atomic-tools/internal/store"
	"github.com/BrainBlend-AI/atomic-tools/tools"
)

const systemPrompt = "You are a precise assistant with access to a set of tools. " +
	"Use the calculator tool for any arithmetic instead of computing yourself, " +
	"and report tool failures to the user rather than guessing a result."

// Runner is a ReAct loop: it sends the conversation and the tool
// definitions to the model, executes requested tool calls, feeds the
// results back, and stops when the model answers in plain text.
type Runner struct {
	Model    llms.Model
	Registry *tools.Registry
	Policy   governance.PolicyEngine
	Logger   *observability.Logger
	Runs     *store.RunStore // optional; nil disables run recording
	MaxSteps int
}

func NewRunner(model llms.Model, registry *tools.Registry, policy governance.PolicyEngine, logger *observability.Logger, runs *store.RunStore) *Runner {
	return &Runner{
		Model:    model,
		Registry: registry,
		Policy:   policy,
		Logger:   logger,
		Runs:     runs,
		MaxSteps: 10,
	}
}

// Run answers a single user input, invoking tools as the model
// requests them.
func (r *Runner) Run(ctx context.Context, input string) (string, error) {
	runID := fmt.Sprintf("run-%d", time.Now().UnixNano())

	messages := []llms.MessageContent{
		{
			Role:  llms.ChatMessageTypeSystem,
			Parts: []llms.ContentPart{llms.TextPart(systemPrompt)},
		},
		{
			Role:  llms.ChatMessageTypeHuman,
			Parts: []llms.ContentPart{llms.TextPart(input)},
		},
	}

	var llmTools []llms.Tool
	for _, t := range r.Registry.List() {
		llmTools = append(llmTools, llms.Tool{
			Type: "function",
			Function: &llms.FunctionDefinition{
				Name:        t.Name(),
				Description: t.Description(),
				Parameters:  t.Parameters(),
			},
		})
	}

	maxSteps := r.MaxSteps
	if maxSteps <= 0 {
		maxSteps = 10
	}

	for step := 0; step < maxSteps; step++ {
		resp, err := r.Model.GenerateContent(ctx, messages, llms.WithTools(llmTools))
		if err != nil {
			return "", err
		}

		choice := resp.Choices[0]
		r.Logger.LogLLM(runID, input, choice.Content, choice.ToolCalls)

		var assistantParts []llms.ContentPart
		if choice.Content != "" {
			assistantParts = append(assistantParts, llms.TextContent{Text: choice.Content})
		}
		for _, tc := range choice.ToolCalls {
			assistantParts = append(assistantParts, tc)
		}
		messages = append(messages, llms.MessageContent{
			Role:  llms.ChatMessageTypeAI,
			Parts: assistantParts,
		})

		// No tool calls means this is the final answer.
		if len(choice.ToolCalls) == 0 {
			return choice.Content, nil
		}

		for _, tc := range choice.ToolCalls {
			result := r.execTool(ctx, runID, tc.FunctionCall.Name, tc.FunctionCall.Arguments)
			messages = append(messages, llms.MessageContent{
				Role: llms.ChatMessageTypeTool,
				Parts: []llms.ContentPart{
					llms.ToolCallResponse{
						ToolCallID: tc.ID,
						Name:       tc.FunctionCall.Name,
						Content:    result,
					},
				},
			})
		}
	}

	return "", fmt.Errorf("no final answer after %d steps", maxSteps)
}

// execTool runs one tool call. Failures are returned as text so the
// model can see them and react; they are never silently dropped.
func (r *Runner) execTool(ctx context.Context, runID, name, args string) string {
	res, err := r.Policy.Evaluate(ctx, governance.Request{Tool: name, Arguments: args})
	if err != nil {
		return fmt.Sprintf("Error: policy evaluation failed: %v", err)
	}
	r.Logger.LogPolicyDecision(runID, name, string(res.Effect), res.Reason)
	if res.Effect == governance.EffectDeny {
		return fmt.Sprintf("Error: %s", res.Reason)
	}

	tool := r.Registry.Get(name)
	if tool == nil {
		return fmt.Sprintf("Error: Tool %s not found", name)
	}

	r.Logger.LogToolCall(runID, name, args)
	start := time.Now()
	output, err := tool.Execute(ctx, args)
	duration := time.Since(start)

	errText := ""
	if err != nil {
		errText = err.Error()
		r.Logger.LogToolError(runID, name, err)
	} else {
		r.Logger.LogToolResult(runID, name, output, duration)
	}

	if r.Runs != nil {
		if serr := r.Runs.AddRun(name, args, output, errText, duration); serr != nil {
			r.Logger.LogToolError(runID, name, fmt.Errorf("failed to record run: %v", serr))
		}
	}

	if err != nil {
		return fmt.Sprintf("Error: %v", err)
	}
	return output
}
