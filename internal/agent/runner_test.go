package agent

import (
	"context"
	"strings"
	"testing"

	"github.com/tmc/langchaingo/llms"

	"github.com/BrainBlend-AI/atomic-tools/internal/governance"
	"github.com/BrainBlend-AI/atomic-tools/internal/observability"
	"github.com/BrainBlend-AI/atomic-tools/tools"
)

// fakeModel replays a scripted sequence of responses.
type fakeModel struct {
	responses []*llms.ContentResponse
	calls     int
	lastMsgs  []llms.MessageContent
}

func (f *fakeModel) GenerateContent(ctx context.Context, messages []llms.MessageContent, options ...llms.CallOption) (*llms.ContentResponse, error) {
	f.lastMsgs = messages
	resp := f.responses[f.calls]
	if f.calls < len(f.responses)-1 {
		f.calls++
	}
	return resp, nil
}

func (f *fakeModel) Call(ctx context.Context, prompt string, options ...llms.CallOption) (string, error) {
	return "", nil
}

func toolCallResponse(name, args string) *llms.ContentResponse {
	return &llms.ContentResponse{
		Choices: []*llms.ContentChoice{{
			ToolCalls: []llms.ToolCall{{
				ID:   "call-1",
				Type: "function",
				FunctionCall: &llms.FunctionCall{
					Name:      name,
					Arguments: args,
				},
			}},
		}},
	}
}

func textResponse(text string) *llms.ContentResponse {
	return &llms.ContentResponse{
		Choices: []*llms.ContentChoice{{Content: text}},
	}
}

func newTestRunner(model llms.Model) *Runner {
	registry := tools.NewRegistry()
	registry.Register(tools.NewCalculatorTool(tools.CalculatorConfig{}))
	return NewRunner(model, registry, governance.NewDefaultPolicyEngine(), observability.NewLogger(), nil)
}

func TestRunner_ExecutesToolAndAnswers(t *testing.T) {
	model := &fakeModel{responses: []*llms.ContentResponse{
		toolCallResponse("calculator", `{"expression": "2 + 2"}`),
		textResponse("The answer is 4."),
	}}
	runner := newTestRunner(model)

	answer, err := runner.Run(context.Background(), "what is 2 + 2?")
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if answer != "The answer is 4." {
		t.Errorf("Run = %q, want final answer", answer)
	}

	// The tool result must have been fed back to the model.
	var sawResult bool
	for _, msg := range model.lastMsgs {
		if msg.Role != llms.ChatMessageTypeTool {
			continue
		}
		for _, part := range msg.Parts {
			if resp, ok := part.(llms.ToolCallResponse); ok && strings.Contains(resp.Content, "4.00000000000000") {
				sawResult = true
			}
		}
	}
	if !sawResult {
		t.Error("tool result was not appended to the conversation")
	}
}

func TestRunner_DeniedToolReportsError(t *testing.T) {
	model := &fakeModel{responses: []*llms.ContentResponse{
		toolCallResponse("calculator", `{"expression": "2 + 2"}`),
		textResponse("done"),
	}}
	runner := newTestRunner(model)
	policy := governance.NewDefaultPolicyEngine()
	policy.DenyTool("calculator")
	runner.Policy = policy

	if _, err := runner.Run(context.Background(), "calculate"); err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	var sawDenial bool
	for _, msg := range model.lastMsgs {
		if msg.Role != llms.ChatMessageTypeTool {
			continue
		}
		for _, part := range msg.Parts {
			if resp, ok := part.(llms.ToolCallResponse); ok && strings.Contains(resp.Content, "restricted") {
				sawDenial = true
			}
		}
	}
	if !sawDenial {
		t.Error("policy denial was not surfaced to the model")
	}
}

func TestRunner_UnknownTool(t *testing.T) {
	model := &fakeModel{responses: []*llms.ContentResponse{
		toolCallResponse("no_such_tool", `{}`),
		textResponse("done"),
	}}
	runner := newTestRunner(model)

	if _, err := runner.Run(context.Background(), "hello"); err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	var sawError bool
	for _, msg := range model.lastMsgs {
		if msg.Role != llms.ChatMessageTypeTool {
			continue
		}
		for _, part := range msg.Parts {
			if resp, ok := part.(llms.ToolCallResponse); ok && strings.Contains(resp.Content, "not found") {
				sawError = true
			}
		}
	}
	if !sawError {
		t.Error("unknown tool error was not surfaced to the model")
	}
}
