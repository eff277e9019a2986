package governance

import (
	"context"
	"strings"
	"testing"
)

func TestDefaultPolicyEngine_Evaluate(t *testing.T) {
	engine := NewDefaultPolicyEngine()
	ctx := context.Background()

	// Test Allow (Default)
	req1 := Request{Tool: "calculator", Arguments: `{"expression": "2 + 2"}`}
	res1, err := engine.Evaluate(ctx, req1)
	if err != nil {
		t.Fatalf("Evaluate failed: %v", err)
	}
	if res1.Effect != EffectAllow {
		t.Errorf("Expected EffectAllow, got %s", res1.Effect)
	}

	// Test Deny by tool name
	engine.DenyTool("webpage_scraper")
	req2 := Request{Tool: "webpage_scraper"}
	res2, err := engine.Evaluate(ctx, req2)
	if err != nil {
		t.Fatalf("Evaluate failed: %v", err)
	}
	if res2.Effect != EffectDeny {
		t.Errorf("Expected EffectDeny, got %s", res2.Effect)
	}
}

func TestDefaultPolicyEngine_DenyArguments(t *testing.T) {
	engine := NewDefaultPolicyEngine()
	if err := engine.DenyArguments(`file://`); err != nil {
		t.Fatalf("DenyArguments failed: %v", err)
	}

	res, err := engine.Evaluate(context.Background(), Request{
		Tool:      "webpage_scraper",
		Arguments: `{"url": "file:///etc/passwd"}`,
	})
	if err != nil {
		t.Fatalf("Evaluate failed: %v", err)
	}
	if res.Effect != EffectDeny {
		t.Errorf("Expected EffectDeny for restricted pattern, got %s", res.Effect)
	}
}

func TestDefaultPolicyEngine_InputSizeLimit(t *testing.T) {
	engine := NewDefaultPolicyEngine()
	engine.LimitInputSize(64)

	res, err := engine.Evaluate(context.Background(), Request{
		Tool:      "calculator",
		Arguments: `{"expression": "` + strings.Repeat("1+", 100) + `1"}`,
	})
	if err != nil {
		t.Fatalf("Evaluate failed: %v", err)
	}
	if res.Effect != EffectDeny {
		t.Errorf("Expected EffectDeny for oversized input, got %s", res.Effect)
	}
}
