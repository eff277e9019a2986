package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/tmc/langchaingo/llms/openai"

	"github.com/BrainBlend-AI/atomic-tools/internal/agent"
	"github.com/BrainBlend-AI/atomic-tools/internal/governance"
	"github.com/BrainBlend-AI/atomic-tools/internal/observability"
	"github.com/BrainBlend-AI/atomic-tools/internal/store"
	"github.com/BrainBlend-AI/atomic-tools/pkg/config"
	"github.com/BrainBlend-AI/atomic-tools/tools"
)

const version = "v0.1.0"

const usage = `Usage: atomic-tools [-config path] <command>

Commands:
  list                 list the registered tools
  run <tool> <json>    execute one tool with a JSON input payload
  demo                 run the calculator through example expressions
  chat                 interactive agent REPL (requires an enabled provider)
  history              show recent tool runs
`

func main() {
	configPath := flag.String("config", "config.yaml", "path to the YAML config file")
	flag.Parse()

	args := flag.Args()
	if len(args) == 0 {
		fmt.Print(usage)
		os.Exit(2)
	}

	cfg := config.LoadConfig(*configPath)
	registry := buildRegistry(cfg)
	logger := observability.NewLogger()

	switch args[0] {
	case "list":
		cmdList(registry)
	case "run":
		cmdRun(cfg, registry, logger, args[1:])
	case "demo":
		cmdDemo(registry)
	case "chat":
		cmdChat(cfg, registry, logger)
	case "history":
		cmdHistory(cfg)
	default:
		fmt.Printf("unknown command %q\n\n%s", args[0], usage)
		os.Exit(2)
	}
}

func buildRegistry(cfg *config.Config) *tools.Registry {
	registry := tools.NewRegistry()

	registry.Register(tools.NewCalculatorTool(cfg.Tools.Calculator))
	registry.Register(tools.NewConverterTool(cfg.Tools.Converter))
	registry.Register(tools.NewScraperTool(cfg.Tools.Scraper))

	searchTool, err := tools.NewSearchTool(cfg.Tools.Search)
	if err != nil {
		log.Printf("Warning: Failed to initialize search tool: %v", err)
	} else {
		registry.Register(searchTool)
	}

	return registry
}

func cmdList(registry *tools.Registry) {
	list := registry.List()
	observability.PrintBanner(version, len(list))
	for _, t := range list {
		fmt.Printf("  %-18s %s\n", t.Name(), t.Description())
	}
}

func cmdRun(cfg *config.Config, registry *tools.Registry, logger *observability.Logger, args []string) {
	if len(args) != 2 {
		fmt.Print(usage)
		os.Exit(2)
	}
	name, input := args[0], args[1]

	tool := registry.Get(name)
	if tool == nil {
		log.Fatalf("unknown tool %q", name)
	}

	runs, err := store.NewRunStore(cfg.Memory.Path)
	if err != nil {
		log.Fatalf("failed to open run store: %v", err)
	}
	defer runs.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.LogToolCall("cli", name, input)
	start := time.Now()
	output, err := tool.Execute(ctx, input)
	duration := time.Since(start)

	errText := ""
	if err != nil {
		errText = err.Error()
		logger.LogToolError("cli", name, err)
	} else {
		logger.LogToolResult("cli", name, output, duration)
	}
	if serr := runs.AddRun(name, input, output, errText, duration); serr != nil {
		log.Printf("Warning: failed to record run: %v", serr)
	}

	if err != nil {
		log.Fatalf("tool failed: %v", err)
	}
	fmt.Println(output)
}

func cmdDemo(registry *tools.Registry) {
	calculator := registry.Get("calculator")

	examples := []string{
		"2 + 2",
		"sin(pi/2)",
		"e^2",
		"sqrt(16) + log(10)",
		"(3 + 4*I) * (2 - 3*I)",
	}

	fmt.Println("Calculator Tool Examples:")
	for _, expr := range examples {
		input := fmt.Sprintf(`{"expression": %q}`, expr)
		result, err := calculator.Execute(context.Background(), input)
		fmt.Printf("Expression: %s\n", expr)
		if err != nil {
			fmt.Printf("Error: %v\n\n", err)
			continue
		}
		fmt.Printf("Result: %s\n\n", result)
	}
}

func cmdChat(cfg *config.Config, registry *tools.Registry, logger *observability.Logger) {
	pName, pCfg := cfg.GetDefaultProvider()
	if pName == "" {
		log.Fatal("No enabled provider found in config")
	}

	opts := []openai.Option{
		openai.WithToken(pCfg.APIKey),
		openai.WithModel(pCfg.Model),
	}
	if pCfg.BaseURL != "" {
		opts = append(opts, openai.WithBaseURL(pCfg.BaseURL))
	}
	llm, err := openai.New(opts...)
	if err != nil {
		log.Fatal(err)
	}

	runs, err := store.NewRunStore(cfg.Memory.Path)
	if err != nil {
		log.Fatalf("failed to open run store: %v", err)
	}
	defer runs.Close()

	gov := governance.NewDefaultPolicyEngine()
	gov.LimitInputSize(64 * 1024)
	_ = gov.DenyArguments(`file://`)

	runner := agent.NewRunner(llm, registry, gov, logger, runs)

	observability.PrintBanner(version, len(registry.List()))
	fmt.Println("Type a question, or 'exit' to quit.")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			return
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if line == "exit" || line == "quit" {
			return
		}

		answer, err := runner.Run(ctx, line)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			continue
		}
		fmt.Println(answer)
	}
}

func cmdHistory(cfg *config.Config) {
	runs, err := store.NewRunStore(cfg.Memory.Path)
	if err != nil {
		log.Fatalf("failed to open run store: %v", err)
	}
	defer runs.Close()

	recent, err := runs.RecentRuns(20)
	if err != nil {
		log.Fatalf("failed to read run history: %v", err)
	}
	if len(recent) == 0 {
		fmt.Println("No recorded runs.")
		return
	}

	for _, r := range recent {
		status := "ok"
		if r.Error != "" {
			status = "error: " + r.Error
		}
		fmt.Printf("[%s] %s (%dms) %s -> %s\n", r.CreatedAt, r.Tool, r.DurationMs, r.Input, status)
	}
}
