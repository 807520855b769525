package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"github.com/zen-systems/tiergate/pkg/adapter"
	"github.com/zen-systems/tiergate/pkg/classify"
	"github.com/zen-systems/tiergate/pkg/config"
	"github.com/zen-systems/tiergate/pkg/router"
)

var (
	configFile  string
	adapterFlag string
	modelFlag   string
	debugFlag   bool
	aliases     *config.ModelAliases
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "tiergate",
		Short: "Prompt complexity classifier and LLM router",
		Long: `Tiergate scores prompts on weighted complexity dimensions, maps the
	score to a tier (SIMPLE, MEDIUM, COMPLEX, REASONING), and routes each
	prompt to the configured LLM provider for its tier.`,
	}

	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "path to routing config file")
	rootCmd.PersistentFlags().BoolVar(&debugFlag, "debug", false, "log routing decisions to stderr")

	rootCmd.AddCommand(classifyCmd())
	rootCmd.AddCommand(askCmd())
	rootCmd.AddCommand(routesCmd())
	rootCmd.AddCommand(modelsCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func classifyCmd() *cobra.Command {
	var systemPrompt string
	var jsonFlag bool

	cmd := &cobra.Command{
		Use:   "classify [prompt]",
		Short: "Classify a prompt without sending it anywhere",
		Long: `Scores the prompt and prints the tier, confidence, and the signals
	that contributed. Reads the prompt from stdin when no argument is given.

	Use --json for machine-readable output including the routing decision.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			prompt, err := promptFromArgsOrStdin(args)
			if err != nil {
				return err
			}

			cfg, err := loadConfig()
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}

			scorer := cfg.RoutingConfig.Scorer.ScorerConfig()
			result := classify.Classify(prompt, systemPrompt, &scorer)

			if jsonFlag {
				target := cfg.RoutingConfig.TierTarget(result.Tier)
				out := struct {
					classify.Result
					Adapter string `json:"adapter"`
					Model   string `json:"model"`
				}{result, target.Adapter, target.Model}
				data, err := json.MarshalIndent(out, "", "  ")
				if err != nil {
					return err
				}
				fmt.Println(string(data))
				return nil
			}

			fmt.Println(result.String())
			return nil
		},
	}

	cmd.Flags().StringVar(&systemPrompt, "system", "", "system prompt to include in scoring")
	cmd.Flags().BoolVar(&jsonFlag, "json", false, "emit the full result as JSON")

	return cmd
}

func askCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "ask [prompt]",
		Short: "Classify a prompt and send it to the routed LLM",
		Long: `Routes the prompt based on its classified complexity tier, or use
	--adapter and --model to bypass routing entirely.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			prompt := args[0]

			cfg, err := loadConfig()
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}

			adapters, err := createAdapters(cfg)
			if err != nil {
				return fmt.Errorf("failed to create adapters: %w", err)
			}

			r := router.New(adapters, cfg.RoutingConfig,
				router.WithAliases(aliases), router.WithDebug(debugFlag))

			if adapterFlag != "" {
				return askDirect(cmd.Context(), r, prompt)
			}

			resp, decision, err := r.Send(context.Background(), prompt, "")
			if err != nil {
				return err
			}

			fmt.Fprintf(os.Stderr, "Routed to %s/%s\n", decision.Adapter, decision.Model)
			fmt.Println(resp.Content)
			return nil
		},
	}

	cmd.Flags().StringVar(&adapterFlag, "adapter", "", "override adapter (anthropic, openai, google, deepseek, mock)")
	cmd.Flags().StringVar(&modelFlag, "model", "", "override model")

	return cmd
}

// askDirect bypasses classification and sends the prompt to the named adapter.
func askDirect(ctx context.Context, r *router.Router, prompt string) error {
	a, ok := r.GetAdapter(adapterFlag)
	if !ok {
		return fmt.Errorf("adapter %q not available", adapterFlag)
	}

	model := modelFlag
	if model != "" {
		if aliases != nil {
			model = aliases.Resolve(model)
		}
	} else if models := a.Models(); len(models) > 0 {
		model = models[0]
	}

	fmt.Fprintf(os.Stderr, "Sending to %s/%s\n", a.Name(), model)

	resp, err := a.Generate(ctx, model, prompt)
	if err != nil {
		return err
	}
	fmt.Println(resp.Content)
	return nil
}

func routesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "routes",
		Short: "Show current routing rules",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}
			rc := cfg.RoutingConfig

			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "TIER\tADAPTER\tMODEL")

			for _, tier := range []classify.Tier{
				classify.TierSimple, classify.TierMedium,
				classify.TierComplex, classify.TierReasoning,
			} {
				target := rc.TierTarget(tier)
				fmt.Fprintf(w, "%s\t%s\t%s\n", tier, target.Adapter, target.Model)
			}

			if rc.Agentic != nil {
				fmt.Fprintf(w, "AGENTIC (>= %.2f)\t%s\t%s\n",
					rc.AgenticThreshold, rc.Agentic.Adapter, rc.Agentic.Model)
			}
			fmt.Fprintf(w, "DEFAULT\t%s\t%s\n", rc.Default.Adapter, rc.Default.Model)

			if len(rc.Pins) > 0 {
				fmt.Fprintln(w)
				fmt.Fprintln(w, "PIN TRIGGERS\tADAPTER\tMODEL")
				for _, pin := range rc.Pins {
					fmt.Fprintf(w, "%s\t%s\t%s\n",
						strings.Join(pin.Triggers, ", "), pin.Adapter, pin.Model)
				}
			}

			return w.Flush()
		},
	}
}

func modelsCmd() *cobra.Command {
	var resolveFlag bool
	var validateFlag bool

	cmd := &cobra.Command{
		Use:   "models",
		Short: "List available adapters, models, and aliases",
		Long: `Lists adapters and their available models.

	Use --resolve to show aliases and what they resolve to.
	Use --validate to check all models in routing.yaml resolve to valid models.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}

			if resolveFlag {
				return showAliases()
			}

			if validateFlag {
				return validateAliases(cfg)
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "PROVIDER\tMODELS\tSTATUS")

			providers := aliases.ListProviders()
			if len(providers) == 0 {
				providers = []string{"anthropic", "deepseek", "google", "openai", "mock"}
			}

			for _, provider := range providers {
				models := strings.Join(aliases.GetProviderModels(provider), ", ")
				status := "no key"
				if cfg.HasAdapter(provider) || provider == "mock" {
					status = "ready"
				}
				fmt.Fprintf(w, "%s\t%s\t%s\n", provider, models, status)
			}

			return w.Flush()
		},
	}

	cmd.Flags().BoolVar(&resolveFlag, "resolve", false, "show aliases and what they resolve to")
	cmd.Flags().BoolVar(&validateFlag, "validate", false, "check all models in routing.yaml resolve to valid models")

	return cmd
}

func showAliases() error {
	if aliases == nil {
		fmt.Println("No model aliases configured.")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ALIAS\tMODEL\tPROVIDER")

	aliasMap := aliases.ListAliases()
	var aliasNames []string
	for name := range aliasMap {
		aliasNames = append(aliasNames, name)
	}
	sort.Strings(aliasNames)

	for _, alias := range aliasNames {
		model := aliasMap[alias]
		provider := aliases.GetProviderForModel(model)
		fmt.Fprintf(w, "%s\t%s\t%s\n", alias, model, provider)
	}

	return w.Flush()
}

func validateAliases(cfg *config.Config) error {
	if aliases == nil {
		fmt.Println("No model aliases configured - nothing to validate.")
		return nil
	}

	errors := aliases.ValidateRoutingConfig(cfg.RoutingConfig)
	if len(errors) == 0 {
		fmt.Println("All models in routing.yaml are valid.")
		return nil
	}

	fmt.Fprintf(os.Stderr, "Found %d validation errors:\n", len(errors))
	for _, err := range errors {
		fmt.Fprintf(os.Stderr, "  - %s\n", err)
	}
	return fmt.Errorf("validation failed")
}

func promptFromArgsOrStdin(args []string) (string, error) {
	if len(args) > 0 {
		return args[0], nil
	}
	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		return "", fmt.Errorf("failed to read stdin: %w", err)
	}
	return strings.TrimSpace(string(data)), nil
}

func loadConfig() (*config.Config, error) {
	var cfg *config.Config
	var err error

	if configFile != "" {
		cfg, err = config.LoadWithRoutingFile(configFile)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		return nil, err
	}

	aliases, _ = config.LoadAliasesWithFallback("configs/models.yaml")

	return cfg, nil
}

func createAdapters(cfg *config.Config) (map[string]adapter.Adapter, error) {
	adapters := make(map[string]adapter.Adapter)

	if cfg.AnthropicAPIKey != "" {
		a, err := adapter.NewAnthropicAdapter(cfg.AnthropicAPIKey)
		if err != nil {
			return nil, fmt.Errorf("failed to create anthropic adapter: %w", err)
		}
		adapters["anthropic"] = a
	}

	if cfg.OpenAIAPIKey != "" {
		a, err := adapter.NewOpenAIAdapter(cfg.OpenAIAPIKey)
		if err != nil {
			return nil, fmt.Errorf("failed to create openai adapter: %w", err)
		}
		adapters["openai"] = a
	}

	if cfg.GoogleAPIKey != "" {
		a, err := adapter.NewGoogleAdapter(cfg.GoogleAPIKey)
		if err != nil {
			return nil, fmt.Errorf("failed to create google adapter: %w", err)
		}
		adapters["google"] = a
	}

	if cfg.DeepSeekAPIKey != "" {
		a, err := adapter.NewDeepSeekAdapter(cfg.DeepSeekAPIKey)
		if err != nil {
			return nil, fmt.Errorf("failed to create deepseek adapter: %w", err)
		}
		adapters["deepseek"] = a
	}

	adapters["mock"] = adapter.NewMockAdapter()

	return adapters, nil
}
