package main

import (
	"context"
	"fmt"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"promptdeck/cmd/promptdeck/ui"
	"promptdeck/internal/api"
	"promptdeck/internal/builder"
	"promptdeck/internal/config"
	"promptdeck/internal/profile"
)

var (
	// Global flags
	verbose    bool
	cfgPath    string
	apiTimeout time.Duration

	// Logger
	logger *zap.Logger
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "promptdeck",
	Short: "promptdeck - терминальный каталог промптов",
	Long: `promptdeck is a terminal client for the prompt catalog: browse and
search cards, keep favorites, copy prompt texts, assemble your own prompt in
the constructor and check your account summary.

Run without arguments to start the interactive browser.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Interactive mode owns the terminal; route verbose logs to a file
		// instead of stderr.
		interactive := cmd.Use == "promptdeck" && cmd.CalledAs() == "promptdeck"

		zc := zap.NewProductionConfig()
		if verbose {
			zc.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		if interactive {
			if !verbose {
				logger = zap.NewNop()
				return nil
			}
			zc.OutputPaths = []string{"promptdeck.log"}
			zc.ErrorOutputPaths = []string{"promptdeck.log"}
		}
		var err error
		logger, err = zc.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, client, err := buildClient()
		if err != nil {
			return err
		}
		p := tea.NewProgram(ui.NewApp(cfg, client, logger), tea.WithAltScreen())
		_, err = p.Run()
		return err
	},
}

// listCmd prints the catalog without entering the interactive browser.
var listCmd = &cobra.Command{
	Use:   "list",
	Short: "Print the prompt catalog",
	RunE: func(cmd *cobra.Command, args []string) error {
		_, client, err := buildClient()
		if err != nil {
			return err
		}
		prompts, err := client.FetchPrompts(cmd.Context())
		if err != nil {
			return fmt.Errorf("fetch catalog: %w", err)
		}
		for _, p := range prompts {
			fmt.Printf("%4d  %-40s  %-16s  ♥ %-4d ⧉ %d\n",
				p.ID, p.Title, p.Category, p.Favorites, p.Copies)
		}
		return nil
	},
}

// profileCmd prints the viewer's account summary.
var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "Print the account summary",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, client, err := buildClient()
		if err != nil {
			return err
		}
		if !client.Authenticated() {
			return fmt.Errorf("no init data: set PROMPTDECK_INIT_DATA to authenticate")
		}
		p, err := client.FetchProfile(cmd.Context())
		if err != nil {
			return fmt.Errorf("fetch profile: %w", err)
		}
		p = profile.OrZero(p)

		fmt.Printf("Генераций:    %d (%s)\n", p.TotalGenerations, profile.SuccessHint(p))
		fmt.Printf("Успешность:   %d%%\n", profile.SuccessRate(p))
		fmt.Printf("Баланс:       %v (бонусы: %v)\n", p.Balance, p.BonusBalance)
		fmt.Printf("Рефералов:    %d\n", p.ReferralsCount)
		if link := profile.ReferralLink(cfg.UI.BotUsername, p); link != "" {
			fmt.Printf("Ссылка:       %s\n", link)
		}
		if reg := profile.FormatRegisteredAt(p.CreatedAt); reg != "" {
			fmt.Printf("Регистрация:  %s\n", reg)
		}
		return nil
	},
}

var (
	buildPose     string
	buildClothes  []string
	buildLocation []string
	buildTime     string
	buildLighting []string
)

// buildCmd assembles a prompt from the constructor groups and prints it.
var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Assemble a prompt from the constructor blocks",
	Long: `Assembles a photo prompt from the fixed constructor blocks and prints
the text that would be copied to the clipboard in the interactive mode.

Example:
  promptdeck build --pose "Сидит" --clothes "Худи" --clothes "Джинсовка" --time "Закат"`,
	RunE: func(cmd *cobra.Command, args []string) error {
		b := builder.New()
		for _, v := range []struct {
			key    string
			values []string
		}{
			{"pose", oneOrNone(buildPose)},
			{"clothes", buildClothes},
			{"location", buildLocation},
			{"time", oneOrNone(buildTime)},
			{"lighting", buildLighting},
		} {
			for _, value := range v.values {
				b.Select(v.key, value)
			}
		}

		text := b.Serialize()
		if text == "" {
			return fmt.Errorf("nothing selected: pass at least one block flag")
		}
		fmt.Println(text)
		logger.Debug("prompt assembled", zap.Int("progress_pct", b.Progress()))
		return nil
	},
}

// versionCmd prints the build version.
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("promptdeck %s\n", version)
	},
}

// version is stamped by the release build.
var version = "dev"

func oneOrNone(v string) []string {
	if v == "" {
		return nil
	}
	return []string{v}
}

// buildClient loads the configuration and constructs the gateway client.
func buildClient() (config.Config, *api.Client, error) {
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return cfg, nil, fmt.Errorf("load config: %w", err)
	}
	timeout := cfg.HTTPTimeout()
	if apiTimeout > 0 {
		timeout = apiTimeout
	}
	client := api.NewClient(api.Config{
		BaseURL:   cfg.API.BaseURL,
		BotPrefix: cfg.API.BotPrefix,
		Timeout:   timeout,
		PageLimit: cfg.API.PageLimit,
		InitData:  config.InitData(),
	}, logger)
	return cfg, client, nil
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVar(&cfgPath, "config", "promptdeck.yaml", "path to the config file")
	rootCmd.PersistentFlags().DurationVar(&apiTimeout, "timeout", 0, "override the gateway timeout")

	buildCmd.Flags().StringVar(&buildPose, "pose", "", "pose block (single choice)")
	buildCmd.Flags().StringArrayVar(&buildClothes, "clothes", nil, "clothes block (repeatable)")
	buildCmd.Flags().StringArrayVar(&buildLocation, "location", nil, "location block (repeatable)")
	buildCmd.Flags().StringVar(&buildTime, "time", "", "time-of-day block (single choice)")
	buildCmd.Flags().StringArrayVar(&buildLighting, "lighting", nil, "lighting block (repeatable)")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(profileCmd)
	rootCmd.AddCommand(buildCmd)
	rootCmd.AddCommand(versionCmd)
}

func main() {
	ctx := context.Background()
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
