// Package main provides the CLI entrypoint for textmeter.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/verte-zerg/textmeter/internal/analyzer"
	"github.com/verte-zerg/textmeter/internal/config"
	"github.com/verte-zerg/textmeter/internal/model"
	"github.com/verte-zerg/textmeter/internal/report"
	"github.com/verte-zerg/textmeter/internal/store"
	"github.com/verte-zerg/textmeter/internal/tui"
)

const defaultCharLimit = 280

var errLimitExceeded = errors.New("character limit exceeded")

type analyzeFlags struct {
	excludeSpaces bool
	limit         int
}

func main() {
	rootCmd := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var flags analyzeFlags
	var theme string
	rootCmd := &cobra.Command{
		Use:           "textmeter",
		Short:         "Live text statistics in the terminal",
		SilenceUsage:  true,
		SilenceErrors: false,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runInteractive(cmd, flags, theme)
		},
	}
	addAnalyzeFlags(rootCmd, &flags)
	rootCmd.Flags().StringVar(&theme, "theme", "", "color theme for this run (dark|light)")

	rootCmd.AddCommand(newAnalyzeCmd())
	rootCmd.AddCommand(newThemeCmd())
	rootCmd.AddCommand(newConfigCmd())
	return rootCmd
}

func addAnalyzeFlags(cmd *cobra.Command, flags *analyzeFlags) {
	cmd.Flags().BoolVar(&flags.excludeSpaces, "exclude-spaces", false, "do not count whitespace characters")
	cmd.Flags().IntVar(&flags.limit, "limit", 0, "soft character limit (0 disables)")
}

// resolvedConfig is the analysis config plus whether the limit toggle starts on.
type resolvedConfig struct {
	model.AnalysisConfig
	LimitEnabled bool
}

// resolveAnalysisConfig merges the config file into flags that were not set
// explicitly on the command line. A non-positive limit means no limit.
func resolveAnalysisConfig(cmd *cobra.Command, flags analyzeFlags) (resolvedConfig, error) {
	fileCfg, err := config.LoadConfig(config.DefaultConfigPath())
	if err != nil {
		return resolvedConfig{}, fmt.Errorf("failed to load config: %w", err)
	}
	applyBoolConfig(cmd, "exclude-spaces", &flags.excludeSpaces, fileCfg.Analyze.ExcludeSpaces)

	limitEnabled := cmd.Flags().Changed("limit") && flags.limit > 0
	if !cmd.Flags().Changed("limit") && fileCfg.Analyze.LimitEnabled != nil && *fileCfg.Analyze.LimitEnabled {
		limitEnabled = true
		flags.limit = defaultCharLimit
		applyIntConfig(cmd, "limit", &flags.limit, fileCfg.Analyze.CharLimit)
	}
	if flags.limit < 0 {
		flags.limit = 0
	}
	return resolvedConfig{
		AnalysisConfig: model.AnalysisConfig{
			ExcludeSpaces:  flags.excludeSpaces,
			CharacterLimit: flags.limit,
		},
		LimitEnabled: limitEnabled,
	}, nil
}

func runInteractive(cmd *cobra.Command, flags analyzeFlags, themeOverride string) error {
	if themeOverride != "" && !model.ValidTheme(themeOverride) {
		return fmt.Errorf("--theme must be dark or light")
	}
	cfg, err := resolveAnalysisConfig(cmd, flags)
	if err != nil {
		return err
	}

	st, err := store.Open(config.DefaultDBPath())
	if err != nil {
		return fmt.Errorf("failed to open db: %w", err)
	}
	defer func() {
		if cerr := st.Close(); cerr != nil {
			logErrf("failed to close db: %v\n", cerr)
		}
	}()

	theme, err := st.Theme(context.Background())
	if err != nil {
		logErrf("failed to load theme: %v\n", err)
	}
	if themeOverride != "" {
		theme = model.ParseTheme(themeOverride)
	}

	opts := tui.Options{
		ExcludeSpaces: cfg.ExcludeSpaces,
		LimitEnabled:  cfg.LimitEnabled,
		Limit:         cfg.CharacterLimit,
		Theme:         theme,
	}
	program := tea.NewProgram(tui.NewModel(opts, st), tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("failed to run TUI: %w", err)
	}
	return nil
}

func newAnalyzeCmd() *cobra.Command {
	var flags analyzeFlags
	var asJSON, strict bool
	cmd := &cobra.Command{
		Use:   "analyze [file]",
		Short: "Analyze a file or stdin and print its statistics",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := resolveAnalysisConfig(cmd, flags)
			if err != nil {
				return err
			}
			path := ""
			if len(args) == 1 {
				path = args[0]
			}
			text, err := readInput(cmd.InOrStdin(), path)
			if err != nil {
				return err
			}
			metrics := analyzer.Analyze(text, cfg.AnalysisConfig)
			out := cmd.OutOrStdout()
			if asJSON {
				err = report.WriteJSON(out, metrics)
			} else {
				err = report.WriteText(out, metrics, report.Options{Limit: cfg.CharacterLimit})
			}
			if err != nil {
				return err
			}
			if strict && metrics.LimitExceeded {
				return errLimitExceeded
			}
			return nil
		},
	}
	addAnalyzeFlags(cmd, &flags)
	cmd.Flags().BoolVar(&asJSON, "json", false, "print metrics as JSON")
	cmd.Flags().BoolVar(&strict, "strict", false, "exit non-zero when the character limit is exceeded")
	return cmd
}

func readInput(stdin io.Reader, path string) (string, error) {
	if path != "" && path != "-" {
		data, err := os.ReadFile(path)
		if err != nil {
			return "", fmt.Errorf("failed to read %s: %w", path, err)
		}
		return string(data), nil
	}
	if file, ok := stdin.(*os.File); ok && term.IsTerminal(int(file.Fd())) {
		return "", fmt.Errorf("no input: pass a file or pipe text on stdin")
	}
	data, err := io.ReadAll(stdin)
	if err != nil {
		return "", fmt.Errorf("failed to read stdin: %w", err)
	}
	return string(data), nil
}

func newThemeCmd() *cobra.Command {
	return &cobra.Command{
		Use:       "theme [dark|light]",
		Short:     "Show or set the stored color theme",
		Args:      cobra.MaximumNArgs(1),
		ValidArgs: []string{string(model.ThemeDark), string(model.ThemeLight)},
		RunE:      runThemeCmd,
	}
}

func runThemeCmd(cmd *cobra.Command, args []string) error {
	if len(args) == 1 && !model.ValidTheme(args[0]) {
		return fmt.Errorf("unknown theme %q (available: dark, light)", args[0])
	}
	st, err := store.Open(config.DefaultDBPath())
	if err != nil {
		return fmt.Errorf("failed to open db: %w", err)
	}
	defer func() {
		if cerr := st.Close(); cerr != nil {
			logErrf("failed to close db: %v\n", cerr)
		}
	}()

	ctx := context.Background()
	if len(args) == 1 {
		if err := st.SetTheme(ctx, model.ParseTheme(args[0])); err != nil {
			return fmt.Errorf("failed to save theme: %w", err)
		}
	}
	theme, err := st.Theme(ctx)
	if err != nil {
		return fmt.Errorf("failed to load theme: %w", err)
	}
	if _, err := fmt.Fprintln(cmd.OutOrStdout(), theme); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}

func newConfigCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Create/open config file",
		Args:  cobra.NoArgs,
		RunE:  runConfigCmd,
	}
}

func runConfigCmd(_ *cobra.Command, _ []string) error {
	path := config.DefaultConfigPath()
	if err := ensureConfigFile(path); err != nil {
		return err
	}

	editor := strings.TrimSpace(os.Getenv("EDITOR"))
	if editor == "" {
		editor = "vi"
	}
	parts := strings.Fields(editor)
	if len(parts) == 0 {
		return fmt.Errorf("editor command is empty")
	}
	cmd := exec.Command(parts[0], append(parts[1:], path)...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("failed to open editor: %w", err)
	}
	return nil
}

func ensureConfigFile(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	if _, err := os.Stat(path); err != nil {
		if !os.IsNotExist(err) {
			return fmt.Errorf("failed to stat config: %w", err)
		}
		if err := os.WriteFile(path, []byte(defaultConfigTemplate()), 0o644); err != nil {
			return fmt.Errorf("failed to write config: %w", err)
		}
	}
	return nil
}

func applyIntConfig(cmd *cobra.Command, name string, target, value *int) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func applyBoolConfig(cmd *cobra.Command, name string, target, value *bool) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func defaultConfigTemplate() string {
	return fmt.Sprintf(`# textmeter configuration
# Uncomment a value to enable it. CLI flags override config values.

[analyze]
# exclude-spaces = false   # Do not count whitespace characters
# limit-enabled = false    # Warn when the text exceeds char-limit
# char-limit = %d         # Soft character limit
`, defaultCharLimit)
}

func logErrf(format string, args ...any) {
	if _, err := fmt.Fprintf(os.Stderr, format, args...); err != nil {
		// Best-effort logging to stderr.
		_ = err
	}
}
