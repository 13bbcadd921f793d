// Package cli provides the command-line interface for rclint.
package cli

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/leapstack-labs/rclint/internal/cli/commands"
	"github.com/leapstack-labs/rclint/internal/cli/config"
	"github.com/leapstack-labs/rclint/internal/cli/output"
	"github.com/leapstack-labs/rclint/pkg/lint"
	"github.com/spf13/cobra"
)

var cfgFile string

// Version information (set at build time).
var (
	Version   = "0.1.0"
	BuildDate = "unknown"
	GitCommit = "unknown"
)

// configKey is used to store config in context.
type configKey struct{}

// rendererKey is used to store renderer in context.
type rendererKey struct{}

// NewRootCmd creates and returns the root command.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "rclint [flags] file...",
		Short: "rclint - style checker for rc.d scripts",
		Long: `rclint checks FreeBSD rc.d scripts against the conventions of the
Porter's Handbook and rc.subr(8).

Pass the scripts to check, or . to check every script listed in USE_RC_SUBR
of the port's Makefile (files/<name>.in). The run stops after a fatal defect
or once more than 10 problems were reported, unless -k is given.`,
		Example: `  # Check a port's scripts
  rclint .

  # Check base system scripts with explanations
  rclint -b -v /etc/rc.d/sshd

  # Report everything as JSON
  rclint -k -o json files/foo.in`,
		Version: Version,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			// Skip config loading for help and completion commands
			if cmd.Name() == "help" || cmd.Name() == "completion" || cmd.Name() == "__complete" {
				return nil
			}

			cfg, err := config.LoadConfig(cfgFile, cmd.Root().PersistentFlags())
			if err != nil {
				return err
			}

			logger := config.NewLogger(cmd.ErrOrStderr(), cfg.Verbosity)
			if f := config.GetConfigFileUsed(); f != "" {
				logger.Debug("using config file", slog.String("path", f))
			}

			mode, err := output.ParseMode(cfg.Output)
			if err != nil {
				return err
			}

			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}
			ctx = context.WithValue(ctx, configKey{}, cfg)
			ctx = context.WithValue(ctx, config.LoggerKey(), logger)
			ctx = context.WithValue(ctx, rendererKey{}, output.NewRenderer(cmd.OutOrStdout(), cmd.ErrOrStderr(), mode))
			cmd.SetContext(ctx)

			return nil
		},
		Args:          cobra.ArbitraryArgs,
		RunE:          commands.RunCheck,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.SetVersionTemplate(fmt.Sprintf("{{.Name}} {{.Version}}\ncommit %s, built %s\n", GitCommit, BuildDate))

	// Global persistent flags
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&cfgFile, "config", "", "config file (default: ./rclint.yaml)")
	pf.String("language", config.DefaultLanguage, "Message catalog language")
	pf.CountP("verbose", "v", "Explain each problem (-vv adds debug logging)")
	pf.BoolP("base", "b", false, "Check base system scripts")
	pf.BoolP("ports", "p", false, "Check ports scripts (default)")
	pf.BoolP("keep-going", "k", false, "Do not stop after 10 problems")
	pf.String("data-dir", "", "Directory holding errors.<language> catalogs (default: built in)")
	pf.StringP("output", "o", "", "Output format (auto|text|markdown|json)")
	pf.StringSlice("disable", nil, "Rule IDs to skip")
	rootCmd.MarkFlagsMutuallyExclusive("base", "ports")

	_ = rootCmd.RegisterFlagCompletionFunc("output", func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
		return output.Modes, cobra.ShellCompDirectiveNoFileComp
	})
	_ = rootCmd.RegisterFlagCompletionFunc("disable", func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
		var ids []string
		for _, r := range lint.GetAll() {
			ids = append(ids, r.ID)
		}
		return ids, cobra.ShellCompDirectiveNoFileComp
	})

	rootCmd.AddCommand(commands.NewVersionCommand(Version))
	rootCmd.AddCommand(commands.NewRulesCommand())
	rootCmd.AddCommand(NewCompletionCommand())

	return rootCmd
}

// Execute runs the root command. Aborted runs have already reported why,
// so only other errors are printed.
func Execute() error {
	rootCmd := NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		if !lint.IsAbort(err) {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		return err
	}
	return nil
}

// GetConfig retrieves the config from the command context.
func GetConfig(ctx context.Context) *config.Config {
	if c, ok := ctx.Value(configKey{}).(*config.Config); ok {
		return c
	}
	return config.Default()
}

// GetRenderer retrieves the renderer from the command context.
func GetRenderer(ctx context.Context) *output.Renderer {
	if r, ok := ctx.Value(rendererKey{}).(*output.Renderer); ok {
		return r
	}
	return output.NewRenderer(os.Stdout, os.Stderr, output.ModeAuto)
}

// NewCompletionCommand creates the completion command.
func NewCompletionCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "completion [bash|zsh|fish|powershell]",
		Short: "Generate shell completion scripts",
		Long: `Generate shell completion scripts for rclint.

To load completions:

Bash:
  $ source <(rclint completion bash)

  # To load completions for each session, execute once:
  $ rclint completion bash > /usr/local/etc/bash_completion.d/rclint

Zsh:
  # If shell completion is not already enabled in your environment,
  # you will need to enable it. Execute the following once:
  $ echo "autoload -U compinit; compinit" >> ~/.zshrc

  # To load completions for each session, execute once:
  $ rclint completion zsh > "${fpath[1]}/_rclint"

Fish:
  $ rclint completion fish | source

  # To load completions for each session, execute once:
  $ rclint completion fish > ~/.config/fish/completions/rclint.fish

PowerShell:
  PS> rclint completion powershell | Out-String | Invoke-Expression
`,
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			switch args[0] {
			case "bash":
				return cmd.Root().GenBashCompletion(out)
			case "zsh":
				return cmd.Root().GenZshCompletion(out)
			case "fish":
				return cmd.Root().GenFishCompletion(out, true)
			case "powershell":
				return cmd.Root().GenPowerShellCompletionWithDesc(out)
			}
			return nil
		},
	}
	return cmd
}
