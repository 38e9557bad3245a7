package rgbbuild

import (
	"os"

	"github.com/spf13/cobra"

	"rgbsdk/internal/linkcfg"
)

// buildRootCmd constructs the Cobra command tree wired to the fn* actions.
func buildRootCmd(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:           "rgbbuild",
		Short:         "Build librgb and derive its link configuration",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Persistent flags -> config.Config
	root.PersistentFlags().String("config", "", "Path to a config file (defaults to rgbbuild.{yaml,yml,json,toml} in the working directory)")
	root.PersistentFlags().String("project", "", "librgb project directory (defaults RGBBUILD_PROJECT or ~/src/librgb)")
	root.PersistentFlags().String("lib-dir", "", "Staging root for shared libraries (defaults RGBBUILD_LIB_DIR or ./lib)")
	root.PersistentFlags().String("include-dir", "", "Staging directory for headers (defaults RGBBUILD_INCLUDE_DIR or ./include)")
	root.PersistentFlags().String("cargo", "", "Cargo binary to invoke (defaults RGBBUILD_CARGO or cargo)")
	root.PersistentFlags().String("log-level", "", "Log level: debug|info|warn|error (defaults RGBBUILD_LOG_LEVEL or info)")
	root.PersistentFlags().String("pushgateway", "", "Prometheus Pushgateway base URL; empty disables metrics push")
	root.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		a.invoked = true
		cfg, err := resolveConfig(cmd)
		if err != nil {
			return err
		}
		a.cfg = cfg
		a.log = newLogger(cfg.LogLevel)
		linkcfg.SetLogger(a.log)
		return nil
	}
	root.RunE = func(cmd *cobra.Command, args []string) error {
		_ = cmd.Help()
		return usageError{errCommandRequired}
	}

	provisionCmd := &cobra.Command{Use: "provision [mac|linux]", Short: "Build librgb and stage its artifacts", Example: "  rgbbuild provision\n  rgbbuild provision linux --project ~/src/librgb", Args: cobra.MaximumNArgs(1), RunE: func(cmd *cobra.Command, args []string) error {
		key, err := platformArg(args)
		if err != nil {
			return err
		}
		return fnProvision(cmd.Context(), a, key)
	}}
	root.AddCommand(provisionCmd)

	resolveCmd := &cobra.Command{Use: "resolve [mac|linux]", Short: "Print the link configuration for staged artifacts", Example: "  rgbbuild resolve\n  rgbbuild resolve mac --format json", Args: cobra.MaximumNArgs(1), RunE: func(cmd *cobra.Command, args []string) error {
		key, err := platformArg(args)
		if err != nil {
			return err
		}
		format, _ := cmd.Flags().GetString("format")
		return fnResolve(a, key, format, cmd.OutOrStdout())
	}}
	resolveCmd.Flags().String("format", "env", "Output format: env|cgo|json")
	root.AddCommand(resolveCmd)

	checkCmd := &cobra.Command{Use: "check [mac|linux]", Short: "Verify staged artifacts exist and the library loads", Args: cobra.MaximumNArgs(1), RunE: func(cmd *cobra.Command, args []string) error {
		key, err := platformArg(args)
		if err != nil {
			return err
		}
		return fnCheck(a, key)
	}}
	root.AddCommand(checkCmd)

	platformsCmd := &cobra.Command{Use: "platforms", Short: "List supported platforms and their staging state", Args: cobra.NoArgs, RunE: func(cmd *cobra.Command, args []string) error {
		return fnPlatforms(a, cmd.OutOrStdout())
	}}
	root.AddCommand(platformsCmd)

	// completion command
	completionCmd := &cobra.Command{Use: "completion", Short: "Generate the autocompletion script for the specified shell"}
	completionCmd.AddCommand(&cobra.Command{Use: "bash", Short: "Bash completion", RunE: func(cmd *cobra.Command, args []string) error { return root.GenBashCompletion(os.Stdout) }})
	completionCmd.AddCommand(&cobra.Command{Use: "zsh", Short: "Zsh completion", RunE: func(cmd *cobra.Command, args []string) error { return root.GenZshCompletion(os.Stdout) }})
	completionCmd.AddCommand(&cobra.Command{Use: "fish", Short: "Fish completion", RunE: func(cmd *cobra.Command, args []string) error { return root.GenFishCompletion(os.Stdout, true) }})
	completionCmd.AddCommand(&cobra.Command{Use: "powershell", Short: "PowerShell completion", RunE: func(cmd *cobra.Command, args []string) error { return root.GenPowerShellCompletionWithDesc(os.Stdout) }})
	root.AddCommand(completionCmd)

	return root
}
