package cmd

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"slices"
	"strings"

	"github.com/mabhi256/dquest/internal/casefile"
	"github.com/mabhi256/dquest/internal/config"
	"github.com/mabhi256/dquest/internal/game"
	"github.com/mabhi256/dquest/internal/logging"
	"github.com/mabhi256/dquest/utils"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	// Global flags
	configPath   string
	caseFile     string
	outputFormat string
	verbose      bool

	cfg    *config.Config
	logger = zap.NewNop()
)

var rootCmd = &cobra.Command{
	Use:   "dquest",
	Short: "Detective Quest: explore the estate, collect clues, name the culprit",
	Long: `dquest walks a mansion modelled as a binary tree of rooms. Clues found on the way
are kept in alphabetical order, linked to suspects through a hash table, and the
most cited suspect is named.

Levels:
  1 - novice      guided walk through the estate
  2 - adventurer  clue collection
  3 - master      clues, associations and the most cited suspect
  0 - all         the three levels in sequence`,
	SilenceUsage: true,

	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := loadConfig(cmd); err != nil {
			return err
		}

		l, err := logging.New(cfg.Verbose)
		if err != nil {
			return err
		}
		logger = l
		logger.Debug("configuration loaded", zap.Stringer("config", cfg))

		switch cmd.Name() {
		case "install", "version", "help", "completion", cobra.ShellCompRequestCmd:
			return nil
		}

		if !isShellSupported() {
			return nil // Skip auto-setup for unsupported shells
		}

		if !completionsExist() {
			// stdout carries reports and exported case files
			out := cmd.ErrOrStderr()
			fmt.Fprintln(out, "🔧 First run detected, setting up dquest...")
			if installCompletions(cmd.Root(), out) == nil {
				fmt.Fprintln(out, "✅ Shell completions installed")
				fmt.Fprintln(out, "💡 Restart your shell to enable tab completion")
			} else {
				fmt.Fprintln(out, "⚠️  Auto-setup failed. Run 'dquest install' to try again.")
			}
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = logger.Sync()
	},
}

var installCmd = &cobra.Command{
	Use:   "install",
	Short: "Install shell completions",
	Run: func(cmd *cobra.Command, args []string) {
		out := cmd.OutOrStdout()

		if !isInPath() {
			printPathInstructions(out)
			return
		}

		if !isShellSupported() {
			fmt.Fprintf(out, "❌ Shell completion not supported for: %s\n", detectShell())
			fmt.Fprintln(out, "Supported shells: bash, zsh, fish, powershell")
			return
		}

		if completionsExist() {
			fmt.Fprintln(out, "✅ Already configured!")
			return
		}

		fmt.Fprintln(out, "📦 Installing completions...")
		if err := installCompletions(cmd.Root(), out); err != nil {
			fmt.Fprintf(out, "❌ Failed: %v\n", err)
		} else {
			fmt.Fprintln(out, "✅ Done! Restart your shell to enable tab completion.")
		}
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func GetRootCmd() *cobra.Command {
	return rootCmd
}

// loadConfig reads the config file and lets explicitly set flags win.
func loadConfig(cmd *cobra.Command) error {
	var (
		loaded *config.Config
		err    error
	)
	if configPath != "" {
		loaded, err = config.Load(configPath)
	} else {
		loaded, err = config.LoadDefault()
	}
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("case") {
		loaded.CaseFile = caseFile
	}
	if flags.Changed("output") {
		loaded.Output = outputFormat
	}
	if flags.Changed("verbose") {
		loaded.Verbose = verbose
	}

	if err := loaded.Validate(); err != nil {
		return err
	}

	cfg = loaded
	return nil
}

// loadSession opens the configured case file, or the built-in mansion.
func loadSession() (*game.Session, error) {
	if cfg == nil || cfg.CaseFile == "" {
		return game.ReferenceSession(logger), nil
	}

	cf, err := casefile.Load(cfg.CaseFile)
	if err != nil {
		return nil, err
	}

	session, err := game.NewSession(cf, logger)
	if err != nil {
		return nil, fmt.Errorf("invalid case file %s: %w", cfg.CaseFile, err)
	}
	return session, nil
}

func completionsExist() bool {
	home, _ := os.UserHomeDir()

	paths := map[string]string{
		"bash":       filepath.Join(home, ".local/share/bash-completion/completions/dquest"),
		"zsh":        filepath.Join(home, ".zsh/completions/_dquest"),
		"fish":       filepath.Join(home, ".config/fish/completions/dquest.fish"),
		"powershell": filepath.Join(home, "dquest_completion.ps1"),
	}

	path := paths[detectShell()]
	_, err := os.Stat(path)
	return err == nil
}

func isShellSupported() bool {
	shell := detectShell()
	return shell == "bash" || shell == "zsh" || shell == "fish" || shell == "powershell"
}

func detectShell() string {
	if runtime.GOOS == "windows" {
		return "powershell"
	}

	shell := os.Getenv("SHELL")
	if shell == "" {
		return "bash"
	}
	return filepath.Base(shell)
}

type completionConfig struct {
	dir         string
	file        string
	genFunc     func(io.Writer) error
	activateCmd string
}

func installCompletions(rootCmd *cobra.Command, out io.Writer) error {
	home, _ := os.UserHomeDir()
	shell := detectShell()

	configs := map[string]completionConfig{
		"bash": {
			dir:     filepath.Join(home, ".local/share/bash-completion/completions"),
			file:    "dquest",
			genFunc: rootCmd.GenBashCompletion,
			activateCmd: fmt.Sprintf("source %s",
				filepath.Join(home, ".local/share/bash-completion/completions/dquest")),
		},
		"zsh": {
			dir:     filepath.Join(home, ".zsh/completions"),
			file:    "_dquest",
			genFunc: rootCmd.GenZshCompletion,
			activateCmd: fmt.Sprintf("fpath=(%s $fpath) && autoload -U compinit && compinit",
				filepath.Join(home, ".zsh/completions")),
		},
		"fish": {
			dir:         filepath.Join(home, ".config/fish/completions"),
			file:        "dquest.fish",
			genFunc:     func(w io.Writer) error { return rootCmd.GenFishCompletion(w, true) },
			activateCmd: "complete --do-complete=dquest",
		},
		"powershell": {
			dir:     home,
			file:    "dquest_completion.ps1",
			genFunc: rootCmd.GenPowerShellCompletionWithDesc,
			activateCmd: fmt.Sprintf(". %s",
				filepath.Join(home, "dquest_completion.ps1")),
		},
	}

	completion, ok := configs[shell]
	if !ok {
		return fmt.Errorf("unsupported shell: %s", shell)
	}

	if err := os.MkdirAll(completion.dir, 0755); err != nil {
		return err
	}

	file, err := os.Create(filepath.Join(completion.dir, completion.file))
	if err != nil {
		return err
	}
	defer file.Close()

	if err := completion.genFunc(file); err != nil {
		return err
	}

	fmt.Fprintf(out, "🔄 Run this command to enable auto-completions now:\n")
	fmt.Fprintf(out, "   %s\n", completion.activateCmd)

	return nil
}

func isInPath() bool {
	execPath, err := os.Executable()
	if err != nil {
		return false
	}

	paths := strings.Split(os.Getenv("PATH"), string(os.PathListSeparator))
	return slices.Contains(paths, filepath.Dir(execPath))
}

func printPathInstructions(out io.Writer) {
	execPath, _ := os.Executable()
	execDir := filepath.Dir(execPath)

	fmt.Fprintf(out, "❌ dquest not in PATH. Binary location: %s\n\n", execPath)

	if runtime.GOOS == "windows" {
		fmt.Fprintf(out, "Add to PATH: %s\n", execDir)
	} else {
		fmt.Fprintf(out, "Add to shell profile: export PATH=\"%s:$PATH\"\n", execDir)
		fmt.Fprintf(out, "Or copy to: /usr/local/bin\n")
	}
}

func init() {
	rootCmd.AddCommand(installCmd)

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&configPath, "config", "", "Config file (default $XDG_CONFIG_HOME/dquest/config.yaml)")
	flags.StringVar(&caseFile, "case", "", "Case file (YAML) to investigate instead of the built-in mansion")
	flags.StringVarP(&outputFormat, "output", "o", "cli", "Output format")
	flags.BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging on stderr")

	rootCmd.RegisterFlagCompletionFunc("case", utils.CompleteFilesByExtension(utils.CaseFileExtensions))
	rootCmd.RegisterFlagCompletionFunc("config", utils.CompleteFilesByExtension(utils.CaseFileExtensions))
	rootCmd.RegisterFlagCompletionFunc("output", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return config.OutputFormats, cobra.ShellCompDirectiveNoFileComp
	})
}
