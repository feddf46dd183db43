// Package main provides the passgen command line tool.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/vaultpass/passgen-go/internal/config"
	"github.com/vaultpass/passgen-go/internal/passgen"
)

var (
	weakStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#ff4444")).Bold(true)
	mediumStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#ffbb33")).Bold(true)
	strongStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#00C851")).Bold(true)
)

// writeClipboard is swapped out in tests.
var writeClipboard = clipboard.WriteAll

var errNoOptions = errors.New(passgen.NoOptionsMessage)

type generateOptions struct {
	length     string
	uppercase  bool
	lowercase  bool
	numbers    bool
	symbols    bool
	count      int
	copy       bool
	seed       uint64
	configPath string
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	opts := &generateOptions{}

	rootCmd := &cobra.Command{
		Use:           "passgen",
		Short:         "Generate random passwords and rate their strength",
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runGenerate(cmd, opts)
		},
	}

	flags := rootCmd.Flags()
	flags.StringVarP(&opts.length, "length", "l", strconv.Itoa(passgen.DefaultLength),
		fmt.Sprintf("password length (%d-%d)", passgen.MinLength, passgen.MaxLength))
	flags.BoolVar(&opts.uppercase, "uppercase", true, "include uppercase letters")
	flags.BoolVar(&opts.lowercase, "lowercase", true, "include lowercase letters")
	flags.BoolVar(&opts.numbers, "numbers", true, "include digits")
	flags.BoolVar(&opts.symbols, "symbols", true, "include symbols")
	flags.IntVarP(&opts.count, "count", "c", 1, "number of passwords to generate")
	flags.BoolVar(&opts.copy, "copy", false, "copy the last password to the clipboard")
	flags.Uint64Var(&opts.seed, "seed", 0, "seed for a reproducible sequence")
	rootCmd.PersistentFlags().StringVar(&opts.configPath, "config", config.DefaultFilePath(), "path to config file")

	rootCmd.AddCommand(newStrengthCmd())
	rootCmd.AddCommand(newConfigCmd(opts))

	return rootCmd
}

func runGenerate(cmd *cobra.Command, opts *generateOptions) error {
	fileCfg, err := config.LoadFile(opts.configPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	applyFileConfig(cmd, opts, fileCfg.Generator)

	cfg := passgen.Config{
		Length:    passgen.ParseLength(opts.length),
		Uppercase: opts.uppercase,
		Lowercase: opts.lowercase,
		Numbers:   opts.numbers,
		Symbols:   opts.symbols,
	}

	var sampler passgen.Sampler
	if cmd.Flags().Changed("seed") {
		sampler = passgen.NewSeededSampler(opts.seed)
	}
	gen := passgen.NewGenerator(sampler)

	var last string
	out := cmd.OutOrStdout()
	for i := 0; i < max(1, opts.count); i++ {
		res, err := gen.Generate(cfg)
		if errors.Is(err, passgen.ErrNoCharacterTypes) {
			return errNoOptions
		}
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "%s  %s\n", res.Password, renderStrength(res.Strength))
		last = res.Password
	}

	if opts.copy {
		if err := copyPassword(last); err != nil {
			return fmt.Errorf("failed to copy to clipboard: %w", err)
		}
		fmt.Fprintln(cmd.ErrOrStderr(), "copied to clipboard")
	}
	return nil
}

func applyFileConfig(cmd *cobra.Command, opts *generateOptions, g config.GeneratorConfig) {
	if g.Length != nil && !cmd.Flags().Changed("length") {
		opts.length = strconv.Itoa(*g.Length)
	}
	applyBoolConfig(cmd, "uppercase", &opts.uppercase, g.Uppercase)
	applyBoolConfig(cmd, "lowercase", &opts.lowercase, g.Lowercase)
	applyBoolConfig(cmd, "numbers", &opts.numbers, g.Numbers)
	applyBoolConfig(cmd, "symbols", &opts.symbols, g.Symbols)
	applyIntConfig(cmd, "count", &opts.count, g.Count)
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

// copyPassword does nothing when no password has been generated.
func copyPassword(password string) error {
	if password == "" {
		return nil
	}
	return writeClipboard(password)
}

func renderStrength(s passgen.Strength) string {
	switch s {
	case passgen.Strong:
		return strongStyle.Render(string(s))
	case passgen.Medium:
		return mediumStyle.Render(string(s))
	default:
		return weakStyle.Render(string(s))
	}
}

func newStrengthCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "strength <password>",
		Short: "Rate the strength of a password",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintf(cmd.OutOrStdout(), "%s (%d/%d)\n",
				renderStrength(passgen.Score(args[0])), passgen.Points(args[0]), passgen.MaxPoints)
			return nil
		},
	}
}

func newConfigCmd(opts *generateOptions) *cobra.Command {
	var initFile bool

	cmd := &cobra.Command{
		Use:   "config",
		Short: "Show or create the config file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out := cmd.OutOrStdout()
			if !initFile {
				fmt.Fprintln(out, opts.configPath)
				fmt.Fprintln(out)
				fmt.Fprint(out, config.Template)
				return nil
			}
			return writeConfigTemplate(out, opts.configPath)
		},
	}
	cmd.Flags().BoolVar(&initFile, "init", false, "write a default config file if none exists")
	return cmd
}

func writeConfigTemplate(out io.Writer, path string) error {
	if _, err := os.Stat(path); err == nil {
		fmt.Fprintf(out, "config already exists: %s\n", path)
		return nil
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config dir: %w", err)
	}
	if err := os.WriteFile(path, []byte(config.Template), 0o644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	fmt.Fprintf(out, "wrote %s\n", path)
	return nil
}
