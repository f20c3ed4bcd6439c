package main

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/hashicorp/go-hclog"
	"github.com/san-kum/pendconf/internal/config"
	"github.com/san-kum/pendconf/internal/params"
	"github.com/san-kum/pendconf/internal/viz"
	"github.com/spf13/cobra"
)

var (
	verbose bool
	force   bool
	preset  string

	logger hclog.Logger = hclog.NewNullLogger()
)

// main registers the pendconf commands and executes the root command,
// exiting with status 1 on error.
func main() {
	rootCmd := &cobra.Command{
		Use:          "pendconf",
		Short:        "pendulum parameter files",
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := hclog.Info
			if verbose {
				level = hclog.Debug
			}
			logger = hclog.New(&hclog.LoggerOptions{
				Name:   "pendconf",
				Level:  level,
				Output: os.Stderr,
			})
		},
	}
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug logging")

	fieldsCmd := &cobra.Command{
		Use:   "fields",
		Short: "list parameter fields and defaults",
		Args:  cobra.NoArgs,
		RunE:  listFields,
	}

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list available presets",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			for _, p := range params.ListPresets() {
				fmt.Printf("  %s\n", p)
			}
		},
	}

	initCmd := &cobra.Command{
		Use:   "init [path]",
		Short: "write a parameter file",
		Args:  cobra.ExactArgs(1),
		RunE:  initFile,
	}
	initCmd.Flags().StringVar(&preset, "preset", "default", "preset to write")
	initCmd.Flags().BoolVarP(&force, "force", "f", false, "overwrite an existing file")

	showCmd := &cobra.Command{
		Use:   "show [path]",
		Short: "print every parameter in a file",
		Args:  cobra.ExactArgs(1),
		RunE:  showFile,
	}

	setCmd := &cobra.Command{
		Use:   "set [path] [key=value]...",
		Short: "change parameters in an existing file",
		Args:  cobra.MinimumNArgs(2),
		RunE:  setValues,
	}

	rootCmd.AddCommand(fieldsCmd, presetsCmd, initCmd, showCmd, setCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, viz.ErrorStyle.Render("error:"), err)
		os.Exit(1)
	}
}

func listFields(cmd *cobra.Command, args []string) error {
	fmt.Print(viz.ParamTable("fields", rows(params.Default())))
	return nil
}

func initFile(cmd *cobra.Command, args []string) error {
	path := args[0]

	p := params.GetPreset(preset)
	if p == nil {
		return fmt.Errorf("unknown preset: %s (available: %v)", preset, params.ListPresets())
	}

	if err := config.Save(p, path, force); err != nil {
		if errors.Is(err, config.ErrExists) {
			return fmt.Errorf("%w (use --force to replace it)", err)
		}
		return err
	}
	logger.Info("wrote parameter file", "path", path, "preset", preset)
	return nil
}

func showFile(cmd *cobra.Command, args []string) error {
	path := args[0]

	p, err := config.Load(path)
	if err != nil {
		return err
	}
	logger.Debug("loaded parameter file", "path", path, "overrides", len(p.Overrides()))

	fmt.Print(viz.ParamTable(path, rows(p)))
	return nil
}

func setValues(cmd *cobra.Command, args []string) error {
	path := args[0]

	values, err := parseAssignments(args[1:])
	if err != nil {
		return err
	}

	p, err := config.Load(path)
	if err != nil {
		return err
	}
	for _, a := range values {
		if err := p.Set(a.name, a.value); err != nil {
			return err
		}
		logger.Debug("set field", "name", a.name, "value", a.value)
	}

	if err := config.Save(p, path, true); err != nil {
		return err
	}
	logger.Info("updated parameter file", "path", path, "fields", len(values))
	return nil
}

type assignment struct {
	name  string
	value float64
}

// parseAssignments parses key=value arguments, keeping their order.
func parseAssignments(args []string) ([]assignment, error) {
	out := make([]assignment, 0, len(args))
	for _, arg := range args {
		name, raw, ok := strings.Cut(arg, "=")
		if !ok || name == "" {
			return nil, fmt.Errorf("expected key=value, got %q", arg)
		}
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid value for %s: %w", name, err)
		}
		out = append(out, assignment{name: name, value: v})
	}
	return out, nil
}

func rows(p *params.Params) []viz.Row {
	values := p.Values()
	fields := params.Fields()
	out := make([]viz.Row, 0, len(fields))
	for _, f := range fields {
		out = append(out, viz.Row{Name: f.Name, Value: values[f.Name], Default: f.Default})
	}
	return out
}
