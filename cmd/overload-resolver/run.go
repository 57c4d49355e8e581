package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"overload-resolver/internal/config"
	"overload-resolver/internal/report"
	"overload-resolver/internal/scenario"
)

var resolveCmd = &cobra.Command{
	Use:   "resolve [flags] <scenario.yaml>",
	Short: "Resolve every call and conditional of a scenario",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		_, err := runScenario(cmd, args[0])
		return err
	},
}

var checkCmd = &cobra.Command{
	Use:   "check [flags] <scenario.yaml>",
	Short: "Resolve a scenario and fail on errors or unmet expectations",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		r, err := runScenario(cmd, args[0])
		if err != nil {
			return err
		}

		if r.Failed() > 0 || r.Diagnostics.HasErrors() {
			return errors.New("check failed")
		}

		return nil
	},
}

var showCmd = &cobra.Command{
	Use:   "show [flags] <report.msgpack>",
	Short: "Render a report saved with --format msgpack",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		opts, err := readOptions(cmd)
		if err != nil {
			return err
		}

		f, err := os.Open(args[0])
		if err != nil {
			return fmt.Errorf("failed to open report: %w", err)
		}
		defer f.Close()

		r, err := report.ReadMsgpack(f)
		if err != nil {
			return fmt.Errorf("%s: %w", args[0], err)
		}

		return report.Write(cmd.OutOrStdout(), r, report.Options{Format: opts.format, Color: opts.color})
	},
}

type options struct {
	configPath string
	source     string
	jobs       int
	format     report.Format
	color      bool
}

func readOptions(cmd *cobra.Command) (options, error) {
	var opts options

	flags := cmd.Root().PersistentFlags()

	var err error

	if opts.configPath, err = flags.GetString("config"); err != nil {
		return opts, fmt.Errorf("failed to get config flag: %w", err)
	}

	if opts.source, err = flags.GetString("source"); err != nil {
		return opts, fmt.Errorf("failed to get source flag: %w", err)
	}

	if opts.jobs, err = flags.GetInt("jobs"); err != nil {
		return opts, fmt.Errorf("failed to get jobs flag: %w", err)
	}

	format, err := flags.GetString("format")
	if err != nil {
		return opts, fmt.Errorf("failed to get format flag: %w", err)
	}

	if opts.format, err = report.ParseFormat(format); err != nil {
		return opts, err
	}

	colorFlag, err := flags.GetString("color")
	if err != nil {
		return opts, fmt.Errorf("failed to get color flag: %w", err)
	}

	switch colorFlag {
	case "on":
		opts.color = true
	case "off":
		opts.color = false
	case "auto":
		opts.color = isTerminal(os.Stdout)
	default:
		return opts, fmt.Errorf("unknown color mode %q (auto|on|off)", colorFlag)
	}

	return opts, nil
}

// effectiveConfig layers the options file and flags over the scenario config.
func effectiveConfig(base config.Config, opts options) (config.Config, error) {
	cfg := base

	if opts.configPath != "" {
		file, err := config.LoadFile(opts.configPath)
		if err != nil {
			return config.Config{}, err
		}

		cfg = cfg.Merge(file)
	}

	if opts.source != "" {
		level, err := config.ParseSourceLevel(opts.source)
		if err != nil {
			return config.Config{}, err
		}

		cfg.SourceLevel = level
	}

	if opts.jobs != 0 {
		cfg.Jobs = opts.jobs
	}

	return cfg, cfg.Validate()
}

func runScenario(cmd *cobra.Command, path string) (report.Report, error) {
	opts, err := readOptions(cmd)
	if err != nil {
		return report.Report{}, err
	}

	f, err := scenario.LoadFile(path)
	if err != nil {
		return report.Report{}, err
	}

	if f.Config, err = effectiveConfig(f.Config, opts); err != nil {
		return report.Report{}, err
	}

	p, err := scenario.Compile(f)
	if err != nil {
		return report.Report{}, fmt.Errorf("%s: %w", path, err)
	}

	policy, err := f.Config.Policy()
	if err != nil {
		return report.Report{}, err
	}

	outcomes, err := p.Run(cmd.Context(), f.Config.Jobs)
	if err != nil {
		return report.Report{}, err
	}

	r := report.Build(path, f.Config, outcomes, scenario.Diagnostics(outcomes, policy))

	if err := report.Write(cmd.OutOrStdout(), r, report.Options{Format: opts.format, Color: opts.color}); err != nil {
		return report.Report{}, err
	}

	return r, nil
}
