package main

import (
	"fmt"
	"os"
	"time"

	"github.com/finpulse/finance-engine/internal/calculation"
	"github.com/finpulse/finance-engine/internal/config"
	"github.com/finpulse/finance-engine/internal/output"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var version = "dev"

// stderrLogger implements calculation.Logger by printing to stderr.
type stderrLogger struct {
	debug bool
}

func (l stderrLogger) Debugf(format string, args ...any) {
	if l.debug {
		fmt.Fprintf(os.Stderr, "debug: "+format+"\n", args...)
	}
}
func (l stderrLogger) Infof(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
}
func (l stderrLogger) Warnf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "warning: "+format+"\n", args...)
}
func (l stderrLogger) Errorf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "error: "+format+"\n", args...)
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "finpulse",
		Short: "Deterministic financial simulation and scoring engine",
		Long: `finpulse runs a financial profile through the simulation engine:
debt payoff amortization, wealth projection, a composite health score,
and a goal completion timeline.`,
		SilenceUsage: true,
	}

	root.AddCommand(newReportCmd(), newExampleCmd(), newVersionCmd())
	return root
}

func newReportCmd() *cobra.Command {
	var (
		inputFile string
		format    string
		save      bool
		debug     bool
	)

	cmd := &cobra.Command{
		Use:   "report",
		Short: "Run all calculators against a profile and print the report",
		RunE: func(cmd *cobra.Command, args []string) error {
			parser := config.NewInputParser()
			cfg, err := parser.LoadFromFile(inputFile)
			if err != nil {
				return err
			}

			engine := calculation.NewCalculationEngine()
			engine.SetLogger(stderrLogger{debug: debug})

			report, err := engine.BuildReport(time.Now(), cfg)
			if err != nil {
				return err
			}

			formatter, err := output.GetFormatter(format)
			if err != nil {
				return err
			}

			if save {
				ext := formatter.Name()
				if ext == "console" {
					ext = "txt"
				}
				filename, err := output.WriteFormatted(formatter, report, ext)
				if err != nil {
					return err
				}
				fmt.Fprintf(os.Stderr, "wrote %s\n", filename)
				return nil
			}

			data, err := formatter.Format(report)
			if err != nil {
				return err
			}
			_, err = os.Stdout.Write(data)
			return err
		},
	}

	cmd.Flags().StringVarP(&inputFile, "input", "i", "profile.yaml", "profile configuration file")
	cmd.Flags().StringVarP(&format, "format", "f", "console", "output format (console, json, csv)")
	cmd.Flags().BoolVar(&save, "save", false, "write to a timestamped file instead of stdout")
	cmd.Flags().BoolVar(&debug, "debug", false, "enable debug logging")
	return cmd
}

func newExampleCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "example [path]",
		Short: "Write an example profile configuration",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := "profile.yaml"
			if len(args) == 1 {
				path = args[0]
			}
			if _, err := os.Stat(path); err == nil {
				return fmt.Errorf("%s already exists, refusing to overwrite", path)
			}

			cfg := config.NewInputParser().CreateExampleConfiguration()
			data, err := yaml.Marshal(cfg)
			if err != nil {
				return err
			}
			if err := os.WriteFile(path, data, 0644); err != nil {
				return err
			}
			fmt.Fprintf(os.Stderr, "wrote %s\n", path)
			return nil
		},
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("finpulse %s\n", version)
		},
	}
}
