package main

import (
	"fmt"
	"log"
	"os"
	"runtime/debug"

	"github.com/MCDAngelo/mortgage-renewal-calc/internal/calculation"
	"github.com/MCDAngelo/mortgage-renewal-calc/internal/config"
	"github.com/MCDAngelo/mortgage-renewal-calc/internal/output"
	"github.com/MCDAngelo/mortgage-renewal-calc/internal/renewal"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// zapLogger adapts a zap sugared logger to calculation.Logger.
type zapLogger struct {
	sugar *zap.SugaredLogger
}

func (l zapLogger) Debugf(format string, args ...any) { l.sugar.Debugf(format, args...) }
func (l zapLogger) Infof(format string, args ...any)  { l.sugar.Infof(format, args...) }
func (l zapLogger) Warnf(format string, args ...any)  { l.sugar.Warnf(format, args...) }
func (l zapLogger) Errorf(format string, args ...any) { l.sugar.Errorf(format, args...) }

// newLogger returns a zap-backed logger in debug mode, otherwise the no-op
// logger.
func newLogger(debugMode bool) calculation.Logger {
	if !debugMode {
		return calculation.NopLogger{}
	}
	zl, err := zap.NewDevelopment()
	if err != nil {
		log.Printf("failed to initialize debug logger: %v", err)
		return calculation.NopLogger{}
	}
	return zapLogger{sugar: zl.Sugar()}
}

var rootCmd = &cobra.Command{
	Use:   "renewalcalc",
	Short: "Canadian mortgage renewal calculator CLI",
	Long:  "Amortization schedules and renewal scenario analysis for Canadian mortgages (semi-annual compounding, monthly payments)",
}

var scheduleCmd = &cobra.Command{
	Use:   "schedule [input-file]",
	Short: "Generate the current mortgage's amortization schedule",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		cfg, mortgage := loadMortgage(cmd, args[0])

		schedule := mortgage.AmortizationSchedule()
		report := &output.ScheduleReport{
			Terms:    cfg.Mortgage,
			Payment:  mortgage.MonthlyPayment,
			Schedule: schedule,
			Annual:   calculation.AnnualSummaries(schedule),
			Term:     mortgage.SummarizeTerm(schedule),
		}

		formatAndPrint(cmd, func(f output.Formatter) ([]byte, error) {
			return f.FormatSchedule(report)
		})
	},
}

var scenariosCmd = &cobra.Command{
	Use:   "scenarios [input-file]",
	Short: "Evaluate renewal scenarios against the current mortgage",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		cfg, mortgage := loadMortgage(cmd, args[0])
		debugMode, _ := cmd.Flags().GetBool("debug")

		planner := renewal.NewPlanner(mortgage)
		planner.SetLogger(newLogger(debugMode))

		results, err := planner.Analyze(cfg.ScenarioConfigs(), cfg.Renewal.MaxPaydown)
		if err != nil {
			log.Fatal(err)
		}

		formatAndPrint(cmd, func(f output.Formatter) ([]byte, error) {
			return f.FormatScenarios(results)
		})
	},
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(os.Stdout, "renewalcalc %s (commit %s, built %s)\n", version, commit, date)
			if bi, ok := debug.ReadBuildInfo(); ok && bi != nil {
				fmt.Fprintln(os.Stdout, bi.Main.Path)
			}
		},
	}
}

// loadMortgage parses the input file and constructs the current mortgage.
func loadMortgage(cmd *cobra.Command, inputFile string) (*config.Config, *calculation.Mortgage) {
	parser := config.NewInputParser()
	cfg, err := parser.LoadFromFile(inputFile)
	if err != nil {
		log.Fatal(err)
	}

	mortgage, err := calculation.NewMortgage(cfg.Mortgage)
	if err != nil {
		log.Fatal(err)
	}

	debugMode, _ := cmd.Flags().GetBool("debug")
	mortgage.SetLogger(newLogger(debugMode))

	return cfg, mortgage
}

// formatAndPrint resolves the --format flag and writes the rendered report to
// stdout.
func formatAndPrint(cmd *cobra.Command, render func(output.Formatter) ([]byte, error)) {
	format, _ := cmd.Flags().GetString("format")
	formatter := output.GetFormatterByName(format)
	if formatter == nil {
		log.Fatalf("unknown output format %q (supported: table, csv, json)", format)
	}

	data, err := render(formatter)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Print(string(data))
}

func main() {
	for _, cmd := range []*cobra.Command{scheduleCmd, scenariosCmd} {
		cmd.Flags().String("format", "table", "Output format: table, csv, json")
		cmd.Flags().Bool("debug", false, "Enable debug logging")
	}

	rootCmd.AddCommand(scheduleCmd)
	rootCmd.AddCommand(scenariosCmd)
	rootCmd.AddCommand(versionCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
