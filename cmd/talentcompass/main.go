package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/cmlabs-hris/talent-compass/internal/handler/cli"
	"github.com/cmlabs-hris/talent-compass/internal/handler/cli/response"
	"github.com/cmlabs-hris/talent-compass/internal/pkg/validator"
)

var flags overrides

var rootCmd = &cobra.Command{
	Use:   "talentcompass",
	Short: "TalentCompass - in-memory HR records and analytics",
	Long: `TalentCompass loads employee records from a comma-separated file and
produces workforce analytics: directory, headcount by department, attrition,
gender pay parity and gratuity eligibility. It also logs recruitment candidates
and rejection reasons, with a Pareto breakdown of the rejection history.

Run without arguments to start the interactive menu.`,
	SilenceUsage: true,
	RunE:         runInteractive,
}

var reportJSON bool

var reportCmd = &cobra.Command{
	Use:   "report [directory|departments|attrition|parity|gratuity|pareto|all]",
	Short: "Print one report, or all of them, and exit",
	Long: `Loads the employee file and prints the requested report without entering
the interactive menu. "all" runs every report concurrently.

Example:
  talentcompass report attrition
  talentcompass report all --json`,
	Args:      cobra.MaximumNArgs(1),
	ValidArgs: reportNames,
	RunE:      runReport,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flags.envFile, "env-file", "", "Env file to load (default: .env)")
	rootCmd.PersistentFlags().StringVar(&flags.dataDir, "data-dir", "", "Directory holding the data files (or set TC_DATA_DIR)")
	rootCmd.PersistentFlags().StringVar(&flags.employeeFile, "employees", "", "Employee source file (or set TC_EMPLOYEE_FILE)")
	rootCmd.PersistentFlags().StringVar(&flags.policyFile, "policy", "", "YAML analytics policy file (or set TC_POLICY_FILE)")
	rootCmd.PersistentFlags().StringVar(&flags.logLevel, "log-level", "", "Log level: debug, info, warn, error (or set LOG_LEVEL)")

	reportCmd.Flags().BoolVar(&reportJSON, "json", false, "Write the report as JSON")

	rootCmd.AddCommand(reportCmd)
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// runInteractive loads the employee file, then runs the menu. A failed load
// is reported and the menu still starts.
func runInteractive(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(flags)
	if err != nil {
		return err
	}
	a, err := newApp(cfg, cmd.ErrOrStderr())
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	menu := a.menu(cmd.InOrStdin(), cmd.OutOrStdout(), cmd.ErrOrStderr())
	if err := menu.LoadData(ctx, cfg.Storage.EmployeeFile); err != nil {
		a.logger.Warn("Starting without employee data", "error", err)
	}
	return menu.Run(ctx)
}

func runReport(cmd *cobra.Command, args []string) error {
	name := "all"
	if len(args) == 1 {
		name = strings.ToLower(args[0])
	}
	if !validator.IsInSlice(name, reportNames) {
		return fmt.Errorf("unknown report %q, expected one of %s", name, strings.Join(reportNames, ", "))
	}

	cfg, err := loadConfig(flags)
	if err != nil {
		return err
	}
	a, err := newApp(cfg, cmd.ErrOrStderr())
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	out, errOut := cmd.OutOrStdout(), cmd.ErrOrStderr()
	renderer := cli.NewRenderer(out, errOut, styles(out))

	var message string
	if name != "pareto" {
		summary, err := a.employees.LoadFile(ctx, cfg.Storage.EmployeeFile)
		if err != nil {
			if reportJSON {
				_ = response.Failure(out, err)
			} else {
				renderer.HandleError(err)
			}
			return err
		}
		if !reportJSON {
			renderer.LoadSummary(summary)
		}
		message = summary.Message()
	}

	result, err := a.generate(ctx, name, renderer)
	if err != nil {
		if reportJSON {
			_ = response.Failure(out, err)
		}
		return err
	}
	if reportJSON {
		if message == "" {
			return response.Success(out, result)
		}
		return response.SuccessWithMessage(out, message, result)
	}
	return nil
}
