// Command powser evaluates power series from the command line.
//
// It is a thin wrapper over the powser library: coefficients come from a
// comma-separated list or an encoded coefficient table file, and the result
// of the evaluation is printed to stdout.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/arloliu/powser"
	"github.com/arloliu/powser/table"
)

var (
	coeffsFlag      string
	tableFlag       string
	verboseFlag     bool
	compressionFlag string

	rootCmd = &cobra.Command{
		Use:   "powser",
		Short: "Evaluate power series",
		Long: `powser evaluates the power series c0 + c1*x + c2*x^2 + ... at a point x.

Coefficients are read from --coeffs (comma-separated) or from a coefficient
table file written by "powser pack".`,
		SilenceUsage: true,
	}

	evalCmd = &cobra.Command{
		Use:   "eval <x>",
		Short: "Evaluate a series at a point",
		Args:  cobra.ExactArgs(1),
		RunE:  runEval,
	}

	packCmd = &cobra.Command{
		Use:   "pack <output-file>",
		Short: "Encode coefficients into a table file",
		Args:  cobra.ExactArgs(1),
		RunE:  runPack,
	}

	showCmd = &cobra.Command{
		Use:   "show <table-file>",
		Short: "Print the coefficients stored in a table file",
		Args:  cobra.ExactArgs(1),
		RunE:  runShow,
	}
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	evalCmd.Flags().StringVar(&coeffsFlag, "coeffs", "", "comma-separated coefficient list")
	evalCmd.Flags().StringVar(&tableFlag, "table", "", "coefficient table file")
	evalCmd.Flags().BoolVarP(&verboseFlag, "verbose", "v", false, "log evaluation details to stderr")

	packCmd.Flags().StringVar(&coeffsFlag, "coeffs", "", "comma-separated coefficient list (required)")
	packCmd.Flags().StringVar(&compressionFlag, "compression", "none", "payload compression: none, zstd, s2, lz4")
	_ = packCmd.MarkFlagRequired("coeffs")

	rootCmd.AddCommand(evalCmd, packCmd, showCmd)
}

func runEval(cmd *cobra.Command, args []string) error {
	x, err := parseFloat(args[0])
	if err != nil {
		return fmt.Errorf("invalid x value %q: %w", args[0], err)
	}

	coeffs, err := loadCoefficients()
	if err != nil {
		return err
	}

	if verboseFlag {
		logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))
		logger.Debug("evaluating finite series", slog.Int("terms", len(coeffs)), slog.Float64("x", x))
	}

	v, err := powser.Evaluate(coeffs, x)
	if err != nil {
		return err
	}

	fmt.Println(v)

	return nil
}

func runPack(cmd *cobra.Command, args []string) error {
	coeffs, err := parseCoefficients(coeffsFlag)
	if err != nil {
		return err
	}

	compression, err := table.CompressionFromString(compressionFlag)
	if err != nil {
		return err
	}

	data, err := table.Encode(coeffs, table.WithCompression(compression))
	if err != nil {
		return err
	}

	if err := os.WriteFile(args[0], data, 0o644); err != nil {
		return fmt.Errorf("writing table file: %w", err)
	}

	fmt.Printf("wrote %d coefficients (%d bytes, %s)\n", len(coeffs), len(data), compression)

	return nil
}

func runShow(cmd *cobra.Command, args []string) error {
	data, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("reading table file: %w", err)
	}

	coeffs, err := table.Decode(data)
	if err != nil {
		return err
	}

	for i, c := range coeffs {
		fmt.Printf("c%d = %g\n", i, c)
	}

	return nil
}

func loadCoefficients() ([]float64, error) {
	switch {
	case coeffsFlag != "" && tableFlag != "":
		return nil, fmt.Errorf("--coeffs and --table are mutually exclusive")
	case coeffsFlag != "":
		return parseCoefficients(coeffsFlag)
	case tableFlag != "":
		data, err := os.ReadFile(tableFlag)
		if err != nil {
			return nil, fmt.Errorf("reading table file: %w", err)
		}

		return table.Decode(data)
	default:
		return nil, fmt.Errorf("either --coeffs or --table is required")
	}
}
