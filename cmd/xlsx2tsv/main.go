// Package main provides the CLI entry point for xlsx2tsv.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/ukaji3/xlsx2tsv-go/internal/config"
	"github.com/ukaji3/xlsx2tsv-go/internal/logging"
	"github.com/ukaji3/xlsx2tsv-go/pkg/xlsx2tsv"
)

type flags struct {
	inputPath  string
	sheetName  string
	outputPath string
}

func main() {
	if err := newRootCmd(os.Stdout, os.Stderr).Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	f := &flags{}

	rootCmd := &cobra.Command{
		Use:   "xlsx2tsv --in input.xlsx --sheet NAME --out output.tsv",
		Short: "Convert one sheet of an Excel workbook to TSV",
		Long: `xlsx2tsv reads an .xlsx workbook without a spreadsheet library,
flattens the named sheet into dense rows and writes them as tab-separated text.`,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConvert(cmd, f)
		},
	}
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)

	rootCmd.Flags().StringVarP(&f.inputPath, "in", "i", "", "Input .xlsx file")
	rootCmd.Flags().StringVarP(&f.sheetName, "sheet", "s", "", "Sheet name (exact match)")
	rootCmd.Flags().StringVarP(&f.outputPath, "out", "o", "", "Output .tsv file")
	rootCmd.Flags().Bool("strict", false, "Fail on malformed cell references and shared string indices")
	rootCmd.Flags().Bool("trim", false, "Trim surrounding white space from cell values")
	rootCmd.Flags().String("config", "", "YAML config file")
	rootCmd.Flags().Bool("debug", false, "Enable debug logging")
	_ = rootCmd.MarkFlagRequired("in")
	_ = rootCmd.MarkFlagRequired("sheet")
	_ = rootCmd.MarkFlagRequired("out")

	rootCmd.AddCommand(newSheetsCmd(f))
	return rootCmd
}

func newSheetsCmd(f *flags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sheets --in input.xlsx",
		Short: "List the worksheet names of a workbook",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			names, err := xlsx2tsv.SheetNames(f.inputPath)
			if err != nil {
				return err
			}
			for _, name := range names {
				fmt.Fprintln(cmd.OutOrStdout(), name)
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&f.inputPath, "in", "i", "", "Input .xlsx file")
	_ = cmd.MarkFlagRequired("in")
	return cmd
}

func runConvert(cmd *cobra.Command, f *flags) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	logger, err := logging.New(cfg.Debug, cfg.LogLevel)
	if err != nil {
		return err
	}
	defer logger.Sync() //nolint:errcheck
	logger = logger.With(zap.String("run_id", uuid.NewString()))

	opts := xlsx2tsv.Options{
		Strict:    cfg.Strict,
		TrimSpace: cfg.TrimSpace,
		Logger:    logger,
	}

	result, err := xlsx2tsv.Convert(f.inputPath, f.sheetName, f.outputPath, opts)
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s (%d rows)\n", result.OutPath, result.Rows)
	return nil
}

// loadConfig reads the config file when one is given and lets explicitly set
// flags override its values.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	flagSet := cmd.Flags()
	cfg := config.Default()
	if configPath, _ := flagSet.GetString("config"); configPath != "" {
		loaded, err := config.Load(configPath)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	if flagSet.Changed("strict") {
		cfg.Strict, _ = flagSet.GetBool("strict")
	}
	if flagSet.Changed("trim") {
		cfg.TrimSpace, _ = flagSet.GetBool("trim")
	}
	if flagSet.Changed("debug") {
		cfg.Debug, _ = flagSet.GetBool("debug")
		switch {
		case cfg.Debug:
			cfg.LogLevel = "debug"
		case cfg.LogLevel == "debug":
			cfg.LogLevel = ""
			config.ApplyDefaults(cfg)
		}
	}
	return cfg, nil
}
