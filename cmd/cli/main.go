package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/k0kubun/pp/v3"
	"github.com/spf13/cobra"

	"github.com/Thomson-dev/bank-summary-agent/pkg/analyzer"
	"github.com/Thomson-dev/bank-summary-agent/pkg/categories"
	"github.com/Thomson-dev/bank-summary-agent/pkg/config"
	"github.com/Thomson-dev/bank-summary-agent/pkg/models"
	"github.com/Thomson-dev/bank-summary-agent/pkg/parser"
	"github.com/Thomson-dev/bank-summary-agent/pkg/service"
)

var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "bank-summary",
	Short: "Bank statement parsing and financial analysis",
	RunE: func(cmd *cobra.Command, _ []string) error {
		// Show help when no subcommand is provided
		return cmd.Help()
	},
}

var analyzeCmd = &cobra.Command{
	Use:   "analyze [flags] <file|->",
	Short: "Analyze a bank statement and print the financial summary",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		logger := newLogger(cmd)

		cfg, err := config.Build(cfgFile, cmd.Flags())
		if err != nil {
			return err
		}

		table, err := loadTable(cfg)
		if err != nil {
			return err
		}
		p := parser.NewWithTable(logger, table)

		var txs []models.Transaction
		if args[0] == "-" {
			data, err := io.ReadAll(os.Stdin)
			if err != nil {
				return fmt.Errorf("failed to read stdin: %w", err)
			}
			txs, err = p.ParseText(string(data))
			if err != nil {
				return err
			}
		} else {
			data, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("failed to read file: %w", err)
			}
			txs, err = p.ProcessBytes(data, filepath.Base(args[0]))
			if err != nil {
				return err
			}
		}

		if debug, _ := cmd.Flags().GetBool("debug"); debug {
			pp.Fprintln(os.Stderr, txs)
		}

		result := analyzer.New(cfg.CurrencySymbol, cfg.TopCategories).Analyze(txs)

		if asJSON, _ := cmd.Flags().GetBool("json"); asJSON {
			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			return enc.Encode(result)
		}

		fmt.Println(result.Summary)
		fmt.Printf("\nSpending Trend: %s\n", analyzer.SpendingTrend(txs))
		return nil
	},
}

var processCmd = &cobra.Command{
	Use:   "process [flags] <path>",
	Short: "Analyze statement files in bulk, writing a summary report per file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		logger := newLogger(cmd)

		cfg, err := config.Build(cfgFile, cmd.Flags())
		if err != nil {
			return err
		}

		table, err := loadTable(cfg)
		if err != nil {
			return err
		}
		processor := service.NewProcessor(cfg, logger, parser.NewWithTable(logger, table))

		matches, err := filepath.Glob(args[0])
		if err != nil {
			return err
		}
		if len(matches) == 0 {
			return fmt.Errorf("no files found matching pattern %s", args[0])
		}

		for _, match := range matches {
			info, err := os.Stat(match)
			if err != nil {
				logger.Warn("failed to stat file", "error", err, "file", match)
				continue
			}

			if info.IsDir() {
				if err := processor.ProcessDirectory(match); err != nil {
					logger.Warn("failed to process directory", "error", err, "dir", match)
				}
			} else {
				if err := processor.ProcessFile(match); err != nil {
					logger.Warn("failed to process file", "error", err, "file", match)
				}
			}
		}
		return nil
	},
}

var categoriesCmd = &cobra.Command{
	Use:   "categories",
	Short: "Print the active category keyword table in scan order",
	RunE: func(cmd *cobra.Command, _ []string) error {
		cfg, err := config.Build(cfgFile, cmd.Flags())
		if err != nil {
			return err
		}

		table, err := loadTable(cfg)
		if err != nil {
			return err
		}

		for _, entry := range table {
			fmt.Printf("%-15s %s\n", entry.Name, strings.Join(entry.Keywords, ", "))
		}
		fmt.Printf("%-15s (no keyword match)\n", categories.Fallback)
		return nil
	},
}

func newLogger(cmd *cobra.Command) *log.Logger {
	level := log.InfoLevel
	if debug, _ := cmd.Flags().GetBool("debug"); debug {
		level = log.DebugLevel
	}
	return log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "bank-summary",
		Level:           level,
	})
}

func loadTable(cfg *config.Config) (categories.Table, error) {
	if cfg.CategoriesFile == "" {
		return categories.Default, nil
	}
	return categories.Load(cfg.CategoriesFile)
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "Config file (default is config.yaml)")
	rootCmd.PersistentFlags().Bool("debug", false, "Verbose logging plus a dump of the parsed transactions")
	rootCmd.PersistentFlags().Int("top", 0, "Number of top spending categories to report")
	rootCmd.PersistentFlags().String("currency", "", "Currency symbol used in formatted amounts")

	analyzeCmd.Flags().Bool("json", false, "Emit the analysis result as JSON instead of the summary text")
	processCmd.Flags().StringP("output", "o", "", "Output directory for summary reports (default: next to input)")

	rootCmd.AddCommand(analyzeCmd)
	rootCmd.AddCommand(processCmd)
	rootCmd.AddCommand(categoriesCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
