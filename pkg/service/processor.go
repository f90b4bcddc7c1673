package service

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/Thomson-dev/bank-summary-agent/pkg/analyzer"
	"github.com/Thomson-dev/bank-summary-agent/pkg/config"
	"github.com/Thomson-dev/bank-summary-agent/pkg/parser"
)

// Processor runs the parse-and-analyze pipeline over statement files and
// writes the narrative summary next to each input.
type Processor struct {
	config   *config.Config
	logger   *log.Logger
	parser   *parser.Parser
	analyzer *analyzer.Analyzer
}

func NewProcessor(cfg *config.Config, logger *log.Logger, p *parser.Parser) *Processor {
	return &Processor{
		config:   cfg,
		logger:   logger,
		parser:   p,
		analyzer: analyzer.New(cfg.CurrencySymbol, cfg.TopCategories),
	}
}

// ProcessDirectory analyzes every statement file in dir. Per-file failures
// are logged and do not stop the run.
func (p *Processor) ProcessDirectory(dir string) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return fmt.Errorf("error reading directory: %w", err)
	}

	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if !isStatementFile(entry.Name()) {
			continue
		}
		if err := p.ProcessFile(filepath.Join(dir, entry.Name())); err != nil {
			p.logger.Error("failed to process file", "file", entry.Name(), "error", err)
		}
	}

	return nil
}

// ProcessFile parses one statement file, analyzes it and writes the summary
// report to the output path.
func (p *Processor) ProcessFile(inputPath string) error {
	data, err := os.ReadFile(inputPath)
	if err != nil {
		return fmt.Errorf("error reading file: %w", err)
	}

	txs, err := p.parser.ProcessBytes(data, filepath.Base(inputPath))
	if err != nil {
		return err
	}

	result := p.analyzer.Analyze(txs)
	trend := analyzer.SpendingTrend(txs)

	outputPath := p.determineOutputPath(inputPath)
	report := fmt.Sprintf("%s\n\nSpending Trend: %s\n", result.Summary, trend)
	if err := os.WriteFile(outputPath, []byte(report), 0o644); err != nil {
		return fmt.Errorf("error writing report: %w", err)
	}

	p.logger.Info("statement analyzed", "input", inputPath, "output", outputPath,
		"transactions", len(txs), "net_balance", result.NetBalance)
	return nil
}

func (p *Processor) determineOutputPath(inputPath string) string {
	name := filepath.Base(inputPath)
	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	if p.config.OutputPath != "" {
		return filepath.Join(p.config.OutputPath, base+"-summary.txt")
	}
	return strings.TrimSuffix(inputPath, ext) + "-summary.txt"
}

func isStatementFile(name string) bool {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".txt", ".json", ".xls":
		return true
	default:
		return false
	}
}
