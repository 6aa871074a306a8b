// survey.go - Parallel survey of FEN positions
package main

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"runtime"
	"strings"

	"github.com/lgbarn/chessrules/internal/config"
	"github.com/lgbarn/chessrules/internal/engine"
	"github.com/lgbarn/chessrules/internal/worker"
)

// surveyRow is one line of survey output.
type surveyRow struct {
	Line int    `json:"line"`
	FEN  string `json:"fen"`
	engine.Survey
}

// runSurveyFile surveys the positions in name, or stdin for "-".
func runSurveyFile(name string, cfg *config.Config) error {
	if name == "-" {
		return runSurvey(os.Stdin, cfg, *workers)
	}
	file, err := os.Open(name) //nolint:gosec // G304: CLI tool opens user-specified files
	if err != nil {
		return err
	}
	defer file.Close()
	return runSurvey(file, cfg, *workers)
}

// readPositions returns the non-blank lines of r that are not '#' comments,
// with their 1-based line numbers.
func readPositions(r io.Reader) ([]string, []int, error) {
	var fens []string
	var lines []int
	scanner := bufio.NewScanner(r)
	for n := 1; scanner.Scan(); n++ {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fens = append(fens, line)
		lines = append(lines, n)
	}
	return fens, lines, scanner.Err()
}

// runSurvey surveys every position in r across numWorkers goroutines and
// writes the results in input order. Unparseable positions are logged and
// skipped.
func runSurvey(r io.Reader, cfg *config.Config, numWorkers int) error {
	fens, lines, err := readPositions(r)
	if err != nil {
		return err
	}
	if numWorkers <= 0 {
		numWorkers = runtime.NumCPU()
	}

	pool := worker.NewPoolWithOptions(worker.SurveyFunc(cfg.Game.Rules),
		worker.WithWorkers(numWorkers), worker.WithBufferSize(numWorkers*2))
	results := pool.SurveyAll(fens)

	rows := make([]surveyRow, 0, len(results))
	failed := 0
	for i, res := range results {
		if res.Error != nil {
			cfg.Logf(1, "line %d: %v", lines[i], res.Error)
			failed++
			continue
		}
		rows = append(rows, surveyRow{Line: lines[i], FEN: res.FEN, Survey: res.Survey})
	}
	cfg.Logf(1, "%d positions surveyed, %d skipped", len(rows), failed)

	if cfg.Output.JSON {
		enc := json.NewEncoder(cfg.OutputFile)
		enc.SetIndent("", "  ")
		return enc.Encode(rows)
	}
	for _, row := range rows {
		check := ""
		if row.Checked == row.SideToMove {
			check = ", in check"
		}
		if _, err := fmt.Fprintf(cfg.OutputFile, "%d: %s to move, %d pieces, mobility %d, captures %d, stuck %d%s\n",
			row.Line, row.SideToMove, row.Pieces, row.Mobility, row.Captures, row.Stuck, check); err != nil {
			return err
		}
	}
	return nil
}
