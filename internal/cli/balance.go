// SPDX-License-Identifier: MIT

package cli

import (
	"bufio"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/stoic/balance"
	"github.com/katalvlaran/stoic/equation"
	"github.com/katalvlaran/stoic/internal/logger"
	"github.com/katalvlaran/stoic/matrix"
)

var (
	balanceJSON    bool
	balanceLenient bool
	balanceMulti   string
	balancePivot   string
)

var balanceCmd = &cobra.Command{
	Use:   "balance [equation...]",
	Short: "Balance one or more chemical equations",
	Long: `Balances each equation given as an argument, or one equation per line
read from stdin when no argument is given.

The minimal positive integer coefficients are computed exactly. Equations
with an element on one side only, or without a unique solution, are
reported as errors.`,
	RunE: runBalance,
}

func init() {
	balanceCmd.Flags().BoolVar(&balanceJSON, "json", false, "output results as JSON")
	balanceCmd.Flags().BoolVar(&balanceLenient, "lenient", false, "clamp non-positive coefficients to 1 instead of failing")
	balanceCmd.Flags().StringVar(&balanceMulti, "multi", "", "policy for several independent solutions: reject or combine")
	balanceCmd.Flags().StringVar(&balancePivot, "pivot", "", "pivot row policy: max-abs or first")
	rootCmd.AddCommand(balanceCmd)
}

// balanceResult is the JSON shape of one balanced equation.
type balanceResult struct {
	Input        string  `json:"input"`
	Equation     string  `json:"equation,omitempty"`
	Coefficients []int64 `json:"coefficients,omitempty"`
	Error        string  `json:"error,omitempty"`
}

func runBalance(cmd *cobra.Command, args []string) error {
	opts, err := balanceFlagOptions()
	if err != nil {
		return err
	}

	inputs := args
	if len(inputs) == 0 {
		if inputs, err = readLines(cmd); err != nil {
			return err
		}
	}
	if len(inputs) == 0 {
		return fmt.Errorf("no equation given")
	}

	results := make([]balanceResult, 0, len(inputs))
	failed := 0
	for _, in := range inputs {
		r := balanceResult{Input: in}
		eq, err := balanceOne(in, opts)
		if err != nil {
			r.Error = err.Error()
			failed++
		} else {
			r.Equation = eq.String()
			r.Coefficients = eq.Coefficients()
		}
		results = append(results, r)

		if !balanceJSON {
			printBalance(cmd, eq, err)
		}
	}

	if balanceJSON {
		data, err := json.MarshalIndent(results, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal results: %w", err)
		}
		cmd.Println(string(data))
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d equations could not be balanced", failed, len(inputs))
	}

	return nil
}

// balanceFlagOptions layers command flags over the session options.
func balanceFlagOptions() ([]balance.Option, error) {
	opts := append([]balance.Option{}, session.options...)
	if balanceLenient {
		opts = append(opts, balance.WithStrict(false))
	}
	if balanceMulti != "" {
		m, ok := balance.ParseMultiSolution(balanceMulti)
		if !ok {
			return nil, fmt.Errorf("invalid --multi %q: want reject or combine", balanceMulti)
		}
		opts = append(opts, balance.WithMultiSolution(m))
	}
	if balancePivot != "" {
		p, ok := matrix.ParsePivoting(balancePivot)
		if !ok {
			return nil, fmt.Errorf("invalid --pivot %q: want max-abs or first", balancePivot)
		}
		opts = append(opts, balance.WithPivoting(p))
	}

	return opts, nil
}

// balanceOne parses and balances text, logging every intermediate.
func balanceOne(text string, opts []balance.Option) (*equation.Equation, error) {
	logger.Section("balance " + text)
	eq, err := equation.Parse(text)
	if err != nil {
		logger.Warn("parse failed: %v", err)
		return nil, err
	}
	logger.Debug("compounds: %d (left %d, right %d)", eq.Len(), len(eq.Left()), len(eq.Right()))

	if logger.IsVerbose() {
		if rep, err := balance.Analyze(eq, opts...); err == nil {
			logger.Debug("elements: %s", strings.Join(rep.Symbols, ", "))
			rows, cols := rep.Matrix.Shape()
			logger.Block(fmt.Sprintf("matrix %dx%d", rows, cols), rep.Matrix.String())
			logger.Block("rref", rep.Echelon.R.String())
			logger.Debug("pivots: %v, free: %v", rep.Echelon.Pivots, rep.Echelon.FreeColumns())
			for i, v := range rep.Basis {
				logger.Debug("basis[%d]: %v", i, v)
			}
		}
	}

	out, err := balance.Balance(eq, opts...)
	if err != nil {
		logger.Warn("balance failed: %v", err)
		return nil, err
	}
	logger.Info("coefficients: %v", out.Coefficients())

	return out, nil
}

// printBalance writes one styled result line.
func printBalance(cmd *cobra.Command, eq *equation.Equation, err error) {
	s := session.styles
	if err != nil {
		cmd.Println(s.Error.Render("error: ") + err.Error())
		return
	}
	cmd.Println(s.Equation(eq))
}

// readLines collects non-empty lines from the command's stdin.
func readLines(cmd *cobra.Command) ([]string, error) {
	var lines []string
	sc := bufio.NewScanner(cmd.InOrStdin())
	for sc.Scan() {
		if line := strings.TrimSpace(sc.Text()); line != "" {
			lines = append(lines, line)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("failed to read stdin: %w", err)
	}

	return lines, nil
}
