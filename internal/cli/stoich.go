// SPDX-License-Identifier: MIT

package cli

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/stoic/balance"
	"github.com/katalvlaran/stoic/internal/logger"
	"github.com/katalvlaran/stoic/stoich"
)

var stoichAmounts []string

var stoichCmd = &cobra.Command{
	Use:   "stoich <equation>",
	Short: "Compute the limiting reagent and resulting amounts",
	Long: `Balances the equation, then computes the reaction extent from the
given amounts. Pass one --amount per compound in equation order:

  12.5g    mass in grams
  0.3mol   amount in moles
  excess   present in excess, never limiting
  ?        unknown, to be computed

Missing trailing amounts are treated as unknown.`,
	Example: `  stoic stoich "H2 + O2 = H2O" --amount 4g --amount excess`,
	Args:    cobra.ExactArgs(1),
	RunE:    runStoich,
}

func init() {
	stoichCmd.Flags().StringArrayVarP(&stoichAmounts, "amount", "a", nil, "amount for the next compound (repeatable)")
	rootCmd.AddCommand(stoichCmd)
}

func runStoich(cmd *cobra.Command, args []string) error {
	eq, err := balance.BalanceString(args[0], session.options...)
	if err != nil {
		return err
	}
	logger.Debug("balanced: %s", eq)

	if len(stoichAmounts) > eq.Len() {
		return fmt.Errorf("%w: got %d, want at most %d", stoich.ErrAmountCount, len(stoichAmounts), eq.Len())
	}
	amounts := make([]stoich.Amount, eq.Len())
	for i, s := range stoichAmounts {
		if amounts[i], err = stoich.ParseAmount(s); err != nil {
			return err
		}
	}

	rep, err := stoich.Calculate(eq, amounts)
	if err != nil {
		return err
	}
	logger.Debug("extent: %g mol", rep.Extent)

	cmd.Println(session.styles.Equation(eq))
	cmd.Println(stoichTable(rep))
	cmd.Println(session.styles.Muted.Render("extent: " + formatQty(rep.Extent) + " mol"))

	return nil
}

// stoichTable renders one row per compound.
func stoichTable(rep *stoich.Report) string {
	s := session.styles
	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(s.Separator).
		Headers("compound", "input", "g/mol", "mol", "g", "").
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return s.Title.Padding(0, 1)
			}
			return lipgloss.NewStyle().Padding(0, 1)
		})

	for _, r := range rep.Results {
		note := r.Role.String()
		if r.Limiting {
			note += " (limiting)"
		}
		t.Row(
			r.Compound.Formula(),
			r.Input.String(),
			formatQty(r.MolarMass),
			formatQty(r.Moles),
			formatQty(r.Grams),
			note,
		)
	}

	return t.String()
}

func formatQty(v float64) string {
	return strconv.FormatFloat(v, 'f', 4, 64)
}
