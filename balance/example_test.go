package balance_test

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/stoic/balance"
)

// ExampleBalanceString balances propane combustion.
func ExampleBalanceString() {
	eq, err := balance.BalanceString("C3H8 + O2 = CO2 + H2O")
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(eq)
	fmt.Println(eq.Coefficients())
	// Output:
	// C3H8 + 5O2 = 3CO2 + 4H2O
	// [1 5 3 4]
}

// ExampleBalanceString_oneSided shows the error for an element on one side.
func ExampleBalanceString_oneSided() {
	_, err := balance.BalanceString("H2 = O2")
	fmt.Println(errors.Is(err, balance.ErrNoSolution))
	fmt.Println(err)
	// Output:
	// true
	// Balance: balance: no solution: element on one side only: H missing on the right
}

// ExamplePreview shows the live-preview fallbacks.
func ExamplePreview() {
	fmt.Printf("%q\n", balance.Preview("Al + O2 = Al2O3"))
	fmt.Printf("%q\n", balance.Preview("Al + O2 = Al2O3 + N"))
	fmt.Printf("%q\n", balance.Preview("Al + O2 ="))
	// Output:
	// "4Al + 3O2 = 2Al2O3"
	// "Al + O2 = Al2O3 + N"
	// ""
}
