package equation_test

import (
	"fmt"

	"github.com/katalvlaran/stoic/equation"
)

// ExampleParse shows the parsed model of a combustion equation.
func ExampleParse() {
	eq, err := equation.Parse("CH4+O2 → CO2+H2O")
	if err != nil {
		fmt.Println(err)
		return
	}
	for _, c := range eq.Compounds {
		fmt.Println(c.Side, c.Elements)
	}
	fmt.Println(eq)
	// Output:
	// left [{C 1} {H 4}]
	// left [{O 2}]
	// right [{C 1} {O 2}]
	// right [{H 2} {O 1}]
	// CH4 + O2 = CO2 + H2O
}

// ExampleParse_error shows a typed parse failure.
func ExampleParse_error() {
	_, err := equation.Parse("2H2 + O2 = 2H2O")
	fmt.Println(err)
	// Output:
	// equation: number not attached to an element at 0: "2"
}
