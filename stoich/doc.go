// SPDX-License-Identifier: MIT

// Package stoich derives amounts from a balanced equation: molar masses of
// compounds and the limiting-reagent calculation.
//
// Given one Amount per compound (grams, moles, excess or unknown),
// Calculate finds the reaction extent allowed by the scarcest reactant and
// reports, for every compound, how many moles remain, were consumed or were
// produced.
//
// Amounts use float64: molar masses are measured quantities, unlike the
// exact integer coefficients they are combined with.
package stoich
