// Package expr implements the calculator's expression pipeline.
//
// An expression string moves through four stages: textual normalization
// (a bare leading point gains a zero, a percent suffix becomes a
// multiplication by 0.01), tokenizing, precedence parsing, and evaluation
// to a float64. Format renders the result in the calculator's canonical
// display form: six fractional digits with trailing zeros and a trailing
// point stripped.
//
// Every failure anywhere in the pipeline is an ordinary error value, and
// Evaluate collapses all of them to the single display string Invalid.
package expr
