// Package latex converts LaTeX formulas into a tree of tokens.
//
// The package has built-in knowledge about the argument structure of
// the macros and environments used in formulas, including the matrix
// environments of the amsmath package.
package latex
