/*
Package polycalc is a library and command-line calculator for sparse multivariate polynomials with
wrapping 64-bit integer coefficients.

A polynomial in the variables x_0, x_1, ... is represented recursively as a sum of monomials
coeff * x_0^exp whose coefficients are polynomials in x_1, x_2, .... The packages are:

  - poly: canonical polynomial values, arithmetic, evaluation, composition, encoding and sampling.
  - parser: the single-line literal syntax, e.g. "((1,2),3)+(-4,0)".
  - calculator: a line-oriented stack calculator built on both.
  - config: the YAML configuration of the polycalc command.
*/
package polycalc
