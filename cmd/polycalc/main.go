// Polycalc is a stack calculator over sparse multivariate polynomials with integer coefficients.
//
// Usage:
//
//	# Run the calculator on the standard input
//	polycalc run < commands.txt
//
//	# Run the calculator on a file, with a configuration file and debug logs
//	polycalc run commands.txt --config polycalc.yaml --verbose
//
//	# Time the polynomial operations on random operands
//	polycalc bench --runs 100
//
//	# Show version information
//	polycalc version
package main

func main() {
	Execute()
}
