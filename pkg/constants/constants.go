// Package constants provides shared constants for the lotsizing library.
package constants

// Solver constants
const (
	// SolverStartQuantity is the initial order quantity the minimization
	// starts from
	SolverStartQuantity = 1.0

	// SolverTolerance is the convergence tolerance on the order quantity
	SolverTolerance = 1e-8

	// SolverMaxIterations bounds the minimization's iteration budget
	SolverMaxIterations = 1000

	// SolverConvergeIterations is the number of consecutive iterations the
	// objective must stay within SolverTolerance before the search is
	// considered converged
	SolverConvergeIterations = 20
)
