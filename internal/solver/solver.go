// Package solver provides derivative-free minimization of one-dimensional
// objectives.
package solver

import (
	"fmt"

	"github.com/inventoryanalytics/lotsizing/pkg/constants"
	"go.uber.org/zap"
	"gonum.org/v1/gonum/optimize"
)

// Problem describes a one-dimensional minimization.
type Problem struct {
	// Objective is the function to minimize. It must be defined for all
	// values the search may probe; return +Inf to reject a region.
	Objective func(x float64) float64

	// Start is the point the simplex is built around.
	Start float64

	// Tolerance is the convergence tolerance on the independent variable.
	// Zero selects constants.SolverTolerance.
	Tolerance float64

	// MaxIterations bounds the search. Zero selects
	// constants.SolverMaxIterations.
	MaxIterations int
}

// Minimizer runs Nelder-Mead simplex searches.
type Minimizer struct {
	logger *zap.Logger
}

// NewMinimizer creates a minimizer with the given logger.
// If logger is nil, it will use a no-op logger to prevent panics.
func NewMinimizer(logger *zap.Logger) *Minimizer {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Minimizer{logger: logger}
}

// Minimize searches for the minimizer of p.Objective starting from p.Start
// and returns its location. A search that exhausts its iteration budget
// returns an error rather than the best point found so far.
func (m *Minimizer) Minimize(p Problem) (float64, error) {
	if p.Objective == nil {
		return 0, fmt.Errorf("solver: objective function is required")
	}

	tolerance := p.Tolerance
	if tolerance == 0 {
		tolerance = constants.SolverTolerance
	}
	maxIterations := p.MaxIterations
	if maxIterations == 0 {
		maxIterations = constants.SolverMaxIterations
	}

	problem := optimize.Problem{
		Func: func(x []float64) float64 {
			return p.Objective(x[0])
		},
	}
	// The objective is quadratically flat near its minimum, so a tolerance
	// of tol on the independent variable corresponds to roughly tol^2 on
	// the objective value.
	settings := &optimize.Settings{
		MajorIterations: maxIterations,
		Converger: &optimize.FunctionConverge{
			Absolute:   tolerance * tolerance,
			Iterations: constants.SolverConvergeIterations,
		},
	}

	result, err := optimize.Minimize(problem, []float64{p.Start}, settings, &optimize.NelderMead{})
	if err != nil {
		return 0, fmt.Errorf("solver: minimization failed: %w", err)
	}
	if err := result.Status.Err(); err != nil {
		return 0, fmt.Errorf("solver: minimization did not converge: %w", err)
	}
	switch result.Status {
	case optimize.Success, optimize.FunctionThreshold, optimize.FunctionConvergence,
		optimize.StepConvergence, optimize.MethodConverge:
	default:
		return 0, fmt.Errorf("solver: minimization stopped at %v after %d iterations without converging",
			result.Status, result.Stats.MajorIterations)
	}

	m.logger.Debug("minimization converged",
		zap.Float64("start", p.Start),
		zap.Float64("x", result.X[0]),
		zap.Float64("objective", result.F),
		zap.Int("iterations", result.Stats.MajorIterations),
		zap.Int("evaluations", result.Stats.FuncEvaluations),
	)
	return result.X[0], nil
}
