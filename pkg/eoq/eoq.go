// Package eoq implements the Economic Order Quantity model: the order
// quantity minimizing per-period ordering and holding cost under constant
// deterministic demand (Harris 1913).
package eoq

import (
	"errors"
	"fmt"
	"math"

	"github.com/inventoryanalytics/lotsizing/internal/solver"
	"github.com/inventoryanalytics/lotsizing/pkg/constants"
	"github.com/inventoryanalytics/lotsizing/pkg/mathutil"
	"go.uber.org/zap"
)

// Error kinds reported by the model. Callers branch with errors.Is.
var (
	// ErrInvalidParameter indicates a non-positive or non-finite cost
	// parameter.
	ErrInvalidParameter = errors.New("invalid model parameter")

	// ErrInvalidQuantity indicates a non-positive or non-finite order
	// quantity passed to a cost evaluator.
	ErrInvalidQuantity = errors.New("invalid order quantity")

	// ErrNonConvergence indicates the minimization exhausted its budget
	// without converging.
	ErrNonConvergence = errors.New("eoq minimization did not converge")
)

// Model holds the cost parameters of an Economic Order Quantity instance.
// It is an immutable value; every method is a pure function of the model
// and its arguments, so a single instance is safe for concurrent use.
type Model struct {
	// K is the fixed cost incurred per order placed.
	K float64
	// H is the holding cost per unit of inventory per period.
	H float64
	// D is the demand per period.
	D float64
	// V is the unit purchasing cost.
	V float64

	logger *zap.Logger
}

// New constructs a Model, rejecting non-positive or non-finite parameters.
// Models built as struct literals bypass this check and are validated at
// first evaluation instead.
func New(k, h, d, v float64) (Model, error) {
	m := Model{K: k, H: h, D: d, V: v}
	if err := m.validate(); err != nil {
		return Model{}, err
	}
	return m, nil
}

// WithLogger returns a copy of the model that logs the minimization at
// debug level. A nil logger leaves the model silent.
func (m Model) WithLogger(logger *zap.Logger) Model {
	m.logger = logger
	return m
}

func (m Model) validate() error {
	parameters := []struct {
		name  string
		value float64
	}{
		{"K", m.K},
		{"h", m.H},
		{"d", m.D},
		{"v", m.V},
	}
	for _, p := range parameters {
		if !mathutil.IsStrictlyPositive(p.value) {
			return fmt.Errorf("%w: %s = %v, must be a finite positive number", ErrInvalidParameter, p.name, p.value)
		}
	}
	return nil
}

func validateQuantity(q float64) error {
	if !mathutil.IsStrictlyPositive(q) {
		return fmt.Errorf("%w: Q = %v, must be a finite positive number", ErrInvalidQuantity, q)
	}
	return nil
}

// FixedOrderingCost returns the per-period fixed ordering cost for order
// quantity q: the ordering cost K amortized over the cycle length q/d.
func (m Model) FixedOrderingCost(q float64) (float64, error) {
	if err := m.validate(); err != nil {
		return 0, err
	}
	if err := validateQuantity(q); err != nil {
		return 0, err
	}
	return m.K / (q / m.D), nil
}

// VariableOrderingCost returns the per-period purchasing cost d*v. The
// value does not depend on q; the quantity is validated anyway so that all
// cost primitives agree on their domain.
func (m Model) VariableOrderingCost(q float64) (float64, error) {
	if err := m.validate(); err != nil {
		return 0, err
	}
	if err := validateQuantity(q); err != nil {
		return 0, err
	}
	return m.D * m.V, nil
}

// HoldingCost returns the per-period holding cost on the average inventory
// level q/2.
func (m Model) HoldingCost(q float64) (float64, error) {
	if err := m.validate(); err != nil {
		return 0, err
	}
	if err := validateQuantity(q); err != nil {
		return 0, err
	}
	return m.H * q / 2, nil
}

// RelevantCost returns the per-period cost relevant to lot sizing: fixed
// ordering plus holding cost. The quantity-independent purchasing cost is
// excluded, so this is the objective ComputeEOQ minimizes.
func (m Model) RelevantCost(q float64) (float64, error) {
	fixed, err := m.FixedOrderingCost(q)
	if err != nil {
		return 0, err
	}
	holding, err := m.HoldingCost(q)
	if err != nil {
		return 0, err
	}
	return fixed + holding, nil
}

// TotalCost returns the full per-period cost for order quantity q,
// purchasing cost included.
func (m Model) TotalCost(q float64) (float64, error) {
	relevant, err := m.RelevantCost(q)
	if err != nil {
		return 0, err
	}
	variable, err := m.VariableOrderingCost(q)
	if err != nil {
		return 0, err
	}
	return relevant + variable, nil
}

// relevantCostObjective is RelevantCost without per-call validation, for
// the minimization loop. The simplex must stay on positive quantities: at
// q <= 0 the fixed term flips sign and the cost is meaningless, so those
// points are rejected with +Inf.
func (m Model) relevantCostObjective(q float64) float64 {
	if q <= 0 {
		return math.Inf(1)
	}
	return m.K/(q/m.D) + m.H*q/2
}

// ComputeEOQ finds the order quantity minimizing RelevantCost using a
// derivative-free Nelder-Mead search started from quantity 1. The result
// agrees with the closed form sqrt(2*K*d/h); the search is kept so that
// model variants without a closed form share the same machinery.
func (m Model) ComputeEOQ() (float64, error) {
	if err := m.validate(); err != nil {
		return 0, err
	}
	minimizer := solver.NewMinimizer(m.logger)
	q, err := minimizer.Minimize(solver.Problem{
		Objective: m.relevantCostObjective,
		Start:     constants.SolverStartQuantity,
		Tolerance: constants.SolverTolerance,
	})
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrNonConvergence, err)
	}
	return q, nil
}

// Coverage returns the number of periods of demand the optimal order
// quantity satisfies.
func (m Model) Coverage() (float64, error) {
	q, err := m.ComputeEOQ()
	if err != nil {
		return 0, err
	}
	return q / m.D, nil
}

// AverageInventory returns the average inventory level under the optimal
// order quantity.
func (m Model) AverageInventory() (float64, error) {
	q, err := m.ComputeEOQ()
	if err != nil {
		return 0, err
	}
	return q / 2, nil
}

// ITR returns the Implied Turnover Ratio: the number of times inventory
// turns over per period under the optimal order quantity.
func (m Model) ITR() (float64, error) {
	q, err := m.ComputeEOQ()
	if err != nil {
		return 0, err
	}
	return 2 * m.D / q, nil
}

// SensitivityToQ returns the relevant-cost penalty multiplier for ordering
// q instead of the optimal quantity: 0.5*(Qopt/q + q/Qopt). The ratio is 1
// at the optimum and greater than 1 everywhere else; this is an exact
// property of the EOQ cost curve, not an approximation.
func (m Model) SensitivityToQ(q float64) (float64, error) {
	if err := m.validate(); err != nil {
		return 0, err
	}
	if err := validateQuantity(q); err != nil {
		return 0, err
	}
	opt, err := m.ComputeEOQ()
	if err != nil {
		return 0, err
	}
	return 0.5 * (opt/q + q/opt), nil
}

// ReorderPoint returns the inventory level at which to place a new order
// given a deterministic replenishment lead time, in periods. A zero lead
// time is valid and means ordering on stockout.
func (m Model) ReorderPoint(leadTime float64) (float64, error) {
	if err := m.validate(); err != nil {
		return 0, err
	}
	if !mathutil.IsFiniteNonNegative(leadTime) {
		return 0, fmt.Errorf("%w: lead time = %v, must be a finite non-negative number", ErrInvalidParameter, leadTime)
	}
	return m.D * leadTime, nil
}
