package xg

import (
	"math"

	crerr "github.com/cockroachdb/errors"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// FitOptions control the L2-regularized logistic fit. The objective is
// 0.5*|w|^2 + C*sum(logloss); the intercept is not penalized.
type FitOptions struct {
	C             float64
	MaxIterations int
	Tolerance     float64
}

func DefaultFitOptions() FitOptions {
	return FitOptions{C: 1.0, MaxIterations: 100, Tolerance: 1e-8}
}

type Classifier struct {
	Coef      []float64 `json:"coef"`
	Intercept float64   `json:"intercept"`
}

func (c Classifier) Probability(row []float64) float64 {
	return sigmoid(c.Intercept + floats.Dot(c.Coef, row))
}

// FitLogistic runs Newton-Raphson on standardized rows. It returns the
// number of iterations used.
func FitLogistic(rows [][]float64, y []float64, opts FitOptions) (Classifier, int, error) {
	if len(rows) == 0 || len(rows) != len(y) {
		return Classifier{}, 0, crerr.Newf("fit logistic: %d rows and %d labels", len(rows), len(y))
	}
	if opts.C <= 0 {
		return Classifier{}, 0, crerr.Newf("fit logistic: C must be > 0, got %v", opts.C)
	}
	if opts.MaxIterations <= 0 {
		opts.MaxIterations = DefaultFitOptions().MaxIterations
	}
	if opts.Tolerance <= 0 {
		opts.Tolerance = DefaultFitOptions().Tolerance
	}

	width := len(rows[0]) + 1
	theta := make([]float64, width)
	grad := make([]float64, width)
	hess := mat.NewSymDense(width, nil)
	xi := make([]float64, width)

	iterations := 0
	for iterations < opts.MaxIterations {
		iterations++

		for j := range grad {
			grad[j] = 0
		}
		hess.Zero()

		for i, row := range rows {
			xi[0] = 1
			copy(xi[1:], row)
			p := sigmoid(floats.Dot(theta, xi))
			residual := opts.C * (p - y[i])
			weight := opts.C * p * (1 - p)
			floats.AddScaled(grad, residual, xi)
			hess.SymRankOne(hess, weight, mat.NewVecDense(width, xi))
		}
		for j := 1; j < width; j++ {
			grad[j] += theta[j]
			hess.SetSym(j, j, hess.At(j, j)+1)
		}

		var step mat.VecDense
		if err := step.SolveVec(hess, mat.NewVecDense(width, grad)); err != nil {
			var cond mat.Condition
			if !crerr.As(err, &cond) {
				return Classifier{}, iterations, crerr.Wrap(err, "solve newton step")
			}
		}

		maxStep := 0.0
		for j := 0; j < width; j++ {
			d := step.AtVec(j)
			theta[j] -= d
			maxStep = math.Max(maxStep, math.Abs(d))
		}
		if maxStep < opts.Tolerance {
			break
		}
	}

	return Classifier{Coef: append([]float64(nil), theta[1:]...), Intercept: theta[0]}, iterations, nil
}

func sigmoid(z float64) float64 {
	if z >= 0 {
		return 1 / (1 + math.Exp(-z))
	}
	e := math.Exp(z)
	return e / (1 + e)
}
