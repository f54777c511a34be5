package analysis

import (
	"errors"
	"math"

	"gonum.org/v1/gonum/stat"

	"github.com/san-kum/quadlab/internal/sweep"
)

var ErrTooFewPoints = errors.New("analysis: need at least two trials with positive error")

type Fit struct {
	// Order is the fitted p in err ~ C n^-p.
	Order float64
	// LogC is the intercept ln C.
	LogC float64
	// R2 is the coefficient of determination of the log-log fit.
	R2     float64
	Points int
}

// ObservedOrder fits ln err = ln C - p ln n by least squares over the trials
// with a positive parameter and a finite, positive error. Exact results and
// trials without a reference value carry no slope information and are skipped.
func ObservedOrder(trials []sweep.Trial) (Fit, error) {
	xs := make([]float64, 0, len(trials))
	ys := make([]float64, 0, len(trials))
	for _, tr := range trials {
		if tr.Param <= 0 || !(tr.AbsError > 0) || math.IsInf(tr.AbsError, 0) {
			continue
		}
		xs = append(xs, math.Log(float64(tr.Param)))
		ys = append(ys, math.Log(tr.AbsError))
	}
	if len(xs) < 2 || allEqual(xs) {
		return Fit{}, ErrTooFewPoints
	}

	alpha, beta := stat.LinearRegression(xs, ys, nil, false)
	return Fit{
		Order:  -beta,
		LogC:   alpha,
		R2:     stat.RSquared(xs, ys, nil, alpha, beta),
		Points: len(xs),
	}, nil
}

func allEqual(xs []float64) bool {
	for _, x := range xs[1:] {
		if x != xs[0] {
			return false
		}
	}
	return true
}

// Efficiency is the absolute error times the evaluation count; lower is
// better. NaN when the trial has no reference value.
func Efficiency(tr sweep.Trial) float64 {
	if tr.Report == nil || math.IsNaN(tr.AbsError) {
		return math.NaN()
	}
	return tr.AbsError * float64(tr.Report.Evals)
}
