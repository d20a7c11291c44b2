package xg

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/integrate"
	"gonum.org/v1/gonum/stat"
)

const probabilityClip = 1e-15

// ROCAUC is the area under the ROC curve. It is NaN when y holds one class.
func ROCAUC(y, p []float64) float64 {
	if len(y) == 0 || len(y) != len(p) {
		return math.NaN()
	}

	order := make([]int, len(p))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool { return p[order[a]] < p[order[b]] })

	scores := make([]float64, len(p))
	classes := make([]bool, len(p))
	positives := 0
	for i, idx := range order {
		scores[i] = p[idx]
		classes[i] = y[idx] == 1
		if classes[i] {
			positives++
		}
	}
	if positives == 0 || positives == len(p) {
		return math.NaN()
	}

	tpr, fpr, _ := stat.ROC(nil, scores, classes, nil)
	return integrate.Trapezoidal(fpr, tpr)
}

// LogLoss is the mean negative log-likelihood with p clipped to [eps, 1-eps].
func LogLoss(y, p []float64) float64 {
	if len(y) == 0 {
		return math.NaN()
	}
	sum := 0.0
	for i := range y {
		q := math.Min(math.Max(p[i], probabilityClip), 1-probabilityClip)
		sum -= y[i]*math.Log(q) + (1-y[i])*math.Log(1-q)
	}
	return sum / float64(len(y))
}

func Brier(y, p []float64) float64 {
	if len(y) == 0 {
		return math.NaN()
	}
	sum := 0.0
	for i := range y {
		d := p[i] - y[i]
		sum += d * d
	}
	return sum / float64(len(y))
}

// Pearson is the correlation of a and b, NaN when either is constant.
func Pearson(a, b []float64) float64 {
	if len(a) < 2 || len(a) != len(b) {
		return math.NaN()
	}
	return stat.Correlation(a, b, nil)
}

// CalibrationBin is one uniform-width bin of a reliability table.
type CalibrationBin struct {
	Lower         float64 `json:"lower"`
	Upper         float64 `json:"upper"`
	Count         int     `json:"count"`
	MeanPredicted float64 `json:"mean_predicted"`
	FractionGoals float64 `json:"fraction_goals"`
}

// Reliability bins predictions into n equal-width bins over [0, 1]. Empty
// bins are left out.
func Reliability(y, p []float64, n int) []CalibrationBin {
	if n <= 0 {
		return nil
	}
	sums := make([]float64, n)
	hits := make([]float64, n)
	counts := make([]int, n)
	for i := range p {
		b := int(p[i] * float64(n))
		if b >= n {
			b = n - 1
		}
		if b < 0 {
			b = 0
		}
		sums[b] += p[i]
		hits[b] += y[i]
		counts[b]++
	}

	out := make([]CalibrationBin, 0, n)
	width := 1 / float64(n)
	for b := 0; b < n; b++ {
		if counts[b] == 0 {
			continue
		}
		out = append(out, CalibrationBin{
			Lower:         float64(b) * width,
			Upper:         float64(b+1) * width,
			Count:         counts[b],
			MeanPredicted: sums[b] / float64(counts[b]),
			FractionGoals: hits[b] / float64(counts[b]),
		})
	}
	return out
}

// Summary is a set of probability-quality metrics for one prediction vector.
type Summary struct {
	LogLoss float64 `json:"log_loss"`
	Brier   float64 `json:"brier"`
	ROCAUC  float64 `json:"roc_auc"`
}

func Summarize(y, p []float64) Summary {
	return Summary{LogLoss: LogLoss(y, p), Brier: Brier(y, p), ROCAUC: ROCAUC(y, p)}
}

func (s Summary) finite() bool {
	for _, v := range []float64{s.LogLoss, s.Brier, s.ROCAUC} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}
