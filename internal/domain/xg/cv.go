package xg

import (
	"context"
	"math"
	"math/rand"
	"sort"

	crerr "github.com/cockroachdb/errors"
	"github.com/sourcegraph/conc/pool"
	"gonum.org/v1/gonum/stat"
)

// StratifiedFolds splits sample indices into k test folds, each keeping the
// class ratio of y. Indices are shuffled per class with seed, then dealt
// round-robin.
func StratifiedFolds(y []float64, k int, seed int64) ([][]int, error) {
	if k < 2 {
		return nil, crerr.Newf("stratified folds: k must be >= 2, got %d", k)
	}
	var negatives, positives []int
	for i, label := range y {
		if label == 1 {
			positives = append(positives, i)
		} else {
			negatives = append(negatives, i)
		}
	}
	if len(positives) < k || len(negatives) < k {
		return nil, crerr.Wrapf(ErrInsufficientData,
			"%d goals and %d non-goals cannot fill %d stratified folds", len(positives), len(negatives), k)
	}

	rng := rand.New(rand.NewSource(seed))
	folds := make([][]int, k)
	offset := 0
	for _, class := range [][]int{negatives, positives} {
		rng.Shuffle(len(class), func(i, j int) { class[i], class[j] = class[j], class[i] })
		for i, idx := range class {
			f := (offset + i) % k
			folds[f] = append(folds[f], idx)
		}
		offset += len(class)
	}
	for _, f := range folds {
		sort.Ints(f)
	}
	return folds, nil
}

// CrossValidation is the mean and population std of per-fold scores.
type CrossValidation struct {
	Folds         int       `json:"folds"`
	Seed          int64     `json:"seed"`
	ROCAUCMean    float64   `json:"roc_auc_mean"`
	ROCAUCStd     float64   `json:"roc_auc_std"`
	LogLossMean   float64   `json:"log_loss_mean"`
	LogLossStd    float64   `json:"log_loss_std"`
	FoldROCAUC    []float64 `json:"fold_roc_auc"`
	FoldLogLosses []float64 `json:"fold_log_loss"`
}

type foldScore struct {
	fold    int
	auc     float64
	logLoss float64
}

// CrossValidate fits a fresh scaler and classifier per fold and scores the
// held-out fold. Folds run concurrently.
func CrossValidate(ctx context.Context, rows [][]float64, y []float64, k int, seed int64, opts FitOptions) (CrossValidation, error) {
	folds, err := StratifiedFolds(y, k, seed)
	if err != nil {
		return CrossValidation{}, err
	}

	p := pool.NewWithResults[foldScore]().WithContext(ctx).WithCancelOnError()
	for i, test := range folds {
		i, test := i, test
		p.Go(func(ctx context.Context) (foldScore, error) {
			if err := ctx.Err(); err != nil {
				return foldScore{}, err
			}
			return scoreFold(i, test, rows, y, opts)
		})
	}
	scores, err := p.Wait()
	if err != nil {
		return CrossValidation{}, err
	}
	sort.Slice(scores, func(a, b int) bool { return scores[a].fold < scores[b].fold })

	out := CrossValidation{Folds: k, Seed: seed}
	for _, s := range scores {
		out.FoldROCAUC = append(out.FoldROCAUC, s.auc)
		out.FoldLogLosses = append(out.FoldLogLosses, s.logLoss)
	}
	out.ROCAUCMean, out.ROCAUCStd = stat.PopMeanStdDev(out.FoldROCAUC, nil)
	out.LogLossMean, out.LogLossStd = stat.PopMeanStdDev(out.FoldLogLosses, nil)
	return out, nil
}

func scoreFold(fold int, test []int, rows [][]float64, y []float64, opts FitOptions) (foldScore, error) {
	inTest := make(map[int]struct{}, len(test))
	for _, idx := range test {
		inTest[idx] = struct{}{}
	}

	trainRows := make([][]float64, 0, len(rows)-len(test))
	trainY := make([]float64, 0, len(rows)-len(test))
	for i := range rows {
		if _, ok := inTest[i]; ok {
			continue
		}
		trainRows = append(trainRows, rows[i])
		trainY = append(trainY, y[i])
	}

	scaler := FitScaler(trainRows)
	clf, _, err := FitLogistic(scaler.TransformAll(trainRows), trainY, opts)
	if err != nil {
		return foldScore{}, crerr.Wrapf(err, "fold %d", fold)
	}

	testY := make([]float64, len(test))
	testP := make([]float64, len(test))
	for i, idx := range test {
		testY[i] = y[idx]
		testP[i] = clf.Probability(scaler.Transform(rows[idx]))
	}

	auc := ROCAUC(testY, testP)
	if math.IsNaN(auc) {
		return foldScore{}, crerr.Wrapf(ErrInsufficientData, "fold %d holds a single class", fold)
	}
	return foldScore{fold: fold, auc: auc, logLoss: LogLoss(testY, testP)}, nil
}
