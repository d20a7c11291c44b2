package modelstore

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/riskibarqy/football-analytics/internal/domain/xg"
)

func fitModel() xg.Model {
	ones := make([]float64, xg.NumFeatures)
	zeros := make([]float64, xg.NumFeatures)
	coef := make([]float64, xg.NumFeatures)
	for i := range ones {
		ones[i] = 1
		coef[i] = float64(i) / 10
	}
	return xg.Model{
		Version:      1,
		FeatureNames: xg.FeatureNames,
		Scaler:       xg.Scaler{Mean: zeros, Scale: ones},
		Classifier:   xg.Classifier{Coef: coef, Intercept: -2.5},
		C:            1,
		TrainedAt:    time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC),
		Samples:      100,
		Goals:        11,
	}
}

func TestFileStore_RoundTrip(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "models")
	store := NewFileStore(dir, "")
	ctx := context.Background()

	want := fitModel()
	require.NoError(t, store.Save(ctx, want))
	assert.Equal(t, filepath.Join(dir, XGModelName), store.Path())

	got, err := store.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, want.Scaler, got.Scaler)
	assert.Equal(t, want.Classifier, got.Classifier)
	assert.True(t, want.TrainedAt.Equal(got.TrainedAt))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1, "no temp files left behind")
}

func TestFileStore_Missing(t *testing.T) {
	_, err := NewFileStore(t.TempDir(), "").Load(context.Background())
	require.ErrorIs(t, err, ErrModelNotFound)
}

func TestFileStore_RejectsUnfitModel(t *testing.T) {
	store := NewFileStore(t.TempDir(), "")
	require.ErrorIs(t, store.Save(context.Background(), xg.Model{}), xg.ErrModelNotFit)

	require.NoError(t, os.WriteFile(store.Path(), []byte(`{"version": 1}`), 0o644))
	_, err := store.Load(context.Background())
	require.ErrorIs(t, err, xg.ErrModelNotFit)
}
