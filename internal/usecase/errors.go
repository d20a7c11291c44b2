package usecase

import "errors"

var (
	ErrInvalidInput          = errors.New("invalid input")
	ErrNotFound              = errors.New("resource not found")
	ErrDependencyUnavailable = errors.New("dependency unavailable")
	ErrStageFailed           = errors.New("pipeline stage failed")
	// ErrNoBronze means a bronze layer has no artifacts to normalize.
	ErrNoBronze = errors.New("bronze layer is empty")
	// ErrQualityGate means a trained model scored below the configured floor
	// and was not persisted.
	ErrQualityGate = errors.New("model below quality gate")
)
