package raw

import "context"

// Source yields raw StatsBomb-style JSON documents.
type Source interface {
	Competitions(ctx context.Context) ([]byte, error)
	Matches(ctx context.Context, key SeasonKey) ([]byte, error)
	Events(ctx context.Context, matchID int64) ([]byte, error)
	Lineups(ctx context.Context, matchID int64) ([]byte, error)
	// Seasons lists the competition seasons that have a matches document.
	Seasons(ctx context.Context) ([]SeasonKey, error)
}

// SnapshotStore persists bronze artifacts, one per Unit.
type SnapshotStore interface {
	Exists(ctx context.Context, unit Unit) (bool, error)
	Write(ctx context.Context, unit Unit, records []*Record) error
	Read(ctx context.Context, unit Unit) ([]*Record, error)
	List(ctx context.Context, layer Layer) ([]Unit, error)
}
