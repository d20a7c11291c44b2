// Package bronze persists raw snapshot artifacts as zstd-compressed JSON
// lines, one file per unit: <root>/<layer>/<key>.jsonl.zst.
package bronze

import (
	"bytes"
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	crerr "github.com/cockroachdb/errors"
	"github.com/klauspost/compress/zstd"
	"github.com/valyala/bytebufferpool"

	"github.com/riskibarqy/football-analytics/internal/domain/raw"
)

const Extension = ".jsonl.zst"

// Store is safe for concurrent use; EncodeAll and DecodeAll are.
type Store struct {
	root    string
	encoder *zstd.Encoder
	decoder *zstd.Decoder
}

func NewStore(root string) (*Store, error) {
	if strings.TrimSpace(root) == "" {
		return nil, crerr.New("bronze root is required")
	}
	enc, err := zstd.NewWriter(nil,
		zstd.WithEncoderLevel(zstd.SpeedDefault),
		zstd.WithEncoderConcurrency(1),
	)
	if err != nil {
		return nil, crerr.Wrap(err, "create zstd encoder")
	}
	dec, err := zstd.NewReader(nil)
	if err != nil {
		return nil, crerr.Wrap(err, "create zstd decoder")
	}
	return &Store{root: root, encoder: enc, decoder: dec}, nil
}

func (s *Store) Close() {
	_ = s.encoder.Close()
	s.decoder.Close()
}

// Path returns the artifact path of unit.
func (s *Store) Path(unit raw.Unit) string {
	return filepath.Join(s.root, string(unit.Layer), unit.Key()+Extension)
}

func (s *Store) Exists(_ context.Context, unit raw.Unit) (bool, error) {
	_, err := os.Stat(s.Path(unit))
	if err == nil {
		return true, nil
	}
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	return false, crerr.Wrapf(err, "stat %s", unit)
}

// Write replaces the artifact through a temp file and rename, so readers see
// either the old file or the new one.
func (s *Store) Write(ctx context.Context, unit raw.Unit, records []*raw.Record) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)
	for _, rec := range records {
		if err := raw.AppendJSON(buf, rec); err != nil {
			return crerr.Wrapf(err, "encode %s", unit)
		}
	}
	compressed := s.encoder.EncodeAll(buf.B, nil)

	path := s.Path(unit)
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return crerr.Wrapf(err, "create %s", dir)
	}

	tmp, err := os.CreateTemp(dir, "."+unit.Key()+".*.tmp")
	if err != nil {
		return crerr.Wrapf(err, "create temp file for %s", unit)
	}
	tmpName := tmp.Name()
	defer func() { _ = os.Remove(tmpName) }()

	if _, err := tmp.Write(compressed); err != nil {
		_ = tmp.Close()
		return crerr.Wrapf(err, "write %s", unit)
	}
	if err := tmp.Sync(); err != nil {
		_ = tmp.Close()
		return crerr.Wrapf(err, "sync %s", unit)
	}
	if err := tmp.Close(); err != nil {
		return crerr.Wrapf(err, "close %s", unit)
	}
	if err := os.Rename(tmpName, path); err != nil {
		return crerr.Wrapf(err, "publish %s", unit)
	}
	return nil
}

func (s *Store) Read(ctx context.Context, unit raw.Unit) ([]*raw.Record, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	compressed, err := os.ReadFile(s.Path(unit))
	if err != nil {
		return nil, crerr.Wrapf(err, "read %s", unit)
	}
	data, err := s.decoder.DecodeAll(compressed, nil)
	if err != nil {
		return nil, crerr.Wrapf(err, "decompress %s", unit)
	}

	out := make([]*raw.Record, 0, bytes.Count(data, []byte{'\n'}))
	for len(data) > 0 {
		line := data
		if i := bytes.IndexByte(data, '\n'); i >= 0 {
			line, data = data[:i], data[i+1:]
		} else {
			data = nil
		}
		if len(bytes.TrimSpace(line)) == 0 {
			continue
		}
		rec, err := raw.DecodeLine(line)
		if err != nil {
			return nil, crerr.Wrapf(err, "decode %s line %d", unit, len(out)+1)
		}
		out = append(out, rec)
	}
	return out, nil
}

// List returns the units of layer sorted by file name. A missing layer
// directory is an empty layer.
func (s *Store) List(_ context.Context, layer raw.Layer) ([]raw.Unit, error) {
	dir := filepath.Join(s.root, string(layer))
	entries, err := os.ReadDir(dir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, crerr.Wrapf(err, "list %s", dir)
	}

	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), Extension) || strings.HasPrefix(e.Name(), ".") {
			continue
		}
		names = append(names, e.Name())
	}
	sort.Strings(names)

	out := make([]raw.Unit, 0, len(names))
	for _, name := range names {
		unit, err := raw.ParseUnit(layer, strings.TrimSuffix(name, Extension))
		if err != nil {
			return nil, crerr.Wrapf(err, "parse artifact %s", name)
		}
		out = append(out, unit)
	}
	return out, nil
}
