// Package modelstore keeps trained model artifacts as JSON files.
package modelstore

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/bytedance/sonic"
	crerr "github.com/cockroachdb/errors"

	"github.com/riskibarqy/football-analytics/internal/domain/xg"
)

// XGModelName is the artifact file name of the xG model.
const XGModelName = "xg_model.json"

var ErrModelNotFound = errors.New("model artifact not found")

// FileStore saves one model to <dir>/<name>.
type FileStore struct {
	dir  string
	name string
}

func NewFileStore(dir, name string) *FileStore {
	if strings.TrimSpace(name) == "" {
		name = XGModelName
	}
	return &FileStore{dir: dir, name: name}
}

func (s *FileStore) Path() string {
	return filepath.Join(s.dir, s.name)
}

// Save refuses an unfit model and replaces the artifact atomically.
func (s *FileStore) Save(ctx context.Context, m xg.Model) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if !m.Fit() {
		return xg.ErrModelNotFit
	}

	data, err := sonic.ConfigStd.MarshalIndent(m, "", "  ")
	if err != nil {
		return crerr.Wrap(err, "encode xg model")
	}

	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return crerr.Wrapf(err, "create %s", s.dir)
	}
	tmp, err := os.CreateTemp(s.dir, "."+s.name+".*.tmp")
	if err != nil {
		return crerr.Wrap(err, "create temp model file")
	}
	tmpName := tmp.Name()
	defer func() { _ = os.Remove(tmpName) }()

	if _, err := tmp.Write(append(data, '\n')); err != nil {
		_ = tmp.Close()
		return crerr.Wrap(err, "write model file")
	}
	if err := tmp.Close(); err != nil {
		return crerr.Wrap(err, "close model file")
	}
	if err := os.Rename(tmpName, s.Path()); err != nil {
		return crerr.Wrap(err, "publish model file")
	}
	return nil
}

func (s *FileStore) Load(ctx context.Context) (xg.Model, error) {
	if err := ctx.Err(); err != nil {
		return xg.Model{}, err
	}

	data, err := os.ReadFile(s.Path())
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return xg.Model{}, crerr.Wrapf(ErrModelNotFound, "%s", s.Path())
		}
		return xg.Model{}, crerr.Wrapf(err, "read %s", s.Path())
	}

	var m xg.Model
	if err := sonic.ConfigStd.Unmarshal(data, &m); err != nil {
		return xg.Model{}, crerr.Wrapf(err, "decode %s", s.Path())
	}
	if !m.Fit() {
		return xg.Model{}, crerr.Wrapf(xg.ErrModelNotFit, "%s", s.Path())
	}
	return m, nil
}
