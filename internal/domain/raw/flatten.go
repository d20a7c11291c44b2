package raw

import (
	"sort"

	"github.com/bytedance/sonic"
	"github.com/bytedance/sonic/ast"
	crerr "github.com/cockroachdb/errors"
)

// DecodeRecords parses a JSON array of objects and flattens each element.
// A top-level object is treated as a one-element array.
func DecodeRecords(data []byte) ([]*Record, error) {
	root, err := sonic.Get(data)
	if err != nil {
		return nil, crerr.Wrap(err, "parse raw document")
	}

	switch root.TypeSafe() {
	case ast.V_OBJECT:
		rec, err := Flatten(&root)
		if err != nil {
			return nil, err
		}
		return []*Record{rec}, nil
	case ast.V_ARRAY:
	default:
		return nil, crerr.Newf("raw document must be a JSON array or object, got type %d", root.TypeSafe())
	}

	out := make([]*Record, 0)
	var walkErr error
	err = root.ForEach(func(path ast.Sequence, node *ast.Node) bool {
		if node.TypeSafe() != ast.V_OBJECT {
			walkErr = crerr.Newf("element %d is not an object", path.Index)
			return false
		}
		rec, err := Flatten(node)
		if err != nil {
			walkErr = crerr.Wrapf(err, "element %d", path.Index)
			return false
		}
		out = append(out, rec)
		return true
	})
	if walkErr != nil {
		return nil, walkErr
	}
	if err != nil {
		return nil, crerr.Wrap(err, "walk raw document")
	}
	return out, nil
}

// Flatten turns nested objects into dotted column names, keeping arrays as
// values. Source key order is preserved and a repeated column keeps its first
// value.
func Flatten(node *ast.Node) (*Record, error) {
	rec := NewRecord(16)
	if err := flattenInto(rec, "", node); err != nil {
		return nil, err
	}
	return rec, nil
}

func flattenInto(rec *Record, prefix string, node *ast.Node) error {
	var walkErr error
	err := node.ForEach(func(path ast.Sequence, child *ast.Node) bool {
		if path.Key == nil {
			return true
		}
		key := *path.Key
		if prefix != "" {
			key = prefix + "." + key
		}

		if child.TypeSafe() == ast.V_OBJECT {
			if walkErr = flattenInto(rec, key, child); walkErr != nil {
				return false
			}
			return true
		}

		value, err := child.InterfaceUseNumber()
		if err != nil {
			walkErr = crerr.Wrapf(err, "decode %s", key)
			return false
		}
		rec.Set(key, value)
		return true
	})
	if walkErr != nil {
		return walkErr
	}
	if err != nil {
		return crerr.Wrapf(err, "walk object %q", prefix)
	}
	return nil
}

// FlattenMap flattens an already decoded object, such as one freeze-frame
// entry. Map keys carry no order, so they are visited sorted.
func FlattenMap(m map[string]any) *Record {
	rec := NewRecord(len(m))
	flattenMapInto(rec, "", m)
	return rec
}

func flattenMapInto(rec *Record, prefix string, m map[string]any) {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		key := k
		if prefix != "" {
			key = prefix + "." + k
		}
		if child, ok := m[k].(map[string]any); ok {
			flattenMapInto(rec, key, child)
			continue
		}
		rec.Set(key, m[k])
	}
}
