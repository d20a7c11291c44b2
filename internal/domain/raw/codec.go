package raw

import (
	"github.com/bytedance/sonic"
	crerr "github.com/cockroachdb/errors"
	"github.com/valyala/bytebufferpool"
)

// AppendJSON writes rec as a single JSON object line, keys in record order.
// Nested map values are written with sorted keys so output is deterministic.
func AppendJSON(buf *bytebufferpool.ByteBuffer, rec *Record) error {
	_ = buf.WriteByte('{')
	for i, key := range rec.keys {
		if i > 0 {
			_ = buf.WriteByte(',')
		}
		encodedKey, err := sonic.ConfigStd.Marshal(key)
		if err != nil {
			return crerr.Wrapf(err, "encode key %q", key)
		}
		_, _ = buf.Write(encodedKey)
		_ = buf.WriteByte(':')

		encodedValue, err := sonic.ConfigStd.Marshal(rec.values[key])
		if err != nil {
			return crerr.Wrapf(err, "encode value of %q", key)
		}
		_, _ = buf.Write(encodedValue)
	}
	_ = buf.WriteByte('}')
	_ = buf.WriteByte('\n')
	return nil
}

// DecodeLine parses one JSON object line written by AppendJSON.
func DecodeLine(line []byte) (*Record, error) {
	root, err := sonic.Get(line)
	if err != nil {
		return nil, crerr.Wrap(err, "parse record line")
	}
	return Flatten(&root)
}
