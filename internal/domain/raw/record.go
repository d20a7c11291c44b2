package raw

// Record is a flat row: dotted column names in first-seen order.
type Record struct {
	keys   []string
	values map[string]any
}

func NewRecord(capacity int) *Record {
	return &Record{
		keys:   make([]string, 0, capacity),
		values: make(map[string]any, capacity),
	}
}

// Set adds key unless it is already present; the first occurrence wins.
func (r *Record) Set(key string, value any) bool {
	if _, ok := r.values[key]; ok {
		return false
	}
	r.keys = append(r.keys, key)
	r.values[key] = value
	return true
}

// Put adds or overwrites key.
func (r *Record) Put(key string, value any) {
	if _, ok := r.values[key]; !ok {
		r.keys = append(r.keys, key)
	}
	r.values[key] = value
}

func (r *Record) Get(key string) (any, bool) {
	if r == nil {
		return nil, false
	}
	v, ok := r.values[key]
	return v, ok
}

// Value returns the value for key, or nil when absent.
func (r *Record) Value(key string) any {
	v, _ := r.Get(key)
	return v
}

func (r *Record) Has(key string) bool {
	_, ok := r.Get(key)
	return ok
}

func (r *Record) Keys() []string {
	if r == nil {
		return nil
	}
	return append([]string(nil), r.keys...)
}

func (r *Record) Len() int {
	if r == nil {
		return 0
	}
	return len(r.keys)
}

// Columns returns the union of keys across records in first-seen order.
func Columns(records []*Record) []string {
	seen := make(map[string]struct{})
	out := make([]string, 0)
	for _, rec := range records {
		for _, k := range rec.keys {
			if _, ok := seen[k]; ok {
				continue
			}
			seen[k] = struct{}{}
			out = append(out, k)
		}
	}
	return out
}
