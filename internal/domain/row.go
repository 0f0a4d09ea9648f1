package domain

// Row is one generated record. Keys keep insertion order so a header taken
// from the first row follows the declared column order.
type Row struct {
	keys   []string
	values map[string]string
}

func NewRow(capacity int) Row {
	return Row{
		keys:   make([]string, 0, capacity),
		values: make(map[string]string, capacity),
	}
}

// Set stores value under name. An existing key keeps its position.
func (r *Row) Set(name, value string) {
	if r.values == nil {
		r.values = make(map[string]string)
	}
	if _, ok := r.values[name]; !ok {
		r.keys = append(r.keys, name)
	}
	r.values[name] = value
}

func (r Row) Get(name string) (string, bool) {
	v, ok := r.values[name]
	return v, ok
}

func (r Row) Keys() []string {
	out := make([]string, len(r.keys))
	copy(out, r.keys)
	return out
}

// Values returns the stored values in key order.
func (r Row) Values() []string {
	out := make([]string, len(r.keys))
	for i, k := range r.keys {
		out[i] = r.values[k]
	}
	return out
}

func (r Row) Len() int { return len(r.keys) }

type Table []Row

// Header returns the keys of the first row, or nil for an empty table.
func (t Table) Header() []string {
	if len(t) == 0 {
		return nil
	}
	return t[0].Keys()
}

// Records lays the table out as string records aligned to header.
// A row missing a header key yields an empty field.
func (t Table) Records(header []string) [][]string {
	records := make([][]string, len(t))
	for i, row := range t {
		rec := make([]string, len(header))
		for j, h := range header {
			rec[j], _ = row.Get(h)
		}
		records[i] = rec
	}
	return records
}
