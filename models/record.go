package models

// Record is one extracted row. Values are positional and line up with the
// owning RecordSet's Columns.
type Record struct {
	Values []string
}

// RecordSet is the ordered collection of records pulled from one page.
// Every record carries exactly len(Columns) values.
type RecordSet struct {
	Columns []string
	Records []Record
}

// NewRecordSet creates an empty RecordSet with a fixed schema.
func NewRecordSet(columns []string) *RecordSet {
	cols := make([]string, len(columns))
	copy(cols, columns)
	return &RecordSet{Columns: cols, Records: make([]Record, 0)}
}

// Append adds a row, padding or truncating it to the schema width.
func (rs *RecordSet) Append(values []string) {
	row := make([]string, len(rs.Columns))
	copy(row, values)
	rs.Records = append(rs.Records, Record{Values: row})
}

// Len returns the number of records.
func (rs *RecordSet) Len() int {
	if rs == nil {
		return 0
	}
	return len(rs.Records)
}

// ColumnIndex returns the position of the named column, or -1.
func (rs *RecordSet) ColumnIndex(name string) int {
	for i, c := range rs.Columns {
		if c == name {
			return i
		}
	}
	return -1
}

// Get returns the value of the named column for a record.
func (r Record) Get(rs *RecordSet, name string) (string, bool) {
	idx := rs.ColumnIndex(name)
	if idx < 0 || idx >= len(r.Values) {
		return "", false
	}
	return r.Values[idx], true
}

// WordCount is one token and the number of times it occurred.
type WordCount struct {
	Word  string
	Count int
}

// RankedWords is the top-N token list, most frequent first.
type RankedWords []WordCount

// Words returns just the tokens, preserving rank order.
func (rw RankedWords) Words() []string {
	words := make([]string, len(rw))
	for i, w := range rw {
		words[i] = w.Word
	}
	return words
}
