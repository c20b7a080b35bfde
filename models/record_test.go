package models

import "testing"

func TestRecordSetAppendKeepsSchemaWidth(t *testing.T) {
	rs := NewRecordSet([]string{"a", "b", "c"})
	rs.Append([]string{"1"})
	rs.Append([]string{"1", "2", "3", "4"})

	if rs.Len() != 2 {
		t.Fatalf("Len: got %d, want 2", rs.Len())
	}
	for i, r := range rs.Records {
		if len(r.Values) != 3 {
			t.Errorf("record %d width: got %d, want 3", i, len(r.Values))
		}
	}
	if rs.Records[0].Values[2] != "" {
		t.Errorf("short row should be padded with empty strings, got %q", rs.Records[0].Values[2])
	}
}

func TestRecordSetColumnLookup(t *testing.T) {
	rs := NewRecordSet([]string{"title", "price"})
	rs.Append([]string{"Book", "£10.00"})

	if rs.ColumnIndex("price") != 1 {
		t.Errorf("ColumnIndex(price): got %d, want 1", rs.ColumnIndex("price"))
	}
	if rs.ColumnIndex("missing") != -1 {
		t.Errorf("ColumnIndex(missing) should be -1")
	}
	v, ok := rs.Records[0].Get(rs, "title")
	if !ok || v != "Book" {
		t.Errorf("Get(title): got %q, %v", v, ok)
	}
}

func TestNilRecordSetLen(t *testing.T) {
	var rs *RecordSet
	if rs.Len() != 0 {
		t.Error("nil RecordSet should have length 0")
	}
}

func TestRankedWordsWords(t *testing.T) {
	rw := RankedWords{{Word: "zeta", Count: 2}, {Word: "beta", Count: 2}}
	got := rw.Words()
	if len(got) != 2 || got[0] != "zeta" || got[1] != "beta" {
		t.Errorf("Words: got %v", got)
	}
}
