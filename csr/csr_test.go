package csr

import "testing"

func TestLookupKnown(t *testing.T) {
	rec, ok := Lookup(0x300)
	if !ok {
		t.Fatal("expected mstatus to be found")
	}
	if rec.Name != "mstatus" || rec.Permission != PermMRW {
		t.Errorf("Lookup(0x300) = %+v", rec)
	}
}

func TestLookupUnknown(t *testing.T) {
	if _, ok := Lookup(0xFFF); ok {
		t.Error("expected unknown CSR number to not be found")
	}
}

func TestDuplicateEntriesLaterWins(t *testing.T) {
	// mtvec appears twice in the source table at the same number; the
	// map keeps the later entry. Both copies are identical, so this also
	// records that duplicate insertion doesn't panic or corrupt the table.
	var want Record
	for _, r := range table {
		if r.Number == 0x301 {
			want = r
		}
	}
	rec, ok := Lookup(0x301)
	if !ok || rec.Name != "mtvec" || rec != want {
		t.Errorf("Lookup(0x301) = %+v, ok=%v", rec, ok)
	}
}
