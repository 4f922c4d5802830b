package catalog

import "testing"

func sampleRecords() []Record {
	return []Record{
		{ID: "1", Title: "Attack on Titan", Category: "Anime"},
		{ID: "2", Title: "The Attack", Category: "Movie"},
		{ID: "3", Title: "Severance", Category: "Series"},
		{ID: "4", Title: "My Hero Academia", Category: "Anime"},
	}
}

func TestFilterByCategory(t *testing.T) {
	records := sampleRecords()

	tests := []struct {
		name     string
		category string
		wantIDs  []string
	}{
		{"all sentinel", CategoryAll, []string{"1", "2", "3", "4"}},
		{"empty filter", "", []string{"1", "2", "3", "4"}},
		{"anime", "Anime", []string{"1", "4"}},
		{"movie", "Movie", []string{"2"}},
		{"no matches", "Podcast", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FilterByCategory(records, tt.category)
			if len(got) != len(tt.wantIDs) {
				t.Fatalf("FilterByCategory(%q) returned %d records, want %d", tt.category, len(got), len(tt.wantIDs))
			}
			for i, record := range got {
				if record.ID != tt.wantIDs[i] {
					t.Errorf("result[%d].ID = %q, want %q", i, record.ID, tt.wantIDs[i])
				}
			}
		})
	}
}

func TestFilterByCategoryAllReturnsSameSlice(t *testing.T) {
	records := sampleRecords()
	got := FilterByCategory(records, CategoryAll)
	if len(got) != len(records) {
		t.Fatalf("expected identical slice back, got %d records", len(got))
	}
	if &got[0] != &records[0] {
		t.Error("CategoryAll filter should not copy the input slice")
	}
}

func TestCategories(t *testing.T) {
	got := Categories(sampleRecords())
	want := []CategoryCount{
		{Name: "Anime", Count: 2},
		{Name: "Movie", Count: 1},
		{Name: "Series", Count: 1},
	}
	if len(got) != len(want) {
		t.Fatalf("Categories returned %d entries, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Categories()[%d] = %+v, want %+v", i, got[i], want[i])
		}
	}
}
