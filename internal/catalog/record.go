package catalog

import "sort"

// CategoryAll is the filter sentinel that keeps every record regardless of
// its category.
const CategoryAll = "All"

// Record is a single release entry. Title and Category are required;
// Description and Platform are optional free text (Platform may be a
// comma-separated list of outlets). ID and ReleaseDate are carried through
// untouched and never inspected by the search engine.
type Record struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	Platform    string `json:"platform,omitempty"`
	Category    string `json:"category"`
	ReleaseDate string `json:"release_date,omitempty"`
}

// FilterByCategory returns the records whose Category equals category,
// preserving input order. CategoryAll or an empty filter keeps everything.
func FilterByCategory(records []Record, category string) []Record {
	if category == "" || category == CategoryAll {
		return records
	}
	filtered := make([]Record, 0, len(records))
	for _, record := range records {
		if record.Category == category {
			filtered = append(filtered, record)
		}
	}
	return filtered
}

// CategoryCount pairs a category label with the number of records carrying it.
type CategoryCount struct {
	Name  string
	Count int
}

// Categories returns the distinct categories in records sorted by name.
func Categories(records []Record) []CategoryCount {
	counts := make(map[string]int)
	for _, record := range records {
		counts[record.Category]++
	}
	out := make([]CategoryCount, 0, len(counts))
	for name, count := range counts {
		out = append(out, CategoryCount{Name: name, Count: count})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}
