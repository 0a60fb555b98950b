package dto

import "testing"

func TestNewPaginated(t *testing.T) {
	cases := []struct {
		name        string
		page        int
		pageSize    int
		totalItems  int
		totalPages  int
		hasPrevious bool
		hasNext     bool
	}{
		{"first of many", 1, 10, 37, 4, false, true},
		{"middle page", 2, 10, 37, 4, true, true},
		{"last partial page", 4, 10, 37, 4, true, false},
		{"exact division", 2, 10, 20, 2, true, false},
		{"empty", 1, 10, 0, 0, false, false},
		{"single item", 1, 10, 1, 1, false, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p := NewPaginated(nil, tc.page, tc.pageSize, tc.totalItems)
			if p.TotalPages != tc.totalPages {
				t.Errorf("TotalPages = %d, want %d", p.TotalPages, tc.totalPages)
			}
			if p.HasPrevious != tc.hasPrevious {
				t.Errorf("HasPrevious = %v, want %v", p.HasPrevious, tc.hasPrevious)
			}
			if p.HasNext != tc.hasNext {
				t.Errorf("HasNext = %v, want %v", p.HasNext, tc.hasNext)
			}
		})
	}
}

func TestNewPaginatedGuardsPageSize(t *testing.T) {
	p := NewPaginated(nil, 1, 0, 5)
	if p.PageSize != 1 {
		t.Errorf("PageSize = %d, want clamp to 1", p.PageSize)
	}
	if p.TotalPages != 5 {
		t.Errorf("TotalPages = %d, want 5", p.TotalPages)
	}
}
