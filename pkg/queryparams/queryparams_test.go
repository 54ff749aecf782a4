package queryparams

import "testing"

func TestValidateClampsValues(t *testing.T) {
	params := ListParams{Page: -5, PerPage: 5000, SortBy: "", OrderBy: "YUKARI"}
	params.Validate()

	if params.Page != DefaultPage {
		t.Errorf("Page = %d, %d bekleniyordu", params.Page, DefaultPage)
	}
	if params.PerPage != DefaultPerPage {
		t.Errorf("PerPage = %d, %d bekleniyordu", params.PerPage, DefaultPerPage)
	}
	if params.SortBy != "created_at" {
		t.Errorf("SortBy = %q, created_at bekleniyordu", params.SortBy)
	}
	if params.OrderBy != DefaultOrderBy {
		t.Errorf("OrderBy = %q, %q bekleniyordu", params.OrderBy, DefaultOrderBy)
	}
}

func TestCalculateOffset(t *testing.T) {
	params := ListParams{Page: 3, PerPage: 20}
	if got := params.CalculateOffset(); got != 40 {
		t.Errorf("CalculateOffset = %d, 40 bekleniyordu", got)
	}
}

func TestCalculateTotalPages(t *testing.T) {
	tests := []struct {
		total   int64
		perPage int
		want    int
	}{
		{0, 20, 0},
		{1, 20, 1},
		{20, 20, 1},
		{21, 20, 2},
		{10, 0, 0},
	}
	for _, tt := range tests {
		if got := CalculateTotalPages(tt.total, tt.perPage); got != tt.want {
			t.Errorf("CalculateTotalPages(%d, %d) = %d, %d bekleniyordu", tt.total, tt.perPage, got, tt.want)
		}
	}
}
