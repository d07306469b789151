package query

import "testing"

func TestNewPagination(t *testing.T) {
	tests := []struct {
		name      string
		page      int
		limit     int
		wantPage  int
		wantLimit int
	}{
		{"valid values pass through", 3, 25, 3, 25},
		{"zero page becomes first", 0, 10, 1, 10},
		{"negative page becomes first", -4, 10, 1, 10},
		{"zero limit becomes default", 2, 0, 2, DefaultLimit},
		{"negative limit becomes default", 2, -1, 2, DefaultLimit},
		{"oversized limit capped", 1, 500, 1, MaxLimit},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NewPagination(tt.page, tt.limit)
			if got.Page != tt.wantPage || got.Limit != tt.wantLimit {
				t.Errorf("NewPagination(%d, %d) = %+v, want page %d limit %d",
					tt.page, tt.limit, got, tt.wantPage, tt.wantLimit)
			}
		})
	}
}

func TestOffset(t *testing.T) {
	tests := []struct {
		page  int
		limit int
		want  int
	}{
		{1, 10, 0},
		{2, 10, 10},
		{3, 25, 50},
	}

	for _, tt := range tests {
		p := Pagination{Page: tt.page, Limit: tt.limit}
		if got := p.Offset(); got != tt.want {
			t.Errorf("Offset for page %d limit %d = %d, want %d", tt.page, tt.limit, got, tt.want)
		}
	}
}

func TestTotalPages(t *testing.T) {
	tests := []struct {
		name  string
		limit int
		total int64
		want  int
	}{
		{"partial last page rounds up", 10, 23, 3},
		{"exact multiple", 10, 30, 3},
		{"single row", 10, 1, 1},
		{"empty result has zero pages", 10, 0, 0},
		{"limit of one", 1, 7, 7},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := Pagination{Page: 1, Limit: tt.limit}
			if got := p.TotalPages(tt.total); got != tt.want {
				t.Errorf("TotalPages(%d) with limit %d = %d, want %d", tt.total, tt.limit, got, tt.want)
			}
		})
	}
}
