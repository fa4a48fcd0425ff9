package crud

import "testing"

func TestRequireString(t *testing.T) {
	cases := []struct {
		value string
		fails bool
	}{
		{"room 101", false},
		{"", true},
		{"   ", true},
		{"\t\n", true},
	}
	for _, c := range cases {
		errs := FieldErrors{}
		RequireString(errs, "name", c.value)
		if got := !errs.Valid(); got != c.fails {
			t.Errorf("RequireString(%q): fails=%v, want %v", c.value, got, c.fails)
		}
	}
}

func TestRequireID(t *testing.T) {
	cases := []struct {
		id    int64
		fails bool
	}{
		{1, false},
		{42, false},
		{0, true},
		{-5, true},
	}
	for _, c := range cases {
		errs := FieldErrors{}
		RequireID(errs, "roomId", c.id)
		if got := !errs.Valid(); got != c.fails {
			t.Errorf("RequireID(%d): fails=%v, want %v", c.id, got, c.fails)
		}
	}
}

func TestRequirePositive(t *testing.T) {
	cases := []struct {
		v     int64
		fails bool
	}{
		{1, false},
		{0, true},
		{-1, true},
	}
	for _, c := range cases {
		errs := FieldErrors{}
		RequirePositive(errs, "quantity", c.v)
		if got := !errs.Valid(); got != c.fails {
			t.Errorf("RequirePositive(%d): fails=%v, want %v", c.v, got, c.fails)
		}
	}
}

func TestRequireRange(t *testing.T) {
	cases := []struct {
		v     int
		fails bool
	}{
		{1, false},
		{12, false},
		{0, true},
		{13, true},
	}
	for _, c := range cases {
		errs := FieldErrors{}
		RequireRange(errs, "month", c.v, 1, 12)
		if got := !errs.Valid(); got != c.fails {
			t.Errorf("RequireRange(%d): fails=%v, want %v", c.v, got, c.fails)
		}
	}
}

func TestRequireOneOf(t *testing.T) {
	allowed := []string{"available", "occupied", "maintenance"}
	for _, v := range allowed {
		errs := FieldErrors{}
		RequireOneOf(errs, "status", v, allowed...)
		if !errs.Valid() {
			t.Errorf("RequireOneOf(%q): unexpected error %v", v, errs)
		}
	}
	errs := FieldErrors{}
	RequireOneOf(errs, "status", "demolished", allowed...)
	if errs.Valid() {
		t.Error("RequireOneOf: expected error for unknown status")
	}
}

func TestNormalizeListParams(t *testing.T) {
	cases := []struct {
		in   ListParams
		want ListParams
	}{
		{ListParams{Page: 0, Size: 0}, ListParams{Page: 1, Size: DefaultPageSize}},
		{ListParams{Page: -3, Size: 7}, ListParams{Page: 1, Size: DefaultPageSize}},
		{ListParams{Page: 2, Size: 50}, ListParams{Page: 2, Size: 50}},
		{ListParams{Page: 1, Size: 5}, ListParams{Page: 1, Size: 5}},
	}
	for _, c := range cases {
		p := c.in
		p.Normalize()
		if p != c.want {
			t.Errorf("Normalize(%+v) = %+v, want %+v", c.in, p, c.want)
		}
	}
}

func TestPageCount(t *testing.T) {
	cases := []struct {
		total, size, want int
	}{
		{0, 10, 0},
		{1, 10, 1},
		{10, 10, 1},
		{11, 10, 2},
		{23, 5, 5},
		{23, 0, 0},
	}
	for _, c := range cases {
		if got := PageCount(c.total, c.size); got != c.want {
			t.Errorf("PageCount(%d, %d) = %d, want %d", c.total, c.size, got, c.want)
		}
	}
}
