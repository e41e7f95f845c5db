package models

import "testing"

func TestToCamel(t *testing.T) {
	tests := []struct{ in, want string }{
		{"tested_versions", "testedVersions"},
		{"external_url", "externalUrl"},
		{"response_message", "responseMessage"},
		{"id", "id"},
		{"releaseDate", "releaseDate"},
		{"_leading", "leading"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := ToCamel(tt.in); got != tt.want {
			t.Errorf("ToCamel(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestToSnake(t *testing.T) {
	tests := []struct{ in, want string }{
		{"testedVersions", "tested_versions"},
		{"sizeUnit", "size_unit"},
		{"shouldDelete", "should_delete"},
		{"id", "id"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := ToSnake(tt.in); got != tt.want {
			t.Errorf("ToSnake(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestSortField(t *testing.T) {
	tests := []struct{ in, want string }{
		{"-release_date", "-releaseDate"},
		{"+likes", "+likes"},
		{"update_date", "updateDate"},
		{"-downloads", "-downloads"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := SortField(tt.in); got != tt.want {
			t.Errorf("SortField(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestFieldList(t *testing.T) {
	got := FieldList([]string{"id", "tested_versions", " ", "releaseDate"})
	if want := "id,testedVersions,releaseDate"; got != want {
		t.Errorf("FieldList() = %q, want %q", got, want)
	}
	if got := FieldList(nil); got != "" {
		t.Errorf("FieldList(nil) = %q, want empty", got)
	}
}
