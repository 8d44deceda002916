package file

import (
	"testing"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestListFilter(t *testing.T) {
	tests := []struct {
		name        string
		types       []FileType
		searchText  string
		wantPattern string
		wantTypes   bool
	}{
		{"No conditions", nil, "", "", false},
		{"Type filter only", []FileType{FileTypeImage}, "", "", true},
		{"Plain search", nil, "report", "report", false},
		{"Metacharacters stay literal", nil, "report(", `report\(`, false},
		{"Dot does not become a wildcard", nil, "a.mp4", `a\.mp4`, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := listFilter(tt.types, tt.searchText)

			if _, ok := got["type"]; ok != tt.wantTypes {
				t.Errorf("listFilter type condition present = %v, want %v", ok, tt.wantTypes)
			}

			nameCond, ok := got["name"]
			if tt.wantPattern == "" {
				if ok {
					t.Errorf("listFilter unexpected name condition %v", nameCond)
				}
				return
			}
			if !ok {
				t.Fatalf("listFilter missing name condition")
			}

			regex := nameCond.(bson.M)["$regex"].(primitive.Regex)
			if regex.Pattern != tt.wantPattern {
				t.Errorf("listFilter pattern = %q, want %q", regex.Pattern, tt.wantPattern)
			}
			if regex.Options != "i" {
				t.Errorf("listFilter options = %q, want case-insensitive", regex.Options)
			}
		})
	}
}
