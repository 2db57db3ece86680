package catalog

import (
	"reflect"
	"testing"
)

func TestNormalizeCategoryTitleCases(t *testing.T) {
	tests := map[string]string{
		"soups":          "Soups",
		"Soups ":         "Soups",
		"  main courses": "Main Courses",
		"ICE CREAM":      "Ice Cream",
		"   ":            "",
		"":               "",
	}
	for in, want := range tests {
		if got := NormalizeCategory(in); got != want {
			t.Fatalf("NormalizeCategory(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestOrderCategoriesPreferredFirst(t *testing.T) {
	in := []string{"Soups", "Beverages", "Appetizers", "Starters"}
	want := []string{"Starters", "Beverages", "Appetizers", "Soups"}

	if got := OrderCategories(in); !reflect.DeepEqual(got, want) {
		t.Fatalf("OrderCategories(%v) = %v, want %v", in, got, want)
	}
}

func TestOrderCategoriesFullPreferredSet(t *testing.T) {
	in := []string{"Desserts", "Main Courses", "Beverages", "Starters"}
	want := []string{"Starters", "Main Courses", "Desserts", "Beverages"}

	if got := OrderCategories(in); !reflect.DeepEqual(got, want) {
		t.Fatalf("OrderCategories(%v) = %v, want %v", in, got, want)
	}
}

func TestDedupeCategoriesDropsRepeatsAndEmpties(t *testing.T) {
	in := []string{"Soups", "", "Soups", "Beverages"}
	want := []string{"Soups", "Beverages"}

	if got := dedupeCategories(in); !reflect.DeepEqual(got, want) {
		t.Fatalf("dedupeCategories(%v) = %v, want %v", in, got, want)
	}
}
