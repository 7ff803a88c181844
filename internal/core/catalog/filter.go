package catalog

import (
	"sort"
	"strings"

	"golang.org/x/text/cases"
)

// fold is a shared Unicode case folder so "Design" matches "design" and
// folded forms alike
var fold = cases.Fold()

// Apply filters then orders the catalog according to spec and returns a new
// slice; the input is never mutated. Filtering is conjunctive across active
// predicates and applied cheapest-reject first; ordering of predicates does
// not change the result set. All sorts are stable so ties keep input order
func Apply(catalog []Listing, spec FilterSpec) []Listing {
	out := make([]Listing, 0, len(catalog))

	needle := ""
	if s := strings.TrimSpace(spec.Search); s != "" {
		needle = fold.String(s)
	}

	for _, l := range catalog {
		if !matchCategory(l, spec.Category) {
			continue
		}
		if needle != "" && !matchSearch(l, needle) {
			continue
		}
		if spec.PriceMin != nil && l.Price < *spec.PriceMin {
			continue
		}
		if spec.PriceMax != nil && l.Price > *spec.PriceMax {
			continue
		}
		if spec.MaxDeliveryDays > 0 && l.DeliveryDays > spec.MaxDeliveryDays {
			continue
		}
		if !matchLevel(l, spec.VendorLevels) {
			continue
		}
		out = append(out, l)
	}

	order(out, spec.Sort)
	return out
}

func matchCategory(l Listing, category string) bool {
	return category == "" || category == CategoryAll || l.Category == category
}

// matchSearch ORs the folded needle across title, vendor name, and category
func matchSearch(l Listing, needle string) bool {
	return strings.Contains(fold.String(l.Title), needle) ||
		strings.Contains(fold.String(l.Vendor.Name), needle) ||
		strings.Contains(fold.String(l.Category), needle)
}

func matchLevel(l Listing, levels []VendorLevel) bool {
	if len(levels) == 0 {
		return true
	}
	for _, lv := range levels {
		if l.Vendor.Level == lv {
			return true
		}
	}
	return false
}

// order sorts in place; out is already a private copy by the time it is called
func order(out []Listing, key SortKey) {
	switch key {
	case SortNewest:
		for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
			out[i], out[j] = out[j], out[i]
		}
	case SortRating:
		sort.SliceStable(out, func(i, j int) bool { return out[i].Rating > out[j].Rating })
	case SortPriceLow:
		sort.SliceStable(out, func(i, j int) bool { return out[i].Price < out[j].Price })
	case SortPriceHigh:
		sort.SliceStable(out, func(i, j int) bool { return out[i].Price > out[j].Price })
	default:
		// recommended keeps input order
	}
}
