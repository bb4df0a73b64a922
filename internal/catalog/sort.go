package catalog

import "sort"

// SortCatalog sorts modules descending by SortKey, stable against ties.
func SortCatalog(modules []Module) {
	sort.SliceStable(modules, func(i, j int) bool {
		return modules[i].SortKey().After(modules[j].SortKey())
	})
}
