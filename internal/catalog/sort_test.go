package catalog

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSortCatalogDescendingStable(t *testing.T) {
	t1 := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	t2 := time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)
	modules := []Module{
		{ModuleID: "a", LatestReleaseTime: t1},
		{ModuleID: "b", LatestReleaseTime: t2},
		{ModuleID: "c", LatestReleaseTime: t1},
	}
	SortCatalog(modules)
	assert.Equal(t, []string{"b", "a", "c"}, []string{modules[0].ModuleID, modules[1].ModuleID, modules[2].ModuleID})
}

func TestSortCatalogUsesMaxOfThreeTimestamps(t *testing.T) {
	old := time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)
	newer := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	modules := []Module{
		{ModuleID: "a", LatestReleaseTime: old, LatestSnapshotReleaseTime: newer},
		{ModuleID: "b", LatestReleaseTime: old},
	}
	SortCatalog(modules)
	assert.Equal(t, "a", modules[0].ModuleID)
}
