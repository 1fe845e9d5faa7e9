package menu

import (
	"sort"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// Items with no subcategory are grouped under this label.
const otherSubcategory = "Other"

// Subcategories with no explicit order sort after every ordered one.
const unorderedRank = 999

// Section is one rendering unit: the items of a single subcategory
// within the active category, in display order. ID is a fragment
// identifier suitable for deep links.
type Section struct {
	ID    string
	Title string
	Items []Item
}

// Organize filters items to the active category and groups them into
// ordered sections, one per subcategory. Categories match
// case-insensitively after trimming. Sections are ordered by the
// minimum subcategory order among their members (ties by subcategory
// name), items within a section by locale-aware name comparison.
// An empty result means the caller renders its "no items" state.
func Organize(items []Item, activeCategory string) []Section {
	want := strings.ToLower(strings.TrimSpace(activeCategory))

	groups := make(map[string][]Item)
	for _, it := range items {
		if strings.ToLower(strings.TrimSpace(it.Category)) != want {
			continue
		}
		label := subcategoryLabel(it)
		groups[label] = append(groups[label], it)
	}
	if len(groups) == 0 {
		return nil
	}

	names := make([]string, 0, len(groups))
	for name := range groups {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool {
		ri, rj := minOrderRank(groups[names[i]]), minOrderRank(groups[names[j]])
		if ri != rj {
			return ri < rj
		}
		return names[i] < names[j]
	})

	// A collator is not safe for concurrent use, so each call gets its
	// own.
	c := collate.New(language.English, collate.Loose)

	sections := make([]Section, 0, len(names))
	for _, name := range names {
		members := groups[name]
		sort.SliceStable(members, func(i, j int) bool {
			return c.CompareString(members[i].Name, members[j].Name) < 0
		})
		sections = append(sections, Section{
			ID:    Slug(activeCategory) + "-" + Slug(name),
			Title: name,
			Items: members,
		})
	}
	return sections
}

// Subcategories returns the ordered subcategory names for the anchor
// strip. The order matches Organize's section order exactly.
func Subcategories(items []Item, activeCategory string) []string {
	sections := Organize(items, activeCategory)
	names := make([]string, len(sections))
	for i, s := range sections {
		names[i] = s.Title
	}
	return names
}

func subcategoryLabel(it Item) string {
	if strings.TrimSpace(it.Subcategory) == "" {
		return otherSubcategory
	}
	return it.Subcategory
}

func minOrderRank(items []Item) float64 {
	rank := float64(unorderedRank)
	first := true
	for _, it := range items {
		r := float64(unorderedRank)
		if it.SubcategoryOrder != nil {
			r = float64(*it.SubcategoryOrder)
		}
		if first || r < rank {
			rank = r
			first = false
		}
	}
	return rank
}
