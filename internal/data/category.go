package data

import "strings"

// Category groups manifestations by the inner struggle they represent.
type Category int

const (
	CategorySelfDoubt Category = iota
	CategoryIsolation
	CategoryOverwhelm
	CategoryPastPain
	CategoryUnknown
)

var categoryMap = map[string]Category{
	"self-doubt": CategorySelfDoubt,
	"isolation":  CategoryIsolation,
	"overwhelm":  CategoryOverwhelm,
	"past-pain":  CategoryPastPain,
}

// ParseCategory converts a catalog string into a Category.
func ParseCategory(s string) Category {
	key := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(s)), " ", "-")
	if val, ok := categoryMap[key]; ok {
		return val
	}
	return CategoryUnknown
}

func (c Category) String() string {
	for k, v := range categoryMap {
		if v == c {
			return k
		}
	}
	return "unknown"
}
