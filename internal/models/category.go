package models

import (
	"fmt"
	"strings"
)

// RangeCategory is one of the five traditional tide-range names of the lunar cycle
type RangeCategory int

const (
	CategorySpring RangeCategory = iota // 大潮, largest range
	CategoryMid                         // 中潮
	CategoryNeap                        // 小潮, smallest range
	CategoryLong                        // 長潮
	CategoryYoung                       // 若潮
)

// AllCategories lists every category in cycle order
func AllCategories() []RangeCategory {
	return []RangeCategory{CategorySpring, CategoryMid, CategoryNeap, CategoryLong, CategoryYoung}
}

func (c RangeCategory) String() string {
	switch c {
	case CategorySpring:
		return "Spring"
	case CategoryMid:
		return "Mid"
	case CategoryNeap:
		return "Neap"
	case CategoryLong:
		return "Long"
	case CategoryYoung:
		return "Young"
	}
	panic(fmt.Sprintf("models: unknown range category %d", int(c)))
}

// Kanji returns the traditional Japanese name
func (c RangeCategory) Kanji() string {
	switch c {
	case CategorySpring:
		return "大潮"
	case CategoryMid:
		return "中潮"
	case CategoryNeap:
		return "小潮"
	case CategoryLong:
		return "長潮"
	case CategoryYoung:
		return "若潮"
	}
	panic(fmt.Sprintf("models: unknown range category %d", int(c)))
}

// MarshalText encodes the category by its English name
func (c RangeCategory) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

// UnmarshalText accepts anything ParseCategory does
func (c *RangeCategory) UnmarshalText(text []byte) error {
	parsed, err := ParseCategory(string(text))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

// ParseCategory accepts either the English or the Kanji name
func ParseCategory(s string) (RangeCategory, error) {
	s = strings.TrimSpace(s)
	for _, c := range AllCategories() {
		if strings.EqualFold(s, c.String()) || s == c.Kanji() {
			return c, nil
		}
	}
	return 0, fmt.Errorf("unknown tide range category %q", s)
}

// FishingAdvice is the activity recommendation for a category
type FishingAdvice struct {
	Category    RangeCategory
	Label       string
	Rating      int // 1 (poor) to 5 (best)
	Description string
}

// Stars renders the rating as filled and empty stars
func (a FishingAdvice) Stars() string {
	return strings.Repeat("★", a.Rating) + strings.Repeat("☆", 5-a.Rating)
}
