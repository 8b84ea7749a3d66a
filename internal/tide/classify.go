package tide

import "github.com/ngmaloney/tide-terminal/internal/models"

// Classify maps a lunar age to its tide-range category. Ranges are half-open
// and mirror each other about the full moon; anything the table does not name
// (the last days before new moon) is Mid.
func Classify(lunarAge float64) models.RangeCategory {
	switch {
	case lunarAge < 2, lunarAge >= 13.5 && lunarAge < 16.5:
		return models.CategorySpring
	case lunarAge < 5, lunarAge >= 10 && lunarAge < 13.5,
		lunarAge >= 16.5 && lunarAge < 20, lunarAge >= 25 && lunarAge < 28:
		return models.CategoryMid
	case lunarAge < 8, lunarAge >= 20 && lunarAge < 23:
		return models.CategoryNeap
	case lunarAge < 9, lunarAge >= 23 && lunarAge < 24:
		return models.CategoryLong
	case lunarAge < 10, lunarAge >= 24 && lunarAge < 25:
		return models.CategoryYoung
	default:
		return models.CategoryMid
	}
}
