package tide

import (
	"fmt"

	"github.com/ngmaloney/tide-terminal/internal/models"
)

// Advise returns the fishing recommendation for a tide-range category.
// Long and Young share a rating but not a description.
func Advise(category models.RangeCategory) models.FishingAdvice {
	advice := models.FishingAdvice{Category: category}
	switch category {
	case models.CategorySpring:
		advice.Label = "Excellent"
		advice.Rating = 5
		advice.Description = "Big tidal range and strong currents keep bait moving and fish feeding. " +
			"Work the hours around each turn of the tide."
	case models.CategoryMid:
		advice.Label = "Good"
		advice.Rating = 4
		advice.Description = "Steady current with a healthy range. A dependable day; " +
			"rising tides into the evening are usually the most productive."
	case models.CategoryNeap:
		advice.Label = "Fair"
		advice.Rating = 3
		advice.Description = "Small range and gentle flow. Fish deeper structure and " +
			"channels where what little current there is concentrates."
	case models.CategoryLong:
		advice.Label = "Slow"
		advice.Rating = 2
		advice.Description = "The tide barely moves and the slack drags on. " +
			"Expect a slow bite; plan short sessions around the brief turns."
	case models.CategoryYoung:
		advice.Label = "Slow, improving"
		advice.Rating = 2
		advice.Description = "The range starts to rebuild after the long tide. " +
			"Activity picks up through the day; late sessions tend to do better."
	default:
		panic(fmt.Sprintf("tide: no advice for category %d", int(category)))
	}
	return advice
}
