package clothing

import (
	"go-weather/internal/domain/entity"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

const MaxItems = 4

// Advisor recommends at most MaxItems garments by running its rules in order
type Advisor struct {
	rules []Rule
}

// NewAdvisor uses DefaultRules when no rule is given
func NewAdvisor(rules ...Rule) *Advisor {
	if len(rules) == 0 {
		rules = DefaultRules()
	}
	return &Advisor{rules: rules}
}

func (a *Advisor) Recommend(current entity.CurrentConditions) []entity.ClothingItem {
	conditions := Conditions{
		Temperature: current.Temperature,
		Condition:   cases.Lower(language.Und).String(current.Condition),
	}

	items := make([]entity.ClothingItem, 0, MaxItems+2)
	for _, rule := range a.rules {
		items = rule(conditions, items)
	}

	if len(items) > MaxItems {
		items = items[:MaxItems]
	}
	return items
}

// FeelingFor classifies a rounded temperature
func FeelingFor(temperature int) entity.TemperatureFeeling {
	switch {
	case temperature < 0:
		return entity.FeelingVeryCold
	case temperature < 9:
		return entity.FeelingCold
	case temperature < 16:
		return entity.FeelingCool
	case temperature < 23:
		return entity.FeelingMild
	case temperature < 30:
		return entity.FeelingWarm
	case temperature < 35:
		return entity.FeelingHot
	default:
		return entity.FeelingVeryHot
	}
}
