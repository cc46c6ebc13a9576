package clothing

import (
	"strings"

	"go-weather/internal/domain/entity"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Conditions is what a rule sees. Condition is already lower-cased.
type Conditions struct {
	Temperature int
	Condition   string
}

// Rule returns items with its own recommendations appended. It must not modify items in place.
type Rule func(conditions Conditions, items []entity.ClothingItem) []entity.ClothingItem

// DefaultRules is the temperature band followed by the rain, snow, wind and sun overrides
func DefaultRules() []Rule {
	return []Rule{TemperatureBandRule, RainRule, SnowRule, WindRule, SunRule}
}

// TemperatureBandRule adds the base outfit for the temperature band
func TemperatureBandRule(conditions Conditions, items []entity.ClothingItem) []entity.ClothingItem {
	var garments []garment

	switch t := conditions.Temperature; {
	case t < 0:
		garments = []garment{heavyWinterJacket, scarf, gloves, winterBoots}
	case t < 9:
		garments = []garment{warmJacket, sweater, longTrousers}
	case t < 16:
		garments = []garment{transitionalJacket, longSleeveShirt, jeans}
	case t < 23:
		garments = []garment{mildTShirt, lightJacket, lightTrousers}
	case t < 30:
		garments = []garment{warmTShirt, warmShorts, warmSunglasses}
	default:
		garments = []garment{tankTop, hotShorts, sunCap, sunscreen}
	}

	for _, g := range garments {
		items = append(items, g.item(conditions.Temperature))
	}
	return items
}

// RainRule adds a raincoat below 25°, an umbrella otherwise
func RainRule(conditions Conditions, items []entity.ClothingItem) []entity.ClothingItem {
	if !containsAny(conditions.Condition, "rain", "drizzle") {
		return items
	}
	if conditions.Temperature < 25 {
		return append(items, raincoat.item(conditions.Temperature))
	}
	return append(items, umbrella.item(conditions.Temperature))
}

func SnowRule(conditions Conditions, items []entity.ClothingItem) []entity.ClothingItem {
	if !containsAny(conditions.Condition, "snow") {
		return items
	}

	items = append(items, snowBoots.item(conditions.Temperature))
	if !hasIcon(items, iconGloves) {
		items = append(items, snowGloves.item(conditions.Temperature))
	}
	return items
}

// WindRule adds a windbreaker below 20° unless a jacket is already recommended
func WindRule(conditions Conditions, items []entity.ClothingItem) []entity.ClothingItem {
	if !containsAny(conditions.Condition, "wind", "storm") || conditions.Temperature >= 20 {
		return items
	}

	lower := cases.Lower(language.Und)
	for _, item := range items {
		if strings.Contains(lower.String(item.Name), "jacket") {
			return items
		}
	}
	return append(items, windbreaker.item(conditions.Temperature))
}

// SunRule adds sunglasses above 20° unless some are already recommended
func SunRule(conditions Conditions, items []entity.ClothingItem) []entity.ClothingItem {
	if !containsAny(conditions.Condition, "sunny", "clear") || conditions.Temperature <= 20 {
		return items
	}
	if hasIcon(items, iconSunglasses) {
		return items
	}
	return append(items, sunnySunglasses.item(conditions.Temperature))
}

func containsAny(condition string, keywords ...string) bool {
	for _, keyword := range keywords {
		if strings.Contains(condition, keyword) {
			return true
		}
	}
	return false
}

func hasIcon(items []entity.ClothingItem, icon string) bool {
	for _, item := range items {
		if item.Icon == icon {
			return true
		}
	}
	return false
}
