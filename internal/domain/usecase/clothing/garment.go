package clothing

import (
	"go-weather/internal/domain/entity"
	"go-weather/pkg/msg"
)

const (
	iconCoat       = "🧥"
	iconScarf      = "🧣"
	iconGloves     = "🧤"
	iconBoots      = "👢"
	iconShirt      = "👕"
	iconTrousers   = "👖"
	iconShorts     = "🩳"
	iconSunglasses = "🕶️"
	iconCap        = "🧢"
	iconSunscreen  = "🧴"
	iconUmbrella   = "☔️"
)

// garment is a catalog entry. Its name and reason live under clothing.<key> in the message catalog.
type garment struct {
	key   string
	icon  string
	color string
}

var (
	heavyWinterJacket  = garment{"heavy-winter-jacket", iconCoat, "blue"}
	scarf              = garment{"scarf", iconScarf, "cyan"}
	gloves             = garment{"gloves", iconGloves, "blue"}
	winterBoots        = garment{"winter-boots", iconBoots, "brown"}
	warmJacket         = garment{"warm-jacket", iconCoat, "blue"}
	sweater            = garment{"sweater", iconShirt, "indigo"}
	longTrousers       = garment{"long-trousers", iconTrousers, "blue"}
	transitionalJacket = garment{"transitional-jacket", iconCoat, "cyan"}
	longSleeveShirt    = garment{"long-sleeve-shirt", iconShirt, "green"}
	jeans              = garment{"jeans", iconTrousers, "blue"}
	mildTShirt         = garment{"t-shirt-mild", iconShirt, "green"}
	lightJacket        = garment{"light-jacket", iconCoat, "mint"}
	lightTrousers      = garment{"light-trousers", iconTrousers, "green"}
	warmTShirt         = garment{"t-shirt-warm", iconShirt, "orange"}
	warmShorts         = garment{"shorts-warm", iconShorts, "yellow"}
	warmSunglasses     = garment{"sunglasses-warm", iconSunglasses, "orange"}
	tankTop            = garment{"tank-top", iconShirt, "red"}
	hotShorts          = garment{"shorts-hot", iconShorts, "orange"}
	sunCap             = garment{"cap", iconCap, "red"}
	sunscreen          = garment{"sunscreen", iconSunscreen, "orange"}

	raincoat        = garment{"raincoat", iconUmbrella, "blue"}
	umbrella        = garment{"umbrella", iconUmbrella, "blue"}
	snowBoots       = garment{"snow-boots", iconBoots, "brown"}
	snowGloves      = garment{"snow-gloves", iconGloves, "blue"}
	windbreaker     = garment{"windbreaker", iconCoat, "teal"}
	sunnySunglasses = garment{"sunglasses-sunny", iconSunglasses, "yellow"}
)

func (g garment) item(temperature int) entity.ClothingItem {
	return entity.ClothingItem{
		Icon:   g.icon,
		Name:   msg.GetMessage("clothing." + g.key + ".name"),
		Reason: msg.GetMessage("clothing."+g.key+".reason", temperature),
		Color:  g.color,
	}
}
