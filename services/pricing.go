package services

import "burger-cli/models"

// CalculatePrice sums the base price of each ingredient (unknown ones count
// as zero) and applies the menu surcharge.
func CalculatePrice(menu *models.Menu, ingredients []string) float64 {
	var total float64
	for _, ing := range ingredients {
		total += menu.Price(ing)
	}
	return ApplySurcharge(total, menu.Surcharge.Rate, menu.Surcharge.Passes)
}

// ApplySurcharge adds rate*price to price, passes times; each pass compounds.
func ApplySurcharge(price, rate float64, passes int) float64 {
	for i := 0; i < passes; i++ {
		price += price * rate
	}
	return price
}
