package models

// Menu is the read-only catalogue an order is built from.
type Menu struct {
	Prices    map[string]float64
	Buns      []string
	Meats     []string
	Cheeses   []string
	Sauce     string
	Surcharge Surcharge
}

// Surcharge is applied Passes times, each pass on the already increased total.
type Surcharge struct {
	Rate   float64
	Passes int
}

// Price returns the base price of an ingredient, 0 when it is not listed.
func (m *Menu) Price(ingredient string) float64 {
	return m.Prices[ingredient]
}
