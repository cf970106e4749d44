// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package units

// formula converts a value between two units of the same category.
type formula interface {
	convert(v float64, from, to Unit) float64
}

// linear converts through the scale factors in the unit table.
type linear struct{}

func (linear) convert(v float64, from, to Unit) float64 {
	if from.Symbol == to.Symbol {
		return v
	}
	return v * from.Scale / to.Scale
}

// definition binds a category's ordered unit list to its formula.
type definition struct {
	units   []Unit
	formula formula
}

func (d definition) find(symbol string) (Unit, bool) {
	for _, u := range d.units {
		if u.Symbol == symbol {
			return u, true
		}
	}
	return Unit{}, false
}

var categoryOrder = []Category{Length, Weight, Volume, Temperature}

var registry = map[Category]definition{
	Length: {
		formula: linear{},
		units: []Unit{
			{Symbol: "mm", Label: "Millimeter", Scale: 0.001},
			{Symbol: "cm", Label: "Centimeter", Scale: 0.01},
			{Symbol: "m", Label: "Meter", Scale: 1},
			{Symbol: "km", Label: "Kilometer", Scale: 1000},
			{Symbol: "in", Label: "Inch", Scale: 0.0254},
			{Symbol: "ft", Label: "Foot", Scale: 0.3048},
			{Symbol: "yd", Label: "Yard", Scale: 0.9144},
			{Symbol: "mi", Label: "Mile", Scale: 1609.34},
		},
	},
	Weight: {
		formula: linear{},
		units: []Unit{
			{Symbol: "mg", Label: "Milligram", Scale: 0.001},
			{Symbol: "g", Label: "Gram", Scale: 1},
			{Symbol: "kg", Label: "Kilogram", Scale: 1000},
			{Symbol: "oz", Label: "Ounce", Scale: 28.3495},
			{Symbol: "lb", Label: "Pound", Scale: 453.592},
			{Symbol: "ton", Label: "Metric Ton", Scale: 1000000},
		},
	},
	Volume: {
		formula: linear{},
		units: []Unit{
			{Symbol: "ml", Label: "Milliliter", Scale: 0.001},
			{Symbol: "l", Label: "Liter", Scale: 1},
			{Symbol: "gal", Label: "Gallon", Scale: 3.78541},
			{Symbol: "pt", Label: "Pint", Scale: 0.473176},
			{Symbol: "cup", Label: "Cup", Scale: 0.236588},
			{Symbol: "tbsp", Label: "Tablespoon", Scale: 0.0147868},
			{Symbol: "tsp", Label: "Teaspoon", Scale: 0.00492892},
		},
	},
	Temperature: {
		formula: celsiusPivot{},
		units: []Unit{
			{Symbol: "c", Label: "Celsius"},
			{Symbol: "f", Label: "Fahrenheit"},
			{Symbol: "k", Label: "Kelvin"},
		},
	},
}
