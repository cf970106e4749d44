// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package units

// celsiusPivot converts temperatures by way of Celsius. Values below
// absolute zero are converted like any other.
type celsiusPivot struct{}

func (celsiusPivot) convert(v float64, from, to Unit) float64 {
	// Same unit: return the input untouched so no rounding creeps in.
	if from.Symbol == to.Symbol {
		return v
	}
	return fromCelsius(toCelsius(v, from.Symbol), to.Symbol)
}

func toCelsius(v float64, symbol string) float64 {
	switch symbol {
	case "f":
		return (v - 32) * 5 / 9
	case "k":
		return v - 273.15
	default:
		return v
	}
}

func fromCelsius(c float64, symbol string) float64 {
	switch symbol {
	case "f":
		return c*9/5 + 32
	case "k":
		return c + 273.15
	default:
		return c
	}
}
