package service

import (
	"math"

	"github.com/limbo/chai/pkg/entity"
)

// ApplyRounding rounds half up to a whole unit or to a multiple of five.
func ApplyRounding(amount float64, mode entity.Rounding) float64 {
	switch mode {
	case entity.RoundingOne:
		return math.Floor(amount + 0.5)
	case entity.RoundingFive:
		return math.Floor(amount/5+0.5) * 5
	default:
		return amount
	}
}
