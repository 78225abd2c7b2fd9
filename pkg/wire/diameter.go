package wire

import (
	"math"

	"github.com/matzehuels/lpda/pkg/errors"
)

// SelectDiameter returns the stock diameter closest to d.
//
// The stock list is scanned in order and an entry replaces the current best
// only if it is strictly closer, so on a tie the earlier entry wins. The
// result is always a member of stock. An empty list fails with
// NO_STOCK_DIAMETER.
func SelectDiameter(d float64, stock []float64) (float64, error) {
	if len(stock) == 0 {
		return 0, errors.New(errors.ErrCodeNoStockDiameter, "no stock diameter to match %g in", d)
	}

	best := stock[0]
	minDiff := math.Abs(d - best)
	for _, s := range stock[1:] {
		if diff := math.Abs(d - s); diff < minDiff {
			minDiff = diff
			best = s
		}
	}
	return best, nil
}
