// Package lpda derives the element geometry of a log-periodic dipole array.
//
// # Overview
//
// A log-periodic dipole array (LPDA) is a sequence of dipole pairs along a
// boom, each pair scaled from its neighbour by a constant factor. Given a
// frequency band and three angular/scaling constants, this package computes
// the length, separation, and apex distance of every pair.
//
// The derivation has three steps:
//
//  1. First pair: the longest element is a half wavelength at the lower
//     frequency, L0 = 492/fl feet. Its distance to the apex follows from the
//     apex half-angle, D0 = L0/tan(Alpha/2), and the separation of its two
//     dipoles from the included angle, S0 = 2*D0*tan(Tsi/2).
//  2. Pair count: N = ceil(2*log(0.75*fl/fu)/log(T) + 1).
//  3. Recurrence: every following pair is the previous one scaled by sqrt(T).
//     The wire diameter scales too when [Params.ScaleDiameter] is set.
//
// # Units
//
// [Dimensions] works in feet, matching the 492 ft·MHz wavelength constant.
// [ToInches] rescales a pair sequence by 12 for the wire model, which is
// written in inches.
//
// # Usage
//
//	p := lpda.DefaultParams()
//	d, err := lpda.Dimensions(p)
//	if err != nil {
//	    return err
//	}
//	fmt.Println(d.NumElementPairs(), d.BoomLength)
//	pairs := lpda.ToInches(d.Pairs)
//
// # Errors
//
// Non-physical parameters (fl >= fu, T outside (0, 1), angles outside
// (0°, 180°), non-finite values) fail with an INVALID_DESIGN error from
// [github.com/matzehuels/lpda/pkg/errors] naming the offending parameter.
// An empty stock list fails with NO_STOCK_DIAMETER.
package lpda
