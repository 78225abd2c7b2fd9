// Package wire projects LPDA element pairs into straight 3D conductors.
//
// # Geometry
//
// The boom lies on the X axis with the apex at the origin. Each element pair
// sits in the plane X = D (its vertex distance). Its two dipoles run parallel
// to Y at Z = +S/2 (upper) and Z = -S/2 (lower). Every dipole is split at
// Y = 0 into a left and right half so a simulator can place a feed at the
// centre without special-casing wire endpoints:
//
//	UpperLeft:  (D, h, s) → (D, 0, s)
//	UpperRight: (D, 0, s) → (D, -h, s)
//	LowerLeft:  (D, h, -s) → (D, 0, -s)
//	LowerRight: (D, 0, -s) → (D, -h, -s)
//
// where h = L/2 and s = S/2. Endpoints are [r3.Vec] values from gonum.
//
// # Diameters
//
// Computed diameters are snapped to the closest value in a stock list with
// [SelectDiameter]. Ties go to the entry that appears first in the list.
//
// # Extension
//
// [Model] keeps element wires and additional wires (boom, connecting or feed
// lines) apart. [Project] fills only the element wires; callers add the rest
// with [Model.Append].
package wire
