// Package pkg provides the libraries behind the lpda wire model generator.
//
// # Overview
//
// lpda turns the design constants of a log-periodic dipole array (band edges,
// apex angle, included angle, filling ratio) into the wire table read by
// EZ-NEC. The pkg directory is organized into these areas:
//
//  1. [lpda] - Antenna math (parameters, element recurrence, unit conversion)
//  2. [wire] - Wire geometry (stock diameter selection, element projection)
//  3. [nec] - Encoders (EZ-NEC ASCII, JSON) and atomic file export
//  4. [pipeline] - Orchestration (recurrence → conversion → projection → emission)
//  5. [errors], [observability], [buildinfo] - Shared infrastructure
//
// # Data Flow
//
//	Params (MHz, degrees, inches)
//	         ↓
//	[lpda.Dimensions] → element pairs in feet
//	         ↓
//	[lpda.ToInches] → element pairs in inches
//	         ↓
//	[wire.Project] → four wires per pair, diameters snapped to stock
//	         ↓
//	[nec.Marshal] / [nec.WriteJSON] → artifact
//	         ↓
//	[nec.Export] → LPDA.txt
//
// # Quick Start
//
//	d, err := lpda.Dimensions(lpda.DefaultParams())
//	if err != nil {
//	    return err
//	}
//	m, err := wire.Project(lpda.ToInches(d.Pairs), d.Params.Stock, d.Params.Segments)
//	if err != nil {
//	    return err
//	}
//	return nec.Export("LPDA.txt", nec.Marshal(m.Wires(), nec.Options{EZNEC: true}))
//
// The [pipeline] package wraps these steps with logging and hooks, and is what
// the CLI in cmd/lpda uses.
//
// [lpda]: github.com/matzehuels/lpda/pkg/lpda
// [wire]: github.com/matzehuels/lpda/pkg/wire
// [nec]: github.com/matzehuels/lpda/pkg/nec
// [pipeline]: github.com/matzehuels/lpda/pkg/pipeline
// [errors]: github.com/matzehuels/lpda/pkg/errors
// [observability]: github.com/matzehuels/lpda/pkg/observability
// [buildinfo]: github.com/matzehuels/lpda/pkg/buildinfo
package pkg
