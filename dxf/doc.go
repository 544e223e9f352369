// Package dxf parses the ENTITIES section of ASCII DXF files into typed
// 2D geometric entities.
//
// # Overview
//
// DXF ASCII alternates an integer group-code line with a value line. The
// parser walks that stream with an explicit two-state machine (awaiting
// code, awaiting value) and commits to one entity variant per group code 0.
// Four kinds are supported: LINE, CIRCLE, ARC, and LWPOLYLINE (plus the
// classic R12 POLYLINE/VERTEX/SEQEND form, which produces the same
// Polyline variant).
//
// # Leniency
//
// Real-world DXF exporters vary wildly in compliance, so Parse never
// returns an error. Malformed or unrecognized lines are skipped, entities
// with missing fields are emitted with zero defaults, and text with no
// ENTITIES section parses to an empty sequence.
//
// # Quick Start
//
//	entities := dxf.Parse(dxf.DecodeText(raw))
//	for _, e := range entities {
//		switch e := e.(type) {
//		case *dxf.Line:
//			// e.Start, e.End
//		case *dxf.Circle:
//			// e.Center, e.Radius
//		}
//	}
package dxf
