// Package seawater implements closed-form empirical formulas for
// oceanographic acoustics: sound absorption, sound speed, seawater density
// (EOS-80) and depth/pressure conversion, each in several historical
// parameterizations (Fisher & Simmons 1977, Francois & Garrison 1982,
// Del Grosso 1974, Chen & Millero 1977, Mackenzie 1981, Leroy 1969/2008,
// Leroy & Parthiot 1998, ...).
//
// Every formula is a pure, stateless function over scalar-or-vector inputs.
// Inputs are []float64 slices; a length-1 slice broadcasts against the other
// inputs. Temperatures are taken on the ITS-90 scale and converted internally
// to the scale each formula was fitted on (IPTS-68 or IPTS-48).
//
// Variants are addressed by an author-year tag, e.g.
//
//	a, err := seawater.Absorption("francois-garrison-1982", seawater.Sample{
//		T: []float64{10}, S: []float64{35}, F: []float64{100},
//	})
//
// Variants(quantity) lists the registered tags per physical quantity.
package seawater
