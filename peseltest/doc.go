// Package peseltest provides testing utilities for peselgo.
//
// This package is intended for use in tests and benchmarks only.
// It provides a deterministic generator of valid PESEL numbers spread
// over the whole encodable range of birth dates, 1800 through 2299.
//
// # Generating Numbers
//
//	gen := peseltest.NewGenerator(seed)
//	value := gen.Uint64()     // one valid number
//	values := gen.Values(100) // a batch
//
// # Typed Helpers
//
//	d := gen.Decimal()
//	b := gen.Binary()
//
// The same seed always yields the same sequence, and Reset rewinds a
// Generator to replay it.
package peseltest
