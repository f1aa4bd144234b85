// Package frame provides the labeled tabular container at the core of the
// engine: a rows-by-columns grid addressable by both integer position and axis
// label, transposable, maskable by boolean predicate, and mutable only
// through explicit assignment.
//
// # Data model
//
// A [Table] holds ordered, unique row and column labels and column-major
// storage where each [Column] is a homogeneously typed vector: numeric
// with an explicit [Missing] sentinel, or text. A [Scalar] is a tagged
// variant (number, text, or Missing), so every comparison and reduction
// decides its missing-value policy explicitly instead of relying on
// implicit propagation.
//
// # Dual indexing
//
// [Table.Get] and [Table.Set] share selector semantics: each axis takes one
// [Selector], which is a position ([At]), a half-open range ([Span]), a
// position set ([Positions]), a label ([Label]), a label set ([Labels]), a
// boolean vector ([MaskVec]), or [All]. Reading a single cell returns a
// bare Scalar rather than a 1x1 table. Get and Set are separate operations
// with identical selector resolution; there is no polymorphic accessor
// whose mutation behavior depends on call position.
//
// # Example
//
//	t, _ := frame.New(
//		[]string{"1990", "1991", "1992"},
//		[]string{"A", "B"},
//		[]frame.Column{
//			frame.NumbersColumn([]float64{5, 15, 25}),
//			frame.NumbersColumn([]float64{1, 2, 3}),
//		},
//	)
//	res, _ := t.Get(frame.Label("1991"), frame.Label("A")) // scalar 15
//	grid := t.Mask(frame.Gt(10))
//	_ = t.ApplyMask(grid, frame.Missing())
package frame
