// Package viz renders integration results in the terminal.
//
//   - [RenderTable]: aligned comparison table of methods
//   - [SweepPlot]: log10 absolute error against a swept parameter
//   - [TracePlot]: a method's trace, e.g. the Romberg diagonal
//   - [CompareModel]: Bubble Tea program that runs methods one at a time
//
// # Key Bindings
//
//	R - Rerun all methods
//	T - Cycle color themes
//	Q - Quit
package viz
