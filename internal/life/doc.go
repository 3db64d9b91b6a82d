// Package life implements the Game of Life simulation core.
//
// The package is deliberately free of any rendering or input dependency.
// A [Board] holds the grid, [NextState] is the B3/S23 transition rule, an
// [Engine] advances the board one synchronous tick at a time, and a
// [Driver] paces ticks against wall-clock time until the board reaches a
// fixed point. Renderers subscribe through the [Observer] interface and
// receive only the cells that changed on each tick.
package life
