// Package linegen lays out evenly spaced grid lines and tic marks over a
// rectangle.
//
// Lines are gridUnit/linesPerUnit pixels apart and one line of each
// orientation always passes through the center of the rectangle, so that the
// x and y axes land on a grid line. Lines never extend past the rectangle's
// edges in the direction they are stepped.
//
// Coordinates are screen pixels: y grows downwards, so "top to bottom" means
// increasing y.
package linegen
