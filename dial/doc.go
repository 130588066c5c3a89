// Package dial implements a rotary telephone dial: the geometry of its ten
// finger holes and the drag state machine that turns pointer samples into a
// rotation and, on release, a dialed digit.
//
// Angles are in degrees in screen coordinates: 0 points east and positive
// turns clockwise, because y grows downward.
//
// Layout is pure. Step is the pure transition function; Controller wraps it
// with a callback and a presentation Spring so hosts only forward events,
// advance time and draw.
package dial
