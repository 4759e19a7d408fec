// Package dial maps wall-clock time onto an analog clock face.
//
// Everything here is a pure function of buffer size, palette and time: the face
// outline and ticks (BuildFace), the hand angles (AnglesAt) and the hand
// endpoints (Geometry.HandsFor). Angles are in radians with 0 pointing right
// and growing clockwise in screen space, so -π/2 is twelve o'clock.
package dial
