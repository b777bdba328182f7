package main

const MaxPointerTilt = 45.0 // degrees

// Orientation is a reading from the device orientation sensor. Valid is false
// when there is no sensor, when the user did not allow access to it or when
// no reading arrived yet.
type Orientation struct {
	Valid bool
	Angle float64 // degrees, rotation around the axis pointing out of the screen
}

// TiltAngle returns the angle, in degrees, by which the image is rotated.
// A live sensor reading wins. Without one, the horizontal position of the
// pointer is mapped from [0, width] to [-45, 45]. If the pointer never moved,
// the pointer is considered to be in the middle of the canvas.
func TiltAngle(o Orientation, pointer Vec, pointerMoved bool, width float64) float64 {
	if o.Valid {
		return o.Angle
	}
	if width <= 0 {
		return 0
	}
	x := width / 2
	if pointerMoved {
		x = pointer.X
	}
	return Remap(x, 0, width, -MaxPointerTilt, MaxPointerTilt)
}
