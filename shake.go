package main

import "math"

const DefaultShakeThreshold = 15.0

// Acceleration is a reading from the motion sensor, in m/s².
type Acceleration struct {
	X float64
	Y float64
}

// ShakeDetector turns a stream of acceleration readings into shake events.
// A shake is a big enough change in acceleration between two consecutive
// readings: |dx| + |dy| > Threshold. This is how browsers' creative coding
// libraries usually define it, and users are used to how sensitive it is.
type ShakeDetector struct {
	Threshold float64
	prev      Acceleration
	hasPrev   bool
}

func NewShakeDetector(threshold float64) ShakeDetector {
	if threshold <= 0 {
		threshold = DefaultShakeThreshold
	}
	return ShakeDetector{Threshold: threshold}
}

// Feed processes a new reading and returns true if it completes a shake. The
// first reading never does, there is nothing to compare it with.
func (d *ShakeDetector) Feed(a Acceleration) bool {
	defer func() {
		d.prev = a
		d.hasPrev = true
	}()
	if !d.hasPrev {
		return false
	}
	change := math.Abs(a.X-d.prev.X) + math.Abs(a.Y-d.prev.Y)
	return change > d.Threshold
}
