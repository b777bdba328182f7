package main

import "sync"

// Sensors gives the Gui the latest readings of the device's motion sensors.
// Readings arrive whenever the platform decides, between frames, so they are
// buffered here and collected once per frame.
type Sensors interface {
	Orientation() Orientation
	// TakeShake reports if a shake happened since the last call.
	TakeShake() bool
}

// SensorBuffer is the Sensors implementation shared by the platforms. The
// platform code pushes readings in, the Gui takes them out.
type SensorBuffer struct {
	mu          sync.Mutex
	orientation Orientation
	detector    ShakeDetector
	shaken      bool
}

func NewSensorBuffer(shakeThreshold float64) *SensorBuffer {
	return &SensorBuffer{detector: NewShakeDetector(shakeThreshold)}
}

func (s *SensorBuffer) PushOrientation(o Orientation) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.orientation = o
}

// PushAcceleration runs every reading through the shake detector, not just
// the last one of a frame. Sensors often report faster than we draw and a
// shake can be over before the next frame.
func (s *SensorBuffer) PushAcceleration(a Acceleration) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.detector.Feed(a) {
		s.shaken = true
	}
}

func (s *SensorBuffer) Orientation() Orientation {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.orientation
}

func (s *SensorBuffer) TakeShake() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	shaken := s.shaken
	s.shaken = false
	return shaken
}
