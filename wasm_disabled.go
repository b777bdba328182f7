//go:build !(js && wasm)

package main

import "os"

const CanWriteFiles = true

func WriteFile(name string, data []byte) {
	err := os.WriteFile(name, data, 0644)
	Check(err)
}

// NewPlatform returns sensors that never report anything. Desktops have no
// motion sensors, so there is nothing to ask permission for either. Shakes
// come from the keyboard instead, see Gui.Update.
func NewPlatform(shakeThreshold float64) (Sensors, *MotionAccess) {
	return NewSensorBuffer(shakeThreshold), NewMotionAccess(nil)
}
