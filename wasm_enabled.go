//go:build js && wasm

package main

import (
	"fmt"
	"syscall/js"
)

// The browser reports acceleration in m/s². Shake thresholds in sketches are
// tuned for twice that, so readings are scaled to keep the same sensitivity.
const accelerationScale = 2

// Browsers don't give us a disk, recordings only work on desktop.
const CanWriteFiles = false

func WriteFile(name string, data []byte) {
}

// NewPlatform hooks into the browser's motion events. Readings are only used
// by the Gui once access is granted.
func NewPlatform(shakeThreshold float64) (Sensors, *MotionAccess) {
	sensors := NewSensorBuffer(shakeThreshold)
	window := js.Global()

	window.Call("addEventListener", "deviceorientation",
		js.FuncOf(func(this js.Value, args []js.Value) any {
			alpha := args[0].Get("alpha")
			if alpha.Type() != js.TypeNumber {
				sensors.PushOrientation(Orientation{})
				return nil
			}
			sensors.PushOrientation(Orientation{Valid: true, Angle: alpha.Float()})
			return nil
		}))

	window.Call("addEventListener", "devicemotion",
		js.FuncOf(func(this js.Value, args []js.Value) any {
			acc := args[0].Get("acceleration")
			if !acc.Truthy() || acc.Get("x").Type() != js.TypeNumber {
				acc = args[0].Get("accelerationIncludingGravity")
			}
			if !acc.Truthy() || acc.Get("x").Type() != js.TypeNumber {
				return nil
			}
			sensors.PushAcceleration(Acceleration{
				X: acc.Get("x").Float() * accelerationScale,
				Y: acc.Get("y").Float() * accelerationScale,
			})
			return nil
		}))

	// Only iOS asks the user. Everywhere else the events simply arrive.
	motionEvent := window.Get("DeviceMotionEvent")
	if !motionEvent.Truthy() ||
		motionEvent.Get("requestPermission").Type() != js.TypeFunction {
		return sensors, NewMotionAccess(nil)
	}

	access := NewMotionAccess(browserPrompt{})
	// The prompt must be started from inside a user gesture, so the request
	// is made right here in the event handler and not in Update().
	// A tap on the canvas is also how the user retries after a refusal.
	requestHandler := js.FuncOf(func(this js.Value, args []js.Value) any {
		if !access.Granted() {
			access.Request()
		}
		return nil
	})
	window.Call("addEventListener", "touchend", requestHandler)
	window.Call("addEventListener", "mousedown", requestHandler)
	return sensors, access
}

type browserPrompt struct{}

func (browserPrompt) Prompt() <-chan PermissionOutcome {
	answer := make(chan PermissionOutcome, 1)

	var onResolve, onReject js.Func
	release := func() {
		onResolve.Release()
		onReject.Release()
	}

	// requestPermission can throw instead of rejecting. syscall/js turns that
	// into a panic, and then neither callback ever runs.
	defer func() {
		if r := recover(); r != nil {
			release()
			answer <- PermissionOutcome{Err: fmt.Errorf("%v", r)}
		}
	}()
	onResolve = js.FuncOf(func(this js.Value, args []js.Value) any {
		defer release()
		granted := len(args) > 0 && args[0].String() == "granted"
		answer <- PermissionOutcome{Granted: granted}
		return nil
	})
	onReject = js.FuncOf(func(this js.Value, args []js.Value) any {
		defer release()
		reason := "unknown reason"
		if len(args) > 0 {
			reason = args[0].Call("toString").String()
		}
		answer <- PermissionOutcome{Err: fmt.Errorf("%s", reason)}
		return nil
	})

	js.Global().Get("DeviceMotionEvent").
		Call("requestPermission").
		Call("then", onResolve, onReject)
	return answer
}
