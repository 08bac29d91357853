// Package testing provides a render object testing harness.
//
// # Quick Start
//
// Create a tester, pump a render tree, and make assertions:
//
//	func TestStick(t *testing.T) {
//	    tester := jtest.NewWidgetTesterWithT(t)
//	    tester.SetSize(graphics.Size{Width: 170, Height: 170})
//	    box := widgets.Joystick{}.CreateRenderObject()
//	    tester.PumpWidget(box)
//
//	    // Simulate gestures in surface coordinates
//	    tester.DragFrom(graphics.Offset{X: 85, Y: 85}, graphics.Offset{X: 0, Y: 200})
//	    tester.Pump()
//
//	    // Inspect the last frame
//	    ops := tester.DisplayOps()
//	}
//
// # Snapshot Testing
//
// Capture and compare render tree snapshots:
//
//	snapshot := tester.CaptureSnapshot()
//	snapshot.MatchesFile(t, "testdata/stick.snapshot.json")
//
// Update snapshots with:
//
//	JOYSTICK_UPDATE_SNAPSHOTS=1 go test ./...
//
// # Import Alias
//
// Since this package has the same name as the standard library testing
// package, import it with an alias:
//
//	import jtest "github.com/go-drift/joystick/pkg/testing"
package testing
