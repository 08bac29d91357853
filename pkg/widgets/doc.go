// Package widgets provides the render objects hosted by a joystick surface.
//
// Widgets are plain configuration structs. CreateRenderObject builds the
// render object once, and UpdateRenderObject applies a changed configuration
// while keeping the render object's state:
//
//	cfg := widgets.Joystick{Density: 2, OnChanged: steer}
//	stickBox := cfg.CreateRenderObject()
//	root := widgets.Centered(stickBox).CreateRenderObject()
//
//	cfg.OnChanged = steerFaster
//	cfg.UpdateRenderObject(stickBox)
//
// [RenderJoystick] is the interactive piece: it sizes itself from the layout
// constraints, paints its base and thumb, and turns pointer events routed to
// it into stick transitions. [Center] is a layout helper that gives the stick
// loose constraints so it can pick its preferred size.
package widgets
