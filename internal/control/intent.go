package control

// Intent is a view change requested by the controller.
type Intent interface {
	isIntent()
}

// DragStart marks the beginning of an orbit or pan gesture.
type DragStart struct {
	Button Button
	X, Y   float32
}

// DragEnd marks the end of the active gesture.
type DragEnd struct{}

// RotateBy adds to the drawing group's rotation, in radians.
type RotateBy struct {
	Yaw   float32
	Pitch float32
}

// PanBy moves the camera (and its target) along render-space X and Y.
type PanBy struct {
	DX float32
	DY float32
}

// ZoomBy multiplies the camera's distance to its target.
type ZoomBy struct {
	Scale float32
}

func (DragStart) isIntent() {}
func (DragEnd) isIntent()   {}
func (RotateBy) isIntent()  {}
func (PanBy) isIntent()     {}
func (ZoomBy) isIntent()    {}
