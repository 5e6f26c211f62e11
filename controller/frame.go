package controller

import (
	"github.com/google/uuid"

	"github.com/vrdraw/vrdraw/model"
)

// Button is the edge state of a controller button for one frame.
// Held is true on every frame the button is pressed.
type Button struct {
	Down bool
	Up   bool
	Held bool
}

func (b Button) pressed() bool {
	return b.Held || b.Down
}

// Press returns the state of the frame a button goes down
func Press() Button {
	return Button{Down: true, Held: true}
}

func Hold() Button {
	return Button{Held: true}
}

func Lift() Button {
	return Button{Up: true}
}

// Pose is the tracked controller pose
type Pose struct {
	Position        model.Vector3
	Velocity        model.Vector3
	AngularVelocity model.Vector3
}

type FrameInputs struct {
	Pose Pose

	// Grab holds touched objects while pressed
	Grab Button
	// Draw records a stroke while pressed
	Draw Button
	// Commit classifies the recorded stroke
	Commit Button
}

// FrameOutputs reports what happened during a frame
type FrameOutputs struct {
	Grabbed  uuid.UUID
	Released uuid.UUID

	StrokeBegun bool
	StrokeID    int32
	PointAdded  bool

	Committed      bool
	Stroke         model.Stroke
	Result         model.ClassificationResult
	Collider       *model.ColliderSpec
	LineBody       uuid.UUID
	LinesDestroyed int
}
