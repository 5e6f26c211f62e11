// Package controller drives one VR hand: it grabs and releases touched
// objects and turns drawn line gestures into physical bodies.
//
// The host calls Update once per frame with the controller's buttons and
// pose. Update runs synchronously; a Hand is not safe for concurrent use.
package controller

import (
	"fmt"
	"image/color"

	"github.com/google/uuid"

	"github.com/vrdraw/vrdraw/capture"
	"github.com/vrdraw/vrdraw/collider"
	"github.com/vrdraw/vrdraw/log"
	"github.com/vrdraw/vrdraw/model"
	"github.com/vrdraw/vrdraw/physics"
	"github.com/vrdraw/vrdraw/render"
)

// DefaultLineClass is the template class that becomes a collider
const DefaultLineClass = "line"

type Classifier interface {
	Classify(model.Stroke) model.ClassificationResult
}

// Projector maps world positions to screen space
type Projector interface {
	WorldToScreen(model.Vector3) model.Vector2
}

// Renderer shows the lines being drawn, one per stroke id
type Renderer interface {
	Begin(id int32, origin model.Vector3)
	Append(id int32, pos model.Vector3) bool
	Width(id int32) (float64, bool)
	SetColor(id int32, c color.RGBA) bool
	Destroy(id int32) bool
}

type Physics interface {
	AddBody(name string, params physics.BodyParams) uuid.UUID
	SetCollider(id uuid.UUID, spec model.ColliderSpec) error
	SetVelocity(id uuid.UUID, velocity, angular model.Vector3) error
	Attach(owner, connected uuid.UUID, params physics.JointParams) (uuid.UUID, error)
	Detach(joint uuid.UUID) error
	HasJoint(joint uuid.UUID) bool
	RemoveBody(id uuid.UUID) error
}

type Config struct {
	LineClass string
	LineColor color.RGBA
	LineBody  physics.BodyParams
	Joint     physics.JointParams
	Collider  collider.Synthesizer
}

func DefaultConfig() Config {
	return Config{
		LineClass: DefaultLineClass,
		LineColor: render.LineColor,
		LineBody:  physics.LineBodyParams,
		Joint:     physics.DefaultJointParams(),
	}
}

// Hand is the state of one controller
type Hand struct {
	cfg Config

	classifier Classifier
	projector  Projector
	renderer   Renderer
	physics    Physics

	body     uuid.UUID
	recorder *capture.Recorder

	colliding uuid.UUID
	inHand    uuid.UUID
	joint     uuid.UUID

	// stroke id of the line being drawn, -1 when none
	current   int32
	drawing   bool
	lineStart model.Vector3
	lineEnd   model.Vector3
	ended     bool
	lines     map[int32]bool

	pose Pose
}

// New creates a hand with its own kinematic body in phys
func New(cfg Config, classifier Classifier, projector Projector, renderer Renderer, phys Physics) *Hand {
	if cfg.LineClass == "" {
		cfg.LineClass = DefaultLineClass
	}
	return &Hand{
		cfg:        cfg,
		classifier: classifier,
		projector:  projector,
		renderer:   renderer,
		physics:    phys,
		body:       phys.AddBody("hand", physics.BodyParams{Kinematic: true}),
		recorder:   capture.NewRecorder(),
		current:    -1,
		lines:      make(map[int32]bool),
	}
}

// Update advances the hand by one frame
func (h *Hand) Update(in FrameInputs) FrameOutputs {
	h.pose = in.Pose
	out := FrameOutputs{StrokeID: h.current}

	if in.Grab.Down && h.colliding != uuid.Nil {
		out.Grabbed = h.grab()
	}
	if in.Grab.Up {
		if released, ok := h.Release(); ok {
			out.Released = released
		}
	}

	if in.Draw.Down {
		h.beginStroke()
		out.StrokeBegun = true
		out.StrokeID = h.current
	}
	if in.Draw.Up && h.drawing {
		h.lineEnd = in.Pose.Position
		h.ended = true
		h.drawing = false
	}
	if in.Draw.pressed() && h.drawing {
		screen := h.projector.WorldToScreen(in.Pose.Position)
		log.Trace.Printf("screen pos: %.1f, %.1f", screen.X, screen.Y)
		h.recorder.AddPoint(screen)
		h.renderer.Append(h.current, in.Pose.Position)
		out.PointAdded = true
	}

	if in.Commit.Down {
		h.commit(&out)
	}

	return out
}

// TriggerEnter marks obj as the object the hand touches
func (h *Hand) TriggerEnter(obj uuid.UUID) {
	h.colliding = obj
}

func (h *Hand) TriggerStay(obj uuid.UUID) {
	h.colliding = obj
}

func (h *Hand) TriggerExit() {
	h.colliding = uuid.Nil
}

func (h *Hand) grab() uuid.UUID {
	// a missed trigger up leaves the previous object attached
	if h.inHand != uuid.Nil {
		h.Release()
	}

	obj := h.colliding
	h.colliding = uuid.Nil

	joint, err := h.physics.Attach(h.body, obj, h.cfg.Joint)
	if err != nil {
		log.Error.Printf("can't grab %s: %v", obj, err)
		return uuid.Nil
	}
	h.inHand = obj
	h.joint = joint
	return obj
}

// Release lets go of the held object, handing it the controller's
// velocity. Without a held object it does nothing and reports false.
func (h *Hand) Release() (uuid.UUID, bool) {
	if h.inHand == uuid.Nil {
		return uuid.Nil, false
	}
	obj := h.inHand

	// the joint may have broken under load
	if h.joint != uuid.Nil && h.physics.HasJoint(h.joint) {
		if err := h.physics.Detach(h.joint); err != nil {
			log.Warning.Printf("detach %s: %v", h.joint, err)
		} else if err := h.physics.SetVelocity(obj, h.pose.Velocity, h.pose.AngularVelocity); err != nil {
			log.Warning.Printf("release %s: %v", obj, err)
		}
	}

	h.joint = uuid.Nil
	h.inHand = uuid.Nil
	return obj, true
}

func (h *Hand) beginStroke() {
	// a stroke that was never committed is abandoned with its line
	if h.current >= 0 && h.lines[h.current] && h.recorder.Active() {
		h.destroyLine(h.current)
	}

	h.current = h.recorder.Begin()
	h.drawing = true
	h.ended = false
	h.lineStart = h.pose.Position

	h.renderer.Begin(h.current, h.pose.Position)
	h.lines[h.current] = true
}

func (h *Hand) commit(out *FrameOutputs) {
	id := h.current
	stroke := h.recorder.Commit()

	end := h.lineEnd
	if h.drawing || !h.ended {
		end = h.pose.Position
	}
	h.drawing = false

	res := h.classifier.Classify(stroke)
	log.Trace.Printf("stroke %d (%d points) classified as %q score %.3f", id, len(stroke), res.Class, res.Score)

	out.Committed = true
	out.Stroke = stroke
	out.Result = res

	if res.Class == h.cfg.LineClass {
		h.materialize(id, model.LineEndpoints{Start: h.lineStart, End: end}, out)
		return
	}
	out.LinesDestroyed = h.teardown()
}

// materialize turns the line of stroke id into a body with a box collider.
// The line then belongs to the body.
func (h *Hand) materialize(id int32, endpoints model.LineEndpoints, out *FrameOutputs) {
	if !h.lines[id] {
		log.Warning.Printf("no line for stroke %d, skipping collider", id)
		return
	}
	width, ok := h.renderer.Width(id)
	if !ok {
		log.Warning.Printf("line for stroke %d is gone, skipping collider", id)
		delete(h.lines, id)
		return
	}

	spec := h.cfg.Collider.Synthesize(endpoints, width)
	body := h.physics.AddBody(fmt.Sprintf("line-%d", id), h.cfg.LineBody)
	if err := h.physics.SetCollider(body, spec); err != nil {
		log.Error.Printf("collider for stroke %d: %v", id, err)
		if err := h.physics.RemoveBody(body); err != nil {
			log.Warning.Printf("remove body %s: %v", body, err)
		}
		return
	}
	h.renderer.SetColor(id, h.cfg.LineColor)
	delete(h.lines, id)

	out.Collider = &spec
	out.LineBody = body
}

func (h *Hand) destroyLine(id int32) {
	h.renderer.Destroy(id)
	delete(h.lines, id)
}

// teardown destroys every line the hand still owns
func (h *Hand) teardown() int {
	n := 0
	for id := range h.lines {
		h.destroyLine(id)
		n++
	}
	return n
}

// Close releases any held object and destroys owned lines
func (h *Hand) Close() {
	h.Release()
	h.recorder.Discard()
	h.drawing = false
	h.teardown()
}

func (h *Hand) Body() uuid.UUID {
	return h.body
}

func (h *Hand) Pose() Pose {
	return h.pose
}

// Holding returns the held object, uuid.Nil if none
func (h *Hand) Holding() uuid.UUID {
	return h.inHand
}

// Joint returns the joint holding the grabbed object, uuid.Nil if none
func (h *Hand) Joint() uuid.UUID {
	return h.joint
}

// Touching returns the object the hand touches, uuid.Nil if none
func (h *Hand) Touching() uuid.UUID {
	return h.colliding
}

func (h *Hand) Drawing() bool {
	return h.drawing
}

// StrokeID returns the id of the latest stroke, -1 before the first
func (h *Hand) StrokeID() int32 {
	return h.current
}

// Points returns the number of points in the active stroke
func (h *Hand) Points() int {
	return h.recorder.Len()
}

// OwnedLines returns the number of lines the hand still owns
func (h *Hand) OwnedLines() int {
	return len(h.lines)
}
