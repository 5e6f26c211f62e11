// Package physics is an in-memory stand-in for the engine's rigid body
// simulation. It keeps bodies, their box colliders and the fixed joints
// that hold grabbed objects to the hand.
package physics

import (
	"github.com/google/uuid"
	"github.com/pkg/errors"

	"github.com/vrdraw/vrdraw/log"
	"github.com/vrdraw/vrdraw/model"
)

// DefaultBreakForce is the force and torque a grab joint withstands
const DefaultBreakForce = 20000

var (
	ErrNoBody  = errors.New("no such body")
	ErrNoJoint = errors.New("no such joint")
)

type BodyParams struct {
	Mass                float64
	UseGravity          bool
	Interpolate         bool
	ContinuousCollision bool
	Kinematic           bool
}

// LineBodyParams are used for bodies created from drawn lines
var LineBodyParams = BodyParams{
	Mass:                1,
	UseGravity:          false,
	Interpolate:         true,
	ContinuousCollision: true,
}

type JointParams struct {
	BreakForce  float64
	BreakTorque float64
}

func DefaultJointParams() JointParams {
	return JointParams{
		BreakForce:  DefaultBreakForce,
		BreakTorque: DefaultBreakForce,
	}
}

type Body struct {
	ID              uuid.UUID
	Name            string
	Params          BodyParams
	Collider        *model.ColliderSpec
	Velocity        model.Vector3
	AngularVelocity model.Vector3
}

// Joint is a fixed joint between an owner body and a connected body
type Joint struct {
	ID        uuid.UUID
	Owner     uuid.UUID
	Connected uuid.UUID
	Params    JointParams
}

// World holds bodies and joints. It is driven from the frame loop and
// is not safe for concurrent use.
type World struct {
	bodies map[uuid.UUID]*Body
	order  []uuid.UUID
	joints map[uuid.UUID]*Joint
}

func NewWorld() *World {
	return &World{
		bodies: make(map[uuid.UUID]*Body),
		joints: make(map[uuid.UUID]*Joint),
	}
}

// AddBody creates a body and returns its id
func (w *World) AddBody(name string, params BodyParams) uuid.UUID {
	id := uuid.New()
	w.bodies[id] = &Body{ID: id, Name: name, Params: params}
	w.order = append(w.order, id)
	log.Trace.Printf("physics: added body %s (%s)", name, id)
	return id
}

// RemoveBody deletes a body and every joint it takes part in
func (w *World) RemoveBody(id uuid.UUID) error {
	if _, ok := w.bodies[id]; !ok {
		return ErrNoBody
	}
	for jid, j := range w.joints {
		if j.Owner == id || j.Connected == id {
			delete(w.joints, jid)
		}
	}
	delete(w.bodies, id)
	for i, o := range w.order {
		if o == id {
			w.order = append(w.order[:i], w.order[i+1:]...)
			break
		}
	}
	return nil
}

func (w *World) SetCollider(id uuid.UUID, spec model.ColliderSpec) error {
	b, ok := w.bodies[id]
	if !ok {
		return errors.Wrapf(ErrNoBody, "set collider on %s", id)
	}
	b.Collider = &spec
	return nil
}

func (w *World) SetVelocity(id uuid.UUID, velocity, angular model.Vector3) error {
	b, ok := w.bodies[id]
	if !ok {
		return errors.Wrapf(ErrNoBody, "set velocity on %s", id)
	}
	b.Velocity = velocity
	b.AngularVelocity = angular
	return nil
}

// Body returns a copy of the body
func (w *World) Body(id uuid.UUID) (Body, bool) {
	b, ok := w.bodies[id]
	if !ok {
		return Body{}, false
	}
	return *b, true
}

// Bodies returns copies of all bodies in creation order
func (w *World) Bodies() []Body {
	out := make([]Body, 0, len(w.order))
	for _, id := range w.order {
		out = append(out, *w.bodies[id])
	}
	return out
}

// FindBody returns the first body with the given name
func (w *World) FindBody(name string) (Body, bool) {
	for _, id := range w.order {
		if b := w.bodies[id]; b.Name == name {
			return *b, true
		}
	}
	return Body{}, false
}

// Attach connects two bodies with a fixed joint
func (w *World) Attach(owner, connected uuid.UUID, params JointParams) (uuid.UUID, error) {
	if _, ok := w.bodies[owner]; !ok {
		return uuid.Nil, errors.Wrapf(ErrNoBody, "attach owner %s", owner)
	}
	if _, ok := w.bodies[connected]; !ok {
		return uuid.Nil, errors.Wrapf(ErrNoBody, "attach body %s", connected)
	}

	id := uuid.New()
	w.joints[id] = &Joint{ID: id, Owner: owner, Connected: connected, Params: params}
	log.Trace.Printf("physics: joint %s attaches %s to %s", id, connected, owner)
	return id, nil
}

// Detach removes a joint
func (w *World) Detach(joint uuid.UUID) error {
	if _, ok := w.joints[joint]; !ok {
		return ErrNoJoint
	}
	delete(w.joints, joint)
	return nil
}

func (w *World) HasJoint(joint uuid.UUID) bool {
	_, ok := w.joints[joint]
	return ok
}

// Joints returns the number of live joints
func (w *World) Joints() int {
	return len(w.joints)
}

// Load applies a force and torque to a joint. A joint loaded beyond its
// break force or torque is removed and Load reports true.
func (w *World) Load(joint uuid.UUID, force, torque float64) (bool, error) {
	j, ok := w.joints[joint]
	if !ok {
		return false, ErrNoJoint
	}
	if force > j.Params.BreakForce || torque > j.Params.BreakTorque {
		delete(w.joints, joint)
		log.Trace.Printf("physics: joint %s broke (force %.1f torque %.1f)", joint, force, torque)
		return true, nil
	}
	return false, nil
}
