// Package host declares the engine collaborators the player controller consumes.
// Implementations live in the host application; package sim provides a
// headless reference implementation.
package host

import "github.com/go-gl/mathgl/mgl64"

// Ray is a half-line in world space. Direction is expected to be normalized.
type Ray struct {
	Origin    mgl64.Vec3
	Direction mgl64.Vec3
}

// Point returns the point at distance dist along the ray.
func (r Ray) Point(dist float64) mgl64.Vec3 {
	return r.Origin.Add(r.Direction.Mul(dist))
}

// World is the scene the controller spawns balls into and aims against.
type World interface {
	// Raycast intersects the ray with world geometry.
	// Returns the nearest hit point and true, or false on a miss.
	Raycast(r Ray) (mgl64.Vec3, bool)

	// Instantiate creates a new object from the named template.
	// Returns nil when the template cannot be instantiated.
	Instantiate(template string, pos mgl64.Vec3, rot mgl64.Quat) Object
}

// Object is a spawned engine object.
type Object interface {
	// Body returns the object's rigid body, or nil if it has none.
	Body() RigidBody

	// SetParent attaches the object to the anchor at a zero local offset.
	SetParent(a Anchor)

	// Detach removes the object from its parent, keeping its world position.
	Detach()
}

// RigidBody is the physics side of an Object.
type RigidBody interface {
	// SetKinematic toggles whether the body ignores forces and collisions.
	SetKinematic(kinematic bool)

	// AddImpulse applies an instantaneous impulse.
	AddImpulse(impulse mgl64.Vec3)
}

// Anchor is the hand transform balls are held by.
type Anchor interface {
	LocalPosition() mgl64.Vec3
	SetLocalPosition(p mgl64.Vec3)
	WorldPosition() mgl64.Vec3
}

// Camera is the first-person camera the look controller drives.
type Camera interface {
	// SetLocalRotation overwrites the camera's local orientation.
	SetLocalRotation(q mgl64.Quat)

	// CenterRay returns the world-space ray through the screen center.
	CenterRay() Ray
}
