package core

import (
	"log"
	"os"
)

// Logger interface for raytracer logging
type Logger interface {
	Printf(format string, args ...interface{})
}

// NewLogger returns a stdout logger tagged with prefix
func NewLogger(prefix string) *log.Logger {
	tag := ""
	if prefix != "" {
		tag = "[" + prefix + "] "
	}
	return log.New(os.Stdout, tag, log.LstdFlags|log.Lmicroseconds)
}

// Material is the part of a surface description that light transport needs.
// Transmission is the per-channel fraction of light passing through the surface
// (0 = opaque, 1 = fully transparent). Callers clamp it to [0,1].
type Material interface {
	Transmission() Vec3
}

// HitRecord contains information about a ray-object intersection
type HitRecord struct {
	Point     Vec3     // Point of intersection
	Normal    Vec3     // Surface normal at intersection, facing the ray
	T         float64  // Parameter t along the ray
	FrontFace bool     // Whether ray hit the front face
	Material  Material // Material of the hit object
}

// SetFaceNormal sets the normal vector and determines front/back face
func (h *HitRecord) SetFaceNormal(ray Ray, outwardNormal Vec3) {
	h.FrontFace = ray.Direction.Dot(outwardNormal) < 0
	if h.FrontFace {
		h.Normal = outwardNormal
	} else {
		h.Normal = outwardNormal.Multiply(-1)
	}
}

// Shape interface for objects that can be hit by rays
type Shape interface {
	Hit(ray Ray, tMin, tMax float64) (*HitRecord, bool)
	BoundingBox() AABB
}

// Unbounded is implemented by shapes with no finite extent. Their
// BoundingBox is nominal, so they are tested outside any BVH.
type Unbounded interface {
	Unbounded() bool
}

// IsUnbounded reports whether s declares itself unbounded
func IsUnbounded(s Shape) bool {
	u, ok := s.(Unbounded)
	return ok && u.Unbounded()
}
