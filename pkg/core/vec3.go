package core

import "math"

// Vec3 represents a 3D vector, point, normal, or RGB color. The rendering
// core uses one representation for all four roles, distinguished by intent
// at the call site rather than by type.
type Vec3 struct {
	X, Y, Z float64
}

// NewVec3 creates a new Vec3.
func NewVec3(x, y, z float64) Vec3 {
	return Vec3{X: x, Y: y, Z: z}
}

// Splat returns a vector with all three components equal to v.
func Splat(v float64) Vec3 {
	return Vec3{X: v, Y: v, Z: v}
}

// Add returns the sum of two vectors.
func (v Vec3) Add(o Vec3) Vec3 {
	return Vec3{v.X + o.X, v.Y + o.Y, v.Z + o.Z}
}

// Sub returns the difference of two vectors.
func (v Vec3) Sub(o Vec3) Vec3 {
	return Vec3{v.X - o.X, v.Y - o.Y, v.Z - o.Z}
}

// Mul returns the vector scaled by a scalar.
func (v Vec3) Mul(s float64) Vec3 {
	return Vec3{v.X * s, v.Y * s, v.Z * s}
}

// Div returns the vector divided by a scalar.
func (v Vec3) Div(s float64) Vec3 {
	inv := 1 / s
	return Vec3{v.X * inv, v.Y * inv, v.Z * inv}
}

// Neg returns the negation of the vector.
func (v Vec3) Neg() Vec3 {
	return Vec3{-v.X, -v.Y, -v.Z}
}

// MulVec returns the component-wise product of two vectors.
func (v Vec3) MulVec(o Vec3) Vec3 {
	return Vec3{v.X * o.X, v.Y * o.Y, v.Z * o.Z}
}

// DivVec returns the component-wise quotient of two vectors.
func (v Vec3) DivVec(o Vec3) Vec3 {
	return Vec3{v.X / o.X, v.Y / o.Y, v.Z / o.Z}
}

// Dot returns the dot product of two vectors.
func (v Vec3) Dot(o Vec3) float64 {
	return v.X*o.X + v.Y*o.Y + v.Z*o.Z
}

// AbsDot returns the absolute value of the dot product.
func (v Vec3) AbsDot(o Vec3) float64 {
	return math.Abs(v.Dot(o))
}

// Cross returns the cross product of two vectors.
func (v Vec3) Cross(o Vec3) Vec3 {
	return Vec3{
		v.Y*o.Z - v.Z*o.Y,
		v.Z*o.X - v.X*o.Z,
		v.X*o.Y - v.Y*o.X,
	}
}

// LengthSquared returns the squared magnitude of the vector.
func (v Vec3) LengthSquared() float64 {
	return v.X*v.X + v.Y*v.Y + v.Z*v.Z
}

// Length returns the magnitude of the vector.
func (v Vec3) Length() float64 {
	return math.Sqrt(v.LengthSquared())
}

// Normalize returns a unit vector in the same direction. The zero vector
// normalizes to itself.
func (v Vec3) Normalize() Vec3 {
	l := v.Length()
	if l == 0 {
		return v
	}
	return v.Div(l)
}

// Min returns the component-wise minimum of two vectors.
func (v Vec3) Min(o Vec3) Vec3 {
	return Vec3{math.Min(v.X, o.X), math.Min(v.Y, o.Y), math.Min(v.Z, o.Z)}
}

// Max returns the component-wise maximum of two vectors.
func (v Vec3) Max(o Vec3) Vec3 {
	return Vec3{math.Max(v.X, o.X), math.Max(v.Y, o.Y), math.Max(v.Z, o.Z)}
}

// Lerp linearly interpolates component-wise between v and o by t.
func (v Vec3) Lerp(o Vec3, t float64) Vec3 {
	return v.Mul(1 - t).Add(o.Mul(t))
}

// Clamp restricts each component to [lo, hi].
func (v Vec3) Clamp(lo, hi float64) Vec3 {
	return Vec3{Clamp(v.X, lo, hi), Clamp(v.Y, lo, hi), Clamp(v.Z, lo, hi)}
}

// MaxComponent returns the largest of the three components.
func (v Vec3) MaxComponent() float64 {
	return math.Max(v.X, math.Max(v.Y, v.Z))
}

// Component returns the i'th component (0=X, 1=Y, 2=Z).
func (v Vec3) Component(i int) float64 {
	switch i {
	case 0:
		return v.X
	case 1:
		return v.Y
	default:
		return v.Z
	}
}

// Luminance returns the perceptual luminance of the vector interpreted as
// an RGB color, using the Rec. 709 coefficients.
func (v Vec3) Luminance() float64 {
	return 0.212671*v.X + 0.715160*v.Y + 0.072169*v.Z
}

// IsBlack reports whether all three components are exactly zero.
func (v Vec3) IsBlack() bool {
	return v.X == 0 && v.Y == 0 && v.Z == 0
}

// FaceForward flips v so that it lies in the same hemisphere as ref.
func (v Vec3) FaceForward(ref Vec3) Vec3 {
	if v.Dot(ref) < 0 {
		return v.Neg()
	}
	return v
}

// Sqrt returns the component-wise square root, used for tonemapping.
func (v Vec3) Sqrt() Vec3 {
	return Vec3{math.Sqrt(v.X), math.Sqrt(v.Y), math.Sqrt(v.Z)}
}
