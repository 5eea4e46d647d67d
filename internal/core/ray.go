package core

// Ray is a parametric line origin + t*direction, born at Time. Direction
// need not be unit length; all intersection math uses the non-normalised
// form. Time is the shutter time the ray was sampled at and is
// propagated unchanged through every transform and scatter.
type Ray struct {
	Origin    Point3
	Direction Vec3
	Time      float64
}

// NewRay creates a ray at time 0.
func NewRay(origin Point3, direction Vec3) Ray {
	return Ray{Origin: origin, Direction: direction}
}

// NewRayAt creates a ray with an explicit shutter time.
func NewRayAt(origin Point3, direction Vec3, time float64) Ray {
	return Ray{Origin: origin, Direction: direction, Time: time}
}

// At returns the point at parameter t along the ray.
func (r Ray) At(t float64) Point3 {
	return r.Origin.Add(r.Direction.Mul(t))
}
