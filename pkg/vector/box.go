package vector

// BoundingBox is an axis-aligned box spanned by two corners.
// BottomLeftFront holds the per-axis minimum, TopRightBack the maximum.
type BoundingBox[V Vector[V]] struct {
	BottomLeftFront V
	TopRightBack    V
}

// NewBoundingBox returns the smallest box containing both corners,
// regardless of the order they are given in.
func NewBoundingBox[V Vector[V]](a, b V) BoundingBox[V] {
	return BoundingBox[V]{BottomLeftFront: a.Min(b), TopRightBack: a.Max(b)}
}

// Intersects reports whether the two boxes overlap with positive extent on
// every axis. Boxes that only touch, and zero-extent boxes, never intersect.
func (b BoundingBox[V]) Intersects(o BoundingBox[V]) bool {
	return b.BottomLeftFront.Less(o.TopRightBack) && o.BottomLeftFront.Less(b.TopRightBack)
}

// Union returns the smallest box containing both boxes.
func (b BoundingBox[V]) Union(o BoundingBox[V]) BoundingBox[V] {
	return BoundingBox[V]{
		BottomLeftFront: b.BottomLeftFront.Min(o.BottomLeftFront),
		TopRightBack:    b.TopRightBack.Max(o.TopRightBack),
	}
}

// Extend returns the smallest box containing b and the point p.
func (b BoundingBox[V]) Extend(p V) BoundingBox[V] {
	return BoundingBox[V]{
		BottomLeftFront: b.BottomLeftFront.Min(p),
		TopRightBack:    b.TopRightBack.Max(p),
	}
}

// Contains reports whether p lies inside b, boundary included.
func (b BoundingBox[V]) Contains(p V) bool {
	return b.BottomLeftFront.Min(p) == b.BottomLeftFront && b.TopRightBack.Max(p) == b.TopRightBack
}

// Size returns the extent of the box along every axis.
func (b BoundingBox[V]) Size() V { return b.TopRightBack.Sub(b.BottomLeftFront) }

// Center returns the midpoint of the box.
func (b BoundingBox[V]) Center() V {
	return b.BottomLeftFront.Add(b.TopRightBack).Scale(0.5)
}

// Pad grows every side of the box by fraction of its extent along that axis.
// A fraction of 0.07 grows a 100-wide box to 114.
func (b BoundingBox[V]) Pad(fraction float64) BoundingBox[V] {
	pad := b.Size().Scale(fraction)
	return BoundingBox[V]{
		BottomLeftFront: b.BottomLeftFront.Sub(pad),
		TopRightBack:    b.TopRightBack.Add(pad),
	}
}
