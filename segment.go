package gglab

// SegmentHandle identifies a segment emitted into a SegmentSink.
type SegmentHandle uint64

// SegmentSink receives straight polyline segments and can retract them.
// The curve editor retracts every segment it emitted before each redraw.
type SegmentSink interface {
	// Line records the segment a-b drawn in color c and returns its handle.
	Line(a, b Point, c RGBA) SegmentHandle
	// Retract removes a previously returned segment. Retracting an unknown
	// or already retracted handle is a no-op.
	Retract(h SegmentHandle)
}
