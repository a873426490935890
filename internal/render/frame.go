package render

// Frame stores one byte-sized display value per cell in row-major order. It
// is presentation state only: the engines keep their own sparse
// representations, and the app refills the frame from queries each draw.
type Frame struct {
	W, H int
	data []uint8
}

// NewFrame allocates a frame with the given dimensions.
func NewFrame(w, h int) *Frame {
	if w <= 0 {
		w = 1
	}
	if h <= 0 {
		h = 1
	}
	return &Frame{W: w, H: h, data: make([]uint8, w*h)}
}

// Cells exposes the backing slice so callers can read/write values directly.
func (f *Frame) Cells() []uint8 { return f.data }

// Index returns the linear slice index for coordinates (x, y).
func (f *Frame) Index(x, y int) int { return y*f.W + x }

// Clear fills the frame with zeros.
func (f *Frame) Clear() {
	for i := range f.data {
		f.data[i] = 0
	}
}
