package display

// Renderer draws one frame. Implementations own the terminal;
// a failed draw is considered fatal by the caller.
type Renderer interface {
	Draw(frame *Frame) error
}
