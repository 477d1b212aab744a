package texture

import "fmt"

// Animated cycles through same-sized frames. The host advances it between
// renders with Step.
type Animated struct {
	frames []*Image
	frame  int
	// leader, when set, supplies the frame index so a lightened twin stays in
	// step with its source.
	leader *Animated
}

// NewAnimated returns an animation over frames.
func NewAnimated(frames ...*Image) (*Animated, error) {
	if len(frames) == 0 {
		return nil, ErrNilTexture
	}
	w, h := frames[0].Size()
	for i, f := range frames {
		if err := checkSize(f); err != nil {
			return nil, fmt.Errorf("frame %d: %w", i, err)
		}
		if fw, fh := f.Size(); fw != w || fh != h {
			return nil, fmt.Errorf("%w: frame %d is %dx%d, want %dx%d", ErrFrameSize, i, fw, fh, w, h)
		}
	}
	return &Animated{frames: frames}, nil
}

// Frame returns the index of the frame currently shown.
func (a *Animated) Frame() int {
	if a.leader != nil {
		return a.leader.Frame()
	}
	return a.frame
}

// Len returns the number of frames.
func (a *Animated) Len() int { return len(a.frames) }

// Step moves to the next frame, wrapping at the end. A follower ignores it.
func (a *Animated) Step() {
	if a.leader != nil {
		return
	}
	a.frame = (a.frame + 1) % len(a.frames)
}

func (a *Animated) current() *Image { return a.frames[a.Frame()] }

// Size returns the frame size.
func (a *Animated) Size() (int, int) { return a.frames[0].Size() }

// At samples the current frame.
func (a *Animated) At(x, y int) RGB { return a.current().At(x, y) }

// Opaque samples the current frame's alpha.
func (a *Animated) Opaque(x, y int) bool { return a.current().Opaque(x, y) }

// Lighten returns a lightened twin that always shows the same frame as a.
func (a *Animated) Lighten(amount float64) *Animated {
	twin := &Animated{frames: make([]*Image, len(a.frames)), leader: a}
	for i, f := range a.frames {
		twin.frames[i] = Lighten(f, amount)
	}
	return twin
}
