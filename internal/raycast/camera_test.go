package raycast

import (
	"errors"
	"math"
	"testing"
)

func TestCameraValidate(t *testing.T) {
	cases := []struct {
		name string
		cam  Camera
		ok   bool
	}{
		{"well formed", Camera{Pos: Vec{1, 1}, Dir: Vec{1, 0}, Plane: Vec{0, 0.66}}, true},
		{"zero dir", Camera{Dir: Vec{}, Plane: Vec{0, 1}}, false},
		{"zero plane", Camera{Dir: Vec{1, 0}, Plane: Vec{}}, false},
		{"parallel", Camera{Dir: Vec{1, 0}, Plane: Vec{2, 0}}, false},
		{"nan position", Camera{Pos: Vec{math.NaN(), 0}, Dir: Vec{1, 0}, Plane: Vec{0, 1}}, false},
		{"infinite dir", Camera{Dir: Vec{math.Inf(1), 0}, Plane: Vec{0, 1}}, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NewCamera(tc.cam.Pos, tc.cam.Dir, tc.cam.Plane)
			if tc.ok && err != nil {
				t.Errorf("NewCamera() = %v, want nil", err)
			}
			if !tc.ok && !errors.Is(err, ErrDegenerateCamera) {
				t.Errorf("NewCamera() = %v, want ErrDegenerateCamera", err)
			}
		})
	}
}

func TestCameraAt(t *testing.T) {
	fov := math.Pi / 3
	c := CameraAt(Vec{2, 3}, 0, fov)
	if err := c.Validate(); err != nil {
		t.Fatal(err)
	}
	if math.Abs(c.FOV()-fov) > 1e-12 {
		t.Errorf("FOV() = %v, want %v", c.FOV(), fov)
	}
	// Column 0 (t = -1) looks to the left of the view axis, toward -y.
	if left := c.Ray(-1); left.Y >= 0 {
		t.Errorf("leftmost ray %v should point toward -y", left)
	}

	c.Rotate(math.Pi / 2)
	if math.Abs(c.Theta()-math.Pi/2) > 1e-12 {
		t.Errorf("Theta() after rotate = %v", c.Theta())
	}
	if math.Abs(c.FOV()-fov) > 1e-12 {
		t.Errorf("rotation changed FOV to %v", c.FOV())
	}
}
