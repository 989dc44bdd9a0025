package export

import (
	"fmt"
	"image"
	"os"
	"path/filepath"

	"github.com/fogleman/gg"
	"github.com/pkg/errors"
)

// PNGSequence writes every frame to its own numbered PNG file in a directory.
type PNGSequence struct {
	dir string
	n   int
}

// NewPNGSequence creates dir if needed.
func NewPNGSequence(dir string) (*PNGSequence, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, errors.Wrapf(err, "creating frame directory %s", dir)
	}
	return &PNGSequence{dir: dir}, nil
}

// AddFrame writes img as the next frame_NNNN.png.
func (s *PNGSequence) AddFrame(img image.Image) error {
	s.n++
	path := s.Path(s.n)
	if err := gg.SavePNG(path, img); err != nil {
		return errors.Wrapf(err, "writing %s", path)
	}
	return nil
}

// Len returns the number of frames written.
func (s *PNGSequence) Len() int { return s.n }

// Path returns the file name of frame i, counting from 1.
func (s *PNGSequence) Path(i int) string {
	return filepath.Join(s.dir, fmt.Sprintf("frame_%04d.png", i))
}
