package stimuli

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
)

// ErrPictureNotFound is returned when a picture reference has no artwork.
var ErrPictureNotFound = errors.New("picture not found")

// PictureSource resolves a picture reference to renderable text.
type PictureSource interface {
	Picture(ref string) (string, error)
}

// EmbeddedPictures serves the ASCII artwork compiled into the binary.
type EmbeddedPictures struct{}

var _ PictureSource = EmbeddedPictures{}

// Picture returns the artwork for ref.
func (EmbeddedPictures) Picture(ref string) (string, error) {
	if ref == "" || strings.ContainsAny(ref, "/\\.") {
		return "", fmt.Errorf("%w: %q", ErrPictureNotFound, ref)
	}
	raw, err := dataFS.ReadFile("data/pictures/" + ref + ".txt")
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", fmt.Errorf("%w: %q", ErrPictureNotFound, ref)
		}
		return "", fmt.Errorf("read picture %q: %w", ref, err)
	}
	return strings.TrimRight(string(raw), "\n"), nil
}
