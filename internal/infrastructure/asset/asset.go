package asset

import (
	"image"
	"image/draw"
	"io"
	"io/fs"
	"log/slog"

	// Registered decoders
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	"github.com/rotisserie/eris"

	"github.com/younwookim/tileforge/internal/raster"
)

// Loader decodes images from a filesystem
type Loader struct {
	fsys fs.FS
	log  *slog.Logger
}

// NewLoader creates a loader over fsys; a nil logger selects slog.Default
func NewLoader(fsys fs.FS, log *slog.Logger) *Loader {
	if log == nil {
		log = slog.Default()
	}
	return &Loader{fsys: fsys, log: log}
}

// LoadImage decodes path. Failure is reported through ok and logged;
// callers fall back to flat colours.
func (l *Loader) LoadImage(path string) (*raster.Image, bool) {
	if path == "" {
		return nil, false
	}
	img, err := l.load(path)
	if err != nil {
		l.log.Warn("image unavailable", "path", path, "error", err)
		return nil, false
	}
	l.log.Debug("image loaded", "path", path, "w", img.W, "h", img.H)
	return img, true
}

func (l *Loader) load(path string) (*raster.Image, error) {
	f, err := l.fsys.Open(path)
	if err != nil {
		return nil, eris.Wrapf(err, "open %s", path)
	}
	defer func() { _ = f.Close() }()

	img, err := Decode(f)
	if err != nil {
		return nil, eris.Wrapf(err, "decode %s", path)
	}
	return img, nil
}

// LoadImage decodes path from fsys using the default logger
func LoadImage(fsys fs.FS, path string) (*raster.Image, bool) {
	return NewLoader(fsys, nil).LoadImage(path)
}

// Decode reads any registered image format into a packed raster image
func Decode(r io.Reader) (*raster.Image, error) {
	src, _, err := image.Decode(r)
	if err != nil {
		return nil, eris.Wrap(err, "failed to decode image")
	}
	img := FromImage(src)
	if img.Empty() {
		return nil, eris.New("image has no pixels")
	}
	return img, nil
}

// FromImage converts a standard library image to straight-alpha packed pixels
func FromImage(src image.Image) *raster.Image {
	b := src.Bounds()
	nrgba, ok := src.(*image.NRGBA)
	if !ok || b.Min != (image.Point{}) {
		nrgba = image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
		draw.Draw(nrgba, nrgba.Bounds(), src, b.Min, draw.Src)
	}

	out := raster.NewImage(b.Dx(), b.Dy())
	for y := 0; y < out.H; y++ {
		row := nrgba.Pix[y*nrgba.Stride:]
		for x := 0; x < out.W; x++ {
			p := row[x*4 : x*4+4]
			out.Pix[y*out.W+x] = raster.RGBA(p[0], p[1], p[2], p[3])
		}
	}
	return out
}
