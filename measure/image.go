package measure

import (
	"fmt"
	"image"
	_ "image/gif"  // Register GIF decoder
	_ "image/jpeg" // Register JPEG decoder
	_ "image/png"  // Register PNG decoder
	"os"
	"sync"

	xdraw "golang.org/x/image/draw"
)

// Image size limits to prevent memory exhaustion.
const (
	MaxImageWidth  = 4096             // Maximum width in pixels
	MaxImageHeight = 4096             // Maximum height in pixels
	MaxImageBytes  = 16 * 1024 * 1024 // 16MB uncompressed (RGBA at 4 bytes/pixel)
)

// LoadImage loads an image from a file path. Supports PNG, JPEG, and
// GIF (first frame only for GIF). Returns an error if the file cannot
// be read, the format is not supported, or the image exceeds size
// limits.
func LoadImage(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open image file: %w", err)
	}
	defer f.Close()

	// image.Decode auto-detects format from registered decoders
	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("failed to decode image: %w", err)
	}

	bounds := img.Bounds()
	width := bounds.Dx()
	height := bounds.Dy()

	if width > MaxImageWidth || height > MaxImageHeight {
		return nil, fmt.Errorf("image too large: %dx%d (max %dx%d)",
			width, height, MaxImageWidth, MaxImageHeight)
	}

	// Check uncompressed size (assuming RGBA at 4 bytes per pixel)
	if width*height*4 > MaxImageBytes {
		return nil, fmt.Errorf("image uncompressed size exceeds limit: %d bytes (max %d bytes)",
			width*height*4, MaxImageBytes)
	}

	return img, nil
}

// A CachedImage is one decoded image held by an ImageCache, already
// downscaled to the cache's display width when one is set.
type CachedImage struct {
	Original image.Image
	Width    int
	Height   int
}

// An ImageCache memoizes decoded images by path so that repeated
// width measurement of the same table does not hit the disk on every
// pass. Safe for concurrent use.
type ImageCache struct {
	mu       sync.Mutex
	capacity int
	maxWidth int
	entries  map[string]*CachedImage
	order    []string // insertion order, oldest first
}

// NewImageCache returns a cache holding up to capacity images. A
// capacity of zero or less means unbounded.
func NewImageCache(capacity int) *ImageCache {
	return &ImageCache{
		capacity: capacity,
		entries:  make(map[string]*CachedImage),
	}
}

// SetDisplayWidth caps cached images at px: anything wider is
// downscaled at load time, preserving aspect ratio. Entries scaled
// for a previous width are dropped. Zero disables scaling.
func (c *ImageCache) SetDisplayWidth(px int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if px == c.maxWidth {
		return
	}
	c.maxWidth = px
	c.entries = make(map[string]*CachedImage)
	c.order = c.order[:0]
}

// Load returns the image at path, decoding and caching it on first
// use. Failed loads are not cached.
func (c *ImageCache) Load(path string) (*CachedImage, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if ci, ok := c.entries[path]; ok {
		return ci, nil
	}
	img, err := LoadImage(path)
	if err != nil {
		return nil, err
	}
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	if c.maxWidth > 0 && w > c.maxWidth {
		w, h = scaledDims(b.Dx(), b.Dy(), c.maxWidth)
		scaled := image.NewRGBA(image.Rect(0, 0, w, h))
		xdraw.BiLinear.Scale(scaled, scaled.Bounds(), img, img.Bounds(), xdraw.Src, nil)
		img = scaled
	}
	ci := &CachedImage{Original: img, Width: w, Height: h}
	c.insert(path, ci)
	return ci, nil
}

// Len returns the number of cached images.
func (c *ImageCache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

func (c *ImageCache) insert(path string, ci *CachedImage) {
	if c.capacity > 0 && len(c.order) >= c.capacity {
		oldest := c.order[0]
		c.order = c.order[1:]
		delete(c.entries, oldest)
	}
	c.entries[path] = ci
	c.order = append(c.order, path)
}

// scaledDims shrinks w x h to fit maxWidth, preserving aspect ratio.
func scaledDims(w, h, maxWidth int) (int, int) {
	nh := h * maxWidth / w
	if nh < 1 {
		nh = 1
	}
	return maxWidth, nh
}
