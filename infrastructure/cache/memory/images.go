// ABOUTME: Decoded thumbnail store backed by patrickmn/go-cache
// ABOUTME: Entries never expire and live for the lifetime of the process

package memory

import (
	"image"

	gocache "github.com/patrickmn/go-cache"
)

// ImageStore implements the ImageStore interface
type ImageStore struct {
	items *gocache.Cache
}

// NewImageStore creates an empty image store
func NewImageStore() *ImageStore {
	return &ImageStore{
		items: gocache.New(gocache.NoExpiration, 0),
	}
}

// Get returns the image stored for url
func (s *ImageStore) Get(url string) (image.Image, bool) {
	value, ok := s.items.Get(url)
	if !ok {
		return nil, false
	}
	img, ok := value.(image.Image)
	return img, ok
}

// Set stores img under url, replacing any previous entry
func (s *ImageStore) Set(url string, img image.Image) {
	if img == nil {
		return
	}
	s.items.Set(url, img, gocache.NoExpiration)
}

// Len returns the number of stored images
func (s *ImageStore) Len() int {
	return s.items.ItemCount()
}
