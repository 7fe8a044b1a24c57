// ABOUTME: Image store contract for decoded thumbnails
// ABOUTME: Entries are keyed by URL string and never expire for the life of the process

package interfaces

import "image"

// ImageStore holds decoded images keyed by URL.
type ImageStore interface {
	Get(url string) (image.Image, bool)
	Set(url string, img image.Image)
	Len() int
}
