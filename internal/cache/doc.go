// Package cache provides a small generic LRU cache.
//
//	images := cache.New[string, *pixbuf.Image](32)
//	img, err := images.GetOrLoad(path, func() (*pixbuf.Image, error) {
//		return pixbuf.LoadImage(path)
//	})
//
// Cache is safe for concurrent use and must not be copied after creation.
package cache
