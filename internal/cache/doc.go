// Package cache provides a bounded, thread-safe LRU map.
//
// The color parser uses it to memoize strings it has already parsed:
//
//	c := cache.New[string, Argb](256)
//	c.Set("darkorange", orange)
//	v, ok := c.Get("darkorange")
//
// # Thread Safety
//
// Cache is safe for concurrent use. It must not be copied after creation
// (it contains a mutex).
package cache
