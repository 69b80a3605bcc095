// Package loader provides the plugin-like feature loading system.
//
// Each feature (users, posts, integrity) implements the Feature interface and
// is registered with a Manager, which loads every enabled feature onto the
// Fiber router when the server starts.
//
// # Feature Interface
//
//	type Feature interface {
//	    Name() string
//	    IsEnabled() bool
//	    Load(app fiber.Router) error
//	}
package loader
