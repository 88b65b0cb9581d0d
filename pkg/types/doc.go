// Package types defines the Record entity, the Store interface shared by the
// array and linked backends, configuration, and the standard error values
// for the backpack inventory engine.
package types
