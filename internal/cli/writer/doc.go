// Package writer persists generated files under an output directory. Content
// is written byte for byte; no trailing newline is added.
package writer
