// Package templates provides the built-in scaffold templates. Each template's
// text lives as a pongo2 file under files/, mirroring the template tree
// layout; the Go side decides whether a file applies to the answers and
// prepares its data (for the settings component, by compiling the settings
// fields through pkg/form).
package templates
