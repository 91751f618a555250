// Package template defines the text template seam used by scaffold templates.
// Implementations live in sub-packages; gotemplate provides the pongo2 backed
// engine used by the built-in templates.
package template
