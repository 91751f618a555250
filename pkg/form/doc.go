// Package form compiles adapter settings fields into an abstract tree of UI
// controls. Compilation decides what each field becomes (control kind, title,
// input type, options); renderers such as pkg/renderers/react decide how the
// tree is spelled in a target syntax.
package form
