// Package adaptergen scaffolds adapter project files from a typed answer set.
//
// The pipeline is: answers (pkg/answers) -> template dispatch (pkg/scaffold)
// over the built-in templates (pkg/templates) -> generated files. The
// settings page template compiles the adapterSettings list into a control
// tree (pkg/form) and renders it as JSX (pkg/renderers/react).
//
//	a, _ := adaptergen.ParseAnswers(data)
//	files, err := adaptergen.Generate(a)
//
// Writing files is left to the caller; cmd/adaptergen does it for the CLI.
package adaptergen
