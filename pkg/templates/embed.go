package templates

import (
	"embed"
	"io/fs"
)

//go:embed all:files
var embeddedFiles embed.FS

// FilesFS exposes the embedded template files rooted at the template tree.
func FilesFS() fs.FS {
	sub, err := fs.Sub(embeddedFiles, "files")
	if err != nil {
		return embeddedFiles
	}
	return sub
}
