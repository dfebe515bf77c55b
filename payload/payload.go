package payload

import (
	"embed"
	"io/fs"

	"github.com/hsmod/hsmod-installer/resource"
)

// Everything under files/ is mirrored into the game directory on install.
//
//go:embed all:files
var embeddedFiles embed.FS

// FS returns the bundled files rooted at files/.
func FS() fs.FS {
	sub, err := fs.Sub(embeddedFiles, "files")
	if err != nil {
		panic(err)
	}
	return sub
}

// Tree loads the bundled files as a resource tree.
func Tree() (*resource.Tree, error) {
	return resource.Load(FS())
}
