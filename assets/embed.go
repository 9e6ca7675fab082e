// Package assets embeds the browser page served at "/".
//
// The page only provides the elements the wasm client binds to by id:
// session-id, wordle, status, eerie-text, cheese-container and the five
// .letter inputs. The client itself is loaded from /app/.
package assets

import (
	"embed"
	"io/fs"
)

//go:embed web/index.html
var FS embed.FS

// IndexHTML returns the browser page.
func IndexHTML() ([]byte, error) {
	return fs.ReadFile(FS, "web/index.html")
}
