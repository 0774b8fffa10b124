package entry

import (
	"fmt"
	"strings"
)

// IndexFile is the entry point file name
const IndexFile = "index.js"

// RenderContext holds the values substituted into an entry point template
type RenderContext struct {
	// Name is the identifier used by the esm format
	Name string
	// Main is the re-exported module, always starting with "./"
	Main string
}

// NewRenderContext derives the render values from a package directory name
// and its manifest main entry
func NewRenderContext(dirName, main string) RenderContext {
	return RenderContext{
		Name: Camelize(dirName),
		Main: RelativeMain(main),
	}
}

// RelativeMain prefixes main with "./" unless it already starts with it
func RelativeMain(main string) string {
	if strings.HasPrefix(main, "./") {
		return main
	}
	return "./" + main
}

// Render returns the entry point source for the given format
func Render(format Format, data RenderContext) (string, error) {
	switch format {
	case FormatCJS:
		return fmt.Sprintf("module.exports = require('%s')", data.Main), nil
	case FormatESM:
		return fmt.Sprintf("import %s from '%s'\n\nexport default %s", data.Name, data.Main, data.Name), nil
	}
	_, err := ParseFormat(string(format))
	return "", err
}
