package entry

import (
	"fmt"
	"strings"

	"github.com/quantmind-br/entrify/internal/domain"
)

// Format selects the module syntax of the generated entry point
type Format string

const (
	// FormatCJS renders a CommonJS require re-export
	FormatCJS Format = "cjs"
	// FormatESM renders an ES module import/export pair
	FormatESM Format = "esm"
)

// Formats lists the supported formats
var Formats = []Format{FormatCJS, FormatESM}

// ParseFormat validates a configured format value
func ParseFormat(s string) (Format, error) {
	switch f := Format(s); f {
	case FormatCJS, FormatESM:
		return f, nil
	}
	return "", domain.NewValidationError("format",
		fmt.Sprintf("%q is not one of %s", s, formatList()), domain.ErrUnsupportedFormat)
}

func formatList() string {
	names := make([]string, len(Formats))
	for i, f := range Formats {
		names[i] = string(f)
	}
	return strings.Join(names, ", ")
}
