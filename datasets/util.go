package datasets

import (
	"path/filepath"
	"strings"
)

// imageExtensions is the fixed allow-set of recognized image file suffixes.
var imageExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".bmp":  true,
	".gif":  true,
}

// isImageFile reports whether name carries a recognized image extension.
// Matching is case-insensitive on the extension substring only (the suffix
// after the last '.'), so files like IMG.JPG are classified correctly.
func isImageFile(name string) bool {
	return imageExtensions[strings.ToLower(filepath.Ext(name))]
}
