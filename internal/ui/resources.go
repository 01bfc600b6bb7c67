package ui

import (
	"fmt"

	"fyne.io/fyne/v2"
)

// LoadFontResource loads a TTF font from path. An empty path means the
// default theme font and returns nil.
func LoadFontResource(path string) (fyne.Resource, error) {
	if path == "" {
		return nil, nil
	}
	res, err := fyne.LoadResourceFromPath(path)
	if err != nil {
		return nil, fmt.Errorf("loading font %s: %w", path, err)
	}
	return res, nil
}
