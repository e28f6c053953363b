package assets

import (
	"embed"

	"github.com/leovegas/reportgen/data"
)

var efs *embed.FS

// GetData returns the embedded templates, defaulting to the ones compiled
// into the data package when none were set.
func GetData() *embed.FS {
	if efs == nil {
		return &data.Templates
	}
	return efs
}

func UpdateData(d *embed.FS) {
	efs = d
}

// ReadTemplate reads a template file from the embedded FS.
func ReadTemplate(path string) (string, error) {
	b, err := GetData().ReadFile(path)
	if err != nil {
		return "", err
	}
	return string(b), nil
}
