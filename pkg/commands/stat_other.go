//go:build !linux && !darwin

package commands

import (
	"os"
)

func lstatMetadata(path string) (*Metadata, error) {
	info, err := os.Lstat(path)
	if err != nil {
		return nil, err
	}
	return MetadataFromFileInfo(info), nil
}

func listAttributes(path string) ([]string, error) {
	return nil, nil
}
