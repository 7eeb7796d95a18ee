package commands

import (
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/jesseduffield/lazyls/pkg/config"
	"github.com/sirupsen/logrus"
)

// OSCommand holds all the calls we make against the filesystem
type OSCommand struct {
	Log       *logrus.Entry
	Config    *config.AppConfig
	lstat     func(string) (*Metadata, error)
	stat      func(string) (fs.FileInfo, error)
	readlink  func(string) (string, error)
	listxattr func(string) ([]string, error)
	readDir   func(string) ([]fs.DirEntry, error)
}

// NewOSCommand os command runner
func NewOSCommand(log *logrus.Entry, config *config.AppConfig) *OSCommand {
	return &OSCommand{
		Log:       log,
		Config:    config,
		lstat:     lstatMetadata,
		stat:      os.Stat,
		readlink:  os.Readlink,
		listxattr: listAttributes,
		readDir:   os.ReadDir,
	}
}

// SetLstat sets the function used to fetch metadata.
// To be used for testing only
func (c *OSCommand) SetLstat(lstat func(string) (*Metadata, error)) {
	c.lstat = lstat
}

// SetListxattr sets the function used to list extended attributes.
// To be used for testing only
func (c *OSCommand) SetListxattr(listxattr func(string) ([]string, error)) {
	c.listxattr = listxattr
}

// Metadata returns a snapshot of the entry at path. A symlink is described
// itself, not its target.
func (c *OSCommand) Metadata(path string) (*Metadata, error) {
	metadata, err := c.lstat(path)
	if err == nil {
		return metadata, nil
	}

	if os.IsNotExist(err) {
		return nil, NewComplexError(NotFound, path, fmt.Sprintf("%s: %v", path, err))
	}

	return nil, NewComplexError(MetadataUnavailable, path, fmt.Sprintf("%s: %v", path, err))
}

// Exists tells us whether the path resolves to something, following symlinks
func (c *OSCommand) Exists(path string) bool {
	_, err := c.stat(path)
	return err == nil
}

// IsDir tells us whether the path resolves to a directory, following symlinks
func (c *OSCommand) IsDir(path string) bool {
	info, err := c.stat(path)
	return err == nil && info.IsDir()
}

// IsFile tells us whether the path resolves to a regular file, following symlinks
func (c *OSCommand) IsFile(path string) bool {
	info, err := c.stat(path)
	return err == nil && info.Mode().IsRegular()
}

// ReadLink returns the target of a symlink exactly as it was written
func (c *OSCommand) ReadLink(path string) (string, error) {
	return c.readlink(path)
}

// TargetExists tells us whether a symlink points at something that exists.
// A relative target is resolved against the directory holding the link.
func (c *OSCommand) TargetExists(link string) bool {
	return c.Exists(link)
}

// ListAttributes returns the names of the path's extended attributes in the
// order the filesystem reports them. Any failure, including the filesystem
// not supporting attributes, yields an empty list.
func (c *OSCommand) ListAttributes(path string) []string {
	names, err := c.listxattr(path)
	if err != nil {
		c.Log.Debugf("listing attributes of %s: %v", path, err)
		return []string{}
	}
	if names == nil {
		return []string{}
	}
	return names
}

// ReadDir returns the entries of a directory, sorted by name
func (c *OSCommand) ReadDir(path string) ([]fs.DirEntry, error) {
	entries, err := c.readDir(path)
	if err != nil {
		return nil, NewComplexError(DirectoryUnreadable, path, fmt.Sprintf("%s: %v", path, err))
	}
	return entries, nil
}

// splitAttributeNames splits a NUL-separated list of attribute names as
// returned by listxattr(2)
func splitAttributeNames(buf []byte) []string {
	names := []string{}
	for _, name := range strings.Split(string(buf), "\x00") {
		if name != "" {
			names = append(names, name)
		}
	}
	return names
}
