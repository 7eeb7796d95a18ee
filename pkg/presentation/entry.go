package presentation

import (
	"path/filepath"
	"strconv"
	"time"

	"github.com/jesseduffield/lazyls/pkg/commands"
	"github.com/jesseduffield/lazyls/pkg/config"
	"github.com/jesseduffield/lazyls/pkg/utils"
	"github.com/sirupsen/logrus"
)

// Entry is one filesystem object to be listed. Name is what gets shown and
// Path is where it lives; they differ for the children of a listed directory.
type Entry struct {
	Name string
	Path string
}

// NewEntry returns an entry for a path given on the command line. Only its
// last component is shown, except for "." and ".." themselves.
func NewEntry(path string) Entry {
	if path == "." || path == ".." {
		return Entry{Name: path, Path: path}
	}
	return Entry{Name: lastComponent(path), Path: path}
}

// lastComponent is the final element of path. The root has none.
func lastComponent(path string) string {
	name := filepath.Base(path)
	if name == string(filepath.Separator) {
		return ""
	}
	return name
}

// IsDotEntry tells us whether the entry is the "." or ".." pseudo-entry
func (e Entry) IsDotEntry() bool {
	return e.Name == "." || e.Name == ".."
}

// MetadataSource is where the renderer gets everything it knows about an entry
type MetadataSource interface {
	Metadata(path string) (*commands.Metadata, error)
	ReadLink(path string) (string, error)
	TargetExists(link string) bool
	ListAttributes(path string) []string
}

// IdentityResolver turns user and group IDs into display names
type IdentityResolver interface {
	ResolveUser(uid uint32) string
	ResolveGroup(gid uint32) string
}

// Renderer turns entries and their metadata into styled cells
type Renderer struct {
	Log      *logrus.Entry
	Config   *config.ListingConfig
	Theme    Theme
	Source   MetadataSource
	Identity IdentityResolver
	now      func() time.Time
	location *time.Location
}

// NewRenderer returns a renderer that formats times against the wall clock in local time
func NewRenderer(log *logrus.Entry, listingConfig *config.ListingConfig, theme Theme, source MetadataSource, identity IdentityResolver) *Renderer {
	return &Renderer{
		Log:      log,
		Config:   listingConfig,
		Theme:    theme,
		Source:   source,
		Identity: identity,
		now:      time.Now,
		location: time.Local,
	}
}

// SetClock sets the current time and the zone times are shown in.
// To be used for testing only
func (r *Renderer) SetClock(now func() time.Time, location *time.Location) {
	r.now = now
	r.location = location
}

// TypeGlyph is the one-character classifier leading the mode column
func (r *Renderer) TypeGlyph(fileType commands.FileType) utils.Cell {
	switch fileType {
	case commands.FileTypeSymlink:
		return utils.NewCell("l", r.Theme.Symlink...)
	case commands.FileTypeDirectory:
		return utils.NewCell("d", r.Theme.Directory...)
	case commands.FileTypeRegular:
		return utils.NewCell("-")
	case commands.FileTypeBlockDevice:
		return utils.NewCell("b", r.Theme.BlockDevice...)
	case commands.FileTypeCharDevice:
		return utils.NewCell("c", r.Theme.CharDevice...)
	case commands.FileTypeFifo:
		return utils.NewCell("p", r.Theme.Fifo...)
	case commands.FileTypeSocket:
		return utils.NewCell("s", r.Theme.Socket...)
	default:
		return utils.NewCell("?", r.Theme.Unknown...)
	}
}

// Permissions decodes the nine rwx bits, owner first
func (r *Renderer) Permissions(bits uint32) utils.Cell {
	cell := utils.Cell{}
	for shift := 8; shift >= 0; shift-- {
		if bits&(1<<uint(shift)) == 0 {
			cell = cell.Append("-")
			continue
		}
		switch shift % 3 {
		case 2:
			cell = cell.Append("r", r.Theme.Read...)
		case 1:
			cell = cell.Append("w", r.Theme.Write...)
		default:
			cell = cell.Append("x", r.Theme.Execute...)
		}
	}
	return cell
}

// Mode is the type glyph and permission bits, with an "@" when the entry
// has extended attributes
func (r *Renderer) Mode(metadata *commands.Metadata, hasAttributes bool) utils.Cell {
	cell := r.TypeGlyph(metadata.Type).Concat(r.Permissions(metadata.Permissions))
	if hasAttributes {
		cell = cell.Append("@")
	}
	return cell
}

// FileName decorates an entry's name by its type. Directories get a "/".
// Symlinks get an "@" in short form and "name -> target" in long form, with
// the arrow and target in the broken-link color when the target is missing.
func (r *Renderer) FileName(entry Entry, long bool) utils.Cell {
	if entry.IsDotEntry() {
		return utils.NewCell(entry.Name, r.Theme.Directory...).Append("/")
	}

	metadata, err := r.Source.Metadata(entry.Path)
	if err != nil {
		r.Log.Debugf("decorating %s without metadata: %v", entry.Path, err)
		return utils.NewCell(entry.Name)
	}

	switch metadata.Type {
	case commands.FileTypeSymlink:
		name := utils.NewCell(entry.Name, r.Theme.Symlink...)
		if !long {
			return name.Append("@")
		}
		target, err := r.Source.ReadLink(entry.Path)
		if err != nil {
			r.Log.Debugf("reading link %s: %v", entry.Path, err)
			return name
		}
		arrowColor := r.Theme.Symlink
		if !r.Source.TargetExists(entry.Path) {
			arrowColor = r.Theme.BrokenSymlink
		}
		return name.Append(" -> ", arrowColor...).Append(target, arrowColor...)
	case commands.FileTypeDirectory:
		return utils.NewCell(entry.Name, r.Theme.Directory...).Append("/")
	default:
		return utils.NewCell(entry.Name)
	}
}

// Size is the entry's size, or "-" for anything that isn't a regular file
func (r *Renderer) Size(metadata *commands.Metadata) utils.Cell {
	if !metadata.IsRegular() {
		return utils.NewCell("-")
	}
	return utils.NewCell(FormatSize(metadata.Size, r.Config.Bytes), r.Theme.Size...)
}

// Inode is the entry's inode number
func (r *Renderer) Inode(metadata *commands.Metadata) utils.Cell {
	return utils.NewCell(strconv.FormatUint(metadata.Inode, 10), r.Theme.Inode...)
}

// Links is the entry's hard link count
func (r *Renderer) Links(metadata *commands.Metadata) utils.Cell {
	return utils.NewCell(strconv.FormatUint(metadata.Nlink, 10))
}

// User is the name of the entry's owner
func (r *Renderer) User(metadata *commands.Metadata) utils.Cell {
	return utils.NewCell(r.Identity.ResolveUser(metadata.Uid), r.Theme.User...)
}

// Group is the name of the entry's group
func (r *Renderer) Group(metadata *commands.Metadata) utils.Cell {
	return utils.NewCell(r.Identity.ResolveGroup(metadata.Gid), r.Theme.Group...)
}

// Timestamp picks the configured time field out of the metadata
func (r *Renderer) Timestamp(metadata *commands.Metadata) time.Time {
	switch r.Config.TimeField {
	case config.TimeFieldAccessed:
		return metadata.Accessed
	case config.TimeFieldChanged:
		return metadata.Changed
	case config.TimeFieldCreated:
		return metadata.Created
	default:
		return metadata.Modified
	}
}

// Time formats the configured time field in the configured style
func (r *Renderer) Time(metadata *commands.Metadata) utils.Cell {
	return r.FormatTime(r.Timestamp(metadata))
}
