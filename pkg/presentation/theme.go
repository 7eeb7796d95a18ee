package presentation

import (
	"github.com/fatih/color"
	"github.com/jesseduffield/lazyls/pkg/config"
	"github.com/jesseduffield/lazyls/pkg/utils"
)

// Theme holds the color attributes of each part of an entry
type Theme struct {
	Directory     []color.Attribute
	Symlink       []color.Attribute
	BrokenSymlink []color.Attribute
	BlockDevice   []color.Attribute
	CharDevice    []color.Attribute
	Fifo          []color.Attribute
	Socket        []color.Attribute
	Unknown       []color.Attribute
	Read          []color.Attribute
	Write         []color.Attribute
	Execute       []color.Attribute
	Size          []color.Attribute
	Date          []color.Attribute
	Time          []color.Attribute
	User          []color.Attribute
	Group         []color.Attribute
	Inode         []color.Attribute
}

// NewTheme resolves the color names of the user's theme config
func NewTheme(themeConfig config.ThemeConfig) Theme {
	return Theme{
		Directory:     utils.GetColorAttributes(themeConfig.Directory),
		Symlink:       utils.GetColorAttributes(themeConfig.Symlink),
		BrokenSymlink: utils.GetColorAttributes(themeConfig.BrokenSymlink),
		BlockDevice:   utils.GetColorAttributes(themeConfig.BlockDevice),
		CharDevice:    utils.GetColorAttributes(themeConfig.CharDevice),
		Fifo:          utils.GetColorAttributes(themeConfig.Fifo),
		Socket:        utils.GetColorAttributes(themeConfig.Socket),
		Unknown:       utils.GetColorAttributes(themeConfig.Unknown),
		Read:          utils.GetColorAttributes(themeConfig.Read),
		Write:         utils.GetColorAttributes(themeConfig.Write),
		Execute:       utils.GetColorAttributes(themeConfig.Execute),
		Size:          utils.GetColorAttributes(themeConfig.Size),
		Date:          utils.GetColorAttributes(themeConfig.Date),
		Time:          utils.GetColorAttributes(themeConfig.Time),
		User:          utils.GetColorAttributes(themeConfig.User),
		Group:         utils.GetColorAttributes(themeConfig.Group),
		Inode:         utils.GetColorAttributes(themeConfig.Inode),
	}
}

// DefaultTheme is the theme of the default user config
func DefaultTheme() Theme {
	return NewTheme(config.GetDefaultConfig().Theme)
}
