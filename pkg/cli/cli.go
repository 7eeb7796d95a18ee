package cli

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/jesseduffield/lazyls/pkg/config"
	"github.com/jesseduffield/lazyls/pkg/i18n"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// SectionAnnotation is the flag annotation naming which part of the flag
// reference a flag is listed under
const SectionAnnotation = "lazyls_section"

const (
	SectionLayout    = "layout"
	SectionFiltering = "filtering"
	SectionColumns   = "columns"
	SectionGlobal    = "global"
)

// Sections is the order the flag reference lists its sections in
var Sections = []string{SectionLayout, SectionFiltering, SectionColumns, SectionGlobal}

// Flags holds the raw values of the command line flags
type Flags struct {
	All           int
	Long          bool
	Bytes         bool
	OnlyDirs      bool
	OnlyFiles     bool
	Group         bool
	Inode         bool
	Links         bool
	Oneline       bool
	NoPermissions bool
	TimeStyle     string
	TimeField     string
	Extended      bool
	Across        bool
	Direction     string
	Ignore        []string
	Color         string
	Config        bool
	Debug         bool
}

// RunFunc is called once the command line has been parsed
type RunFunc func(cmd *cobra.Command, flags *Flags, paths []string) error

// NewRootCommand returns the lazyls command. Help text comes from tr.
func NewRootCommand(tr *i18n.TranslationSet, version string, run RunFunc) *cobra.Command {
	flags := &Flags{}

	cmd := &cobra.Command{
		Use:           "lazyls [paths...]",
		Short:         tr.AppDescription,
		Long:          fmt.Sprintf("%s\n\npaths: %s\n\nhttps://github.com/jesseduffield/lazyls", tr.AppDescription, tr.PathsArgument),
		Args:          cobra.ArbitraryArgs,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, flags, args)
		},
	}

	f := cmd.Flags()
	f.SortFlags = false

	f.BoolVarP(&flags.Long, "long", "l", false, tr.LongFlag)
	f.BoolVarP(&flags.Oneline, "oneline", "1", false, tr.OnelineFlag)
	f.BoolVarP(&flags.Across, "across", "x", false, tr.AcrossFlag)
	f.StringVar(&flags.Direction, "direction", config.DirectionDown.String(), tr.DirectionFlag)
	annotate(f, SectionLayout, "long", "oneline", "across", "direction")

	f.CountVarP(&flags.All, "all", "a", tr.AllFlag)
	f.BoolVarP(&flags.OnlyDirs, "only-dirs", "D", false, tr.OnlyDirsFlag)
	f.BoolVarP(&flags.OnlyFiles, "only-files", "f", false, tr.OnlyFilesFlag)
	f.StringArrayVarP(&flags.Ignore, "ignore", "I", []string{}, tr.IgnoreFlag)
	annotate(f, SectionFiltering, "all", "only-dirs", "only-files", "ignore")

	f.BoolVarP(&flags.Bytes, "bytes", "B", false, tr.BytesFlag)
	f.BoolVarP(&flags.Group, "group", "g", false, tr.GroupFlag)
	f.BoolVarP(&flags.Inode, "inode", "i", false, tr.InodeFlag)
	f.BoolVarP(&flags.Links, "links", "H", false, tr.LinksFlag)
	f.BoolVar(&flags.NoPermissions, "no-permissions", false, tr.NoPermissionsFlag)
	f.StringVar(&flags.TimeStyle, "time-style", config.TimeStyleDefault.String(), tr.TimeStyleFlag)
	f.StringVarP(&flags.TimeField, "time-field", "t", config.TimeFieldModified.String(), tr.TimeFieldFlag)
	f.BoolVarP(&flags.Extended, "extended", "@", false, tr.ExtendedFlag)
	annotate(f, SectionColumns, "bytes", "group", "inode", "links", "no-permissions", "time-style", "time-field", "extended")

	f.StringVar(&flags.Color, "color", "auto", tr.ColorFlag)
	f.BoolVarP(&flags.Config, "config", "c", false, tr.ConfigFlag)
	f.BoolVarP(&flags.Debug, "debug", "d", false, tr.DebugFlag)
	annotate(f, SectionGlobal, "color", "config", "debug")

	return cmd
}

func annotate(f *pflag.FlagSet, section string, names ...string) {
	for _, name := range names {
		_ = f.SetAnnotation(name, SectionAnnotation, []string{section})
	}
}

// NewListingConfig starts from the user's listing defaults and layers the
// command line over them. Flags that take a value only override the defaults
// when they were given explicitly.
func NewListingConfig(cmd *cobra.Command, flags *Flags, paths []string, defaults config.ListingDefaults) (*config.ListingConfig, error) {
	listingConfig, err := config.NewListingConfig(defaults)
	if err != nil {
		return nil, err
	}

	if len(paths) > 0 {
		listingConfig.Paths = paths
	}
	listingConfig.ShowAll = min(flags.All, config.ShowAllDotEntries)
	listingConfig.OnlyDirs = flags.OnlyDirs
	listingConfig.OnlyFiles = flags.OnlyFiles
	listingConfig.Group = flags.Group
	listingConfig.Inode = flags.Inode
	listingConfig.Links = flags.Links
	listingConfig.NoPermissions = flags.NoPermissions
	listingConfig.Bytes = flags.Bytes
	listingConfig.Oneline = flags.Oneline
	listingConfig.Long = flags.Long
	listingConfig.Extended = flags.Extended
	listingConfig.Ignore = append(listingConfig.Ignore, flags.Ignore...)

	changed := cmd.Flags().Changed
	if changed("time-style") {
		if listingConfig.TimeStyle, err = config.ParseTimeStyle(flags.TimeStyle); err != nil {
			return nil, err
		}
	}
	if changed("time-field") {
		if listingConfig.TimeField, err = config.ParseTimeField(flags.TimeField); err != nil {
			return nil, err
		}
	}
	if changed("direction") {
		if listingConfig.Direction, err = config.ParseDirection(flags.Direction); err != nil {
			return nil, err
		}
	}
	if flags.Across {
		listingConfig.Direction = config.DirectionAcross
	}

	if err := listingConfig.Validate(); err != nil {
		return nil, err
	}
	return listingConfig, nil
}

// ApplyColor switches styling on or off. 'auto' leaves the decision to the
// terminal detection done by the color package.
func ApplyColor(mode string) error {
	switch strings.ToLower(strings.TrimSpace(mode)) {
	case "auto":
	case "always":
		color.NoColor = false
	case "never":
		color.NoColor = true
	default:
		return fmt.Errorf("Unrecognized color mode '%s'. Permitted values: auto, always, never", mode)
	}
	return nil
}
