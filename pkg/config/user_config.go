package config

// UserConfig holds all of the user-configurable options. The fields here are all in PascalCase but in your actual config.yml they'll be in camelCase. You can view the default config with `lazyls --config`. Be careful: if for example you set a `theme:` yaml key but then give it no child values, every element will lose its color
type UserConfig struct {
	// Theme determines what colors and color attributes each part of an entry is drawn with
	Theme ThemeConfig `yaml:"theme,omitempty"`

	// Listing holds the defaults for flags that take a value. Anything passed on the command line wins
	Listing ListingDefaults `yaml:"listing,omitempty"`

	// Language is the language of messages and help text. 'auto' picks it up from your environment
	Language string `yaml:"language,omitempty"`
}

// ThemeConfig is for setting the colors of the different parts of an entry.
// Each value is a list of color names, e.g. [blue, bold]
type ThemeConfig struct {
	Directory     []string `yaml:"directory,omitempty"`
	Symlink       []string `yaml:"symlink,omitempty"`
	BrokenSymlink []string `yaml:"brokenSymlink,omitempty"`
	BlockDevice   []string `yaml:"blockDevice,omitempty"`
	CharDevice    []string `yaml:"charDevice,omitempty"`
	Fifo          []string `yaml:"fifo,omitempty"`
	Socket        []string `yaml:"socket,omitempty"`
	Unknown       []string `yaml:"unknown,omitempty"`
	Read          []string `yaml:"read,omitempty"`
	Write         []string `yaml:"write,omitempty"`
	Execute       []string `yaml:"execute,omitempty"`
	Size          []string `yaml:"size,omitempty"`
	Date          []string `yaml:"date,omitempty"`
	Time          []string `yaml:"time,omitempty"`
	User          []string `yaml:"user,omitempty"`
	Group         []string `yaml:"group,omitempty"`
	Inode         []string `yaml:"inode,omitempty"`
}

// ListingDefaults are the values used when the matching flag is not given
type ListingDefaults struct {
	// TimeStyle is one of 'default', 'iso' or 'relative'
	TimeStyle string `yaml:"timeStyle,omitempty"`

	// TimeField picks which timestamp is shown: 'modified', 'accessed', 'changed' or 'created'
	TimeField string `yaml:"timeField,omitempty"`

	// Direction is how the grid is filled: 'down' fills columns first, 'across' fills rows first
	Direction string `yaml:"direction,omitempty"`

	// Ignore is a list of glob patterns. Entries whose names match any of them are not listed
	Ignore []string `yaml:"ignore,omitempty"`
}

// GetDefaultConfig returns the application default configuration
func GetDefaultConfig() UserConfig {
	return UserConfig{
		Theme: ThemeConfig{
			Directory:     []string{"blue"},
			Symlink:       []string{"cyan"},
			BrokenSymlink: []string{"red"},
			BlockDevice:   []string{"yellow"},
			CharDevice:    []string{"magenta"},
			Fifo:          []string{"blue"},
			Socket:        []string{"green"},
			Unknown:       []string{"red"},
			Read:          []string{"yellow"},
			Write:         []string{"red"},
			Execute:       []string{"green"},
			Size:          []string{"green"},
			Date:          []string{"magenta"},
			Time:          []string{"hiMagenta"},
			User:          []string{"yellow"},
			Group:         []string{"yellow"},
			Inode:         []string{"cyan"},
		},
		Listing: ListingDefaults{
			TimeStyle: "default",
			TimeField: "modified",
			Direction: "down",
			Ignore:    []string{},
		},
		Language: "auto",
	}
}
