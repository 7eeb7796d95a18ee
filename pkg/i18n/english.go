package i18n

// TranslationSet is a set of localised strings for a given language
type TranslationSet struct {
	AppDescription           string
	ErrorOccurred            string
	NoSuchFileOrDirectory    string
	TerminalWidthUnavailable string
	MetadataUnavailable      string
	DirectoryUnreadable      string

	PathsArgument     string
	AllFlag           string
	LongFlag          string
	BytesFlag         string
	OnlyDirsFlag      string
	OnlyFilesFlag     string
	GroupFlag         string
	InodeFlag         string
	LinksFlag         string
	OnelineFlag       string
	NoPermissionsFlag string
	TimeStyleFlag     string
	TimeFieldFlag     string
	ExtendedFlag      string
	AcrossFlag        string
	DirectionFlag     string
	IgnoreFlag        string
	ColorFlag         string
	ConfigFlag        string
	DebugFlag         string

	FlagsTitle     string
	LayoutTitle    string
	FilteringTitle string
	ColumnsTitle   string
	GlobalTitle    string
}

func englishSet() TranslationSet {
	return TranslationSet{
		AppDescription:           "The lazier way to list your files",
		ErrorOccurred:            "An error occurred! Please create an issue at https://github.com/jesseduffield/lazyls/issues",
		NoSuchFileOrDirectory:    "No such file or directory.",
		TerminalWidthUnavailable: "Failed to get terminal width.",
		MetadataUnavailable:      "Could not read the metadata of",
		DirectoryUnreadable:      "Could not read the directory",

		PathsArgument:     "the files and directories to list (defaults to the current directory)",
		AllFlag:           "show hidden entries; pass twice to also show '.' and '..'",
		LongFlag:          "show a table with permissions, owner, size and time",
		BytesFlag:         "show sizes in bytes instead of k/M/G",
		OnlyDirsFlag:      "only list directories",
		OnlyFilesFlag:     "only list files",
		GroupFlag:         "show the group column in the long listing",
		InodeFlag:         "show the inode column in the long listing",
		LinksFlag:         "show the hard link count column in the long listing",
		OnelineFlag:       "list one entry per line",
		NoPermissionsFlag: "hide the permissions column in the long listing",
		TimeStyleFlag:     "how to show times: default, iso or relative",
		TimeFieldFlag:     "which time to show: modified, accessed, changed or created",
		ExtendedFlag:      "list extended attributes below each entry in the long listing",
		AcrossFlag:        "fill the grid row by row instead of column by column",
		DirectionFlag:     "how to fill the grid: down or across",
		IgnoreFlag:        "do not list entries whose name matches this glob (repeatable)",
		ColorFlag:         "when to use colors: auto, always or never",
		ConfigFlag:        "print the default config",
		DebugFlag:         "write a debug log to the config directory",

		FlagsTitle:     "Flags",
		LayoutTitle:    "Layout",
		FilteringTitle: "Filtering",
		ColumnsTitle:   "Long listing columns",
		GlobalTitle:    "Global",
	}
}
