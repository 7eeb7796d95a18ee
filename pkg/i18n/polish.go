package i18n

func polishSet() TranslationSet {
	return TranslationSet{
		AppDescription:           "Leniwszy sposób na listowanie plików",
		ErrorOccurred:            "Wystąpił błąd! Zgłoś go na https://github.com/jesseduffield/lazyls/issues",
		NoSuchFileOrDirectory:    "Nie ma takiego pliku ani katalogu.",
		TerminalWidthUnavailable: "Nie udało się odczytać szerokości terminala.",
		MetadataUnavailable:      "Nie udało się odczytać metadanych",
		DirectoryUnreadable:      "Nie udało się odczytać katalogu",

		AllFlag:       "pokaż ukryte wpisy; podaj dwukrotnie, aby pokazać też '.' i '..'",
		LongFlag:      "pokaż tabelę z uprawnieniami, właścicielem, rozmiarem i czasem",
		BytesFlag:     "pokaż rozmiary w bajtach zamiast k/M/G",
		OnlyDirsFlag:  "listuj tylko katalogi",
		OnlyFilesFlag: "listuj tylko pliki",
		OnelineFlag:   "listuj jeden wpis na linię",
		ConfigFlag:    "wypisz domyślną konfigurację",

		FlagsTitle:     "Flagi",
		LayoutTitle:    "Układ",
		FilteringTitle: "Filtrowanie",
		ColumnsTitle:   "Kolumny długiego listowania",
		GlobalTitle:    "Globalne",
	}
}
