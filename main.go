package main

import (
	"bytes"
	"fmt"
	"log"
	"os"
	"runtime"

	"github.com/go-errors/errors"
	"github.com/jesseduffield/lazyls/pkg/app"
	"github.com/jesseduffield/lazyls/pkg/cli"
	"github.com/jesseduffield/lazyls/pkg/config"
	"github.com/jesseduffield/lazyls/pkg/i18n"
	lslog "github.com/jesseduffield/lazyls/pkg/log"
	"github.com/jesseduffield/yaml"
	"github.com/spf13/cobra"
)

var (
	commit      string
	version     = "unversioned"
	date        string
	buildSource = "unknown"
)

func main() {
	log.SetFlags(0)

	info := fmt.Sprintf(
		"%s\nDate: %s\nBuildSource: %s\nCommit: %s\nOS: %s\nArch: %s",
		version,
		date,
		buildSource,
		commit,
		runtime.GOOS,
		runtime.GOARCH,
	)

	// the user config isn't loaded yet, so help text follows the environment's language
	helpTr, _ := i18n.NewTranslationSetFromConfig(lslog.NewSilentLogger(), "auto")

	var lsApp *app.App
	rootCmd := cli.NewRootCommand(helpTr, info, func(cmd *cobra.Command, flags *cli.Flags, paths []string) error {
		if err := cli.ApplyColor(flags.Color); err != nil {
			return err
		}

		if flags.Config {
			var buf bytes.Buffer
			encoder := yaml.NewEncoder(&buf)
			err := encoder.Encode(config.GetDefaultConfig())
			if err != nil {
				log.Fatal(err.Error())
			}
			fmt.Printf("%v\n", buf.String())
			os.Exit(0)
		}

		appConfig, err := config.NewAppConfig("lazyls", version, commit, date, buildSource, flags.Debug)
		if err != nil {
			log.Fatal(err.Error())
		}

		lsApp, err = app.NewApp(appConfig)
		if err != nil {
			return err
		}

		listingConfig, err := cli.NewListingConfig(cmd, flags, paths, appConfig.UserConfig.Listing)
		if err != nil {
			log.Fatal(err.Error())
		}

		return lsApp.Run(listingConfig)
	})

	err := rootCmd.Execute()
	if err == nil {
		return
	}

	if lsApp == nil {
		log.Fatal(err.Error())
	}

	if errMessage, known := lsApp.KnownError(err); known {
		log.Println(errMessage)
		os.Exit(1)
	}

	newErr := errors.Wrap(err, 0)
	stackTrace := newErr.ErrorStack()
	lsApp.Log.Error(stackTrace)

	log.Fatal(fmt.Sprintf("%s\n\n%s", lsApp.Tr.ErrorOccurred, stackTrace))
}
