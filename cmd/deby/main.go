package main

import (
	"errors"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/urfave/cli"

	"github.com/debyproject/deby-go/internal/config"
	"github.com/debyproject/deby-go/internal/deby/repository"
	"github.com/debyproject/deby-go/internal/deby/usecase"
	"github.com/debyproject/deby-go/internal/history"
	"github.com/debyproject/deby-go/pkg/deberr"
)

var (
	app     *cli.App
	version string

	pkgVersion string
	changes    string
	sinceRef   string
)

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)

	app = cli.NewApp()
	app.Name = "deby"
	app.Usage = "configuration driven debian/changelog and debian/control generator"
	app.Author = "Deby Developers"
	app.Email = "deby-dev@googlegroups.com"
	app.Version = version

	app.Commands = []cli.Command{

		{
			Name:  "update",
			Usage: "Update both debian/changelog and debian/control",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:        "version",
					Value:       "",
					Destination: &pkgVersion,
					Usage:       "Package version for the new changelog entry",
				},
				cli.StringFlag{
					Name:        "changes",
					Value:       "",
					Destination: &changes,
					Usage:       "Change notes, one changelog bullet per line",
				},
				cli.BoolFlag{
					Name:  "from-git",
					Usage: "Take change notes from git commit subjects",
				},
				cli.StringFlag{
					Name:        "since-ref",
					Value:       "",
					Destination: &sinceRef,
					Usage:       "Collect commits after this ref instead of the nearest tag",
				},
				cli.StringSliceFlag{
					Name:  "field",
					Usage: "Extra control field emitted verbatim, repeatable",
				},
				cli.BoolFlag{
					Name:  "backup",
					Usage: "Keep a .bak copy of files before rewriting them",
				},
			},
			Action: func(ctx *cli.Context) (err error) {
				if len(pkgVersion) < 1 {
					msg := "Version should not be empty. Example: "
					msg += "deby update --version 1.2.3 --changes 'fix bug'"
					err = errors.New(msg)
					return
				}

				cfg, notes, err := loadConfigAndChanges(ctx)
				if err != nil {
					return err
				}

				changelogMsg, controlMsg, err := newUpdater(ctx).Update(cfg, pkgVersion, notes, ctx.StringSlice("field"))
				if err != nil {
					return deberr.New(deberr.KindUpdate, err)
				}
				fmt.Println(changelogMsg)
				fmt.Println(controlMsg)
				return nil
			},
		},

		{
			Name:  "changelog",
			Usage: "Update only debian/changelog",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:        "version",
					Value:       "",
					Destination: &pkgVersion,
					Usage:       "Package version for the new changelog entry",
				},
				cli.StringFlag{
					Name:        "changes",
					Value:       "",
					Destination: &changes,
					Usage:       "Change notes, one changelog bullet per line",
				},
				cli.BoolFlag{
					Name:  "from-git",
					Usage: "Take change notes from git commit subjects",
				},
				cli.StringFlag{
					Name:        "since-ref",
					Value:       "",
					Destination: &sinceRef,
					Usage:       "Collect commits after this ref instead of the nearest tag",
				},
				cli.BoolFlag{
					Name:  "backup",
					Usage: "Keep a .bak copy of the changelog before rewriting it",
				},
			},
			Action: func(ctx *cli.Context) (err error) {
				if len(pkgVersion) < 1 {
					msg := "Version should not be empty. Example: "
					msg += "deby changelog --version 1.2.3 --from-git"
					err = errors.New(msg)
					return
				}

				cfg, notes, err := loadConfigAndChanges(ctx)
				if err != nil {
					return err
				}

				msg, err := newUpdater(ctx).UpdateChangelog(cfg, pkgVersion, notes)
				if err != nil {
					return deberr.New(deberr.KindUpdate, err)
				}
				fmt.Println(msg)
				return nil
			},
		},

		{
			Name:  "control",
			Usage: "Update only debian/control",
			Flags: []cli.Flag{
				cli.StringSliceFlag{
					Name:  "field",
					Usage: "Extra control field emitted verbatim, repeatable",
				},
				cli.BoolFlag{
					Name:  "backup",
					Usage: "Keep a .bak copy of the control file before rewriting it",
				},
			},
			Action: func(ctx *cli.Context) (err error) {
				cfg, err := loadConfig()
				if err != nil {
					return err
				}

				msg, err := newUpdater(ctx).UpdateControl(cfg, ctx.StringSlice("field"))
				if err != nil {
					return deberr.New(deberr.KindUpdate, err)
				}
				fmt.Println(msg)
				return nil
			},
		},

		{
			Name:   "init",
			Usage:  "Write a starter .debyrc in the current directory",
			Action: func(c *cli.Context) error { return runInit() },
		},

		{
			Name:   "check",
			Usage:  "Validate .debyrc and the control output it would produce",
			Action: func(c *cli.Context) error { return runCheck() },
		},

		{
			Name:   "upgrade",
			Usage:  "Upgrade the deby tool to the latest release",
			Action: func(c *cli.Context) error { return runUpgrade() },
		},
	}

	err := app.Run(os.Args)
	if err != nil {
		log.Fatal(err)
	}
}

func loadConfig() (config.DebyConfig, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return config.DebyConfig{}, deberr.New(deberr.KindConfigNew, err)
	}
	return cfg, nil
}

// loadConfigAndChanges resolves the change notes for changelog updates,
// either from the --changes flag or from git history.
func loadConfigAndChanges(ctx *cli.Context) (config.DebyConfig, string, error) {
	cfg, err := loadConfig()
	if err != nil {
		return config.DebyConfig{}, "", err
	}

	notes := changes
	if ctx.Bool("from-git") {
		subjects, err := history.Collect(".", sinceRef)
		if err != nil {
			return config.DebyConfig{}, "", err
		}
		if len(subjects) == 0 {
			return config.DebyConfig{}, "", errors.New("no commits found since the last release, pass --changes instead")
		}
		notes = strings.Join(subjects, "\n")
	}

	return cfg, notes, nil
}

func newUpdater(ctx *cli.Context) *usecase.Updater {
	updater := usecase.NewUpdater(repository.NewDiskStore(), repository.SystemClock{})
	updater.Backup = ctx.Bool("backup")
	return updater
}
