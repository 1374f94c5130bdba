package main

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/seatgeek/nomad-alloc-table/command/allocations"
	"github.com/seatgeek/nomad-alloc-table/link"
	"github.com/seatgeek/nomad-alloc-table/table"
	log "github.com/sirupsen/logrus"
	cli "gopkg.in/urfave/cli.v1"
)

func main() {
	app := cli.NewApp()
	app.Name = "nomad-alloc-table"
	app.Usage = "render exported nomad allocation lists as a table and ship it to a sink"
	app.Version = "0.1"

	app.Flags = []cli.Flag{
		cli.StringFlag{
			Name:   "log-level",
			Value:  "info",
			Usage:  "Debug level (debug, info, warn/warning, error, fatal, panic)",
			EnvVar: "LOG_LEVEL",
		},
	}
	app.Commands = []cli.Command{
		{
			Name:  "allocations",
			Usage: "Render a nomad allocation list (output of /v1/allocations)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:   "allocations",
					Value:  "-",
					Usage:  "Path to the allocation list JSON, '-' for stdin",
					EnvVar: "ALLOCATIONS_FILE",
				},
				cli.StringFlag{
					Name:   "nodes",
					Usage:  "Path to the node list JSON (output of /v1/nodes), used to show node names",
					EnvVar: "NODES_FILE",
				},
				cli.StringFlag{
					Name:   "format",
					Value:  table.FormatHTML,
					Usage:  fmt.Sprintf("Output format (%s)", strings.Join(table.Formats, ", ")),
					EnvVar: "FORMAT",
				},
				cli.StringFlag{
					Name:   "key",
					Usage:  "Name of the document in the sink (default: allocations.<ext>)",
					EnvVar: "DOCUMENT_KEY",
				},
				cli.StringFlag{
					Name:   "link-prefix",
					Value:  link.DefaultPrefix,
					Usage:  "Path prefix of links to allocations, jobs, nodes and evaluations",
					EnvVar: "LINK_PREFIX",
				},
				cli.BoolFlag{
					Name:  "dump",
					Usage: "Dump the decoded records at debug level",
				},
			},
			Action: func(c *cli.Context) error {
				renderer, err := allocations.NewRenderer(allocations.Config{
					AllocationsPath: c.String("allocations"),
					NodesPath:       c.String("nodes"),
					Format:          c.String("format"),
					Key:             c.String("key"),
					LinkPrefix:      c.String("link-prefix"),
					Dump:            c.Bool("dump"),
				})
				if err != nil {
					return err
				}

				return renderer.Run()
			},
		},
	}
	app.Before = func(c *cli.Context) error {
		// convert the human passed log level into logrus levels
		level, err := log.ParseLevel(c.String("log-level"))
		if err != nil {
			return err
		}
		log.SetLevel(level)
		log.SetOutput(os.Stderr)

		return nil
	}

	sort.Sort(cli.FlagsByName(app.Flags))

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}
