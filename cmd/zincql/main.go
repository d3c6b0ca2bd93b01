// Command zincql reads a Zinc grid, optionally dumps it for inspection,
// writes it back as canonical Zinc text, and can export a YAML description
// of its meta/columns (YAML is output only; it is never read back). It is
// the richer sibling of zincfmt: structured logging in
// verbose mode, a pretty-printed dump mode, and a YAML meta export.
package main

import (
	"fmt"
	"os"

	"github.com/jessevdk/go-flags"
	"github.com/sirupsen/logrus"

	zinc "github.com/bacnetic/zinc"
)

type options struct {
	Dump      bool   `long:"dump" description:"pretty-print the parsed grid structure instead of converting it"`
	MetaYAML  string `long:"meta-yaml" description:"write the grid's meta and column tags as YAML to this path" value-name:"path"`
	Out       string `short:"o" long:"out" description:"write the canonical Zinc text to this path instead of stdout" value-name:"path"`
	Verbose   bool   `short:"v" long:"verbose" description:"log each processing step to stderr"`
	Version   bool   `long:"version" description:"show this version"`
	Args      struct {
		File string `positional-arg-name:"file" description:"Zinc file to read"`
	} `positional-args:"yes" required:"yes"`
}

var buildVersion = "dev"

func main() {
	var opts options
	parser := flags.NewParser(&opts, flags.Default)
	parser.Usage = "[options] file.zinc"

	if _, err := parser.Parse(); err != nil {
		if flags.WroteHelp(err) {
			os.Exit(0)
		}
		os.Exit(1)
	}

	if opts.Version {
		fmt.Println(buildVersion)
		os.Exit(0)
	}

	log := newLogger(opts.Verbose)

	if err := run(opts, log); err != nil {
		log.WithError(err).Error("zincql failed")
		os.Exit(1)
	}
}

func newLogger(verbose bool) *logrus.Logger {
	log := logrus.New()
	log.Out = os.Stderr
	if verbose {
		log.SetLevel(logrus.DebugLevel)
	} else {
		log.SetLevel(logrus.WarnLevel)
	}
	return log
}

func run(opts options, log *logrus.Logger) error {
	log.WithField("file", opts.Args.File).Debug("reading grid")
	g, err := zinc.ReadFile(opts.Args.File)
	if err != nil {
		return err
	}
	log.WithFields(logrus.Fields{
		"version": g.Version(),
		"cols":    g.NumCols(),
		"rows":    g.NumRows(),
	}).Debug("parsed grid")

	if opts.Dump {
		dumpGrid(g)
	}

	if opts.MetaYAML != "" {
		log.WithField("path", opts.MetaYAML).Debug("writing meta YAML")
		if err := writeMetaYAML(g, opts.MetaYAML); err != nil {
			return err
		}
	}

	text, err := g.ToZinc()
	if err != nil {
		return err
	}

	if opts.Out != "" {
		log.WithField("path", opts.Out).Debug("writing canonical Zinc")
		return os.WriteFile(opts.Out, []byte(text), 0644)
	}
	if !opts.Dump {
		fmt.Print(text)
	}
	return nil
}
