package main

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	gojson "github.com/goccy/go-json"
	"github.com/itchyny/timefmt-go"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/reoring/objectutil"
	"github.com/reoring/objectutil/internal/docload"
)

// errDifferent makes the process exit with status 1 without a message.
var errDifferent = errors.New("values differ")

type app struct {
	stdout, stderr io.Writer
	color          bool

	ordered    bool
	output     string
	timeFormat string
	logLevel   string
	noColor    bool
	dupKeys    string

	dupPolicy docload.DuplicatePolicy

	log *objectutil.TextLogger
}

func newRootCmd(stdout, stderr io.Writer, color bool) *cobra.Command {
	a := &app{stdout: stdout, stderr: stderr, color: color}

	root := &cobra.Command{
		Use:           "objutil",
		Short:         "Classify, compare, clone and query YAML/JSON documents",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			switch a.output {
			case "json", "yaml":
			default:
				return fmt.Errorf("unknown output format %q (want json or yaml)", a.output)
			}
			policy, err := docload.ParseDuplicatePolicy(a.dupKeys)
			if err != nil {
				return err
			}
			a.dupPolicy = policy
			level, err := objectutil.ParseLogLevel(a.logLevel)
			if err != nil {
				return err
			}
			a.log = objectutil.NewLogger(a.stderr, "objutil", level)
			if a.noColor {
				a.color = false
			}
			return nil
		},
	}
	root.CompletionOptions.HiddenDefaultCmd = true
	root.SetOut(stdout)
	root.SetErr(stderr)

	pf := root.PersistentFlags()
	pf.BoolVar(&a.ordered, "ordered", false, "decode mappings as ordered keyed maps")
	pf.StringVarP(&a.output, "output", "o", "json", "output format: json or yaml")
	pf.StringVar(&a.timeFormat, "time-format", "", "strftime layout for dates (default RFC 3339)")
	pf.StringVar(&a.logLevel, "log-level", "warn", "log level: error, warn, info or debug")
	pf.BoolVar(&a.noColor, "no-color", false, "never colorize verdicts")
	pf.StringVar(&a.dupKeys, "duplicate-keys", "ignore", "duplicate mapping keys: ignore, warn or error")

	root.AddCommand(
		newKindCmd(a),
		newEmptyCmd(a),
		newGetCmd(a),
		newSameCmd(a),
		newCloneCmd(a),
		newEmptyValueCmd(a),
		newInspectCmd(a),
	)
	return root
}

func (a *app) load(name string) (any, error) {
	v, err := docload.LoadFile(name, docload.Options{
		Ordered:        a.ordered,
		OnDuplicateKey: a.dupPolicy,
		Warn: func(e *docload.DuplicateKeyError) {
			a.log.Warnf("%s: line %d: duplicate key at %s", name, e.Line, e.Path)
		},
	})
	if err != nil {
		return nil, err
	}
	a.log.Debugf("loaded %s: root kind %s", name, objectutil.Classify(v))
	return v, nil
}

// at resolves an optional dotted path; an empty path selects the document.
func (a *app) at(doc any, path string) any {
	if path == "" {
		return doc
	}
	return objectutil.ValueFromObject(doc, path, objectutil.WithObserver(objectutil.LogObserver(a.log)))
}

func (a *app) renderTime(t time.Time) any {
	if a.timeFormat == "" {
		return t.Format(time.RFC3339Nano)
	}
	return timefmt.Format(t, a.timeFormat)
}

// print writes v in the selected output format.
func (a *app) print(v any) error {
	if objectutil.IsUndefined(v) {
		_, err := fmt.Fprintln(a.stdout, "undefined")
		return err
	}
	tree, err := objectutil.JSONValue(v, a.renderTime)
	if err != nil {
		return err
	}
	var data []byte
	if a.output == "yaml" {
		data, err = yaml.Marshal(tree)
	} else {
		data, err = gojson.MarshalIndent(tree, "", "  ")
	}
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(a.stdout, strings.TrimRight(string(data), "\n"))
	return err
}

func (a *app) verdict(b bool) string {
	s := fmt.Sprint(b)
	if !a.color {
		return s
	}
	if b {
		return "\x1b[32m" + s + "\x1b[0m"
	}
	return "\x1b[31m" + s + "\x1b[0m"
}
