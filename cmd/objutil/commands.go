package main

import (
	"fmt"
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/spf13/cobra"

	"github.com/reoring/objectutil"
)

func newKindCmd(a *app) *cobra.Command {
	var path string
	cmd := &cobra.Command{
		Use:   "kind FILE",
		Short: "Print the kind of the document or of the value at --path",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := a.load(args[0])
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(a.stdout, objectutil.Classify(a.at(doc, path)))
			return err
		},
	}
	cmd.Flags().StringVar(&path, "path", "", "dotted path into the document")
	return cmd
}

func newEmptyCmd(a *app) *cobra.Command {
	var (
		path  string
		trace bool
	)
	cmd := &cobra.Command{
		Use:   "empty FILE",
		Short: "Report whether the document (or the value at --path) is empty",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := a.load(args[0])
			if err != nil {
				return err
			}
			obs := objectutil.LogObserver(a.log)
			if trace {
				obs = objectutil.DumpObserver(a.stderr)
			}
			empty := objectutil.IsEmpty(a.at(doc, path), objectutil.WithObserver(obs))
			_, err = fmt.Fprintln(a.stdout, a.verdict(empty))
			return err
		},
	}
	cmd.Flags().StringVar(&path, "path", "", "dotted path into the document")
	cmd.Flags().BoolVar(&trace, "trace", false, "dump keyed maps to stderr while checking")
	return cmd
}

func newGetCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "get FILE PATH",
		Short: "Print the value at a dotted path (null when it cannot be resolved)",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := a.load(args[0])
			if err != nil {
				return err
			}
			opt := objectutil.WithObserver(objectutil.LogObserver(a.log))
			return a.print(objectutil.ValueFromObject(doc, args[1], opt))
		},
	}
}

func newSameCmd(a *app) *cobra.Command {
	var skip []string
	cmd := &cobra.Command{
		Use:   "same FILE1 FILE2",
		Short: "Compare two documents structurally; exits 1 when they differ",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			left, err := a.load(args[0])
			if err != nil {
				return err
			}
			right, err := a.load(args[1])
			if err != nil {
				return err
			}
			same := objectutil.IsSameObject(left, right, skip...)
			if _, err := fmt.Fprintln(a.stdout, a.verdict(same)); err != nil {
				return err
			}
			if !same {
				return errDifferent
			}
			return nil
		},
	}
	cmd.Flags().StringSliceVar(&skip, "skip", nil, "top-level keys to ignore")
	return cmd
}

func newCloneCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "clone FILE",
		Short: "Print a clone of the document",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := a.load(args[0])
			if err != nil {
				return err
			}
			cp, err := objectutil.Clone(doc)
			if err != nil {
				return err
			}
			return a.print(cp)
		},
	}
}

func newEmptyValueCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "empty-value KIND",
		Short: "Print the canonical empty value of a kind (array, object, string, ...)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			k, ok := objectutil.ParseKind(args[0])
			if !ok {
				a.log.Warnf("unknown kind %q", args[0])
			}
			return a.print(objectutil.EmptyValue(k))
		},
	}
}

func newInspectCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "inspect FILE",
		Short: "Print a table of the top-level keys with their kind and emptiness",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := a.load(args[0])
			if err != nil {
				return err
			}
			switch k := objectutil.Classify(doc); k {
			case objectutil.KindMapping, objectutil.KindKeyedMapping:
			default:
				return fmt.Errorf("inspect: document root is %s, not a mapping", k)
			}
			return a.table(doc)
		},
	}
}

func (a *app) table(doc any) error {
	keys := objectutil.Keys(doc)
	width := runewidth.StringWidth("KEY")
	for _, k := range keys {
		width = max(width, runewidth.StringWidth(k))
	}
	kindWidth := len("htmlElement")

	var b strings.Builder
	fmt.Fprintf(&b, "%s  %s  %s\n", runewidth.FillRight("KEY", width), runewidth.FillRight("KIND", kindWidth), "EMPTY")
	obs := objectutil.WithObserver(objectutil.LogObserver(a.log))
	for _, k := range keys {
		v, _ := objectutil.Property(doc, k)
		kind := objectutil.Classify(v).String()
		fmt.Fprintf(&b, "%s  %s  %s\n", runewidth.FillRight(k, width), runewidth.FillRight(kind, kindWidth), a.verdict(objectutil.IsEmpty(v, obs)))
	}
	_, err := fmt.Fprint(a.stdout, b.String())
	return err
}
