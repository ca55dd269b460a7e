// Command dockerfile-parse parses a Dockerfile and prints its instruction
// tree, or reports a syntax error with its line and column.
package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/moby-labs/dockerfile-parser"
)

var version = "dev"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var asJSON bool
	var printVersion bool

	cmd := &cobra.Command{
		Use:           "dockerfile-parse [path]",
		Short:         "Parse a Dockerfile and print its instruction tree",
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if printVersion {
				fmt.Fprintln(cmd.OutOrStdout(), version)
				return nil
			}

			path := "-"
			if len(args) == 1 {
				path = args[0]
			}
			text, err := readInput(cmd.InOrStdin(), path)
			if err != nil {
				return errors.Wrapf(err, "reading %s", path)
			}

			doc, err := dockerfile.Parse(text)
			if err != nil {
				return err
			}

			logrus.WithFields(logrus.Fields{
				"path":         path,
				"instructions": len(doc.Instructions),
				"stages":       len(doc.Stages()),
			}).Debug("parsed dockerfile")

			if asJSON {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(doc)
			}

			for _, instr := range doc.Instructions {
				fmt.Fprintf(cmd.OutOrStdout(), "%T\n", instr)
			}
			return nil
		},
	}

	flags := cmd.Flags()
	flags.BoolVar(&asJSON, "json", false, "print the parsed tree as JSON")
	flags.BoolVarP(&printVersion, "version", "V", false, "print the version and exit")

	return cmd
}

func readInput(stdin io.Reader, path string) (string, error) {
	if path == "-" {
		b, err := io.ReadAll(stdin)
		if err != nil {
			return "", err
		}
		return string(b), nil
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	return string(b), nil
}
