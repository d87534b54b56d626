/* Apache v2 license
 * Copyright (C) 2019 Intel Corporation
 *
 * SPDX-License-Identifier: Apache-2.0
 */

package main

import (
	"bufio"
	"fmt"
	"github.com/intel/rsp-sw-toolkit-im-suite-gs1code"
	"github.com/intel/rsp-sw-toolkit-im-suite-gs1code/ai"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"io"
	"os"
	"strings"
)

var (
	rootCmd = &cobra.Command{
		Use:   "gs1decode [scan...]",
		Short: "Decode GS1 element strings",
		Long: "gs1decode decodes GS1 element strings read by barcode scanners. " +
			"Scans are taken from the arguments or, without arguments, read line by line from stdin.",
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if verbose {
				logrus.SetLevel(logrus.DebugLevel)
			}
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := newDecoder()
			if err != nil {
				return err
			}
			format, err := formatterFor(outputFormat)
			if err != nil {
				return err
			}
			if len(args) == 0 {
				return runInteractive(cmd.InOrStdin(), cmd.OutOrStdout(), d, format)
			}
			for _, scan := range args {
				if err := runDecode(cmd.OutOrStdout(), d, format, scan); err != nil {
					return err
				}
			}
			return nil
		},
	}

	tableCmd = &cobra.Command{
		Use:   "table",
		Short: "Print the AI table as YAML",
		Long: "table prints the AI table in use as YAML; edit it and pass it back " +
			"with --registry to decode with a different table.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := loadRegistry()
			if err != nil {
				return err
			}
			return r.WriteYAML(cmd.OutOrStdout())
		},
	}

	registryFile string
	groupSep     string
	outputFormat string
	verbose      bool
)

func init() {
	rootCmd.PersistentFlags().StringVar(&registryFile, "registry", "",
		"YAML AI table to use instead of the GS1 default")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false,
		"log skipped data")
	rootCmd.Flags().StringVar(&groupSep, "gs", "<GS>",
		"printable stand-in for the group separator, for scanners that can't send ASCII 29")
	rootCmd.Flags().StringVarP(&outputFormat, "output", "o", "text",
		"output format: text or yaml")
	rootCmd.AddCommand(tableCmd)
}

func main() {
	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	if err := rootCmd.Execute(); err != nil {
		logrus.Fatal(err)
	}
}

func loadRegistry() (*ai.Registry, error) {
	if registryFile == "" {
		return ai.Default(), nil
	}
	f, err := os.Open(registryFile)
	if err != nil {
		return nil, errors.Wrap(err, "unable to open AI table")
	}
	defer f.Close()
	return ai.LoadYAML(f)
}

func newDecoder() (*gs1code.Decoder, error) {
	r, err := loadRegistry()
	if err != nil {
		return nil, err
	}
	return gs1code.NewDecoder(
		gs1code.WithRegistry(r),
		gs1code.WithLogger(logrus.StandardLogger()),
	)
}

// normalize replaces the group separator stand-in with the real thing.
func normalize(scan, stand string) string {
	if stand == "" {
		return scan
	}
	return strings.Replace(scan, stand, string(gs1code.GroupSeparator), -1)
}

func runInteractive(in io.Reader, out io.Writer, d *gs1code.Decoder, format formatter) error {
	scanner := bufio.NewScanner(in)
	logrus.Infof("gs1decode interactive mode. Scan a code or paste its data "+
		"(%s for the group separator); Ctrl+D to exit.", groupSep)
	for scanner.Scan() {
		line := strings.TrimRight(scanner.Text(), "\r\n")
		if strings.TrimSpace(line) == "" {
			continue
		}
		if err := runDecode(out, d, format, line); err != nil {
			logrus.WithError(err).Error("failed to write result")
		}
	}
	return scanner.Err()
}

func runDecode(out io.Writer, d *gs1code.Decoder, format formatter, scan string) error {
	res := d.Decode(normalize(scan, groupSep))
	if err := format(out, res); err != nil {
		return errors.Wrap(err, "unable to write result")
	}
	_, err := fmt.Fprintln(out)
	return err
}
