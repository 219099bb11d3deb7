// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"fmt"
	"os"

	"github.com/fisiocare/fisio-api/models"
	"github.com/spf13/cobra"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	if err := newRootCmd(models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)).Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd(info models.AppBuildInfo) *cobra.Command {
	root := &cobra.Command{
		Use:          "fisio-api",
		Short:        "Patient and diagnosis API for physiotherapists",
		Version:      info.Version(),
		SilenceUsage: true,
	}

	root.AddCommand(newServeCmd(info))
	root.AddCommand(newMigrateCmd())
	root.AddCommand(newVersionCmd(info))

	return root
}

func newVersionCmd(info models.AppBuildInfo) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print build information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprint(cmd.OutOrStdout(), info.String())
		},
	}
}
