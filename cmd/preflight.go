package cmd

import (
	"os"
	"strings"

	"github.com/spf13/cobra"

	"riskmentor/preflight"
)

func init() {
	PreflightCMD.Flags().String("dir", ".", "project root to operate in")
	PreflightCMD.Flags().String("launch", "", "override the launch command, space separated")
}

// PreflightCMD repairs the bot package stub, smoke-tests the imports and
// starts the bot only when everything verifies.
var PreflightCMD = cobra.Command{
	Use:  "preflight",
	Args: cobra.ExactArgs(0),
	Run: func(cmd *cobra.Command, args []string) {
		o := preflight.Defaults()
		o.Dir, _ = cmd.Flags().GetString("dir")

		if launch, _ := cmd.Flags().GetString("launch"); launch != "" {
			o.Launch = strings.Fields(launch)
		}

		os.Exit(preflight.Run(cmd.Context(), o))
	},
}
