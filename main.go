package main

import (
	"riskmentor/cmd"

	"github.com/spf13/cobra"
)

func main() {
	rootCMD := cobra.Command{Use: "riskmentor"}
	rootCMD.AddCommand(
		&cmd.PreflightCMD,
		&cmd.BotCMD,
		&cmd.ChatCMD,
	)
	rootCMD.Execute()
}
