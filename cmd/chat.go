package cmd

import (
	"bufio"
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"riskmentor/config"
	"riskmentor/knowledge"
	"riskmentor/llm"
	"riskmentor/llm/driver"
)

func init() {
	ChatCMD.Flags().AddFlagSet(config.FlagSet)
}

// ChatCMD is a stdin repl against the configured provider, handy for
// poking at the model without telegram in the loop.
var ChatCMD = cobra.Command{
	Use:  "chat",
	Args: cobra.ExactArgs(0),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.LoadAndValidate(cmd.Flags())
		if err != nil {
			return err
		}

		provider, err := driver.New(cmd.Context(), cfg.Provider)
		if err != nil {
			return err
		}

		kb, err := knowledge.Load()
		if err != nil {
			return err
		}

		repl(cmd.Context(), provider, kb)
		return nil
	},
}

func repl(ctx context.Context, provider llm.Provider, kb *knowledge.Base) {
	scanner := bufio.NewScanner(os.Stdin)
	var history []llm.Message

	scanner.Split(bufio.ScanLines)
	for scanner.Scan() {
		input := scanner.Text()
		switch input {
		case "/exit":
			return
		case "/clear":
			history = nil
			continue
		case "":
			continue
		}
		fmt.Printf("\n")

		history = append(history, llm.NewTextMessage(llm.RoleUser, kb.BuildPrompt(input)))
		res, err := provider.Chat(ctx, history)
		if err != nil {
			fmt.Printf(">error: %s \n", err)
			return
		}

		res = llm.StripThink(res)
		fmt.Printf(">model: %s \n\n", res)
		history = append(history, llm.NewTextMessage(llm.RoleAssistant, res))
	}
}
