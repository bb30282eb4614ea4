package cmd

import (
	"strings"

	"github.com/lifo-cli/lifo/filesystem"
	"github.com/lifo-cli/lifo/key"
	"github.com/lifo-cli/lifo/session"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func init() {
	rootCmd.AddCommand(execCmd)

	execCmd.Flags().StringP("file", "f", "", "Read commands from a script file, one per line")
	execCmd.Flags().BoolP("keep-going", "k", false, "Report failing commands and continue")
	execCmd.Flags().BoolP("echo", "e", false, "Print each command before executing it")
	lo.Must0(viper.BindPFlag(key.ExecEcho, execCmd.Flags().Lookup("echo")))
}

// execCmd applies a batch of commands to a fresh stack.
var execCmd = &cobra.Command{
	Use:   "exec [command...]",
	Short: "Execute stack commands from arguments or a script file",
	Long: `Execute stack commands against a fresh stack. Each argument is one command line.
With --file, commands are read from the script instead, one per line. Lines starting with # are comments.`,
	Example: `  lifo exec "push Hello" "push World" pop show
  lifo exec -f ./script.lifo`,
	Run: func(cmd *cobra.Command, args []string) {
		if lo.Must(cmd.Flags().GetBool("keep-going")) {
			viper.Set(key.ExecStopOnError, false)
		}

		s := session.New(cmd.OutOrStdout())

		if path := lo.Must(cmd.Flags().GetString("file")); path != "" {
			f, err := filesystem.API().Open(path)
			handleErr(err)

			err = s.Run(f)
			_ = f.Close()
			handleErr(err)
			return
		}

		if len(args) == 0 {
			handleErr(cmd.Help())
			return
		}

		handleErr(s.Run(strings.NewReader(strings.Join(args, "\n"))))
	},
}
