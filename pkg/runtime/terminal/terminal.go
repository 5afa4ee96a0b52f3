package terminal

import (
	"io"
	"os"

	"github.com/clearpath-aba/clearpath/pkg/runtime/terminal/commands"
	"github.com/clearpath-aba/clearpath/pkg/runtime/terminal/export"
	"github.com/spf13/cobra"
)

// CLI represents the command-line interface
type CLI struct {
	output  io.Writer
	rootCmd *cobra.Command
}

// Options contain configuration for the CLI
type Options struct {
	Output io.Writer
}

// NewCLI creates a new CLI instance
func NewCLI(opts Options) *CLI {
	if opts.Output == nil {
		opts.Output = os.Stdout
	}

	cli := &CLI{output: opts.Output}
	cli.rootCmd = cli.newRootCmd()
	return cli
}

func (cli *CLI) Execute() error {
	return cli.rootCmd.Execute()
}

func (cli *CLI) newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "clearpath",
		Short: "Behavioral-therapy program analytics",
	}

	cmd.AddCommand(commands.NewReportCmd(NewReporter(cli.output), export.NewReporter(cli.output)))
	cmd.AddCommand(commands.NewImportCmd(cli.output))

	return cmd
}
