package bench

import (
	"github.com/openziti/cpl/cmd/cpl/cpl"
	"github.com/spf13/cobra"
)

func init() {
	cpl.RootCmd.AddCommand(benchCmd)
}

var benchCmd = &cobra.Command{
	Use:   "bench",
	Short: "Exercise the reference counting and memory layers under load",
}
