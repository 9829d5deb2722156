package rand

import (
	"fmt"
	"math"

	"github.com/openziti/cpl/cmd/cpl/cpl"
	"github.com/openziti/cpl/rand48"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

func init() {
	randCmd.Flags().Int64VarP(&seed, "seed", "s", 0, "Seed (defaults to the configured seed)")
	randCmd.Flags().IntVarP(&count, "count", "n", 10, "Number of values to draw")
	randCmd.Flags().BoolVarP(&bits, "bits", "b", false, "Print drand48 values as IEEE 754 bits")
	cpl.RootCmd.AddCommand(randCmd)
}

var randCmd = &cobra.Command{
	Use:       "rand <lrand48|mrand48|drand48>",
	Short:     "Print a drand48-family sequence",
	Args:      cobra.ExactArgs(1),
	ValidArgs: []string{"lrand48", "mrand48", "drand48"},
	RunE:      randRun,
}
var seed int64
var count int
var bits bool

func randRun(cmd *cobra.Command, args []string) error {
	if !cmd.Flags().Changed("seed") {
		cfg, err := cpl.Config()
		if err != nil {
			return err
		}
		seed = cfg.Seed
	}

	r := rand48.New(seed)
	out := cmd.OutOrStdout()
	for i := 0; i < count; i++ {
		switch args[0] {
		case "lrand48":
			_, _ = fmt.Fprintln(out, r.Lrand48())
		case "mrand48":
			_, _ = fmt.Fprintln(out, r.Mrand48())
		case "drand48":
			v := r.Drand48()
			if bits {
				_, _ = fmt.Fprintf(out, "0x%016x\n", math.Float64bits(v))
			} else {
				_, _ = fmt.Fprintf(out, "%.17g\n", v)
			}
		default:
			return errors.Errorf("unknown generator '%s'", args[0])
		}
	}
	return nil
}
