package endian

import (
	"fmt"
	"strconv"

	"github.com/openziti/cpl/cmd/cpl/cpl"
	"github.com/openziti/cpl/endian"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

func init() {
	endianSwapCmd.Flags().IntVarP(&width, "width", "w", 32, "Integer width in bits (16, 32, 64)")
	endianCmd.AddCommand(endianSwapCmd)
	endianCmd.AddCommand(endianHostCmd)
	cpl.RootCmd.AddCommand(endianCmd)
}

var endianCmd = &cobra.Command{
	Use:   "endian",
	Short: "Byte order utilities",
}

var endianSwapCmd = &cobra.Command{
	Use:   "swap <value>",
	Short: "Reverse the byte order of an integer",
	Args:  cobra.ExactArgs(1),
	RunE:  endianSwap,
}
var width int

var endianHostCmd = &cobra.Command{
	Use:   "host",
	Short: "Print the host byte order",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, _ []string) {
		order := "big"
		if endian.IsLittleEndian() {
			order = "little"
		}
		_, _ = fmt.Fprintln(cmd.OutOrStdout(), order)
	},
}

func endianSwap(cmd *cobra.Command, args []string) error {
	v, err := strconv.ParseUint(args[0], 0, width)
	if err != nil {
		return errors.Wrapf(err, "invalid %d-bit value '%s'", width, args[0])
	}
	out := cmd.OutOrStdout()
	switch width {
	case 16:
		_, _ = fmt.Fprintf(out, "0x%04x\n", endian.Swap16(uint16(v)))
	case 32:
		_, _ = fmt.Fprintf(out, "0x%08x\n", endian.Swap32(uint32(v)))
	case 64:
		_, _ = fmt.Fprintf(out, "0x%016x\n", endian.Swap64(v))
	default:
		return errors.Errorf("unsupported width [%d]", width)
	}
	return nil
}
