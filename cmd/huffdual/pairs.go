package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/wippyai/huffdual/bitpump"
	"github.com/wippyai/huffdual/huffman"
)

func newPairsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "pairs",
		Short: "List table implementations, tags and bit pumps",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			w := cmd.OutOrStdout()
			p := newPainter(w)

			var impls []string
			for _, impl := range huffman.Impls() {
				impls = append(impls, impl.String())
			}
			fmt.Fprintf(w, "%s %s\n", p.label("implementations"), strings.Join(impls, ", "))

			for _, tag := range huffman.Tags() {
				fmt.Fprintf(w, "%s %s: max %d codes, values <= %d, full decode %v, flag bytes %d\n",
					p.label("tag"), tag.Name, tag.MaxCodesCount, tag.MaxCodeValue,
					tag.SupportsFullDecode, tag.FlagBytes())
			}

			for _, v := range bitpump.Variants() {
				fmt.Fprintf(w, "%s %d = %s\n", p.label("pump"), uint8(v), v)
			}
			return nil
		},
	}
}
