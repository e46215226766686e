package main

import (
	"fmt"
	"math/rand"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/wippyai/huffdual/bitpump"
	"github.com/wippyai/huffdual/huffman"
)

func newSeedCmd(a *app) *cobra.Command {
	var (
		out   string
		count int
		seed  int64
	)
	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Write a seed corpus of well-formed inputs",
		Long: `Writes fixed edge-case inputs plus random canonical tables, each
followed by a pump discriminator and a payload encoded with that table.
Random inputs cover every tag and every pump.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := os.MkdirAll(out, 0755); err != nil {
				return fmt.Errorf("failed to create corpus directory: %w", err)
			}
			inputs := seedCorpus(newRand(seed), count)
			for name, data := range inputs {
				if err := os.WriteFile(filepath.Join(out, name), data, 0644); err != nil {
					return fmt.Errorf("write seed: %w", err)
				}
			}
			a.logger.Info("seed corpus written", zap.String("dir", out), zap.Int("inputs", len(inputs)))
			fmt.Fprintf(cmd.OutOrStdout(), "wrote %d inputs to %s\n", len(inputs), out)
			return nil
		},
	}

	cmd.Flags().StringVarP(&out, "out", "o", "corpus", "Output directory")
	cmd.Flags().IntVarP(&count, "count", "n", 64, "Number of random inputs")
	cmd.Flags().Int64Var(&seed, "seed", 1, "Random seed")
	return cmd
}

// seedCorpus returns the corpus keyed by file name.
func seedCorpus(rng *rand.Rand, count int) map[string][]byte {
	out := fixedInputs()
	for i := 0; i < count; i++ {
		tag := huffman.Tags()[i%len(huffman.Tags())]
		v := bitpump.Variants()[(i/len(huffman.Tags()))%len(bitpump.Variants())]
		def := huffman.RandomDefinition(rng, tag)

		data := append(def.AppendWire(nil), byte(v))
		data = append(data, encodePayload(rng, def, v, 1+rng.Intn(64))...)
		out[fmt.Sprintf("random-%04d-%s-%s.bin", i, tag, v)] = data
	}
	return out
}

func fixedInputs() map[string][]byte {
	histogram := func(counts ...byte) []byte {
		h := make([]byte, huffman.MaxCodeLength)
		copy(h, counts)
		return h
	}
	dc := []byte{0, 1, 5, 1, 1, 1, 1, 1, 1, 0, 0, 0, 0, 0, 0, 0, 0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11}

	return map[string][]byte{
		"empty-histogram.bin":     append(histogram(), 0, 0, byte(bitpump.MSB), 0xDE, 0xAD, 0xBE, 0xEF),
		"short-histogram.bin":     {0x01, 0x00, 0x02, 0x00, 0x00},
		"symbol8-single-code.bin": append(histogram(1), 0x2A, 0x01, byte(bitpump.JPEG), 0x00),
		"unknown-pump.bin":        append(append([]byte{}, dc...), 0, 0, 3, 0x12, 0x34),
		"jpeg-dc-stuffed.bin":     append(append([]byte{}, dc...), 1, 1, byte(bitpump.JPEG), 0xFF, 0x00, 0x7F, 0xFF, 0xD9),
	}
}

// encodePayload writes n random symbols of def with pump v's framing. Full
// decode tables get a difference of the decoded bit length after each code.
func encodePayload(rng *rand.Rand, def *huffman.Definition, v bitpump.Variant, n int) []byte {
	if def.NumCodes() == 0 {
		payload := make([]byte, n)
		rng.Read(payload)
		return payload
	}

	w := bitpump.NewWriter(v)
	enc := huffman.NewEncoder(def)
	for i := 0; i < n; i++ {
		value := def.Values[rng.Intn(len(def.Values))]
		var err error
		if def.FullDecode {
			err = enc.Diff(w, randomDiff(rng, int(value)))
		} else {
			err = enc.Symbol(w, value)
		}
		if err != nil {
			break
		}
	}
	return w.Bytes()
}

// randomDiff returns a difference whose JPEG bit length is l.
func randomDiff(rng *rand.Rand, l int) int {
	switch l {
	case 0:
		return 0
	case 16:
		return -32768
	}
	mag := 1<<(l-1) + rng.Intn(1<<(l-1))
	if rng.Intn(2) == 0 {
		return -mag
	}
	return mag
}

func newRand(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}
