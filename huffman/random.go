package huffman

import "math/rand"

// RandomDefinition generates a valid definition for tag. Roughly a third of
// the lengths are left empty so that both short and long codes show up.
func RandomDefinition(rng *rand.Rand, tag Tag) *Definition {
	d := &Definition{Tag: tag}
	avail, budget := 2, 1+rng.Intn(tag.MaxCodesCount)
	for l := 1; l <= MaxCodeLength && budget > 0; l++ {
		limit := min(avail, budget, 255)
		n := 0
		if rng.Intn(3) > 0 {
			n = rng.Intn(limit + 1)
		}
		d.Counts[l-1] = uint8(n)
		budget -= n
		avail = (avail - n) * 2
	}
	for i := 0; i < d.NumCodes(); i++ {
		d.Values = append(d.Values, uint8(rng.Intn(tag.MaxCodeValue+1)))
	}
	d.FullDecode = tag.SupportsFullDecode && rng.Intn(2) == 0
	d.FixDNGBug16 = tag.HasDNGBugFlag && rng.Intn(2) == 0
	return d
}
