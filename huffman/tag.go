package huffman

import (
	"github.com/wippyai/huffdual/errors"
)

// MaxCodeLength is the longest code any tag allows.
const MaxCodeLength = 16

// Tag is the parameter set of a table family.
type Tag struct {
	Name               string
	MaxCodesCount      int
	MaxCodeValue       int
	SupportsFullDecode bool
	HasDNGBugFlag      bool
}

var (
	// Baseline describes lossless JPEG / DNG difference tables.
	Baseline = Tag{
		Name:               "baseline",
		MaxCodesCount:      162,
		MaxCodeValue:       16,
		SupportsFullDecode: true,
		HasDNGBugFlag:      true,
	}

	// Symbol8 describes tables over arbitrary byte symbols.
	Symbol8 = Tag{
		Name:          "symbol8",
		MaxCodesCount: 256,
		MaxCodeValue:  255,
	}
)

// Tags returns every known tag.
func Tags() []Tag {
	return []Tag{Baseline, Symbol8}
}

// ParseTag maps a tag name to its tag.
func ParseTag(name string) (Tag, error) {
	for _, t := range Tags() {
		if t.Name == name {
			return t, nil
		}
	}
	return Tag{}, errors.InvalidInput(errors.PhaseConfig, "unknown table tag "+name)
}

// FlagBytes is the number of bytes following the code values.
func (t Tag) FlagBytes() int {
	if t.HasDNGBugFlag {
		return 2
	}
	return 1
}

// MinSize is the wire size of a definition with nCodes codes.
func (t Tag) MinSize(nCodes int) int {
	return MaxCodeLength + nCodes + t.FlagBytes()
}

func (t Tag) String() string {
	return t.Name
}
