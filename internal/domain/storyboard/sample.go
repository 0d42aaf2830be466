package storyboard

// sampleBase holds the values every seeded case starts from.
var sampleBase = RawInput{
	FieldNFTID:      Present("#721-demo"),
	FieldReserve:    Present("2.5"),
	FieldCollateral: Present("100"),
	FieldCommit:     Present("30"),
	FieldReveal:     Present("25"),
	FieldFinalize:   Present("15"),
	FieldBidders:    Present("4"),
}

// sampleOverrides adjusts the seeded values per variant id.
var sampleOverrides = map[string]RawInput{
	"overcollateralized": {FieldCollateral: Present("150")},
	"aztec":              {FieldCommit: Present("20")},
}
