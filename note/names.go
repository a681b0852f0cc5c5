package note

// All 35 letter and accidental combinations.
var (
	ADoubleFlat  = MustNew('A', DoubleFlat)
	AFlat        = MustNew('A', Flat)
	A            = MustNew('A', Natural)
	ASharp       = MustNew('A', Sharp)
	ADoubleSharp = MustNew('A', DoubleSharp)

	BDoubleFlat  = MustNew('B', DoubleFlat)
	BFlat        = MustNew('B', Flat)
	B            = MustNew('B', Natural)
	BSharp       = MustNew('B', Sharp)
	BDoubleSharp = MustNew('B', DoubleSharp)

	CDoubleFlat  = MustNew('C', DoubleFlat)
	CFlat        = MustNew('C', Flat)
	C            = MustNew('C', Natural)
	CSharp       = MustNew('C', Sharp)
	CDoubleSharp = MustNew('C', DoubleSharp)

	DDoubleFlat  = MustNew('D', DoubleFlat)
	DFlat        = MustNew('D', Flat)
	D            = MustNew('D', Natural)
	DSharp       = MustNew('D', Sharp)
	DDoubleSharp = MustNew('D', DoubleSharp)

	EDoubleFlat  = MustNew('E', DoubleFlat)
	EFlat        = MustNew('E', Flat)
	E            = MustNew('E', Natural)
	ESharp       = MustNew('E', Sharp)
	EDoubleSharp = MustNew('E', DoubleSharp)

	FDoubleFlat  = MustNew('F', DoubleFlat)
	FFlat        = MustNew('F', Flat)
	F            = MustNew('F', Natural)
	FSharp       = MustNew('F', Sharp)
	FDoubleSharp = MustNew('F', DoubleSharp)

	GDoubleFlat  = MustNew('G', DoubleFlat)
	GFlat        = MustNew('G', Flat)
	G            = MustNew('G', Natural)
	GSharp       = MustNew('G', Sharp)
	GDoubleSharp = MustNew('G', DoubleSharp)
)
