package pitch

// standardRows is twelve-tone equal temperament tuned to A4 = 440Hz, rounded
// to the hundredth of a hertz. Each row groups the enharmonic spellings of one
// frequency; a spelling's octave is the octave of the row it sits in.
var standardRows = []Row{
	{"B#0/C0/Dbb0", 1635},
	{"C#0/Db0", 1732},
	{"C##0/D0/Ebb0", 1835},
	{"D#0/Eb0/Fbb0", 1945},
	{"D##0/E0/Fb0", 2060},
	{"E#0/F0/Gbb0", 2183},
	{"E##0/F#0/Gb0", 2312},
	{"F##0/G0/Abb0", 2450},
	{"G#0/Ab0", 2596},
	{"G##0/A0/Bbb0", 2750},
	{"A#0/Bb0/Cbb0", 2914},
	{"A##0/B0/Cb0", 3087},
	{"B#1/C1/Dbb1", 3270},
	{"C#1/Db1", 3465},
	{"C##1/D1/Ebb1", 3671},
	{"D#1/Eb1/Fbb1", 3889},
	{"D##1/E1/Fb1", 4120},
	{"E#1/F1/Gbb1", 4365},
	{"E##1/F#1/Gb1", 4625},
	{"F##1/G1/Abb1", 4900},
	{"G#1/Ab1", 5191},
	{"G##1/A1/Bbb1", 5500},
	{"A#1/Bb1/Cbb1", 5827},
	{"A##1/B1/Cb1", 6174},
	{"B#2/C2/Dbb2", 6541},
	{"C#2/Db2", 6930},
	{"C##2/D2/Ebb2", 7342},
	{"D#2/Eb2/Fbb2", 7778},
	{"D##2/E2/Fb2", 8241},
	{"E#2/F2/Gbb2", 8731},
	{"E##2/F#2/Gb2", 9250},
	{"F##2/G2/Abb2", 9800},
	{"G#2/Ab2", 10383},
	{"G##2/A2/Bbb2", 11000},
	{"A#2/Bb2/Cbb2", 11654},
	{"A##2/B2/Cb2", 12347},
	{"B#3/C3/Dbb3", 13081},
	{"C#3/Db3", 13859},
	{"C##3/D3/Ebb3", 14683},
	{"D#3/Eb3/Fbb3", 15556},
	{"D##3/E3/Fb3", 16481},
	{"E#3/F3/Gbb3", 17461},
	{"E##3/F#3/Gb3", 18500},
	{"F##3/G3/Abb3", 19600},
	{"G#3/Ab3", 20765},
	{"G##3/A3/Bbb3", 22000},
	{"A#3/Bb3/Cbb3", 23308},
	{"A##3/B3/Cb3", 24694},
	{"B#4/C4/Dbb4", 26163},
	{"C#4/Db4", 27718},
	{"C##4/D4/Ebb4", 29366},
	{"D#4/Eb4/Fbb4", 31113},
	{"D##4/E4/Fb4", 32963},
	{"E#4/F4/Gbb4", 34923},
	{"E##4/F#4/Gb4", 36999},
	{"F##4/G4/Abb4", 39200},
	{"G#4/Ab4", 41530},
	{"G##4/A4/Bbb4", 44000},
	{"A#4/Bb4/Cbb4", 46616},
	{"A##4/B4/Cb4", 49388},
	{"B#5/C5/Dbb5", 52325},
	{"C#5/Db5", 55437},
	{"C##5/D5/Ebb5", 58733},
	{"D#5/Eb5/Fbb5", 62225},
	{"D##5/E5/Fb5", 65925},
	{"E#5/F5/Gbb5", 69846},
	{"E##5/F#5/Gb5", 73999},
	{"F##5/G5/Abb5", 78399},
	{"G#5/Ab5", 83061},
	{"G##5/A5/Bbb5", 88000},
	{"A#5/Bb5/Cbb5", 93233},
	{"A##5/B5/Cb5", 98777},
	{"B#6/C6/Dbb6", 104650},
	{"C#6/Db6", 110873},
	{"C##6/D6/Ebb6", 117466},
	{"D#6/Eb6/Fbb6", 124451},
	{"D##6/E6/Fb6", 131851},
	{"E#6/F6/Gbb6", 139691},
	{"E##6/F#6/Gb6", 147998},
	{"F##6/G6/Abb6", 156798},
	{"G#6/Ab6", 166122},
	{"G##6/A6/Bbb6", 176000},
	{"A#6/Bb6/Cbb6", 186466},
	{"A##6/B6/Cb6", 197553},
	{"B#7/C7/Dbb7", 209300},
	{"C#7/Db7", 221746},
	{"C##7/D7/Ebb7", 234932},
	{"D#7/Eb7/Fbb7", 248902},
	{"D##7/E7/Fb7", 263702},
	{"E#7/F7/Gbb7", 279383},
	{"E##7/F#7/Gb7", 295996},
	{"F##7/G7/Abb7", 313596},
	{"G#7/Ab7", 332244},
	{"G##7/A7/Bbb7", 352000},
	{"A#7/Bb7/Cbb7", 372931},
	{"A##7/B7/Cb7", 395107},
	{"B#8/C8/Dbb8", 418601},
	{"C#8/Db8", 443492},
	{"C##8/D8/Ebb8", 469863},
	{"D#8/Eb8/Fbb8", 497803},
	{"D##8/E8/Fb8", 527404},
	{"E#8/F8/Gbb8", 558765},
	{"E##8/F#8/Gb8", 591991},
	{"F##8/G8/Abb8", 627193},
	{"G#8/Ab8", 664488},
	{"G##8/A8/Bbb8", 704000},
	{"A#8/Bb8/Cbb8", 745862},
	{"A##8/B8/Cb8", 790213},
}
