package fzlog

// layoutKey selects one of the four token layouts: schema version
// crossed with problem shape.
type layoutKey struct {
	old bool
	opt bool
}

// layout holds the token positions of the extracted fields within a
// normalized solution-report line. policy and obj are -1 for
// satisfaction layouts, which carry no such tokens.
type layout struct {
	count  int
	time   int
	nodes  int
	policy int
	obj    int
}

// layouts maps schema version and problem shape to token positions.
// Positions are counted on the whitespace-split line after 's' stripping,
// e.g. for the old optimization layout:
//
//	%  5  Solution,  MINIMIZE  obj  =  1,000,  Reolution  12.5,  340  Node
//	0  1  2          3         4    5  6       7          8      9    10
var layouts = map[layoutKey]layout{
	{old: true, opt: true}:   {count: 1, time: 8, nodes: 9, policy: 3, obj: 6},
	{old: true, opt: false}:  {count: 1, time: 4, nodes: 5, policy: -1, obj: -1},
	{old: false, opt: true}:  {count: 2, time: 10, nodes: 11, policy: 4, obj: 7},
	{old: false, opt: false}: {count: 2, time: 6, nodes: 7, policy: -1, obj: -1},
}

// buildTimeIndex is the position of the elapsed-time token in a build
// marker line, shared by both schema versions.
const buildTimeIndex = 8
