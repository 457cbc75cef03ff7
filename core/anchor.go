package core

// Anchor names a fixed point on the screen edge that UI text hangs from.
type Anchor int

const (
	AnchorTopLeft Anchor = iota
	AnchorMiddleTop
	AnchorTopRight
	AnchorMiddleRight
	AnchorBottomRight
	AnchorMiddleBottom
	AnchorBottomLeft
	AnchorMiddleLeft
)

// Alignment controls how text spreads out from its anchor point.
type Alignment int

const (
	AlignLeft Alignment = iota
	AlignMiddle
	AlignRight
)
