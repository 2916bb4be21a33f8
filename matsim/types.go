package matsim

// RawNode is one <node> element. x/y are opaque coordinate strings.
type RawNode struct {
	ID string
	X  string
	Y  string
}

// RawLinkAttribute is one nested <attribute> of a link, in document order.
type RawLinkAttribute struct {
	Name  string
	Value string
}

// RawLink is one <link> element. Numeric fields stay unparsed strings.
type RawLink struct {
	ID         string
	FromNode   string
	ToNode     string
	Length     string
	FreeSpeed  string
	Capacity   string
	PermLanes  string
	OneWay     string
	Modes      string
	Attributes []RawLinkAttribute
}

// GlobalLinkAttributes are scenario-wide defaults from the <links> element,
// inherited by every link.
type GlobalLinkAttributes struct {
	CapPeriod          *string
	EffectiveCellSize  *float64
	EffectiveLaneWidth *float64
}

// Network is the parsed content of a network file.
type Network struct {
	Nodes   []RawNode
	Links   []RawLink
	Globals GlobalLinkAttributes
}

// RawTrip is one <trip> element. Name doubles as the car id.
type RawTrip struct {
	Name            string
	OriginNode      string
	DestinationNode string
	LinkOrigin      string
	Count           string
	StartTime       string
	Mode            string
}
