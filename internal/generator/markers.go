package generator

type MarkerKind int

const (
	MarkerBound MarkerKind = iota
	MarkerLowRange
	MarkerHighRange
)

// Marker is a labelled vertical boundary drawn over the histogram.
type Marker struct {
	Label string
	Value float64
	Kind  MarkerKind
}

// Markers returns the six boundaries of p: min, low range start and end,
// high range start and end, max.
func (p Params) Markers() []Marker {
	return []Marker{
		{Label: "Min Value", Value: p.MinValue, Kind: MarkerBound},
		{Label: "Low Range Start", Value: p.LowLo, Kind: MarkerLowRange},
		{Label: "Low Range End", Value: p.LowHi, Kind: MarkerLowRange},
		{Label: "High Range Start", Value: p.HighLo, Kind: MarkerHighRange},
		{Label: "High Range End", Value: p.HighHi, Kind: MarkerHighRange},
		{Label: "Max Value", Value: p.MaxValue, Kind: MarkerBound},
	}
}
