package marquee

const (
	DirectionForward = "forward"
	DirectionReverse = "reverse"
)

// Chunk is one copy of a band stream. Decorative chunks exist only to make
// the loop seamless and must be hidden from assistive technology.
type Chunk struct {
	Text       string `json:"text"`
	Decorative bool   `json:"decorative"`
}

// Band is a horizontally looping text display. Reverse only flips the scroll
// direction; the stream is the same either way.
type Band struct {
	Text    string `json:"text"`
	Stream  string `json:"stream"`
	Reverse bool   `json:"reverse"`
}

// NewBand pads text to BandMinChars.
func NewBand(text string, reverse bool) Band {
	return Band{
		Text:    text,
		Stream:  Pad(text, BandMinChars),
		Reverse: reverse,
	}
}

// Chunks returns the two adjacent copies of the stream. The second copy is
// always decorative.
func (b Band) Chunks() []Chunk {
	return []Chunk{
		{Text: b.Stream},
		{Text: b.Stream, Decorative: true},
	}
}

// Direction returns DirectionReverse or DirectionForward.
func (b Band) Direction() string {
	if b.Reverse {
		return DirectionReverse
	}
	return DirectionForward
}

// ScrollClass is the CSS class list for the scrolling element.
func (b Band) ScrollClass() string {
	if b.Reverse {
		return "scroll rev"
	}
	return "scroll"
}

// Empty reports whether the band has nothing to scroll.
func (b Band) Empty() bool {
	return b.Stream == ""
}
