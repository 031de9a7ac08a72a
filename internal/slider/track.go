package slider

// Track is the rendered bar a slider handle moves along, in surface
// coordinates. For horizontal sliders Origin and Length are the bar's left
// edge and width; for vertical sliders its top edge and height.
type Track struct {
	Origin       float64 `json:"origin"`
	Length       float64 `json:"length"`
	HandleLength float64 `json:"handle_length"`
}

// Validate checks that the track has a finite origin and a positive finite
// length.
func (t Track) Validate() error {
	return validateTrack(t.Origin, t.Length)
}

// Fraction converts a raw pointer coordinate into a fraction of the range,
// honouring the config's orientation.
func (t Track) Fraction(raw float64, cfg Config) (float64, error) {
	return ClampPosition(raw, t.Origin, t.Length, cfg.Inverted())
}

// HandleOffset returns the translation of the handle from its resting
// position for value.
func (t Track) HandleOffset(value float64, cfg Config) (float64, error) {
	pct, err := NormalizedPercentage(value, cfg)
	if err != nil {
		return 0, err
	}

	offset := pct*(t.Length-t.HandleLength) - 1
	switch {
	case cfg.Vertical:
		offset = -offset + t.Length - t.HandleLength + 1
	case cfg.RTL:
		offset = -offset
	}
	return offset, nil
}

// Progress returns the share of the track, in percent, covered by the active
// segment for value.
func (t Track) Progress(value float64, cfg Config) (float64, error) {
	pct, err := NormalizedPercentage(value, cfg)
	if err != nil {
		return 0, err
	}
	return pct * 100, nil
}
