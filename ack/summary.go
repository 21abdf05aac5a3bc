package ack

// Summary is a snapshot of the packet for logs and tooling.
type Summary struct {
	StreamID          uint32      `yaml:"stream_id" json:"stream_id"`
	MessageID         uint32      `yaml:"message_id" json:"message_id"`
	Size              int         `yaml:"size" json:"size"`
	WarningsGenerated bool        `yaml:"warnings_generated" json:"warnings_generated"`
	ErrorsGenerated   bool        `yaml:"errors_generated" json:"errors_generated"`
	Warnings          []Indicator `yaml:"warnings,omitempty" json:"warnings,omitempty"`
	Errors            []Indicator `yaml:"errors,omitempty" json:"errors,omitempty"`
}

// Summary returns a snapshot of the packet prologue and both indicator layouts.
func (p *Packet) Summary() (Summary, error) {
	s := Summary{
		StreamID:          p.StreamID(),
		MessageID:         p.MessageID(),
		Size:              p.Len(),
		WarningsGenerated: p.WarningsGenerated(),
		ErrorsGenerated:   p.ErrorsGenerated(),
	}

	var err error
	if s.Warnings, err = p.GetWarnings(); err != nil {
		return s, err
	}
	if s.Errors, err = p.GetErrors(); err != nil {
		return s, err
	}

	return s, nil
}
