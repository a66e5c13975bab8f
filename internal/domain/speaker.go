package domain

// Speaker describes a person presenting at an event.
type Speaker struct {
	Name  string `json:"name" validate:"required"`
	Bio   string `json:"bio"`
	Topic string `json:"topic"`
}

// NewSpeaker creates a Speaker, returning an error if the name is empty.
func NewSpeaker(name, bio, topic string) (Speaker, error) {
	s := Speaker{Name: name, Bio: bio, Topic: topic}
	if err := s.Validate(); err != nil {
		return Speaker{}, err
	}
	return s, nil
}

// Validate checks if the Speaker has valid data.
func (s Speaker) Validate() error {
	return validateStruct(s)
}
