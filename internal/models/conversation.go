package models

import "time"

// Mode selects the audience of a session.
type Mode string

const (
	ModeHR        Mode = "hr"
	ModeCandidate Mode = "candidate"
)

func (m Mode) Valid() bool {
	return m == ModeHR || m == ModeCandidate
}

// Scheme returns the decision thresholds used for this audience.
func (m Mode) Scheme() ThresholdScheme {
	if m == ModeCandidate {
		return SchemeCandidate
	}
	return SchemeHR
}

const SpeakerUser = "You"

// AssistantSpeaker is the label used for answers in the history.
func (m Mode) AssistantSpeaker() string {
	if m == ModeCandidate {
		return "Career Advisor"
	}
	return "Bot"
}

type Message struct {
	Speaker   string    `json:"speaker"`
	Text      string    `json:"text"`
	IsError   bool      `json:"is_error,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}
