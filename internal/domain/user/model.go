package user

// Principal is the authenticated caller. ParticipantID is the token subject.
type Principal struct {
	ParticipantID string
	DisplayName   string
}
