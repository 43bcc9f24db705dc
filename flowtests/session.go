package flowtests

// Session holds the state accumulated across the onboarding flow. Each field
// is written by exactly one step and read only by later steps; a zero value
// means the writing step has not run. The session lives for a single run and
// is never persisted.
type Session struct {
	ReservationID       string
	ReservationPassword string
	Token               string
	CreatedDID          string
}
