package render

const (
	// Quote states
	StateDraft     = "draft"
	StateSubmitted = "submitted"
	StateAccepted  = "accepted"
	StateDeclined  = "declined"
	StateExpired   = "expired"

	// Display values
	MissingValue = "<none>"
	NAValue      = "n/a"
	Blank        = ""
)
