package appointment

// ===============================
// Appointment Status
// ===============================

type Status string

const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusCompleted Status = "completed"
	StatusCanceled  Status = "canceled"
)

// Initial is the status every appointment starts in. Nothing else may
// set the status at creation time.
func Initial() Status {
	return StatusPending
}

// Known reports whether s belongs to the status taxonomy. Updates
// accept any known status; there is no transition table, so moves like
// completed -> pending are allowed. Transitions only happen through
// explicit owner or admin updates, never automatically.
func (s Status) Known() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusCompleted, StatusCanceled:
		return true
	}
	return false
}
