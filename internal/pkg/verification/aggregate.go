package verification

// Aggregate reduces the three document statuses to the vehicle's overall status.
// Any rejection wins, all three approved means approved, anything else is still
// under review.
func Aggregate(ownership, insurance, inspection Status) Status {
	if ownership == StatusRejected || insurance == StatusRejected || inspection == StatusRejected {
		return StatusRejected
	}
	if ownership == StatusApproved && insurance == StatusApproved && inspection == StatusApproved {
		return StatusApproved
	}
	return StatusUnderReview
}
