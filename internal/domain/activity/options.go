package activity

// ListActivityOptions provides filtering options for listing activity.
type ListActivityOptions struct {
	CaseID       *string
	ActivityType *ActivityType
	Limit        int
}
