package postlist

import "time"

type PostQueryOptions struct {
	UserID               int
	UserIDIn             []int
	ApprovedOnly         bool
	CreatedAtLessThan    time.Time
	CreatedAtGreaterThan time.Time
	Offset               int
	Limit                int
}
