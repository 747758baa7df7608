package utils

const (
	// BookedCachePrefix prefixes cached booked-slot lists: booked:<consultant>:<date>.
	BookedCachePrefix = "booked:"
	// DraftPrefix prefixes booking drafts held in Redis.
	DraftPrefix = "bookingDraft:"
)

const (
	RoleClient     = "client"
	RoleConsultant = "consultant"
)
