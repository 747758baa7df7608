package models

import "time"

// User is the client-side account. Only the fields booking needs live here.
type User struct {
	ID        string    `bson:"id" json:"id"`
	Name      string    `bson:"name" json:"name"`
	Email     string    `bson:"email" json:"email"`
	FreeTrial FreeTrial `bson:"freeTrial" json:"freeTrial"`
	UpdatedAt time.Time `bson:"updatedAt" json:"updatedAt"`
}

// FreeTrial records which session types already used their free 5 minutes.
type FreeTrial struct {
	VideoUsed bool `bson:"videoUsed" json:"videoUsed"`
	ChatUsed  bool `bson:"chatUsed" json:"chatUsed"`
}

// Used reports whether the trial for sessionType is consumed. Unknown types
// count as consumed.
func (f FreeTrial) Used(sessionType string) bool {
	switch sessionType {
	case SessionTypeVideo:
		return f.VideoUsed
	case SessionTypeChat:
		return f.ChatUsed
	}
	return true
}
