package domain

import "time"

// SwipeAction is the closed set of gestures the feed can emit.
// Matching on it is exhaustive in the swipe service, so adding a new action
// is a compile-time-visible change rather than a stringly-typed one.
type SwipeAction string

const (
	ActionLike      SwipeAction = "like"
	ActionSave      SwipeAction = "save"
	ActionAddToTrip SwipeAction = "add_to_trip"
	ActionSkip      SwipeAction = "skip"
)

// Valid reports whether a is one of the known swipe actions.
func (a SwipeAction) Valid() bool {
	switch a {
	case ActionLike, ActionSave, ActionAddToTrip, ActionSkip:
		return true
	}
	return false
}

// SwipeEvent is one append-only history record: which POI, which gesture,
// when. Events are never mutated or removed. They persist as part of the
// session record so the history survives a restart.
type SwipeEvent struct {
	POIID     string      `json:"poiId"`
	Action    SwipeAction `json:"action"`
	Timestamp time.Time   `json:"timestamp"`
}
