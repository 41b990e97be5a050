package entity

import "time"

// BookingSelection is the finalized multi-step funnel payload: the tier,
// date range, guest counts and chosen services a visitor picked before
// checkout. It lives server-side (Redis) under an opaque draft token
// until checkout completes or the draft expires.
type BookingSelection struct {
	RoomClassID uint      `json:"room_class_id"`
	CheckIn     time.Time `json:"check_in"`
	CheckOut    time.Time `json:"check_out"`
	Adults      int       `json:"adults"`
	Children    int       `json:"children"`
	ServiceIDs  []uint    `json:"service_ids"`
}
