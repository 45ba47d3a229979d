package model

type Building struct {
	ID         string  `json:"id"`
	Name       string  `json:"name"`
	Code       string  `json:"code"`
	TotalRooms int     `json:"total_rooms"`
	Rooms      []*Room `json:"rooms"`
}

// Room finds a room by its id ("{code}-{index}"). Returns nil when absent.
func (b *Building) Room(id string) *Room {
	for _, r := range b.Rooms {
		if r.ID == id {
			return r
		}
	}
	return nil
}
