package model

type RoomType string

const (
	RoomTypeAula         RoomType = "Aula"
	RoomTypeLaboratorio  RoomType = "Laboratorio"
	RoomTypeAuditorio    RoomType = "Auditorio"
	RoomTypeEstudio      RoomType = "Sala de Estudio"
	RoomTypeConferencias RoomType = "Sala de Conferencias"
)

type Equipment struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Icon    string `json:"icon"`
	Working bool   `json:"working"`
}

// Room is constructed once at dataset load and mutated only by replacing
// its Schedule when a reservation lands.
type Room struct {
	ID          string      `json:"id"`
	Number      string      `json:"number"`
	Capacity    int         `json:"capacity"`
	Equipment   []Equipment `json:"equipment"`
	Type        RoomType    `json:"type"`
	Schedule    Schedule    `json:"schedule"`
	IsAvailable bool        `json:"is_available"`
	NextFree    string      `json:"next_free,omitempty"` // "HH:MM" hint, empty when available now
}
