package models

// OffHoursName is the status name shown when no slot contains the current time.
const OffHoursName = "OFF-HOURS"

// OffHoursLabel is the label paired with OffHoursName.
const OffHoursLabel = "非上課時段"

// Status is the resolver's verdict for one instant.
type Status struct {
	Name    string `json:"name"`
	Label   string `json:"label"`
	IsClass bool   `json:"isClass"`
	SlotID  string `json:"slotId,omitempty"`
}

// Display modes.
const (
	DisplayModeStatus    = "status"
	DisplayModeBroadcast = "broadcast"
)

// DisplayFrame is everything the full-screen board renders for one tick.
// Exactly one of Status and Broadcast is set, according to Mode.
type DisplayFrame struct {
	Mode      string             `json:"mode"`
	Time      string             `json:"time"`
	Date      string             `json:"date"`
	Status    *Status            `json:"status,omitempty"`
	Broadcast *BroadcastTemplate `json:"broadcast,omitempty"`
}
