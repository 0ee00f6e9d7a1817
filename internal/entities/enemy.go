package entities

// Enemy is an admin-managed opponent. The battle roster and the broadcast
// payload reference enemies by identity but never own them.
type Enemy struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Level       int32  `json:"level"`
	Description string `json:"description"`
	CurrentHP   int32  `json:"current_hp"`
	TotalHP     int32  `json:"total_hp"`
	IsBoss      bool   `json:"is_boss"`
	ImageURL    string `json:"image_url"`
	Defense     *int32 `json:"defense,omitempty"`
}

// NPC is an admin-managed non-player character
type NPC struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	ImageURL    string `json:"image_url"`
}
