package entities

// Item belongs to exactly one profile. IDs are random integers assigned at
// creation, matching the original client's behavior.
type Item struct {
	ID          int64  `json:"id"`
	ProfileID   string `json:"profile_id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Quantity    int32  `json:"quantity"`
	Value       int32  `json:"value"`
	ImageURL    string `json:"image_url"`
}
