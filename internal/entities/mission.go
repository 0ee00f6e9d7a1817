package entities

// Mission statuses
const (
	MissionPending    = "pending"
	MissionInProgress = "in_progress"
	MissionCompleted  = "completed"
	MissionFailed     = "failed"
)

// MissionStatuses lists the valid status values
var MissionStatuses = []string{MissionPending, MissionInProgress, MissionCompleted, MissionFailed}

// Mission difficulties
const (
	DifficultyEasy      = "easy"
	DifficultyMedium    = "medium"
	DifficultyHard      = "hard"
	DifficultyLegendary = "legendary"
)

// MissionDifficulties lists the valid difficulty values
var MissionDifficulties = []string{DifficultyEasy, DifficultyMedium, DifficultyHard, DifficultyLegendary}

// Mission is an admin-defined quest. AssignedTo holds a profile ID or is
// empty; unassigning always resets the status to pending.
type Mission struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Status      string `json:"status"`
	Difficulty  string `json:"difficulty"`
	AssignedTo  string `json:"assigned_to,omitempty"`
	RewardXP    int32  `json:"reward_xp"`
	RewardGold  int32  `json:"reward_gold"`
	CreatedAt   int64  `json:"created_at"`
	UpdatedAt   int64  `json:"updated_at"`
}
