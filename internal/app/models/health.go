package models

type HealthData struct {
	ID         int     `json:"id"`
	UserID     int     `json:"user_id"`
	DataType   string  `json:"data_type"`
	Value      float64 `json:"value"`
	Unit       string  `json:"unit,omitempty"`
	Notes      string  `json:"notes,omitempty"`
	RecordedAt string  `json:"recorded_at,omitempty"`
	CreatedAt  string  `json:"created_at,omitempty"`
}

type HealthGoal struct {
	ID           int     `json:"id"`
	UserID       int     `json:"user_id"`
	DataType     string  `json:"data_type"`
	TargetValue  float64 `json:"target_value"`
	CurrentValue float64 `json:"current_value,omitempty"`
	Unit         string  `json:"unit,omitempty"`
	Deadline     string  `json:"deadline,omitempty"`
	IsAchieved   bool    `json:"is_achieved"`
	CreatedAt    string  `json:"created_at,omitempty"`
	UpdatedAt    string  `json:"updated_at,omitempty"`
}
