package requests

type CreateHealthData struct {
	DataType   string  `json:"data_type" validate:"required,max=50"`
	Value      float64 `json:"value" validate:"required"`
	Unit       string  `json:"unit,omitempty" validate:"omitempty,max=20"`
	Notes      string  `json:"notes,omitempty"`
	RecordedAt string  `json:"recorded_at,omitempty"`
}

type CreateHealthGoal struct {
	DataType    string  `json:"data_type" validate:"required,max=50"`
	TargetValue float64 `json:"target_value" validate:"required"`
	Unit        string  `json:"unit,omitempty" validate:"omitempty,max=20"`
	Deadline    string  `json:"deadline,omitempty"`
}

type UpdateHealthData struct {
	Value      *float64 `json:"value,omitempty"`
	Unit       *string  `json:"unit,omitempty" validate:"omitempty,max=20"`
	Notes      *string  `json:"notes,omitempty"`
	RecordedAt *string  `json:"recorded_at,omitempty"`
}

type UpdateHealthGoal struct {
	TargetValue *float64 `json:"target_value,omitempty"`
	Unit        *string  `json:"unit,omitempty" validate:"omitempty,max=20"`
	Deadline    *string  `json:"deadline,omitempty"`
}

type HealthDataFilter struct {
	DataType  string
	StartDate string
	EndDate   string
}
