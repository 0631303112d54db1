package requests

type EvaluateNavigation struct {
	CurrentView string `json:"current_view" validate:"required"`
}
