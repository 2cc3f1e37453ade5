package types

type Starship struct {
	ID         int64  `json:"id" example:"1"`
	Model      string `json:"model" example:"T-65 X-wing"`
	Passengers int    `json:"passengers" example:"0"`
}

type CreateStarshipRequest struct {
	Model      *string `json:"model" validate:"required,max=50" example:"T-65 X-wing"`
	Passengers *int    `json:"passengers" validate:"required,min=0,max=2147483647" example:"0"`
}

type UpdateStarshipRequest struct {
	Model      *string `json:"model,omitempty" validate:"omitempty,max=50"`
	Passengers *int    `json:"passengers,omitempty" validate:"omitempty,min=0,max=2147483647"`
}
