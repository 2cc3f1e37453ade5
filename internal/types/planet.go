package types

type Planet struct {
	ID         int64  `json:"id" example:"1"`
	Name       string `json:"name" example:"Tatooine"`
	Population int64  `json:"population" example:"200000"`
}

type CreatePlanetRequest struct {
	Name       *string `json:"name" validate:"required,max=50" example:"Tatooine"`
	Population *int64  `json:"population" validate:"required,min=0" example:"200000"`
}

type UpdatePlanetRequest struct {
	Name       *string `json:"name,omitempty" validate:"omitempty,max=50"`
	Population *int64  `json:"population,omitempty" validate:"omitempty,min=0"`
}
