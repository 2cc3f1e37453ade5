package types

type Character struct {
	ID     int64  `json:"id" example:"1"`
	Name   string `json:"name" example:"Leia Organa"`
	Height int    `json:"height" example:"150"`
	Gender string `json:"gender" example:"female"`
}

type CreateCharacterRequest struct {
	Name   *string `json:"name" validate:"required,max=50" example:"Leia Organa"`
	Height *int    `json:"height" validate:"required,min=0,max=2147483647" example:"150"`
	Gender *string `json:"gender" validate:"required,max=30" example:"female"`
}

type UpdateCharacterRequest struct {
	Name   *string `json:"name,omitempty" validate:"omitempty,max=50"`
	Height *int    `json:"height,omitempty" validate:"omitempty,min=0,max=2147483647"`
	Gender *string `json:"gender,omitempty" validate:"omitempty,max=30"`
}
