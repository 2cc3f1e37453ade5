package types

// DataResponse is the success envelope.
type DataResponse struct {
	Data any `json:"data"`
}

// MessageResponse is the envelope for errors and for deletes.
type MessageResponse struct {
	Msg string `json:"msg" example:"planet 3 deleted"`
}
