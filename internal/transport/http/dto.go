package httptransport

import "github.com/mhoo999/mail-maker/internal/domains"

type LoginData struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type GenerateRequest struct {
	Blocks domains.Blocks          `json:"blocks"`
	Layout *domains.LayoutSettings `json:"layout,omitempty"`
}

type ParseResponse struct {
	Blocks domains.Blocks `json:"blocks"`
	Count  int            `json:"count"`
}

type BlocksResponse struct {
	Blocks domains.Blocks `json:"blocks"`
}
