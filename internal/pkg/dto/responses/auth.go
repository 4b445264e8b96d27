package responses

type LoginUser struct {
	Token string `json:"token"`
}
