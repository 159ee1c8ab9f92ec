package responses

type RegisterUser struct {
	Token string `json:"token"`
}

type LoginUser struct {
	Token string   `json:"token"`
	User  *Account `json:"user"`
}
