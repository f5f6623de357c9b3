package domain

// AccessTokenResponse é a resposta da troca de refresh token por access token
type AccessTokenResponse struct {
	BaseResponse
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	ExpireIn     int64  `json:"expire_in"` // segundos de validade
}
