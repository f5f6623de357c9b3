package domain

import "fmt"

// Códigos sentinela de erro retornados pela Open Platform da Shopee
const (
	ErrorCodeAuth         = "error_auth"
	ErrorCodeInvalidToken = "invalid_access_token"
	ErrorCodeParam        = "error_param"
	ErrorCodeRateLimit    = "error_rate_limit"
	ErrorCodeServer       = "error_server"
)

// BaseResponse é o envelope comum de toda resposta da API da Shopee.
// O campo Error vazio indica sucesso; qualquer outro valor é um código sentinela.
type BaseResponse struct {
	Error     string `json:"error"`
	Message   string `json:"message"`
	RequestID string `json:"request_id"`
}

// IsOK indica se a resposta não carrega código de erro
func (r *BaseResponse) IsOK() bool {
	return r.Error == ""
}

// IsAuthError indica falha de autenticação (token expirado ou inválido)
func (r *BaseResponse) IsAuthError() bool {
	return r.Error == ErrorCodeAuth || r.Error == ErrorCodeInvalidToken
}

// IsParamError indica erro de validação de parâmetros
func (r *BaseResponse) IsParamError() bool {
	return r.Error == ErrorCodeParam
}

// IsRateLimit indica que o limite de requisições foi atingido
func (r *BaseResponse) IsRateLimit() bool {
	return r.Error == ErrorCodeRateLimit
}

// AuthError é terminal para a chamada: o dispatcher já tentou renovar o
// token uma vez antes de devolvê-lo ao chamador.
type AuthError struct {
	ShopID    int64
	Code      string
	Message   string
	RequestID string
}

func (e *AuthError) Error() string {
	return fmt.Sprintf("falha de autenticação com a Shopee (shop %d, código %s): %s", e.ShopID, e.Code, e.Message)
}

// ValidationError indica parâmetros rejeitados pela API; nunca é retentado
type ValidationError struct {
	Message   string
	RequestID string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("parâmetros rejeitados pela Shopee: %s", e.Message)
}

// RateLimitError indica estouro do limite de requisições em uma chamada
type RateLimitError struct {
	Message   string
	RequestID string
}

func (e *RateLimitError) Error() string {
	return fmt.Sprintf("limite de requisições da Shopee atingido: %s", e.Message)
}

// APIError cobre os demais códigos de erro da API
type APIError struct {
	Code      string
	Message   string
	RequestID string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("erro da API da Shopee (%s): %s", e.Code, e.Message)
}
