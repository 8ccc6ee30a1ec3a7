package metadomain

import "fmt"

// ErrorResponse representa a estrutura de erro da API do Meta
type ErrorResponse struct {
	Error ErrorDetails `json:"error"`
}

// ErrorDetails contém os detalhes de erro da API do Meta
type ErrorDetails struct {
	Message      string `json:"message"`
	Type         string `json:"type"`
	Code         int    `json:"code"`
	ErrorSubcode int    `json:"error_subcode,omitempty"`
	UserMessage  string `json:"error_user_msg,omitempty"`
	FBTraceID    string `json:"fbtrace_id"`
}

func (e ErrorDetails) String() string {
	msg := e.Message
	if e.UserMessage != "" {
		msg = e.UserMessage
	}
	return fmt.Sprintf("meta error %d/%d: %s", e.Code, e.ErrorSubcode, msg)
}

// IsTokenExpired verifica se o erro é de token expirado
func (e *ErrorResponse) IsTokenExpired() bool {
	// O código 190 representa "token expirado" nas respostas da API do Meta
	// Possíveis subcódigos relacionados a problemas de token: 460, 463, 467
	return e.Error.Code == 190 ||
		(e.Error.Type == "OAuthException" && (e.Error.ErrorSubcode == 460 || e.Error.ErrorSubcode == 463 || e.Error.ErrorSubcode == 467))
}

// IsRateLimited cobre os limites de aplicação, de conta e de anúncios
func (e *ErrorResponse) IsRateLimited() bool {
	switch e.Error.Code {
	case 4, 17, 32, 613, 80000, 80003, 80004:
		return true
	}
	return false
}

// IsInvalidParameter indica requisição rejeitada por parâmetro inválido
func (e *ErrorResponse) IsInvalidParameter() bool {
	return e.Error.Code == 100
}
