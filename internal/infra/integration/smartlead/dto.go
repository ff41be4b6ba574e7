package smartlead

import "fmt"

// APIError carrega a resposta crua do Smartlead quando a API devolve
// status fora da faixa 2xx.
type APIError struct {
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("smartlead api rejeitou (status %d): %s", e.StatusCode, e.Body)
}
