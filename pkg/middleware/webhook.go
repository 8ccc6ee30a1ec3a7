package middleware

import (
	"bytes"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"io"
	"net/http"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/ads-ops-api/pkg/apiErrors"
)

const (
	HeaderSignature = "X-Signature"
	signaturePrefix = "sha256="
	maxWebhookBody  = 1 << 20
)

// WebhookSignature valida o HMAC-SHA256 do corpo bruto no header X-Signature (sha256=<hex>).
// Sem segredo configurado todas as entregas são recusadas.
func WebhookSignature(secret string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			body, err := io.ReadAll(io.LimitReader(r.Body, maxWebhookBody))
			if err != nil {
				apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Erro ao ler corpo da requisição", nil)
				return
			}

			if secret == "" || !ValidSignature(secret, body, r.Header.Get(HeaderSignature)) {
				logrus.WithField("path", r.URL.Path).Warn("Webhook com assinatura inválida")
				apiErrors.WriteError(w, apiErrors.ErrInvalidSignature, "Assinatura inválida", nil)
				return
			}

			r.Body = io.NopCloser(bytes.NewReader(body))
			next.ServeHTTP(w, r)
		})
	}
}

// Sign devolve o valor do header X-Signature para o corpo
func Sign(secret string, body []byte) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write(body)
	return signaturePrefix + hex.EncodeToString(mac.Sum(nil))
}

func ValidSignature(secret string, body []byte, header string) bool {
	if !strings.HasPrefix(header, signaturePrefix) {
		return false
	}
	got, err := hex.DecodeString(strings.TrimPrefix(header, signaturePrefix))
	if err != nil {
		return false
	}

	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write(body)
	return hmac.Equal(got, mac.Sum(nil))
}
