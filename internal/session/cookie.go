package session

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"errors"
	"net/http"
	"strings"
)

// CookieName is the browser cookie carrying the signed session ID.
const CookieName = "fundview_session"

// ErrBadSignature is returned when a cookie value fails verification.
var ErrBadSignature = errors.New("session: bad cookie signature")

// Codec signs and verifies session IDs for cookie transport. The secret
// comes from deployment configuration and is never baked into the binary.
type Codec struct {
	secret []byte
}

// NewCodec creates a codec from the configured session secret.
func NewCodec(secret string) *Codec {
	return &Codec{secret: []byte(secret)}
}

// Encode returns "id.signature" with a base64url HMAC-SHA256 signature.
func (c *Codec) Encode(id string) string {
	return id + "." + c.sign(id)
}

// Decode verifies a cookie value and returns the embedded session ID.
func (c *Codec) Decode(value string) (string, error) {
	id, sig, ok := strings.Cut(value, ".")
	if !ok {
		return "", ErrBadSignature
	}
	if !hmac.Equal([]byte(sig), []byte(c.sign(id))) {
		return "", ErrBadSignature
	}
	return id, nil
}

func (c *Codec) sign(id string) string {
	mac := hmac.New(sha256.New, c.secret)
	mac.Write([]byte(id))
	return base64.RawURLEncoding.EncodeToString(mac.Sum(nil))
}

// SetCookie writes the signed session cookie on a response.
func (c *Codec) SetCookie(w http.ResponseWriter, id string) {
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    c.Encode(id),
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

// ReadCookie extracts and verifies the session ID from a request. An
// absent or invalid cookie yields ok=false.
func (c *Codec) ReadCookie(r *http.Request) (string, bool) {
	cookie, err := r.Cookie(CookieName)
	if err != nil {
		return "", false
	}
	id, err := c.Decode(cookie.Value)
	if err != nil {
		return "", false
	}
	return id, true
}
