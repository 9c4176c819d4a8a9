package web

import (
	"encoding/base64"
	"net/http"

	"github.com/bytedance/sonic"
)

const flashCookieName = "basketref_flash"

const (
	flashInfo  = "info"
	flashError = "error"
)

// Flash is a one-shot notice carried across a redirect in a cookie and
// cleared on first render.
type Flash struct {
	Message string `json:"message"`
	Level   string `json:"level"`
}

func setFlash(w http.ResponseWriter, level, message string) {
	payload, err := sonic.Marshal(Flash{Message: message, Level: level})
	if err != nil {
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     flashCookieName,
		Value:    base64.URLEncoding.EncodeToString(payload),
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

// popFlash reads and clears the flash cookie. A malformed cookie is dropped
// silently.
func popFlash(w http.ResponseWriter, r *http.Request) *Flash {
	cookie, err := r.Cookie(flashCookieName)
	if err != nil || cookie.Value == "" {
		return nil
	}

	http.SetCookie(w, &http.Cookie{
		Name:     flashCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	payload, err := base64.URLEncoding.DecodeString(cookie.Value)
	if err != nil {
		return nil
	}

	var flash Flash
	if err := sonic.Unmarshal(payload, &flash); err != nil {
		return nil
	}
	if flash.Message == "" {
		return nil
	}
	return &flash
}
