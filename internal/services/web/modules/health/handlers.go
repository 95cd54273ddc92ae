package health

import (
	"net/http"

	"github.com/louisbranch/aicopilot/internal/services/web/platform/httpx"
)

func handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Cache-Control", "no-store")
	_ = httpx.WriteText(w, http.StatusOK, "ok")
}
