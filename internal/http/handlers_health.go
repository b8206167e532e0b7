package httpx

import "net/http"

// healthHandler answers readiness and liveness probes. It touches no
// dependencies on purpose: a healthy process answers even while Postgres
// or Redis are unreachable.
func healthHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method == http.MethodHead {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		return
	}
	WriteJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
