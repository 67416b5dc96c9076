package middleware

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/Strob0t/timerbridge/internal/logger"
)

// DeliveryHeader is GitHub's unique ID for a webhook delivery.
const DeliveryHeader = "X-GitHub-Delivery"

const headerRequestID = "X-Request-ID"

// DeliveryID stores the GitHub delivery ID (or a generated UUID when the
// header is absent) in the request context and echoes it as X-Request-ID.
func DeliveryID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(DeliveryHeader)
		if id == "" {
			id = uuid.NewString()
		}

		ctx := logger.WithDeliveryID(r.Context(), id)
		w.Header().Set(headerRequestID, id)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
