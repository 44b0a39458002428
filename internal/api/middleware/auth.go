package middleware

import (
	"context"
	"net/http"
	"strconv"

	"github.com/m04kA/SMC-WorkshopService/internal/api/handlers"
)

type contextKey string

const customerIDKey contextKey = "customerID"

// HeaderCustomerID заголовок с ID клиента, проставляется API gateway
const HeaderCustomerID = "X-Customer-ID"

const msgMissingCustomerID = "отсутствует заголовок X-Customer-ID"

// Auth извлекает ID клиента из заголовка и кладет его в контекст запроса
// Запросы без корректного заголовка отклоняются с 401
func Auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		customerIDStr := r.Header.Get(HeaderCustomerID)
		if customerIDStr == "" {
			handlers.RespondUnauthorized(w, msgMissingCustomerID)
			return
		}

		customerID, err := strconv.ParseInt(customerIDStr, 10, 64)
		if err != nil || customerID <= 0 {
			handlers.RespondUnauthorized(w, msgMissingCustomerID)
			return
		}

		ctx := context.WithValue(r.Context(), customerIDKey, customerID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// GetCustomerID возвращает ID клиента из контекста запроса
func GetCustomerID(ctx context.Context) (int64, bool) {
	customerID, ok := ctx.Value(customerIDKey).(int64)
	return customerID, ok
}
