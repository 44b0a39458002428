package create_booking

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-WorkshopService/internal/api/handlers"
	createBooking "github.com/m04kA/SMC-WorkshopService/internal/usecase/create_booking"
)

type noopLogger struct{}

func (noopLogger) Info(format string, v ...interface{})  {}
func (noopLogger) Warn(format string, v ...interface{})  {}
func (noopLogger) Error(format string, v ...interface{}) {}

type fakeUseCase struct {
	resp *createBooking.Response
	err  error
}

func (f *fakeUseCase) Execute(ctx context.Context, req *createBooking.Request) (*createBooking.Response, error) {
	return f.resp, f.err
}

const validBody = `{"customerId":7,"serviceId":1,"bookingDate":"2024-04-03","startTime":"10:00"}`

func doRequest(uc CreateBookingUseCase, body string) *httptest.ResponseRecorder {
	h := NewHandler(uc, noopLogger{})
	req := httptest.NewRequest(http.MethodPost, "/api/v1/bookings", strings.NewReader(body))
	rec := httptest.NewRecorder()
	h.Handle(rec, req)
	return rec
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) handlers.ErrorResponse {
	t.Helper()
	var resp handlers.ErrorResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	return resp
}

func TestHandle_PastDate(t *testing.T) {
	rec := doRequest(&fakeUseCase{err: createBooking.ErrPastDate}, validBody)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, handlers.CodePastDate, decodeError(t, rec).Code)
}

func TestHandle_SlotUnavailable(t *testing.T) {
	rec := doRequest(&fakeUseCase{err: createBooking.ErrSlotUnavailable}, validBody)

	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, handlers.CodeSlotUnavailable, decodeError(t, rec).Code)
}

func TestHandle_ServiceNotFound(t *testing.T) {
	rec := doRequest(&fakeUseCase{err: createBooking.ErrServiceNotFound}, validBody)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, handlers.CodeServiceNotFound, decodeError(t, rec).Code)
}

func TestHandle_InvalidDate(t *testing.T) {
	body := `{"customerId":7,"serviceId":1,"bookingDate":"03-04-2024","startTime":"10:00"}`
	rec := doRequest(&fakeUseCase{}, body)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, handlers.CodeInvalidDate, decodeError(t, rec).Code)
}

func TestHandle_InvalidBody(t *testing.T) {
	rec := doRequest(&fakeUseCase{}, `{not json`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, handlers.CodeInvalidRequest, decodeError(t, rec).Code)
}

func TestHandle_InternalError(t *testing.T) {
	rec := doRequest(&fakeUseCase{err: assert.AnError}, validBody)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, handlers.CodeInternalError, decodeError(t, rec).Code)
}
