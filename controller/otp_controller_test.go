package controller

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/trustkeyper/Backend/entity"
	"github.com/trustkeyper/Backend/pkg/logger"
	"github.com/trustkeyper/Backend/service"
	"github.com/trustkeyper/Backend/validator"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubOTPService implements service.OTPService with canned results
type stubOTPService struct {
	sendErr    error
	verifyErr  error
	sentTo     []string
	verifyCall [][2]string
}

func (s *stubOTPService) SendOTP(email string) error {
	s.sentTo = append(s.sentTo, email)
	return s.sendErr
}

func (s *stubOTPService) VerifyOTP(email, code string) error {
	s.verifyCall = append(s.verifyCall, [2]string{email, code})
	return s.verifyErr
}

func (s *stubOTPService) CleanupExpiredOTPs() error { return nil }

func testLogger(t *testing.T) *logger.Logger {
	log, err := logger.New("debug", "development")
	require.NoError(t, err)
	return log
}

func doJSON(t *testing.T, handler echo.HandlerFunc, path, body string) (*httptest.ResponseRecorder, entity.APIResponse) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	ctx := e.NewContext(req, rec)

	require.NoError(t, handler(ctx))

	var resp entity.APIResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	return rec, resp
}

func TestOTPController_SendOTP_Success(t *testing.T) {
	svc := &stubOTPService{}
	c := NewOTPController(svc, validator.New(), testLogger(t))

	rec, resp := doJSON(t, c.SendOTP, "/send-otp", `{"email":"a@x.com"}`)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, resp.Success)
	assert.Equal(t, "OTP sent", resp.Message)
	assert.Equal(t, []string{"a@x.com"}, svc.sentTo)
}

func TestOTPController_SendOTP_TransportFailure(t *testing.T) {
	svc := &stubOTPService{sendErr: errors.New("failed to send OTP email: smtp auth failed")}
	c := NewOTPController(svc, validator.New(), testLogger(t))

	rec, resp := doJSON(t, c.SendOTP, "/send-otp", `{"email":"a@x.com"}`)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.False(t, resp.Success)
	assert.Equal(t, "Failed to send OTP", resp.Message)
	assert.Equal(t, "mail transport error", resp.Error)
	// Raw transport detail is never echoed back to the client
	assert.NotContains(t, resp.Error, "smtp")
}

func TestOTPController_SendOTP_InvalidEmail(t *testing.T) {
	svc := &stubOTPService{}
	c := NewOTPController(svc, validator.New(), testLogger(t))

	rec, resp := doJSON(t, c.SendOTP, "/send-otp", `{"email":"not-an-email"}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.False(t, resp.Success)
	assert.Empty(t, svc.sentTo)
}

func TestOTPController_SendOTP_MalformedBody(t *testing.T) {
	svc := &stubOTPService{}
	c := NewOTPController(svc, validator.New(), testLogger(t))

	rec, resp := doJSON(t, c.SendOTP, "/send-otp", `{"email":`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.False(t, resp.Success)
	assert.Equal(t, "Invalid request format", resp.Message)
}

func TestOTPController_VerifyOTP_Success(t *testing.T) {
	svc := &stubOTPService{}
	c := NewOTPController(svc, validator.New(), testLogger(t))

	rec, resp := doJSON(t, c.VerifyOTP, "/verify-otp", `{"email":"a@x.com","otp":"1234"}`)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, resp.Success)
	assert.Equal(t, "OTP verified", resp.Message)
	assert.Equal(t, [][2]string{{"a@x.com", "1234"}}, svc.verifyCall)
}

func TestOTPController_VerifyOTP_InvalidOrExpired(t *testing.T) {
	svc := &stubOTPService{verifyErr: service.ErrInvalidOTP}
	c := NewOTPController(svc, validator.New(), testLogger(t))

	rec, resp := doJSON(t, c.VerifyOTP, "/verify-otp", `{"email":"a@x.com","otp":"1234"}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.False(t, resp.Success)
	assert.Equal(t, "Invalid or expired OTP", resp.Message)
}

func TestOTPController_VerifyOTP_StoreError(t *testing.T) {
	svc := &stubOTPService{verifyErr: errors.New("failed to verify OTP: redis down")}
	c := NewOTPController(svc, validator.New(), testLogger(t))

	rec, resp := doJSON(t, c.VerifyOTP, "/verify-otp", `{"email":"a@x.com","otp":"1234"}`)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.False(t, resp.Success)
	assert.NotContains(t, resp.Error, "redis")
}

func TestOTPController_VerifyOTP_BadCodeShape(t *testing.T) {
	svc := &stubOTPService{}
	c := NewOTPController(svc, validator.New(), testLogger(t))

	rec, resp := doJSON(t, c.VerifyOTP, "/verify-otp", `{"email":"a@x.com","otp":"12"}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.False(t, resp.Success)
	assert.Empty(t, svc.verifyCall)
}
