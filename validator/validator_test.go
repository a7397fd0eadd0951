package validator

import (
	"testing"

	"github.com/trustkeyper/Backend/entity"

	"github.com/stretchr/testify/assert"
)

func TestNew(t *testing.T) {
	v := New()

	assert.NotNil(t, v)
	assert.NotNil(t, v.validator)
}

func TestValidator_ValidateStruct_Success(t *testing.T) {
	v := New()

	req := entity.SendOTPRequest{
		Email: "user@example.com",
	}

	err := v.ValidateStruct(&req)
	assert.NoError(t, err)
}

func TestValidator_ValidateStruct_InvalidEmail(t *testing.T) {
	v := New()

	invalidEmails := []string{
		"",             // empty
		"not-an-email", // no @
		"@example.com", // missing local part
		"user@",        // missing domain
		"user @x.com",  // contains space
	}

	for _, email := range invalidEmails {
		req := entity.SendOTPRequest{Email: email}
		err := v.ValidateStruct(&req)
		assert.Error(t, err, "Email %q should be invalid", email)
		assert.Contains(t, err.Error(), "email")
	}
}

func TestValidator_ValidateVerifyOTPRequest_Success(t *testing.T) {
	v := New()

	req := entity.VerifyOTPRequest{
		Email: "user@example.com",
		OTP:   "4821",
	}

	err := v.ValidateStruct(&req)
	assert.NoError(t, err)
}

func TestValidator_ValidateVerifyOTPRequest_BadCode(t *testing.T) {
	v := New()

	cases := []struct {
		name string
		code string
	}{
		{"missing", ""},
		{"too short", "123"},
		{"too long", "12345"},
		{"not numeric", "12a4"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := entity.VerifyOTPRequest{
				Email: "user@example.com",
				OTP:   tc.code,
			}

			err := v.ValidateStruct(&req)
			assert.Error(t, err)
			assert.Contains(t, err.Error(), "otp")
		})
	}
}

func TestValidator_ValidateSubmitFormRequest(t *testing.T) {
	v := New()

	valid := entity.SubmitFormRequest{
		Name:             "Asha Rao",
		Email:            "asha@example.com",
		Phone:            "+919812345678",
		Address:          "12 MG Road, Bengaluru",
		UnitSize:         "2BHK",
		FurnishingStatus: "semi-furnished",
		ExpectedRent:     "32000",
	}
	assert.NoError(t, v.ValidateStruct(&valid))

	missingPhone := valid
	missingPhone.Phone = ""
	err := v.ValidateStruct(&missingPhone)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "phone is required")
}

func TestValidator_ValidateStruct_Nil(t *testing.T) {
	v := New()

	err := v.ValidateStruct(nil)
	assert.Error(t, err)
}
