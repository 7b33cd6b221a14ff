package validators

import (
	"testing"

	"labourlink/internal/models"

	"github.com/stretchr/testify/assert"
)

func validRegisterRequest() *RegisterRequest {
	return &RegisterRequest{
		Name:     "Asha Patel",
		Email:    "asha@example.com",
		Password: "secret123",
		Role:     "employer",
	}
}

func TestValidateRegisterEmployer(t *testing.T) {
	assert.Empty(t, ValidateRegister(validRegisterRequest()))
}

func TestValidateRegisterLabourerConditionalFields(t *testing.T) {
	req := validRegisterRequest()
	req.Role = "labourer"
	errs := ValidateRegister(req)
	assert.NotEmpty(t, errs, "labourer without category and rate must fail")

	req.Category = string(models.CategoryCarpenter)
	req.HourlyRate = 150
	assert.Empty(t, ValidateRegister(req))
}

func TestValidateRegisterRejections(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*RegisterRequest)
	}{
		{"bad email", func(r *RegisterRequest) { r.Email = "not-an-email" }},
		{"short password", func(r *RegisterRequest) { r.Password = "abc" }},
		{"bad role", func(r *RegisterRequest) { r.Role = "manager" }},
		{"bad category", func(r *RegisterRequest) { r.Role = "labourer"; r.Category = "Wizard"; r.HourlyRate = 100 }},
		{"bad phone", func(r *RegisterRequest) { r.Phone = "abc" }},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := validRegisterRequest()
			tc.mutate(req)
			assert.NotEmpty(t, ValidateRegister(req))
		})
	}
}

func TestSanitizeInput(t *testing.T) {
	assert.Equal(t, "hello", SanitizeInput("  <b>hello</b>  "))
	assert.Equal(t, "alert(1)", SanitizeInput("<script>alert(1)</script>"))
}
