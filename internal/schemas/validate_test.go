package schemas

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateProfile_Valid(t *testing.T) {
	data := []byte(`{
		"skills": ["Python", "SQL"],
		"interests": ["data science"],
		"bio": "Analyst moving into data science",
		"experience": [{"title": "Analyst", "company": "Acme"}]
	}`)

	assert.NoError(t, ValidateProfile(data))
}

func TestValidateProfile_WrongTypes(t *testing.T) {
	data := []byte(`{"skills": "Python"}`)

	err := ValidateProfile(data)
	require.Error(t, err)

	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	require.NotEmpty(t, validationErr.Errors)
	assert.Equal(t, "skills", validationErr.Errors[0].Field)
}

func TestValidateProfile_UnknownField(t *testing.T) {
	data := []byte(`{"skills": ["Go"], "resume_pdf": "x"}`)

	err := ValidateProfile(data)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "validation failed")
}

func TestValidateJobs_Valid(t *testing.T) {
	data := []byte(`[
		{"id": "j1", "title": "Backend Engineer", "skills_required": ["Go"], "salary_min": 120000}
	]`)

	assert.NoError(t, ValidateJobs(data))
}

func TestValidateJobs_MissingRequiredField(t *testing.T) {
	data := []byte(`[{"company": "Acme"}]`)

	err := ValidateJobs(data)
	require.Error(t, err)

	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.NotEmpty(t, validationErr.Errors)
}

func TestValidateJobs_NotAnArray(t *testing.T) {
	err := ValidateJobs([]byte(`{"id": "j1", "title": "x"}`))
	require.Error(t, err)

	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, "(root)", validationErr.Errors[0].Field)
}
