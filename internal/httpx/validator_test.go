package httpx

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type sampleRequest struct {
	Name string `json:"name" validate:"required"`
	URL  string `json:"url" validate:"omitempty,url"`
}

func TestValidateStruct_Valid(t *testing.T) {
	details := ValidateStruct(sampleRequest{Name: "A Book", URL: "https://example.com/a.pdf"})
	assert.Nil(t, details)
}

func TestValidateStruct_ReportsJSONFieldNames(t *testing.T) {
	details := ValidateStruct(sampleRequest{URL: "not a url"})

	assert.Len(t, details, 2)
	assert.Equal(t, "name", details[0].Field)
	assert.Equal(t, "name is required", details[0].Message)
	assert.Equal(t, "url", details[1].Field)
	assert.Equal(t, "url must be a well-formed URL", details[1].Message)
}

func TestValidateStruct_OmitemptySkipsEmptyURL(t *testing.T) {
	details := ValidateStruct(sampleRequest{Name: "A Book"})
	assert.Nil(t, details)
}
