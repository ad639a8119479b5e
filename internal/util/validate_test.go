package util

import (
	"testing"

	"github.com/KlayvemGuimaraes/carrer-path-ai/internal/apperr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sampleRequest struct {
	Role      string `validate:"required"`
	Seniority string `validate:"required,oneof=junior mid senior"`
	Limit     int    `validate:"omitempty,min=1,max=100"`
}

func TestValidateStructOK(t *testing.T) {
	err := ValidateStruct(&sampleRequest{Role: "dev", Seniority: "mid"})
	assert.NoError(t, err)
}

func TestValidateStructCollectsFieldErrors(t *testing.T) {
	err := ValidateStruct(&sampleRequest{Limit: 500})

	var verr *apperr.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Fields, "role")
	assert.Contains(t, verr.Fields, "seniority")
	assert.Equal(t, "failed max=100 constraint", verr.Fields["limit"])
	assert.Equal(t, "failed required constraint", verr.Fields["role"])
}
