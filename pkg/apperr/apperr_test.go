package apperr

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestFromDB(t *testing.T) {
	tests := []struct {
		name string
		in   error
		want error
	}{
		{"nil", nil, nil},
		{"record not found", fmt.Errorf("first: %w", gorm.ErrRecordNotFound), ErrNotFound},
		{"translated duplicate", gorm.ErrDuplicatedKey, ErrDuplicate},
		{"sqlite unique message", errors.New("constraint failed: UNIQUE constraint failed: tipo_suelo.nombre (2067)"), ErrDuplicate},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FromDB(tt.in)
			if tt.want == nil {
				assert.NoError(t, got)
				return
			}
			assert.ErrorIs(t, got, tt.want)
		})
	}

	other := errors.New("disk I/O error")
	assert.Same(t, other, FromDB(other))
}

func TestStatus(t *testing.T) {
	assert.Equal(t, http.StatusNotFound, Status(fmt.Errorf("plot 3: %w", ErrNotFound)))
	assert.Equal(t, http.StatusConflict, Status(ErrDuplicate))
	assert.Equal(t, http.StatusBadRequest, Status(ErrInvalidInput))
	assert.Equal(t, http.StatusForbidden, Status(ErrForbidden))
	assert.Equal(t, http.StatusUnauthorized, Status(ErrUnauthorized))
	assert.Equal(t, http.StatusInternalServerError, Status(errors.New("boom")))
}
