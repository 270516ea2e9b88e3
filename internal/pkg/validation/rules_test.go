package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidatePassword(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		password string
		want     bool
	}{
		{"valid", "patrol2024", true},
		{"valid mixed", "Str0ngEnough", true},
		{"too short", "abc1", false},
		{"exactly eight", "abcdefg1", true},
		{"no digit", "onlyletters", false},
		{"no letter", "12345678", false},
		{"empty", "", false},
		{"symbols only", "!!!!!!!!", false},
		{"unicode letter with digit", "pässwörd1", true},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, ValidatePassword(tt.password))
		})
	}
}
