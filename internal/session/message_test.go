package session

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestContactMessage_Validate(t *testing.T) {
	tests := []struct {
		name    string
		msg     ContactMessage
		missing []string
	}{
		{
			name: "complete",
			msg:  ContactMessage{Name: "Ana", Email: "ana@x.com", Message: "Hi"},
		},
		{
			name:    "missing email",
			msg:     ContactMessage{Name: "Ana", Message: "Hi"},
			missing: []string{"email"},
		},
		{
			name:    "missing name and message",
			msg:     ContactMessage{Email: "ana@x.com"},
			missing: []string{"name", "message"},
		},
		{
			name:    "all empty",
			msg:     ContactMessage{},
			missing: []string{"name", "email", "message"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.msg.Validate()
			if tt.missing == nil {
				assert.NoError(t, err)
				return
			}
			var missing *MissingFieldError
			require.ErrorAs(t, err, &missing)
			assert.Equal(t, tt.missing, missing.Fields)
		})
	}
}

func TestMissingFieldError(t *testing.T) {
	err := &MissingFieldError{Fields: []string{"name", "email"}}
	assert.Equal(t, "missing required fields: name, email", err.Error())
}
