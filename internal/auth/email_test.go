package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeEmail(t *testing.T) {
	tests := []struct {
		name  string
		email string
		want  string
	}{
		{
			name:  "lowercases, strips dots and plus suffix",
			email: "Hameed.Bab+promo@Gmail.com",
			want:  "hameedbab@gmail.com",
		},
		{
			name:  "plain address unchanged",
			email: "user@example.com",
			want:  "user@example.com",
		},
		{
			name:  "uppercase only",
			email: "USER@EXAMPLE.COM",
			want:  "user@example.com",
		},
		{
			name:  "dots in local part",
			email: "first.middle.last@example.com",
			want:  "firstmiddlelast@example.com",
		},
		{
			name:  "everything after first plus dropped",
			email: "user+tag+more@example.com",
			want:  "user@example.com",
		},
		{
			name:  "stray @ folds into local part",
			email: "we@ird@example.com",
			want:  "weird@example.com",
		},
		{
			name:  "no @ produces degenerate result",
			email: "not-an-email",
			want:  "@not-an-email",
		},
		{
			name:  "domain dots preserved",
			email: "a.b@mail.co.uk",
			want:  "ab@mail.co.uk",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizeEmail(tt.email))
		})
	}
}

func TestNormalizeEmail_Idempotent(t *testing.T) {
	emails := []string{
		"Hameed.Bab+promo@Gmail.com",
		"user@example.com",
		"we@ird@example.com",
		"not-an-email",
		"",
		"A.B+c@D.E",
	}

	for _, email := range emails {
		once := NormalizeEmail(email)
		assert.Equal(t, once, NormalizeEmail(once), "normalize(normalize(%q))", email)
	}
}
