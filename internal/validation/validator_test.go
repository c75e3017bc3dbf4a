package validation

import (
	"errors"
	"strings"
	"testing"
)

type signupInput struct {
	Username        string `validate:"required,min=5"`
	Password        string `validate:"required,min=5"`
	ConfirmPassword string `validate:"required,eqfield=Password"`
	Email           string `validate:"required,email"`
	CreditCard      string `validate:"required,min=16"`
}

func valid() signupInput {
	return signupInput{
		Username:        "alice1",
		Password:        "hunter2x",
		ConfirmPassword: "hunter2x",
		Email:           "alice@example.com",
		CreditCard:      "4111111111111111",
	}
}

func TestValidateStruct(t *testing.T) {
	cases := []struct {
		name    string
		mutate  func(*signupInput)
		wantErr bool
		wantMsg string
	}{
		{name: "all valid", mutate: func(*signupInput) {}},
		{
			name:    "missing username",
			mutate:  func(s *signupInput) { s.Username = "" },
			wantErr: true,
			wantMsg: "Username is required",
		},
		{
			name:    "short username",
			mutate:  func(s *signupInput) { s.Username = "bob" },
			wantErr: true,
			wantMsg: "Username must be at least 5 characters",
		},
		{
			name: "password mismatch",
			mutate: func(s *signupInput) {
				s.ConfirmPassword = "different1"
			},
			wantErr: true,
			wantMsg: "Password and Confirm Password must match",
		},
		{
			name:    "bad email",
			mutate:  func(s *signupInput) { s.Email = "not-an-email" },
			wantErr: true,
			wantMsg: "Email must be a valid email address",
		},
		{
			name:    "short card",
			mutate:  func(s *signupInput) { s.CreditCard = "1234" },
			wantErr: true,
			wantMsg: "Credit Card must be at least 16 characters",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			in := valid()
			tc.mutate(&in)

			err := ValidateStruct(&in)
			if !tc.wantErr {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			if err == nil {
				t.Fatal("expected an error")
			}
			var fe *FormError
			if !errors.As(err, &fe) {
				t.Fatalf("expected *FormError, got %T", err)
			}
			if !strings.Contains(fe.Error(), tc.wantMsg) {
				t.Fatalf("messages %q do not contain %q", fe.Error(), tc.wantMsg)
			}
		})
	}
}

func TestValidateStructCollectsAllFields(t *testing.T) {
	in := signupInput{}
	err := ValidateStruct(&in)
	var fe *FormError
	if !errors.As(err, &fe) {
		t.Fatalf("expected *FormError, got %T", err)
	}
	if got := len(fe.Fields()); got != 5 {
		t.Fatalf("expected 5 field errors, got %d: %v", got, fe.Messages())
	}
}
