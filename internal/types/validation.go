package types

import (
	"regexp"
	"strings"
)

// Validation messages match the product's user-facing wording.
const (
	MsgUsernameRequired = "Username wajib diisi"
	MsgEmailRequired    = "Email wajib diisi"
	MsgEmailInvalid     = "Format email tidak valid"
	MsgPasswordRequired = "Password wajib diisi"
	MsgPasswordTooShort = "Password minimal 6 karakter"
	MsgConfirmRequired  = "Konfirmasi password wajib diisi"
	MsgConfirmMismatch  = "Password tidak cocok"
)

// minPasswordLen is a registration-time rule only; login accepts whatever
// the server accepted at registration.
const minPasswordLen = 6

// basic local@domain shape, not a full RFC 5322 parse
var emailPattern = regexp.MustCompile(`^\S+@\S+\.\S+$`)

// ValidateRegistration checks the registration form field by field and
// returns nil when everything passes.
func (r RegisterRequest) ValidateRegistration() FieldErrors {
	errs := FieldErrors{}

	if strings.TrimSpace(r.Username) == "" {
		errs["username"] = MsgUsernameRequired
	}

	if strings.TrimSpace(r.Email) == "" {
		errs["email"] = MsgEmailRequired
	} else if !emailPattern.MatchString(r.Email) {
		errs["email"] = MsgEmailInvalid
	}

	if r.Password == "" {
		errs["password"] = MsgPasswordRequired
	} else if len(r.Password) < minPasswordLen {
		errs["password"] = MsgPasswordTooShort
	}

	if r.ConfirmPassword == "" {
		errs["confirmPassword"] = MsgConfirmRequired
	} else if r.Password != r.ConfirmPassword {
		errs["confirmPassword"] = MsgConfirmMismatch
	}

	if len(errs) == 0 {
		return nil
	}
	return errs
}

// ValidateLogin checks the login form. Only presence is required here.
func (r LoginRequest) ValidateLogin() FieldErrors {
	errs := FieldErrors{}

	if strings.TrimSpace(r.Username) == "" {
		errs["username"] = MsgUsernameRequired
	}
	if r.Password == "" {
		errs["password"] = MsgPasswordRequired
	}

	if len(errs) == 0 {
		return nil
	}
	return errs
}
