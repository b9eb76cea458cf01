// Package registration validates sign-in/sign-up submissions and
// deterministically resolves the registering account's role, including
// the admin elevation granted by the signup secret.
package registration

import (
	"crypto/subtle"

	"github.com/krishavya/ufresher/internal/client/models"
)

// Mode selects which submission contract applies.
type Mode int

const (
	ModeSignIn Mode = iota
	ModeSignUp
)

// Submission is a raw form submission. Age is free text, matching the
// profile contract.
type Submission struct {
	Email       string
	Password    string
	Name        string
	Age         string
	College     string
	Stream      string
	Role        string
	AdminCode   string
	AvatarIndex int
}

// ValidationErrors maps field names to human-readable messages. All
// failing fields are reported together so the user can correct the form
// in one pass.
type ValidationErrors map[string]string

func (v ValidationErrors) Error() string {
	if len(v) == 1 {
		for field, msg := range v {
			return field + ": " + msg
		}
	}
	return "submission is invalid"
}

// Resolution is the outcome of a successful sign-up resolution.
type Resolution struct {
	Role   models.Role
	Avatar string
}

// Resolver checks submissions against the configured admin signup
// secret. An empty secret disables the admin path entirely: any supplied
// code is then rejected.
type Resolver struct {
	adminCode string
}

func NewResolver(adminCode string) *Resolver {
	return &Resolver{adminCode: adminCode}
}

// Resolve validates the submission for the given mode. For ModeSignUp it
// additionally resolves the role and avatar. Credential correctness is
// not checked here; that is the identity provider's job.
func (r *Resolver) Resolve(sub Submission, mode Mode) (*Resolution, error) {
	errs := ValidationErrors{}

	if sub.Email == "" {
		errs["email"] = "Email is required"
	}
	if sub.Password == "" {
		errs["password"] = "Password is required"
	}

	if mode == ModeSignIn {
		if len(errs) > 0 {
			return nil, errs
		}
		return &Resolution{}, nil
	}

	if sub.Name == "" {
		errs["name"] = "Name is required"
	}
	if sub.Age == "" {
		errs["age"] = "Age is required"
	}
	if sub.College == "" {
		errs["college"] = "College is required"
	}
	if sub.Stream == "" {
		errs["stream"] = "Stream is required"
	}

	role, ok := models.ParseRole(sub.Role)
	if sub.Role == "" {
		errs["role"] = "Role is required"
	} else if !ok || !role.Selectable() {
		errs["role"] = "Role must be junior or mentor"
	}

	avatar, ok := models.AvatarByIndex(sub.AvatarIndex)
	if !ok {
		errs["avatar"] = "Avatar selection is out of range"
	}

	// A supplied code must match exactly; a wrong code rejects the whole
	// submission rather than silently falling back to the selected role.
	if sub.AdminCode != "" {
		if r.adminCode != "" && subtle.ConstantTimeCompare([]byte(sub.AdminCode), []byte(r.adminCode)) == 1 {
			role = models.RoleAdmin
		} else {
			errs["adminCode"] = "Invalid admin code"
		}
	}

	if len(errs) > 0 {
		return nil, errs
	}
	return &Resolution{Role: role, Avatar: avatar}, nil
}
