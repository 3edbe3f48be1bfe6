package validators

import (
	"context"
	"fmt"

	"github.com/AviMalewar/Vibe-app/models"
)

// Field name constants used to specify which fields should be validated.
// These constants are passed to Validate to restrict validation to a subset
// of fields (field-level scoping).
const (
	// FieldName targets the display name of a profile submission.
	FieldName = "name"

	// FieldPassword targets the login secret of a profile submission.
	FieldPassword = "password"

	// FieldBranch targets the field-of-study attribute.
	FieldBranch = "branch"

	// FieldBio targets the free-form self-description.
	FieldBio = "bio"

	// FieldLifestyle targets the daily-rhythm enum attribute.
	FieldLifestyle = "lifestyle"
)

// ProfileValidator implements the Validator interface for profile-related
// inputs: RegisterRequest and LoginRequest.
//
// It supports both value and pointer receivers for every model type
// and allows optional field-level scoping via variadic field name arguments.
type ProfileValidator struct {
}

// NewProfileValidator constructs a new ProfileValidator
// and returns it as the Validator interface.
func NewProfileValidator() Validator {
	return &ProfileValidator{}
}

// Validate dispatches validation to the appropriate type-specific method
// based on the dynamic type of obj. Both value and pointer forms of each
// supported model are accepted.
//
// Supported types:
//   - models.RegisterRequest / *models.RegisterRequest
//   - models.LoginRequest / *models.LoginRequest
//
// Returns ErrUnsupportedType if obj does not match any known model.
// Optional fields restrict validation to the named subset; when omitted,
// every field the form requires is validated.
func (v *ProfileValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.RegisterRequest:
		return v.validateRegisterRequest(ctx, value, fields...)
	case *models.RegisterRequest:
		return v.validateRegisterRequest(ctx, *value, fields...)

	case models.LoginRequest:
		return v.validateLoginRequest(ctx, value)
	case *models.LoginRequest:
		return v.validateLoginRequest(ctx, *value)

	default:
		return ErrUnsupportedType
	}
}

func (v *ProfileValidator) validateRegisterRequest(_ context.Context, req models.RegisterRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldName, FieldPassword, FieldBranch, FieldBio, FieldLifestyle}
	}

	for _, field := range fields {
		switch field {
		case FieldName:
			if req.Name == "" {
				return ErrEmptyName
			}
		case FieldPassword:
			if req.Password == "" {
				return ErrEmptyPassword
			}
		case FieldBranch:
			if req.Branch == "" {
				return ErrEmptyBranch
			}
		case FieldBio:
			if req.Bio == "" {
				return ErrEmptyBio
			}
		case FieldLifestyle:
			if !req.Lifestyle.Valid() {
				return fmt.Errorf("%w: %q", ErrInvalidLifestyle, req.Lifestyle)
			}
		default:
			return fmt.Errorf("%w: %q", ErrUnknownField, field)
		}
	}

	return nil
}

func (v *ProfileValidator) validateLoginRequest(_ context.Context, req models.LoginRequest) error {
	if req.Name == "" {
		return ErrEmptyName
	}
	if req.Password == "" {
		return ErrEmptyPassword
	}

	return nil
}
