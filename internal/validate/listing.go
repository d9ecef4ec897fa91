package validate

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"closetcircle/internal/catalog"
)

// ListingInput is the creation payload re-validated at the service boundary,
// so non-UI callers cannot insert invalid rows.
type ListingInput struct {
	OwnerID     string   `json:"owner_id" validate:"required,email"`
	Title       string   `json:"title" validate:"required,max=80"`
	Description string   `json:"description" validate:"max=2000"`
	Condition   string   `json:"item_condition" validate:"required,oneof=new excellent good worn"`
	Size        string   `json:"size" validate:"max=20"`
	Price       float64  `json:"price" validate:"gte=0"`
	ForSale     bool     `json:"for_sale"`
	ForRent     bool     `json:"for_rent"`
	Images      []string `json:"images" validate:"required,min=1"`
	Categories  []int    `json:"categories" validate:"required,min=1,dive,categorycode"`
}

// UserInput is the profile-creation payload.
type UserInput struct {
	Email     string `json:"email" validate:"required,email"`
	FirstName string `json:"first_name" validate:"required,max=50"`
	LastName  string `json:"last_name" validate:"required,max=50"`
	Bio       string `json:"bio" validate:"max=500"`
}

// Validator wraps go-playground/validator and reports violations as a
// field-to-message map suitable for a JSON error body.
type Validator struct {
	v *validator.Validate
}

func New() *Validator {
	v := validator.New()

	// Report fields by their JSON names
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := fld.Tag.Get("json")
		if name == "" {
			return fld.Name
		}
		if i := strings.IndexByte(name, ','); i >= 0 {
			return name[:i]
		}
		return name
	})

	_ = v.RegisterValidation("categorycode", func(fl validator.FieldLevel) bool {
		return catalog.KnownCode(int(fl.Field().Int()))
	})

	return &Validator{v: v}
}

// Fields validates s and returns nil when valid, otherwise a map of field
// names to messages.
func (v *Validator) Fields(s any) map[string]string {
	err := v.v.Struct(s)
	if err == nil {
		return nil
	}
	errs, ok := err.(validator.ValidationErrors)
	if !ok {
		return map[string]string{"_": err.Error()}
	}
	out := make(map[string]string, len(errs))
	for _, e := range errs {
		out[e.Field()] = message(e)
	}
	return out
}

// Listing runs the struct rules plus the first-image check.
func (v *Validator) Listing(in ListingInput) map[string]string {
	out := v.Fields(in)
	if len(in.Images) > 0 && strings.TrimSpace(in.Images[0]) == "" {
		if out == nil {
			out = map[string]string{}
		}
		out["images"] = "first image must not be blank"
	}
	return out
}

func message(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return "is required"
	case "email":
		return "must be a valid email address"
	case "max":
		return fmt.Sprintf("must not exceed %s characters", e.Param())
	case "min":
		return fmt.Sprintf("must have at least %s entries", e.Param())
	case "gte":
		return fmt.Sprintf("must be at least %s", e.Param())
	case "oneof":
		return fmt.Sprintf("must be one of: %s", e.Param())
	case "categorycode":
		return "must be a known category code"
	default:
		return "is invalid"
	}
}
