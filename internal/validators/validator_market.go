// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/MKhiriev/go-resale-market/models"
)

// Field name constants used to restrict validation of an offer to a subset
// of its fields.
const (
	FieldTitle       = "title"
	FieldDescription = "description"
	FieldPrice       = "price"
	FieldDetails     = "details"
)

// offerStructFields maps a field name constant to the OfferFields struct
// fields it covers.
var offerStructFields = map[string][]string{
	FieldTitle:       {"Title"},
	FieldDescription: {"Description"},
	FieldPrice:       {"Price"},
	FieldDetails:     {"Brand", "Size", "Condition", "Color", "City"},
}

// offerFieldErrors maps an OfferFields struct field to the error reported
// when its tag rule fails.
var offerFieldErrors = map[string]error{
	"Title":       ErrInvalidTitle,
	"Description": ErrInvalidDescription,
	"Price":       ErrInvalidPrice,
	"Brand":       ErrMissingDetail,
	"Size":        ErrMissingDetail,
	"Condition":   ErrMissingDetail,
	"Color":       ErrMissingDetail,
	"City":        ErrMissingDetail,
}

// MarketValidator implements the Validator interface for signup requests,
// offer fields and uploaded pictures. Struct rules live in the
// `validate` tags of the models and are enforced with go-playground's
// validator.
type MarketValidator struct {
	validate *validator.Validate
}

// NewMarketValidator constructs a new MarketValidator
// and returns it as the Validator interface.
func NewMarketValidator() Validator {
	return &MarketValidator{validate: validator.New(validator.WithRequiredStructEnabled())}
}

// Validate dispatches validation to the appropriate type-specific method.
//
// Supported types:
//   - models.RegisterRequest, *models.RegisterRequest
//   - models.OfferFields, *models.OfferFields (scoped by Field* constants)
//   - *models.Upload: a nil upload fails with ErrMissingImage
func (v *MarketValidator) Validate(ctx context.Context, value any, fields ...string) error {
	switch val := value.(type) {
	case models.RegisterRequest:
		return v.validateRegisterRequest(val)
	case *models.RegisterRequest:
		if val == nil {
			return ErrMissingCredentials
		}
		return v.validateRegisterRequest(*val)
	case models.OfferFields:
		return v.validateOfferFields(val, fields...)
	case *models.OfferFields:
		if val == nil {
			return ErrInvalidTitle
		}
		return v.validateOfferFields(*val, fields...)
	case *models.Upload:
		return validateImage(val)
	case models.Upload:
		return validateImage(&val)
	default:
		return ErrUnsupportedType
	}
}

func (v *MarketValidator) validateRegisterRequest(req models.RegisterRequest) error {
	if err := v.validate.Struct(req); err != nil {
		return ErrMissingCredentials
	}

	if req.Avatar != nil {
		return validateImage(req.Avatar)
	}

	return nil
}

func (v *MarketValidator) validateOfferFields(f models.OfferFields, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldTitle, FieldDescription, FieldPrice, FieldDetails}
	}

	var structFields []string
	for _, name := range fields {
		sf, ok := offerStructFields[name]
		if !ok {
			return ErrUnknownField
		}
		structFields = append(structFields, sf...)
	}

	err := v.validate.StructPartial(f, structFields...)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		if mapped, ok := offerFieldErrors[verrs[0].StructField()]; ok {
			return mapped
		}
	}

	return errors.Join(ErrValidation, err)
}

// validateImage accepts an upload only when both the declared content type
// and the sniffed bytes say it is an image.
func validateImage(u *models.Upload) error {
	if u == nil || len(u.Data) == 0 {
		return ErrMissingImage
	}

	if u.ContentType != "" && !strings.HasPrefix(strings.ToLower(u.ContentType), "image/") {
		return ErrNotAnImage
	}
	if !strings.HasPrefix(http.DetectContentType(u.Data), "image/") {
		return ErrNotAnImage
	}

	return nil
}
