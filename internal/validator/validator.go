package validator

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/VirtuGrowDigital/LucknowZone/internal/domain"
)

var validCategories = categoryValues()

func categoryValues() []interface{} {
	values := make([]interface{}, len(domain.Categories))
	for i, c := range domain.Categories {
		values[i] = c
	}
	return values
}

// Validator provides validation methods for pipeline inputs. All
// checks run before any store access.
type Validator struct{}

// NewValidator creates a new Validator instance.
func NewValidator() *Validator {
	return &Validator{}
}

// ValidateManualArticle validates a moderator-authored article.
func (v *Validator) ValidateManualArticle(a *domain.Article) error {
	err := validation.ValidateStruct(a,
		validation.Field(&a.Title,
			validation.Required.Error("title_required"),
		),
		validation.Field(&a.Image,
			validation.Required.Error("image_required"),
		),
	)
	if err != nil {
		return err
	}

	if a.Category != nil {
		if err := v.ValidateCategory(*a.Category); err != nil {
			return err
		}
	}
	if a.Region != nil && !domain.IsValidRegion(string(*a.Region)) {
		return validation.Errors{
			"region": validation.NewError("invalid_region", "region must be one of: local, national, international"),
		}
	}

	return nil
}

// ValidateCategory checks that a category is present and one of the
// fixed topic tags. Approval without a destination category is invalid.
func (v *Validator) ValidateCategory(category string) error {
	err := validation.Validate(category,
		validation.Required.Error("category_required"),
		validation.In(validCategories...).Error("invalid_category"),
	)
	if err != nil {
		return validation.Errors{"category": toValidationError(err)}
	}
	return nil
}

// ValidateRegionParam checks a raw region query parameter, accepting
// the legacy alias.
func (v *Validator) ValidateRegionParam(raw string) error {
	if _, ok := domain.NormalizeRegion(raw); !ok {
		return validation.Errors{
			"region": validation.NewError("invalid_region", "region must be one of: local, national, international"),
		}
	}
	return nil
}

// ValidateTickerText validates breaking-news text.
func (v *Validator) ValidateTickerText(text string) error {
	err := validation.Validate(text,
		validation.Required.Error("text_required"),
		validation.Length(1, 280).Error("text_too_long"),
	)
	if err != nil {
		return validation.Errors{"text": toValidationError(err)}
	}
	return nil
}

// ValidateArticleUpdate validates the fields of a partial edit.
func (v *Validator) ValidateArticleUpdate(upd domain.ArticleUpdate) error {
	if upd.IsEmpty() {
		return validation.Errors{
			"body": validation.NewError("empty_update", "no fields to update"),
		}
	}
	if upd.Title != nil && *upd.Title == "" {
		return validation.Errors{
			"title": validation.NewError("title_required", "title cannot be blank"),
		}
	}
	if upd.Category != nil {
		if err := v.ValidateCategory(*upd.Category); err != nil {
			return err
		}
	}
	if upd.Region != nil && !domain.IsValidRegion(string(*upd.Region)) {
		return validation.Errors{
			"region": validation.NewError("invalid_region", "region must be one of: local, national, international"),
		}
	}
	return nil
}

func toValidationError(err error) validation.Error {
	if verr, ok := err.(validation.Error); ok {
		return verr
	}
	return validation.NewError("invalid", err.Error())
}
