// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

package services

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// validate is the shared validator instance. Entity structs declare
// their required fields with `validate:"required"` tags.
var validate = validator.New(validator.WithRequiredStructEnabled())

// checkRequired runs struct validation and converts the first failure
// into an ErrValidation with a field-specific message, e.g.
// "validation failed: title is required".
func checkRequired(rec any) error {
	err := validate.Struct(rec)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		field := strings.ToLower(verrs[0].Field())
		return fmt.Errorf("%w: %s is required", ErrValidation, field)
	}
	return fmt.Errorf("%w: %v", ErrValidation, err)
}
