// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// validate checks the struct tags of [ClientConfig] and maps the first
// failing group onto the package sentinel errors so callers can use
// [errors.Is].
func (cfg *ClientConfig) validate() error {
	if strings.Contains(cfg.Storage.DB.DSN, "memory") {
		return fmt.Errorf("%w: in-memory database cannot keep the credential", ErrInvalidStorageConfigs)
	}

	err := validate.Struct(cfg)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return err
	}

	fe := fieldErrs[0]
	switch {
	case strings.HasPrefix(fe.Namespace(), "ClientConfig.Adapter"):
		return fmt.Errorf("%w: %s", ErrInvalidAdapterConfigs, fe.Error())
	case strings.HasPrefix(fe.Namespace(), "ClientConfig.Storage"):
		return fmt.Errorf("%w: %s", ErrInvalidStorageConfigs, fe.Error())
	default:
		return fmt.Errorf("%w: %s", ErrInvalidAppConfigs, fe.Error())
	}
}
