// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"net"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
)

var structValidator = validator.New()

// validate checks that the final merged [StructuredConfig] is usable at
// startup. Missing pinning credentials are not an error here: the relay
// starts and reports the problem on every upload request.
func (cfg *StructuredConfig) validate() error {
	if _, err := zerolog.ParseLevel(cfg.App.LogLevel); err != nil {
		return fmt.Errorf("%w: log level %q", ErrInvalidAppConfigs, cfg.App.LogLevel)
	}

	if err := structValidator.Struct(cfg.Server); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidServerConfigs, err)
	}
	// hostname_port rejects IPv6 literals, which -a accepts.
	_, rawPort, err := net.SplitHostPort(cfg.Server.HTTPAddress)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidServerConfigs, err)
	}
	if _, err = strconv.Atoi(rawPort); err != nil {
		return fmt.Errorf("%w: port %q is not a number", ErrInvalidServerConfigs, rawPort)
	}

	if err = structValidator.Struct(cfg.Pinata); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidPinataConfigs, err)
	}

	return nil
}
