// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package core

import (
	"github.com/cockroachdb/errors"

	"pii-mask/internal/detector"
	"pii-mask/internal/recognizers/address"
	"pii-mask/internal/recognizers/birthdate"
	"pii-mask/internal/recognizers/email"
	"pii-mask/internal/recognizers/mynumber"
	"pii-mask/internal/recognizers/pattern"
	"pii-mask/internal/recognizers/person"
	"pii-mask/internal/recognizers/phone"
	"pii-mask/internal/registry"
)

// BuildRecognizers constructs the standard recognizers for language in
// registration order: phone, email, person, address, birth date, My Number.
func BuildRecognizers(language string) ([]detector.Recognizer, error) {
	lang := pattern.WithLanguage(language)

	phoneRec, err := phone.New(lang)
	if err != nil {
		return nil, errors.Wrap(err, "failed to build recognizers")
	}
	emailRec, err := email.New(lang)
	if err != nil {
		return nil, errors.Wrap(err, "failed to build recognizers")
	}
	personRec, err := person.New(person.WithLanguage(language))
	if err != nil {
		return nil, errors.Wrap(err, "failed to build recognizers")
	}
	addressRec, err := address.New(address.WithLanguage(language))
	if err != nil {
		return nil, errors.Wrap(err, "failed to build recognizers")
	}
	birthRec, err := birthdate.New(lang)
	if err != nil {
		return nil, errors.Wrap(err, "failed to build recognizers")
	}
	myNumberRec, err := mynumber.New(lang)
	if err != nil {
		return nil, errors.Wrap(err, "failed to build recognizers")
	}

	return []detector.Recognizer{phoneRec, emailRec, personRec, addressRec, birthRec, myNumberRec}, nil
}

// BuildRegistry registers the standard recognizers for language
func BuildRegistry(language string) (*registry.Registry, error) {
	recognizers, err := BuildRecognizers(language)
	if err != nil {
		return nil, err
	}
	return registry.New(recognizers...)
}
