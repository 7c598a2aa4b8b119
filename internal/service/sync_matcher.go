// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"strings"

	"github.com/MKhiriev/photosync/models"
)

const brazilCountryCode = "55"

// MatchNumber looks number up in index. Brazilian numbers (country code 55)
// get one retry with the mobile "9" digit inserted or removed, since the two
// contact sources disagree on whether it is stored.
func MatchNumber(number string, index models.MessagingIndex) (string, bool) {
	if id, ok := index[number]; ok {
		return id, true
	}

	corrected, ok := correctBrazilianNumber(number)
	if !ok {
		return "", false
	}

	id, ok := index[corrected]
	return id, ok
}

// MatchContact returns the messaging id of the first number of contact found
// in index.
func MatchContact(contact models.DirectoryContact, index models.MessagingIndex) (string, bool) {
	for _, number := range contact.Numbers {
		if id, ok := MatchNumber(number, index); ok {
			return id, true
		}
	}
	return "", false
}

// correctBrazilianNumber inserts a "9" after the area code of a 12 digit
// number and drops the 5th character of any other length.
func correctBrazilianNumber(number string) (string, bool) {
	if !strings.HasPrefix(number, brazilCountryCode) || len(number) < 5 {
		return "", false
	}

	if len(number) == 12 {
		return number[:4] + "9" + number[4:], true
	}
	return number[:4] + number[5:], true
}
