// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-library-sync/models"
	"github.com/golang-jwt/jwt/v5"
)

// GenerateSessionKey creates a signed HMAC-SHA256 session key for ownerID.
//
// The key carries the standard claims:
//   - Issuer    (iss): the issuing datastore server
//   - Subject   (sub): the owner of the library collections
//   - IssuedAt  (iat): the current time
//   - ExpiresAt (exp): the current time plus keyDuration
//
// All parameters are required. Returns an error if any of them are empty or zero.
//
// Example usage:
//
//	key, err := utils.GenerateSessionKey("library-datastore", "alice", 24*time.Hour, "secret")
//	fmt.Println(key.SignedString) // value clients send as authKey
func GenerateSessionKey(issuer, ownerID string, keyDuration time.Duration, signKey string) (models.Token, error) {
	if issuer == "" || ownerID == "" || keyDuration <= 0 || signKey == "" {
		return models.Token{}, errors.New("invalid params for generating session key")
	}

	now := time.Now()
	claims := &jwt.RegisteredClaims{
		Issuer:    issuer,
		Subject:   ownerID,
		ExpiresAt: jwt.NewNumericDate(now.Add(keyDuration)),
		IssuedAt:  jwt.NewNumericDate(now),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(signKey))
	if err != nil {
		return models.Token{}, fmt.Errorf("error occurred during signing session key: %w", err)
	}

	return models.Token{Token: token, SignedString: signed, OwnerID: ownerID}, nil
}

// ValidateAndParseSessionKey verifies the signature, issuer and expiry of
// authKey and extracts the owner it was issued for.
//
// Only HS256 keys are accepted.
func ValidateAndParseSessionKey(authKey, signKey, issuer string) (models.Token, error) {
	if authKey == "" {
		return models.Token{}, errors.New("empty session key")
	}

	parsed := &models.Token{}
	token, err := jwt.ParseWithClaims(authKey, parsed, func(token *jwt.Token) (any, error) {
		return []byte(signKey), nil
	},
		jwt.WithIssuer(issuer),
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		return models.Token{}, fmt.Errorf("error occurred validating and parsing session key: %w", err)
	}

	ownerID, err := parsed.GetOwnerID()
	if err != nil {
		return models.Token{}, err
	}

	return models.Token{
		Token:            token,
		RegisteredClaims: parsed.RegisteredClaims,
		SignedString:     authKey,
		OwnerID:          ownerID,
	}, nil
}
