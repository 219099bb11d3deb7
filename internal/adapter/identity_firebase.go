// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"crypto/rsa"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/fisiocare/fisio-api/internal/config"
	"github.com/fisiocare/fisio-api/internal/logger"
	"github.com/fisiocare/fisio-api/internal/utils"
	"github.com/fisiocare/fisio-api/models"
	"github.com/golang-jwt/jwt/v5"
)

const (
	// DefaultCertsURL publishes the x509 certificates that sign Firebase ID tokens.
	DefaultCertsURL = "https://www.googleapis.com/robot/v1/metadata/x509/securetoken@system.gserviceaccount.com"

	firebaseIssuerPrefix = "https://securetoken.google.com/"
	maxSubjectLength     = 128
	defaultCertsTTL      = time.Hour
)

// firebaseClaims is the claim set of a Firebase ID token.
type firebaseClaims struct {
	jwt.RegisteredClaims
	Email         string `json:"email,omitempty"`
	EmailVerified bool   `json:"email_verified,omitempty"`
	AuthTime      int64  `json:"auth_time,omitempty"`
}

type firebaseVerifier struct {
	projectID string
	issuer    string
	certsURL  string

	client *utils.HTTPClient
	keys   *certCache
	now    func() time.Time

	logger *logger.Logger
}

// NewFirebaseVerifier constructs a [TokenVerifier] for ID tokens issued to the
// configured Firebase project.
//
// The service-account credential is checked here, once: the project id and
// client e-mail must be present and the private key must parse as an RSA PEM
// key. Verification itself only needs the public certificates, which are
// downloaded lazily on the first request and cached.
func NewFirebaseVerifier(cfg config.Auth, log *logger.Logger) (TokenVerifier, error) {
	if cfg.ProjectID == "" {
		return nil, ErrMissingProjectID
	}
	if cfg.ClientEmail == "" {
		return nil, ErrMissingClientEmail
	}
	if _, err := jwt.ParseRSAPrivateKeyFromPEM([]byte(cfg.PrivateKeyPEM())); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidPrivateKey, err)
	}

	certsURL := cfg.CertsURL
	if certsURL == "" {
		certsURL = DefaultCertsURL
	}

	v := &firebaseVerifier{
		projectID: cfg.ProjectID,
		issuer:    firebaseIssuerPrefix + cfg.ProjectID,
		certsURL:  certsURL,
		client:    utils.NewHTTPClient(cfg.FetchTimeout),
		now:       time.Now,
		logger:    log,
	}
	v.keys = newCertCache(v.fetchKeys)

	log.Info().Str("func", "NewFirebaseVerifier").
		Str("project_id", cfg.ProjectID).
		Str("client_email", cfg.ClientEmail).
		Msg("firebase token verifier created")

	return v, nil
}

// Verify checks signature, algorithm, audience, issuer, expiry, issue time and
// subject of token.
func (v *firebaseVerifier) Verify(ctx context.Context, token string) (models.Identity, error) {
	claims := &firebaseClaims{}

	_, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (any, error) {
		kid, _ := t.Header["kid"].(string)
		if kid == "" {
			return nil, ErrMissingKeyID
		}
		return v.keys.key(ctx, kid, v.now())
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodRS256.Alg()}),
		jwt.WithAudience(v.projectID),
		jwt.WithIssuer(v.issuer),
		jwt.WithExpirationRequired(),
		jwt.WithIssuedAt(),
		jwt.WithTimeFunc(v.now),
	)
	if err != nil {
		return models.Identity{}, fmt.Errorf("%w: %w", ErrInvalidToken, err)
	}

	if claims.Subject == "" || len(claims.Subject) > maxSubjectLength {
		return models.Identity{}, fmt.Errorf("%w: %w", ErrInvalidToken, ErrInvalidSubject)
	}

	identity := models.Identity{
		Subject:       claims.Subject,
		Email:         claims.Email,
		EmailVerified: claims.EmailVerified,
	}
	if claims.ExpiresAt != nil {
		identity.ExpiresAt = claims.ExpiresAt.Time
	}
	if claims.AuthTime != 0 {
		identity.AuthTime = time.Unix(claims.AuthTime, 0)
		if identity.AuthTime.After(v.now()) {
			return models.Identity{}, fmt.Errorf("%w: %w", ErrInvalidToken, ErrInvalidAuth)
		}
	}

	return identity, nil
}

// fetchKeys downloads the certificate map {kid: PEM} and parses each public key.
func (v *firebaseVerifier) fetchKeys(ctx context.Context) (map[string]*rsa.PublicKey, time.Duration, error) {
	log := logger.FromContext(ctx)

	resp, err := v.client.R().
		SetContext(ctx).
		SetHeader("Accept", "application/json").
		Get(v.certsURL)
	if err != nil {
		log.Err(err).Str("func", "*firebaseVerifier.fetchKeys").Msg("error requesting signing certificates")
		return nil, 0, fmt.Errorf("%w: %w", ErrFetchingCerts, err)
	}
	if err = mapHTTPError(resp); err != nil {
		log.Err(err).Str("func", "*firebaseVerifier.fetchKeys").Msg("certificate endpoint returned an error")
		return nil, 0, err
	}

	var certs map[string]string
	if err = json.Unmarshal(resp.Body(), &certs); err != nil {
		return nil, 0, fmt.Errorf("%w: decoding body: %w", ErrFetchingCerts, err)
	}

	keys := make(map[string]*rsa.PublicKey, len(certs))
	for kid, certPEM := range certs {
		key, err := jwt.ParseRSAPublicKeyFromPEM([]byte(certPEM))
		if err != nil {
			log.Warn().Err(err).Str("func", "*firebaseVerifier.fetchKeys").Str("kid", kid).Msg("skipping unparsable certificate")
			continue
		}
		keys[kid] = key
	}
	if len(keys) == 0 {
		return nil, 0, fmt.Errorf("%w: no usable certificates", ErrFetchingCerts)
	}

	ttl := maxAge(resp.Header().Get("Cache-Control"))
	log.Debug().Str("func", "*firebaseVerifier.fetchKeys").
		Int("keys", len(keys)).
		Dur("ttl", ttl).
		Msg("signing certificates refreshed")

	return keys, ttl, nil
}

// maxAge extracts the max-age directive of a Cache-Control header.
func maxAge(cacheControl string) time.Duration {
	for _, directive := range strings.Split(cacheControl, ",") {
		value, ok := strings.CutPrefix(strings.TrimSpace(directive), "max-age=")
		if !ok {
			continue
		}
		seconds, err := strconv.Atoi(value)
		if err != nil || seconds <= 0 {
			break
		}
		return time.Duration(seconds) * time.Second
	}
	return defaultCertsTTL
}
