// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Anna Velichko

package utils

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func signedToken(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte("test-secret"))
	require.NoError(t, err)
	return signed
}

func TestParseOwnerIDFromJWT(t *testing.T) {
	t.Run("returns the subject claim", func(t *testing.T) {
		raw := signedToken(t, jwt.MapClaims{
			"sub": "3f1a9c2e-owner",
			"exp": time.Now().Add(time.Hour).Unix(),
		})

		ownerID, err := ParseOwnerIDFromJWT(raw)
		require.NoError(t, err)
		assert.Equal(t, "3f1a9c2e-owner", ownerID)
	})

	t.Run("rejects a token without a subject", func(t *testing.T) {
		raw := signedToken(t, jwt.MapClaims{"exp": time.Now().Add(time.Hour).Unix()})

		_, err := ParseOwnerIDFromJWT(raw)
		require.Error(t, err)
	})

	t.Run("rejects garbage", func(t *testing.T) {
		_, err := ParseOwnerIDFromJWT("not-a-token")
		require.Error(t, err)
	})
}

func TestParseBearerToken(t *testing.T) {
	tests := []struct {
		name    string
		header  string
		want    string
		wantErr bool
	}{
		{name: "valid", header: "Bearer abc.def.ghi", want: "abc.def.ghi"},
		{name: "missing token", header: "Bearer ", wantErr: true},
		{name: "no scheme", header: "abc.def.ghi", wantErr: true},
		{name: "empty", header: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseBearerToken(tt.header)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
