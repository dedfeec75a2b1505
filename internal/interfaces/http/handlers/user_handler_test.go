package handlers

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domainerrors "clubs.backend/internal/domain/errors"
)

func TestUserHandler_GetMe(t *testing.T) {
	f := newFixture(t)

	// unauthenticated
	w := f.do(t, http.MethodGet, "/api/v1/users/me", nil, nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	clubID := createClub(t, f, "robotics")
	w = f.do(t, http.MethodPost, "/api/v1/clubs/by-id/"+clubID, map[string]interface{}{
		"leaderInnohassleId": "id-1",
	}, nil)
	require.Equal(t, http.StatusOK, w.Code)

	// fresh identity with no local record: default role, led clubs listed
	w = f.do(t, http.MethodGet, "/api/v1/users/me", nil, map[string]string{testIDHeader: "id-1"})
	require.Equal(t, http.StatusOK, w.Code)
	body := decodeJSON(t, w)
	assert.Equal(t, "id-1", body["innohassleId"])
	assert.Equal(t, "default", body["role"])
	clubs := body["leaderInClubs"].([]interface{})
	require.Len(t, clubs, 1)
	assert.Equal(t, "robotics", clubs[0].(map[string]interface{})["slug"])
}

func TestUserHandler_ChangeRole(t *testing.T) {
	f := newFixture(t)
	f.gateway.addUser("id-t", "Tina", "tina@innopolis.university")

	payload := map[string]interface{}{"email": "tina@innopolis.university", "role": "admin"}

	// unauthenticated
	w := f.do(t, http.MethodPost, "/api/v1/users/change-role", payload, nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	// authenticated but not on the superadmin allow-list
	w = f.do(t, http.MethodPost, "/api/v1/users/change-role", payload, map[string]string{
		testIDHeader: "id-x", testEmailHeader: "random@innopolis.university",
	})
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Equal(t, domainerrors.ReasonForbidden, decodeJSON(t, w)["reason"])

	super := map[string]string{testIDHeader: "id-boss", testEmailHeader: "boss@innopolis.university"}

	w = f.do(t, http.MethodPost, "/api/v1/users/change-role", payload, super)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	body := decodeJSON(t, w)
	assert.Equal(t, "id-t", body["innohassleId"])
	assert.Equal(t, "admin", body["role"])

	// the new role is visible through the me endpoint
	w = f.do(t, http.MethodGet, "/api/v1/users/me", nil, map[string]string{testIDHeader: "id-t"})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "admin", decodeJSON(t, w)["role"])

	// target unknown to the gateway
	w = f.do(t, http.MethodPost, "/api/v1/users/change-role", map[string]interface{}{
		"email": "ghost@innopolis.university", "role": "admin",
	}, super)
	assert.Equal(t, http.StatusNotFound, w.Code)

	// malformed payloads never reach the usecase
	w = f.do(t, http.MethodPost, "/api/v1/users/change-role", map[string]interface{}{
		"email": "not-an-email", "role": "admin",
	}, super)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
