package handler

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"
)

const memberBody = `{"name":"Jane Doe","email":"jane@x.com","role":"officer","phone":"555-0100"}`

func TestMemberMutationsRequireAdmin(t *testing.T) {
	router, _ := newTestRouter(t)
	userToken := registerAndLogin(t, router, "alice", "a@x.com", "secret1", "")

	w := doJSON(t, router, http.MethodPost, "/api/v1/members", memberBody, userToken)
	require.Equal(t, http.StatusForbidden, w.Code)
	require.Contains(t, w.Body.String(), "forbidden")

	w = doJSON(t, router, http.MethodPut, "/api/v1/members/1", memberBody, userToken)
	require.Equal(t, http.StatusForbidden, w.Code)

	w = doJSON(t, router, http.MethodDelete, "/api/v1/members/1", "", userToken)
	require.Equal(t, http.StatusForbidden, w.Code)

	// Read access only needs an authenticated principal.
	w = doJSON(t, router, http.MethodGet, "/api/v1/members", "", userToken)
	require.Equal(t, http.StatusOK, w.Code)
}

func TestMemberCrudAsAdmin(t *testing.T) {
	router, _ := newTestRouter(t)
	adminToken := registerAndLogin(t, router, "boss", "boss@x.com", "secret1", "admin")

	w := doJSON(t, router, http.MethodPost, "/api/v1/members", memberBody, adminToken)
	require.Equal(t, http.StatusCreated, w.Code)

	var created struct {
		ID      int64  `json:"id"`
		Name    string `json:"name"`
		URL     string `json:"url"`
		Creator struct {
			Username string `json:"username"`
		} `json:"creator"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	require.Equal(t, "Jane Doe", created.Name)
	require.Equal(t, "boss", created.Creator.Username)
	require.Contains(t, created.URL, "/api/v1/members/")

	w = doJSON(t, router, http.MethodGet, "/api/v1/members", "", adminToken)
	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Body.String(), `"count":1`)

	w = doJSON(t, router, http.MethodPut, "/api/v1/members/1",
		`{"name":"Jane Smith","email":"jane@x.com","role":"officer"}`, adminToken)
	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Body.String(), "Jane Smith")

	w = doJSON(t, router, http.MethodDelete, "/api/v1/members/1", "", adminToken)
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, router, http.MethodGet, "/api/v1/members/1", "", adminToken)
	require.Equal(t, http.StatusNotFound, w.Code)
}

func TestMemberValidationErrors(t *testing.T) {
	router, _ := newTestRouter(t)
	adminToken := registerAndLogin(t, router, "boss", "boss@x.com", "secret1", "admin")

	w := doJSON(t, router, http.MethodPost, "/api/v1/members",
		`{"name":"J","email":"bad","role":""}`, adminToken)
	require.Equal(t, http.StatusBadRequest, w.Code)

	var resp struct {
		Error map[string][]string `json:"error"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Contains(t, resp.Error, "name")
	require.Contains(t, resp.Error, "email")
	require.Contains(t, resp.Error, "role")
}

func TestMemberNotFoundResponses(t *testing.T) {
	router, _ := newTestRouter(t)
	adminToken := registerAndLogin(t, router, "boss", "boss@x.com", "secret1", "admin")

	w := doJSON(t, router, http.MethodGet, "/api/v1/members/99", "", adminToken)
	require.Equal(t, http.StatusNotFound, w.Code)

	w = doJSON(t, router, http.MethodGet, "/api/v1/members/not-a-number", "", adminToken)
	require.Equal(t, http.StatusNotFound, w.Code)

	w = doJSON(t, router, http.MethodDelete, "/api/v1/members/99", "", adminToken)
	require.Equal(t, http.StatusNotFound, w.Code)
}
