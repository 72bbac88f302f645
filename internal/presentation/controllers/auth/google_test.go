package auth

import (
	"context"
	"net/http"
	"testing"

	"github.com/moneta-app/moneta-backend/internal/domain/models"
	"github.com/moneta-app/moneta-backend/internal/infra/googleapi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type fakeGoogleVerifier struct {
	info *googleapi.UserInfo
	err  error
}

func (f *fakeGoogleVerifier) VerifyCredential(ctx context.Context, credential, clientId string) (*googleapi.UserInfo, error) {
	return f.info, f.err
}

func (f *fakeGoogleVerifier) VerifyAccessToken(ctx context.Context, accessToken string) (*googleapi.UserInfo, error) {
	return f.info, f.err
}

type fakeGoogleIdStore struct {
	fakeUserStore
	updatedGoogleId string
}

func (f *fakeGoogleIdStore) UpdateGoogleId(id primitive.ObjectID, googleId string) error {
	f.updatedGoogleId = googleId
	return nil
}

func TestGoogleLoginCreatesAccountOnFirstSignIn(t *testing.T) {
	t.Setenv("SECRET_JWT", "test-secret")
	verifier := &fakeGoogleVerifier{info: &googleapi.UserInfo{
		Email:   "Alice@Example.com",
		Name:    "Alice",
		Subject: "google-sub-1",
	}}
	store := &fakeGoogleIdStore{}
	controller := NewGoogleLoginController(verifier, store, store, store, store, store)

	response := controller.Handle(makeAuthRequest(`{"credential": "id-token"}`))

	assert.Equal(t, http.StatusOK, response.StatusCode)
	require.NotNil(t, store.created)
	assert.Equal(t, "alice@example.com", store.created.Email)
	assert.Equal(t, "google-sub-1", store.created.GoogleId)
	assert.True(t, store.stampedLogin)
	assert.Equal(t, "alice@example.com", store.boundEmail)
}

func TestGoogleLoginLinksExistingAccount(t *testing.T) {
	t.Setenv("SECRET_JWT", "test-secret")
	verifier := &fakeGoogleVerifier{info: &googleapi.UserInfo{
		Email:   "alice@example.com",
		Subject: "google-sub-1",
	}}
	store := &fakeGoogleIdStore{fakeUserStore: fakeUserStore{byEmail: &models.User{
		Id:    primitive.NewObjectID(),
		Email: "alice@example.com",
	}}}
	controller := NewGoogleLoginController(verifier, store, store, store, store, store)

	response := controller.Handle(makeAuthRequest(`{"credential": "id-token"}`))

	assert.Equal(t, http.StatusOK, response.StatusCode)
	assert.Nil(t, store.created, "no duplicate account")
	assert.Equal(t, "google-sub-1", store.updatedGoogleId)
}

func TestGoogleLoginInvalidToken(t *testing.T) {
	verifier := &fakeGoogleVerifier{err: googleapi.ErrInvalidToken}
	store := &fakeGoogleIdStore{}
	controller := NewGoogleLoginController(verifier, store, store, store, store, store)

	response := controller.Handle(makeAuthRequest(`{"credential": "bad-token"}`))

	assert.Equal(t, http.StatusUnauthorized, response.StatusCode)
}

func TestGoogleLoginProfileMismatch(t *testing.T) {
	verifier := &fakeGoogleVerifier{info: &googleapi.UserInfo{Email: "alice@example.com"}}
	store := &fakeGoogleIdStore{}
	controller := NewGoogleLoginController(verifier, store, store, store, store, store)

	response := controller.Handle(makeAuthRequest(
		`{"accessToken": "tok", "userInfo": {"email": "mallory@example.com"}}`))

	assert.Equal(t, http.StatusUnauthorized, response.StatusCode,
		"caller-supplied profile must match the token's email")
}

func TestGoogleLoginRequiresSomeCredential(t *testing.T) {
	controller := NewGoogleLoginController(&fakeGoogleVerifier{}, &fakeUserStore{}, &fakeUserStore{}, &fakeGoogleIdStore{}, &fakeUserStore{}, &fakeUserStore{})

	response := controller.Handle(makeAuthRequest(`{}`))

	assert.Equal(t, http.StatusBadRequest, response.StatusCode)
}
