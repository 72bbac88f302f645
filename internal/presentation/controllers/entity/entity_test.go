package entity

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/moneta-app/moneta-backend/internal/domain/models"
	"github.com/moneta-app/moneta-backend/internal/domain/usecase"
	"github.com/moneta-app/moneta-backend/internal/presentation/helpers"
	presentationProtocols "github.com/moneta-app/moneta-backend/internal/presentation/protocols"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeOwnerResolver struct {
	owner string
}

func (f *fakeOwnerResolver) Resolve(email string, collection string) string {
	if f.owner != "" {
		return f.owner
	}
	return email
}

type fakeEntityStore struct {
	docs        []map[string]interface{}
	lastOwner   string
	lastFilters map[string]interface{}
	lastSort    string
	lastLimit   int64
	created     []map[string]interface{}
	findErr     error
	mutationErr error
	byId        map[string]interface{}
}

func (f *fakeEntityStore) Find(col models.Collection, owner string, filters map[string]interface{}, sort string, limit int64) ([]map[string]interface{}, error) {
	f.lastOwner = owner
	f.lastFilters = filters
	f.lastSort = sort
	f.lastLimit = limit
	if f.findErr != nil {
		return nil, f.findErr
	}
	if f.docs == nil {
		return []map[string]interface{}{}, nil
	}
	return f.docs, nil
}

func (f *fakeEntityStore) FindById(col models.Collection, owner string, id string) (map[string]interface{}, error) {
	f.lastOwner = owner
	if f.findErr != nil {
		return nil, f.findErr
	}
	return f.byId, nil
}

func (f *fakeEntityStore) Create(col models.Collection, docs []map[string]interface{}) ([]map[string]interface{}, error) {
	f.lastOwner, _ = docs[0][col.OwnerField].(string)
	f.created = docs
	return docs, nil
}

func (f *fakeEntityStore) Update(col models.Collection, owner string, id string, fields map[string]interface{}) (map[string]interface{}, error) {
	f.lastOwner = owner
	if f.mutationErr != nil {
		return nil, f.mutationErr
	}
	return fields, nil
}

func (f *fakeEntityStore) Delete(col models.Collection, owner string, id string) error {
	f.lastOwner = owner
	return f.mutationErr
}

type fakeSharedUserFinder struct {
	existing *models.SharedUser
}

func (f *fakeSharedUserFinder) FindAcceptedByInvitedEmail(email string) (*models.SharedUser, error) {
	return f.existing, nil
}

func makeEntityRequest(method, collection, query, body string) presentationProtocols.HttpRequest {
	target := "/entities/" + collection
	if query != "" {
		target += "?" + query
	}
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.SetPathValue("collection", collection)
	req.Header.Set("UserEmail", "caller@example.com")

	params, _ := url.ParseQuery(query)
	return presentationProtocols.HttpRequest{
		Body:      io.NopCloser(strings.NewReader(body)),
		Header:    req.Header,
		UrlParams: params,
		Req:       req,
	}
}

func decodeEnvelope(t *testing.T, response *presentationProtocols.HttpResponse) helpers.Envelope {
	t.Helper()
	raw, err := io.ReadAll(response.Body)
	require.NoError(t, err)

	var envelope helpers.Envelope
	require.NoError(t, json.Unmarshal(raw, &envelope))
	return envelope
}

func TestGetEntitiesUnknownCollection(t *testing.T) {
	controller := NewGetEntitiesController(&fakeEntityStore{}, &fakeEntityStore{}, &fakeOwnerResolver{})

	response := controller.Handle(makeEntityRequest(http.MethodGet, "nope", "", ""))

	assert.Equal(t, http.StatusNotFound, response.StatusCode)
	envelope := decodeEnvelope(t, response)
	assert.False(t, envelope.Success)
	assert.Equal(t, "unknown entity collection", envelope.Error)
}

func TestGetEntitiesAlwaysReturnsArray(t *testing.T) {
	store := &fakeEntityStore{}
	controller := NewGetEntitiesController(store, store, &fakeOwnerResolver{})

	response := controller.Handle(makeEntityRequest(http.MethodGet, "transactions", "", ""))

	assert.Equal(t, http.StatusOK, response.StatusCode)
	envelope := decodeEnvelope(t, response)
	assert.True(t, envelope.Success)
	data, ok := envelope.Data.([]interface{})
	require.True(t, ok, "empty result must still be an array")
	assert.Empty(t, data)
}

func TestGetEntitiesUsesResolvedOwner(t *testing.T) {
	store := &fakeEntityStore{}
	controller := NewGetEntitiesController(store, store, &fakeOwnerResolver{owner: "inviter@example.com"})

	controller.Handle(makeEntityRequest(http.MethodGet, "transactions", "", ""))

	assert.Equal(t, "inviter@example.com", store.lastOwner)
}

func TestGetEntitiesQueryMapping(t *testing.T) {
	store := &fakeEntityStore{}
	controller := NewGetEntitiesController(store, store, &fakeOwnerResolver{})

	controller.Handle(makeEntityRequest(http.MethodGet, "transactions", "category=rent&sort=amount&limit=5", ""))

	assert.Equal(t, map[string]interface{}{"category": "rent"}, store.lastFilters)
	assert.Equal(t, "amount", store.lastSort)
	assert.Equal(t, int64(5), store.lastLimit)
}

func TestGetEntitiesSingleRequiresId(t *testing.T) {
	store := &fakeEntityStore{}
	controller := NewGetEntitiesController(store, store, &fakeOwnerResolver{})

	response := controller.Handle(makeEntityRequest(http.MethodGet, "transactions", "_single=true", ""))

	assert.Equal(t, http.StatusBadRequest, response.StatusCode)
}

func TestGetEntitiesSingleReturnsObject(t *testing.T) {
	store := &fakeEntityStore{byId: map[string]interface{}{"id": "abc", "amount": 12.5}}
	controller := NewGetEntitiesController(store, store, &fakeOwnerResolver{})

	response := controller.Handle(makeEntityRequest(http.MethodGet, "transactions", "_single=true&id=abc", ""))

	assert.Equal(t, http.StatusOK, response.StatusCode)
	envelope := decodeEnvelope(t, response)
	data, ok := envelope.Data.(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "abc", data["id"])
}

func TestGetEntitiesSingleNotFound(t *testing.T) {
	store := &fakeEntityStore{byId: nil}
	controller := NewGetEntitiesController(store, store, &fakeOwnerResolver{})

	response := controller.Handle(makeEntityRequest(http.MethodGet, "transactions", "_single=true&id=missing", ""))

	assert.Equal(t, http.StatusNotFound, response.StatusCode)
}

func TestCreateEntityStampsOwnerAndStripsId(t *testing.T) {
	store := &fakeEntityStore{}
	controller := NewCreateEntitiesController(store, &fakeOwnerResolver{owner: "inviter@example.com"}, &fakeSharedUserFinder{})

	response := controller.Handle(makeEntityRequest(http.MethodPost, "transactions", "",
		`{"amount": 10, "id": "client-chosen", "_id": "other"}`))

	assert.Equal(t, http.StatusCreated, response.StatusCode)
	require.Len(t, store.created, 1)
	doc := store.created[0]
	assert.Equal(t, "inviter@example.com", doc["created_by"])
	assert.NotContains(t, doc, "id")
	assert.NotContains(t, doc, "_id")
	assert.Contains(t, doc, "created_date")
}

func TestCreateEntityBulk(t *testing.T) {
	store := &fakeEntityStore{}
	controller := NewCreateEntitiesController(store, &fakeOwnerResolver{}, &fakeSharedUserFinder{})

	response := controller.Handle(makeEntityRequest(http.MethodPost, "transactions", "",
		`[{"amount": 1}, {"amount": 2}]`))

	assert.Equal(t, http.StatusCreated, response.StatusCode)
	envelope := decodeEnvelope(t, response)
	data, ok := envelope.Data.([]interface{})
	require.True(t, ok, "bulk create answers with an array")
	assert.Len(t, data, 2)
	assert.Len(t, store.created, 2)
}

func TestCreateEntityValidatesRequiredFields(t *testing.T) {
	store := &fakeEntityStore{}
	controller := NewCreateEntitiesController(store, &fakeOwnerResolver{}, &fakeSharedUserFinder{})

	response := controller.Handle(makeEntityRequest(http.MethodPost, "transactions", "",
		`{"note": "missing amount"}`))

	assert.Equal(t, http.StatusBadRequest, response.StatusCode)
	assert.Empty(t, store.created)
}

func TestCreateEntityRejectsEmptyBody(t *testing.T) {
	controller := NewCreateEntitiesController(&fakeEntityStore{}, &fakeOwnerResolver{}, &fakeSharedUserFinder{})

	for _, body := range []string{"", "null", "{}", "[]"} {
		response := controller.Handle(makeEntityRequest(http.MethodPost, "transactions", "", body))
		assert.Equal(t, http.StatusBadRequest, response.StatusCode, "body %q", body)
	}
}

func TestCreateSharedUserDuplicateAcceptedMapping(t *testing.T) {
	store := &fakeEntityStore{}
	finder := &fakeSharedUserFinder{existing: &models.SharedUser{InvitedEmail: "guest@example.com"}}
	controller := NewCreateEntitiesController(store, &fakeOwnerResolver{}, finder)

	response := controller.Handle(makeEntityRequest(http.MethodPost, "shared-users", "",
		`{"invitedEmail": "guest@example.com", "status": "accepted"}`))

	assert.Equal(t, http.StatusConflict, response.StatusCode)
	assert.Empty(t, store.created)
}

func TestUpdateEntityForbiddenVersusNotFound(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{"foreign record answers 403", usecase.ErrEntityForbidden, http.StatusForbidden},
		{"absent record answers 404", usecase.ErrEntityNotFound, http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := &fakeEntityStore{mutationErr: tt.err}
			controller := NewUpdateEntityController(store, &fakeOwnerResolver{})

			response := controller.Handle(makeEntityRequest(http.MethodPut, "transactions", "id=abc",
				`{"amount": 99}`))

			assert.Equal(t, tt.wantStatus, response.StatusCode)
		})
	}
}

func TestUpdateEntityStripsProtectedFields(t *testing.T) {
	store := &fakeEntityStore{}
	controller := NewUpdateEntityController(store, &fakeOwnerResolver{})

	response := controller.Handle(makeEntityRequest(http.MethodPut, "transactions", "id=abc",
		`{"amount": 99, "created_by": "attacker@example.com", "id": "new-id", "created_date": "2020-01-01"}`))

	assert.Equal(t, http.StatusOK, response.StatusCode)
	envelope := decodeEnvelope(t, response)
	data, ok := envelope.Data.(map[string]interface{})
	require.True(t, ok)
	assert.NotContains(t, data, "created_by")
	assert.NotContains(t, data, "id")
	assert.NotContains(t, data, "created_date")
	assert.Contains(t, data, "updated_date")
}

func TestUpdateEntityRequiresId(t *testing.T) {
	controller := NewUpdateEntityController(&fakeEntityStore{}, &fakeOwnerResolver{})

	response := controller.Handle(makeEntityRequest(http.MethodPut, "transactions", "", `{"amount": 1}`))

	assert.Equal(t, http.StatusBadRequest, response.StatusCode)
}

func TestDeleteEntity(t *testing.T) {
	store := &fakeEntityStore{}
	controller := NewDeleteEntityController(store, &fakeOwnerResolver{owner: "inviter@example.com"})

	response := controller.Handle(makeEntityRequest(http.MethodDelete, "transactions", "id=abc", ""))

	assert.Equal(t, http.StatusOK, response.StatusCode)
	assert.Equal(t, "inviter@example.com", store.lastOwner)
}

func TestDeleteEntityForbidden(t *testing.T) {
	store := &fakeEntityStore{mutationErr: usecase.ErrEntityForbidden}
	controller := NewDeleteEntityController(store, &fakeOwnerResolver{})

	response := controller.Handle(makeEntityRequest(http.MethodDelete, "transactions", "id=abc", ""))

	assert.Equal(t, http.StatusForbidden, response.StatusCode)
}
