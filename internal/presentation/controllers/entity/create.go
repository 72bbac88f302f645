package entity

import (
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/moneta-app/moneta-backend/internal/domain/models"
	"github.com/moneta-app/moneta-backend/internal/domain/usecase"
	"github.com/moneta-app/moneta-backend/internal/presentation/helpers"
	presentationProtocols "github.com/moneta-app/moneta-backend/internal/presentation/protocols"
	"github.com/go-playground/validator/v10"
)

type FindAcceptedSharedUserRepository interface {
	FindAcceptedByInvitedEmail(email string) (*models.SharedUser, error)
}

type CreateEntitiesController struct {
	CreateEntitiesRepository         usecase.CreateEntitiesRepository
	ResolveEffectiveOwnerRepository  usecase.ResolveEffectiveOwnerRepository
	FindAcceptedSharedUserRepository FindAcceptedSharedUserRepository
	Validate                         *validator.Validate
}

func NewCreateEntitiesController(
	createEntities usecase.CreateEntitiesRepository,
	resolveEffectiveOwner usecase.ResolveEffectiveOwnerRepository,
	findAcceptedSharedUser FindAcceptedSharedUserRepository,
) *CreateEntitiesController {
	return &CreateEntitiesController{
		CreateEntitiesRepository:         createEntities,
		ResolveEffectiveOwnerRepository:  resolveEffectiveOwner,
		FindAcceptedSharedUserRepository: findAcceptedSharedUser,
		Validate:                         validator.New(validator.WithRequiredStructEnabled()),
	}
}

func (c *CreateEntitiesController) Handle(r presentationProtocols.HttpRequest) *presentationProtocols.HttpResponse {
	col, ok := models.FindCollection(r.Req.PathValue("collection"))
	if !ok {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "unknown entity collection",
		}, http.StatusNotFound)
	}

	var raw json.RawMessage
	if err := json.NewDecoder(r.Body).Decode(&raw); err != nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "body is required",
		}, http.StatusBadRequest)
	}

	docs, single, errResponse := decodeDocuments(raw)
	if errResponse != nil {
		return errResponse
	}

	for _, doc := range docs {
		if message := helpers.ValidateCollectionDocument(c.Validate, col, doc); message != "" {
			return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
				Error: message,
			}, http.StatusBadRequest)
		}
	}

	// The critical stamping invariant: records are owned by the resolved
	// effective owner, never the raw caller, so delegated writes land in
	// the inviter's data.
	owner := c.ResolveEffectiveOwnerRepository.Resolve(r.Header.Get("UserEmail"), col.Name)
	now := time.Now()
	for _, doc := range docs {
		delete(doc, "id")
		delete(doc, "_id")
		doc[col.OwnerField] = owner
		doc["created_date"] = now
	}

	if col.Name == models.SharedUsersCollection {
		if errResponse := c.rejectDuplicateAcceptedMapping(docs); errResponse != nil {
			return errResponse
		}
	}

	created, err := c.CreateEntitiesRepository.Create(col, docs)
	if err != nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "an error occurred when creating records",
		}, http.StatusInternalServerError)
	}

	if single {
		return helpers.CreateResponse(created[0], http.StatusCreated)
	}
	return helpers.CreateResponse(created, http.StatusCreated)
}

func decodeDocuments(raw json.RawMessage) ([]map[string]interface{}, bool, *presentationProtocols.HttpResponse) {
	trimmed := strings.TrimSpace(string(raw))
	if trimmed == "" || trimmed == "null" {
		return nil, false, helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "body is required",
		}, http.StatusBadRequest)
	}

	if strings.HasPrefix(trimmed, "[") {
		var docs []map[string]interface{}
		if err := json.Unmarshal(raw, &docs); err != nil || len(docs) == 0 {
			return nil, false, helpers.CreateResponse(&presentationProtocols.ErrorResponse{
				Error: "body must be a non-empty object or array of objects",
			}, http.StatusBadRequest)
		}
		return docs, false, nil
	}

	var doc map[string]interface{}
	if err := json.Unmarshal(raw, &doc); err != nil || len(doc) == 0 {
		return nil, false, helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "body must be a non-empty object or array of objects",
		}, http.StatusBadRequest)
	}
	return []map[string]interface{}{doc}, true, nil
}

// At most one accepted sharing mapping may exist per invited email; the
// store has no unique index for it, so the layer enforces it here.
func (c *CreateEntitiesController) rejectDuplicateAcceptedMapping(docs []map[string]interface{}) *presentationProtocols.HttpResponse {
	for _, doc := range docs {
		status, _ := doc["status"].(string)
		if status != models.SharedUserStatusAccepted {
			continue
		}
		invited, _ := doc["invitedEmail"].(string)
		existing, err := c.FindAcceptedSharedUserRepository.FindAcceptedByInvitedEmail(strings.ToLower(invited))
		if err != nil {
			return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
				Error: "an error occurred when checking the sharing mapping",
			}, http.StatusInternalServerError)
		}
		if existing != nil {
			return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
				Error: "an accepted sharing mapping already exists for this email",
			}, http.StatusConflict)
		}
	}
	return nil
}
