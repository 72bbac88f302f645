package entity

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/moneta-app/moneta-backend/internal/domain/models"
	"github.com/moneta-app/moneta-backend/internal/domain/usecase"
	"github.com/moneta-app/moneta-backend/internal/presentation/helpers"
	presentationProtocols "github.com/moneta-app/moneta-backend/internal/presentation/protocols"
)

type UpdateEntityController struct {
	UpdateEntityRepository          usecase.UpdateEntityRepository
	ResolveEffectiveOwnerRepository usecase.ResolveEffectiveOwnerRepository
}

func NewUpdateEntityController(
	updateEntity usecase.UpdateEntityRepository,
	resolveEffectiveOwner usecase.ResolveEffectiveOwnerRepository,
) *UpdateEntityController {
	return &UpdateEntityController{
		UpdateEntityRepository:          updateEntity,
		ResolveEffectiveOwnerRepository: resolveEffectiveOwner,
	}
}

func (c *UpdateEntityController) Handle(r presentationProtocols.HttpRequest) *presentationProtocols.HttpResponse {
	col, ok := models.FindCollection(r.Req.PathValue("collection"))
	if !ok {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "unknown entity collection",
		}, http.StatusNotFound)
	}

	id := r.UrlParams.Get("id")
	if id == "" {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "id is required",
		}, http.StatusBadRequest)
	}

	var fields map[string]interface{}
	if err := json.NewDecoder(r.Body).Decode(&fields); err != nil || len(fields) == 0 {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "body must be a non-empty object",
		}, http.StatusBadRequest)
	}

	// The primary key and ownership stamps are not writable.
	delete(fields, "id")
	delete(fields, "_id")
	delete(fields, col.OwnerField)
	delete(fields, "created_date")
	fields["updated_date"] = time.Now()

	owner := c.ResolveEffectiveOwnerRepository.Resolve(r.Header.Get("UserEmail"), col.Name)

	updated, err := c.UpdateEntityRepository.Update(col, owner, id, fields)
	if err != nil {
		return entityMutationError(err, "an error occurred when updating the record")
	}

	return helpers.CreateResponse(updated, http.StatusOK)
}

// entityMutationError keeps the exists-but-unowned (403) and absent (404)
// cases distinct for update and delete.
func entityMutationError(err error, fallback string) *presentationProtocols.HttpResponse {
	switch {
	case errors.Is(err, usecase.ErrEntityForbidden):
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "you do not have access to this record",
		}, http.StatusForbidden)
	case errors.Is(err, usecase.ErrEntityNotFound):
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "record not found",
		}, http.StatusNotFound)
	default:
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: fallback,
		}, http.StatusInternalServerError)
	}
}
