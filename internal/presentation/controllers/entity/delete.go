package entity

import (
	"net/http"

	"github.com/moneta-app/moneta-backend/internal/domain/models"
	"github.com/moneta-app/moneta-backend/internal/domain/usecase"
	"github.com/moneta-app/moneta-backend/internal/presentation/helpers"
	presentationProtocols "github.com/moneta-app/moneta-backend/internal/presentation/protocols"
)

type DeleteEntityController struct {
	DeleteEntityRepository          usecase.DeleteEntityRepository
	ResolveEffectiveOwnerRepository usecase.ResolveEffectiveOwnerRepository
}

func NewDeleteEntityController(
	deleteEntity usecase.DeleteEntityRepository,
	resolveEffectiveOwner usecase.ResolveEffectiveOwnerRepository,
) *DeleteEntityController {
	return &DeleteEntityController{
		DeleteEntityRepository:          deleteEntity,
		ResolveEffectiveOwnerRepository: resolveEffectiveOwner,
	}
}

func (c *DeleteEntityController) Handle(r presentationProtocols.HttpRequest) *presentationProtocols.HttpResponse {
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

	owner := c.ResolveEffectiveOwnerRepository.Resolve(r.Header.Get("UserEmail"), col.Name)

	if err := c.DeleteEntityRepository.Delete(col, owner, id); err != nil {
		return entityMutationError(err, "an error occurred when deleting the record")
	}

	return helpers.CreateResponse(map[string]interface{}{"deleted": true}, http.StatusOK)
}
