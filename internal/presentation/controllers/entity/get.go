package entity

import (
	"net/http"

	"github.com/moneta-app/moneta-backend/internal/domain/models"
	"github.com/moneta-app/moneta-backend/internal/domain/usecase"
	"github.com/moneta-app/moneta-backend/internal/presentation/helpers"
	presentationProtocols "github.com/moneta-app/moneta-backend/internal/presentation/protocols"
)

type GetEntitiesController struct {
	FindEntitiesRepository          usecase.FindEntitiesRepository
	FindEntityByIdRepository        usecase.FindEntityByIdRepository
	ResolveEffectiveOwnerRepository usecase.ResolveEffectiveOwnerRepository
}

func NewGetEntitiesController(
	findEntities usecase.FindEntitiesRepository,
	findEntityById usecase.FindEntityByIdRepository,
	resolveEffectiveOwner usecase.ResolveEffectiveOwnerRepository,
) *GetEntitiesController {
	return &GetEntitiesController{
		FindEntitiesRepository:          findEntities,
		FindEntityByIdRepository:        findEntityById,
		ResolveEffectiveOwnerRepository: resolveEffectiveOwner,
	}
}

func (c *GetEntitiesController) Handle(r presentationProtocols.HttpRequest) *presentationProtocols.HttpResponse {
	col, ok := models.FindCollection(r.Req.PathValue("collection"))
	if !ok {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "unknown entity collection",
		}, http.StatusNotFound)
	}

	query := helpers.ParseEntityQuery(r.UrlParams)
	owner := c.ResolveEffectiveOwnerRepository.Resolve(r.Header.Get("UserEmail"), col.Name)

	// A bare id without _single stays in list mode; the flag is what
	// switches the return shape from array to object.
	if query.Single {
		if query.Id == "" {
			return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
				Error: "id is required when _single is set",
			}, http.StatusBadRequest)
		}

		doc, err := c.FindEntityByIdRepository.FindById(col, owner, query.Id)
		if err != nil {
			return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
				Error: "an error occurred when retrieving the record",
			}, http.StatusInternalServerError)
		}
		if doc == nil {
			return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
				Error: "record not found",
			}, http.StatusNotFound)
		}

		return helpers.CreateResponse(doc, http.StatusOK)
	}

	if query.Id != "" {
		query.Filters["id"] = query.Id
	}

	docs, err := c.FindEntitiesRepository.Find(col, owner, query.Filters, query.Sort, query.Limit)
	if err != nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "an error occurred when retrieving records",
		}, http.StatusInternalServerError)
	}

	return helpers.CreateResponse(docs, http.StatusOK)
}
