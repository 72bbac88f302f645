package transaction

import (
	"encoding/csv"
	"fmt"
	"mime/multipart"
	"net/http"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/moneta-app/moneta-backend/internal/domain/models"
	"github.com/moneta-app/moneta-backend/internal/domain/usecase"
	"github.com/moneta-app/moneta-backend/internal/presentation/helpers"
	presentationProtocols "github.com/moneta-app/moneta-backend/internal/presentation/protocols"
	"github.com/go-playground/validator/v10"
	"github.com/xuri/excelize/v2"
)

const maxImportRows = 5000

type ImportTransactionsController struct {
	CreateEntitiesRepository        usecase.CreateEntitiesRepository
	ResolveEffectiveOwnerRepository usecase.ResolveEffectiveOwnerRepository
	Validate                        *validator.Validate
}

func NewImportTransactionsController(
	createEntities usecase.CreateEntitiesRepository,
	resolveEffectiveOwner usecase.ResolveEffectiveOwnerRepository,
) *ImportTransactionsController {
	return &ImportTransactionsController{
		CreateEntitiesRepository:        createEntities,
		ResolveEffectiveOwnerRepository: resolveEffectiveOwner,
		Validate:                        validator.New(validator.WithRequiredStructEnabled()),
	}
}

// Handle ingests a CSV or XLSX upload: the header row names the fields,
// every following row becomes one transaction record, stamped exactly like
// a record created through the entity layer.
func (c *ImportTransactionsController) Handle(r presentationProtocols.HttpRequest) *presentationProtocols.HttpResponse {
	if err := r.Req.ParseMultipartForm(10 << 20); err != nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "a multipart form with a file field is required",
		}, http.StatusBadRequest)
	}

	file, header, err := r.Req.FormFile("file")
	if err != nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "a multipart form with a file field is required",
		}, http.StatusBadRequest)
	}
	defer file.Close()

	rows, errResponse := readRows(file, header)
	if errResponse != nil {
		return errResponse
	}

	if len(rows) < 2 {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "the file must contain a header row and at least one record",
		}, http.StatusBadRequest)
	}
	if len(rows) > maxImportRows+1 {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "the file exceeds the import limit of 5000 records",
		}, http.StatusBadRequest)
	}

	col, _ := models.FindCollection("transactions")
	owner := c.ResolveEffectiveOwnerRepository.Resolve(r.Header.Get("UserEmail"), col.Name)

	fields := rows[0]
	now := time.Now()
	docs := make([]map[string]interface{}, 0, len(rows)-1)
	for rowIndex, row := range rows[1:] {
		doc := map[string]interface{}{}
		for i, field := range fields {
			name := strings.TrimSpace(field)
			if name == "" || name == "id" || i >= len(row) {
				continue
			}
			doc[name] = parseCell(row[i])
		}
		if len(doc) == 0 {
			continue
		}

		// Imported rows obey the same creation rules as records posted
		// through the entity endpoints.
		if message := helpers.ValidateCollectionDocument(c.Validate, col, doc); message != "" {
			return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
				Error: fmt.Sprintf("row %d: %s", rowIndex+2, message),
			}, http.StatusBadRequest)
		}

		doc[col.OwnerField] = owner
		doc["created_date"] = now
		docs = append(docs, doc)
	}

	if len(docs) == 0 {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "the file contains no importable records",
		}, http.StatusBadRequest)
	}

	created, err := c.CreateEntitiesRepository.Create(col, docs)
	if err != nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "an error occurred when importing transactions",
		}, http.StatusInternalServerError)
	}

	return helpers.CreateResponse(map[string]interface{}{
		"imported": len(created),
	}, http.StatusCreated)
}

func readRows(file multipart.File, header *multipart.FileHeader) ([][]string, *presentationProtocols.HttpResponse) {
	switch strings.ToLower(filepath.Ext(header.Filename)) {
	case ".csv":
		reader := csv.NewReader(file)
		reader.FieldsPerRecord = -1
		rows, err := reader.ReadAll()
		if err != nil {
			return nil, helpers.CreateResponse(&presentationProtocols.ErrorResponse{
				Error: "the CSV file could not be parsed",
			}, http.StatusBadRequest)
		}
		return rows, nil
	case ".xlsx":
		workbook, err := excelize.OpenReader(file)
		if err != nil {
			return nil, helpers.CreateResponse(&presentationProtocols.ErrorResponse{
				Error: "the Excel file could not be parsed",
			}, http.StatusBadRequest)
		}
		defer workbook.Close()

		rows, err := workbook.GetRows(workbook.GetSheetName(0))
		if err != nil {
			return nil, helpers.CreateResponse(&presentationProtocols.ErrorResponse{
				Error: "the Excel file could not be parsed",
			}, http.StatusBadRequest)
		}
		return rows, nil
	}

	return nil, helpers.CreateResponse(&presentationProtocols.ErrorResponse{
		Error: "only .csv and .xlsx files are supported",
	}, http.StatusBadRequest)
}

// parseCell keeps numbers and booleans typed; everything else stays a
// string.
func parseCell(value string) interface{} {
	trimmed := strings.TrimSpace(value)
	if number, err := strconv.ParseFloat(trimmed, 64); err == nil && trimmed != "" {
		return number
	}
	if boolean, err := strconv.ParseBool(trimmed); err == nil {
		return boolean
	}
	return value
}
