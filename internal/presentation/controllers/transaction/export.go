package transaction

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"sort"
	"time"

	"github.com/moneta-app/moneta-backend/internal/domain/models"
	"github.com/moneta-app/moneta-backend/internal/domain/usecase"
	"github.com/moneta-app/moneta-backend/internal/presentation/helpers"
	presentationProtocols "github.com/moneta-app/moneta-backend/internal/presentation/protocols"
	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"
)

const exportTTL = 30 * time.Minute

const exportSheet = "Transactions"

type ExportTransactionsController struct {
	FindEntitiesRepository          usecase.FindEntitiesRepository
	ResolveEffectiveOwnerRepository usecase.ResolveEffectiveOwnerRepository
	ExportStore                     usecase.ExportStoreRepository
}

func NewExportTransactionsController(
	findEntities usecase.FindEntitiesRepository,
	resolveEffectiveOwner usecase.ResolveEffectiveOwnerRepository,
	exportStore usecase.ExportStoreRepository,
) *ExportTransactionsController {
	return &ExportTransactionsController{
		FindEntitiesRepository:          findEntities,
		ResolveEffectiveOwnerRepository: resolveEffectiveOwner,
		ExportStore:                     exportStore,
	}
}

// Handle builds a spreadsheet of the caller's transactions and stages it
// for download under a random key.
func (c *ExportTransactionsController) Handle(r presentationProtocols.HttpRequest) *presentationProtocols.HttpResponse {
	col, _ := models.FindCollection("transactions")
	owner := c.ResolveEffectiveOwnerRepository.Resolve(r.Header.Get("UserEmail"), col.Name)

	docs, err := c.FindEntitiesRepository.Find(col, owner, map[string]interface{}{}, helpers.DefaultEntitySort, helpers.MaxEntityLimit)
	if err != nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "an error occurred when retrieving transactions",
		}, http.StatusInternalServerError)
	}

	data, err := buildWorkbook(docs)
	if err != nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "an error occurred when building the export file",
		}, http.StatusInternalServerError)
	}

	key := uuid.NewString()
	if err := c.ExportStore.Save(key, data, exportTTL); err != nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "the export storage is currently unavailable",
		}, http.StatusServiceUnavailable)
	}

	return helpers.CreateResponse(map[string]interface{}{
		"key":     key,
		"records": len(docs),
	}, http.StatusCreated)
}

func buildWorkbook(docs []map[string]interface{}) ([]byte, error) {
	file := excelize.NewFile()
	defer file.Close()

	file.SetSheetName(file.GetSheetName(0), exportSheet)

	columns := collectColumns(docs)
	for i, column := range columns {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		file.SetCellValue(exportSheet, cell, column)
	}

	for rowIndex, doc := range docs {
		for colIndex, column := range columns {
			cell, _ := excelize.CoordinatesToCellName(colIndex+1, rowIndex+2)
			file.SetCellValue(exportSheet, cell, cellValue(doc[column]))
		}
	}

	buf := new(bytes.Buffer)
	if err := file.Write(buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// collectColumns unions the field names across records: the layer is
// schema-free, so two transactions may not share a shape.
func collectColumns(docs []map[string]interface{}) []string {
	seen := map[string]bool{}
	for _, doc := range docs {
		for key := range doc {
			seen[key] = true
		}
	}

	columns := make([]string, 0, len(seen))
	for key := range seen {
		columns = append(columns, key)
	}
	sort.Strings(columns)

	// The id leads when present.
	for i, column := range columns {
		if column == "id" {
			copy(columns[1:i+1], columns[:i])
			columns[0] = "id"
			break
		}
	}

	return columns
}

func cellValue(value interface{}) interface{} {
	switch v := value.(type) {
	case nil:
		return ""
	case string, bool, int, int32, int64, float32, float64, time.Time:
		return v
	default:
		encoded, err := json.Marshal(v)
		if err != nil {
			return fmt.Sprintf("%v", v)
		}
		return string(encoded)
	}
}

type DownloadExportController struct {
	ExportStore usecase.ExportStoreRepository
}

func NewDownloadExportController(exportStore usecase.ExportStoreRepository) *DownloadExportController {
	return &DownloadExportController{
		ExportStore: exportStore,
	}
}

func (c *DownloadExportController) Handle(r presentationProtocols.HttpRequest) *presentationProtocols.HttpResponse {
	key := r.Req.PathValue("key")

	data, err := c.ExportStore.Find(key)
	if err != nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "the export storage is currently unavailable",
		}, http.StatusServiceUnavailable)
	}
	if data == nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "export not found or expired",
		}, http.StatusNotFound)
	}

	return &presentationProtocols.HttpResponse{
		Body:        io.NopCloser(bytes.NewReader(data)),
		StatusCode:  http.StatusOK,
		ContentType: "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
	}
}
