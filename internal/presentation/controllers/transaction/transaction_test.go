package transaction

import (
	"bytes"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/moneta-app/moneta-backend/internal/domain/models"
	"github.com/moneta-app/moneta-backend/internal/presentation/helpers"
	presentationProtocols "github.com/moneta-app/moneta-backend/internal/presentation/protocols"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

type fakeOwnerResolver struct{}

func (f *fakeOwnerResolver) Resolve(email string, collection string) string {
	return email
}

type fakeTransactionStore struct {
	docs    []map[string]interface{}
	created []map[string]interface{}
}

func (f *fakeTransactionStore) Find(col models.Collection, owner string, filters map[string]interface{}, sort string, limit int64) ([]map[string]interface{}, error) {
	return f.docs, nil
}

func (f *fakeTransactionStore) Create(col models.Collection, docs []map[string]interface{}) ([]map[string]interface{}, error) {
	f.created = docs
	return docs, nil
}

type memoryExportStore struct {
	saved map[string][]byte
}

func (m *memoryExportStore) Save(key string, data []byte, ttl time.Duration) error {
	if m.saved == nil {
		m.saved = map[string][]byte{}
	}
	m.saved[key] = data
	return nil
}

func (m *memoryExportStore) Find(key string) ([]byte, error) {
	return m.saved[key], nil
}

func decodeEnvelope(t *testing.T, response *presentationProtocols.HttpResponse) helpers.Envelope {
	t.Helper()
	raw, err := io.ReadAll(response.Body)
	require.NoError(t, err)

	var envelope helpers.Envelope
	require.NoError(t, json.Unmarshal(raw, &envelope))
	return envelope
}

func TestExportStagesWorkbook(t *testing.T) {
	store := &fakeTransactionStore{docs: []map[string]interface{}{
		{"id": "t1", "amount": 12.5, "category": "rent"},
		{"id": "t2", "amount": 3.0, "note": "coffee"},
	}}
	exportStore := &memoryExportStore{}
	controller := NewExportTransactionsController(store, &fakeOwnerResolver{}, exportStore)

	req := httptest.NewRequest(http.MethodPost, "/transactions/export", nil)
	req.Header.Set("UserEmail", "alice@example.com")
	response := controller.Handle(presentationProtocols.HttpRequest{
		Header: req.Header, UrlParams: req.URL.Query(), Req: req,
	})

	assert.Equal(t, http.StatusCreated, response.StatusCode)
	envelope := decodeEnvelope(t, response)
	data, ok := envelope.Data.(map[string]interface{})
	require.True(t, ok)
	key, _ := data["key"].(string)
	require.NotEmpty(t, key)
	assert.Equal(t, float64(2), data["records"])

	// The staged bytes are a readable workbook with the union of columns,
	// id first.
	payload := exportStore.saved[key]
	require.NotEmpty(t, payload)
	workbook, err := excelize.OpenReader(bytes.NewReader(payload))
	require.NoError(t, err)
	defer workbook.Close()

	rows, err := workbook.GetRows(exportSheet)
	require.NoError(t, err)
	require.GreaterOrEqual(t, len(rows), 3)
	assert.Equal(t, "id", rows[0][0])
	assert.Contains(t, rows[0], "amount")
	assert.Contains(t, rows[0], "category")
	assert.Contains(t, rows[0], "note")
}

func TestDownloadExport(t *testing.T) {
	exportStore := &memoryExportStore{saved: map[string][]byte{"abc": []byte("workbook-bytes")}}
	controller := NewDownloadExportController(exportStore)

	req := httptest.NewRequest(http.MethodGet, "/transactions/export/abc", nil)
	req.SetPathValue("key", "abc")
	response := controller.Handle(presentationProtocols.HttpRequest{
		Header: req.Header, UrlParams: req.URL.Query(), Req: req,
	})

	assert.Equal(t, http.StatusOK, response.StatusCode)
	assert.Equal(t, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", response.ContentType)
	raw, err := io.ReadAll(response.Body)
	require.NoError(t, err)
	assert.Equal(t, []byte("workbook-bytes"), raw)
}

func TestDownloadExportExpired(t *testing.T) {
	controller := NewDownloadExportController(&memoryExportStore{})

	req := httptest.NewRequest(http.MethodGet, "/transactions/export/gone", nil)
	req.SetPathValue("key", "gone")
	response := controller.Handle(presentationProtocols.HttpRequest{
		Header: req.Header, UrlParams: req.URL.Query(), Req: req,
	})

	assert.Equal(t, http.StatusNotFound, response.StatusCode)
}

func makeImportRequest(t *testing.T, filename, content string) presentationProtocols.HttpRequest {
	t.Helper()
	body := new(bytes.Buffer)
	writer := multipart.NewWriter(body)
	part, err := writer.CreateFormFile("file", filename)
	require.NoError(t, err)
	_, err = part.Write([]byte(content))
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	req := httptest.NewRequest(http.MethodPost, "/transactions/import", body)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	req.Header.Set("UserEmail", "alice@example.com")
	return presentationProtocols.HttpRequest{
		Body: req.Body, Header: req.Header, UrlParams: req.URL.Query(), Req: req,
	}
}

func TestImportCsv(t *testing.T) {
	store := &fakeTransactionStore{}
	controller := NewImportTransactionsController(store, &fakeOwnerResolver{})

	response := controller.Handle(makeImportRequest(t, "transactions.csv",
		"amount,category,recurring\n12.5,rent,true\n3,coffee,false\n"))

	assert.Equal(t, http.StatusCreated, response.StatusCode)
	require.Len(t, store.created, 2)

	first := store.created[0]
	assert.Equal(t, 12.5, first["amount"], "numeric cells stay numbers")
	assert.Equal(t, "rent", first["category"])
	assert.Equal(t, true, first["recurring"], "boolean cells stay booleans")
	assert.Equal(t, "alice@example.com", first["created_by"])
	assert.Contains(t, first, "created_date")
}

func TestImportSkipsIdColumn(t *testing.T) {
	store := &fakeTransactionStore{}
	controller := NewImportTransactionsController(store, &fakeOwnerResolver{})

	response := controller.Handle(makeImportRequest(t, "transactions.csv",
		"id,amount\nstale-id,10\n"))

	assert.Equal(t, http.StatusCreated, response.StatusCode)
	require.Len(t, store.created, 1)
	assert.NotContains(t, store.created[0], "id")
}

func TestImportEnforcesCreationRules(t *testing.T) {
	store := &fakeTransactionStore{}
	controller := NewImportTransactionsController(store, &fakeOwnerResolver{})

	response := controller.Handle(makeImportRequest(t, "transactions.csv",
		"note\nno amount here\n"))

	assert.Equal(t, http.StatusBadRequest, response.StatusCode)
	assert.Empty(t, store.created, "nothing is written when a row fails validation")

	envelope := decodeEnvelope(t, response)
	assert.Contains(t, envelope.Error, "row 2")
	assert.Contains(t, envelope.Error, "amount")
}

func TestImportRejectsUnsupportedExtension(t *testing.T) {
	controller := NewImportTransactionsController(&fakeTransactionStore{}, &fakeOwnerResolver{})

	response := controller.Handle(makeImportRequest(t, "transactions.pdf", "junk"))

	assert.Equal(t, http.StatusBadRequest, response.StatusCode)
}

func TestImportRequiresRecords(t *testing.T) {
	controller := NewImportTransactionsController(&fakeTransactionStore{}, &fakeOwnerResolver{})

	response := controller.Handle(makeImportRequest(t, "transactions.csv", "amount,category\n"))

	assert.Equal(t, http.StatusBadRequest, response.StatusCode)
}

func TestCollectColumnsPutsIdFirst(t *testing.T) {
	columns := collectColumns([]map[string]interface{}{
		{"zebra": 1, "id": "x", "amount": 2},
	})

	require.NotEmpty(t, columns)
	assert.Equal(t, "id", columns[0])
	assert.ElementsMatch(t, []string{"id", "zebra", "amount"}, columns)
}
