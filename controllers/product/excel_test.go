package productcontroller

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tealeg/xlsx"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/666amost/mitrabuana/models"
	"github.com/666amost/mitrabuana/store"
)

func newTestStore(t *testing.T) *store.Store {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(&models.Product{}, &models.Category{}))
	return store.New(db)
}

func newExcelRouter(s *store.Store) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/admin/products/export-excel", ExportProductsToExcel(s))
	r.POST("/admin/products/import-excel", ImportProductsFromExcel(s))
	return r
}

func uploadWorkbook(t *testing.T, r *gin.Engine, file *xlsx.File) *httptest.ResponseRecorder {
	t.Helper()
	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	part, err := writer.CreateFormFile("file", "products.xlsx")
	require.NoError(t, err)
	require.NoError(t, file.Write(part))
	require.NoError(t, writer.Close())

	req := httptest.NewRequest(http.MethodPost, "/admin/products/import-excel", &body)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestExcelExportImportRoundTrip(t *testing.T) {
	s := newTestStore(t)
	r := newExcelRouter(s)

	oli := models.Category{Name: "Oli Mesin", Slug: "oli-mesin"}
	mobil := models.Category{Name: "Mobil", Slug: "mobil"}
	require.NoError(t, s.CreateCategory(&oli))
	require.NoError(t, s.CreateCategory(&mobil))

	product := models.Product{
		Name: "Oli Mesin Sintetik 10W-40", Price: 85000, WeightGram: 920, Stock: 5,
		Images:     models.StringSlice{"/uploads/products/oli.jpg"},
		Categories: []models.Category{oli, mobil},
	}
	require.NoError(t, s.CreateProduct(&product))
	createdAt := product.CreatedAt

	req := httptest.NewRequest(http.MethodGet, "/admin/products/export-excel", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	workbook, err := xlsx.OpenBinary(w.Body.Bytes())
	require.NoError(t, err)
	require.Len(t, workbook.Sheets, 1)
	sheet := workbook.Sheets[0]
	require.Equal(t, 2, sheet.MaxRow)

	// Edit the exported sheet the way an admin would: bump the price, drop
	// one category, and add a brand-new row.
	row := sheet.Rows[1]
	require.Equal(t, product.ID, row.Cells[0].String())
	row.Cells[3].SetValue(90000)
	row.Cells[9].SetValue(strconv.Itoa(int(oli.ID)))

	added := sheet.AddRow()
	for _, v := range []interface{}{
		"", "Filter Oli Racing", "Filter oli aftermarket", 45000, 250,
		8.0, 8.0, 6.0, 12, "",
	} {
		added.AddCell().SetValue(v)
	}

	resp := uploadWorkbook(t, r, workbook)
	require.Equal(t, http.StatusOK, resp.Code)

	var result struct {
		Created int `json:"created"`
		Updated int `json:"updated"`
		Skipped int `json:"skipped"`
	}
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &result))
	assert.Equal(t, 1, result.Created)
	assert.Equal(t, 1, result.Updated)
	assert.Equal(t, 0, result.Skipped)

	// The workbook carries no image column, so images and timestamps on the
	// existing row survive the import.
	after, err := s.GetProduct(product.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(90000), after.Price)
	assert.Equal(t, models.StringSlice{"/uploads/products/oli.jpg"}, after.Images)
	assert.Equal(t, createdAt.Unix(), after.CreatedAt.Unix())
	require.Len(t, after.Categories, 1)
	assert.Equal(t, "Oli Mesin", after.Categories[0].Name)

	all, err := s.ListProducts(store.ProductFilter{})
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestExcelImportSkipsMalformedRows(t *testing.T) {
	s := newTestStore(t)
	r := newExcelRouter(s)

	file := xlsx.NewFile()
	sheet, err := file.AddSheet("Products")
	require.NoError(t, err)
	header := sheet.AddRow()
	for _, h := range excelHeaders {
		header.AddCell().SetValue(h)
	}
	bad := sheet.AddRow()
	for _, v := range []interface{}{"", "", "no name", "abc", "x", "", "", "", "", ""} {
		bad.AddCell().SetValue(v)
	}
	good := sheet.AddRow()
	for _, v := range []interface{}{
		"", "Busi Iridium", "", 60000, 50, 2.0, 2.0, 7.0, 20, "",
	} {
		good.AddCell().SetValue(v)
	}

	resp := uploadWorkbook(t, r, file)
	require.Equal(t, http.StatusOK, resp.Code)

	var result struct {
		Created int `json:"created"`
		Skipped int `json:"skipped"`
	}
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &result))
	assert.Equal(t, 1, result.Created)
	assert.Equal(t, 1, result.Skipped)
}
