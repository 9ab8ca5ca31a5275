package productcontroller

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/tealeg/xlsx"

	"github.com/666amost/mitrabuana/models"
	"github.com/666amost/mitrabuana/store"
)

var excelHeaders = []string{
	"ID", "Name", "Description", "Price", "WeightGram",
	"LengthCm", "WidthCm", "HeightCm", "Stock", "CategoryIDs",
}

// ExportProductsToExcel streams the whole catalog as an .xlsx workbook.
func ExportProductsToExcel(s *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		products, err := s.ListProducts(store.ProductFilter{SortBy: "name"})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch products"})
			return
		}

		file := xlsx.NewFile()
		sheet, err := file.AddSheet("Products")
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create Excel sheet"})
			return
		}

		headerRow := sheet.AddRow()
		for _, h := range excelHeaders {
			headerRow.AddCell().SetValue(h)
		}

		for _, p := range products {
			row := sheet.AddRow()
			row.AddCell().SetValue(p.ID)
			row.AddCell().SetValue(p.Name)
			row.AddCell().SetValue(p.Description)
			row.AddCell().SetValue(p.Price)
			row.AddCell().SetValue(p.WeightGram)
			row.AddCell().SetValue(p.LengthCm)
			row.AddCell().SetValue(p.WidthCm)
			row.AddCell().SetValue(p.HeightCm)
			row.AddCell().SetValue(p.Stock)

			var catIDs []string
			for _, cat := range p.Categories {
				catIDs = append(catIDs, strconv.Itoa(int(cat.ID)))
			}
			row.AddCell().SetValue(strings.Join(catIDs, ","))
		}

		c.Header("Content-Disposition", `attachment; filename="products.xlsx"`)
		c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		if err := file.Write(c.Writer); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to write Excel file"})
		}
	}
}

// ImportProductsFromExcel upserts catalog rows from an uploaded workbook.
// Rows with an existing ID update that product; rows without one create a new
// product. Malformed rows are skipped and counted.
func ImportProductsFromExcel(s *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		excelFileHeader, err := c.FormFile("file")
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Excel file is required"})
			return
		}

		file, err := excelFileHeader.Open()
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to open Excel file"})
			return
		}
		defer file.Close()

		xlFile, err := xlsx.OpenReaderAt(file, excelFileHeader.Size)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to parse Excel file"})
			return
		}
		if len(xlFile.Sheets) == 0 || xlFile.Sheets[0].MaxRow < 2 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Excel file is empty or missing header row"})
			return
		}

		sheet := xlFile.Sheets[0]
		created, updated, skipped := 0, 0, 0

		for i := 1; i < sheet.MaxRow; i++ {
			row := sheet.Rows[i]

			get := func(index int) string {
				if index < len(row.Cells) {
					return strings.TrimSpace(row.Cells[index].String())
				}
				return ""
			}

			id := get(0)
			name := get(1)
			price, priceErr := strconv.ParseInt(get(3), 10, 64)
			weightGram, weightErr := strconv.Atoi(get(4))
			if name == "" || priceErr != nil || weightErr != nil {
				skipped++
				continue
			}

			lengthCm, _ := strconv.ParseFloat(get(5), 64)
			widthCm, _ := strconv.ParseFloat(get(6), 64)
			heightCm, _ := strconv.ParseFloat(get(7), 64)
			stock, _ := strconv.Atoi(get(8))

			var categoryIDs []uint
			for _, part := range strings.Split(get(9), ",") {
				if catID, catErr := strconv.Atoi(strings.TrimSpace(part)); catErr == nil {
					categoryIDs = append(categoryIDs, uint(catID))
				}
			}
			categories, catErr := s.GetCategories(categoryIDs)
			if catErr != nil {
				skipped++
				continue
			}

			if id != "" {
				if existing, getErr := s.GetProduct(id); getErr == nil {
					// Merge only workbook columns so images and timestamps
					// on the row stay untouched.
					existing.Name = name
					existing.Description = get(2)
					existing.Price = price
					existing.WeightGram = weightGram
					existing.LengthCm = lengthCm
					existing.WidthCm = widthCm
					existing.HeightCm = heightCm
					existing.Stock = stock
					existing.Categories = categories
					if updErr := s.UpdateProduct(existing); updErr != nil {
						skipped++
						continue
					}
					updated++
					continue
				}
			}

			product := models.Product{
				ID:          id,
				Name:        name,
				Description: get(2),
				Price:       price,
				WeightGram:  weightGram,
				LengthCm:    lengthCm,
				WidthCm:     widthCm,
				HeightCm:    heightCm,
				Stock:       stock,
				Categories:  categories,
			}
			if createErr := s.CreateProduct(&product); createErr != nil {
				skipped++
				continue
			}
			created++
		}

		c.JSON(http.StatusOK, gin.H{
			"message": fmt.Sprintf("Import finished: %d created, %d updated, %d skipped", created, updated, skipped),
			"created": created,
			"updated": updated,
			"skipped": skipped,
		})
	}
}
