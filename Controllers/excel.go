package Controllers

import (
	"fmt"
	"log"
	"net/http"

	"github.com/surya07-dot/Blood-Bank-Donation-Network/Models"

	"github.com/360EntSecGroup-Skylar/excelize"
	"github.com/gin-gonic/gin"
)

func ExportDonorsExcel(c *gin.Context) {
	var donors []Models.Donor
	if err := Models.DB.Model(&Models.Donor{}).Order("created_at desc").Find(&donors).Error; err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	headers := map[string]string{
		"A1": "Full Name",
		"B1": "Age",
		"C1": "Gender",
		"D1": "Blood Group",
		"E1": "Phone",
		"F1": "City",
		"G1": "Registered",
	}
	file := excelize.NewFile()
	sheet := "Donors"
	file.NewSheet(sheet)
	file.DeleteSheet("Sheet1")
	for k, v := range headers {
		file.SetCellValue(sheet, k, v)
	}

	for i := 0; i < len(donors); i++ {
		appendRowDonor(sheet, file, i, donors)
	}
	var filename string = "./Donors.xlsx"
	if err := file.SaveAs(filename); err != nil {
		log.Println(err)
	}
	c.File(filename)
}

func appendRowDonor(sheet string, file *excelize.File, index int, rows []Models.Donor) (fileWriter *excelize.File) {
	rowCount := index + 2
	file.SetCellValue(sheet, fmt.Sprintf("A%v", rowCount), rows[index].FullName)
	file.SetCellValue(sheet, fmt.Sprintf("B%v", rowCount), rows[index].Age)
	file.SetCellValue(sheet, fmt.Sprintf("C%v", rowCount), rows[index].Gender)
	file.SetCellValue(sheet, fmt.Sprintf("D%v", rowCount), rows[index].BloodGroup)
	file.SetCellValue(sheet, fmt.Sprintf("E%v", rowCount), rows[index].Phone)
	file.SetCellValue(sheet, fmt.Sprintf("F%v", rowCount), rows[index].City)
	file.SetCellValue(sheet, fmt.Sprintf("G%v", rowCount), rows[index].CreatedAt.Format("2006-01-02"))
	return file
}

func ExportStockExcel(c *gin.Context) {
	stock, err := Models.FetchBloodStock()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	headers := map[string]string{
		"A1": "Blood Group",
		"B1": "Units Available",
	}
	file := excelize.NewFile()
	sheet := "Stock"
	file.NewSheet(sheet)
	file.DeleteSheet("Sheet1")
	for k, v := range headers {
		file.SetCellValue(sheet, k, v)
	}

	for i := 0; i < len(stock); i++ {
		rowCount := i + 2
		file.SetCellValue(sheet, fmt.Sprintf("A%v", rowCount), stock[i].BloodGroup)
		file.SetCellValue(sheet, fmt.Sprintf("B%v", rowCount), stock[i].UnitsAvailable)
	}
	var filename string = "./Stock.xlsx"
	if err := file.SaveAs(filename); err != nil {
		log.Println(err)
	}
	c.File(filename)
}
