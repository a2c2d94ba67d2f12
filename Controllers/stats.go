package Controllers

import (
	"log"
	"net/http"

	"github.com/surya07-dot/Blood-Bank-Donation-Network/Models"

	"github.com/gin-gonic/gin"
)

func FetchBloodStock(c *gin.Context) {
	stock, err := Models.FetchBloodStock()
	if err != nil {
		log.Println(err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	type StockResponse struct {
		BloodGroup string `json:"blood_group"`
		Units      uint   `json:"units"`
	}

	output := make([]StockResponse, 0, len(stock))
	for _, entry := range stock {
		output = append(output, StockResponse{BloodGroup: entry.BloodGroup, Units: entry.UnitsAvailable})
	}

	c.JSON(http.StatusOK, gin.H{"stock": output})
}

// FetchSummary backs the public landing page: current stock plus the two
// headline counters.
func FetchSummary(c *gin.Context) {
	stock, err := Models.FetchBloodStock()
	if err != nil {
		log.Println(err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	donorsCount, err := Models.CountDonors()
	if err != nil {
		log.Println(err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	pendingRequests, err := Models.CountRequestsByStatus(Models.StatusPending)
	if err != nil {
		log.Println(err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"stock":            stock,
		"donors_count":     donorsCount,
		"pending_requests": pendingRequests,
	})
}

func FetchStats(c *gin.Context) {
	var output struct {
		TotalDonors      int64 `json:"total_donors"`
		TotalRequests    int64 `json:"total_requests"`
		PendingRequests  int64 `json:"pending_requests"`
		ApprovedRequests int64 `json:"approved_requests"`
	}

	var err error
	if output.TotalDonors, err = Models.CountDonors(); err != nil {
		log.Println(err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if output.TotalRequests, err = Models.CountRequests(); err != nil {
		log.Println(err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if output.PendingRequests, err = Models.CountRequestsByStatus(Models.StatusPending); err != nil {
		log.Println(err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if output.ApprovedRequests, err = Models.CountRequestsByStatus(Models.StatusApproved); err != nil {
		log.Println(err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, output)
}
