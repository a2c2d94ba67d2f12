package Controllers

import (
	"errors"
	"log"
	"net/http"

	"github.com/surya07-dot/Blood-Bank-Donation-Network/Models"
	"github.com/surya07-dot/Blood-Bank-Donation-Network/SSE"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type BloodRequestInput struct {
	PatientName  string `json:"patient_name" binding:"required"`
	HospitalName string `json:"hospital_name" binding:"required"`
	BloodGroup   string `json:"blood_group" binding:"required"`
	Units        uint   `json:"units"`
	Phone        string `json:"phone" binding:"required"`
}

func RequestBlood(c *gin.Context) {
	var input BloodRequestInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	request := Models.BloodRequest{
		PatientName:  input.PatientName,
		HospitalName: input.HospitalName,
		BloodGroup:   input.BloodGroup,
		Units:        input.Units,
		Phone:        input.Phone,
	}

	if err := Models.SubmitRequest(&request); err != nil {
		if errors.Is(err, Models.ErrInvalidUnits) || errors.Is(err, Models.ErrInvalidBloodGroup) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		log.Println(err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to submit request"})
		return
	}

	SSE.Broadcaster.Broadcast("refresh")
	c.JSON(http.StatusOK, gin.H{
		"message":   "Blood request submitted successfully! We will contact you soon.",
		"reference": request.Reference,
	})
}

func ManageRequest(c *gin.Context) {
	var input struct {
		RequestID uint   `json:"request_id" binding:"required"`
		Action    string `json:"action" binding:"required"`
	}

	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	request, stock, err := Models.DecideRequest(input.RequestID, input.Action)
	if err != nil {
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Request not found"})
		case errors.Is(err, Models.ErrInsufficientStock):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Not enough stock to approve this request"})
		case errors.Is(err, Models.ErrInvalidAction):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			log.Println(err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to manage request"})
		}
		return
	}

	SSE.Broadcaster.Broadcast("refresh")

	output := gin.H{
		"message": "Request " + input.Action + "d successfully",
		"request": request,
	}
	if stock != nil {
		output["stock"] = stock
	}
	c.JSON(http.StatusOK, output)
}

func CheckRequestStatus(c *gin.Context) {
	var input struct {
		Reference string `json:"reference" binding:"required"`
	}

	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	request, err := Models.FindRequestByReference(input.Reference)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "No request found for this reference"})
			return
		}
		log.Println(err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	var output struct {
		Reference  string `json:"reference"`
		BloodGroup string `json:"blood_group"`
		Units      uint   `json:"units"`
		Status     string `json:"status"`
		CreatedAt  string `json:"created_at"`
	}
	output.Reference = request.Reference
	output.BloodGroup = request.BloodGroup
	output.Units = request.Units
	output.Status = request.Status
	output.CreatedAt = request.CreatedAt.Format("2006-01-02 15:04")
	c.JSON(http.StatusOK, output)
}

func FetchRecentRequests(c *gin.Context) {
	requests, err := Models.RecentRequests(10)
	if err != nil {
		log.Println(err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	type RequestResponse struct {
		ID           uint   `json:"id"`
		PatientName  string `json:"patient_name"`
		HospitalName string `json:"hospital_name"`
		BloodGroup   string `json:"blood_group"`
		Units        uint   `json:"units"`
		Status       string `json:"status"`
		CreatedAt    string `json:"created_at"`
	}

	output := make([]RequestResponse, 0, len(requests))
	for _, request := range requests {
		output = append(output, RequestResponse{
			ID:           request.ID,
			PatientName:  request.PatientName,
			HospitalName: request.HospitalName,
			BloodGroup:   request.BloodGroup,
			Units:        request.Units,
			Status:       request.Status,
			CreatedAt:    request.CreatedAt.Format("2006-01-02 15:04"),
		})
	}

	c.JSON(http.StatusOK, gin.H{"requests": output})
}
