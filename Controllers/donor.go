package Controllers

import (
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/surya07-dot/Blood-Bank-Donation-Network/Models"
	"github.com/surya07-dot/Blood-Bank-Donation-Network/SSE"

	"github.com/gin-gonic/gin"
)

type DonorInput struct {
	FullName    string `json:"full_name" binding:"required"`
	Age         int    `json:"age"`
	Gender      string `json:"gender" binding:"required"`
	BloodGroup  string `json:"blood_group" binding:"required"`
	Phone       string `json:"phone" binding:"required"`
	Email       string `json:"email"`
	City        string `json:"city" binding:"required"`
	LastDonated string `json:"last_donated"`
}

func RegisterDonor(c *gin.Context) {
	var input DonorInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var lastDonated *time.Time
	if input.LastDonated != "" {
		parsed, err := time.Parse("2006-01-02", input.LastDonated)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid last donated date format"})
			return
		}
		lastDonated = &parsed
	}

	donor := Models.Donor{
		FullName:    input.FullName,
		Age:         input.Age,
		Gender:      input.Gender,
		BloodGroup:  input.BloodGroup,
		Phone:       input.Phone,
		Email:       input.Email,
		City:        input.City,
		LastDonated: lastDonated,
	}

	if err := Models.RegisterDonor(&donor); err != nil {
		if errors.Is(err, Models.ErrInvalidAge) || errors.Is(err, Models.ErrInvalidBloodGroup) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		log.Println(err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to register donor"})
		return
	}

	SSE.Broadcaster.Broadcast("refresh")
	c.JSON(http.StatusOK, gin.H{
		"message":  "Donor registered successfully! Thank you for saving lives.",
		"donor_id": donor.ID,
	})
}

func FetchRecentDonors(c *gin.Context) {
	donors, err := Models.RecentDonors(10)
	if err != nil {
		log.Println(err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	type DonorResponse struct {
		ID         uint   `json:"id"`
		FullName   string `json:"full_name"`
		BloodGroup string `json:"blood_group"`
		City       string `json:"city"`
		CreatedAt  string `json:"created_at"`
	}

	output := make([]DonorResponse, 0, len(donors))
	for _, donor := range donors {
		output = append(output, DonorResponse{
			ID:         donor.ID,
			FullName:   donor.FullName,
			BloodGroup: donor.BloodGroup,
			City:       donor.City,
			CreatedAt:  donor.CreatedAt.Format("2006-01-02 15:04"),
		})
	}

	c.JSON(http.StatusOK, gin.H{"donors": output})
}
