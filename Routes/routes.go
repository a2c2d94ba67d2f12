package Routes

import (
	"github.com/surya07-dot/Blood-Bank-Donation-Network/Controllers"
	"github.com/surya07-dot/Blood-Bank-Donation-Network/Middleware"
	"github.com/surya07-dot/Blood-Bank-Donation-Network/SSE"

	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"
)

func ConfigRoutes(router *gin.Engine) {
	// Gzip Compression
	router.Use(gzip.Gzip(gzip.BestSpeed))

	// Public routes
	public := router.Group("/api")
	{
		public.POST("/login", Controllers.Login)
		public.POST("/register", Controllers.Register)
		public.POST("/RegisterDonor", Controllers.RegisterDonor)
		public.POST("/RequestBlood", Controllers.RequestBlood)
		public.POST("/CheckRequestStatus", Controllers.CheckRequestStatus)
		public.GET("/FetchBloodStock", Controllers.FetchBloodStock)
		public.GET("/FetchSummary", Controllers.FetchSummary)
	}

	// Authorized routes
	authorized := router.Group("/api/protected")
	authorized.Use(Middleware.JwtAuthMiddleware())
	{
		// User-related routes
		authorized.GET("/user", Controllers.CurrentUser)
		authorized.POST("/DeleteUser", Controllers.DeleteUser)

		// Dashboard routes
		authorized.GET("/FetchRecentDonors", Controllers.FetchRecentDonors)
		authorized.GET("/FetchRecentRequests", Controllers.FetchRecentRequests)
		authorized.GET("/FetchStats", Controllers.FetchStats)

		// SSE (Server-Sent Events) route
		authorized.GET("/RequestSSE", SSE.RequestSSE)

		// Export-related routes
		authorized.GET("/ExportDonorsExcel", Controllers.ExportDonorsExcel)
		authorized.GET("/ExportStockExcel", Controllers.ExportStockExcel)

		// Admin-only routes
		admin := authorized.Group("")
		admin.Use(Middleware.PermissionCheckAdmin())
		{
			admin.POST("/ManageRequest", Controllers.ManageRequest)
		}
	}
}
