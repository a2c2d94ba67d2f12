package CronJobs

import (
	"fmt"
	"log"
	"time"

	"github.com/surya07-dot/Blood-Bank-Donation-Network/Models"

	"github.com/go-co-op/gocron"
	"gorm.io/gorm"
)

// StockMonitor periodically scans the inventory and logs blood groups that
// are running low so staff can plan donation drives.
type StockMonitor struct {
	DB        *gorm.DB
	Threshold uint
}

func NewStockMonitor(db *gorm.DB) *StockMonitor {
	return &StockMonitor{
		DB:        db,
		Threshold: 3,
	}
}

// StartMonitorCron starts the cron job that checks stock levels every hour.
func (sm *StockMonitor) StartMonitorCron() *gocron.Scheduler {
	scheduler := gocron.NewScheduler(time.Local)

	scheduler.Every(1).Hours().Do(func() {
		log.Println("Running low stock check...")
		if err := sm.CheckLowStock(); err != nil {
			log.Printf("Error checking stock levels: %v", err)
		}
	})

	scheduler.StartAsync()
	log.Println("Stock monitor cron job started")

	return scheduler
}

func (sm *StockMonitor) CheckLowStock() error {
	var stock []Models.BloodStock

	if err := sm.DB.Model(&Models.BloodStock{}).Order("blood_group asc").Find(&stock).Error; err != nil {
		return fmt.Errorf("failed to query blood stock: %w", err)
	}

	seen := make(map[string]uint, len(stock))
	for _, entry := range stock {
		seen[entry.BloodGroup] = entry.UnitsAvailable
		if entry.UnitsAvailable < sm.Threshold {
			log.Printf("Low stock warning: %s has %d unit(s) available", entry.BloodGroup, entry.UnitsAvailable)
		}
	}

	// Groups nobody has donated for yet have no stock row at all.
	for _, group := range Models.BloodGroups {
		if _, ok := seen[group]; !ok {
			log.Printf("Low stock warning: %s has no units available", group)
		}
	}

	return nil
}
