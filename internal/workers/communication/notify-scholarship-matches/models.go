// internal/workers/communication/notify-scholarship-matches/models.go
package notifyscholarshipmatches

import "scholarship-matcher/internal/models"

type Input struct {
	Channel     string                    `json:"channel"`
	Email       string                    `json:"email,omitempty"`
	PhoneNumber string                    `json:"phoneNumber,omitempty"`
	StudentName string                    `json:"studentName,omitempty"`
	Locale      string                    `json:"locale,omitempty"`
	Matches     []models.ScholarshipMatch `json:"matches"`
}

type Output = models.Notification
