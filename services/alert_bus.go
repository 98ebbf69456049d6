package services

import (
	"fmt"
	"time"

	"github.com/andrewdphillips61/Vita-AI/models"
	"gorm.io/gorm"
)

type alertDeps struct {
	db *gorm.DB
	rt *RealtimeHub
	ps *PushService
}

var _alert alertDeps

func InitAlertDeps(db *gorm.DB, rt *RealtimeHub, ps *PushService) {
	_alert = alertDeps{db: db, rt: rt, ps: ps}
}

// EmitAlert persists the alert and fans it out to open sockets and
// registered devices. Safe to call before InitAlertDeps; it is a no-op
// until the deps are wired.
func EmitAlert(userID uint, typ, message string) {
	if _alert.db == nil {
		return
	}
	a := &models.Alert{UserID: userID, Type: typ, Message: message, CreatedAt: time.Now()}
	_ = _alert.db.Create(a).Error

	if _alert.rt != nil {
		_alert.rt.Broadcast(userID, map[string]any{
			"kind":  "alert.created",
			"alert": a,
		})
	}
	if _alert.ps != nil {
		_alert.ps.PushToUser(userID, "Vita.AI", message, map[string]string{
			"type": typ, "alertId": fmt.Sprintf("%d", a.ID),
		})
	}
}

// NotifyGoalReached fires once the day's calorie progress hits the fixed
// target. Callers gate on the crossing so the user is not re-notified on
// every subsequent meal.
func NotifyGoalReached(userID uint, calories int) {
	EmitAlert(userID, "info", fmt.Sprintf("Meta diária de calorias atingida: %d kcal", calories))
}
