package audit

import (
	"time"
)

const (
	ActionLogin         = "login"
	ActionDecide        = "decide"
	ActionCreateAccount = "create_account"
)

// Entry is one append-only audit record. The sheet itself keeps no history
// of who decided what, so decisions and provisioning are mirrored here.
type Entry struct {
	ID        uint64    `gorm:"column:id;primaryKey;autoIncrement"`
	EventID   string    `gorm:"column:event_id;type:char(32);not null;uniqueIndex:ux_audit_event_id"`
	Actor     string    `gorm:"column:actor;size:128;not null;index"`
	Action    string    `gorm:"column:action;size:32;not null"`
	Detail    string    `gorm:"column:detail;type:text"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime"`
}

func (Entry) TableName() string { return "audit_entries" }
