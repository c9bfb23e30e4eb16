package models

// Connection is a directed relationship request from requester to receiver.
// A rejected request is deleted, not marked: there is no queryable record of
// who rejected whom.
type Connection struct {
	BaseModel
	RequesterID string           `gorm:"not null;index" json:"requesterId"`
	ReceiverID  string           `gorm:"not null;index" json:"receiverId"`
	Status      ConnectionStatus `gorm:"type:varchar(20);default:'pending'" json:"status"`

	Requester *User `gorm:"foreignKey:RequesterID" json:"requester,omitempty"`
	Receiver  *User `gorm:"foreignKey:ReceiverID" json:"receiver,omitempty"`
}
