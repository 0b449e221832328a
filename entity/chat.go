package entity

import (
	"gorm.io/gorm"
)

type ChatRoom struct {
	gorm.Model
	RoomID string `gorm:"uniqueIndex;not null" json:"room_id"`

	CustomerID uint `gorm:"index" json:"customer_id"`
	Customer   User `gorm:"foreignKey:CustomerID" json:"-"`

	SupportAgentID uint `json:"support_agent_id"`
	SupportAgent   User `gorm:"foreignKey:SupportAgentID" json:"-"`

	Messages []Message `gorm:"foreignKey:RoomID;references:ID" json:"-"`
}

type Message struct {
	gorm.Model
	RoomID uint     `gorm:"index" json:"room_id"`
	Room   ChatRoom `json:"-"`

	SenderID uint   `json:"sender_id"`
	Sender   User   `gorm:"foreignKey:SenderID" json:"-"`
	Text     string `json:"text"`
}
