package repository

import (
	"gorm.io/gorm"

	"github.com/Althaj-p/Ecom-Backend/entity"
)

type ChatRepository struct {
	DB *gorm.DB
}

func NewChatRepository(db *gorm.DB) *ChatRepository {
	return &ChatRepository{DB: db}
}

func (r *ChatRepository) FindRoomsByCustomer(userID uint) ([]entity.ChatRoom, error) {
	var rooms []entity.ChatRoom
	err := r.DB.
		Preload("SupportAgent").
		Where("customer_id = ?", userID).
		Find(&rooms).Error
	return rooms, err
}

func (r *ChatRepository) FindRoomByRoomID(roomID string) (*entity.ChatRoom, error) {
	var room entity.ChatRoom
	if err := r.DB.Where("room_id = ?", roomID).First(&room).Error; err != nil {
		return nil, err
	}
	return &room, nil
}

func (r *ChatRepository) CreateRoom(room *entity.ChatRoom) error {
	return r.DB.Create(room).Error
}

func (r *ChatRepository) LastMessage(roomID uint) (*entity.Message, error) {
	var msg entity.Message
	err := r.DB.Where("room_id = ?", roomID).Order("created_at DESC").First(&msg).Error
	if err != nil {
		return nil, err
	}
	return &msg, nil
}

func (r *ChatRepository) FindMessagesByRoom(roomID uint) ([]entity.Message, error) {
	var msgs []entity.Message
	err := r.DB.
		Preload("Sender").
		Where("room_id = ?", roomID).
		Order("created_at ASC").
		Find(&msgs).Error
	return msgs, err
}

func (r *ChatRepository) CreateMessage(msg *entity.Message) error {
	return r.DB.Create(msg).Error
}
