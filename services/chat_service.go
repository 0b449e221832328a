package services

import (
	"errors"

	"gorm.io/gorm"

	"github.com/Althaj-p/Ecom-Backend/entity"
	"github.com/Althaj-p/Ecom-Backend/repository"
)

type ChatService struct {
	Repo *repository.ChatRepository
}

func NewChatService(repo *repository.ChatRepository) *ChatService {
	return &ChatService{Repo: repo}
}

type RoomView struct {
	RoomID       string  `json:"room_id"`
	SupportAgent string  `json:"support_agent"`
	LastMessage  *string `json:"last_message"`
}

// Rooms lists the caller's rooms with the latest message of each.
func (s *ChatService) Rooms(userID uint) ([]RoomView, error) {
	rooms, err := s.Repo.FindRoomsByCustomer(userID)
	if err != nil {
		return nil, err
	}

	out := make([]RoomView, 0, len(rooms))
	for _, room := range rooms {
		view := RoomView{
			RoomID:       room.RoomID,
			SupportAgent: room.SupportAgent.Email,
		}
		if last, err := s.Repo.LastMessage(room.ID); err == nil {
			view.LastMessage = &last.Text
		}
		out = append(out, view)
	}
	return out, nil
}

func (s *ChatService) Messages(roomID string) ([]entity.Message, error) {
	room, err := s.Repo.FindRoomByRoomID(roomID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrRoomNotFound
	}
	if err != nil {
		return nil, err
	}
	return s.Repo.FindMessagesByRoom(room.ID)
}

func (s *ChatService) SendMessage(roomID string, senderID uint, text string) (*entity.Message, error) {
	room, err := s.Repo.FindRoomByRoomID(roomID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrRoomNotFound
	}
	if err != nil {
		return nil, err
	}

	msg := &entity.Message{
		RoomID:   room.ID,
		SenderID: senderID,
		Text:     text,
	}
	if err := s.Repo.CreateMessage(msg); err != nil {
		return nil, err
	}
	return msg, nil
}

// EnsureRoom opens (or returns) the customer's room with a support agent.
func (s *ChatService) EnsureRoom(roomID string, customerID, agentID uint) (*entity.ChatRoom, error) {
	room, err := s.Repo.FindRoomByRoomID(roomID)
	if err == nil {
		return room, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	room = &entity.ChatRoom{
		RoomID:         roomID,
		CustomerID:     customerID,
		SupportAgentID: agentID,
	}
	if err := s.Repo.CreateRoom(room); err != nil {
		return nil, err
	}
	return room, nil
}
