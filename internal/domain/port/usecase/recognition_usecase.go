package usecase

import (
	"context"
	"time"
)

// SendRecognitionRequest represents an incoming recognition send request
type SendRecognitionRequest struct {
	ReceiverID uint64 `json:"receiverId"`
	Credits    int    `json:"credits"`
	Message    string `json:"message"`
}

// RecognitionResponse represents a newly created recognition
type RecognitionResponse struct {
	ID         string    `json:"id"`
	SenderID   uint64    `json:"senderId"`
	ReceiverID uint64    `json:"receiverId"`
	Credits    int       `json:"credits"`
	Message    string    `json:"message"`
	CreatedAt  time.Time `json:"createdAt"`
}

// RecognitionFeedItem is one row of a recognition feed, enriched with party
// names and the endorsement count
type RecognitionFeedItem struct {
	ID                string    `json:"id"`
	SenderName        string    `json:"senderName"`
	SenderEmail       string    `json:"senderEmail"`
	ReceiverName      string    `json:"receiverName,omitempty"`
	ReceiverEmail     string    `json:"receiverEmail,omitempty"`
	Credits           int       `json:"credits"`
	Message           string    `json:"message"`
	CreatedAt         time.Time `json:"createdAt"`
	EndorsementsCount int       `json:"endorsementsCount"`
}

// RecognitionUseCase defines methods for recognition-related business operations
type RecognitionUseCase interface {
	// Send validates and executes a credit transfer from sender to receiver,
	// creating the recognition record atomically with both balance mutations
	Send(ctx context.Context, senderID uint64, req SendRecognitionRequest) (*RecognitionResponse, error)

	// ListForReceiver returns the recognitions a user has received, newest first
	ListForReceiver(ctx context.Context, receiverID uint64) ([]RecognitionFeedItem, error)

	// ListRecent returns the global recognition feed, newest first
	ListRecent(ctx context.Context, limit int) ([]RecognitionFeedItem, error)
}
