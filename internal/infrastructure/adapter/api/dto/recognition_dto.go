package dto

// SendRecognitionRequest represents the API request for sending recognition credits
type SendRecognitionRequest struct {
	ReceiverID uint64 `json:"receiverId" binding:"required"`
	Credits    int    `json:"credits" binding:"required"`
	Message    string `json:"message"`
}

// EndorseRequest represents the API request for endorsing a recognition
type EndorseRequest struct {
	RecognitionID string `json:"recognitionId" binding:"required"`
}
