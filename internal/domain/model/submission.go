package model

import (
	"encoding/json"
	"fmt"
	"time"
)

var DefaultPieceSize = PieceSize{Width: 30, Height: 30}

type SubmissionRequest struct {
	Origin    string    `json:"origin"`
	Hashtags  []string  `json:"hashtags"`
	PieceSize PieceSize `json:"piece_size"`
}

type SubmissionResult struct {
	StatusCode int
	Body       string
}

// PieceSize travels as a two element array: [width, height].
type PieceSize struct {
	Width  int `validate:"gt=0"`
	Height int `validate:"gt=0"`
}

func (p PieceSize) MarshalJSON() ([]byte, error) {
	return json.Marshal([2]int{p.Width, p.Height})
}

func (p *PieceSize) UnmarshalJSON(data []byte) error {
	var pair []int
	if err := json.Unmarshal(data, &pair); err != nil {
		return err
	}

	if len(pair) != 2 {
		return fmt.Errorf("piece size must have exactly 2 elements, got %d", len(pair))
	}

	p.Width = pair[0]
	p.Height = pair[1]

	return nil
}

type Submission struct {
	Id         string
	Hashtags   []string
	PieceSize  PieceSize
	OriginSize int
	ReceivedAt time.Time
}
