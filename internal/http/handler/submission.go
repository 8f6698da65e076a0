package handler

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/fatalistix/mosaic-submit/internal/domain/model"
	"github.com/fatalistix/mosaic-submit/internal/payload"
	"github.com/labstack/echo/v4"
)

type SubmissionAccepter interface {
	Accept(hashtags []string, pieceSize model.PieceSize, originSize int) model.Submission
}

type SubmissionGetter interface {
	Get(id string) (model.Submission, bool)
}

type WorkerRequest struct {
	Origin    string           `json:"origin" validate:"stdbase64"`
	Hashtags  []string         `json:"hashtags" validate:"required,min=1,dive,required"`
	PieceSize *model.PieceSize `json:"piece_size" validate:"required"`
}

type SubmissionResponse struct {
	Id         string          `json:"id"`
	Hashtags   []string        `json:"hashtags"`
	PieceSize  model.PieceSize `json:"piece_size"`
	OriginSize int             `json:"origin_size"`
	ReceivedAt time.Time       `json:"received_at"`
}

func MakeAcceptSubmissionHandlerFunc(accepter SubmissionAccepter) echo.HandlerFunc {
	return func(c echo.Context) error {
		var request WorkerRequest

		if err := c.Bind(&request); err != nil {
			return echo.NewHTTPError(http.StatusUnsupportedMediaType, "invalid request body").SetInternal(err)
		}

		if request.PieceSize == nil {
			pieceSize := model.DefaultPieceSize
			request.PieceSize = &pieceSize
		}

		if err := c.Validate(request); err != nil {
			return echo.NewHTTPError(http.StatusUnprocessableEntity, fmt.Sprintf("invalid request body: %s", err.Error())).SetInternal(err)
		}

		origin, err := payload.Decode(request.Origin)
		if err != nil {
			return echo.NewHTTPError(http.StatusUnprocessableEntity, "invalid request body: origin is not base64").SetInternal(err)
		}

		submission := accepter.Accept(request.Hashtags, *request.PieceSize, len(origin))

		c.Response().Header().Set(echo.HeaderLocation, strings.TrimSuffix(c.Request().URL.Path, "/")+"/"+submission.Id)

		return c.String(http.StatusCreated, submission.Id)
	}
}

func MakeGetSubmissionHandlerFunc(getter SubmissionGetter) echo.HandlerFunc {
	return func(c echo.Context) error {
		submission, ok := getter.Get(c.Param("id"))
		if !ok {
			return echo.NewHTTPError(http.StatusNotFound, "Nothing is also art...")
		}

		return c.JSON(http.StatusOK, MapModelToResponse(submission))
	}
}

func MapModelToResponse(submission model.Submission) SubmissionResponse {
	return SubmissionResponse{
		Id:         submission.Id,
		Hashtags:   submission.Hashtags,
		PieceSize:  submission.PieceSize,
		OriginSize: submission.OriginSize,
		ReceivedAt: submission.ReceivedAt,
	}
}
