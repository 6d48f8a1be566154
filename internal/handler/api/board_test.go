package api_test

import (
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"cinema-scheduler/internal/domain/roomevent"
	"cinema-scheduler/internal/handler/api"
	queriesmock "cinema-scheduler/internal/mock/queries"
	"cinema-scheduler/internal/pkg/clock"
	"cinema-scheduler/internal/testutil"
	"cinema-scheduler/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type BoardHandlerTestSuite struct {
	suite.Suite
	router      *gin.Engine
	mockCtrl    *gomock.Controller
	mockQueries *queriesmock.MockBoardQueries
	clock       *clock.MockClock
}

func (s *BoardHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockQueries = queriesmock.NewMockBoardQueries(s.mockCtrl)
	s.clock = clock.NewMockClock(testutil.At(2022, time.October, 17, 12, 0))

	h := api.NewBoardHandler(s.mockQueries, s.clock)
	s.router.GET("/api/board", h.GetBoard)
}

func (s *BoardHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestBoardHandlerSuite(t *testing.T) {
	suite.Run(t, new(BoardHandlerTestSuite))
}

func (s *BoardHandlerTestSuite) TestGetBoard() {
	roomID := uuid.New()
	movieID := uuid.New()
	glasses := true
	showKind := "REGULAR"
	board := &queries.CinemaBoard{Board: []queries.RoomPlan{
		{RoomID: roomID, Events: []queries.EventView{
			{
				ID: uuid.New(), Kind: "SHOW",
				From: testutil.At(2022, time.October, 17, 16, 0), To: testutil.At(2022, time.October, 17, 18, 0),
				MovieID: &movieID, Requires3DGlasses: &glasses, ShowKind: &showKind,
			},
			{
				ID: uuid.New(), Kind: "CLEANING",
				From: testutil.At(2022, time.October, 17, 18, 0), To: testutil.At(2022, time.October, 17, 18, 15),
			},
		}},
	}}

	s.Run("success: defaults to today", func() {
		today := queries.GetCinemaBoardQuery{Days: []roomevent.Day{roomevent.NewDay(2022, time.October, 17)}}
		s.mockQueries.EXPECT().GetCinemaBoard(gomock.Any(), today).Return(board, nil).Times(1)

		rec := testutil.PerformRequest(s.T(), s.router, http.MethodGet, "/api/board", nil)

		var body map[string]any
		testutil.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)

		plans, ok := body["board"].([]any)
		s.Require().True(ok)
		s.Require().Len(plans, 1)
		plan := plans[0].(map[string]any)
		s.Equal(roomID.String(), plan["roomId"])

		events := plan["events"].([]any)
		s.Require().Len(events, 2)
		show := events[0].(map[string]any)
		s.Equal("SHOW", show["kind"])
		s.Equal(movieID.String(), show["movieId"])
		s.Equal(true, show["requires3dGlasses"])
		s.Equal("REGULAR", show["showKind"])
		s.Equal("2022-10-17T16:00:00Z", show["from"])

		slot := events[1].(map[string]any)
		s.Equal("CLEANING", slot["kind"])
		s.NotContains(slot, "movieId")
		s.NotContains(slot, "reason")
	})

	s.Run("success: explicit days", func() {
		query := queries.GetCinemaBoardQuery{Days: []roomevent.Day{
			roomevent.NewDay(2022, time.October, 17),
			roomevent.NewDay(2022, time.October, 18),
		}}
		s.mockQueries.EXPECT().GetCinemaBoard(gomock.Any(), query).
			Return(&queries.CinemaBoard{Board: []queries.RoomPlan{}}, nil).Times(1)

		rec := testutil.PerformRequest(s.T(), s.router, http.MethodGet, "/api/board?days=2022-10-17,%202022-10-18", nil)
		s.Equal(http.StatusOK, rec.Code)

		var body struct {
			Board json.RawMessage `json:"board"`
		}
		s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &body))
		s.JSONEq(`[]`, string(body.Board))
	})

	s.Run("error: 400 on malformed day", func() {
		rec := testutil.PerformRequest(s.T(), s.router, http.MethodGet, "/api/board?days=17.10.2022", nil)
		testutil.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid days")
	})
}
