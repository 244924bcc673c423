package httpapi

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	sonic "github.com/bytedance/sonic"
	"github.com/stretchr/testify/suite"

	"github.com/riskibarqy/castaway-league/internal/domain/castaway"
	"github.com/riskibarqy/castaway-league/internal/domain/draft"
	"github.com/riskibarqy/castaway-league/internal/domain/league"
	"github.com/riskibarqy/castaway-league/internal/domain/period"
	"github.com/riskibarqy/castaway-league/internal/domain/season"
	"github.com/riskibarqy/castaway-league/internal/infrastructure/account/jwtauth"
	"github.com/riskibarqy/castaway-league/internal/infrastructure/repository/memory"
	"github.com/riskibarqy/castaway-league/internal/platform/id"
	"github.com/riskibarqy/castaway-league/internal/platform/logging"
	"github.com/riskibarqy/castaway-league/internal/usecase"
)

type envelope struct {
	Data  any `json:"data"`
	Error *struct {
		Code   int    `json:"code"`
		Status string `json:"status"`
	} `json:"error"`
}

type RouterTestSuite struct {
	suite.Suite
	router   http.Handler
	verifier *jwtauth.Verifier
	tokens   map[string]string
}

func TestRouterTestSuite(t *testing.T) {
	suite.Run(t, new(RouterTestSuite))
}

func (s *RouterTestSuite) SetupTest() {
	now := time.Now().UTC()
	store := memory.NewStore()
	store.PutLeague(
		league.League{ID: "l1", Name: "Tribal Council"},
		league.Membership{LeagueID: "l1", ParticipantID: "p1", Role: league.RoleCommissioner, JoinedAt: now.Add(-3 * time.Hour)},
		league.Membership{LeagueID: "l1", ParticipantID: "p2", Role: league.RoleMember, JoinedAt: now.Add(-2 * time.Hour)},
	)
	store.PutSeason(season.Season{ID: "s1", LeagueID: "l1", Name: "One", RosterSize: 2, DraftStyle: draft.StyleSnake, SpoilerLockEnabled: true})
	store.PutCastaways(
		castaway.Castaway{ID: "c1", SeasonID: "s1", Name: "Parvati"},
		castaway.Castaway{ID: "c2", SeasonID: "s1", Name: "Sandra"},
		castaway.Castaway{ID: "c3", SeasonID: "s1", Name: "Tony"},
		castaway.Castaway{ID: "c4", SeasonID: "s1", Name: "Kim"},
	)
	store.PutPeriods(
		period.Period{ID: "e1", SeasonID: "s1", Number: 1, ReleaseAt: now.Add(-time.Hour)},
		period.Period{ID: "e2", SeasonID: "s1", Number: 2, ReleaseAt: now.Add(24 * time.Hour)},
	)

	logger := logging.NewNop()
	draftService := usecase.NewDraftService(store.Seasons(), store.Leagues(), store.Castaways(), store.Drafts(), store.Rosters(), id.NewSequence("id"), logger)
	scoringService := usecase.NewScoringService(store.Seasons(), store.Periods(), store.Castaways(), store.Scoring(), nil, id.NewSequence("outcome"), logger, 2)
	accessService := usecase.NewAccessService(store.Leagues(), store.Seasons(), store.Drafts())

	verifier, err := jwtauth.NewVerifier(jwtauth.Config{Secret: "router-secret"}, nil, logger)
	s.Require().NoError(err)
	s.verifier = verifier

	s.tokens = map[string]string{}
	for _, pid := range []string{"p1", "p2", "stranger"} {
		token, err := verifier.Issue(pid, pid, time.Hour)
		s.Require().NoError(err)
		s.tokens[pid] = token
	}

	s.router = NewRouter(NewHandler(draftService, scoringService, accessService, logger), verifier, logger, []string{"*"})
}

func (s *RouterTestSuite) do(method, path, as, body string) (int, envelope) {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if as != "" {
		req.Header.Set("Authorization", "Bearer "+s.tokens[as])
	}
	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)

	var out envelope
	s.Require().NoError(sonic.Unmarshal(rec.Body.Bytes(), &out), rec.Body.String())
	return rec.Code, out
}

func (s *RouterTestSuite) draftID() string {
	code, body := s.do(http.MethodGet, "/v1/seasons/s1/draft", "p1", "")
	s.Require().Equal(http.StatusOK, code)
	board := body.Data.(map[string]any)
	return board["draft"].(map[string]any)["id"].(string)
}

func (s *RouterTestSuite) TestHealthzIsPublic() {
	code, body := s.do(http.MethodGet, "/healthz", "", "")
	s.Equal(http.StatusOK, code)
	s.Equal(map[string]any{"status": "ok"}, body.Data)
}

func (s *RouterTestSuite) TestMissingTokenIsUnauthorized() {
	code, body := s.do(http.MethodGet, "/v1/seasons/s1/draft", "", "")
	s.Equal(http.StatusUnauthorized, code)
	s.Equal("UNAUTHENTICATED", body.Error.Status)
}

func (s *RouterTestSuite) TestNonMemberIsForbidden() {
	code, body := s.do(http.MethodGet, "/v1/seasons/s1/standings", "stranger", "")
	s.Equal(http.StatusForbidden, code)
	s.Equal("PERMISSION_DENIED", body.Error.Status)
}

func (s *RouterTestSuite) TestDraftBoardShowsTurn() {
	code, body := s.do(http.MethodGet, "/v1/seasons/s1/draft", "p1", "")
	s.Require().Equal(http.StatusOK, code)

	board := body.Data.(map[string]any)
	s.Equal("p1", board["current_picker_id"])
	s.Equal(true, board["is_my_turn"])
	s.Len(board["available"], 4)
	s.EqualValues(4, board["total_picks"])
}

func (s *RouterTestSuite) TestPickFlowAndRejections() {
	draftID := s.draftID()
	picksPath := "/v1/drafts/" + draftID + "/picks"

	code, body := s.do(http.MethodPost, picksPath, "p2", `{"castaway_id":"c1"}`)
	s.Equal(http.StatusConflict, code)
	s.Equal("FAILED_PRECONDITION", body.Error.Status)

	code, body = s.do(http.MethodPost, picksPath, "p1", `{"castaway_id":"c1"}`)
	s.Require().Equal(http.StatusCreated, code)
	s.Equal("p2", body.Data.(map[string]any)["next_participant_id"])

	code, body = s.do(http.MethodPost, picksPath, "p2", `{"castaway_id":"c1"}`)
	s.Equal(http.StatusConflict, code)
	s.Equal("ALREADY_EXISTS", body.Error.Status)

	code, _ = s.do(http.MethodPost, picksPath, "p2", `{"castaway_id":"c2","extra":true}`)
	s.Equal(http.StatusBadRequest, code)

	code, _ = s.do(http.MethodPost, picksPath, "p2", `{}`)
	s.Equal(http.StatusBadRequest, code)

	code, body = s.do(http.MethodGet, "/v1/seasons/s1/rosters/me", "p1", "")
	s.Require().Equal(http.StatusOK, code)
	s.Len(body.Data, 1)
}

func (s *RouterTestSuite) TestOutcomeRequiresCommissionerAndRespectsSpoilerLock() {
	payload := `{"castaway_id":"c1","kind":"IMMUNITY_WIN"}`

	code, _ := s.do(http.MethodPost, "/v1/seasons/s1/periods/e1/outcomes", "p2", payload)
	s.Equal(http.StatusForbidden, code)

	code, body := s.do(http.MethodPost, "/v1/seasons/s1/periods/e2/outcomes", "p1", payload)
	s.Equal(http.StatusLocked, code)
	s.Equal("FAILED_PRECONDITION", body.Error.Status)

	code, _ = s.do(http.MethodPost, "/v1/seasons/s1/periods/e1/outcomes", "p1", `{"castaway_id":"c1","kind":"SNACK"}`)
	s.Equal(http.StatusBadRequest, code)

	draftID := s.draftID()
	code, _ = s.do(http.MethodPost, "/v1/drafts/"+draftID+"/picks", "p1", `{"castaway_id":"c1"}`)
	s.Require().Equal(http.StatusCreated, code)
	code, _ = s.do(http.MethodPost, "/v1/drafts/"+draftID+"/picks", "p2", `{"castaway_id":"c2"}`)
	s.Require().Equal(http.StatusCreated, code)

	code, body = s.do(http.MethodPost, "/v1/seasons/s1/periods/e1/outcomes", "p1", payload)
	s.Require().Equal(http.StatusCreated, code)
	outcomeID := body.Data.(map[string]any)["event"].(map[string]any)["id"].(string)

	code, body = s.do(http.MethodGet, "/v1/seasons/s1/standings", "p2", "")
	s.Require().Equal(http.StatusOK, code)
	standings := body.Data.([]any)
	s.Require().Len(standings, 2)
	first := standings[0].(map[string]any)
	s.Equal("p1", first["participant_id"])
	s.EqualValues(2, first["total"])

	code, _ = s.do(http.MethodDelete, "/v1/seasons/s1/outcomes/"+outcomeID, "p1", "")
	s.Require().Equal(http.StatusOK, code)

	code, body = s.do(http.MethodGet, "/v1/seasons/s1/periods/e1/scores", "p2", "")
	s.Require().Equal(http.StatusOK, code)
	for _, row := range body.Data.([]any) {
		s.EqualValues(0, row.(map[string]any)["score"])
	}
}

func (s *RouterTestSuite) TestLockStatusAndRules() {
	code, body := s.do(http.MethodGet, "/v1/seasons/s1/periods/e2/lock", "p2", "")
	s.Require().Equal(http.StatusOK, code)
	s.Equal(true, body.Data.(map[string]any)["locked"])

	code, body = s.do(http.MethodGet, "/v1/seasons/s1/scoring-rules", "p2", "")
	s.Require().Equal(http.StatusOK, code)
	resolved := body.Data.(map[string]any)["resolved"].(map[string]any)
	s.EqualValues(2, resolved["IMMUNITY_WIN"])
}

func (s *RouterTestSuite) TestRecalculateSeason() {
	code, body := s.do(http.MethodPost, "/v1/seasons/s1/recalculate", "p1", "")
	s.Require().Equal(http.StatusOK, code)
	result := body.Data.(map[string]any)
	s.EqualValues(2, result["success_count"])
	s.EqualValues(0, result["failed_count"])
}
