package router_test

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"regexp"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/suite"

	"github.com/FACorreiaa/go-starwars-favorites/config"
	"github.com/FACorreiaa/go-starwars-favorites/internal/container"
	"github.com/FACorreiaa/go-starwars-favorites/internal/router"
)

// E2ETestSuite drives the full HTTP stack down to SQL, with pgxmock standing
// in for PostgreSQL.
type E2ETestSuite struct {
	suite.Suite
	db     pgxmock.PgxPoolIface
	server *httptest.Server
	client *http.Client
}

func (s *E2ETestSuite) SetupTest() {
	db, err := pgxmock.NewPool()
	s.Require().NoError(err)
	s.db = db

	cfg := &config.Config{}
	cfg.Cache.TTL = time.Minute
	cfg.Cache.Cleanup = time.Minute
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	c := container.New(cfg, db, logger)

	mux := chi.NewMux()
	mux.Use(middleware.StripSlashes)
	mux.Mount("/", router.SetupRouter(c.RouterConfig()))

	s.server = httptest.NewServer(mux)
	s.client = s.server.Client()
}

func (s *E2ETestSuite) TearDownTest() {
	s.server.Close()
	s.NoError(s.db.ExpectationsWereMet())
	s.db.Close()
}

func (s *E2ETestSuite) do(method, path, body string) (int, map[string]any) {
	var reader io.Reader
	if body != "" {
		reader = bytes.NewBufferString(body)
	}
	req, err := http.NewRequest(method, s.server.URL+path, reader)
	s.Require().NoError(err)
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	s.Require().NoError(err)
	defer resp.Body.Close()

	var decoded map[string]any
	_ = json.NewDecoder(resp.Body).Decode(&decoded)
	return resp.StatusCode, decoded
}

func (s *E2ETestSuite) TestCreatePlanet() {
	s.db.ExpectQuery(regexp.QuoteMeta(`INSERT INTO planets (name, population)`)).
		WithArgs("Tatooine", int64(200000)).
		WillReturnRows(pgxmock.NewRows([]string{"id", "name", "population"}).AddRow(int64(1), "Tatooine", int64(200000)))

	status, body := s.do(http.MethodPost, "/planet/", `{"name":"Tatooine","population":200000}`)

	s.Equal(http.StatusCreated, status)
	data := body["data"].(map[string]any)
	s.Equal("Tatooine", data["name"])
	s.Equal(float64(200000), data["population"])
}

func (s *E2ETestSuite) TestCreatePlanet_MissingPopulationDoesNotInsert() {
	status, body := s.do(http.MethodPost, "/planet", `{"name":"Tatooine"}`)

	s.Equal(http.StatusBadRequest, status)
	s.Equal("field population is required", body["msg"])
}

func (s *E2ETestSuite) TestGetMissingUser() {
	s.db.ExpectQuery("SELECT id, email, password_hash, is_active FROM users WHERE id").
		WithArgs(int64(42)).
		WillReturnError(pgx.ErrNoRows)

	status, body := s.do(http.MethodGet, "/user/42", "")

	s.Equal(http.StatusBadRequest, status)
	s.Equal("user with id 42 does not exist", body["msg"])
}

func (s *E2ETestSuite) TestCreateUser_PasswordNeverReturned() {
	s.db.ExpectQuery(regexp.QuoteMeta(`INSERT INTO users (email, password_hash, is_active)`)).
		WithArgs("obiwan@jedi.org", pgxmock.AnyArg(), true).
		WillReturnRows(pgxmock.NewRows([]string{"id", "email", "password_hash", "is_active"}).
			AddRow(int64(1), "obiwan@jedi.org", "$2a$10$abc", true))

	status, body := s.do(http.MethodPost, "/user", `{"email":"obiwan@jedi.org","password":"highground","is_active":true}`)

	s.Equal(http.StatusCreated, status)
	data := body["data"].(map[string]any)
	s.NotContains(data, "password")
	s.NotContains(data, "password_hash")
	s.Equal("obiwan@jedi.org", data["email"])
}

func (s *E2ETestSuite) TestAddSameFavoritePlanetTwice() {
	for i, id := range []int64{10, 11} {
		s.db.ExpectQuery(regexp.QuoteMeta(`SELECT EXISTS (SELECT 1 FROM users WHERE id = $1)`)).
			WithArgs(int64(1)).
			WillReturnRows(pgxmock.NewRows([]string{"exists"}).AddRow(true))
		s.db.ExpectQuery(regexp.QuoteMeta(`SELECT EXISTS (SELECT 1 FROM planets WHERE id = $1)`)).
			WithArgs(int64(2)).
			WillReturnRows(pgxmock.NewRows([]string{"exists"}).AddRow(true))
		s.db.ExpectQuery("INSERT INTO favorite_planets").
			WithArgs(int64(1), int64(2)).
			WillReturnRows(pgxmock.NewRows([]string{"id", "user_id", "planet_id"}).AddRow(id, int64(1), int64(2)))

		status, body := s.do(http.MethodPost, "/user/1/favorites/planet/2", "")
		s.Equal(http.StatusCreated, status, "attempt %d", i+1)
		s.Equal(map[string]any{"id": float64(id), "user_id": float64(1), "planet_id": float64(2)}, body["data"])
	}
}

func (s *E2ETestSuite) TestListFavorites_Empty() {
	s.db.MatchExpectationsInOrder(false)
	s.db.ExpectQuery(regexp.QuoteMeta(`SELECT EXISTS (SELECT 1 FROM users WHERE id = $1)`)).
		WithArgs(int64(1)).
		WillReturnRows(pgxmock.NewRows([]string{"exists"}).AddRow(true))
	s.db.ExpectQuery("FROM favorite_planets f").WithArgs(int64(1)).
		WillReturnRows(pgxmock.NewRows([]string{"fid", "id", "name", "population"}))
	s.db.ExpectQuery("FROM favorite_characters f").WithArgs(int64(1)).
		WillReturnRows(pgxmock.NewRows([]string{"fid", "id", "name", "height", "gender"}))
	s.db.ExpectQuery("FROM favorite_starships f").WithArgs(int64(1)).
		WillReturnRows(pgxmock.NewRows([]string{"fid", "id", "model", "passengers"}))

	status, body := s.do(http.MethodGet, "/user/1/favorites", "")

	s.Equal(http.StatusOK, status)
	s.Equal(map[string]any{
		"planets":    []any{},
		"characters": []any{},
		"starships":  []any{},
	}, body["data"])
}

// The favorite row removal itself is the schema's ON DELETE CASCADE, checked in
// app/db. Here only the HTTP responses around it are exercised.
func (s *E2ETestSuite) TestRemoveFavoriteAfterPlanetDelete_ReportsMissing() {
	s.db.ExpectExec(regexp.QuoteMeta(`DELETE FROM planets WHERE id = $1`)).
		WithArgs(int64(2)).
		WillReturnResult(pgxmock.NewResult("DELETE", 1))
	s.db.ExpectExec("DELETE FROM favorite_planets").
		WithArgs(int64(1), int64(2)).
		WillReturnResult(pgxmock.NewResult("DELETE", 0))

	status, _ := s.do(http.MethodDelete, "/planet/2", "")
	s.Equal(http.StatusOK, status)

	status, body := s.do(http.MethodDelete, "/user/1/favorites/planet/2", "")
	s.Equal(http.StatusBadRequest, status)
	s.Equal("user 1 has no favorite planet with id 2", body["msg"])
}

func (s *E2ETestSuite) TestMalformedID() {
	status, body := s.do(http.MethodGet, "/starship/abc", "")

	s.Equal(http.StatusBadRequest, status)
	s.Contains(body["msg"], "positive integer")
}

func TestE2ETestSuite(t *testing.T) {
	suite.Run(t, new(E2ETestSuite))
}
