package integration_test

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	pgTestContainers "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"cityscout/explorer-service/internal/api/v1/handlers"
	"cityscout/explorer-service/internal/db/records"
	"cityscout/explorer-service/internal/providers"
	"cityscout/explorer-service/internal/registry"
	"cityscout/explorer-service/internal/service"
)

var (
	postgresContainer *pgTestContainers.PostgresContainer
	sharedDB          *gorm.DB
)

const (
	dbName     = "test_api_database"
	dbUser     = "test_user"
	dbPassword = "test_password"
)

func init() {
	log.Logger = zerolog.New(os.Stdout).With().Timestamp().Logger()
}

func SetupPostgres(t *testing.T) (*gorm.DB, func()) {
	if sharedDB != nil {
		for _, model := range records.AllModels() {
			require.NoError(t, sharedDB.Migrator().DropTable(model))
		}

		require.NoError(t, sharedDB.AutoMigrate(records.AllModels()...))

		return sharedDB, func() {}
	}

	log.Info().Msg("Setting up new PostgreSQL container")

	ctx := context.Background()

	var err error
	postgresContainer, err = pgTestContainers.Run(ctx,
		"postgres:13.3",
		pgTestContainers.WithDatabase(dbName),
		pgTestContainers.WithUsername(dbUser),
		pgTestContainers.WithPassword(dbPassword),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(10*time.Second)),
	)
	require.NoError(t, err)

	host, err := postgresContainer.Host(context.Background())
	require.NoError(t, err)

	endpoint, err := postgresContainer.Endpoint(context.Background(), "")
	require.NoError(t, err)

	parts := strings.Split(endpoint, ":")
	port := parts[1]

	dsn := fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		host, port, dbUser, dbPassword, dbName,
	)

	sharedDB, err = gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	log.Info().Msgf("Connected to database: %s on %s:%s", dbName, host, port)

	sqlDB, err := sharedDB.DB()
	require.NoError(t, err)

	err = sqlDB.Ping()
	require.NoError(t, err)

	err = sharedDB.AutoMigrate(records.AllModels()...)
	require.NoError(t, err)

	return sharedDB, func() {
		if postgresContainer != nil {
			log.Info().Msg("Terminating PostgreSQL container")
			if err := postgresContainer.Terminate(context.Background()); err != nil {
				log.Error().Err(err).Msg("Failed to terminate PostgreSQL container")
			}
		}
	}
}

// upstreamStubs fakes every third-party API and counts how often each is hit,
// so cache hits can be asserted as "zero external calls".
type upstreamStubs struct {
	geocodeCalls  int
	forecastCalls int
	yelpCalls     int

	geocode  *httptest.Server
	forecast *httptest.Server
	yelp     *httptest.Server
}

func newUpstreamStubs() *upstreamStubs {
	stubs := &upstreamStubs{}

	stubs.geocode = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		stubs.geocodeCalls++

		if r.URL.Query().Get("address") == "Atlantis" {
			json.NewEncoder(w).Encode(map[string]interface{}{"results": []map[string]interface{}{}})
			return
		}

		json.NewEncoder(w).Encode(map[string]interface{}{
			"results": []map[string]interface{}{
				{
					"formatted_address": "Seattle, WA",
					"geometry": map[string]interface{}{
						"location": map[string]interface{}{"lat": 47.6, "lng": -122.3},
					},
				},
			},
		})
	}))

	stubs.forecast = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		stubs.forecastCalls++

		json.NewEncoder(w).Encode(map[string]interface{}{
			"daily": map[string]interface{}{
				"data": []map[string]interface{}{
					{"summary": "Clear throughout the day.", "time": 1531180800},
					{"summary": "Light rain.", "time": 1531267200},
				},
			},
		})
	}))

	stubs.yelp = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		stubs.yelpCalls++

		json.NewEncoder(w).Encode(map[string]interface{}{
			"businesses": []map[string]interface{}{},
		})
	}))

	return stubs
}

func (u *upstreamStubs) Close() {
	u.geocode.Close()
	u.forecast.Close()
	u.yelp.Close()
}

type testSetup struct {
	router http.Handler
	stubs  *upstreamStubs
	db     *gorm.DB
}

func setupTest(t *testing.T) *testSetup {
	db, _ := SetupPostgres(t)

	stubs := newUpstreamStubs()
	t.Cleanup(stubs.Close)

	store := records.NewStore(db)

	geocoder := providers.NewGeocodeService(stubs.geocode.URL, "test_key")

	reg := registry.New(registry.Providers{
		Forecast: providers.NewForecastService(stubs.forecast.URL, "test_key"),
		Yelp:     providers.NewYelpService(stubs.yelp.URL, "test_token"),
	}, registry.TTLs{
		Weather: 15 * time.Minute,
		Yelp:    24 * time.Hour,
	})

	explorer := service.NewExplorer(store, geocoder, reg)
	handler := handlers.NewExplorerHandler(explorer, 5*time.Second)

	return &testSetup{
		router: handler.Routes(),
		stubs:  stubs,
		db:     db,
	}
}

func (ts *testSetup) get(t *testing.T, path string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	rec := httptest.NewRecorder()
	ts.router.ServeHTTP(rec, req)
	return rec
}

func TestLocationResolutionAndCaching(t *testing.T) {
	ts := setupTest(t)

	rec := ts.get(t, "/location?data=Seattle")
	require.Equal(t, http.StatusOK, rec.Code)

	var first records.Location
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &first))

	assert.Equal(t, "Seattle", first.SearchQuery)
	assert.Equal(t, "Seattle, WA", first.FormattedQuery)
	assert.Equal(t, 47.6, first.Latitude)
	assert.Equal(t, -122.3, first.Longitude)
	assert.NotZero(t, first.ID)
	assert.Equal(t, 1, ts.stubs.geocodeCalls)

	// Second lookup comes from the store: same row, no external call.
	rec = ts.get(t, "/location?data=Seattle")
	require.Equal(t, http.StatusOK, rec.Code)

	var second records.Location
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &second))

	assert.Equal(t, first, second)
	assert.Equal(t, 1, ts.stubs.geocodeCalls)

	var count int64
	require.NoError(t, ts.db.Model(&records.Location{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestLocationNoDataIsNotFound(t *testing.T) {
	ts := setupTest(t)

	rec := ts.get(t, "/location?data=Atlantis")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestWeatherFetchThenCacheHit(t *testing.T) {
	ts := setupTest(t)

	rec := ts.get(t, "/location?data=Seattle")
	require.Equal(t, http.StatusOK, rec.Code)

	var loc records.Location
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &loc))

	locJSON, err := json.Marshal(loc)
	require.NoError(t, err)
	weatherPath := "/weather?data=" + url.QueryEscape(string(locJSON))

	rec = ts.get(t, weatherPath)
	require.Equal(t, http.StatusOK, rec.Code)

	var fetched []records.WeatherEntry
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &fetched))

	require.Len(t, fetched, 2)
	assert.Equal(t, "Clear throughout the day.", fetched[0].Forecast)
	assert.Equal(t, loc.ID, fetched[0].LocationID)
	assert.Equal(t, 1, ts.stubs.forecastCalls)

	// Fresh rows serve the second request straight from the store.
	rec = ts.get(t, weatherPath)
	require.Equal(t, http.StatusOK, rec.Code)

	var cached []records.WeatherEntry
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &cached))

	require.Len(t, cached, 2)
	assert.Equal(t, 1, ts.stubs.forecastCalls)

	// Round-trip equality, modulo the surrogate id and row timestamp.
	for i := range fetched {
		assert.Equal(t, fetched[i].Forecast, cached[i].Forecast)
		assert.Equal(t, fetched[i].Time, cached[i].Time)
		assert.Equal(t, fetched[i].LocationID, cached[i].LocationID)
	}
}

func TestYelpZeroResultsIsValidEmptyAnswer(t *testing.T) {
	ts := setupTest(t)

	rec := ts.get(t, "/location?data=Seattle")
	require.Equal(t, http.StatusOK, rec.Code)

	var loc records.Location
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &loc))

	locJSON, err := json.Marshal(loc)
	require.NoError(t, err)

	rec = ts.get(t, "/yelp?data="+url.QueryEscape(string(locJSON)))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, "[]", rec.Body.String())
	assert.Equal(t, 1, ts.stubs.yelpCalls)
}

func TestMain(m *testing.M) {
	code := m.Run()

	if postgresContainer != nil {
		if err := postgresContainer.Terminate(context.Background()); err != nil {
			log.Error().Err(err).Msg("Failed to terminate PostgreSQL container")
		}
	}

	os.Exit(code)
}
