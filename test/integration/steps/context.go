// Package steps provides step definitions for the BDD integration suite.
package steps

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"os"
	"strconv"
	"sync"
	"time"

	"github.com/cucumber/godog"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/buildledger/backend/config"
	"github.com/buildledger/backend/internal/infra/dependency"
	"github.com/buildledger/backend/internal/integration/persistence/model"
	"github.com/buildledger/backend/test/integration/mock"
)

const testJWTSecret = "test-jwt-secret-key-for-integration-runs"

var (
	serverInit     sync.Once
	portInit       sync.Once
	testDB         *mock.Db
	testServerPort int
)

// testContext holds the state shared by the steps of one scenario.
type testContext struct {
	uri     string
	client  *http.Client
	headers map[string]string
	db      *mock.Db

	response *response

	accessToken  string
	refreshToken string

	currentUserID     uuid.UUID
	currentCategoryID uuid.UUID
	currentProjectID  uuid.UUID
	currentSiteID     uuid.UUID
	currentStageID    uuid.UUID
	currentEstimateID uuid.UUID
	currentItemID     uuid.UUID
	currentPriceID    uuid.UUID
	lastID            uuid.UUID
}

type response struct {
	status int
	body   any
	raw    []byte
}

func initializePort() {
	portInit.Do(func() {
		testServerPort = findAvailablePort()
		_ = os.Setenv("SERVER_PORT", strconv.Itoa(testServerPort))
		_ = os.Setenv("ENV", "test")
		_ = os.Setenv("JWT_SECRET", testJWTSecret)
	})
}

// InitializeTestSuite sets up suite-wide resources.
func InitializeTestSuite(ctx *godog.TestSuiteContext) {
	ctx.BeforeSuite(func() {
		gin.SetMode(gin.TestMode)
	})
}

// InitializeScenario registers all step definitions.
func InitializeScenario(ctx *godog.ScenarioContext) {
	initializePort()

	test := &testContext{
		uri:    fmt.Sprintf("http://localhost:%d", testServerPort),
		client: &http.Client{Timeout: 10 * time.Second},
		db: mock.NewDb("buildledger", map[string]any{
			"users":          &model.UserModel{},
			"material_types": &model.MaterialTypeModel{},
			"work_types":     &model.WorkTypeModel{},
			"categories":     &model.CategoryModel{},
			"price_items":    &model.PriceItemModel{},
			"projects":       &model.ProjectModel{},
			"sites":          &model.SiteModel{},
			"stages":         &model.StageModel{},
			"estimates":      &model.EstimateModel{},
			"estimate_items": &model.EstimateItemModel{},
			"transactions":   &model.TransactionModel{},
		}),
	}

	testDB = test.db

	ctx.Before(func(ctx context.Context, sc *godog.Scenario) (context.Context, error) {
		test.before()
		return ctx, nil
	})

	// Background steps
	ctx.Given(`^the API server is running$`, test.theAPIServerIsRunning)

	// Setup steps
	ctx.Given(`^a user exists with phone "([^"]*)" and password "([^"]*)"$`, test.aUserExistsWithPhoneAndPassword)
	ctx.Given(`^I am logged in as "([^"]*)"$`, test.iAmLoggedInAs)
	ctx.Given(`^the header is empty$`, test.theHeaderIsEmpty)
	ctx.Given(`^a category "([^"]*)" exists$`, test.aCategoryExists)
	ctx.Given(`^a project "([^"]*)" exists$`, test.aProjectExists)
	ctx.Given(`^a site "([^"]*)" exists in the project$`, test.aSiteExistsInTheProject)
	ctx.Given(`^a stage "([^"]*)" exists with order (\d+)$`, test.aStageExistsWithOrder)
	ctx.Given(`^a draft estimate exists for the stage$`, test.aDraftEstimateExistsForTheStage)
	ctx.Given(`^a material type "([^"]*)" exists$`, test.aMaterialTypeExists)
	ctx.Given(`^a price item "([^"]*)" exists at "([^"]*)" per "([^"]*)"$`, test.aPriceItemExists)
	ctx.Given(`^an estimate item "([^"]*)" exists with quantity "([^"]*)" at unit price "([^"]*)" and a (\d+)% markup$`, test.anEstimateItemExistsWithMarkup)
	ctx.Given(`^an expense of "([^"]*)" attached to the (stage|estimate|item) exists$`, test.anExpenseAttachedToExists)

	// Request steps
	ctx.When(`^I send a "([^"]*)" request to "([^"]*)"$`, test.iSendARequestTo)
	ctx.When(`^I send a "([^"]*)" request to "([^"]*)" with body:$`, test.iSendARequestToWithBody)

	// Response assertion steps
	ctx.Then(`^the response status should be (\d+)$`, test.theResponseStatusShouldBe)
	ctx.Then(`^the response should be JSON$`, test.theResponseShouldBeJSON)
	ctx.Then(`^the response should contain "([^"]*)"$`, test.theResponseShouldContain)
	ctx.Then(`^the response field "([^"]*)" should be "([^"]*)"$`, test.theResponseFieldShouldBe)
	ctx.Then(`^the response field "([^"]*)" should exist$`, test.theResponseFieldShouldExist)

	// Database assertion steps
	ctx.Then(`^the db should contain (\d+) objects in the "([^"]*)" table$`, test.theDbShouldContainObjectsInTheTable)
	ctx.Then(`^the db should contain (\d+) objects in "([^"]*)" with the values$`, test.theDbShouldContainObjectsInWithTheValues)
}

func findAvailablePort() int {
	listener, err := net.Listen("tcp", ":0")
	if err != nil {
		panic(err)
	}
	defer listener.Close()
	return listener.Addr().(*net.TCPAddr).Port
}

func (t *testContext) before() {
	t.headers = make(map[string]string)
	t.response = nil
	t.accessToken = ""
	t.refreshToken = ""
	t.currentUserID = uuid.Nil
	t.currentCategoryID = uuid.Nil
	t.currentProjectID = uuid.Nil
	t.currentSiteID = uuid.Nil
	t.currentStageID = uuid.Nil
	t.currentEstimateID = uuid.Nil
	t.currentItemID = uuid.Nil
	t.currentPriceID = uuid.Nil
	t.lastID = uuid.Nil

	if t.db != nil {
		_ = t.db.ClearDB()
	}
}

// startServer boots the API once, wired against the shared in-memory
// database, and waits for the health endpoint to come up.
func (t *testContext) startServer() {
	serverInit.Do(func() {
		go func() {
			cfg := config.Load()
			injector := dependency.NewInjector(cfg, testDB.DbConn)
			engine := injector.Router.Setup(cfg.Server.Environment)

			server := &http.Server{
				Addr:    fmt.Sprintf(":%d", testServerPort),
				Handler: engine,
			}
			_ = server.ListenAndServe()
		}()
	})

	for i := 0; i < 50; i++ {
		resp, err := http.Get(t.uri + "/health")
		if err == nil && resp.StatusCode == http.StatusOK {
			resp.Body.Close()
			return
		}
		time.Sleep(100 * time.Millisecond)
	}
}

func (t *testContext) theAPIServerIsRunning() error {
	t.startServer()
	return nil
}
