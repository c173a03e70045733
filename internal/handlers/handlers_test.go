package handlers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/opencatalog/metacat/internal/config"
	"github.com/opencatalog/metacat/internal/handlers"
	"github.com/opencatalog/metacat/internal/logger"
	"github.com/opencatalog/metacat/internal/middleware"
	"github.com/opencatalog/metacat/internal/models"
	"github.com/opencatalog/metacat/internal/repository"
	"github.com/opencatalog/metacat/internal/services"
)

// setupTestApp builds a fiber app over an in-memory SQLite repository with
// the routes exercised by these tests registered the way the server does.
func setupTestApp(t *testing.T) *fiber.App {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("Failed to create test database: %v", err)
	}
	err = db.AutoMigrate(
		&models.Entity{},
		&models.Relationship{},
		&models.Classification{},
	)
	if err != nil {
		t.Fatalf("Failed to migrate test database: %v", err)
	}

	cfg := &config.Config{
		DBType:            "sqlite",
		DBDatabase:        ":memory:",
		LocalServerUserID: "metacatnpa",
		MaxPageSize:       100,
	}
	repo := repository.NewGormMetadata(db, logger.NewNop())
	svcs := services.New(cfg, repo, logger.NewNop())

	assetHandler := &handlers.AssetHandler{Assets: svcs.Asset}
	feedbackHandler := &handlers.FeedbackHandler{
		Comments: svcs.Comment,
		Likes:    svcs.Like,
		Ratings:  svcs.Rating,
	}
	infraHandler := &handlers.InfrastructureHandler{
		Endpoints:      svcs.Endpoint,
		ConnectorTypes: svcs.ConnectorType,
		Capabilities:   svcs.Capability,
	}
	healthHandler := &handlers.HealthHandler{Health: svcs.Health}

	app := fiber.New()
	app.Get("/health", healthHandler.GetHealth)

	api := app.Group("/api/v1")
	api.Use(middleware.VersionMiddleware())
	user := api.Group("/:userId", middleware.CallerIdentity())

	user.Post("/assets", assetHandler.AddAsset)
	user.Get("/assets/by-name/:name", assetHandler.GetAssetsByName)
	user.Get("/assets/:assetGUID", assetHandler.GetAsset)
	user.Delete("/assets/:assetGUID", assetHandler.RemoveAsset)

	user.Post("/referenceables/:guid/comments", feedbackHandler.AddComment)
	user.Get("/referenceables/:guid/comments/count", feedbackHandler.CountComments)
	user.Get("/referenceables/:guid/comments", feedbackHandler.GetComments)
	user.Delete("/referenceables/:guid/comments/:commentGUID", feedbackHandler.RemoveComment)
	user.Post("/referenceables/:guid/ratings", feedbackHandler.AddRating)

	user.Post("/endpoints", infraHandler.SaveEndpoint)
	user.Get("/endpoints/by-name/:qualifiedName", infraHandler.GetEndpointByName)

	return app
}

// jsonRequest builds a request with a JSON body.
func jsonRequest(method, target string, body interface{}) *http.Request {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, target, &buf)
	req.Header.Set("Content-Type", "application/json")
	return req
}

// decodeBody decodes a JSON response body into a map.
func decodeBody(t *testing.T, resp *http.Response) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("Failed to decode response body: %v", err)
	}
	return body
}

// createAssetViaAPI posts an asset and returns the GUID from the response.
func createAssetViaAPI(t *testing.T, app *fiber.App, userID, qualifiedName string) string {
	t.Helper()
	req := jsonRequest("POST", "/api/v1/"+userID+"/assets", map[string]interface{}{
		"qualifiedName": qualifiedName,
		"displayName":   "Test Asset",
	})
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("Asset create request failed: %v", err)
	}
	if resp.StatusCode != fiber.StatusCreated {
		t.Fatalf("Expected status 201, got %d", resp.StatusCode)
	}
	body := decodeBody(t, resp)
	guid, ok := body["guid"].(string)
	if !ok || guid == "" {
		t.Fatalf("Expected a guid in the create response, got %v", body)
	}
	return guid
}

// Test the health endpoint over a live repository
func TestHealthEndpoint(t *testing.T) {
	app := setupTestApp(t)

	resp, err := app.Test(httptest.NewRequest("GET", "/health", nil))
	if err != nil {
		t.Fatalf("Health request failed: %v", err)
	}
	if resp.StatusCode != fiber.StatusOK {
		t.Errorf("Expected status 200, got %d", resp.StatusCode)
	}

	body := decodeBody(t, resp)
	if body["status"] != "healthy" {
		t.Errorf("Expected status healthy, got %v", body["status"])
	}
	if body["database"] != "ok" {
		t.Errorf("Expected database ok, got %v", body["database"])
	}
}

// Test creating an asset and reading it back through the API
func TestAssetCreateAndGet(t *testing.T) {
	app := setupTestApp(t)

	guid := createAssetViaAPI(t, app, "alice", "asset.orders")

	resp, err := app.Test(httptest.NewRequest("GET", "/api/v1/alice/assets/"+guid, nil))
	if err != nil {
		t.Fatalf("Asset get request failed: %v", err)
	}
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("Expected status 200, got %d", resp.StatusCode)
	}

	body := decodeBody(t, resp)
	if body["qualifiedName"] != "asset.orders" {
		t.Errorf("Expected qualifiedName asset.orders, got %v", body["qualifiedName"])
	}
	if body["displayName"] != "Test Asset" {
		t.Errorf("Expected displayName Test Asset, got %v", body["displayName"])
	}
}

// Test that an unknown asset GUID maps to a 404 response
func TestGetUnknownAssetReturns404(t *testing.T) {
	app := setupTestApp(t)

	resp, err := app.Test(httptest.NewRequest("GET", "/api/v1/alice/assets/no-such-guid", nil))
	if err != nil {
		t.Fatalf("Asset get request failed: %v", err)
	}
	if resp.StatusCode != fiber.StatusNotFound {
		t.Errorf("Expected status 404, got %d", resp.StatusCode)
	}

	body := decodeBody(t, resp)
	if body["type"] != "not-found" {
		t.Errorf("Expected error type not-found, got %v", body["type"])
	}
	if body["ok"] != false {
		t.Errorf("Expected ok false in error response, got %v", body["ok"])
	}
}

// Test that a malformed request body maps to a 400 response
func TestAddAssetRejectsMalformedBody(t *testing.T) {
	app := setupTestApp(t)

	req := httptest.NewRequest("POST", "/api/v1/alice/assets", bytes.NewBufferString("{not json"))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("Asset create request failed: %v", err)
	}
	if resp.StatusCode != fiber.StatusBadRequest {
		t.Errorf("Expected status 400, got %d", resp.StatusCode)
	}

	body := decodeBody(t, resp)
	if body["type"] != "invalid-parameter" {
		t.Errorf("Expected error type invalid-parameter, got %v", body["type"])
	}
}

// Test that asset deletion enforces the qualified name check
func TestRemoveAssetChecksQualifiedName(t *testing.T) {
	app := setupTestApp(t)
	guid := createAssetViaAPI(t, app, "alice", "asset.protected")

	resp, err := app.Test(httptest.NewRequest("DELETE",
		"/api/v1/alice/assets/"+guid+"?qualifiedName=asset.wrong", nil))
	if err != nil {
		t.Fatalf("Asset delete request failed: %v", err)
	}
	if resp.StatusCode != fiber.StatusBadRequest {
		t.Errorf("Expected status 400 for wrong qualified name, got %d", resp.StatusCode)
	}

	resp, err = app.Test(httptest.NewRequest("DELETE",
		"/api/v1/alice/assets/"+guid+"?qualifiedName=asset.protected", nil))
	if err != nil {
		t.Fatalf("Asset delete request failed: %v", err)
	}
	if resp.StatusCode != fiber.StatusOK {
		t.Errorf("Expected status 200, got %d", resp.StatusCode)
	}

	resp, err = app.Test(httptest.NewRequest("GET", "/api/v1/alice/assets/"+guid, nil))
	if err != nil {
		t.Fatalf("Asset get request failed: %v", err)
	}
	if resp.StatusCode != fiber.StatusNotFound {
		t.Errorf("Expected status 404 after delete, got %d", resp.StatusCode)
	}
}

// Test finding assets by display name through the API
func TestGetAssetsByName(t *testing.T) {
	app := setupTestApp(t)
	createAssetViaAPI(t, app, "alice", "asset.named")

	resp, err := app.Test(httptest.NewRequest("GET",
		"/api/v1/alice/assets/by-name/Test%20Asset?pageSize=10", nil))
	if err != nil {
		t.Fatalf("Asset search request failed: %v", err)
	}
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("Expected status 200, got %d", resp.StatusCode)
	}

	var summaries []map[string]interface{}
	if err := json.NewDecoder(resp.Body).Decode(&summaries); err != nil {
		t.Fatalf("Failed to decode response body: %v", err)
	}
	if len(summaries) != 1 {
		t.Fatalf("Expected 1 asset summary, got %d", len(summaries))
	}
	if summaries[0]["qualifiedName"] != "asset.named" {
		t.Errorf("Expected qualifiedName asset.named, got %v", summaries[0]["qualifiedName"])
	}
}

// Test the comment lifecycle over the REST surface
func TestCommentFlow(t *testing.T) {
	app := setupTestApp(t)
	asset := createAssetViaAPI(t, app, "alice", "asset.discussed")

	req := jsonRequest("POST", "/api/v1/alice/referenceables/"+asset+"/comments?anchorType=Asset",
		map[string]interface{}{
			"commentType": "QUESTION",
			"commentText": "Where does this data come from?",
			"isPublic":    true,
		})
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("Comment create request failed: %v", err)
	}
	if resp.StatusCode != fiber.StatusCreated {
		t.Fatalf("Expected status 201, got %d", resp.StatusCode)
	}
	commentGUID := decodeBody(t, resp)["guid"].(string)

	resp, err = app.Test(httptest.NewRequest("GET",
		"/api/v1/alice/referenceables/"+asset+"/comments/count", nil))
	if err != nil {
		t.Fatalf("Comment count request failed: %v", err)
	}
	body := decodeBody(t, resp)
	if body["count"] != float64(1) {
		t.Errorf("Expected count 1, got %v", body["count"])
	}

	resp, err = app.Test(httptest.NewRequest("GET",
		"/api/v1/alice/referenceables/"+asset+"/comments?pageSize=10", nil))
	if err != nil {
		t.Fatalf("Comment list request failed: %v", err)
	}
	var comments []map[string]interface{}
	if err := json.NewDecoder(resp.Body).Decode(&comments); err != nil {
		t.Fatalf("Failed to decode response body: %v", err)
	}
	if len(comments) != 1 {
		t.Fatalf("Expected 1 comment, got %d", len(comments))
	}
	if comments[0]["commentText"] != "Where does this data come from?" {
		t.Errorf("Unexpected comment text %v", comments[0]["commentText"])
	}
	if comments[0]["commentType"] != "QUESTION" {
		t.Errorf("Expected commentType QUESTION, got %v", comments[0]["commentType"])
	}

	resp, err = app.Test(httptest.NewRequest("DELETE",
		fmt.Sprintf("/api/v1/alice/referenceables/%s/comments/%s", asset, commentGUID), nil))
	if err != nil {
		t.Fatalf("Comment delete request failed: %v", err)
	}
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("Expected status 200, got %d", resp.StatusCode)
	}

	resp, err = app.Test(httptest.NewRequest("GET",
		"/api/v1/alice/referenceables/"+asset+"/comments/count", nil))
	if err != nil {
		t.Fatalf("Comment count request failed: %v", err)
	}
	body = decodeBody(t, resp)
	if body["count"] != float64(0) {
		t.Errorf("Expected count 0 after delete, got %v", body["count"])
	}
}

// Test that a missing pageSize is rejected by the paging rules
func TestGetCommentsRequiresPageSize(t *testing.T) {
	app := setupTestApp(t)
	asset := createAssetViaAPI(t, app, "alice", "asset.paged")

	resp, err := app.Test(httptest.NewRequest("GET",
		"/api/v1/alice/referenceables/"+asset+"/comments", nil))
	if err != nil {
		t.Fatalf("Comment list request failed: %v", err)
	}
	if resp.StatusCode != fiber.StatusBadRequest {
		t.Errorf("Expected status 400, got %d", resp.StatusCode)
	}
}

// Test that an out-of-range star rating is rejected
func TestAddRatingValidatesStars(t *testing.T) {
	app := setupTestApp(t)
	asset := createAssetViaAPI(t, app, "alice", "asset.rated")

	req := jsonRequest("POST", "/api/v1/alice/referenceables/"+asset+"/ratings",
		map[string]interface{}{
			"starRating": "SIX_STARS",
			"review":     "off the scale",
		})
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("Rating create request failed: %v", err)
	}
	if resp.StatusCode != fiber.StatusBadRequest {
		t.Errorf("Expected status 400, got %d", resp.StatusCode)
	}

	body := decodeBody(t, resp)
	if body["type"] != "invalid-parameter" {
		t.Errorf("Expected error type invalid-parameter, got %v", body["type"])
	}
}

// Test the endpoint save and lookup-by-name flow, including the empty result
func TestEndpointByName(t *testing.T) {
	app := setupTestApp(t)

	resp, err := app.Test(httptest.NewRequest("GET",
		"/api/v1/alice/endpoints/by-name/endpoint.absent", nil))
	if err != nil {
		t.Fatalf("Endpoint lookup request failed: %v", err)
	}
	if resp.StatusCode != fiber.StatusNoContent {
		t.Errorf("Expected status 204 for an unknown name, got %d", resp.StatusCode)
	}
	io.Copy(io.Discard, resp.Body)

	req := jsonRequest("POST", "/api/v1/alice/endpoints", map[string]interface{}{
		"qualifiedName":  "endpoint.db1",
		"displayName":    "Orders DB",
		"networkAddress": "db1.example.com:3306",
		"protocol":       "mysql",
	})
	resp, err = app.Test(req)
	if err != nil {
		t.Fatalf("Endpoint save request failed: %v", err)
	}
	if resp.StatusCode != fiber.StatusCreated {
		t.Fatalf("Expected status 201, got %d", resp.StatusCode)
	}

	resp, err = app.Test(httptest.NewRequest("GET",
		"/api/v1/alice/endpoints/by-name/endpoint.db1", nil))
	if err != nil {
		t.Fatalf("Endpoint lookup request failed: %v", err)
	}
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("Expected status 200, got %d", resp.StatusCode)
	}
	body := decodeBody(t, resp)
	if body["networkAddress"] != "db1.example.com:3306" {
		t.Errorf("Expected networkAddress db1.example.com:3306, got %v", body["networkAddress"])
	}
}
