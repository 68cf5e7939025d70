package webserver_test

import (
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/gofiber/fiber/v2"
	"github.com/quillon/partyfolk/internal/webserver"
	"github.com/quillon/partyfolk/internal/webserver/infrastructure"
	"gorm.io/gorm"
)

func TestGET(t *testing.T) {
	var cases = []struct {
		name           string
		url            string
		expectedStatus int
	}{
		{"Landing page loads successfully", "/", http.StatusOK},
		{"Login page loads successfully", "/login", http.StatusOK},
		{"Sign up page loads successfully", "/signup", http.StatusOK},
		{"Server returns not found for a non-existent URL", "/xx", http.StatusNotFound},
	}

	db := testDB("smoke")
	app := bootstrapApp(db, &infrastructure.NoEmail{})

	for _, tcase := range cases {
		t.Run(tcase.name, func(t *testing.T) {
			req, _ := http.NewRequest(http.MethodGet, tcase.url, nil)

			response, err := app.Test(req)
			if err != nil {
				t.Errorf("Unexpected error: %v", err.Error())
			}
			if response.StatusCode != tcase.expectedStatus {
				t.Errorf("Wrong status code received, expected %d, got %d", tcase.expectedStatus, response.StatusCode)
			}
		})
	}

	t.Run("Campaign list redirects to login without an active session", func(t *testing.T) {
		response, err := getRequest(&http.Cookie{}, app, "/campaigns")
		if response == nil {
			t.Fatalf("Unexpected error: %v", err.Error())
		}
		mustRedirectToLogin(response, t)
	})
}

// testDB returns a fresh in-memory database seeded with the default admin
// and the tabletop systems. Each name gets its own shared cache so that all
// connections of a test see the same data.
func testDB(name string) *gorm.DB {
	return infrastructure.Connect(fmt.Sprintf("file:%s?mode=memory&cache=shared", name))
}

func bootstrapApp(db *gorm.DB, sender webserver.Sender) *fiber.App {
	webserverConfig := webserver.Config{
		Version:           "test",
		FQDN:              "http://localhost:3000",
		JwtSecret:         []byte("secret"),
		SessionTimeout:    time.Hour,
		MinPasswordLength: 5,
	}

	controllers := webserver.SetupControllers(webserverConfig, db, sender)
	return webserver.New(webserverConfig, controllers)
}

func login(app *fiber.App, username, password string) (*http.Cookie, error) {
	data := url.Values{
		"username": {username},
		"password": {password},
	}

	req, err := http.NewRequest(http.MethodPost, "/login", strings.NewReader(data.Encode()))
	if err != nil {
		return nil, err
	}
	req.Header.Add("Content-Type", "application/x-www-form-urlencoded")

	response, err := app.Test(req)
	if err != nil {
		return nil, err
	}

	if len(response.Cookies()) == 0 {
		return nil, fmt.Errorf("Cookie not set up")
	}
	return response.Cookies()[0], nil
}

// signUp registers a new user through the sign up form and returns the
// session cookie it gets back.
func signUp(app *fiber.App, name, username, email, password string) (*http.Cookie, error) {
	data := url.Values{
		"name":             {name},
		"username":         {username},
		"email":            {email},
		"password":         {password},
		"confirm-password": {password},
	}

	req, err := http.NewRequest(http.MethodPost, "/signup", strings.NewReader(data.Encode()))
	if err != nil {
		return nil, err
	}
	req.Header.Add("Content-Type", "application/x-www-form-urlencoded")

	response, err := app.Test(req)
	if err != nil {
		return nil, err
	}

	if len(response.Cookies()) == 0 {
		return nil, fmt.Errorf("Cookie not set up")
	}
	return response.Cookies()[0], nil
}

func getRequest(cookie *http.Cookie, app *fiber.App, url string) (*http.Response, error) {
	req, err := http.NewRequest(http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	req.AddCookie(cookie)

	return app.Test(req)
}

func postRequest(data url.Values, cookie *http.Cookie, app *fiber.App, url string) (*http.Response, error) {
	req, err := http.NewRequest(http.MethodPost, url, strings.NewReader(data.Encode()))
	if err != nil {
		return nil, err
	}
	req.Header.Add("Content-Type", "application/x-www-form-urlencoded")
	req.AddCookie(cookie)

	return app.Test(req)
}

// createCampaign posts the new campaign form and returns the slug of the
// freshly created campaign, taken from the redirect location.
func createCampaign(app *fiber.App, cookie *http.Cookie, name string, t *testing.T) string {
	t.Helper()

	data := url.Values{
		"name":        {name},
		"description": {"A test campaign"},
		"max-players": {"6"},
	}

	response, err := postRequest(data, cookie, app, "/campaigns")
	if err != nil {
		t.Fatalf("Unexpected error: %v", err.Error())
	}
	if response.StatusCode != http.StatusFound {
		t.Fatalf("Expected status %d, received %d", http.StatusFound, response.StatusCode)
	}

	location, err := response.Location()
	if err != nil {
		t.Fatal("No location header present")
	}
	return strings.TrimPrefix(location.Path, "/campaigns/")
}

func docFromResponse(response *http.Response, t *testing.T) *goquery.Document {
	t.Helper()

	doc, err := goquery.NewDocumentFromReader(response.Body)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err.Error())
	}
	return doc
}

func mustRedirectTo(response *http.Response, path string, t *testing.T) {
	t.Helper()

	if response.StatusCode != http.StatusFound {
		t.Errorf("Expected status %d, received %d", http.StatusFound, response.StatusCode)
		return
	}
	location, err := response.Location()
	if err != nil {
		t.Error("No location header present")
		return
	}
	if location.Path != path {
		t.Errorf("Expected location %s, received %s", path, location.Path)
	}
}

func mustRedirectToLogin(response *http.Response, t *testing.T) {
	t.Helper()

	mustRedirectTo(response, "/login", t)
}

func mustReturnStatus(response *http.Response, expectedStatus int, t *testing.T) {
	t.Helper()

	if response.StatusCode != expectedStatus {
		t.Errorf("Expected status %d, received %d", expectedStatus, response.StatusCode)
	}
}
