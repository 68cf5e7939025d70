package webserver_test

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/quillon/partyfolk/internal/webserver/infrastructure"
	"github.com/quillon/partyfolk/internal/webserver/model"
)

func TestHelpfulLinks(t *testing.T) {
	db := testDB("links")
	app := bootstrapApp(db, &infrastructure.NoEmail{})

	dmCookie, err := login(app, "admin", "admin")
	if err != nil {
		t.Fatalf("Unexpected error: %v", err.Error())
	}

	strangerCookie, err := signUp(app, "Stranger", "linkstranger", "linkstranger@example.com", "longenough")
	if err != nil {
		t.Fatalf("Unexpected error: %v", err.Error())
	}

	slug := createCampaign(app, dmCookie, "Storm King's Thunder", t)

	t.Run("Adding a link answers with its data and a delete URL", func(t *testing.T) {
		payload := addLink(app, dmCookie, slug, "Party loot sheet", "https://sheets.example.com/loot", t)
		mustHaveKeys(payload, []string{"pk", "name", "url", "delete_url"}, t)
		if payload["name"] != "Party loot sheet" {
			t.Errorf("Expected name %q, received %q", "Party loot sheet", payload["name"])
		}
	})

	t.Run("Only the dungeon master can add links", func(t *testing.T) {
		data := url.Values{
			"name": {"Sneaky link"},
			"url":  {"https://example.com"},
		}
		response, err := postRequest(data, strangerCookie, app, fmt.Sprintf("/campaigns/%s/links", slug))
		if response == nil {
			t.Fatalf("Unexpected error: %v", err.Error())
		}
		mustReturnStatus(response, http.StatusForbidden, t)
	})

	t.Run("A link without a valid URL is rejected", func(t *testing.T) {
		data := url.Values{
			"name": {"Broken"},
			"url":  {"not-a-url"},
		}
		response, err := postRequest(data, dmCookie, app, fmt.Sprintf("/campaigns/%s/links", slug))
		if response == nil {
			t.Fatalf("Unexpected error: %v", err.Error())
		}
		mustReturnStatus(response, http.StatusBadRequest, t)

		var payload map[string]any
		if err := json.NewDecoder(response.Body).Decode(&payload); err != nil {
			t.Fatalf("Unexpected error: %v", err.Error())
		}
		if _, ok := payload["errors"]; !ok {
			t.Error("Expected validation errors in the response")
		}
	})

	t.Run("Deleting a link removes it", func(t *testing.T) {
		payload := addLink(app, dmCookie, slug, "Throwaway", "https://example.com/gone", t)
		deleteURL, _ := payload["delete_url"].(string)

		response, err := postRequest(url.Values{}, dmCookie, app, deleteURL)
		if response == nil {
			t.Fatalf("Unexpected error: %v", err.Error())
		}
		mustReturnStatus(response, http.StatusOK, t)

		var deleted map[string]any
		if err := json.NewDecoder(response.Body).Decode(&deleted); err != nil {
			t.Fatalf("Unexpected error: %v", err.Error())
		}
		if deleted["message"] != "Link deleted successfully." {
			t.Errorf("Unexpected message: %v", deleted["message"])
		}
	})

	t.Run("Users cannot delete links of campaigns they do not run", func(t *testing.T) {
		payload := addLink(app, dmCookie, slug, "Protected", "https://example.com/safe", t)
		deleteURL, _ := payload["delete_url"].(string)

		response, err := postRequest(url.Values{}, strangerCookie, app, deleteURL)
		if response == nil {
			t.Fatalf("Unexpected error: %v", err.Error())
		}
		mustReturnStatus(response, http.StatusNotFound, t)
	})
}

func TestHelpfulLinksCap(t *testing.T) {
	db := testDB("linkscap")
	app := bootstrapApp(db, &infrastructure.NoEmail{})

	dmCookie, err := login(app, "admin", "admin")
	if err != nil {
		t.Fatalf("Unexpected error: %v", err.Error())
	}

	slug := createCampaign(app, dmCookie, "Rime of the Frostmaiden", t)

	for i := 1; i <= model.MaxHelpfulLinks; i++ {
		addLink(app, dmCookie, slug, fmt.Sprintf("Link %d", i), fmt.Sprintf("https://example.com/%d", i), t)
	}

	data := url.Values{
		"name": {"One too many"},
		"url":  {"https://example.com/overflow"},
	}
	response, err := postRequest(data, dmCookie, app, fmt.Sprintf("/campaigns/%s/links", slug))
	if response == nil {
		t.Fatalf("Unexpected error: %v", err.Error())
	}
	mustReturnStatus(response, http.StatusBadRequest, t)

	var payload map[string]any
	if err := json.NewDecoder(response.Body).Decode(&payload); err != nil {
		t.Fatalf("Unexpected error: %v", err.Error())
	}
	errs, ok := payload["errors"].(map[string]any)
	if !ok {
		t.Fatalf("Expected an errors map, got %v", payload)
	}
	if errs["__all__"] != model.ErrMaxLinksReached.Error() {
		t.Errorf("Unexpected error message: %v", errs["__all__"])
	}
}

func addLink(app *fiber.App, cookie *http.Cookie, slug, name, linkURL string, t *testing.T) map[string]any {
	t.Helper()

	data := url.Values{
		"name": {name},
		"url":  {linkURL},
	}
	response, err := postRequest(data, cookie, app, fmt.Sprintf("/campaigns/%s/links", slug))
	if response == nil {
		t.Fatalf("Unexpected error: %v", err.Error())
	}
	mustReturnStatus(response, http.StatusCreated, t)

	var payload map[string]any
	if err := json.NewDecoder(response.Body).Decode(&payload); err != nil {
		t.Fatalf("Unexpected error: %v", err.Error())
	}
	return payload
}

func mustHaveKeys(payload map[string]any, keys []string, t *testing.T) {
	t.Helper()

	for _, key := range keys {
		if _, ok := payload[key]; !ok {
			t.Errorf("Expected key %q in the response", key)
		}
	}
}
