package graph_test

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/idops-lab/offramp/pkg/domain/types"
	"github.com/idops-lab/offramp/pkg/service/graph"
	"github.com/m-mizutani/gt"
	"golang.org/x/oauth2"
)

func staticToken() oauth2.TokenSource {
	return oauth2.StaticTokenSource(&oauth2.Token{AccessToken: "test-token"})
}

func TestClientListAccounts(t *testing.T) {
	ctx := context.Background()
	var baseURL string

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gt.Equal(t, r.Header.Get("Authorization"), "Bearer test-token")
		gt.Equal(t, r.URL.Path, "/users")

		w.Header().Set("Content-Type", "application/json")
		if r.URL.Query().Get("$skiptoken") == "" {
			fmt.Fprintf(w, `{
				"@odata.nextLink": "%s/users?$skiptoken=page2",
				"value": [
					{"id": "u-alice", "displayName": "xEM - Alice Smith", "userPrincipalName": "alice@example.com", "accountEnabled": true}
				]
			}`, baseURL)
			return
		}
		fmt.Fprint(w, `{
			"value": [
				{"id": "u-bob", "displayName": "Bob Jones", "userPrincipalName": "bob@example.com", "accountEnabled": true}
			]
		}`)
	}))
	defer srv.Close()
	baseURL = srv.URL

	client := graph.New(ctx, staticToken(), graph.WithBaseURL(srv.URL))

	accounts, err := client.ListAccounts(ctx)
	gt.NoError(t, err)
	gt.Equal(t, len(accounts), 2)
	gt.Equal(t, accounts[0].ID, types.AccountID("u-alice"))
	gt.Equal(t, accounts[0].DisplayName, "xEM - Alice Smith")
	gt.Equal(t, accounts[1].PrincipalName, types.PrincipalName("bob@example.com"))
}

func TestClientListMemberships(t *testing.T) {
	ctx := context.Background()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gt.Equal(t, r.URL.Path, "/users/u-alice/memberOf")

		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{
			"value": [
				{"@odata.type": "#microsoft.graph.group", "id": "g-sales", "displayName": "Sales"},
				{"@odata.type": "#microsoft.graph.directoryRole", "id": "r-admin", "displayName": "Global Administrator"},
				{"@odata.type": "#microsoft.graph.group", "id": "g-allstaff", "displayName": "AllStaff"}
			]
		}`)
	}))
	defer srv.Close()

	client := graph.New(ctx, staticToken(), graph.WithBaseURL(srv.URL))

	groups, err := client.ListMemberships(ctx, types.AccountID("u-alice"))
	gt.NoError(t, err)

	// Directory roles in the memberOf listing are not groups
	gt.Equal(t, len(groups), 2)
	gt.Equal(t, groups[0].ID, types.GroupID("g-sales"))
	gt.Equal(t, groups[1].DisplayName, "AllStaff")
}

func TestClientRemoveMember(t *testing.T) {
	ctx := context.Background()

	t.Run("issues ref deletion", func(t *testing.T) {
		var gotPath, gotMethod string
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotPath = r.URL.Path
			gotMethod = r.Method
			w.WriteHeader(http.StatusNoContent)
		}))
		defer srv.Close()

		client := graph.New(ctx, staticToken(), graph.WithBaseURL(srv.URL))
		gt.NoError(t, client.RemoveMember(ctx, types.GroupID("g-sales"), types.AccountID("u-alice")))
		gt.Equal(t, gotMethod, http.MethodDelete)
		gt.Equal(t, gotPath, "/groups/g-sales/members/u-alice/$ref")
	})

	t.Run("surfaces API error detail", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusForbidden)
			fmt.Fprint(w, `{"error": {"code": "Authorization_RequestDenied"}}`)
		}))
		defer srv.Close()

		client := graph.New(ctx, staticToken(), graph.WithBaseURL(srv.URL))
		err := client.RemoveMember(ctx, types.GroupID("g-sales"), types.AccountID("u-alice"))
		gt.Error(t, err)
	})
}

func TestClientLicenses(t *testing.T) {
	ctx := context.Background()

	var gotRemove []string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		switch r.URL.Path {
		case "/users/u-alice/licenseDetails":
			fmt.Fprint(w, `{
				"value": [
					{"skuId": "sku-e3", "skuPartNumber": "SPE_E3"}
				]
			}`)
		case "/users/u-alice/assignLicense":
			gt.Equal(t, r.Method, http.MethodPost)
			var body struct {
				AddLicenses    []map[string]string `json:"addLicenses"`
				RemoveLicenses []string            `json:"removeLicenses"`
			}
			gt.NoError(t, json.NewDecoder(r.Body).Decode(&body))
			gt.Equal(t, len(body.AddLicenses), 0)
			gotRemove = body.RemoveLicenses
			fmt.Fprint(w, `{"id": "u-alice"}`)
		default:
			t.Errorf("unexpected path: %s", r.URL.Path)
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer srv.Close()

	client := graph.New(ctx, staticToken(), graph.WithBaseURL(srv.URL))

	licenses, err := client.ListLicenses(ctx, types.AccountID("u-alice"))
	gt.NoError(t, err)
	gt.Equal(t, len(licenses), 1)
	gt.Equal(t, licenses[0].SKU, types.LicenseSKU("sku-e3"))
	gt.Equal(t, licenses[0].SKUPartNumber, "SPE_E3")

	gt.NoError(t, client.RemoveLicense(ctx, types.AccountID("u-alice"), types.LicenseSKU("sku-e3")))
	gt.Equal(t, gotRemove, []string{"sku-e3"})
}

func TestClientPing(t *testing.T) {
	ctx := context.Background()

	t.Run("healthy", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gt.Equal(t, r.URL.Path, "/organization")
			w.Header().Set("Content-Type", "application/json")
			fmt.Fprint(w, `{"value": [{"id": "tenant-1"}]}`)
		}))
		defer srv.Close()

		client := graph.New(ctx, staticToken(), graph.WithBaseURL(srv.URL))
		gt.NoError(t, client.Ping(ctx))
	})

	t.Run("unauthorized", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusUnauthorized)
		}))
		defer srv.Close()

		client := graph.New(ctx, staticToken(), graph.WithBaseURL(srv.URL))
		gt.Error(t, client.Ping(ctx))
	})
}
