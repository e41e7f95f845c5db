package spiget

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/matzehuels/spiget/internal/spigettest"
	apierr "github.com/matzehuels/spiget/pkg/errors"
	"github.com/matzehuels/spiget/pkg/integrations"
)

func newTestAPI(t *testing.T) (*API, *spigettest.Server) {
	t.Helper()
	srv := spigettest.NewServer(t)
	client := integrations.NewClient(
		integrations.WithBaseURL(srv.BaseURL()),
		integrations.WithUserAgent("spiget-test/1.0"),
	)
	return New(client), srv
}

func TestNewWithNilClient(t *testing.T) {
	api := New(nil)
	if api.Client() == nil {
		t.Fatal("New(nil) should create a default client")
	}
	if api.Client().BaseURL() != integrations.DefaultBaseURL {
		t.Errorf("BaseURL() = %q", api.Client().BaseURL())
	}
	if api.Authors == nil || api.Categories == nil || api.Resources == nil ||
		api.Search == nil || api.Status == nil || api.Webhook == nil {
		t.Error("New() left a section nil")
	}
}

func TestRequestPaths(t *testing.T) {
	ctx := context.Background()
	list := integrations.ListOptions{Size: 5, Page: 1, Sort: "-release_date", Fields: []string{"id", "name"}}

	tests := []struct {
		name string
		call func(*API) error
		want string
	}{
		{"authors list", func(a *API) error { _, err := a.Authors.List(ctx, integrations.ListOptions{}); return err }, "authors"},
		{"authors list paged", func(a *API) error {
			_, err := a.Authors.List(ctx, integrations.ListOptions{Size: 1, Page: 2})
			return err
		}, "authors?size=1&page=2"},
		{"author details", func(a *API) error { _, err := a.Authors.Details(ctx, 1); return err }, "authors/1"},
		{"author resources", func(a *API) error { _, err := a.Authors.Resources(ctx, 1, list); return err }, "authors/1/resources?size=5&page=1&sort=-releaseDate&fields=id,name"},
		{"author reviews", func(a *API) error { _, err := a.Authors.Reviews(ctx, 1, integrations.ListOptions{}); return err }, "authors/1/reviews"},
		{"author search", func(a *API) error {
			_, err := a.Authors.Search(ctx, "md", AuthorFieldName, integrations.ListOptions{})
			return err
		}, "search/authors/md?field=name"},
		{"categories list", func(a *API) error { _, err := a.Categories.List(ctx, integrations.ListOptions{}); return err }, "categories"},
		{"category details", func(a *API) error { _, err := a.Categories.Details(ctx, 4); return err }, "categories/4"},
		{"category resources", func(a *API) error {
			_, err := a.Categories.Resources(ctx, 4, integrations.ListOptions{Size: 2})
			return err
		}, "categories/4/resources?size=2"},
		{"resources list", func(a *API) error { _, err := a.Resources.List(ctx, integrations.ListOptions{}); return err }, "resources"},
		{"resources free", func(a *API) error { _, err := a.Resources.Free(ctx, integrations.ListOptions{}); return err }, "resources/free"},
		{"resources premium", func(a *API) error { _, err := a.Resources.Premium(ctx, integrations.ListOptions{}); return err }, "resources/premium"},
		{"resources new", func(a *API) error { _, err := a.Resources.New(ctx, integrations.ListOptions{}); return err }, "resources/new"},
		{"resources for", func(a *API) error {
			_, err := a.Resources.ForVersions(ctx, []string{"1.19", "1.20"}, MethodAll, integrations.ListOptions{})
			return err
		}, "resources/for/1.19,1.20?method=all"},
		{"resource details", func(a *API) error { _, err := a.Resources.Details(ctx, 9089); return err }, "resources/9089"},
		{"resource author", func(a *API) error { _, err := a.Resources.Author(ctx, 9089); return err }, "resources/9089/author"},
		{"resource download", func(a *API) error { _, err := a.Resources.Download(ctx, 9089); return err }, "resources/9089/download"},
		{"resource reviews", func(a *API) error { _, err := a.Resources.Reviews(ctx, 9089, integrations.ListOptions{}); return err }, "resources/9089/reviews"},
		{"resource updates", func(a *API) error { _, err := a.Resources.Updates(ctx, 9089, integrations.ListOptions{}); return err }, "resources/9089/updates"},
		{"latest update", func(a *API) error { _, err := a.Resources.LatestUpdate(ctx, 9089); return err }, "resources/9089/updates/latest"},
		{"resource versions", func(a *API) error { _, err := a.Resources.Versions(ctx, 9089, integrations.ListOptions{}); return err }, "resources/9089/versions"},
		{"latest version", func(a *API) error { _, err := a.Resources.LatestVersion(ctx, 9089); return err }, "resources/9089/versions/latest"},
		{"version", func(a *API) error { _, err := a.Resources.Version(ctx, 9089, "500000"); return err }, "resources/9089/versions/500000"},
		{"version download", func(a *API) error { _, err := a.Resources.VersionDownload(ctx, 9089, "500000"); return err }, "resources/9089/versions/500000/download"},
		{"search resources", func(a *API) error {
			_, err := a.Search.Resources(ctx, "essentials", ResourceFieldName, integrations.ListOptions{})
			return err
		}, "search/resources/essentials?field=name"},
		{"search resources tag", func(a *API) error {
			_, err := a.Search.Resources(ctx, "chat", ResourceFieldTag, integrations.ListOptions{Size: 3})
			return err
		}, "search/resources/chat?field=tag&size=3"},
		{"search resources no field", func(a *API) error {
			_, err := a.Search.Resources(ctx, "essentials", "", integrations.ListOptions{})
			return err
		}, "search/resources/essentials"},
		{"search resources spaces", func(a *API) error {
			_, err := a.Search.Resources(ctx, "chat pro", ResourceFieldName, integrations.ListOptions{})
			return err
		}, "search/resources/chat%20pro?field=name"},
		{"search authors", func(a *API) error {
			_, err := a.Search.Authors(ctx, "supa", AuthorFieldName, integrations.ListOptions{})
			return err
		}, "search/authors/supa?field=name"},
		{"status", func(a *API) error { _, err := a.Status.Get(ctx); return err }, "status"},
		{"webhook events", func(a *API) error { _, err := a.Webhook.Events(ctx); return err }, "webhook/events"},
		{"webhook status", func(a *API) error {
			_, err := a.Webhook.Status(ctx, spigettest.WebhookID, spigettest.WebhookSecret)
			return err
		}, "webhook/status/hook-1?secret=s3cr3t"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			api, srv := newTestAPI(t)
			if err := tt.call(api); err != nil {
				t.Fatalf("call error: %v", err)
			}
			last := srv.Last()
			if got := last.URI(); got != tt.want {
				t.Errorf("request = %q, want %q", got, tt.want)
			}
			if last.UserAgent != "spiget-test/1.0" {
				t.Errorf("User-Agent = %q", last.UserAgent)
			}
		})
	}
}

func TestMemoizedAcrossSections(t *testing.T) {
	api, srv := newTestAPI(t)
	ctx := context.Background()

	first, err := api.Search.Authors(ctx, "md", AuthorFieldName, integrations.ListOptions{})
	if err != nil {
		t.Fatalf("Search.Authors() error: %v", err)
	}
	second, err := api.Authors.Search(ctx, "md", AuthorFieldName, integrations.ListOptions{})
	if err != nil {
		t.Fatalf("Authors.Search() error: %v", err)
	}

	if n := srv.Hits("search/authors/md?field=name"); n != 1 {
		t.Errorf("server hits = %d, want 1", n)
	}
	if len(first) != 1 || len(second) != 1 || first[0].Name != second[0].Name {
		t.Errorf("results differ: %+v vs %+v", first, second)
	}

	resp1, _ := api.Client().Fetch(ctx, "search/authors/md?field=name", integrations.DefaultRequestOptions)
	resp2, _ := api.Client().Fetch(ctx, "search/authors/md?field=name", integrations.DefaultRequestOptions)
	if resp1 != resp2 {
		t.Error("Fetch() should return the same response instance")
	}
}

func TestNotFound(t *testing.T) {
	api, _ := newTestAPI(t)
	ctx := context.Background()

	_, err := api.Resources.Details(ctx, 999999999)
	if !apierr.Is(err, apierr.ErrCodeNotFound) {
		t.Fatalf("Details() error = %v, want NOT_FOUND", err)
	}
	if se := apierr.AsStatus(err); se == nil || se.StatusCode != http.StatusNotFound || se.Message != "resource not found" {
		t.Errorf("AsStatus() = %+v", se)
	}
	if msg := apierr.UserMessage(err); msg != "GET resources/999999999 (resource not found)" {
		t.Errorf("UserMessage() = %q", msg)
	}

	_, err = api.Search.Resources(ctx, "nothing-matches", ResourceFieldName, integrations.ListOptions{})
	if !apierr.Is(err, apierr.ErrCodeNotFound) {
		t.Errorf("empty search error = %v, want NOT_FOUND", err)
	}
}

func TestInvalidInputSendsNoRequest(t *testing.T) {
	api, srv := newTestAPI(t)
	ctx := context.Background()

	tests := []struct {
		name string
		call func() error
		code apierr.Code
	}{
		{"zero id", func() error { _, err := api.Resources.Details(ctx, 0); return err }, apierr.ErrCodeInvalidInput},
		{"negative author", func() error { _, err := api.Authors.Details(ctx, -1); return err }, apierr.ErrCodeInvalidInput},
		{"empty query", func() error {
			_, err := api.Search.Resources(ctx, "  ", ResourceFieldName, integrations.ListOptions{})
			return err
		}, apierr.ErrCodeInvalidQuery},
		{"resource field", func() error {
			_, err := api.Search.Resources(ctx, "x", ResourceSearchField("author"), integrations.ListOptions{})
			return err
		}, apierr.ErrCodeInvalidField},
		{"author field", func() error {
			_, err := api.Search.Authors(ctx, "x", AuthorSearchField("tag"), integrations.ListOptions{})
			return err
		}, apierr.ErrCodeInvalidField},
		{"method", func() error {
			_, err := api.Resources.ForVersions(ctx, []string{"1.20"}, ForVersionsMethod("some"), integrations.ListOptions{})
			return err
		}, apierr.ErrCodeInvalidField},
		{"no versions", func() error {
			_, err := api.Resources.ForVersions(ctx, nil, MethodAny, integrations.ListOptions{})
			return err
		}, apierr.ErrCodeInvalidInput},
		{"version traversal", func() error { _, err := api.Resources.Version(ctx, 1, "../2"); return err }, apierr.ErrCodeInvalidInput},
		{"empty version", func() error { _, err := api.Resources.VersionDownload(ctx, 1, ""); return err }, apierr.ErrCodeInvalidInput},
		{"webhook id", func() error { _, err := api.Webhook.Status(ctx, "", "s"); return err }, apierr.ErrCodeInvalidInput},
		{"webhook secret", func() error { _, err := api.Webhook.Status(ctx, "id", ""); return err }, apierr.ErrCodeInvalidInput},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.call()
			if got := apierr.GetCode(err); got != tt.code {
				t.Errorf("code = %v, want %v (err: %v)", got, tt.code, err)
			}
		})
	}

	if n := len(srv.Requests()); n != 0 {
		t.Errorf("invalid input sent %d requests", n)
	}
}

func TestDownloadDoesNotFollowRedirects(t *testing.T) {
	api, _ := newTestAPI(t)
	ctx := context.Background()

	resp, err := api.Resources.Download(ctx, spigettest.ResourceEssentials)
	if err != nil {
		t.Fatalf("Download() error: %v", err)
	}
	if resp.StatusCode != http.StatusFound {
		t.Errorf("StatusCode = %d, want 302", resp.StatusCode)
	}
	want := fmt.Sprintf("%s%d.jar", spigettest.CDN, spigettest.ResourceEssentials)
	if resp.Location() != want {
		t.Errorf("Location() = %q, want %q", resp.Location(), want)
	}

	u, err := api.Resources.DownloadURL(ctx, spigettest.ResourceExternal)
	if err != nil {
		t.Fatalf("DownloadURL() error: %v", err)
	}
	if u != "https://example.org/skripty.sk" {
		t.Errorf("DownloadURL() = %q", u)
	}

	u, err = api.Resources.VersionDownloadURL(ctx, spigettest.ResourceEssentials, "latest")
	if err != nil {
		t.Fatalf("VersionDownloadURL() error: %v", err)
	}
	if !strings.HasSuffix(u, fmt.Sprintf("%d/%d.jar", spigettest.ResourceEssentials, spigettest.VersionEssentialsLatest)) {
		t.Errorf("VersionDownloadURL() = %q", u)
	}

	_, err = api.Resources.DownloadURL(ctx, spigettest.ResourcePremium)
	if !apierr.Is(err, apierr.ErrCodeHTTPStatus) {
		t.Errorf("premium DownloadURL() error = %v, want HTTP_STATUS", err)
	}
}

func TestResourceDetails(t *testing.T) {
	api, _ := newTestAPI(t)
	ctx := context.Background()

	res, err := api.Resources.Details(ctx, spigettest.ResourceEssentials)
	if err != nil {
		t.Fatalf("Details() error: %v", err)
	}
	if res.Name != "EssentialsX" || res.Premium || res.Price != nil {
		t.Errorf("resource = %+v", res)
	}
	if len(res.Versions) != 2 || len(res.Updates) != 1 || len(res.Reviews) != 1 {
		t.Errorf("reference lists = %v %v %v", res.Versions, res.Updates, res.Reviews)
	}
	desc, err := res.Description.Decode()
	if err != nil || !strings.Contains(desc, "essential plugin suite") {
		t.Errorf("Description.Decode() = %q, %v", desc, err)
	}

	list, err := api.Resources.List(ctx, integrations.ListOptions{})
	if err != nil {
		t.Fatalf("List() error: %v", err)
	}
	for _, r := range list {
		if r.Reviews != nil || r.Description != "" {
			t.Errorf("list entry %d carries detail-only fields", r.ID)
		}
	}

	premium, err := api.Resources.Details(ctx, spigettest.ResourcePremium)
	if err != nil {
		t.Fatalf("Details() error: %v", err)
	}
	if premium.Price == nil || *premium.Price != 9.99 || premium.Currency != "EUR" {
		t.Errorf("premium price = %v %q", premium.Price, premium.Currency)
	}
}

func TestForVersions(t *testing.T) {
	api, _ := newTestAPI(t)
	ctx := context.Background()

	anyRes, err := api.Resources.ForVersions(ctx, []string{"1.19", "1.20"}, MethodAny, integrations.ListOptions{})
	if err != nil {
		t.Fatalf("ForVersions(any) error: %v", err)
	}
	if anyRes.Method != "any" || len(anyRes.Match) != 2 {
		t.Errorf("any = %s %d matches", anyRes.Method, len(anyRes.Match))
	}

	allRes, err := api.Resources.ForVersions(ctx, []string{"1.19", "1.20"}, MethodAll, integrations.ListOptions{})
	if err != nil {
		t.Fatalf("ForVersions(all) error: %v", err)
	}
	if len(allRes.Match) != 1 || allRes.Match[0].ID != spigettest.ResourceEssentials {
		t.Errorf("all matches = %+v", allRes.Match)
	}
	if len(allRes.Check) != 2 {
		t.Errorf("Check = %v", allRes.Check)
	}
}

func TestVersionsAndUpdates(t *testing.T) {
	api, _ := newTestAPI(t)
	ctx := context.Background()
	id := spigettest.ResourceEssentials

	latest, err := api.Resources.LatestVersion(ctx, id)
	if err != nil {
		t.Fatalf("LatestVersion() error: %v", err)
	}
	if latest.ID != spigettest.VersionEssentialsLatest {
		t.Errorf("LatestVersion() = %+v", latest)
	}

	old, err := api.Resources.Version(ctx, id, fmt.Sprint(spigettest.VersionEssentialsOld))
	if err != nil {
		t.Fatalf("Version() error: %v", err)
	}
	u, err := old.Ref().ParseUUID()
	if err != nil || u.String() != old.UUID {
		t.Errorf("ParseUUID() = %v, %v", u, err)
	}

	update, err := api.Resources.LatestUpdate(ctx, id)
	if err != nil {
		t.Fatalf("LatestUpdate() error: %v", err)
	}
	if text, _ := update.Description.Decode(); text != "Supports 1.20" {
		t.Errorf("update description = %q", text)
	}

	reviews, err := api.Resources.Reviews(ctx, id, integrations.ListOptions{})
	if err != nil || len(reviews) != 1 {
		t.Fatalf("Reviews() = %v, %v", reviews, err)
	}
	if msg, _ := reviews[0].Message.Decode(); msg != "Great plugin!" {
		t.Errorf("review message = %q", msg)
	}
	if reviews[0].Author == nil || reviews[0].Author.Name != "md_5" {
		t.Errorf("review author = %+v", reviews[0].Author)
	}
}

func TestAuthorsAndCategories(t *testing.T) {
	api, _ := newTestAPI(t)
	ctx := context.Background()

	page2, err := api.Authors.List(ctx, integrations.ListOptions{Size: 1, Page: 2})
	if err != nil {
		t.Fatalf("List() error: %v", err)
	}
	if len(page2) != 1 || page2[0].ID != spigettest.AuthorSupaHam {
		t.Errorf("page 2 = %+v", page2)
	}

	author, err := api.Resources.Author(ctx, spigettest.ResourceEssentials)
	if err != nil || author.ID != spigettest.AuthorSupaHam {
		t.Errorf("Resources.Author() = %+v, %v", author, err)
	}

	md5, err := api.Authors.Details(ctx, spigettest.AuthorMD5)
	if err != nil || md5.Identities["github"] != "md-5" {
		t.Errorf("Authors.Details() = %+v, %v", md5, err)
	}

	chat, err := api.Categories.Resources(ctx, spigettest.CategoryChat, integrations.ListOptions{})
	if err != nil || len(chat) != 1 || chat[0].ID != spigettest.ResourcePremium {
		t.Errorf("Categories.Resources() = %+v, %v", chat, err)
	}
}

func TestStatusAndWebhook(t *testing.T) {
	api, _ := newTestAPI(t)
	ctx := context.Background()

	st, err := api.Status.Get(ctx)
	if err != nil {
		t.Fatalf("Status.Get() error: %v", err)
	}
	if st.Status.Server == nil || st.Status.Server.Name != "spiget-test" || st.Stats == nil || st.Stats.Resources != 3 {
		t.Errorf("status = %+v", st)
	}

	events, err := api.Webhook.Events(ctx)
	if err != nil || len(events) != len(spigettest.Events) {
		t.Errorf("Events() = %v, %v", events, err)
	}

	ws, err := api.Webhook.Status(ctx, spigettest.WebhookID, spigettest.WebhookSecret)
	if err != nil || ws.Status != 1 {
		t.Errorf("Webhook.Status() = %+v, %v", ws, err)
	}

	_, err = api.Webhook.Status(ctx, spigettest.WebhookID, "wrong")
	if !apierr.Is(err, apierr.ErrCodeHTTPStatus) {
		t.Errorf("wrong secret error = %v, want HTTP_STATUS", err)
	}
}

func TestShapeMismatchIsDecodeError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"id": 1, "name": "not a list"}`)
	}))
	defer srv.Close()

	api := New(integrations.NewClient(integrations.WithBaseURL(srv.URL)))
	_, err := api.Categories.List(context.Background(), integrations.ListOptions{})
	if !apierr.Is(err, apierr.ErrCodeDecode) {
		t.Errorf("List() error = %v, want DECODE_ERROR", err)
	}
}
