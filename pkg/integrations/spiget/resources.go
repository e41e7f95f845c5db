package spiget

import (
	"context"
	"net/url"
	"strings"

	apierr "github.com/matzehuels/spiget/pkg/errors"
	"github.com/matzehuels/spiget/pkg/integrations"
	"github.com/matzehuels/spiget/pkg/models"
)

// Resources is the resources section.
type Resources struct{ section }

// List returns resources. List entries omit description, reviews,
// versions and updates; use Details for those.
func (r *Resources) List(ctx context.Context, opts integrations.ListOptions) ([]models.Resource, error) {
	return get[[]models.Resource](ctx, r.section, "resources"+opts.Query())
}

// Free returns free resources.
func (r *Resources) Free(ctx context.Context, opts integrations.ListOptions) ([]models.Resource, error) {
	return get[[]models.Resource](ctx, r.section, "resources/free"+opts.Query())
}

// Premium returns premium resources.
func (r *Resources) Premium(ctx context.Context, opts integrations.ListOptions) ([]models.Resource, error) {
	return get[[]models.Resource](ctx, r.section, "resources/premium"+opts.Query())
}

// New returns resources ordered by release date, newest first.
func (r *Resources) New(ctx context.Context, opts integrations.ListOptions) ([]models.Resource, error) {
	return get[[]models.Resource](ctx, r.section, "resources/new"+opts.Query())
}

// ForVersions returns resources tested with the given game versions.
// With MethodAll a resource must list every version; with MethodAny (the
// API default) one is enough.
func (r *Resources) ForVersions(ctx context.Context, versions []string, method ForVersionsMethod, opts integrations.ListOptions) (models.ForVersionResult, error) {
	if len(versions) == 0 {
		return models.ForVersionResult{}, apierr.New(apierr.ErrCodeInvalidInput, "at least one version is required")
	}
	if err := method.Validate(); err != nil {
		return models.ForVersionResult{}, err
	}
	escaped := make([]string, len(versions))
	for i, v := range versions {
		if err := apierr.ValidateVersionName(v); err != nil {
			return models.ForVersionResult{}, err
		}
		escaped[i] = url.PathEscape(v)
	}
	path := "resources/for/" + strings.Join(escaped, ",") + opts.Query(integrations.Pair{Key: "method", Value: optional(method)})
	return get[models.ForVersionResult](ctx, r.section, path)
}

// Details returns the resource with id, including its description and the
// id lists of reviews, versions and updates.
func (r *Resources) Details(ctx context.Context, id int) (models.Resource, error) {
	if err := apierr.ValidateID("resource", id); err != nil {
		return models.Resource{}, err
	}
	return get[models.Resource](ctx, r.section, integrations.Path("resources", id))
}

// Author returns the author of resource id.
func (r *Resources) Author(ctx context.Context, id int) (models.Author, error) {
	if err := apierr.ValidateID("resource", id); err != nil {
		return models.Author{}, err
	}
	return get[models.Author](ctx, r.section, integrations.Path("resources", id, "author"))
}

// Download requests the download of resource id without following the
// redirect. The raw response is returned whatever its status; the file
// location is in its Location header. See DownloadURL.
func (r *Resources) Download(ctx context.Context, id int) (*integrations.Response, error) {
	if err := apierr.ValidateID("resource", id); err != nil {
		return nil, err
	}
	return raw(ctx, r.section, integrations.Path("resources", id, "download"))
}

// DownloadURL resolves the file URL of resource id.
func (r *Resources) DownloadURL(ctx context.Context, id int) (string, error) {
	resp, err := r.Download(ctx, id)
	if err != nil {
		return "", err
	}
	return location(resp, integrations.Path("resources", id, "download"))
}

// Reviews returns the reviews of resource id.
func (r *Resources) Reviews(ctx context.Context, id int, opts integrations.ListOptions) ([]models.ResourceReview, error) {
	if err := apierr.ValidateID("resource", id); err != nil {
		return nil, err
	}
	return get[[]models.ResourceReview](ctx, r.section, integrations.Path("resources", id, "reviews")+opts.Query())
}

// Updates returns the update posts of resource id.
func (r *Resources) Updates(ctx context.Context, id int, opts integrations.ListOptions) ([]models.ResourceUpdate, error) {
	if err := apierr.ValidateID("resource", id); err != nil {
		return nil, err
	}
	return get[[]models.ResourceUpdate](ctx, r.section, integrations.Path("resources", id, "updates")+opts.Query())
}

// LatestUpdate returns the most recent update post of resource id.
func (r *Resources) LatestUpdate(ctx context.Context, id int) (models.ResourceUpdate, error) {
	if err := apierr.ValidateID("resource", id); err != nil {
		return models.ResourceUpdate{}, err
	}
	return get[models.ResourceUpdate](ctx, r.section, integrations.Path("resources", id, "updates", "latest"))
}

// Versions returns the versions of resource id.
func (r *Resources) Versions(ctx context.Context, id int, opts integrations.ListOptions) ([]models.ResourceVersion, error) {
	if err := apierr.ValidateID("resource", id); err != nil {
		return nil, err
	}
	return get[[]models.ResourceVersion](ctx, r.section, integrations.Path("resources", id, "versions")+opts.Query())
}

// LatestVersion returns the latest version of resource id.
func (r *Resources) LatestVersion(ctx context.Context, id int) (models.ResourceVersion, error) {
	if err := apierr.ValidateID("resource", id); err != nil {
		return models.ResourceVersion{}, err
	}
	return get[models.ResourceVersion](ctx, r.section, integrations.Path("resources", id, "versions", "latest"))
}

// Version returns one version of resource id. version is a version id or
// "latest".
func (r *Resources) Version(ctx context.Context, id int, version string) (models.ResourceVersion, error) {
	if err := validateVersion(id, version); err != nil {
		return models.ResourceVersion{}, err
	}
	return get[models.ResourceVersion](ctx, r.section, integrations.Path("resources", id, "versions", version))
}

// VersionDownload is Download for a specific version.
func (r *Resources) VersionDownload(ctx context.Context, id int, version string) (*integrations.Response, error) {
	if err := validateVersion(id, version); err != nil {
		return nil, err
	}
	return raw(ctx, r.section, integrations.Path("resources", id, "versions", version, "download"))
}

// VersionDownloadURL resolves the file URL of one version of resource id.
func (r *Resources) VersionDownloadURL(ctx context.Context, id int, version string) (string, error) {
	resp, err := r.VersionDownload(ctx, id, version)
	if err != nil {
		return "", err
	}
	return location(resp, integrations.Path("resources", id, "versions", version, "download"))
}

func validateVersion(id int, version string) error {
	if err := apierr.ValidateID("resource", id); err != nil {
		return err
	}
	return apierr.ValidateVersionName(version)
}

// location returns the absolute redirect target of a download response.
// A 2xx response is the file itself and resolves to its own URL.
func location(resp *integrations.Response, what string) (string, error) {
	if resp.OK() {
		return resp.URL, nil
	}
	loc := resp.Location()
	if resp.StatusCode < 300 || resp.StatusCode >= 400 || loc == "" {
		return "", resp.Err(what)
	}
	base, err := url.Parse(resp.URL)
	if err != nil {
		return loc, nil
	}
	target, err := base.Parse(loc)
	if err != nil {
		return "", apierr.Wrap(apierr.ErrCodeDecode, err, "invalid redirect location for %s", what)
	}
	return target.String(), nil
}
