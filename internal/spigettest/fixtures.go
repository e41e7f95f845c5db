package spigettest

import "github.com/matzehuels/spiget/pkg/models"

// Fixture IDs for tests.
const (
	AuthorMD5      = 1
	AuthorSupaHam  = 2
	CategorySpigot = 4
	CategoryChat   = 17

	ResourceEssentials = 9089
	ResourcePremium    = 1234
	ResourceExternal   = 5555

	VersionEssentialsOld    = 500000
	VersionEssentialsLatest = 500001
	UpdateEssentials        = 77
	ReviewEssentials        = 1

	WebhookID     = "hook-1"
	WebhookSecret = "s3cr3t"
)

// Events are the webhook event names served by webhook/events.
var Events = []string{"resource_update", "new_resource", "new_author"}

func price(p float64) *float64 { return &p }

var authors = []models.Author{
	{ID: AuthorMD5, Name: "md_5", Icon: &models.Icon{URL: "data/avatars/l/0/1.jpg"}, Identities: map[string]string{"github": "md-5"}},
	{ID: AuthorSupaHam, Name: "SupaHam"},
}

var categories = []models.Category{
	{ID: 2, Name: "Bungee - Spigot"},
	{ID: CategorySpigot, Name: "Spigot"},
	{ID: CategoryChat, Name: "Chat"},
}

var resources = []models.Resource{
	{
		ID:             ResourceEssentials,
		Name:           "EssentialsX",
		Tag:            "The essential plugin suite for Spigot",
		Likes:          1520,
		File:           &models.ResourceFile{Type: models.FileTypeJar, Size: 1.2, SizeUnit: "MB", URL: "resources/essentialsx.9089/download?version=500001"},
		TestedVersions: []string{"1.19", "1.20"},
		Rating:         &models.ResourceRating{Count: 1024, Average: 4.8},
		ReleaseDate:    1454544000,
		UpdateDate:     1700000000,
		Downloads:      1500000,
		Author:         &models.IdReference{ID: AuthorSupaHam},
		Category:       &models.IdReference{ID: CategorySpigot},
		Version:        &models.IdAndUUIDReference{ID: VersionEssentialsLatest},
		Reviews:        []models.IdReference{{ID: ReviewEssentials}},
		Versions:       []models.IdReference{{ID: VersionEssentialsOld}, {ID: VersionEssentialsLatest}},
		Updates:        []models.IdReference{{ID: UpdateEssentials}},
		Description:    models.EncodeText("<b>EssentialsX</b> is the essential plugin suite."),
		SourceCodeLink: "https://github.com/EssentialsX/Essentials",
	},
	{
		ID:             ResourcePremium,
		Name:           "Chat Pro",
		Tag:            "Premium chat formatting",
		TestedVersions: []string{"1.20"},
		File:           &models.ResourceFile{Type: models.FileTypeJar, Size: 300, SizeUnit: "KB"},
		ReleaseDate:    1600000000,
		UpdateDate:     1690000000,
		Premium:        true,
		Price:          price(9.99),
		Currency:       "EUR",
		Author:         &models.IdReference{ID: AuthorMD5},
		Category:       &models.IdReference{ID: CategoryChat},
		Version:        &models.IdAndUUIDReference{ID: 600000},
	},
	{
		ID:             ResourceExternal,
		Name:           "Skripty",
		Tag:            "Skript helpers",
		TestedVersions: []string{"1.8"},
		File:           &models.ResourceFile{Type: models.FileTypeExternal, ExternalURL: "https://example.org/skripty.sk"},
		ReleaseDate:    1500000000,
		UpdateDate:     1710000000,
		External:       true,
		Author:         &models.IdReference{ID: AuthorMD5},
		Category:       &models.IdReference{ID: CategorySpigot},
		Version:        &models.IdAndUUIDReference{ID: 700000},
	},
}

var reviews = []models.ResourceReview{
	{
		ID:       ReviewEssentials,
		Author:   &models.ResourceAuthor{ID: AuthorMD5, Name: "md_5"},
		Rating:   &models.ResourceRating{Count: 1, Average: 5},
		Message:  models.EncodeText("Great plugin!"),
		Version:  "2.20.0",
		Date:     1700000500,
		Resource: ResourceEssentials,
	},
}

var versions = []models.ResourceVersion{
	{ID: VersionEssentialsOld, UUID: "6ba7b810-9dad-11d1-80b4-00c04fd430c8", Name: "2.19.0", ReleaseDate: 1680000000, Downloads: 90000, Resource: ResourceEssentials},
	{ID: VersionEssentialsLatest, Name: "2.20.0", ReleaseDate: 1700000000, Downloads: 30000, Resource: ResourceEssentials},
}

var updates = []models.ResourceUpdate{
	{ID: UpdateEssentials, Resource: ResourceEssentials, Title: "2.20.0 released", Description: models.EncodeText("Supports 1.20"), Date: 1700000000, Likes: 12},
}

var status = models.Status{
	Status: models.StatusInfo{
		Server: &models.ServerStatus{Name: "spiget-test", Mode: "test"},
		Fetch:  &models.FetchStatus{Start: 1700000000, End: 1700003600, Page: &models.FetchProgress{Amount: 10, Index: 10}},
	},
	Stats: &models.StatusStats{Resources: len(resources), Authors: len(authors), Categories: len(categories), ResourceUpdates: len(updates), ResourceVersions: len(versions)},
}

// Resource returns the fixture resource with id.
func Resource(id int) (models.Resource, bool) {
	for _, r := range resources {
		if r.ID == id {
			return r, true
		}
	}
	return models.Resource{}, false
}
