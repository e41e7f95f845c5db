package cli

import (
	"fmt"
	"html"
	"io"
	"regexp"
	"strings"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/matzehuels/spiget/pkg/models"
)

var (
	tagRE        = regexp.MustCompile(`<[^>]*>`)
	blankLinesRE = regexp.MustCompile(`\n{3,}`)
)

// plainText decodes a base64 HTML field into readable text.
// Decoding failures are shown inline rather than failing the command.
func plainText(b models.Base64Encoded) string {
	if b.IsEmpty() {
		return ""
	}
	s, err := b.Decode()
	if err != nil {
		return "(" + err.Error() + ")"
	}
	s = strings.NewReplacer("<br>", "\n", "<br />", "\n", "<br/>", "\n").Replace(s)
	s = html.UnescapeString(tagRE.ReplaceAllString(s, ""))
	return blankLinesRE.ReplaceAllString(s, "\n\n")
}

func date(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format("2006-01-02")
}

func count(n int, unit string) string {
	if n == 0 {
		return ""
	}
	return strings.TrimSpace(humanize.Comma(int64(n)) + " " + unit)
}

func printResourceList(w io.Writer, list []models.Resource) {
	if len(list) == 0 {
		printEmpty(w, "resources")
		return
	}
	for _, r := range list {
		name := r.Name
		if r.Premium {
			name += " " + stylePremium.Render("premium")
		}
		extras := []string{r.Tag, count(r.Downloads, "downloads")}
		if r.Rating != nil {
			extras = append(extras, rating(r.Rating.Count, r.Rating.Average))
		}
		printRow(w, r.ID, name, extras...)
	}
}

func printResource(w io.Writer, r models.Resource) {
	printTitle(w, fmt.Sprintf("%s #%d", r.Name, r.ID))
	printKeyValue(w, "Tag", r.Tag)
	if r.Author != nil {
		printKeyValue(w, "Author", fmt.Sprintf("#%d", r.Author.ID))
	}
	if r.Category != nil {
		printKeyValue(w, "Category", fmt.Sprintf("#%d", r.Category.ID))
	}
	printKeyValue(w, "Contributors", r.Contributors)
	printKeyValue(w, "Tested", strings.Join(r.TestedVersions, ", "))
	printKeyValue(w, "Downloads", count(r.Downloads, ""))
	printKeyValue(w, "Likes", count(r.Likes, ""))
	if r.Rating != nil {
		printKeyValue(w, "Rating", rating(r.Rating.Count, r.Rating.Average))
	}
	if r.Premium && r.Price != nil {
		printKeyValue(w, "Price", fmt.Sprintf("%.2f %s", *r.Price, r.Currency))
	}
	if f := r.File; f != nil {
		if f.Type == models.FileTypeExternal {
			printLink(w, "File", f.ExternalURL)
		} else {
			printKeyValue(w, "File", strings.TrimSpace(fmt.Sprintf("%s %g %s", f.Type, f.Size, f.SizeUnit)))
		}
	}
	printKeyValue(w, "Released", date(r.Released()))
	printKeyValue(w, "Updated", date(r.Updated()))
	printKeyValue(w, "Versions", count(len(r.Versions), "versions"))
	printKeyValue(w, "Updates", count(len(r.Updates), "updates"))
	printKeyValue(w, "Reviews", count(len(r.Reviews), "reviews"))
	printLink(w, "Source", r.SourceCodeLink)
	printLink(w, "Donate", r.DonationLink)
	if desc := plainText(r.Description); desc != "" {
		fmt.Fprintln(w)
		printBody(w, desc)
	}
}

func printAuthorList(w io.Writer, list []models.Author) {
	if len(list) == 0 {
		printEmpty(w, "authors")
		return
	}
	for _, a := range list {
		printRow(w, a.ID, a.Name)
	}
}

func printAuthor(w io.Writer, a models.Author) {
	printTitle(w, fmt.Sprintf("%s #%d", a.Name, a.ID))
	if a.Icon != nil {
		printKeyValue(w, "Icon", a.Icon.URL)
	}
	for _, k := range sortedKeys(a.Identities) {
		printKeyValue(w, k, a.Identities[k])
	}
}

func printCategoryList(w io.Writer, list []models.Category) {
	if len(list) == 0 {
		printEmpty(w, "categories")
		return
	}
	for _, c := range list {
		printRow(w, c.ID, c.Name)
	}
}

func printReviewList(w io.Writer, list []models.ResourceReview) {
	if len(list) == 0 {
		printEmpty(w, "reviews")
		return
	}
	for i, r := range list {
		if i > 0 {
			fmt.Fprintln(w)
		}
		author := "unknown"
		if r.Author != nil {
			author = r.Author.Name
		}
		extras := []string{"v" + r.Version, date(r.Posted())}
		if r.Rating != nil {
			extras = append(extras, rating(1, r.Rating.Average))
		}
		printRow(w, r.ID, author, extras...)
		printBody(w, plainText(r.Message))
		if reply := plainText(r.ResponseMessage); reply != "" {
			printDetail(w, "%s %s", iconArrow, reply)
		}
	}
}

func printUpdateList(w io.Writer, list []models.ResourceUpdate) {
	if len(list) == 0 {
		printEmpty(w, "updates")
		return
	}
	for _, u := range list {
		printRow(w, u.ID, u.Title, date(u.Posted()), count(u.Likes, "likes"))
	}
}

func printUpdate(w io.Writer, u models.ResourceUpdate) {
	printTitle(w, u.Title)
	printKeyValue(w, "Posted", date(u.Posted()))
	printKeyValue(w, "Likes", count(u.Likes, ""))
	if body := plainText(u.Description); body != "" {
		fmt.Fprintln(w)
		printBody(w, body)
	}
}

func printVersionList(w io.Writer, list []models.ResourceVersion) {
	if len(list) == 0 {
		printEmpty(w, "versions")
		return
	}
	for _, v := range list {
		printRow(w, v.ID, v.Name, date(v.Released()), count(v.Downloads, "downloads"))
	}
}

func printVersion(w io.Writer, v models.ResourceVersion) {
	printTitle(w, fmt.Sprintf("%s #%d", v.Name, v.ID))
	printKeyValue(w, "UUID", v.UUID)
	printKeyValue(w, "Released", date(v.Released()))
	printKeyValue(w, "Downloads", count(v.Downloads, ""))
	if v.Rating != nil {
		printKeyValue(w, "Rating", rating(v.Rating.Count, v.Rating.Average))
	}
}

func printStatus(w io.Writer, s models.Status) {
	printTitle(w, "Spiget status")
	if srv := s.Status.Server; srv != nil {
		printKeyValue(w, "Server", srv.Name)
		printKeyValue(w, "Mode", srv.Mode)
	}
	if f := s.Status.Fetch; f != nil {
		state := "idle"
		if f.Active {
			state = "active"
		}
		printKeyValue(w, "Crawler", state)
		if f.End > 0 {
			printKeyValue(w, "Last crawl", time.Unix(f.End, 0).UTC().Format(time.RFC3339))
		}
	}
	if st := s.Stats; st != nil {
		printKeyValue(w, "Resources", count(st.Resources, ""))
		printKeyValue(w, "Authors", count(st.Authors, ""))
		printKeyValue(w, "Categories", count(st.Categories, ""))
		printKeyValue(w, "Updates", count(st.ResourceUpdates, ""))
		printKeyValue(w, "Versions", count(st.ResourceVersions, ""))
	}
}
